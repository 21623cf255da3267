// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/js-arias/hlambda/hybrid"
)

func TestLabelNodes(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"pair":      {"(A,B);", "(A,B)s2;"},
		"nested":    {"((A,B),C);", "((A,B)s4,C)s3;"},
		"lengths":   {"((A:1,B:1):1,C:2);", "((A:1,B:1)s4:1,C:2)s3;"},
		"terminal":  {"A;", "A;"},
		"empty":     {"", ""},
		"relabeled": {"(A,B)s2;", "(A,B)s2s2;"},
	}

	for name, test := range tests {
		if got := hybrid.LabelNodes(test.in); got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

var nodeNumber = regexp.MustCompile(`\)s(\d+)`)

func TestLabelNodesSequence(t *testing.T) {
	in := "((((h#0.3:3.25,Homo:3.25):3.25,Pan:6.5):2,(h#0.7:4.25,Gorilla:4.25):4.25):7.5,Pongo:16);"
	count := strings.Count(in, ")")

	got := hybrid.LabelNodes(in)
	ms := nodeNumber.FindAllStringSubmatch(got, -1)
	if len(ms) != count {
		t.Fatalf("got %d node numbers, want %d", len(ms), count)
	}

	want := 2 * count
	for _, m := range ms {
		n, _ := strconv.Atoi(m[1])
		if n != want {
			t.Errorf("node number: got %d, want %d", n, want)
		}
		want--
	}
	if last, _ := strconv.Atoi(ms[len(ms)-1][1]); last != count+1 {
		t.Errorf("last node number: got %d, want %d", last, count+1)
	}

	if r := nodeNumber.ReplaceAllString(got, ")"); r != in {
		t.Errorf("removing node numbers: got %q, want %q", r, in)
	}
}
