// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/js-arias/hlambda/hybrid"
	"github.com/js-arias/hlambda/newick"
)

func TestSplitBranch(t *testing.T) {
	tests := map[string]struct {
		in    string
		label string
		half  float64
		want  string
	}{
		"closing": {
			in:    "(A:1.0,(B:1.0,C:1.0):1.0);",
			label: "C",
			half:  0.5,
			want:  "(A:1,(B:1,C:0.5):1);",
		},
		"separator": {
			in:    "(A:1.0,(B:1.0,C:1.0):1.0);",
			label: "B",
			half:  0.5,
			want:  "(A:1,(B:0.5,C:1):1);",
		},
		"whole label": {
			in:    "(A2:1,A:3);",
			label: "A",
			half:  1.5,
			want:  "(A2:1,A:1.5);",
		},
		"first match": {
			in:    "((A:2,B:1):1,A:4);",
			label: "A",
			half:  1,
			want:  "((A:1,B:1):1,A:4);",
		},
	}

	for name, test := range tests {
		got, half, err := hybrid.SplitBranchText(test.in, test.label)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if half != test.half {
			t.Errorf("%s: got half %v, want %v", name, half, test.half)
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}
}

func TestSplitBranchErrors(t *testing.T) {
	_, _, err := hybrid.SplitBranchText("(A:1,B:1);", "D")
	var mt *hybrid.MissingTaxonError
	if !errors.As(err, &mt) {
		t.Errorf("missing: got error %v, want a missing taxon error", err)
	} else if mt.Taxon != "D" {
		t.Errorf("missing: got taxon %q, want %q", mt.Taxon, "D")
	}

	_, _, err = hybrid.SplitBranchText("(A:1,(B:1,C:1)D:1);", "D")
	if !errors.As(err, &mt) {
		t.Errorf("inner node: got error %v, want a missing taxon error", err)
	}

	var mb *hybrid.MalformedBranchLengthError
	_, _, err = hybrid.SplitBranchText("(A,B);", "A")
	if !errors.As(err, &mb) {
		t.Errorf("no length: got error %v, want a malformed branch length error", err)
	}

	_, _, err = hybrid.SplitBranchText("(A:1.0.0,B:1);", "A")
	if !errors.As(err, &mb) {
		t.Errorf("bad length: got error %v, want a malformed branch length error", err)
	} else if mb.Taxon != "A" || mb.Value != "1.0.0" {
		t.Errorf("bad length: got taxon %q value %q, want %q %q", mb.Taxon, mb.Value, "A", "1.0.0")
	}
}

func TestSplice(t *testing.T) {
	got, err := hybrid.SpliceText("(A:1,(B:0.5,C:1):1);", "B", 0.5, "0.6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "(A:1,((h#0.6:0.5,B:0.5):0.5,C:1):1);"
	if got != want {
		t.Errorf("splice: got %q, want %q", got, want)
	}

	if _, err := hybrid.SpliceText("(A:1,B:1);", "C", 0.5, "0.6"); err == nil {
		t.Errorf("splice: expecting error for missing taxon")
	}
}

func TestAddParents(t *testing.T) {
	tests := map[string]struct {
		spec   string
		hybrid int
		want   string
	}{
		"sister": {
			spec:   "A:0.6",
			hybrid: 1,
			want:   "((h#0.6:0.5,A:0.5):0.5,(B:1,C:1):1);",
		},
		"hybrid": {
			spec:   "B:0.6,C:0.4",
			hybrid: 2,
			want:   "(A:1,((h#0.6:0.5,B:0.5):0.5,(h#0.4:0.5,C:0.5):0.5):1);",
		},
		"sisters": {
			spec:   "B:0.6,A:0.4",
			hybrid: 2,
			want:   "((h#0.4:0.5,A:0.5):0.5,((h#0.6:0.5,B:0.5):0.5,C:1):1);",
		},
	}

	for name, test := range tests {
		tr, err := newick.Parse("(A:1.0,(B:1.0,C:1.0):1.0);")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		s, err := hybrid.ParseSpec(test.spec)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if err := hybrid.AddParents(tr, s); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}

		got := tr.String()
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
		if n := strings.Count(got, hybrid.HybridPrefix); n != test.hybrid {
			t.Errorf("%s: got %d hybrid terminals, want %d", name, n, test.hybrid)
		}
	}
}
