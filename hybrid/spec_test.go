// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/hlambda/hybrid"
)

func TestParseSpec(t *testing.T) {
	tests := map[string]struct {
		token string
		want  hybrid.Spec
	}{
		"sister": {
			token: "A:0.6",
			want:  hybrid.Spec{{Taxon: "A", Prob: "0.6"}},
		},
		"hybrid": {
			token: "B:0.6,C:0.4",
			want: hybrid.Spec{
				{Taxon: "B", Prob: "0.6"},
				{Taxon: "C", Prob: "0.4"},
			},
		},
		"declaration order": {
			token: "C:0.4,B:0.6",
			want: hybrid.Spec{
				{Taxon: "C", Prob: "0.4"},
				{Taxon: "B", Prob: "0.6"},
			},
		},
		"spaces": {
			token: " Homo_sapiens : .25 , Pan:0.75 ,",
			want: hybrid.Spec{
				{Taxon: "Homo_sapiens", Prob: ".25"},
				{Taxon: "Pan", Prob: "0.75"},
			},
		},
	}

	for name, test := range tests {
		s, err := hybrid.ParseSpec(test.token)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !reflect.DeepEqual(s, test.want) {
			t.Errorf("%s: got %v, want %v", name, s, test.want)
		}
	}
}

func TestParseSpecErrors(t *testing.T) {
	tests := map[string]string{
		"no colon":     "A0.6",
		"no taxon":     ":0.6",
		"not a number": "A:high",
		"negative":     "A:-0.1",
		"too large":    "A:1.5",
		"nan":          "B:NaN",
		"nan hybrid":   "B:NaN,C:NaN",
	}

	for name, token := range tests {
		_, err := hybrid.ParseSpec(token)
		var se *hybrid.SpecError
		if !errors.As(err, &se) {
			t.Errorf("%s: got error %v, want a spec error", name, err)
		}
	}

	if _, err := hybrid.ParseSpec(" , "); !errors.Is(err, hybrid.ErrNoParents) {
		t.Errorf("empty: got error %v, want %v", err, hybrid.ErrNoParents)
	}
}

func TestValidate(t *testing.T) {
	s, _ := hybrid.ParseSpec("A:0.5,B:0.5")
	err := s.Validate()
	var el *hybrid.EqualLikelihoodError
	if !errors.As(err, &el) {
		t.Errorf("equal: got error %v, want an equal likelihood error", err)
	}

	s, _ = hybrid.ParseSpec("A:0.5,B:.50")
	if err := s.Validate(); !errors.As(err, &el) {
		t.Errorf("equal values: got error %v, want an equal likelihood error", err)
	}

	nan := hybrid.Spec{{Taxon: "B", Prob: "NaN"}, {Taxon: "C", Prob: "NaN"}}
	var se *hybrid.SpecError
	if err := nan.Validate(); !errors.As(err, &se) {
		t.Errorf("nan: got error %v, want a spec error", err)
	}
	if err := nan[:1].Validate(); !errors.As(err, &se) {
		t.Errorf("nan sister: got error %v, want a spec error", err)
	}

	s, _ = hybrid.ParseSpec("A:0.2,B:0.3,C:0.5")
	if err := s.Validate(); !errors.Is(err, hybrid.ErrTooManyParents) {
		t.Errorf("three parents: got error %v, want %v", err, hybrid.ErrTooManyParents)
	}

	if err := (hybrid.Spec{}).Validate(); !errors.Is(err, hybrid.ErrNoParents) {
		t.Errorf("no parents: got error %v, want %v", err, hybrid.ErrNoParents)
	}

	s, _ = hybrid.ParseSpec("A:0.6,A:0.4")
	if err := s.Validate(); err != nil {
		t.Errorf("same taxon: unexpected error: %v", err)
	}

	s, _ = hybrid.ParseSpec("A:0.6")
	if err := s.Validate(); err != nil {
		t.Errorf("sister: unexpected error: %v", err)
	}
	if s.IsHybrid() {
		t.Errorf("sister: spec %v defined as hybrid", s)
	}
}

func TestTSV(t *testing.T) {
	s, _ := hybrid.ParseSpec("Homo sapiens:0.3,Gorilla:0.7")

	var w bytes.Buffer
	if err := s.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	ns, err := hybrid.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	if !reflect.DeepEqual(ns, s) {
		t.Errorf("tsv: got %v, want %v", ns, s)
	}
	if got := ns.String(); got != "Homo sapiens:0.3,Gorilla:0.7" {
		t.Errorf("tsv string: got %q, want %q", got, "Homo sapiens:0.3,Gorilla:0.7")
	}
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no header":  "",
		"no prob":    "taxon\tvalue\nA\t0.5\n",
		"bad prob":   "taxon\tprob\nA\tx\n",
		"no parents": "taxon\tprob\n",
		"bad quote":  "taxon\tprob\nB\"x\t0.6\n",
	}
	for name, in := range tests {
		if _, err := hybrid.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}
