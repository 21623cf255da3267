// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid

import (
	"strconv"
	"strings"
)

// A Parent is a hybrid parent:
// a terminal taxon of the tree
// and the inheritance probability of the hybrid
// from that parent.
type Parent struct {
	Taxon string

	// Prob is the probability
	// as written by the user,
	// it is copied verbatim
	// into the hybrid label.
	Prob string
}

// Value returns the probability as a number.
func (p Parent) Value() (float64, error) {
	return strconv.ParseFloat(p.Prob, 64)
}

func (p Parent) String() string {
	return p.Taxon + ":" + p.Prob
}

// A Spec is a hybrid specification,
// the list of hybrid parents
// in the order they are applied to a tree.
//
// A spec with a single parent produces a sister annotation,
// and a spec with two parents produces a true hybrid.
type Spec []Parent

// ParseSpec reads a hybrid specification
// from a token of the form "<taxon>:<prob>[,<taxon>:<prob>]",
// for example "B:0.6,C:0.4".
// Parents keep their declaration order.
func ParseSpec(token string) (Spec, error) {
	var s Spec
	for _, e := range strings.Split(token, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		tax, prob, ok := strings.Cut(e, ":")
		if !ok {
			return nil, &SpecError{Token: e, Msg: "expecting <taxon>:<prob>"}
		}
		p, err := newParent(tax, prob)
		if err != nil {
			return nil, err
		}
		s = append(s, p)
	}
	if len(s) == 0 {
		return nil, ErrNoParents
	}
	return s, nil
}

func newParent(tax, prob string) (Parent, error) {
	p := Parent{
		Taxon: strings.TrimSpace(tax),
		Prob:  strings.TrimSpace(prob),
	}
	if p.Taxon == "" {
		return Parent{}, &SpecError{Token: p.String(), Msg: "empty taxon name"}
	}
	v, err := p.Value()
	if err != nil {
		return Parent{}, &SpecError{Token: p.String(), Msg: "probability is not a number"}
	}
	if !(v >= 0 && v <= 1) {
		return Parent{}, &SpecError{Token: p.String(), Msg: "probability out of range [0, 1]"}
	}
	return p, nil
}

// IsHybrid returns true if the spec
// defines two parents.
func (s Spec) IsHybrid() bool {
	return len(s) == 2
}

// Validate checks that a spec can be applied to a tree.
// It must have one or two parents,
// and if it has two parents,
// their probabilities must be different.
func (s Spec) Validate() error {
	if len(s) == 0 {
		return ErrNoParents
	}
	if len(s) > 2 {
		return ErrTooManyParents
	}
	for _, p := range s {
		if _, err := newParent(p.Taxon, p.Prob); err != nil {
			return err
		}
	}
	if !s.IsHybrid() {
		return nil
	}

	v0, _ := s[0].Value()
	v1, _ := s[1].Value()
	if v0 == v1 {
		return &EqualLikelihoodError{Prob: s[0].Prob}
	}
	return nil
}

func (s Spec) String() string {
	ps := make([]string, 0, len(s))
	for _, p := range s {
		ps = append(ps, p.String())
	}
	return strings.Join(ps, ",")
}
