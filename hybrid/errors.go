// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParents is returned when a specification
	// does not define any hybrid parent.
	ErrNoParents = errors.New("no hybrid parents defined")

	// ErrTooManyParents is returned when a specification
	// defines more than two hybrid parents.
	ErrTooManyParents = errors.New("more than two hybrid parents defined")
)

// A MissingTaxonError is returned when a hybrid parent
// is not a terminal of the tree.
type MissingTaxonError struct {
	Taxon string
}

func (e *MissingTaxonError) Error() string {
	return fmt.Sprintf("hybrid parent %q not present in input tree", e.Taxon)
}

// An EqualLikelihoodError is returned when the two hybrid parents
// have the same inheritance probability.
type EqualLikelihoodError struct {
	Prob string
}

func (e *EqualLikelihoodError) Error() string {
	return fmt.Sprintf("parent likelihoods must not be the same: both are %s", e.Prob)
}

// A MalformedBranchLengthError is returned when the branch length
// of a hybrid parent is undefined,
// or it is not a valid decimal number.
type MalformedBranchLengthError struct {
	Taxon string
	Value string
}

func (e *MalformedBranchLengthError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("taxon %q: undefined branch length", e.Taxon)
	}
	return fmt.Sprintf("taxon %q: invalid branch length %q", e.Taxon, e.Value)
}

// A SpecError is returned when a hybrid specification token
// can not be parsed.
type SpecError struct {
	Token string
	Msg   string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid hybrid parent %q: %s", e.Token, e.Msg)
}
