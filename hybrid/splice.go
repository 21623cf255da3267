// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid

import (
	"errors"
	"fmt"

	"github.com/js-arias/hlambda/newick"
)

// HybridPrefix is the prefix of the label
// of a hybrid edge terminal.
const HybridPrefix = "h#"

// SplitBranch halves the branch length
// of the first terminal with the given label,
// and returns the new length.
func SplitBranch(t *newick.Tree, label string) (float64, error) {
	id, ok := t.TaxNode(label)
	if !ok {
		return 0, &MissingTaxonError{Taxon: label}
	}
	l, ok := t.Length(id)
	if !ok {
		return 0, &MalformedBranchLengthError{Taxon: label}
	}

	half := l / 2
	t.SetLength(id, half)
	return half, nil
}

// Splice replaces the first terminal with the given label
// by a new clade,
// with a hybrid edge terminal,
// labeled with the prefix "h#" and the indicated probability,
// as sister of the original terminal.
// The hybrid terminal,
// and the new clade,
// have the indicated branch length.
//
// In Newick format,
// the terminal "A:0.5" is replaced by
// "(h#0.6:0.5,A:0.5):0.5".
func Splice(t *newick.Tree, label string, half float64, prob string) error {
	id, ok := t.TaxNode(label)
	if !ok {
		return &MissingTaxonError{Taxon: label}
	}

	clade := t.InsertParent(id)
	t.SetLength(clade, half)

	h := t.Add(clade, HybridPrefix+prob)
	t.SetLength(h, half)
	t.MoveFirst(h)
	return nil
}

// AddParents adds the hybrid information of each parent,
// in the order of the spec,
// by halving the parent branch
// and splicing a hybrid clade on it.
func AddParents(t *newick.Tree, s Spec) error {
	for _, p := range s {
		half, err := SplitBranch(t, p.Taxon)
		if err != nil {
			return err
		}
		if err := Splice(t, p.Taxon, half, p.Prob); err != nil {
			return err
		}
	}
	return nil
}

// SplitBranchText halves the branch length
// of the first terminal with the given label
// in a tree in Newick format.
// It returns the modified tree,
// and the new branch length.
func SplitBranchText(text, label string) (string, float64, error) {
	t, err := parse(text)
	if err != nil {
		return "", 0, err
	}
	half, err := SplitBranch(t, label)
	if err != nil {
		return "", 0, err
	}
	return t.String(), half, nil
}

// SpliceText adds a hybrid clade
// at the first terminal with the given label
// in a tree in Newick format.
func SpliceText(text, label string, half float64, prob string) (string, error) {
	t, err := parse(text)
	if err != nil {
		return "", err
	}
	if err := Splice(t, label, half, prob); err != nil {
		return "", err
	}
	return t.String(), nil
}

// parse reads a tree
// reporting invalid branch lengths
// as a MalformedBranchLengthError.
func parse(text string) (*newick.Tree, error) {
	t, err := newick.Parse(text)
	if err != nil {
		return nil, lengthError(err)
	}
	return t, nil
}

func lengthError(err error) error {
	var le *newick.LengthError
	if !errors.As(err, &le) {
		return err
	}
	mb := &MalformedBranchLengthError{
		Taxon: le.Label,
		Value: le.Value,
	}
	if le.Line > 0 {
		return fmt.Errorf("on line %d: %w", le.Line, mb)
	}
	return mb
}
