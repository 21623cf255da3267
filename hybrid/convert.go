// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hybrid converts phylogenetic trees
// into the annotated Newick trees
// used as input by Hybrid-Lambda
// (Zhu et al. 2013, arXiv:1303.0673).
//
// A tree is left-ladderized,
// each hybrid parent receives a hybrid clade
// that splits its branch in half,
// and all internal nodes are numbered.
package hybrid

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/js-arias/hlambda/newick"
	"github.com/js-arias/timetree"
)

// Suffixes of the output files.
const (
	// HybridSuffix is used when the spec has two parents.
	HybridSuffix = ".wHybrid.tre"

	// SisterSuffix is used when the spec has a single parent.
	SisterSuffix = ".wSister.tre"
)

// Normalize left-ladderizes a tree,
// removes the labels of internal nodes,
// and returns the tree in Newick format.
func Normalize(t *newick.Tree) string {
	t.Ladderize(true)
	t.DropInnerLabels()
	return strings.TrimSpace(t.String())
}

// Convert returns a tree in Hybrid-Lambda format,
// using the given spec.
// The tree is modified.
func Convert(t *newick.Tree, s Spec) (string, error) {
	Normalize(t)
	if err := AddParents(t, s); err != nil {
		return "", err
	}
	return LabelNodes(t.String()), nil
}

// ConvertTrees validates a spec,
// and converts a list of trees.
// If any tree fails,
// no tree is returned.
// The logger can be nil.
func ConvertTrees(trees []*newick.Tree, s Spec, logger *slog.Logger) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(trees))
	for _, t := range trees {
		ct, err := Convert(t, s)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %w", t.Name(), err)
		}
		if logger != nil {
			logger.Debug("tree converted", "tree", t.Name(), "nodes", t.Len(), "parents", s.String())
		}
		out = append(out, ct)
	}
	return out, nil
}

// ConvertAll reads trees in Newick format,
// one tree per line,
// and converts them using the given spec.
// The spec is validated before reading any tree.
func ConvertAll(r io.Reader, s Spec, logger *slog.Logger) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	trees, err := newick.Read(r)
	if err != nil {
		return nil, lengthError(err)
	}
	return ConvertTrees(trees, s, logger)
}

// ConvertCollection converts the trees
// of a time calibrated tree collection,
// using branch lengths in million years.
func ConvertCollection(c *timetree.Collection, s Spec, logger *slog.Logger) ([]string, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	names := c.Names()
	trees := make([]*newick.Tree, 0, len(names))
	for _, tn := range names {
		trees = append(trees, newick.FromTimeTree(c.Tree(tn)))
	}
	return ConvertTrees(trees, s, logger)
}

// OutputName returns the name of the output file
// for a given input file:
// the input name without extension,
// with the suffix ".wHybrid.tre" if the spec has two parents,
// or ".wSister.tre" otherwise.
func OutputName(input string, s Spec) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if s.IsHybrid() {
		return base + HybridSuffix
	}
	return base + SisterSuffix
}
