// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import "github.com/js-arias/timetree"

// MillionYears is used to scale the ages
// of a time calibrated tree
// into branch lengths.
const MillionYears = 1_000_000

// FromTimeTree creates a new tree
// by copying a time calibrated tree.
// Branch lengths are the age differences
// between a node and its parent,
// in million years.
// The root is copied without branch length.
func FromTimeTree(tt *timetree.Tree) *Tree {
	t := New(tt.Name())
	copyTimeNode(t, tt, t.root, tt.Root())
	return t
}

func copyTimeNode(t *Tree, tt *timetree.Tree, id, src int) {
	if tt.IsTerm(src) {
		t.nodes[id].label = tt.Taxon(src)
	}
	if !tt.IsRoot(src) {
		age := tt.Age(tt.Parent(src)) - tt.Age(src)
		t.SetLength(id, float64(age)/MillionYears)
	}

	for _, c := range tt.Children(src) {
		nc := t.Add(id, "")
		copyTimeNode(t, tt, nc, c)
	}
}
