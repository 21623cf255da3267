// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of rooted phylogenetic trees
// in Newick (parenthetical) format.
//
// A tree is stored as an explicit node graph:
// each node is identified by an integer ID,
// and holds the ID of its parent,
// the IDs of its children,
// a label,
// and an optional branch length.
package newick

import "golang.org/x/exp/slices"

// A Tree is a rooted phylogenetic tree.
type Tree struct {
	name  string
	root  int
	nodes []*node
}

type node struct {
	id       int
	parent   int
	children []int

	label  string
	length float64
	hasLen bool
}

// New creates a new tree with a single root node.
func New(name string) *Tree {
	t := &Tree{name: name}
	t.root = t.newNode(-1)
	return t
}

func (t *Tree) newNode(parent int) int {
	n := &node{
		id:     len(t.nodes),
		parent: parent,
	}
	t.nodes = append(t.nodes, n)
	if parent >= 0 {
		p := t.nodes[parent]
		p.children = append(p.children, n.id)
	}
	return n.id
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// SetName sets the name of the tree.
func (t *Tree) SetName(name string) {
	t.name = name
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Add adds a new node as the last child of the indicated parent,
// and returns the ID of the new node.
func (t *Tree) Add(parent int, label string) int {
	id := t.newNode(parent)
	t.nodes[id].label = label
	return id
}

// Children returns the IDs of the children
// of the indicated node.
func (t *Tree) Children(id int) []int {
	return slices.Clone(t.nodes[id].children)
}

// IsTerm returns true if the indicated node is a terminal.
func (t *Tree) IsTerm(id int) bool {
	return len(t.nodes[id].children) == 0
}

// Label returns the label of a node.
func (t *Tree) Label(id int) string {
	return t.nodes[id].label
}

// SetLabel sets the label of a node.
func (t *Tree) SetLabel(id int, label string) {
	t.nodes[id].label = label
}

// Length returns the branch length of a node.
// If the node has no branch length
// it returns false.
func (t *Tree) Length(id int) (float64, bool) {
	n := t.nodes[id]
	return n.length, n.hasLen
}

// SetLength sets the branch length of a node.
func (t *Tree) SetLength(id int, length float64) {
	n := t.nodes[id]
	n.length = length
	n.hasLen = true
}

// Parent returns the ID of the parent of a node.
// The parent of the root is -1.
func (t *Tree) Parent(id int) int {
	return t.nodes[id].parent
}

// InsertParent adds a new node between a node and its parent.
// The new node takes the place of the node
// in the children list of the old parent.
// It returns the ID of the new node.
func (t *Tree) InsertParent(id int) int {
	n := t.nodes[id]
	old := n.parent

	np := &node{
		id:       len(t.nodes),
		parent:   old,
		children: []int{id},
	}
	t.nodes = append(t.nodes, np)
	n.parent = np.id

	if old < 0 {
		t.root = np.id
		return np.id
	}
	p := t.nodes[old]
	i := slices.Index(p.children, id)
	p.children[i] = np.id
	return np.id
}

// MoveFirst moves a node
// to be the first child of its parent.
func (t *Tree) MoveFirst(id int) {
	n := t.nodes[id]
	if n.parent < 0 {
		return
	}
	p := t.nodes[n.parent]
	i := slices.Index(p.children, id)
	copy(p.children[1:i+1], p.children[:i])
	p.children[0] = id
}

// Nodes returns the IDs of the tree nodes
// in pre-order,
// that is the order in which they are written.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	var visit func(id int)
	visit = func(id int) {
		ids = append(ids, id)
		for _, c := range t.nodes[id].children {
			visit(c)
		}
	}
	visit(t.root)
	return ids
}

// Terms returns the labels of the terminals
// in the order in which they are written.
func (t *Tree) Terms() []string {
	var terms []string
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			continue
		}
		if t.nodes[id].label == "" {
			continue
		}
		terms = append(terms, t.nodes[id].label)
	}
	return terms
}

// TaxNode returns the ID of the first terminal,
// in writing order,
// with the given label.
// Labels are compared as whole strings.
func (t *Tree) TaxNode(label string) (int, bool) {
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			continue
		}
		if t.nodes[id].label == label {
			return id, true
		}
	}
	return -1, false
}

// DropInnerLabels removes the labels
// of all non-terminal nodes.
func (t *Tree) DropInnerLabels() {
	for _, n := range t.nodes {
		if len(n.children) > 0 {
			n.label = ""
		}
	}
}

// Ladderize sorts the children of each node
// by the number of nodes they contain.
// The weight of a node is the number of its descendants,
// both terminals and internal nodes,
// so a terminal weights 0.
// If descending is true,
// heavier clades are placed first
// (i.e., a left-ladderized tree).
// Clades of the same weight keep their previous order.
func (t *Tree) Ladderize(descending bool) {
	desc := make([]int, len(t.nodes))
	var count func(id int) int
	count = func(id int) int {
		d := 0
		for _, c := range t.nodes[id].children {
			d += 1 + count(c)
		}
		desc[id] = d
		return d
	}
	count(t.root)

	for _, n := range t.nodes {
		if len(n.children) < 2 {
			continue
		}
		slices.SortStableFunc(n.children, func(a, b int) int {
			if descending {
				return desc[b] - desc[a]
			}
			return desc[a] - desc[b]
		})
	}
}
