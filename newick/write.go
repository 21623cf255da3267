// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Format writes a tree in Newick format,
// terminated by a semicolon.
func (t *Tree) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.write(bw, t.root)
	bw.WriteByte(terminal)
	return bw.Flush()
}

// String returns the tree in Newick format.
func (t *Tree) String() string {
	var b strings.Builder
	t.Format(&b)
	return b.String()
}

func (t *Tree) write(w *bufio.Writer, id int) {
	n := t.nodes[id]
	if len(n.children) > 0 {
		w.WriteByte(descStart)
		for i, c := range n.children {
			if i > 0 {
				w.WriteByte(descSep)
			}
			t.write(w, c)
		}
		w.WriteByte(descEnd)
	}
	w.WriteString(quoteLabel(n.label))
	if n.hasLen {
		w.WriteByte(lengthStart)
		w.WriteString(FormatLength(n.length))
	}
}

// FormatLength returns the shortest decimal representation
// of a branch length.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, unquoteBanned+" \t") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
