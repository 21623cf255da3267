// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hybrid

import (
	"strconv"
	"strings"
)

// LabelNodes adds a node number
// after each closing parenthesis of a tree
// in Newick format.
//
// Numbers start at twice the number of closing parentheses
// and decrease by one
// on each closing parenthesis,
// scanning the text from left to right.
// A number is written as "s<number>",
// for example "(A,B)s2;".
func LabelNodes(text string) string {
	nodes := strings.Count(text, ")") * 2

	var b strings.Builder
	b.Grow(len(text) + nodes*2)
	for _, r := range text {
		b.WriteRune(r)
		if r != ')' {
			continue
		}
		b.WriteByte('s')
		b.WriteString(strconv.Itoa(nodes))
		nodes--
	}
	return b.String()
}
