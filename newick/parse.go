// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A LengthError is returned when a branch length
// is not a valid decimal number.
type LengthError struct {
	// Label of the node with the invalid length
	Label string

	// Value is the offending token
	Value string

	// Line is the input line of the tree,
	// only set when the tree is read with Read.
	Line int

	Err error
}

func (e *LengthError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("invalid branch length %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("node %q: invalid branch length %q: %v", e.Label, e.Value, e.Err)
}

func (e *LengthError) Unwrap() error {
	return e.Err
}

// Parse reads a single tree
// from a string in Newick format.
//
// Bracketed comments,
// such as the rooting tokens "[&U]" or "[&R]",
// are ignored.
// The terminating semicolon is optional.
func Parse(s string) (*Tree, error) {
	p := &parser{
		lx: lex(s),
		t:  New(""),
	}

	it := p.lx.nextItem()
	switch it.typ {
	case itemError:
		return nil, p.errorf(it, "%s", it.val)
	case itemEOF, itemEnd:
		return nil, errors.New("empty tree")
	}

	it, err := p.subtree(p.t.root, it)
	if err != nil {
		return nil, err
	}
	if it.typ == itemEnd {
		it = p.lx.nextItem()
	}
	if it.typ != itemEOF {
		return nil, p.expect(it, "end of tree")
	}
	return p.t, nil
}

type parser struct {
	lx *lexer
	t  *Tree
}

// subtree reads the subtree rooted at the given node.
// It returns the first item after the subtree.
func (p *parser) subtree(id int, it item) (item, error) {
	var err error
	if it.typ == itemOpen {
		for {
			child := p.t.Add(id, "")
			it, err = p.subtree(child, p.lx.nextItem())
			if err != nil {
				return it, err
			}
			if it.typ == itemComma {
				continue
			}
			if it.typ == itemClose {
				break
			}
			return it, p.expect(it, "',' or ')'")
		}
		it = p.lx.nextItem()
	}

	if it.typ == itemLabel {
		p.t.nodes[id].label = it.val
		it = p.lx.nextItem()
	}

	if it.typ != itemColon {
		if it.typ == itemError {
			return it, p.errorf(it, "%s", it.val)
		}
		return it, nil
	}

	it = p.lx.nextItem()
	if it.typ != itemLabel {
		return it, p.expect(it, "a branch length")
	}
	v, err := strconv.ParseFloat(it.val, 64)
	if err != nil {
		return it, &LengthError{
			Label: p.t.nodes[id].label,
			Value: it.val,
			Err:   errors.Unwrap(err),
		}
	}
	p.t.SetLength(id, v)
	return p.lx.nextItem(), nil
}

func (p *parser) expect(it item, what string) error {
	if it.typ == itemError {
		return p.errorf(it, "%s", it.val)
	}
	return p.errorf(it, "unexpected %s, expecting %s", it, what)
}

func (p *parser) errorf(it item, format string, v ...any) error {
	return fmt.Errorf("at position %d: %s", it.pos+1, fmt.Sprintf(format, v...))
}

// Read reads trees in Newick format
// from a reader.
//
// Each non-blank line of the input is a tree.
// Lines starting with '#' are ignored.
func Read(r io.Reader) ([]*Tree, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var trees []*Tree
	for ln := 1; s.Scan(); ln++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		t, err := Parse(line)
		if err != nil {
			var le *LengthError
			if errors.As(err, &le) {
				le.Line = ln
			}
			return nil, fmt.Errorf("on line %d: %w", ln, err)
		}
		t.SetName(fmt.Sprintf("tree-%d", len(trees)+1))
		trees = append(trees, t)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return trees, nil
}
