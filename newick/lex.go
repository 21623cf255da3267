// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemOpen
	itemClose
	itemComma
	itemColon
	itemEnd
	itemLabel
)

const (
	eof          = -1
	descStart    = '('
	descEnd      = ')'
	descSep      = ','
	lengthStart  = ':'
	terminal     = ';'
	quote        = '\''
	commentStart = '['
	commentEnd   = ']'
)

// unquoteBanned are the characters
// that can not be part of an unquoted label.
const unquoteBanned = "()[]':;,"

type item struct {
	typ itemType
	val string
	pos int
}

func (i item) String() string {
	switch i.typ {
	case itemError:
		return i.val
	case itemEOF:
		return "end of input"
	case itemLabel:
		return fmt.Sprintf("label %q", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

type stateFn func(lx *lexer) stateFn

// A lexer scans a Newick string
// one rune at a time.
type lexer struct {
	input string
	start int
	pos   int
	width int
	state stateFn
	items []item
}

func lex(input string) *lexer {
	return &lexer{
		input: input,
		state: lexAny,
	}
}

// nextItem returns the next item from the input.
func (lx *lexer) nextItem() item {
	for len(lx.items) == 0 {
		if lx.state == nil {
			return item{typ: itemEOF, pos: lx.pos}
		}
		lx.state = lx.state(lx)
	}
	it := lx.items[0]
	lx.items = lx.items[1:]
	return it
}

func (lx *lexer) emit(typ itemType, val string) {
	lx.items = append(lx.items, item{typ: typ, val: val, pos: lx.start})
	lx.start = lx.pos
}

func (lx *lexer) next() rune {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.width = w
	lx.pos += w
	return r
}

// backup steps back one rune.
// Can be called only once per call of next.
func (lx *lexer) backup() {
	lx.pos -= lx.width
}

func (lx *lexer) ignore() {
	lx.start = lx.pos
}

// errorf stops the scan by emitting an error.
func (lx *lexer) errorf(format string, values ...any) stateFn {
	lx.items = append(lx.items, item{
		typ: itemError,
		val: fmt.Sprintf(format, values...),
		pos: lx.start,
	})
	return nil
}

func lexAny(lx *lexer) stateFn {
	r := lx.next()
	switch {
	case r == eof:
		lx.emit(itemEOF, "")
		return nil
	case isSpace(r):
		lx.ignore()
		return lexAny
	case r == commentStart:
		return lexComment
	case r == descStart:
		lx.emit(itemOpen, string(r))
	case r == descEnd:
		lx.emit(itemClose, string(r))
	case r == descSep:
		lx.emit(itemComma, string(r))
	case r == lengthStart:
		lx.emit(itemColon, string(r))
	case r == terminal:
		lx.emit(itemEnd, string(r))
	case r == quote:
		return lexQuoted
	case r == commentEnd:
		return lx.errorf("unexpected %q", r)
	default:
		lx.backup()
		return lexLabel
	}
	return lexAny
}

// lexComment skips a bracketed comment,
// for example a rooting token such as "[&U]".
func lexComment(lx *lexer) stateFn {
	for {
		switch lx.next() {
		case eof:
			return lx.errorf("unclosed comment")
		case commentEnd:
			lx.ignore()
			return lexAny
		}
	}
}

// lexLabel scans an unquoted label,
// or a branch length value.
func lexLabel(lx *lexer) stateFn {
	for {
		r := lx.next()
		if r == eof || isSpace(r) || strings.ContainsRune(unquoteBanned, r) {
			lx.backup()
			break
		}
	}
	lx.emit(itemLabel, lx.input[lx.start:lx.pos])
	return lexAny
}

// lexQuoted scans a single quoted label.
// Two consecutive quotes are read as a single quote.
func lexQuoted(lx *lexer) stateFn {
	var b strings.Builder
	for {
		r := lx.next()
		switch r {
		case eof:
			return lx.errorf("unclosed quoted label")
		case quote:
			if lx.next() == quote {
				b.WriteRune(quote)
				continue
			}
			lx.backup()
			lx.emit(itemLabel, b.String())
			return lexAny
		}
		b.WriteRune(r)
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
