/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package rfc implements the RFC 3986 URI-reference grammar (spec.md §4.3)
// on top of the grammar and pct packages. Every rule returns offsets into
// the caller's input; nothing is copied here, matching the "Builder never
// copies" contract spec.md §4.3 requires of its consumer.
package rfc

import (
	"errors"

	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/pct"
)

// Segment is an offset/length span into a caller-owned byte slice.
type Segment struct {
	Start, End int
}

// Len reports the span's byte length.
func (s Segment) Len() int { return s.End - s.Start }

// Bytes slices buf by the segment's bounds.
func (s Segment) Bytes(buf []byte) []byte { return buf[s.Start:s.End] }

// ErrSyntax is the base sentinel wrapped by every grammar rule failure;
// callers use errors.As to recover the failing byte position (spec.md §7).
var ErrSyntax = errors.New("rfc: syntax error")

// SyntaxError carries the byte offset and rule name of a grammar failure,
// per spec.md §6's "syntax (with position)" error tag.
type SyntaxError struct {
	Pos  int
	Rule string
	Err  error
}

func (e *SyntaxError) Error() string { return e.Rule + " at byte " + itoa(e.Pos) + ": " + e.Err.Error() }
func (e *SyntaxError) Unwrap() error { return e.Err }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func fail(c *grammar.Cursor, rule string) error {
	return &SyntaxError{Pos: c.Pos, Rule: rule, Err: ErrSyntax}
}

// pctEncoded matches pct-encoded = "%" HEXDIG HEXDIG, shared by every
// production whose character repertoire includes it (userinfo, host,
// path segments, query, fragment). Squelched because none of its
// callers need the "%XX" span itself, only that three bytes were
// consumed.
var pctEncoded = grammar.Squelch(grammar.Tuple(grammar.Delim('%'), grammar.CharSet(pct.IsHexDigit), grammar.CharSet(pct.IsHexDigit)))
