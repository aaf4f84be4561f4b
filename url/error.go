/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/badu/urlx/pct"
)

// Sentinel tags, per spec.md §6's "wire-visible tagged result" taxonomy.
// Use errors.Is to test for one of these against an error returned by any
// function in this package.
var (
	ErrInvalidEncoding = errors.New("url: invalid percent-encoding")
	ErrMissingScheme   = errors.New("url: missing scheme")
	ErrIllegalNull     = errors.New("url: illegal NUL byte")
	ErrBadPort         = errors.New("url: invalid port")
	ErrOversize        = errors.New("url: component exceeds size limit")

	errMissingAuthority = errors.New("url: no authority to attach userinfo/port to")
)

// encodingErr translates a pct decoding/validation failure into this
// package's own sentinels, keeping the NUL-byte/malformed-escape
// distinction spec.md §6's taxonomy draws rather than collapsing every
// pct error onto ErrInvalidEncoding.
func encodingErr(err error) error {
	if errors.Is(err, pct.ErrIllegalNull) {
		return ErrIllegalNull
	}
	return ErrInvalidEncoding
}

type timeout interface{ Timeout() bool }
type temporary interface{ Temporary() bool }

// Error reports the operation and URL that caused a failure, following
// the teacher's own url.Error{Op, URL, Err} shape (Timeout/Temporary
// passthrough via unexported marker interfaces) so callers already
// familiar with that net/url idiom feel no friction here.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Timeout() bool {
	if t, ok := e.Err.(timeout); ok {
		return t.Timeout()
	}
	return false
}

func (e *Error) Temporary() bool {
	if t, ok := e.Err.(temporary); ok {
		return t.Temporary()
	}
	return false
}

// SyntaxError reports the byte offset and grammar rule name of a parse
// failure, per spec.md §6/§7. Its message is built with pkg/errors so a
// failure deep inside a nested grammar rule keeps a readable cause chain.
type SyntaxError struct {
	Pos  int
	Rule string
	Err  error
}

func (e *SyntaxError) Error() string {
	return pkgerrors.Wrapf(e.Err, "%s at byte %d", e.Rule, e.Pos).Error()
}

func (e *SyntaxError) Unwrap() error { return e.Err }
