/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/pct"
)

func isUserinfoChar(b byte) bool {
	return pct.IsUnreserved(b) || pct.IsSubDelim(b) || b == ':'
}

// userinfoChars matches *( unreserved / pct-encoded / sub-delims / ":" ).
var userinfoChars = grammar.Range(grammar.Alt(grammar.CharSet(isUserinfoChar), pctEncoded), 0, -1)

// ParseUserinfo matches userinfo = *( unreserved / pct-encoded / sub-delims / ":" ).
func ParseUserinfo(c *grammar.Cursor) (Segment, error) {
	res, _ := userinfoChars.Parse(c)
	return Segment{Start: res.Start, End: res.End}, nil
}

// digits matches *DIGIT.
var digits = grammar.Range(grammar.CharSet(func(b byte) bool { return b >= '0' && b <= '9' }), 0, -1)

// ParsePort matches port = *DIGIT.
func ParsePort(c *grammar.Cursor) (Segment, error) {
	res, _ := digits.Parse(c)
	return Segment{Start: res.Start, End: res.End}, nil
}

// Authority is the parsed authority = [ userinfo "@" ] host [ ":" port ].
type Authority struct {
	HasUserinfo bool
	Userinfo    Segment
	Host        Segment
	HasPort     bool
	Port        Segment
}

// userinfoAt matches userinfo "@" as a single backtracking unit: Tuple
// fails and rewinds as a whole if the "@" never arrives, so a userinfo-
// shaped prefix that turns out to belong to the host never gets consumed.
var userinfoAt = grammar.Tuple(userinfoChars, grammar.Delim('@'))

// colonPort matches ":" port as a single backtracking unit.
var colonPort = grammar.Tuple(grammar.Delim(':'), digits)

// ParseAuthority matches authority = [ userinfo "@" ] host [ ":" port ].
func ParseAuthority(c *grammar.Cursor) (Authority, error) {
	var a Authority
	start := c.Pos

	if res, err := grammar.Optional(userinfoAt).Parse(c); err == nil && res.Len() > 0 {
		a.HasUserinfo = true
		a.Userinfo = Segment{Start: res.Start, End: res.End - 1}
	}

	host, err := ParseHost(c)
	if err != nil {
		c.Pos = start
		return Authority{}, fail(c, "authority")
	}
	a.Host = host

	if res, err := grammar.Optional(colonPort).Parse(c); err == nil && res.Len() > 0 {
		a.HasPort = true
		a.Port = Segment{Start: res.Start + 1, End: res.End}
	}
	return a, nil
}
