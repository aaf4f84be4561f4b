/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/pct"
)

func isRegNameChar(b byte) bool {
	return pct.IsUnreserved(b) || pct.IsSubDelim(b)
}

// regNameOrIPv4 matches *( unreserved / pct-encoded / sub-delims ), the
// shared repertoire of IPv4address and reg-name. This rule does not tell
// the two apart; ParseHost checks a dotted-quad-shaped match afterward.
var regNameOrIPv4 = grammar.Range(grammar.Alt(grammar.CharSet(isRegNameChar), pctEncoded), 0, -1)

// ipLiteral matches "[" *( any byte but "]" ) "]"; an empty "[]" passes
// here and is rejected by IsWellFormedIPLiteral. Nothing
// inside ever nests, so a single Tuple of Delim/Range/Delim is enough;
// IsWellFormedIPLiteral does the real IPv6/IPvFuture shape check afterward.
var ipLiteral = grammar.Tuple(grammar.Delim('['), grammar.Range(grammar.CharSet(func(b byte) bool { return b != ']' }), 0, -1), grammar.Delim(']'))

// looksLikeIPv4 reports whether s is made up only of digits and ".", the
// shape an IPv4address attempt takes. A reg-name containing any letter,
// hyphen or other unreserved byte never reaches this check.
func looksLikeIPv4(s []byte) bool {
	dots := 0
	for _, b := range s {
		switch {
		case b >= '0' && b <= '9':
		case b == '.':
			dots++
		default:
			return false
		}
	}
	return dots > 0
}

// ParseHost matches host = IP-literal / IPv4address / reg-name. It checks
// only well-formedness of the literal forms (spec.md's OUT OF SCOPE line),
// never DNS reachability: a bracketed IP-literal must pass
// IsWellFormedIPLiteral's IPv6/IPvFuture shape check, and a host that looks
// like a dotted-quad (digits and "." only) must pass IsWellFormedIPv4,
// since a reg-name never takes that shape.
func ParseHost(c *grammar.Cursor) (Segment, error) {
	start := c.Pos
	if b, ok := c.Peek(); ok && b == '[' {
		res, err := ipLiteral.Parse(c)
		if err != nil {
			c.Pos = start
			return Segment{}, fail(c, "host")
		}
		if !IsWellFormedIPLiteral(c.Buf[res.Start+1 : res.End-1]) {
			c.Pos = start
			return Segment{}, fail(c, "host")
		}
		return Segment{Start: res.Start, End: res.End}, nil
	}
	res, _ := regNameOrIPv4.Parse(c)
	if s := c.Buf[res.Start:res.End]; looksLikeIPv4(s) && !IsWellFormedIPv4(s) {
		c.Pos = start
		return Segment{}, fail(c, "host")
	}
	return Segment{Start: res.Start, End: res.End}, nil
}

// IsWellFormedIPv4 reports whether s is four 0-255 decimal groups joined by ".".
func IsWellFormedIPv4(s []byte) bool {
	groups := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if !isDecOctet(s[start:i]) {
				return false
			}
			groups++
			start = i + 1
		} else if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return groups == 4
}

func isDecOctet(s []byte) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	n := 0
	for _, b := range s {
		n = n*10 + int(b-'0')
	}
	return n <= 255
}

// IsWellFormedIPLiteral reports whether s (without its enclosing brackets)
// looks like IPv6address or IPvFuture: a bounded count of ":"-joined hex
// groups, or a "v" + hex + "." + unreserved/sub-delims/":" future form.
// This is a shape check only, per spec.md's Non-goals.
func IsWellFormedIPLiteral(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == 'v' || s[0] == 'V' {
		i := 1
		for i < len(s) && pct.IsHexDigit(s[i]) {
			i++
		}
		if i <= 1 || i >= len(s)-1 || s[i] != '.' {
			return false
		}
		for _, b := range s[i+1:] {
			if !pct.IsUnreserved(b) && !pct.IsSubDelim(b) && b != ':' {
				return false
			}
		}
		return true
	}
	colons := 0
	doubleColon := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == ':':
			colons++
			if i+1 < len(s) && s[i+1] == ':' {
				doubleColon = true
			}
		case pct.IsHexDigit(s[i]), s[i] == '.':
		default:
			return false
		}
	}
	if doubleColon {
		return colons <= 8
	}
	return colons == 7
}
