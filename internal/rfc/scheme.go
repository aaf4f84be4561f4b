/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/badu/urlx/internal/grammar"

func isSchemeFirst(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isSchemeRest(b byte) bool {
	return isSchemeFirst(b) || b >= '0' && b <= '9' || b == '+' || b == '-' || b == '.'
}

// ParseScheme matches scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func ParseScheme(c *grammar.Cursor) (Segment, error) {
	start := c.Pos
	if _, err := grammar.CharSet(isSchemeFirst).Parse(c); err != nil {
		c.Pos = start
		return Segment{}, fail(c, "scheme")
	}
	rest := grammar.RangeN(grammar.CharSet(isSchemeRest), 0, -1)
	if _, err := rest(c); err != nil {
		c.Pos = start
		return Segment{}, fail(c, "scheme")
	}
	return Segment{Start: start, End: c.Pos}, nil
}
