/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"bytes"

	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/pct"
)

func isQueryOrFragmentChar(b byte) bool {
	return pct.IsPChar(b) || b == '/' || b == '?'
}

// queryOrFragmentRun matches *( pchar / "/" / "?" / pct-encoded ), the
// shared repertoire of query and fragment.
var queryOrFragmentRun = grammar.Range(grammar.Alt(grammar.CharSet(isQueryOrFragmentChar), pctEncoded), 0, -1)

// ParseQuery matches query = *( pchar / "/" / "?" ), returning its span and
// the count of "&"-separated params it contains (an empty query still has
// one param, per spec.md §4.6's "?" with no content has size()==1).
func ParseQuery(c *grammar.Cursor) (Segment, int) {
	res, _ := queryOrFragmentRun.Parse(c)
	seg := Segment{Start: res.Start, End: res.End}
	return seg, bytes.Count(c.Buf[seg.Start:seg.End], []byte{'&'}) + 1
}

// ParseFragment matches fragment = *( pchar / "/" / "?" ).
func ParseFragment(c *grammar.Cursor) Segment {
	res, _ := queryOrFragmentRun.Parse(c)
	return Segment{Start: res.Start, End: res.End}
}
