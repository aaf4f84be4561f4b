/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import (
	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/pct"
)

// pChar matches pchar = unreserved / pct-encoded / sub-delims / ":" / "@".
var pChar = grammar.Alt(grammar.CharSet(pct.IsPChar), pctEncoded)

// pCharNoColon matches pchar minus ":", the segment-nz-nc repertoire
// (RFC 3986 forbids a first relative-ref segment that could be mistaken
// for a scheme).
var pCharNoColon = grammar.Alt(grammar.CharSet(func(b byte) bool { return pct.IsPChar(b) && b != ':' }), pctEncoded)

// segmentRun matches segment = *pchar.
var segmentRun = grammar.Range(pChar, 0, -1)

// segmentNoColonRun matches *( pchar minus ":" ); ParsePathNoscheme rejects
// an empty match, which makes it segment-nz-nc.
var segmentNoColonRun = grammar.Range(pCharNoColon, 0, -1)

// parseSegment matches segment = *pchar, returning its span.
func parseSegment(c *grammar.Cursor) Segment {
	res, _ := segmentRun.Parse(c)
	return Segment{Start: res.Start, End: res.End}
}

// ParsePathAbempty matches path-abempty = *( "/" segment ), returning each
// segment's span (the leading "/" is not part of any segment's span, per
// spec.md §4.3/§4.7's "/"-split convention) so callers get the element
// count needed for apply_path.
func ParsePathAbempty(c *grammar.Cursor) []Segment {
	var segs []Segment
	for {
		if _, err := grammar.Delim('/').Parse(c); err != nil {
			break
		}
		segs = append(segs, parseSegment(c))
	}
	return segs
}

// ParsePathRootless matches path-rootless = segment-nz *( "/" segment ).
func ParsePathRootless(c *grammar.Cursor) ([]Segment, error) {
	start := c.Pos
	first := parseSegment(c)
	if first.Len() == 0 {
		c.Pos = start
		return nil, fail(c, "path-rootless")
	}
	segs := []Segment{first}
	segs = append(segs, ParsePathAbempty(c)...)
	return segs, nil
}

// ParsePathAbsolute matches path-absolute = "/" [ segment-nz *( "/" segment ) ].
// The leading "/" is consumed but not reported as a segment.
func ParsePathAbsolute(c *grammar.Cursor) ([]Segment, error) {
	start := c.Pos
	if _, err := grammar.Delim('/').Parse(c); err != nil {
		return nil, fail(c, "path-absolute")
	}
	first := parseSegment(c)
	if b, ok := c.Peek(); ok && b == '/' && first.Len() == 0 {
		c.Pos = start
		return nil, fail(c, "path-absolute")
	}
	segs := []Segment{first}
	segs = append(segs, ParsePathAbempty(c)...)
	return segs, nil
}

// ParsePathNoscheme matches path-noscheme = segment-nz-nc *( "/" segment ).
func ParsePathNoscheme(c *grammar.Cursor) ([]Segment, error) {
	start := c.Pos
	res, _ := segmentNoColonRun.Parse(c)
	first := Segment{Start: res.Start, End: res.End}
	if first.Len() == 0 {
		c.Pos = start
		return nil, fail(c, "path-noscheme")
	}
	segs := []Segment{first}
	segs = append(segs, ParsePathAbempty(c)...)
	return segs, nil
}
