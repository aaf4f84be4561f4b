/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package rfc

import "github.com/badu/urlx/internal/grammar"

// Reference is the parsed result of URI-reference = URI / relative-ref.
// Nothing is copied: every field is an offset/length span into the input
// the caller passed to Parse*, per spec.md §4.3.
type Reference struct {
	HasScheme bool
	Scheme    Segment

	HasAuthority bool
	HasUserinfo  bool
	Userinfo     Segment
	Host         Segment
	HasPort      bool
	Port         Segment

	Path         Segment
	PathSegments []Segment

	HasQuery  bool
	Query     Segment
	NumParams int

	HasFragment bool
	Fragment    Segment
}

// ParseURI matches URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ].
func ParseURI(buf []byte) (Reference, error) {
	c := grammar.NewCursor(buf)
	ref, err := parseURI(c)
	if err != nil {
		return Reference{}, err
	}
	if c.Pos != len(buf) {
		return Reference{}, fail(c, "uri")
	}
	return ref, nil
}

// ParseAbsoluteURI matches absolute-URI = scheme ":" hier-part [ "?" query ].
func ParseAbsoluteURI(buf []byte) (Reference, error) {
	c := grammar.NewCursor(buf)
	ref, err := parseHierPartURI(c, false)
	if err != nil {
		return Reference{}, err
	}
	if c.Pos != len(buf) {
		return Reference{}, fail(c, "absolute-uri")
	}
	return ref, nil
}

// ParseURIReference matches URI-reference = URI / relative-ref. The two
// alternatives are tried through grammar.Alt so a URI-shaped prefix that
// turns out not to consume the whole input is properly rewound before
// relative-ref gets its turn, rather than left half-applied.
func ParseURIReference(buf []byte) (Reference, error) {
	c := grammar.NewCursor(buf)
	var result Reference

	asURI := grammar.RuleFunc(func(cc *grammar.Cursor) (grammar.Result, error) {
		ref, err := parseURI(cc)
		if err != nil {
			return grammar.Result{}, err
		}
		if cc.Pos != len(buf) {
			return grammar.Result{}, fail(cc, "uri")
		}
		result = ref
		return grammar.Result{Start: 0, End: cc.Pos}, nil
	})
	asRelativeRef := grammar.RuleFunc(func(cc *grammar.Cursor) (grammar.Result, error) {
		ref, err := parseRelativeRef(cc)
		if err != nil {
			return grammar.Result{}, err
		}
		if cc.Pos != len(buf) {
			return grammar.Result{}, fail(cc, "uri-reference")
		}
		result = ref
		return grammar.Result{Start: 0, End: cc.Pos}, nil
	})

	if _, err := grammar.Alt(asURI, asRelativeRef).Parse(c); err != nil {
		return Reference{}, fail(c, "uri-reference")
	}
	return result, nil
}

// ParseRelativeRef matches relative-ref = relative-part [ "?" query ] [ "#" fragment ].
func ParseRelativeRef(buf []byte) (Reference, error) {
	c := grammar.NewCursor(buf)
	ref, err := parseRelativeRef(c)
	if err != nil {
		return Reference{}, err
	}
	if c.Pos != len(buf) {
		return Reference{}, fail(c, "relative-ref")
	}
	return ref, nil
}

// ParseOriginForm matches origin-form = absolute-path [ "?" query ], the
// request-target shape used by HTTP request lines.
func ParseOriginForm(buf []byte) (Reference, error) {
	c := grammar.NewCursor(buf)
	var ref Reference
	segs, err := ParsePathAbsolute(c)
	if err != nil {
		return Reference{}, err
	}
	ref.Path = Segment{Start: 0, End: c.Pos}
	ref.PathSegments = segs
	if _, err := grammar.Delim('?').Parse(c); err == nil {
		q, n := ParseQuery(c)
		ref.HasQuery = true
		ref.Query = q
		ref.NumParams = n
	}
	if c.Pos != len(buf) {
		return Reference{}, fail(c, "origin-form")
	}
	return ref, nil
}

func parseURI(c *grammar.Cursor) (Reference, error) {
	return parseHierPartURI(c, true)
}

func parseHierPartURI(c *grammar.Cursor, allowFragment bool) (Reference, error) {
	var ref Reference
	scheme, err := ParseScheme(c)
	if err != nil {
		return Reference{}, err
	}
	if _, err := grammar.Delim(':').Parse(c); err != nil {
		return Reference{}, fail(c, "uri")
	}
	ref.HasScheme = true
	ref.Scheme = scheme

	if err := parseHierPart(c, &ref); err != nil {
		return Reference{}, err
	}
	if _, err := grammar.Delim('?').Parse(c); err == nil {
		q, n := ParseQuery(c)
		ref.HasQuery = true
		ref.Query = q
		ref.NumParams = n
	}
	if allowFragment {
		if _, err := grammar.Delim('#').Parse(c); err == nil {
			ref.HasFragment = true
			ref.Fragment = ParseFragment(c)
		}
	}
	return ref, nil
}

func parseHierPart(c *grammar.Cursor, ref *Reference) error {
	if _, err := grammar.Literal("//").Parse(c); err == nil {
		a, err := ParseAuthority(c)
		if err != nil {
			return err
		}
		ref.HasAuthority = true
		ref.HasUserinfo = a.HasUserinfo
		ref.Userinfo = a.Userinfo
		ref.Host = a.Host
		ref.HasPort = a.HasPort
		ref.Port = a.Port
		pathStart := c.Pos
		segs := ParsePathAbempty(c)
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	pathStart := c.Pos
	if b, ok := c.Peek(); ok && b == '/' {
		segs, err := ParsePathAbsolute(c)
		if err != nil {
			return err
		}
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	// path-rootless, or path-empty if nothing matches (opaque-less URI with
	// no path at all, e.g. "mailto:" the instant a "?" or "#" or EOF follows).
	if segs, err := ParsePathRootless(c); err == nil {
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	ref.Path = Segment{Start: pathStart, End: pathStart}
	return nil
}

func parseRelativeRef(c *grammar.Cursor) (Reference, error) {
	var ref Reference
	if err := parseRelativePart(c, &ref); err != nil {
		return Reference{}, err
	}
	if _, err := grammar.Delim('?').Parse(c); err == nil {
		q, n := ParseQuery(c)
		ref.HasQuery = true
		ref.Query = q
		ref.NumParams = n
	}
	if _, err := grammar.Delim('#').Parse(c); err == nil {
		ref.HasFragment = true
		ref.Fragment = ParseFragment(c)
	}
	return ref, nil
}

func parseRelativePart(c *grammar.Cursor, ref *Reference) error {
	if _, err := grammar.Literal("//").Parse(c); err == nil {
		a, err := ParseAuthority(c)
		if err != nil {
			return err
		}
		ref.HasAuthority = true
		ref.HasUserinfo = a.HasUserinfo
		ref.Userinfo = a.Userinfo
		ref.Host = a.Host
		ref.HasPort = a.HasPort
		ref.Port = a.Port
		pathStart := c.Pos
		segs := ParsePathAbempty(c)
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	pathStart := c.Pos
	if b, ok := c.Peek(); ok && b == '/' {
		segs, err := ParsePathAbsolute(c)
		if err != nil {
			return err
		}
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	if segs, err := ParsePathNoscheme(c); err == nil {
		ref.Path = Segment{Start: pathStart, End: c.Pos}
		ref.PathSegments = segs
		return nil
	}
	ref.Path = Segment{Start: pathStart, End: pathStart}
	return nil
}
