/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"encoding/base64"

	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/internal/rfc"
	"github.com/badu/urlx/pct"
)

// BasicAuth base64-encodes "username:password", per RFC 2617 §2. It is
// not meant to be urlencoded, matching the teacher's own BasicAuth.
func BasicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// ParseURI parses a byte string conforming to RFC 3986 URI (absolute,
// with a mandatory scheme). See spec.md §6.
func ParseURI(raw string) (*URL, error) {
	ref, err := rfc.ParseURI([]byte(raw))
	if err != nil {
		return nil, &Error{Op: "parse_uri", URL: raw, Err: toSyntaxError(err)}
	}
	return build(raw, ref)
}

// ParseURIReference parses any URI-reference (absolute or relative), per
// RFC 3986's URI-reference = URI / relative-ref.
func ParseURIReference(raw string) (*URL, error) {
	ref, err := rfc.ParseURIReference([]byte(raw))
	if err != nil {
		return nil, &Error{Op: "parse_uri_reference", URL: raw, Err: toSyntaxError(err)}
	}
	return build(raw, ref)
}

// ParseAbsoluteURI parses absolute-URI = scheme ":" hier-part [ "?" query ],
// i.e. a URI with no fragment allowed.
func ParseAbsoluteURI(raw string) (*URL, error) {
	ref, err := rfc.ParseAbsoluteURI([]byte(raw))
	if err != nil {
		return nil, &Error{Op: "parse_absolute_uri", URL: raw, Err: toSyntaxError(err)}
	}
	return build(raw, ref)
}

// ParseRelativeRef parses relative-ref = relative-part [ "?" query ] [ "#" fragment ].
func ParseRelativeRef(raw string) (*URL, error) {
	ref, err := rfc.ParseRelativeRef([]byte(raw))
	if err != nil {
		return nil, &Error{Op: "parse_relative_ref", URL: raw, Err: toSyntaxError(err)}
	}
	return build(raw, ref)
}

// ParseOriginForm parses origin-form = absolute-path [ "?" query ], the
// request-target grammar used by HTTP request lines.
func ParseOriginForm(raw string) (*URL, error) {
	ref, err := rfc.ParseOriginForm([]byte(raw))
	if err != nil {
		return nil, &Error{Op: "parse_origin_form", URL: raw, Err: toSyntaxError(err)}
	}
	return build(raw, ref)
}

// ParseAuthority parses authority = [ userinfo "@" ] host [ ":" port ] in
// isolation, without a surrounding scheme or path.
func ParseAuthority(raw string) (*URL, error) {
	c := grammar.NewCursor([]byte(raw))
	a, err := rfc.ParseAuthority(c)
	if err != nil || c.Pos != len(raw) {
		return nil, &Error{Op: "parse_authority", URL: raw, Err: toSyntaxError(err)}
	}
	u := New()
	if err := u.applyAuthority(raw, rfc.Reference{
		HasAuthority: true,
		HasUserinfo:  a.HasUserinfo,
		Userinfo:     a.Userinfo,
		Host:         a.Host,
		HasPort:      a.HasPort,
		Port:         a.Port,
	}); err != nil {
		return nil, &Error{Op: "parse_authority", URL: raw, Err: err}
	}
	return u, nil
}

// ParsePathAbsolute parses path-absolute = "/" [ segment-nz *( "/" segment ) ].
func ParsePathAbsolute(raw string) (*URL, error) {
	c := grammar.NewCursor([]byte(raw))
	segs, err := rfc.ParsePathAbsolute(c)
	if err != nil || c.Pos != len(raw) {
		return nil, &Error{Op: "parse_path_absolute", URL: raw, Err: toSyntaxError(err)}
	}
	u := New()
	if err := u.applyPath(raw, segs); err != nil {
		return nil, &Error{Op: "parse_path_absolute", URL: raw, Err: err}
	}
	return u, nil
}

// ParseQuery parses a bare query string (without the leading "?") into a
// URL whose only populated component is the query, for callers that only
// need the params engine.
func ParseQuery(raw string) (*URL, error) {
	if err := pct.ValidatePercent([]byte(raw)); err != nil {
		return nil, &Error{Op: "parse_query", URL: raw, Err: encodingErr(err)}
	}
	u := New()
	if err := u.SetEncodedQuery(raw); err != nil {
		return nil, &Error{Op: "parse_query", URL: raw, Err: err}
	}
	return u, nil
}

func toSyntaxError(err error) error {
	if se, ok := err.(*rfc.SyntaxError); ok {
		return &SyntaxError{Pos: se.Pos, Rule: se.Rule, Err: se.Err}
	}
	return err
}
