/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/badu/urlx/pct"

// QueryUnescape percent-decodes s using the query component's
// application/x-www-form-urlencoded convention ("+" decodes as space).
func QueryUnescape(s string) (string, error) {
	b, err := pct.Decode([]byte(s), pct.Options{PlusAsSpace: true})
	return string(b), err
}

// QueryEscape percent-encodes s for safe use inside a query component,
// encoding space as "+".
func QueryEscape(s string) string {
	return string(pct.Encode([]byte(s), pct.QuerySet, pct.Options{SpaceAsPlus: true}))
}

// PathUnescape percent-decodes s as a path segment. Unlike QueryUnescape
// it does not treat "+" as space.
func PathUnescape(s string) (string, error) {
	b, err := pct.Decode([]byte(s), pct.Options{})
	return string(b), err
}

// PathEscape percent-encodes s for safe use as a single path segment.
func PathEscape(s string) string {
	return string(pct.Encode([]byte(s), pct.PathSegmentSet, pct.Options{}))
}

// Parse parses rawurl as a URI-reference (absolute or relative),
// matching the teacher's own top-level Parse entry point.
func Parse(rawurl string) (*URL, error) { return ParseURIReference(rawurl) }

// ParseRequestURI parses rawurl as it would appear in an HTTP request
// line: either origin-form (an absolute path, optionally with a query)
// or an absolute URI. rawurl is assumed not to carry a "#fragment".
func ParseRequestURI(rawurl string) (*URL, error) {
	if len(rawurl) > 0 && rawurl[0] == '/' {
		return ParseOriginForm(rawurl)
	}
	return ParseURI(rawurl)
}
