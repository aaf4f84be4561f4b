/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/badu/urlx/internal/rfc"

// build drives a fresh URL's setters from a parsed rfc.Reference and the
// raw bytes it was parsed from, per spec.md §4.3's Builder collaborator
// (apply_scheme / apply_authority / apply_path / apply_query /
// apply_fragment). Each step only touches bytes rfc's grammar accepted,
// but the Set* calls re-validate them: a "%00" escape, which the grammar
// allows, is rejected here with ErrIllegalNull.
func build(raw string, ref rfc.Reference) (*URL, error) {
	u := New()
	if ref.HasScheme {
		if err := u.SetEncodedScheme(string(ref.Scheme.Bytes([]byte(raw)))); err != nil {
			return nil, err
		}
	}
	if ref.HasAuthority {
		if err := u.applyAuthority(raw, ref); err != nil {
			return nil, err
		}
	}
	if err := u.applyPath(raw, ref.PathSegments); err != nil {
		return nil, err
	}
	if ref.HasQuery {
		if err := u.SetEncodedQuery(string(ref.Query.Bytes([]byte(raw)))); err != nil {
			return nil, err
		}
	}
	if ref.HasFragment {
		if err := u.SetEncodedFragment(string(ref.Fragment.Bytes([]byte(raw)))); err != nil {
			return nil, err
		}
	}
	return u, nil
}

// applyAuthority installs userinfo, host and port from ref, creating an
// empty authority first.
func (u *URL) applyAuthority(raw string, ref rfc.Reference) error {
	if err := u.SetEncodedHost(string(ref.Host.Bytes([]byte(raw)))); err != nil {
		return err
	}
	if ref.HasUserinfo {
		if err := u.SetEncodedUserinfo(string(ref.Userinfo.Bytes([]byte(raw)))); err != nil {
			return err
		}
	}
	if ref.HasPort {
		if err := u.SetPort(string(ref.Port.Bytes([]byte(raw)))); err != nil {
			return err
		}
	}
	return nil
}

// applyPath installs the path from segs, the already-split segment table
// rfc's path rules produced, joining their raw bytes with "/" (rfc's
// segment spans exclude the "/" separators, so they are re-inserted here).
func (u *URL) applyPath(raw string, segs []rfc.Segment) error {
	if len(segs) == 0 {
		return u.SetEncodedPath("")
	}
	buf := make([]byte, 0, len(raw))
	for i, s := range segs {
		if i > 0 {
			buf = append(buf, '/')
		}
		buf = append(buf, s.Bytes([]byte(raw))...)
	}
	// A path beginning with a segment boundary at byte 0 of the first
	// segment does not tell us whether the original path was absolute
	// (leading "/") or rootless; rfc callers only hand applyPath the
	// segment bytes themselves, so the leading "/" — if any — must be
	// recovered from the raw input preceding the first segment.
	if segs[0].Start > 0 && raw[segs[0].Start-1] == '/' {
		buf = append([]byte{'/'}, buf...)
	}
	return u.SetEncodedPath(string(buf))
}
