/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"github.com/badu/urlx/internal/grammar"
	"github.com/badu/urlx/internal/rfc"
	"github.com/badu/urlx/pct"
)

func isSchemeFirstByte(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }

func isSchemeRestByte(b byte) bool {
	return isSchemeFirstByte(b) || b >= '0' && b <= '9' || b == '+' || b == '-' || b == '.'
}

// SetEncodedScheme sets the scheme. An empty s removes the scheme (and its
// trailing ":"). Schemes carry no percent-encoding, per RFC 3986 §3.1.
func (u *URL) SetEncodedScheme(s string) error {
	if s == "" {
		u.resizeSlot(slotScheme, 0)
		u.setSeparator(slotColonScheme, false, "")
		return nil
	}
	if !isSchemeFirstByte(s[0]) {
		return &Error{Op: "set_encoded_scheme", URL: u.String(), Err: ErrMissingScheme}
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeRestByte(s[i]) {
			return &Error{Op: "set_encoded_scheme", URL: u.String(), Err: ErrMissingScheme}
		}
	}
	u.writeSlot(slotScheme, []byte(s))
	u.setSeparator(slotColonScheme, true, ":")
	return nil
}

// RemoveAuthority removes "//" and everything it introduces: userinfo,
// host and port.
func (u *URL) RemoveAuthority() {
	u.setSeparator(slotAt, false, "")
	u.resizeSlot(slotUserinfo, 0)
	u.resizeSlot(slotHost, 0)
	u.setSeparator(slotColonPort, false, "")
	u.resizeSlot(slotPort, 0)
	u.setSeparator(slotSlashSlash, false, "")
}

// SetEncodedHost sets the host from already-encoded bytes, creating an
// empty authority ("//") first if the URL didn't already have one.
func (u *URL) SetEncodedHost(s string) error {
	if err := pct.ValidatePercent([]byte(s)); err != nil {
		return &Error{Op: "set_encoded_host", URL: u.String(), Err: encodingErr(err)}
	}
	if !u.HasAuthority() {
		u.setSeparator(slotSlashSlash, true, "//")
	}
	u.writeSlot(slotHost, []byte(s))
	return nil
}

// SetHost encodes host with the host component's unreserved set and
// installs it, per RFC 3986's reg-name/IPv4/IP-literal grammar.
// Bracketed IP-literals must already carry their own brackets: SetHost
// does not add them, matching EncodedHost's symmetric behavior.
func (u *URL) SetHost(host string) error {
	return u.SetEncodedHost(string(pct.Encode([]byte(host), pct.HostSet, pct.Options{})))
}

// SetPort sets the authority's port. An empty p removes the port. p must
// be all-digit when non-empty, and the URL must already have a host.
func (u *URL) SetPort(p string) error {
	if p == "" {
		u.setSeparator(slotColonPort, false, "")
		u.resizeSlot(slotPort, 0)
		return nil
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return &Error{Op: "set_port", URL: u.String(), Err: ErrBadPort}
		}
	}
	if !u.HasAuthority() {
		return &Error{Op: "set_port", URL: u.String(), Err: errMissingAuthority}
	}
	u.setSeparator(slotColonPort, true, ":")
	u.writeSlot(slotPort, []byte(p))
	return nil
}

// SetEncodedPath sets the path from already-encoded bytes, recomputing the
// cached segment count (spec.md §3's "auxiliary counter").
func (u *URL) SetEncodedPath(s string) error {
	if err := pct.ValidatePercent([]byte(s)); err != nil {
		return &Error{Op: "set_encoded_path", URL: u.String(), Err: encodingErr(err)}
	}
	u.writeSlot(slotPath, []byte(s))
	u.numSegments = countSegments([]byte(s))
	return nil
}

// SetPathAbsolute sets the path from already-encoded bytes, requiring s to
// conform to path-absolute = "/" [ segment-nz *( "/" segment ) ] (RFC 3986
// §3.3): a leading "/" and no "//"-ambiguous first segment. Use this over
// SetEncodedPath when the caller wants the grammar enforced rather than
// just the percent-encoding.
func (u *URL) SetPathAbsolute(s string) error {
	c := grammar.NewCursor([]byte(s))
	if _, err := rfc.ParsePathAbsolute(c); err != nil || c.Pos != len(s) {
		return &Error{Op: "set_path_absolute", URL: u.String(), Err: ErrInvalidEncoding}
	}
	u.writeSlot(slotPath, []byte(s))
	u.numSegments = countSegments([]byte(s))
	return nil
}

// SetPathRootless sets the path from already-encoded bytes, requiring s to
// conform to path-rootless = segment-nz *( "/" segment ) (RFC 3986 §3.3):
// no leading "/", and a non-empty first segment.
func (u *URL) SetPathRootless(s string) error {
	c := grammar.NewCursor([]byte(s))
	if _, err := rfc.ParsePathRootless(c); err != nil || c.Pos != len(s) {
		return &Error{Op: "set_path_rootless", URL: u.String(), Err: ErrInvalidEncoding}
	}
	u.writeSlot(slotPath, []byte(s))
	u.numSegments = countSegments([]byte(s))
	return nil
}

// SetEncodedQuery sets the query content (without the leading "?"),
// recomputing the cached param count. The query becomes present even when
// s is empty, per spec.md §3's presence/emptiness distinction.
func (u *URL) SetEncodedQuery(s string) error {
	if err := pct.ValidatePercent([]byte(s)); err != nil {
		return &Error{Op: "set_encoded_query", URL: u.String(), Err: encodingErr(err)}
	}
	u.setSeparator(slotQuestion, true, "?")
	u.writeSlot(slotQuery, []byte(s))
	u.numParams = countParams([]byte(s))
	return nil
}

// RemoveQuery removes the query entirely: the component becomes absent
// and the leading "?" is removed, per spec.md §4.6 clear().
func (u *URL) RemoveQuery() {
	u.setSeparator(slotQuestion, false, "")
	u.resizeSlot(slotQuery, 0)
	u.numParams = 0
}

// SetEncodedFragment sets the fragment from already-encoded bytes. An
// empty s removes the fragment (and its leading "#").
func (u *URL) SetEncodedFragment(s string) error {
	if err := pct.ValidatePercent([]byte(s)); err != nil {
		return &Error{Op: "set_encoded_fragment", URL: u.String(), Err: encodingErr(err)}
	}
	u.setSeparator(slotHash, s != "", "#")
	u.writeSlot(slotFragment, []byte(s))
	return nil
}

// RemoveFragment removes the fragment (and its leading "#").
func (u *URL) RemoveFragment() { _ = u.SetEncodedFragment("") }
