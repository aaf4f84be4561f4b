/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"github.com/cespare/xxhash/v2"

	"github.com/badu/urlx/pct"
)

// HasScheme reports whether the URL has a scheme component.
func (u *URL) HasScheme() bool { return u.slots[slotScheme].len > 0 }

// EncodedScheme returns the raw scheme bytes (schemes are never percent-encoded).
func (u *URL) EncodedScheme() string { return string(u.slotBytes(slotScheme)) }

// HasAuthority reports whether the URL has an authority ("//...") part.
// A present authority may have an empty host (e.g. "file:///path").
func (u *URL) HasAuthority() bool { return u.slots[slotSlashSlash].len == 2 }

// HasUserinfo reports whether the authority carries a "user[:pass]@" part.
func (u *URL) HasUserinfo() bool { return u.slots[slotAt].len == 1 }

// EncodedUserinfo returns the raw userinfo bytes, without the "@".
func (u *URL) EncodedUserinfo() string { return string(u.slotBytes(slotUserinfo)) }

// EncodedHost returns the raw host bytes.
func (u *URL) EncodedHost() string { return string(u.slotBytes(slotHost)) }

// HasPort reports whether the authority carries a ":port" part.
func (u *URL) HasPort() bool { return u.slots[slotColonPort].len == 1 }

// Port returns the port digits, without the leading ":".
func (u *URL) Port() string { return string(u.slotBytes(slotPort)) }

// EncodedPath returns the raw path bytes (leading "/" included when absolute).
func (u *URL) EncodedPath() string { return string(u.slotBytes(slotPath)) }

// HasQuery reports whether the URL has a "?" (even if the query is empty).
func (u *URL) HasQuery() bool { return u.slots[slotQuestion].len == 1 }

// EncodedQuery returns the raw query bytes, without the leading "?".
func (u *URL) EncodedQuery() string { return string(u.slotBytes(slotQuery)) }

// HasFragment reports whether the URL has a "#".
func (u *URL) HasFragment() bool { return u.slots[slotHash].len == 1 }

// EncodedFragment returns the raw fragment bytes, without the leading "#".
func (u *URL) EncodedFragment() string { return string(u.slotBytes(slotFragment)) }

// Scheme returns the decoded scheme (identical to EncodedScheme: schemes
// carry no percent-encoding).
func (u *URL) Scheme() string { return u.EncodedScheme() }

// Userinfo returns the decoded "user[:pass]" text.
func (u *URL) Userinfo() (string, error) {
	dec, err := pct.Decode(u.slotBytes(slotUserinfo), pct.Options{})
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Host returns the decoded host text. Bracketed IP-literals are returned
// with their brackets, matching EncodedHost (punycode labels pass through
// verbatim, per spec.md's Non-goals).
func (u *URL) Host() (string, error) {
	dec, err := pct.Decode(u.slotBytes(slotHost), pct.Options{})
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Path returns the decoded path text.
func (u *URL) Path() (string, error) {
	dec, err := pct.Decode(u.slotBytes(slotPath), pct.Options{})
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Fragment returns the decoded fragment text.
func (u *URL) Fragment() (string, error) {
	dec, err := pct.Decode(u.slotBytes(slotFragment), pct.Options{})
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Equal reports whether a and b serialize to the same canonical buffer.
// Per spec.md §4.5, equality is defined on the canonical form, not on any
// decoded/normalized representation.
func Equal(a, b *URL) bool { return string(a.buf) == string(b.buf) }

// CanonicalHash hashes u's canonical buffer with xxhash, the fast
// non-cryptographic hash cockroachdb-cockroach already carries in its
// own dependency graph for map-key and checksum hashing (see DESIGN.md).
func CanonicalHash(u *URL) uint64 {
	return xxhash.Sum64(u.buf)
}
