/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// slotID indexes the flat, fixed-width raw byte layout backing the
// position table: content slots interleaved with the literal separator
// bytes that precede or follow them. A separator's length is always 0
// (absent) or its fixed width (1 for ":"/"@"/"?"/"#", 2 for "//"); its
// length doubles as that component's presence flag, so no extra bool is
// needed anywhere in URL (spec.md §3's presence flag, encoded structurally).
type slotID int

const (
	slotScheme slotID = iota
	slotColonScheme // ":" after scheme
	slotSlashSlash  // "//" before authority
	slotUserinfo
	slotAt // "@" after userinfo
	slotHost
	slotColonPort // ":" before port
	slotPort
	slotPath
	slotQuestion // "?" before query
	slotQuery
	slotHash // "#" before fragment
	slotFragment
	numSlots
)

// span is one entry of the position table P (spec.md §3): an offset into
// the canonical buffer and a length.
type span struct {
	off, len int
}

// URL is a mutable URI/URL container. It owns its buffer and position
// table; every mutating method preserves the table's invariants
// (spec.md §3) and returns a non-nil error — leaving u unchanged — if the
// input is malformed, per spec.md §7's strong guarantee.
type URL struct {
	buf   []byte
	slots [numSlots]span

	numSegments int // cached path segment count, for SegmentsView
	numParams   int // cached query param count, for ParamsView
}

// New returns an empty URL (no scheme, no authority, empty path, no
// query, no fragment) — equivalent to parsing "".
func New() *URL { return &URL{} }

// Buffer returns the canonical serialized form. Mutating u invalidates
// the returned slice's validity as a snapshot (it aliases u's storage).
func (u *URL) Buffer() []byte { return u.buf }

// String returns the canonical serialized form as a string.
func (u *URL) String() string { return string(u.buf) }

// resizeSlot is the shift primitive (spec.md §4.4 resize_impl): it grows
// or shrinks slot i to newLen, shifting every byte after it and updating
// every later slot's offset, then returns a writable slice over slot i's
// new content.
func (u *URL) resizeSlot(i slotID, newLen int) []byte {
	old := u.slots[i]
	delta := newLen - old.len
	if delta > 0 {
		oldTotal := len(u.buf)
		u.buf = append(u.buf, make([]byte, delta)...)
		copy(u.buf[old.off+old.len+delta:], u.buf[old.off+old.len:oldTotal])
	} else if delta < 0 {
		oldTotal := len(u.buf)
		copy(u.buf[old.off+newLen:oldTotal+delta], u.buf[old.off+old.len:oldTotal])
		u.buf = u.buf[:oldTotal+delta]
	}
	u.slots[i].len = newLen
	if delta != 0 {
		for j := i + 1; j < numSlots; j++ {
			u.slots[j].off += delta
		}
	}
	return u.buf[u.slots[i].off : u.slots[i].off+newLen]
}

// writeSlot resizes slot i to len(content) and copies content into it.
func (u *URL) writeSlot(i slotID, content []byte) {
	dst := u.resizeSlot(i, len(content))
	copy(dst, content)
}

// slotBytes returns a read-only view of slot i's current content.
func (u *URL) slotBytes(i slotID) []byte {
	s := u.slots[i]
	return u.buf[s.off : s.off+s.len]
}

// setSeparator resizes a fixed-width separator slot to width (present) or
// 0 (absent), writing lit when turning it on. Callers must call this
// before or after writing the slot's paired content slot; resizeSlot's
// cascading offset update keeps both consistent regardless of order.
func (u *URL) setSeparator(i slotID, present bool, lit string) {
	if present {
		u.writeSlot(i, []byte(lit))
	} else {
		u.resizeSlot(i, 0)
	}
}

