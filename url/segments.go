/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"bytes"

	"github.com/badu/urlx/pct"
)

// countSegments mirrors the RFC path-abempty/path-absolute/path-rootless
// splitting rule: a leading "/" marks an absolute path whose segment count
// equals the number of "/" bytes; a rootless path's count is one more than
// its "/" count (the first segment has no leading separator).
func countSegments(path []byte) int {
	if len(path) == 0 {
		return 0
	}
	n := bytes.Count(path, []byte{'/'})
	if path[0] == '/' {
		return n
	}
	return n + 1
}

// SegmentsView is a bidirectional view over a URL's path, split on "/",
// symmetric to ParamsView (spec.md §4.7).
type SegmentsView struct{ u *URL }

// Segments returns a view over u's current path.
func (u *URL) Segments() SegmentsView { return SegmentsView{u: u} }

// IsAbsolute reports whether the path begins with "/".
func (v SegmentsView) IsAbsolute() bool {
	p := v.u.slotBytes(slotPath)
	return len(p) > 0 && p[0] == '/'
}

// HasTrailingSlash reports whether the path ends with "/" (equivalently,
// its last segment is empty).
func (v SegmentsView) HasTrailingSlash() bool {
	p := v.u.slotBytes(slotPath)
	return len(p) > 0 && p[len(p)-1] == '/'
}

// Size reports the cached segment count.
func (v SegmentsView) Size() int { return v.u.numSegments }

// Empty reports whether the path has no segments (i.e. is the empty string).
func (v SegmentsView) Empty() bool { return v.Size() == 0 }

// segmentBounds returns the encoded byte offsets (relative to the path
// slot, not the whole buffer) of the i'th segment (0-based), by walking
// "/"-delimited pieces the same way countSegments does.
func (v SegmentsView) segmentBounds(i int) (start, end int) {
	p := v.u.slotBytes(slotPath)
	pos := 0
	if len(p) > 0 && p[0] == '/' {
		pos = 1
	}
	idx := 0
	segStart := pos
	for pos <= len(p) {
		if pos == len(p) || p[pos] == '/' {
			if idx == i {
				return segStart, pos
			}
			idx++
			segStart = pos + 1
		}
		pos++
	}
	return len(p), len(p)
}

// EncodedAt returns the i'th segment's raw bytes.
func (v SegmentsView) EncodedAt(i int) string {
	p := v.u.slotBytes(slotPath)
	s, e := v.segmentBounds(i)
	return string(p[s:e])
}

// At returns the i'th segment, percent-decoded.
func (v SegmentsView) At(i int) (string, error) {
	dec, err := pct.Decode([]byte(v.EncodedAt(i)), pct.Options{})
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// ToSlice decodes every segment into a slice, in order.
func (v SegmentsView) ToSlice() ([]string, error) {
	out := make([]string, v.Size())
	for i := range out {
		s, err := v.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// AssignEncoded replaces the whole path with segs, already percent-encoded,
// joined by "/". absolute controls whether a leading "/" is written.
func (v SegmentsView) AssignEncoded(segs []string, absolute bool) error {
	var buf bytes.Buffer
	if absolute {
		buf.WriteByte('/')
	}
	for i, s := range segs {
		if i > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(s)
	}
	return v.u.SetEncodedPath(buf.String())
}

// Assign replaces the whole path with segs, encoding each with
// pct.PathSegmentSet.
func (v SegmentsView) Assign(segs []string, absolute bool) error {
	enc := make([]string, len(segs))
	for i, s := range segs {
		enc[i] = string(pct.Encode([]byte(s), pct.PathSegmentSet, pct.Options{}))
	}
	return v.AssignEncoded(enc, absolute)
}

// Clear removes every segment, leaving the path empty (not even "/").
func (v SegmentsView) Clear() error { return v.u.SetEncodedPath("") }

// InsertEncoded inserts seg (already percent-encoded) before index i.
func (v SegmentsView) InsertEncoded(i int, seg string) error {
	segs := v.allEncoded()
	if i < 0 || i > len(segs) {
		i = len(segs)
	}
	out := make([]string, 0, len(segs)+1)
	out = append(out, segs[:i]...)
	out = append(out, seg)
	out = append(out, segs[i:]...)
	return v.AssignEncoded(out, v.IsAbsolute())
}

// Insert inserts seg, percent-encoding it first, before index i.
func (v SegmentsView) Insert(i int, seg string) error {
	return v.InsertEncoded(i, string(pct.Encode([]byte(seg), pct.PathSegmentSet, pct.Options{})))
}

// ReplaceEncoded overwrites the i'th segment with seg (already percent-encoded).
func (v SegmentsView) ReplaceEncoded(i int, seg string) error {
	segs := v.allEncoded()
	if i < 0 || i >= len(segs) {
		return &Error{Op: "segments_replace", URL: v.u.String(), Err: ErrOversize}
	}
	segs[i] = seg
	return v.AssignEncoded(segs, v.IsAbsolute())
}

// Erase removes the i'th segment.
func (v SegmentsView) Erase(i int) error {
	segs := v.allEncoded()
	if i < 0 || i >= len(segs) {
		return &Error{Op: "segments_erase", URL: v.u.String(), Err: ErrOversize}
	}
	out := append(segs[:i:i], segs[i+1:]...)
	return v.AssignEncoded(out, v.IsAbsolute())
}

// AppendEncoded inserts seg (already percent-encoded) after the last
// segment, returning an iterator at its new position.
func (v SegmentsView) AppendEncoded(seg string) (SegmentsIterator, error) {
	i := v.Size()
	if err := v.InsertEncoded(i, seg); err != nil {
		return SegmentsIterator{}, err
	}
	return SegmentsIterator{v: v, idx: i}, nil
}

// Append percent-encodes seg and inserts it after the last segment.
func (v SegmentsView) Append(seg string) (SegmentsIterator, error) {
	return v.AppendEncoded(string(pct.Encode([]byte(seg), pct.PathSegmentSet, pct.Options{})))
}

// Begin returns an iterator at the first segment.
func (v SegmentsView) Begin() SegmentsIterator { return SegmentsIterator{v: v, idx: 0} }

// End returns an iterator one past the last segment, matching ParamsView's
// End() convention.
func (v SegmentsView) End() SegmentsIterator { return SegmentsIterator{v: v, idx: v.Size()} }

// IteratorAt returns an iterator at index i, without bounds-checking it.
func (v SegmentsView) IteratorAt(i int) SegmentsIterator { return SegmentsIterator{v: v, idx: i} }

func (v SegmentsView) allEncoded() []string {
	out := make([]string, v.Size())
	for i := range out {
		out[i] = v.EncodedAt(i)
	}
	return out
}

// SegmentsIterator identifies one path segment by its ordinal index,
// mirroring ParamsIterator's role in the params engine. Unlike
// ParamsIterator it caches no byte offset: segmentBounds is already an
// O(n) walk from the start of the path on every call (there is no "&"-style
// separator to scan forward from), so caching a position here would save
// nothing. A SegmentsIterator is a plain value and safe to copy.
type SegmentsIterator struct {
	v   SegmentsView
	idx int
}

// Index returns the iterator's ordinal position within its SegmentsView.
func (it SegmentsIterator) Index() int { return it.idx }

// Encoded returns the segment's raw, percent-encoded bytes.
func (it SegmentsIterator) Encoded() string { return it.v.EncodedAt(it.idx) }

// Get returns the segment, percent-decoded.
func (it SegmentsIterator) Get() (string, error) { return it.v.At(it.idx) }

// Next returns the iterator for the segment immediately after it.
func (it SegmentsIterator) Next() SegmentsIterator {
	return SegmentsIterator{v: it.v, idx: it.idx + 1}
}

// Prev returns the iterator for the segment immediately before it.
func (it SegmentsIterator) Prev() SegmentsIterator {
	return SegmentsIterator{v: it.v, idx: it.idx - 1}
}

// NormalizePath removes "." and ".." dot-segments per RFC 3986 §5.2.4,
// adapted from the teacher's resolvePath. It operates on decoded segments
// and returns the merged segment slice; it never looks outside segs.
func NormalizePath(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
			// Drop: refers to the current segment, contributes nothing.
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, s)
		}
	}
	return out
}
