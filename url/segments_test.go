/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestSegmentsToSlice(t *testing.T) {
	u, err := ParsePathAbsolute("/a/b%2Fc/")
	if err != nil {
		t.Fatal(err)
	}
	segs, err := u.Segments().ToSlice()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b/c", ""}
	if len(segs) != len(want) {
		t.Fatalf("segs = %v, want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, segs[i], want[i])
		}
	}
	if !u.Segments().HasTrailingSlash() {
		t.Fatal("expected trailing slash")
	}
	if !u.Segments().IsAbsolute() {
		t.Fatal("expected absolute path")
	}
}

func TestSegmentsInsertAndErase(t *testing.T) {
	u := New()
	if err := u.Segments().Assign([]string{"a", "b"}, true); err != nil {
		t.Fatal(err)
	}
	if err := u.Segments().Insert(1, "x"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "/a/x/b"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
	if err := u.Segments().Erase(0); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "/x/b"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestSegmentsReplaceEncoded(t *testing.T) {
	u := New()
	if err := u.Segments().Assign([]string{"a", "b", "c"}, true); err != nil {
		t.Fatal(err)
	}
	if err := u.Segments().ReplaceEncoded(1, "x%2Fy"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "/a/x%2Fy/c"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
	if err := u.Segments().ReplaceEncoded(5, "z"); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestSegmentsAppendEncoded(t *testing.T) {
	u := New()
	if err := u.Segments().Assign([]string{"a", "b"}, true); err != nil {
		t.Fatal(err)
	}
	it, err := u.Segments().AppendEncoded("c%2Fd")
	if err != nil {
		t.Fatal(err)
	}
	if it.Index() != 2 {
		t.Fatalf("index = %d, want 2", it.Index())
	}
	if got, want := u.EncodedPath(), "/a/b/c%2Fd"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
	got, err := it.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != "c/d" {
		t.Fatalf("Get() = %q, want %q", got, "c/d")
	}
}

func TestSegmentsAppendPercentEncodes(t *testing.T) {
	u := New()
	if _, err := u.Segments().Append("a b"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "a%20b"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestSegmentsIteratorNextPrev(t *testing.T) {
	u := New()
	if err := u.Segments().Assign([]string{"a", "b", "c"}, true); err != nil {
		t.Fatal(err)
	}
	it := u.Segments().Begin().Next()
	if got, err := it.Get(); err != nil || got != "b" {
		t.Fatalf("Get() = %q, %v, want %q", got, err, "b")
	}
	if back := it.Next().Prev(); back != it {
		t.Fatalf("Next().Prev() = %+v, want %+v", back, it)
	}
}

func TestNormalizePath(t *testing.T) {
	got := NormalizePath([]string{"a", ".", "b", "..", "c"})
	want := []string{"a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
