/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"errors"
	"testing"
)

func TestSetHostKeepsIPLiteralBrackets(t *testing.T) {
	u := New()
	if err := u.SetHost("[::1]"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.Hostname(), "::1"; got != want {
		t.Fatalf("Hostname() = %q, want %q", got, want)
	}
}

func TestRemoveFragment(t *testing.T) {
	u, err := ParseURIReference("http://example.com/a#frag")
	if err != nil {
		t.Fatal(err)
	}
	u.RemoveFragment()
	if u.HasFragment() || u.String() != "http://example.com/a" {
		t.Fatalf("RemoveFragment left %q", u.String())
	}
}

// TestSetEncodedQueryRejectsMalformedPercentLeavesURLUnchanged exercises the
// strong exception guarantee: a setter that rejects its input must not have
// mutated the URL at all, not even partially.
func TestSetEncodedQueryRejectsMalformedPercentLeavesURLUnchanged(t *testing.T) {
	u, err := ParseURIReference("http://example.com/a?x=1#frag")
	if err != nil {
		t.Fatal(err)
	}
	before := u.String()
	if err := u.SetEncodedQuery("y=%2"); err == nil {
		t.Fatal("expected an error for a truncated percent-escape")
	}
	if got := u.String(); got != before {
		t.Fatalf("SetEncodedQuery left the URL mutated: got %q, want %q", got, before)
	}
}

// TestSetEncodedPathRejectsMalformedPercentLeavesURLUnchanged is the same
// guarantee exercised against SetEncodedPath instead of SetEncodedQuery.
func TestSetEncodedPathRejectsMalformedPercentLeavesURLUnchanged(t *testing.T) {
	u, err := ParseURIReference("http://example.com/a/b?x=1")
	if err != nil {
		t.Fatal(err)
	}
	before := u.String()
	if err := u.SetEncodedPath("/a/%zz"); err == nil {
		t.Fatal("expected an error for a non-hex percent-escape")
	}
	if got := u.String(); got != before {
		t.Fatalf("SetEncodedPath left the URL mutated: got %q, want %q", got, before)
	}
}

// TestSetEncodedPathRejectsNULTagsErrIllegalNull checks that a raw NUL byte
// or a "%00" escape is rejected with ErrIllegalNull specifically, not the
// generic ErrInvalidEncoding.
func TestSetEncodedPathRejectsNULTagsErrIllegalNull(t *testing.T) {
	u := New()
	if err := u.SetEncodedPath("/a/%00/b"); !errors.Is(err, ErrIllegalNull) {
		t.Fatalf("err = %v, want ErrIllegalNull", err)
	}
	if err := u.SetEncodedPath("/a/\x00/b"); !errors.Is(err, ErrIllegalNull) {
		t.Fatalf("err = %v, want ErrIllegalNull", err)
	}
}

func TestSetPathAbsoluteRequiresLeadingSlash(t *testing.T) {
	u := New()
	if err := u.SetPathAbsolute("a/b"); err == nil {
		t.Fatal("expected an error for a path missing its leading slash")
	}
	if err := u.SetPathAbsolute("/a/b"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "/a/b"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}

func TestSetPathRootlessRejectsLeadingSlash(t *testing.T) {
	u := New()
	if err := u.SetPathRootless("/a/b"); err == nil {
		t.Fatal("expected an error for a path starting with a slash")
	}
	if err := u.SetPathRootless("a/b"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedPath(), "a/b"; got != want {
		t.Fatalf("path = %q, want %q", got, want)
	}
}
