/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestResolveReference(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://example.com/a/b", "c", "http://example.com/a/c"},
		{"http://example.com/a/b/", "c", "http://example.com/a/b/c"},
		{"http://example.com/a/b", "/c", "http://example.com/c"},
		{"http://example.com/a/b", "../c", "http://example.com/c"},
		{"http://example.com/a/b", "http://other.com/x", "http://other.com/x"},
		{"http://example.com/a/b", "?q=1", "http://example.com/a/b?q=1"},
		{"http://example.com/a/b?x=1", "", "http://example.com/a/b?x=1"},
		{"http://example.com/a/b", "#frag", "http://example.com/a/b#frag"},
		{"http://example.com/a/b/c", "./d", "http://example.com/a/b/d"},
	}
	for _, c := range cases {
		base, err := ParseURIReference(c.base)
		if err != nil {
			t.Fatalf("base %q: %v", c.base, err)
		}
		ref, err := ParseURIReference(c.ref)
		if err != nil {
			t.Fatalf("ref %q: %v", c.ref, err)
		}
		got, err := base.ResolveReference(ref)
		if err != nil {
			t.Fatalf("ResolveReference(%q, %q): %v", c.base, c.ref, err)
		}
		if got.String() != c.want {
			t.Errorf("ResolveReference(%q, %q) = %q, want %q", c.base, c.ref, got.String(), c.want)
		}
	}
}

func TestEqualAndHash(t *testing.T) {
	a, _ := ParseURIReference("http://example.com/a?b=1")
	b, _ := ParseURIReference("http://example.com/a?b=1")
	c, _ := ParseURIReference("http://example.com/a?b=2")
	if !Equal(a, b) {
		t.Fatal("identical URLs should be Equal")
	}
	if Equal(a, c) {
		t.Fatal("differing URLs should not be Equal")
	}
	if CanonicalHash(a) != CanonicalHash(b) {
		t.Fatal("identical URLs should hash equal")
	}
}

func TestClone(t *testing.T) {
	orig, err := ParseURIReference("http://example.com/a?b=1")
	if err != nil {
		t.Fatal(err)
	}
	clone := orig.Clone()
	if clone.String() != orig.String() {
		t.Fatalf("clone = %q, want %q", clone.String(), orig.String())
	}
	if err := clone.SetEncodedHost("other.com"); err != nil {
		t.Fatal(err)
	}
	if orig.EncodedHost() != "example.com" {
		t.Fatalf("mutating clone changed original host to %q", orig.EncodedHost())
	}
}

func TestHostname(t *testing.T) {
	u, err := ParseURIReference("http://[::1]:8080/x")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.Hostname(), "::1"; got != want {
		t.Fatalf("Hostname() = %q, want %q", got, want)
	}
	if got, want := u.Port(), "8080"; got != want {
		t.Fatalf("Port() = %q, want %q", got, want)
	}
}
