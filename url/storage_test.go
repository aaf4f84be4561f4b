/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestResizeSlotGrowShrink(t *testing.T) {
	u := New()
	if err := u.SetEncodedScheme("http"); err != nil {
		t.Fatal(err)
	}
	if err := u.SetEncodedHost("example.com"); err != nil {
		t.Fatal(err)
	}
	if err := u.SetEncodedPath("/a/b"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "http://example.com/a/b"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if err := u.SetEncodedHost("h"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "http://h/a/b"; got != want {
		t.Fatalf("after shrink: String() = %q, want %q", got, want)
	}
	if err := u.SetEncodedHost("much-longer-hostname.example"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "http://much-longer-hostname.example/a/b"; got != want {
		t.Fatalf("after grow: String() = %q, want %q", got, want)
	}
}

func TestPresenceIsStructural(t *testing.T) {
	u := New()
	if u.HasQuery() || u.HasFragment() || u.HasAuthority() {
		t.Fatal("fresh URL should have no optional components")
	}
	if err := u.SetEncodedQuery(""); err != nil {
		t.Fatal(err)
	}
	if !u.HasQuery() {
		t.Fatal("present-but-empty query should still report HasQuery()")
	}
	if u.Params().Size() != 1 {
		t.Fatalf("present-but-empty query should have one blank param, got %d", u.Params().Size())
	}
	u.RemoveQuery()
	if u.HasQuery() || u.Params().Size() != 0 {
		t.Fatal("RemoveQuery should make the query absent")
	}
}

func TestSetPortRequiresAuthority(t *testing.T) {
	u := New()
	if err := u.SetPort("80"); err == nil {
		t.Fatal("SetPort on a URL with no authority should fail")
	}
	if err := u.SetEncodedHost("h"); err != nil {
		t.Fatal(err)
	}
	if err := u.SetPort("80"); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "//h:80"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
