/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "testing"

func TestSetUserinfoAndParts(t *testing.T) {
	u := New()
	if err := u.SetEncodedHost("example.com"); err != nil {
		t.Fatal(err)
	}
	if err := u.SetUserinfo("al ice", "sw0rd fish", true); err != nil {
		t.Fatal(err)
	}
	username, password, hasPassword, err := u.UserinfoParts()
	if err != nil {
		t.Fatal(err)
	}
	if username != "al ice" || password != "sw0rd fish" || !hasPassword {
		t.Fatalf("got username=%q password=%q hasPassword=%v", username, password, hasPassword)
	}
}

func TestRemoveUserinfo(t *testing.T) {
	u, err := ParseAuthority("user:pass@example.com")
	if err != nil {
		t.Fatal(err)
	}
	u.RemoveUserinfo()
	if u.HasUserinfo() {
		t.Fatal("RemoveUserinfo should clear the userinfo")
	}
	if got, want := u.EncodedHost(), "example.com"; got != want {
		t.Fatalf("host = %q, want %q", got, want)
	}
}
