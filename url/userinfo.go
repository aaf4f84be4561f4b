/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "github.com/badu/urlx/pct"

// SetEncodedUserinfo sets the "user[:pass]@" part of the authority from
// already-encoded bytes. An empty s removes the userinfo (and its "@").
// SetEncodedUserinfo requires the URL to already have an authority; use
// SetEncodedHost first if the URL currently has none.
func (u *URL) SetEncodedUserinfo(s string) error {
	if !u.HasAuthority() && s != "" {
		return &Error{Op: "set_encoded_userinfo", URL: u.String(), Err: errMissingAuthority}
	}
	if err := pct.ValidatePercent([]byte(s)); err != nil {
		return &Error{Op: "set_encoded_userinfo", URL: u.String(), Err: encodingErr(err)}
	}
	u.setSeparator(slotAt, s != "", "@")
	u.writeSlot(slotUserinfo, []byte(s))
	return nil
}

// SetUserinfo encodes username and password (if set) and installs them as
// the authority's userinfo, per RFC 3986's userinfo production.
func (u *URL) SetUserinfo(username string, password string, hasPassword bool) error {
	enc := string(pct.Encode([]byte(username), pct.UserinfoSet, pct.Options{}))
	if hasPassword {
		enc += ":" + string(pct.Encode([]byte(password), pct.UserinfoSet, pct.Options{}))
	}
	return u.SetEncodedUserinfo(enc)
}

// RemoveUserinfo removes the "user[:pass]@" part, keeping the rest of the
// authority untouched.
func (u *URL) RemoveUserinfo() { _ = u.SetEncodedUserinfo("") }

// UserinfoParts splits the decoded userinfo into a username and an
// optional password, mirroring the teacher's Userinfo.Username/Password
// accessors but operating on this URL's current userinfo component
// instead of a detached value type.
func (u *URL) UserinfoParts() (username string, password string, hasPassword bool, err error) {
	dec, err := pct.Decode(u.slotBytes(slotUserinfo), pct.Options{})
	if err != nil {
		return "", "", false, err
	}
	for i, b := range dec {
		if b == ':' {
			return string(dec[:i]), string(dec[i+1:]), true, nil
		}
	}
	return string(dec), "", false, nil
}
