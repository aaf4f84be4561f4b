/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// IsAbs reports whether u has a scheme.
func (u *URL) IsAbs() bool { return u.HasScheme() }

// Hostname returns the encoded host without its port, and without the
// brackets around an IPv6 literal.
func (u *URL) Hostname() string {
	h := u.EncodedHost()
	if len(h) > 0 && h[0] == '[' {
		if i := strings.IndexByte(h, ']'); i >= 0 {
			return h[1:i]
		}
	}
	return h
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := &URL{
		buf:         append([]byte(nil), u.buf...),
		slots:       u.slots,
		numSegments: u.numSegments,
		numParams:   u.numParams,
	}
	return c
}

func copyAuthority(dst, src *URL) error {
	if !src.HasAuthority() {
		dst.RemoveAuthority()
		return nil
	}
	if err := dst.SetEncodedHost(src.EncodedHost()); err != nil {
		return err
	}
	if src.HasUserinfo() {
		if err := dst.SetEncodedUserinfo(src.EncodedUserinfo()); err != nil {
			return err
		}
	}
	if src.HasPort() {
		if err := dst.SetPort(src.Port()); err != nil {
			return err
		}
	}
	return nil
}

// mergePath implements RFC 3986 §5.3's merge(): the reference path is
// appended after the base path's last "/", or after "/" alone when base
// has an authority but an empty path.
func mergePath(basePath, refPath string, baseHasAuthority bool) string {
	if baseHasAuthority && basePath == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(basePath, '/'); i >= 0 {
		return basePath[:i+1] + refPath
	}
	return refPath
}

// removeDotSegments implements RFC 3986 §5.2.4's remove_dot_segments
// algorithm directly on the encoded path, so "." and ".." segments are
// only ever recognized in their literal (unescaped) form, matching the
// RFC's own worked algorithm.
func removeDotSegments(path string) string {
	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == ".", in == "..":
			in = ""
		default:
			i := 0
			if in[0] == '/' {
				i = 1
			}
			j := strings.IndexByte(in[i:], '/')
			if j == -1 {
				j = len(in)
			} else {
				j += i
			}
			out = append(out, in[:j])
			in = in[j:]
		}
	}
	return strings.Join(out, "")
}

// ResolveReference resolves ref against u per RFC 3986 §5.3, adapted from
// the teacher's ResolveReference/resolvePath pair to operate over this
// package's position-table URL instead of net/url's decoded struct
// fields. It always returns a new *URL; neither u nor ref is mutated.
func (u *URL) ResolveReference(ref *URL) (*URL, error) {
	out := New()
	if ref.HasScheme() {
		if err := out.SetEncodedScheme(ref.EncodedScheme()); err != nil {
			return nil, err
		}
		if err := copyAuthority(out, ref); err != nil {
			return nil, err
		}
		if err := out.SetEncodedPath(removeDotSegments(ref.EncodedPath())); err != nil {
			return nil, err
		}
		if ref.HasQuery() {
			if err := out.SetEncodedQuery(ref.EncodedQuery()); err != nil {
				return nil, err
			}
		}
	} else {
		if err := out.SetEncodedScheme(u.EncodedScheme()); err != nil {
			return nil, err
		}
		switch {
		case ref.HasAuthority():
			if err := copyAuthority(out, ref); err != nil {
				return nil, err
			}
			if err := out.SetEncodedPath(removeDotSegments(ref.EncodedPath())); err != nil {
				return nil, err
			}
			if ref.HasQuery() {
				if err := out.SetEncodedQuery(ref.EncodedQuery()); err != nil {
					return nil, err
				}
			}
		case ref.EncodedPath() == "":
			if err := copyAuthority(out, u); err != nil {
				return nil, err
			}
			if err := out.SetEncodedPath(u.EncodedPath()); err != nil {
				return nil, err
			}
			if ref.HasQuery() {
				if err := out.SetEncodedQuery(ref.EncodedQuery()); err != nil {
					return nil, err
				}
			} else if u.HasQuery() {
				if err := out.SetEncodedQuery(u.EncodedQuery()); err != nil {
					return nil, err
				}
			}
		default:
			if err := copyAuthority(out, u); err != nil {
				return nil, err
			}
			merged := ref.EncodedPath()
			if !strings.HasPrefix(merged, "/") {
				merged = mergePath(u.EncodedPath(), ref.EncodedPath(), u.HasAuthority())
			}
			if err := out.SetEncodedPath(removeDotSegments(merged)); err != nil {
				return nil, err
			}
			if ref.HasQuery() {
				if err := out.SetEncodedQuery(ref.EncodedQuery()); err != nil {
					return nil, err
				}
			}
		}
	}
	if ref.HasFragment() {
		if err := out.SetEncodedFragment(ref.EncodedFragment()); err != nil {
			return nil, err
		}
	}
	return out, nil
}
