/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package url implements a mutable URI/URL container that keeps every
// component (scheme, userinfo, host, port, path, query, fragment) stored
// in its canonical percent-encoded byte form, so editing one component
// never requires re-encoding or reparsing its neighbors. The query
// component additionally exposes a bidirectional params view
// (ParamsView) for editing "?key=value&..." pairs in place.
//
// Unlike net/url, which stores each component pre-decoded and re-encodes
// on demand, url keeps the wire bytes as the source of truth: EncodedX
// accessors return the stored bytes as-is, without decoding, and SetEncodedX
// setters validate percent-encoding but never decode it. Buffer() always
// returns exactly what was last written, with no implicit normalization.
package url
