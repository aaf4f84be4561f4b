/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"bytes"

	"github.com/badu/urlx/pct"
)

// ParamsIterator identifies one param within a query by its byte offset
// (relative to the query content, not the whole buffer) and its ordinal
// index. Copying a ParamsIterator is cheap and safe; it is a value, not a
// pointer into the buffer, so it survives any mutation that happens to
// invalidate the buffer it was read from as long as the index it names is
// re-read afterward.
type ParamsIterator struct {
	u   *URL
	pos int
	idx int
}

// Index returns it's ordinal position within its ParamsView.
func (it ParamsIterator) Index() int { return it.idx }

func (it ParamsIterator) queryBytes() []byte { return it.u.slotBytes(slotQuery) }

// bounds returns (keyStart, keyEnd, valStart, valEnd, nextPos, hasValue) for
// the param starting at it.pos.
func (it ParamsIterator) bounds() (keyStart, keyEnd, valStart, valEnd, nextPos int, hasValue bool) {
	q := it.queryBytes()
	end := len(q)
	if amp := bytes.IndexByte(q[it.pos:], '&'); amp >= 0 {
		end = it.pos + amp
	}
	keyStart = it.pos
	if eq := bytes.IndexByte(q[it.pos:end], '='); eq >= 0 {
		keyEnd = it.pos + eq
		hasValue = true
		valStart = keyEnd + 1
		valEnd = end
	} else {
		keyEnd = end
		valStart = end
		valEnd = end
	}
	nextPos = end + 1
	return
}

// encodedParam decodes the current param without percent-decoding its
// key or value.
func (it ParamsIterator) encodedParam() EncodedParam {
	q := it.queryBytes()
	ks, ke, vs, ve, _, hasValue := it.bounds()
	return EncodedParam{Key: string(q[ks:ke]), HasValue: hasValue, Value: string(q[vs:ve])}
}

// Get returns the percent-decoded param at it, using opts for the
// form-urlencoded "+" convention when the iterator came from a Form view.
func (it ParamsIterator) Get(opts pct.Options) (Param, error) {
	ep := it.encodedParam()
	key, err := pct.Decode([]byte(ep.Key), opts)
	if err != nil {
		return Param{}, err
	}
	p := Param{Key: string(key), HasValue: ep.HasValue}
	if ep.HasValue {
		val, err := pct.Decode([]byte(ep.Value), opts)
		if err != nil {
			return Param{}, err
		}
		p.Value = string(val)
	}
	return p, nil
}

// Next returns the iterator for the param immediately after it.
func (it ParamsIterator) Next() ParamsIterator {
	_, _, _, _, nextPos, _ := it.bounds()
	return ParamsIterator{u: it.u, pos: nextPos, idx: it.idx + 1}
}

// Prev returns the iterator for the param immediately before it.
func (it ParamsIterator) Prev() ParamsIterator {
	q := it.queryBytes()
	sepPos := it.pos - 1
	prevStart := bytes.LastIndexByte(q[:sepPos], '&') + 1
	return ParamsIterator{u: it.u, pos: prevStart, idx: it.idx - 1}
}
