/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"bytes"

	"github.com/badu/urlx/pct"
)

// countParams mirrors the query grammar's "&"-split rule: an empty query
// still has one (blank, valueless) param, per spec.md §4.6.
func countParams(query []byte) int { return bytes.Count(query, []byte{'&'}) + 1 }

// EncodedParam is a query pair already in percent-encoded form — the shape
// every ParamsView mutator accepts and returns, per spec.md §4.6's "input
// key/value strings are treated as already percent-encoded".
type EncodedParam struct {
	Key      string
	HasValue bool
	Value    string
}

// Param is a query pair with its key and value percent-decoded.
type Param struct {
	Key      string
	HasValue bool
	Value    string
}

func (p EncodedParam) serialize() string {
	if !p.HasValue {
		return p.Key
	}
	return p.Key + "=" + p.Value
}

func joinParams(list []EncodedParam) string {
	var buf bytes.Buffer
	for i, p := range list {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(p.serialize())
	}
	return buf.String()
}

// ParamsView is a bidirectional, index-stable, percent-encoding-aware view
// over a URL's query component — spec.md §4.6, the core of this module.
type ParamsView struct {
	u    *URL
	form bool // application/x-www-form-urlencoded mode, spec.md §6
}

// Params returns a view over u's current query.
func (u *URL) Params() ParamsView { return ParamsView{u: u} }

// Form returns a form-urlencoded variant of v: ToSlice decodes "+" as a
// space. The mutators take already-encoded EncodedParam values and write
// them unchanged in form mode too: they do not turn spaces into "+" and
// do not percent-escape "=" or "&".
func (v ParamsView) Form() ParamsView { v.form = true; return v }

func (v ParamsView) codecOpts() pct.Options {
	return pct.Options{SpaceAsPlus: v.form, PlusAsSpace: v.form}
}

// Size reports the cached element count. An absent query has Size() == 0;
// a present-but-empty query ("?") has Size() == 1, per spec.md §4.6.
func (v ParamsView) Size() int {
	if !v.u.HasQuery() {
		return 0
	}
	return v.u.numParams
}

// Empty reports Size() == 0.
func (v ParamsView) Empty() bool { return v.Size() == 0 }

// Begin returns an iterator to the first param.
func (v ParamsView) Begin() ParamsIterator { return ParamsIterator{u: v.u} }

// End returns the past-end iterator. For a present query its byte offset
// is one past the query's end, where Next() leaves the last param's
// iterator; for an absent query End() equals Begin().
func (v ParamsView) End() ParamsIterator {
	n := v.Size()
	if n == 0 {
		return ParamsIterator{u: v.u}
	}
	return ParamsIterator{u: v.u, pos: len(v.u.slotBytes(slotQuery)) + 1, idx: n}
}

// IteratorAt returns the iterator at position idx (0..Size()), walking
// forward from Begin().
func (v ParamsView) IteratorAt(idx int) ParamsIterator {
	it := v.Begin()
	for it.idx < idx {
		it = it.Next()
	}
	return it
}

// list splits the whole query into an EncodedParam slice. An absent
// query yields an empty slice.
func (v ParamsView) list() []EncodedParam {
	n := v.Size()
	out := make([]EncodedParam, 0, n)
	for it := v.Begin(); it.idx < n; it = it.Next() {
		out = append(out, it.encodedParam())
	}
	return out
}

// rebuildPresent rewrites the whole query from list, leaving the query
// present (even if list serializes to the empty string), per the chosen
// resolution of spec.md §9's open question: only Clear removes the "?".
func (v ParamsView) rebuildPresent(list []EncodedParam) error {
	return v.u.SetEncodedQuery(joinParams(list))
}

// Clear removes the query entirely: the component becomes absent and the
// leading "?" is removed.
func (v ParamsView) Clear() { v.u.RemoveQuery() }

// Match reports whether candidateKey (already percent-encoded) equals
// queryKey, decoding both on the fly, per spec.md §4.6.
func Match(candidateKey, queryKey string, caseInsensitive bool) bool {
	return pct.Equal([]byte(candidateKey), []byte(queryKey), caseInsensitive)
}

// Contains reports whether any param's key matches k.
func (v ParamsView) Contains(k string, caseInsensitive bool) bool {
	return v.Find(v.Begin(), k, caseInsensitive) != v.End()
}

// Count counts params whose key matches k.
func (v ParamsView) Count(k string, caseInsensitive bool) int {
	n := 0
	end := v.End()
	for it := v.Begin(); it != end; it = it.Next() {
		if Match(it.encodedParam().Key, k, caseInsensitive) {
			n++
		}
	}
	return n
}

// Find returns the first iterator at or after from whose key matches k, or
// End() if none does.
func (v ParamsView) Find(from ParamsIterator, k string, caseInsensitive bool) ParamsIterator {
	end := v.End()
	for it := from; it != end; it = it.Next() {
		if Match(it.encodedParam().Key, k, caseInsensitive) {
			return it
		}
	}
	return end
}

// Assign replaces the whole query with list. An empty list leaves presence
// unchanged (present-empty if the URL already had a "?", absent
// otherwise), per spec.md §4.6's assign() contract.
func (v ParamsView) Assign(list []EncodedParam) error {
	if len(list) == 0 {
		if v.u.HasQuery() {
			return v.u.SetEncodedQuery("")
		}
		return nil
	}
	return v.u.SetEncodedQuery(joinParams(list))
}

// Append appends items at the end, inserting a "&" before them even when
// the query was present-but-empty (so "" + {y} becomes "&y"), per spec.md
// §4.6's preserved-separator principle. Returns an iterator to the first
// newly inserted element.
func (v ParamsView) Append(items ...EncodedParam) (ParamsIterator, error) {
	old := v.list()
	if err := v.rebuildPresent(append(old, items...)); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(len(old)), nil
}

// Insert inserts items before the position it identifies. Returns an
// iterator to the first inserted element.
func (v ParamsView) Insert(before ParamsIterator, items ...EncodedParam) (ParamsIterator, error) {
	old := v.list()
	idx := before.idx
	out := make([]EncodedParam, 0, len(old)+len(items))
	out = append(out, old[:idx]...)
	out = append(out, items...)
	out = append(out, old[idx:]...)
	if err := v.rebuildPresent(out); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(idx), nil
}

// Replace overwrites the param at it with p, returning an iterator to it.
func (v ParamsView) Replace(it ParamsIterator, p EncodedParam) (ParamsIterator, error) {
	return v.ReplaceRange(it, it.Next(), []EncodedParam{p})
}

// ReplaceRange overwrites [first, last) with items, returning an iterator
// to the first replaced element.
func (v ParamsView) ReplaceRange(first, last ParamsIterator, items []EncodedParam) (ParamsIterator, error) {
	old := v.list()
	out := make([]EncodedParam, 0, len(old)-(last.idx-first.idx)+len(items))
	out = append(out, old[:first.idx]...)
	out = append(out, items...)
	out = append(out, old[last.idx:]...)
	if err := v.rebuildPresent(out); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(first.idx), nil
}

// Erase removes the param at it, returning an iterator to the next element
// (spec.md §8 invariant 5: equals begin()+index_of(it) in the new sequence).
func (v ParamsView) Erase(it ParamsIterator) (ParamsIterator, error) {
	return v.EraseRange(it, it.Next())
}

// EraseRange removes [first, last), returning an iterator mapped to first's
// old index in the new sequence.
func (v ParamsView) EraseRange(first, last ParamsIterator) (ParamsIterator, error) {
	old := v.list()
	out := make([]EncodedParam, 0, len(old)-(last.idx-first.idx))
	out = append(out, old[:first.idx]...)
	out = append(out, old[last.idx:]...)
	if err := v.rebuildPresent(out); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(first.idx), nil
}

// EraseKey removes every param whose key matches k, returning the count removed.
func (v ParamsView) EraseKey(k string, caseInsensitive bool) (int, error) {
	old := v.list()
	out := make([]EncodedParam, 0, len(old))
	removed := 0
	for _, p := range old {
		if Match(p.Key, k, caseInsensitive) {
			removed++
			continue
		}
		out = append(out, p)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, v.rebuildPresent(out)
}

// Set writes value into the param at it and marks it has-value, per
// spec.md §9's resolution of the "empty value" open question (emits
// "key=", never bare "key" — use Unset for that).
func (v ParamsView) Set(it ParamsIterator, value string) (ParamsIterator, error) {
	old := v.list()
	old[it.idx].HasValue = true
	old[it.idx].Value = value
	if err := v.rebuildPresent(old); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(it.idx), nil
}

// SetKey sets the value for key k: if any param's key matches, the first
// match's value is updated and every other match is erased; otherwise k=v
// is appended. Returns an iterator to the (now single) match.
func (v ParamsView) SetKey(k, value string, caseInsensitive bool) (ParamsIterator, error) {
	old := v.list()
	firstIdx := -1
	out := make([]EncodedParam, 0, len(old)+1)
	for _, p := range old {
		if Match(p.Key, k, caseInsensitive) {
			if firstIdx == -1 {
				firstIdx = len(out)
				out = append(out, EncodedParam{Key: p.Key, HasValue: true, Value: value})
			}
			continue
		}
		out = append(out, p)
	}
	if firstIdx == -1 {
		firstIdx = len(out)
		out = append(out, EncodedParam{Key: k, HasValue: true, Value: value})
	}
	if err := v.rebuildPresent(out); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(firstIdx), nil
}

// Unset clears has-value on the param at it, removing any "=" and value
// bytes; the key remains.
func (v ParamsView) Unset(it ParamsIterator) (ParamsIterator, error) {
	old := v.list()
	old[it.idx].HasValue = false
	old[it.idx].Value = ""
	if err := v.rebuildPresent(old); err != nil {
		return ParamsIterator{}, err
	}
	return v.IteratorAt(it.idx), nil
}

// ToSlice decodes every param into a Param slice, in order.
func (v ParamsView) ToSlice() ([]Param, error) {
	out := make([]Param, 0, v.Size())
	end := v.End()
	for it := v.Begin(); it != end; it = it.Next() {
		p, err := it.Get(v.codecOpts())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
