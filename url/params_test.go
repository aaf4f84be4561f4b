/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/badu/urlx/pct"
)

func mustQuery(t *testing.T, raw string) *URL {
	t.Helper()
	u, err := ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return u
}

func TestParamsToSlice(t *testing.T) {
	u := mustQuery(t, "a=1&b=2&c")
	got, err := u.Params().ToSlice()
	require.NoError(t, err)
	want := []Param{
		{Key: "a", HasValue: true, Value: "1"},
		{Key: "b", HasValue: true, Value: "2"},
		{Key: "c", HasValue: false, Value: ""},
	}
	require.Equal(t, want, got)
	require.ElementsMatch(t, want, got)
}

func TestParamsAppendPreservesPresence(t *testing.T) {
	u := New()
	if u.Params().Size() != 0 {
		t.Fatal("absent query should have size 0")
	}
	if _, err := u.Params().Append(EncodedParam{Key: "y", HasValue: false}); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "?y"; got != want {
		t.Fatalf("after first append: %q, want %q", got, want)
	}
	if _, err := u.Params().Append(EncodedParam{Key: "z", HasValue: false}); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "?y&z"; got != want {
		t.Fatalf("after second append: %q, want %q", got, want)
	}
}

func TestParamsAppendToPresentEmpty(t *testing.T) {
	u := New()
	if err := u.SetEncodedQuery(""); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Params().Append(EncodedParam{Key: "y", HasValue: false}); err != nil {
		t.Fatal(err)
	}
	if got, want := u.String(), "?&y"; got != want {
		t.Fatalf("append onto present-empty query: %q, want %q", got, want)
	}
}

func TestParamsInsertBetweenExistingPairs(t *testing.T) {
	u := mustQuery(t, "k0=0&k1=1&k3&k4=4444")
	it := u.Params().Begin() // k0
	it = it.Next()           // k1
	it = it.Next()           // k3
	if _, err := u.Params().Insert(it, EncodedParam{Key: "k2", HasValue: true, Value: ""}); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedQuery(), "k0=0&k1=1&k2=&k3&k4=4444"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestParamsEraseKeyCaseInsensitive(t *testing.T) {
	u := mustQuery(t, "K2=x&a=1&k2=y")
	n, err := u.Params().EraseKey("k2", true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("removed = %d, want 2", n)
	}
	if got, want := u.EncodedQuery(), "a=1"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestParamsSetKeyUpdatesFirstAndErasesRest(t *testing.T) {
	u := mustQuery(t, "a=1&a=2&b=3")
	it, err := u.Params().SetKey("a", "9", false)
	if err != nil {
		t.Fatal(err)
	}
	if it.Index() != 0 {
		t.Fatalf("index = %d, want 0", it.Index())
	}
	if got, want := u.EncodedQuery(), "a=9&b=3"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestParamsSetEmitsKeyEquals(t *testing.T) {
	u := mustQuery(t, "a")
	if _, err := u.Params().Set(u.Params().Begin(), ""); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedQuery(), "a="; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestParamsUnsetRemovesValue(t *testing.T) {
	u := mustQuery(t, "a=1")
	if _, err := u.Params().Unset(u.Params().Begin()); err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedQuery(), "a"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestParamsEraseReturnsNextIterator(t *testing.T) {
	u := mustQuery(t, "a=1&b=2&c=3")
	it := u.Params().Begin().Next() // b
	next, err := u.Params().Erase(it)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.EncodedQuery(), "a=1&c=3"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
	p, err := next.Get(pct.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Key != "c" {
		t.Fatalf("iterator after erase points at %q, want %q", p.Key, "c")
	}
}

func TestParamsClearRemovesQuestionMark(t *testing.T) {
	u := mustQuery(t, "a=1")
	u.Params().Clear()
	if u.HasQuery() || u.String() != "" {
		t.Fatalf("Clear should remove the query entirely, got %q", u.String())
	}
}

func TestParamsReplace(t *testing.T) {
	u := mustQuery(t, "a=1&b=2&c=3")
	it := u.Params().Begin().Next() // b
	got, err := u.Params().Replace(it, EncodedParam{Key: "x", HasValue: true, Value: "9"})
	require.NoError(t, err)
	require.Equal(t, 1, got.Index())
	require.Equal(t, "a=1&x=9&c=3", u.EncodedQuery())
}

func TestParamsContainsAndPrev(t *testing.T) {
	u := mustQuery(t, "a=1&b=2&c=3")
	if !u.Params().Contains("b", false) {
		t.Fatal("expected Contains(b)")
	}
	if u.Params().Contains("z", false) {
		t.Fatal("did not expect Contains(z)")
	}
	last := u.Params().End().Prev() // c
	prev := last.Prev()             // b
	p, err := prev.Get(pct.Options{})
	require.NoError(t, err)
	require.Equal(t, "b", p.Key)
}

// TestParamsAppendRejectsMalformedPercentLeavesURLUnchanged exercises the
// strong exception guarantee through the params engine: Append funnels
// through SetEncodedQuery, so a malformed escape anywhere in the rebuilt
// query must reject the whole call and leave the URL exactly as it was.
func TestParamsAppendRejectsMalformedPercentLeavesURLUnchanged(t *testing.T) {
	u := mustQuery(t, "a=1&b=2")
	before := u.String()
	if _, err := u.Params().Append(EncodedParam{Key: "c", HasValue: true, Value: "%gg"}); err == nil {
		t.Fatal("expected an error for a non-hex percent-escape")
	}
	if got := u.String(); got != before {
		t.Fatalf("Append left the URL mutated: got %q, want %q", got, before)
	}
}

// TestParamsIteratorNextPrevRoundTrip checks the iterator
// interconvertibility property: advancing and then retreating the same
// number of steps returns to an iterator equal to one reached directly.
func TestParamsIteratorNextPrevRoundTrip(t *testing.T) {
	u := mustQuery(t, "a=1&b=2&c=3")
	it := u.Params().Begin()
	forward := it.Next()
	roundTrip := forward.Next().Prev()
	if roundTrip != forward {
		t.Fatalf("Next().Prev() round trip = %+v, want %+v", roundTrip, forward)
	}
}

// TestParamsClearIsIdempotent checks that calling Clear twice is the same
// as calling it once.
func TestParamsClearIsIdempotent(t *testing.T) {
	u := mustQuery(t, "a=1")
	u.Params().Clear()
	afterFirst := u.String()
	u.Params().Clear()
	if got := u.String(); got != afterFirst {
		t.Fatalf("second Clear changed the URL: got %q, want %q", got, afterFirst)
	}
}

// TestParamsUnsetIsIdempotent checks that calling Unset twice on the same
// iterator position is the same as calling it once.
func TestParamsUnsetIsIdempotent(t *testing.T) {
	u := mustQuery(t, "a=1&b=2")
	it := u.Params().Begin()
	if _, err := u.Params().Unset(it); err != nil {
		t.Fatal(err)
	}
	afterFirst := u.EncodedQuery()
	if _, err := u.Params().Unset(it); err != nil {
		t.Fatal(err)
	}
	if got := u.EncodedQuery(); got != afterFirst {
		t.Fatalf("second Unset changed the query: got %q, want %q", got, afterFirst)
	}
}

func TestParamsFormPlusAsSpace(t *testing.T) {
	u := mustQuery(t, "q=a+b")
	p, err := u.Params().Form().Begin().Get(u.Params().Form().codecOpts())
	if err != nil {
		t.Fatal(err)
	}
	if p.Value != "a b" {
		t.Fatalf("value = %q, want %q", p.Value, "a b")
	}
}
