/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package grammar

// Delim matches a single literal byte. Contract: never advances on failure.
type Delim byte

func (d Delim) Parse(c *Cursor) (Result, error) {
	b, ok := c.Peek()
	if !ok || b != byte(d) {
		return Result{}, ErrNoMatch
	}
	start := c.Pos
	c.Pos++
	return Result{Start: start, End: c.Pos}, nil
}

// CharSet matches and consumes the single byte at the cursor if pred
// reports true for it. Contract: never advances on failure.
type CharSet func(b byte) bool

func (p CharSet) Parse(c *Cursor) (Result, error) {
	b, ok := c.Peek()
	if !ok || !p(b) {
		return Result{}, ErrNoMatch
	}
	start := c.Pos
	c.Pos++
	return Result{Start: start, End: c.Pos}, nil
}

// Literal matches an exact byte sequence. Contract: never advances on failure.
type Literal string

func (l Literal) Parse(c *Cursor) (Result, error) {
	s := string(l)
	if c.Pos+len(s) > len(c.Buf) || string(c.Buf[c.Pos:c.Pos+len(s)]) != s {
		return Result{}, ErrNoMatch
	}
	start := c.Pos
	c.Pos += len(s)
	return Result{Start: start, End: c.Pos}, nil
}

// tupleRule sequences rules, all-or-nothing. Contract: rewinds to its own
// start position if any member fails.
type tupleRule struct{ rules []Rule }

// Tuple sequences rules and fails unless every rule matches in order.
func Tuple(rules ...Rule) Rule { return tupleRule{rules: rules} }

func (t tupleRule) Parse(c *Cursor) (Result, error) {
	start := c.Pos
	for _, r := range t.rules {
		if _, err := r.Parse(c); err != nil {
			c.Pos = start
			return Result{}, err
		}
	}
	return Result{Start: start, End: c.Pos}, nil
}

// altRule tries each alternative in order, returning the first success.
// Contract: rewinds between failed attempts, leaves cursor unchanged if all fail.
type altRule struct{ rules []Rule }

// Alt returns the result of the first rule that matches; if none match, the
// cursor is left unchanged and the last rule's error is returned.
func Alt(rules ...Rule) Rule { return altRule{rules: rules} }

func (a altRule) Parse(c *Cursor) (Result, error) {
	start := c.Pos
	var err error
	for _, r := range a.rules {
		c.Pos = start
		var res Result
		res, err = r.Parse(c)
		if err == nil {
			return res, nil
		}
	}
	c.Pos = start
	return Result{}, err
}

// optionalRule never fails. Contract: if the inner rule fails, the cursor is
// restored to the position it held before the attempt.
type optionalRule struct{ rule Rule }

// Optional tries r; on failure it reports success with a zero-length Result
// and leaves the cursor exactly where it started.
func Optional(r Rule) Rule { return optionalRule{rule: r} }

func (o optionalRule) Parse(c *Cursor) (Result, error) {
	start := c.Pos
	res, err := o.rule.Parse(c)
	if err != nil {
		c.Pos = start
		return Result{Start: start, End: start}, nil
	}
	return res, nil
}

// rangeRule repeats r between min and max times (max < 0 means unbounded).
// Contract: keeps whatever whole repetitions already matched; stops at the
// first short repetition without rewinding those already consumed.
type rangeRule struct {
	rule     Rule
	min, max int
}

// Range repeats r min..max times, returning the concatenated span. The
// repetition count is not part of its Result; RangeN returns it.
func Range(r Rule, min, max int) Rule { return rangeRule{rule: r, min: min, max: max} }

// RangeResult augments Result with the repetition count, per spec.md §4.2's
// "concatenated string view plus element count".
type RangeResult struct {
	Result
	Count int
}

func (rr rangeRule) Parse(c *Cursor) (Result, error) {
	start := c.Pos
	count := 0
	for rr.max < 0 || count < rr.max {
		mark := c.Pos
		if _, err := rr.rule.Parse(c); err != nil {
			c.Pos = mark
			break
		}
		count++
	}
	if count < rr.min {
		c.Pos = start
		return Result{}, ErrNoMatch
	}
	return RangeResult{Result: Result{Start: start, End: c.Pos}, Count: count}.Result, nil
}

// RangeN behaves like Range but returns the repetition count directly,
// for callers (principally the rfc package) that need the element count
// spec.md §4.3 requires for apply_path/apply_query.
func RangeN(r Rule, min, max int) func(c *Cursor) (RangeResult, error) {
	rr := rangeRule{rule: r, min: min, max: max}
	return func(c *Cursor) (RangeResult, error) {
		start := c.Pos
		count := 0
		for rr.max < 0 || count < rr.max {
			mark := c.Pos
			if _, err := rr.rule.Parse(c); err != nil {
				c.Pos = mark
				break
			}
			count++
		}
		if count < rr.min {
			c.Pos = start
			return RangeResult{}, ErrNoMatch
		}
		return RangeResult{Result: Result{Start: start, End: c.Pos}, Count: count}, nil
	}
}

// squelchRule delegates consumption to its inner rule but reports an empty
// span, per spec.md §4.2 "discards output while preserving consumption".
type squelchRule struct{ rule Rule }

// Squelch parses r for its side effect on the cursor only; the returned
// Result is always zero-length at the match's end.
func Squelch(r Rule) Rule { return squelchRule{rule: r} }

func (s squelchRule) Parse(c *Cursor) (Result, error) {
	if _, err := s.rule.Parse(c); err != nil {
		return Result{}, err
	}
	return Result{Start: c.Pos, End: c.Pos}, nil
}
