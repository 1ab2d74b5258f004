// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// a lazy walk over the items of a range, one call per item; a node
// with weight w is passed w times in a row
type walker func(yield func(p handle) bool)

// Range - items between two bounds in ascending order
//
// the first item is returned followed by every step-th item after it.
// A start key greater than the stop key gives InvalidRange, a step
// below one gives InvalidStep; both are reported here rather than by
// the sequence.
func (t *core[K, V]) Range(start Bound[K], stop Bound[K], step int) (iter.Seq2[K, V], error) {
	w, err := t.keyRange(start, stop, step)
	if nil != err {
		return nil, err
	}
	return t.pairs(w), nil
}

// Complement - items outside two bounds: those below start followed
// by those from stop onward
//
// each part is stepped separately, starting from its first item.
// For keys a <= b, Complement(Start(a), Stop(b, true), 1) omits [a, b]
// and Complement(After(a), Before(b), 1) omits only (a, b).
func (t *core[K, V]) Complement(start Bound[K], stop Bound[K], step int) (iter.Seq2[K, V], error) {
	w, err := t.keyComplement(start, stop, step)
	if nil != err {
		return nil, err
	}
	return t.pairs(w), nil
}

// RangeByPosition - items between two positional bounds
//
// negative positions count back from the end.  Before(i) accepts
// -n <= i <= n and After(i) accepts -n <= i < n, anything else is
// IndexOutOfRange.
func (t *core[K, V]) RangeByPosition(start Bound[int], stop Bound[int], step int) (iter.Seq2[K, V], error) {
	w, err := t.positionRange(start, stop, step)
	if nil != err {
		return nil, err
	}
	return t.pairs(w), nil
}

// ComplementByPosition - items outside two positional bounds
func (t *core[K, V]) ComplementByPosition(start Bound[int], stop Bound[int], step int) (iter.Seq2[K, V], error) {
	w, err := t.positionComplement(start, stop, step)
	if nil != err {
		return nil, err
	}
	return t.pairs(w), nil
}

// SetRange - store value with every selected item of a range
//
// returns the number of items changed
func (t *core[K, V]) SetRange(start Bound[K], stop Bound[K], step int, value V) (int, error) {
	w, err := t.keyRange(start, stop, step)
	if nil != err {
		return 0, err
	}
	n := 0
	w(func(p handle) bool {
		t.items[p].value = value
		n += 1
		return true
	})
	return n, nil
}

// CountInRange - number of items between two bounds
func (t *core[K, V]) CountInRange(start Bound[K], stop Bound[K]) (int, error) {
	if err := t.validate(start, stop, 1); nil != err {
		return 0, err
	}
	if !t.indexed {
		w, _ := t.keyRange(start, stop, 1)
		n := 0
		w(func(handle) bool {
			n += 1
			return true
		})
		return n, nil
	}
	lo := t.countBelow(start, 0)
	hi := t.countBelow(stop, t.count)
	if hi < lo {
		return 0, nil
	}
	return hi - lo, nil
}

// internal: number of items below a boundary
func (t *core[K, V]) countBelow(b Bound[K], open int) int {
	switch b.kind {
	case before:
		return t.weightBelow(b.key, false)
	case after:
		return t.weightBelow(b.key, true)
	default:
		return open
	}
}

func (t *core[K, V]) pairs(w walker) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		w(func(p handle) bool {
			return yield(t.items[p].key, t.items[p].value)
		})
	}
}

func (t *core[K, V]) keys(w walker) iter.Seq[K] {
	return func(yield func(K) bool) {
		w(func(p handle) bool {
			return yield(t.items[p].key)
		})
	}
}

func (t *core[K, V]) validate(start Bound[K], stop Bound[K], step int) error {
	if step < 1 {
		return fault.ErrInvalidStep
	}
	if unbounded != start.kind && unbounded != stop.kind && t.compare(start.key, stop.key) > 0 {
		return fault.ErrInvalidRange
	}
	return nil
}

// internal: the first node inside the region that starts at b
func (t *core[K, V]) from(b Bound[K]) handle {
	switch b.kind {
	case before:
		return t.ceiling(b.key, false)
	case after:
		return t.ceiling(b.key, true)
	default:
		return t.min
	}
}

// internal: predicate for nodes at or past boundary b, nil when
// unbounded
func (t *core[K, V]) beyond(b Bound[K]) func(handle) bool {
	switch b.kind {
	case before:
		return func(p handle) bool {
			return t.compare(t.items[p].key, b.key) >= 0
		}
	case after:
		return func(p handle) bool {
			return t.compare(t.items[p].key, b.key) > 0
		}
	default:
		return nil
	}
}

func (t *core[K, V]) keyRange(start Bound[K], stop Bound[K], step int) (walker, error) {
	if err := t.validate(start, stop, step); nil != err {
		return nil, err
	}
	end := t.beyond(stop)
	return func(yield func(handle) bool) {
		t.walk(t.from(start), 0, -1, end, step, yield)
	}, nil
}

func (t *core[K, V]) keyComplement(start Bound[K], stop Bound[K], step int) (walker, error) {
	if err := t.validate(start, stop, step); nil != err {
		return nil, err
	}
	return func(yield func(handle) bool) {
		if unbounded != start.kind {
			if !t.walk(t.min, 0, -1, t.beyond(start), step, yield) {
				return
			}
		}
		if unbounded != stop.kind {
			t.walk(t.from(stop), 0, -1, nil, step, yield)
		}
	}, nil
}

// internal: convert a positional bound to the number of items below
// it
func (t *core[K, V]) boundary(b Bound[int], open int) (int, error) {
	i := b.key
	if i < 0 {
		i += t.count
	}
	switch b.kind {
	case before:
		if i < 0 || i > t.count {
			return 0, fault.ErrIndexOutOfRange
		}
		return i, nil
	case after:
		if i < 0 || i >= t.count {
			return 0, fault.ErrIndexOutOfRange
		}
		return i + 1, nil
	default:
		return open, nil
	}
}

func (t *core[K, V]) positions(start Bound[int], stop Bound[int], step int) (int, int, error) {
	if !t.indexed {
		return 0, 0, fault.ErrIndexingDisabled
	}
	if step < 1 {
		return 0, 0, fault.ErrInvalidStep
	}
	lo, err := t.boundary(start, 0)
	if nil != err {
		return 0, 0, err
	}
	hi, err := t.boundary(stop, t.count)
	if nil != err {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fault.ErrInvalidRange
	}
	return lo, hi, nil
}

// internal: walk the items at positions [lo, hi)
func (t *core[K, V]) span(lo int, hi int, step int, yield func(handle) bool) bool {
	if lo >= hi {
		return true
	}
	p, offset, err := t.selectNode(lo)
	fault.PanicIfError("span", err)
	return t.walk(p, offset, hi-lo, nil, step, yield)
}

func (t *core[K, V]) positionRange(start Bound[int], stop Bound[int], step int) (walker, error) {
	lo, hi, err := t.positions(start, stop, step)
	if nil != err {
		return nil, err
	}
	return func(yield func(handle) bool) {
		t.span(lo, hi, step, yield)
	}, nil
}

func (t *core[K, V]) positionComplement(start Bound[int], stop Bound[int], step int) (walker, error) {
	lo, hi, err := t.positions(start, stop, step)
	if nil != err {
		return nil, err
	}
	return func(yield func(handle) bool) {
		if !t.span(0, lo, step, yield) {
			return
		}
		t.span(hi, t.count, step, yield)
	}, nil
}

// internal: the stepping walk shared by all ranges
//
// starts at occurrence offset of node p, visits at most limit items
// (no limit when negative) and stops before the first node for which
// end returns true.  Returns false if yield asked to stop.
func (t *core[K, V]) walk(p handle, offset int, limit int, end func(handle) bool, step int, yield func(handle) bool) bool {
	skip := 0
	for ; nilNode != p && 0 != limit; p = t.next(p) {
		if nil != end && end(p) {
			return true
		}
		for weight := t.links[p].weight; offset < weight && 0 != limit; offset += 1 {
			if limit > 0 {
				limit -= 1
			}
			if skip > 0 {
				skip -= 1
				continue
			}
			if !yield(p) {
				return false
			}
			skip = step - 1
		}
		offset = 0
	}
	return true
}
