// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// List - a sorted list that may hold the same value many times
//
// each distinct value has one node whose weight is its number of
// occurrences, so positions count occurrences rather than nodes
type List[K any] struct {
	tree *Tree[K, struct{}, AVL]
}

// NewList - create an empty list ordered by compare
func NewList[K any](compare func(a, b K) int, options ...Option) *List[K] {
	// positions are the point of a list
	options = append(options, func(s *settings) {
		s.indexed = true
	})
	return &List[K]{
		tree: New[K, struct{}](compare, options...),
	}
}

// NewOrderedList - create an empty list for a type with a natural
// order
func NewOrderedList[K cmp.Ordered]() *List[K] {
	return NewList[K](cmp.Compare[K])
}

// Append - add one occurrence of v
func (l *List[K]) Append(v K) {
	_, existing := l.tree.insert(v, struct{}{})
	if nilNode != existing {
		l.tree.reweigh(existing, 1)
	}
}

// Len - number of occurrences of all values
func (l *List[K]) Len() int {
	return l.tree.count
}

// Distinct - number of different values
func (l *List[K]) Distinct() int {
	return len(l.tree.links) - 1 - l.tree.freeNodes
}

// Occurrences - number of times v is present
func (l *List[K]) Occurrences(v K) int {
	p := l.tree.lookup(v)
	if nilNode == p {
		return 0
	}
	return l.tree.links[p].weight
}

// Contains - true if v occurs at least once
func (l *List[K]) Contains(v K) bool {
	return l.tree.Contains(v)
}

// At - the value at a position, negative positions count from the end
func (l *List[K]) At(index int) (K, error) {
	p, _, err := l.tree.selectNode(index)
	if nil != err {
		var v K
		return v, err
	}
	return l.tree.items[p].key, nil
}

// IndexOf - position of the first occurrence of v
func (l *List[K]) IndexOf(v K) (int, error) {
	return l.tree.Rank(v)
}

// Pop - remove and return the last value
func (l *List[K]) Pop() (K, error) {
	p := l.tree.max
	if nilNode == p {
		var v K
		return v, fault.ErrEmptyContainer
	}
	v := l.tree.items[p].key
	l.drop(p)
	return v, nil
}

// Remove - remove one occurrence of v, false if there was none
func (l *List[K]) Remove(v K) bool {
	p := l.tree.lookup(v)
	if nilNode == p {
		return false
	}
	l.drop(p)
	return true
}

// RemoveAt - remove and return the value at a position
func (l *List[K]) RemoveAt(index int) (K, error) {
	p, _, err := l.tree.selectNode(index)
	if nil != err {
		var v K
		return v, err
	}
	v := l.tree.items[p].key
	l.drop(p)
	return v, nil
}

// Set - replace the value at a position
//
// the list stays sorted, so v is not necessarily found at index
// afterwards
func (l *List[K]) Set(index int, v K) error {
	if _, err := l.RemoveAt(index); nil != err {
		return err
	}
	l.Append(v)
	return nil
}

// internal: remove one occurrence held by node p
func (l *List[K]) drop(p handle) {
	if l.tree.links[p].weight > 1 {
		l.tree.reweigh(p, -1)
		return
	}
	l.tree.remove(p)
}

// Min - the lowest value
func (l *List[K]) Min() (K, error) {
	v, _, err := l.tree.Min()
	return v, err
}

// Max - the highest value
func (l *List[K]) Max() (K, error) {
	v, _, err := l.tree.Max()
	return v, err
}

// FindGreaterThan - the lowest value strictly greater than v
func (l *List[K]) FindGreaterThan(v K) (K, error) {
	k, _, err := l.tree.FindGreaterThan(v)
	return k, err
}

// FindGreaterOrEqual - the lowest value not less than v
func (l *List[K]) FindGreaterOrEqual(v K) (K, error) {
	k, _, err := l.tree.FindGreaterOrEqual(v)
	return k, err
}

// FindLessThan - the highest value strictly less than v
func (l *List[K]) FindLessThan(v K) (K, error) {
	k, _, err := l.tree.FindLessThan(v)
	return k, err
}

// FindLessOrEqual - the highest value not greater than v
func (l *List[K]) FindLessOrEqual(v K) (K, error) {
	k, _, err := l.tree.FindLessOrEqual(v)
	return k, err
}

// All - every occurrence in ascending order
func (l *List[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t := l.tree
		for p := t.min; nilNode != p; p = t.next(p) {
			for i := 0; i < t.links[p].weight; i += 1 {
				if !yield(t.items[p].key) {
					return
				}
			}
		}
	}
}

// Backward - every occurrence in descending order
func (l *List[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		t := l.tree
		for p := t.max; nilNode != p; p = t.prev(p) {
			for i := 0; i < t.links[p].weight; i += 1 {
				if !yield(t.items[p].key) {
					return
				}
			}
		}
	}
}

// Slice - occurrences between two positional bounds, see
// Tree.RangeByPosition
func (l *List[K]) Slice(start Bound[int], stop Bound[int], step int) (iter.Seq[K], error) {
	w, err := l.tree.positionRange(start, stop, step)
	if nil != err {
		return nil, err
	}
	return l.tree.keys(w), nil
}

// Range - occurrences between two value bounds, see Tree.Range
func (l *List[K]) Range(start Bound[K], stop Bound[K], step int) (iter.Seq[K], error) {
	w, err := l.tree.keyRange(start, stop, step)
	if nil != err {
		return nil, err
	}
	return l.tree.keys(w), nil
}

// Clear - remove everything
func (l *List[K]) Clear() {
	l.tree.Clear()
}

// Check - verify the structure, see Tree.Check
func (l *List[K]) Check() error {
	return l.tree.Check()
}
