// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest key value
func (t *core[K, V]) First() Node[K, V] {
	return t.node(t.min)
}

// Last - return the node with the highest key value
func (t *core[K, V]) Last() Node[K, V] {
	return t.node(t.max)
}

// internal: lowest node in a sub-tree
func (s *shape) leftmost(p handle) handle {
	if nilNode == p {
		return nilNode
	}
	for nilNode != s.links[p].left {
		p = s.links[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (s *shape) rightmost(p handle) handle {
	if nilNode == p {
		return nilNode
	}
	for nilNode != s.links[p].right {
		p = s.links[p].right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or an invalid node if no more nodes.
func (p Node[K, V]) Next() Node[K, V] {
	return p.tree.node(p.tree.next(p.h))
}

// Prev - given a node, return the node with the next lowest key
// value or an invalid node if no more nodes
func (p Node[K, V]) Prev() Node[K, V] {
	return p.tree.node(p.tree.prev(p.h))
}

// internal: in-order successor
func (t *core[K, V]) next(p handle) handle {
	if nilNode == p {
		return nilNode
	}
	if nilNode != t.links[p].right {
		return t.leftmost(t.links[p].right)
	}
	key := t.items[p].key
	for {
		p = t.links[p].up
		if nilNode == p {
			return nilNode
		}
		if t.compare(t.items[p].key, key) > 0 { // p.key > key
			return p
		}
	}
}

// internal: in-order predecessor
func (t *core[K, V]) prev(p handle) handle {
	if nilNode == p {
		return nilNode
	}
	if nilNode != t.links[p].left {
		return t.rightmost(t.links[p].left)
	}
	key := t.items[p].key
	for {
		p = t.links[p].up
		if nilNode == p {
			return nilNode
		}
		if t.compare(t.items[p].key, key) < 0 { // p.key < key
			return p
		}
	}
}

// All - ascending sequence of key/value pairs
//
// the tree must not be modified while the sequence is running, apart
// from SetValue on the current node
func (t *core[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := t.min; nilNode != p; p = t.next(p) {
			if !yield(t.items[p].key, t.items[p].value) {
				return
			}
		}
	}
}

// Backward - descending sequence of key/value pairs
func (t *core[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := t.max; nilNode != p; p = t.prev(p) {
			if !yield(t.items[p].key, t.items[p].value) {
				return
			}
		}
	}
}

// Keys - ascending sequence of keys
func (t *core[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := t.min; nilNode != p; p = t.next(p) {
			if !yield(t.items[p].key) {
				return
			}
		}
	}
}

// Values - values in ascending key order
func (t *core[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := t.min; nilNode != p; p = t.next(p) {
			if !yield(t.items[p].value) {
				return
			}
		}
	}
}
