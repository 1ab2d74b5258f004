// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// internal: walk down from the root
//
// returns the node holding key, or the last node visited (the point
// where key would be attached) together with compare(node.key, key)
func (t *core[K, V]) search(key K) (handle, int) {
	last := nilNode
	c := 0
	for p := t.root; nilNode != p; {
		last = p
		c = t.compare(t.items[p].key, key)
		switch {
		case c > 0: // p.key > key
			p = t.links[p].left
		case c < 0: // p.key < key
			p = t.links[p].right
		default:
			return p, 0
		}
	}
	return last, c
}

// internal: exact match or nilNode
func (t *core[K, V]) lookup(key K) handle {
	p, c := t.search(key)
	if nilNode == p || 0 != c {
		return nilNode
	}
	return p
}

// Search - find a specific item
//
// returns the node and its index, the index is -1 if the tree is not
// indexed.  An absent key gives an invalid node and -1.
func (t *core[K, V]) Search(key K) (Node[K, V], int) {
	p := t.lookup(key)
	if nilNode == p {
		return t.node(nilNode), -1
	}
	if !t.indexed {
		return t.node(p), -1
	}
	return t.node(p), t.rankOf(p)
}

// Get - the value stored with key
func (t *core[K, V]) Get(key K) (V, error) {
	p := t.lookup(key)
	if nilNode == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return t.items[p].value, nil
}

// Contains - true if key is present
func (t *core[K, V]) Contains(key K) bool {
	return nilNode != t.lookup(key)
}

// Min - the item with the lowest key
func (t *core[K, V]) Min() (K, V, error) {
	return t.itemAt(t.min, fault.ErrEmptyContainer)
}

// Max - the item with the highest key
func (t *core[K, V]) Max() (K, V, error) {
	return t.itemAt(t.max, fault.ErrEmptyContainer)
}

// FindGreaterThan - the item with the lowest key strictly greater than key
func (t *core[K, V]) FindGreaterThan(key K) (K, V, error) {
	return t.itemAt(t.ceiling(key, true), fault.ErrNoSuchElement)
}

// FindGreaterOrEqual - the item with the lowest key not less than key
func (t *core[K, V]) FindGreaterOrEqual(key K) (K, V, error) {
	return t.itemAt(t.ceiling(key, false), fault.ErrNoSuchElement)
}

// FindLessThan - the item with the highest key strictly less than key
func (t *core[K, V]) FindLessThan(key K) (K, V, error) {
	return t.itemAt(t.floor(key, true), fault.ErrNoSuchElement)
}

// FindLessOrEqual - the item with the highest key not greater than key
func (t *core[K, V]) FindLessOrEqual(key K) (K, V, error) {
	return t.itemAt(t.floor(key, false), fault.ErrNoSuchElement)
}

func (t *core[K, V]) itemAt(p handle, err error) (K, V, error) {
	if nilNode == p {
		var key K
		var value V
		return key, value, err
	}
	return t.items[p].key, t.items[p].value, nil
}

// internal: lowest node with key > k (strict) or key >= k
func (t *core[K, V]) ceiling(k K, strict bool) handle {
	found := nilNode
	for p := t.root; nilNode != p; {
		c := t.compare(t.items[p].key, k)
		if c > 0 || (0 == c && !strict) {
			found = p
			if 0 == c {
				return p
			}
			p = t.links[p].left
		} else {
			p = t.links[p].right
		}
	}
	return found
}

// internal: highest node with key < k (strict) or key <= k
func (t *core[K, V]) floor(k K, strict bool) handle {
	found := nilNode
	for p := t.root; nilNode != p; {
		c := t.compare(t.items[p].key, k)
		if c < 0 || (0 == c && !strict) {
			found = p
			if 0 == c {
				return p
			}
			p = t.links[p].right
		} else {
			p = t.links[p].left
		}
	}
	return found
}

// internal: total weight of the items with key < k, or key <= k
// when orEqual is set; needs sub-tree sizes
func (t *core[K, V]) weightBelow(k K, orEqual bool) int {
	n := 0
	for p := t.root; nilNode != p; {
		c := t.compare(t.items[p].key, k)
		if c < 0 || (0 == c && orEqual) {
			n += t.links[t.links[p].left].size + t.links[p].weight
			p = t.links[p].right
		} else {
			p = t.links[p].left
		}
	}
	return n
}
