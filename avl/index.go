// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Select - index to specific item
//
// negative indices count back from the end, so -1 is the last item
func (t *core[K, V]) Select(index int) (K, V, error) {
	p, _, err := t.selectNode(index)
	if nil != err {
		var key K
		var value V
		return key, value, err
	}
	return t.items[p].key, t.items[p].value, nil
}

// SelectNode - the node holding the item at an index
func (t *core[K, V]) SelectNode(index int) (Node[K, V], error) {
	p, _, err := t.selectNode(index)
	return t.node(p), err
}

// Rank - index of the first item with key
func (t *core[K, V]) Rank(key K) (int, error) {
	if !t.indexed {
		return 0, fault.ErrIndexingDisabled
	}
	p := t.lookup(key)
	if nilNode == p {
		return 0, fault.ErrKeyNotFound
	}
	return t.rankOf(p), nil
}

// internal: normalise an index into [0, count)
func (t *core[K, V]) position(index int) (int, error) {
	if !t.indexed {
		return 0, fault.ErrIndexingDisabled
	}
	if index < 0 {
		index += t.count
	}
	if index < 0 || index >= t.count {
		return 0, fault.ErrIndexOutOfRange
	}
	return index, nil
}

// internal: find the node covering an index
//
// returns the node and the offset of the index within the node's own
// weight, which is always zero unless weights exceed one
func (t *core[K, V]) selectNode(index int) (handle, int, error) {
	index, err := t.position(index)
	if nil != err {
		return nilNode, 0, err
	}

	// number of items that follow the wanted one
	skip := t.count - 1 - index

	p := t.root
	for nilNode != p {
		right := t.links[t.links[p].right].size
		if skip < right {
			p = t.links[p].right
			continue
		}
		skip -= right
		weight := t.links[p].weight
		if skip < weight {
			return p, weight - 1 - skip, nil
		}
		skip -= weight
		p = t.links[p].left
	}

	fault.Panicf("select: index %d not reached, sizes are corrupt", index)
	return nilNode, 0, nil
}

// internal: index of the first item in node p
func (s *shape) rankOf(p handle) int {
	larger := s.links[s.links[p].right].size
	for child, up := p, s.links[p].up; nilNode != up; child, up = up, s.links[up].up {
		if child == s.links[up].left {
			larger += s.links[up].weight + s.links[s.links[up].right].size
		}
	}
	return s.count - larger - s.links[p].weight
}
