// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// handle - index of a node in the arena
type handle int32

// slot zero is never allocated, so the zero handle means "no node"
// and a read of links[nilNode] yields height 0 and size 0
const nilNode handle = 0

// the structural part of a node in the tree
type link struct {
	left   handle // left sub-tree
	right  handle // right sub-tree
	up     handle // points to parent node, free list chain when released
	height int    // 1 for a leaf
	weight int    // self weight: 1, or occurrence count in a List
	size   int    // total weight of this sub-tree
}

// the key/value part of a node in the tree
type item[K, V any] struct {
	key   K
	value V
}

// allocate a new node, reuses reclaimed slots if any are available
func (t *core[K, V]) newNode(key K, value V, up handle) handle {
	h := t.pool
	if nilNode == h {
		if 0 != t.freeNodes {
			fault.Panicf("pool corrupt: %d free nodes but empty pool", t.freeNodes)
		}
		h = handle(len(t.links))
		t.links = append(t.links, link{})
		t.items = append(t.items, item[K, V]{})
	} else {
		t.pool = t.links[h].up
		t.freeNodes -= 1
	}
	t.links[h] = link{
		up:     up,
		height: 1,
		weight: 1,
		size:   1,
	}
	t.items[h] = item[K, V]{key: key, value: value}
	return h
}

// reclaim a node and keep it in the pool
func (t *core[K, V]) freeNode(h handle) {
	t.links[h] = link{up: t.pool} // use as free list pointer
	t.items[h] = item[K, V]{}     // release references held by key and value
	t.freeNodes += 1
	t.pool = h
}

// drop every node, keeping only the sentinel
func (t *core[K, V]) reset() {
	t.links = t.links[:1]
	t.items = t.items[:1]
	t.links[nilNode] = link{}
	t.pool = nilNode
	t.freeNodes = 0
	t.root = nilNode
	t.min = nilNode
	t.max = nilNode
	t.count = 0
}
