// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new item into the tree or overwrite the value of
// an existing key
//
// returns true if a new node was added
func (t *Tree[K, V, B]) Insert(key K, value V) bool {
	p, _ := t.insert(key, value)
	return nilNode != p
}

// internal: returns the new node, or nilNode and the existing node
// when the key was already present
func (t *Tree[K, V, B]) insert(key K, value V) (handle, handle) {
	spot, c := t.search(key)

	if nilNode == spot {
		p := t.newNode(key, value, nilNode)
		t.root = p
		t.min = p
		t.max = p
		t.count = 1
		t.balancer.inserted(&t.shape, p)
		return p, nilNode
	}

	if 0 == c {
		t.items[spot].value = value
		t.balancer.accessed(&t.shape, spot)
		return nilNode, spot
	}

	p := t.newNode(key, value, spot)
	if c > 0 { // spot.key > key
		t.links[spot].left = p
	} else {
		t.links[spot].right = p
	}
	t.propagate(spot, 1)
	t.count += 1

	if t.compare(key, t.items[t.min].key) < 0 {
		t.min = p
	}
	if t.compare(key, t.items[t.max].key) > 0 {
		t.max = p
	}

	t.balancer.inserted(&t.shape, p)
	return p, nilNode
}

// internal: change the self weight of a node by delta, delta must not
// take the weight below one
func (t *Tree[K, V, B]) reweigh(p handle, delta int) {
	t.links[p].weight += delta
	t.count += delta
	t.propagate(p, delta)
}
