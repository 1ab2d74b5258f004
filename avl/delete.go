// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific item from the tree
//
// returns the value that was stored and true, or false if the key
// was not present in which case the tree is unchanged
func (t *Tree[K, V, B]) Delete(key K) (V, bool) {
	p := t.lookup(key)
	if nilNode == p {
		var zero V
		return zero, false
	}
	value := t.items[p].value
	t.remove(p)
	return value, true
}

// internal: remove a node and all of its weight
//
// a node with two children is not released: it takes over the key,
// value and weight of its in-order predecessor and the predecessor's
// node is released instead
func (t *Tree[K, V, B]) remove(p handle) {
	if nilNode == t.links[p].left || nilNode == t.links[p].right {
		up := t.splice(p)
		t.balancer.deleted(&t.shape, up)
		return
	}

	q := t.rightmost(t.links[p].left)
	if nilNode == q || nilNode != t.links[q].right {
		fault.Panicf("delete: node %d has no usable predecessor", p)
	}

	oldWeight := t.links[p].weight
	newWeight := t.links[q].weight
	t.items[p] = t.items[q]

	up := t.splice(q)

	// p now carries q's items instead of its own
	t.links[p].weight = newWeight
	t.count += newWeight - oldWeight
	t.propagate(p, newWeight-oldWeight)

	t.balancer.deleted(&t.shape, up)
}

// internal: unlink a node with at most one child and release it
//
// returns the former parent of the node
func (t *core[K, V]) splice(p handle) handle {
	l := t.links[p]
	child := l.left
	if nilNode == child {
		child = l.right
	}

	// min has no left child, max has no right child
	if p == t.min {
		if nilNode != l.right {
			t.min = t.leftmost(l.right)
		} else {
			t.min = l.up
		}
	}
	if p == t.max {
		if nilNode != l.left {
			t.max = t.rightmost(l.left)
		} else {
			t.max = l.up
		}
	}

	t.propagate(l.up, -l.weight)
	t.replace(p, child)
	t.count -= l.weight
	t.freeNode(p)

	return l.up
}
