// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a cursor referring to one node of a tree
//
// the zero Node and the Node returned past either end of the tree
// are not valid.  A Node becomes invalid when its key is deleted;
// it must not be used after that.
type Node[K, V any] struct {
	tree *core[K, V]
	h    handle
}

// Valid - true if the cursor refers to a node
func (p Node[K, V]) Valid() bool {
	return nil != p.tree && nilNode != p.h
}

// Key - read the key from a node item
func (p Node[K, V]) Key() K {
	return p.tree.items[p.h].key
}

// Value - read the value from a node item
func (p Node[K, V]) Value() V {
	return p.tree.items[p.h].value
}

// SetValue - overwrite the value of a node item in place
func (p Node[K, V]) SetValue(value V) {
	p.tree.items[p.h].value = value
}

// Parent - return parent node of a node
func (p Node[K, V]) Parent() Node[K, V] {
	return p.tree.node(p.tree.links[p.h].up)
}

// Left - return the left child of a node
func (p Node[K, V]) Left() Node[K, V] {
	return p.tree.node(p.tree.links[p.h].left)
}

// Right - return the right child of a node
func (p Node[K, V]) Right() Node[K, V] {
	return p.tree.node(p.tree.links[p.h].right)
}

// Height - height of the sub-tree rooted here, a leaf is 1
func (p Node[K, V]) Height() int {
	return p.tree.links[p.h].height
}

// Size - number of items in the sub-tree rooted here
//
// only maintained on indexed trees
func (p Node[K, V]) Size() int {
	return p.tree.links[p.h].size
}

// Depth - get the depth of a node, the root is zero
func (p Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.tree.links[p.h].up
	for nilNode != parent {
		count += 1
		parent = p.tree.links[parent].up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth below
// the node
func (p Node[K, V]) GetChildrenByDepth(depth uint) []Node[K, V] {
	if 0 == depth {
		return []Node[K, V]{p}
	}
	nodes := []Node[K, V]{}
	if l := p.Left(); l.Valid() {
		nodes = append(nodes, l.GetChildrenByDepth(depth-1)...)
	}
	if r := p.Right(); r.Valid() {
		nodes = append(nodes, r.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
