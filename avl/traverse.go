// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// InOrder - visit every node in ascending key order
func (t *core[K, V]) InOrder() iter.Seq[Node[K, V]] {
	return func(yield func(Node[K, V]) bool) {
		stack := make([]handle, 0, t.links[t.root].height+1)
		p := t.root
		for nilNode != p || 0 != len(stack) {
			for nilNode != p {
				stack = append(stack, p)
				p = t.links[p].left
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.node(p)) {
				return
			}
			p = t.links[p].right
		}
	}
}

// PreOrder - visit every node before its children, left sub-tree
// first
func (t *core[K, V]) PreOrder() iter.Seq[Node[K, V]] {
	return func(yield func(Node[K, V]) bool) {
		if nilNode == t.root {
			return
		}
		stack := []handle{t.root}
		for 0 != len(stack) {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.node(p)) {
				return
			}
			if r := t.links[p].right; nilNode != r {
				stack = append(stack, r)
			}
			if l := t.links[p].left; nilNode != l {
				stack = append(stack, l)
			}
		}
	}
}

// PostOrder - visit every node after both of its children
func (t *core[K, V]) PostOrder() iter.Seq[Node[K, V]] {
	return func(yield func(Node[K, V]) bool) {
		stack := make([]handle, 0, t.links[t.root].height+1)
		last := nilNode
		p := t.root
		for nilNode != p || 0 != len(stack) {
			for nilNode != p {
				stack = append(stack, p)
				p = t.links[p].left
			}
			top := stack[len(stack)-1]
			r := t.links[top].right
			if nilNode != r && last != r {
				p = r
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(t.node(top)) {
				return
			}
			last = top
		}
	}
}
