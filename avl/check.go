// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (t *core[K, V]) CheckUp() bool {
	return t.checkup(t.root, nilNode)
}

// internal: consistency checker
func (t *core[K, V]) checkup(p handle, up handle) bool {
	if nilNode == p {
		return true
	}
	if t.links[p].up != up {
		fmt.Printf("fail at node: %v   actual: %d  expected: %d\n", t.items[p].key, t.links[p].up, up)
		return false
	}
	if !t.checkup(t.links[p].left, p) {
		return false
	}
	return t.checkup(t.links[p].right, p)
}

// CheckCounts - check the sub-tree sizes and the item count
func (t *core[K, V]) CheckCounts() bool {
	if !t.indexed {
		return true
	}
	n, ok := t.checkCounts(t.root)
	if ok && n != t.count {
		fmt.Printf("fail at root: count: %d  expected: %d\n", t.count, n)
		return false
	}
	return ok
}

func (t *core[K, V]) checkCounts(p handle) (int, bool) {
	if nilNode == p {
		return 0, true
	}
	l, ok := t.checkCounts(t.links[p].left)
	if !ok {
		return 0, false
	}
	r, ok := t.checkCounts(t.links[p].right)
	if !ok {
		return 0, false
	}
	n := l + r + t.links[p].weight
	if n != t.links[p].size {
		fmt.Printf("fail at node: %v   size: %d  expected: %d\n", t.items[p].key, t.links[p].size, n)
		return 0, false
	}
	return n, true
}

// Check - verify every structural property of the tree
//
// returns an error wrapping fault.ErrInvariantViolation that
// describes the first problem found
func (t *Tree[K, V, B]) Check() error {
	if nilNode == t.root {
		if nilNode != t.min || nilNode != t.max || 0 != t.count {
			return violation("empty tree: min: %d  max: %d  count: %d", t.min, t.max, t.count)
		}
		return nil
	}
	if nilNode != t.links[t.root].up {
		return violation("root has parent: %d", t.links[t.root].up)
	}

	c := checker[K, V]{
		core:     &t.core,
		enforced: t.balancer.enforced(),
	}
	if err := c.visit(t.root); nil != err {
		return err
	}

	if c.total != t.count {
		return violation("count: %d  expected: %d", t.count, c.total)
	}
	if c.first != t.min {
		return violation("min: %d  expected: %d", t.min, c.first)
	}
	if c.last != t.max {
		return violation("max: %d  expected: %d", t.max, c.last)
	}
	if nodes := len(t.links) - 1 - t.freeNodes; c.nodes != nodes {
		return violation("reachable nodes: %d  allocated: %d", c.nodes, nodes)
	}
	return nil
}

type checker[K, V any] struct {
	*core[K, V]
	enforced bool
	nodes    int
	total    int
	first    handle
	last     handle // previous node in order
}

// in-order so that each key is compared with its predecessor
func (c *checker[K, V]) visit(p handle) error {
	l := c.links[p]
	if l.weight < 1 {
		return violation("node: %v  weight: %d", c.items[p].key, l.weight)
	}

	if nilNode != l.left {
		if c.links[l.left].up != p {
			return violation("node: %v  left child has wrong parent", c.items[p].key)
		}
		if err := c.visit(l.left); nil != err {
			return err
		}
	}

	if nilNode == c.last {
		c.first = p
	} else if c.compare(c.items[c.last].key, c.items[p].key) >= 0 {
		return violation("order: %v is not below %v", c.items[c.last].key, c.items[p].key)
	}
	c.last = p
	c.nodes += 1
	c.total += l.weight

	if nilNode != l.right {
		if c.links[l.right].up != p {
			return violation("node: %v  right child has wrong parent", c.items[p].key)
		}
		if err := c.visit(l.right); nil != err {
			return err
		}
	}

	left := c.links[l.left]
	right := c.links[l.right]
	if c.indexed && l.size != l.weight+left.size+right.size {
		return violation("node: %v  size: %d  expected: %d", c.items[p].key, l.size, l.weight+left.size+right.size)
	}
	h := 1 + max(left.height, right.height)
	if l.height != h {
		return violation("node: %v  height: %d  expected: %d", c.items[p].key, l.height, h)
	}
	if c.enforced {
		if d := left.height - right.height; d < -1 || d > 1 {
			return violation("node: %v  unbalanced: %+d", c.items[p].key, d)
		}
	}
	return nil
}

func violation(format string, arguments ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{fault.ErrInvariantViolation}, arguments...)...)
}
