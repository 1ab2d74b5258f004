// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Balancer - a tree balancing strategy
//
// the methods are called by the tree after it has changed structure;
// only the strategies in this package can satisfy it
type Balancer interface {
	// an existing key was overwritten, no structural change
	accessed(s *shape, p handle)

	// p is a newly attached leaf
	inserted(s *shape, p handle)

	// a node was removed, p was its parent (may be nilNode)
	deleted(s *shape, p handle)

	// true if balance is guaranteed
	enforced() bool
}

// AVL - height balanced strategy: the two sub-trees of every node
// differ in height by at most one
type AVL struct{}

func (AVL) accessed(s *shape, p handle) {}

func (AVL) inserted(s *shape, p handle) {
	s.rebalance(p, true)
}

func (AVL) deleted(s *shape, p handle) {
	s.rebalance(p, false)
}

func (AVL) enforced() bool { return true }

// Unbalanced - plain binary search tree, never restructures
//
// heights are still kept up to date so the tree can report its depth
type Unbalanced struct{}

func (Unbalanced) accessed(s *shape, p handle) {}

func (Unbalanced) inserted(s *shape, p handle) {
	s.reheight(p)
}

func (Unbalanced) deleted(s *shape, p handle) {
	s.reheight(p)
}

func (Unbalanced) enforced() bool { return false }

// internal: recompute the height of a node from its children
func (s *shape) recomputeHeight(p handle) {
	l := s.links[s.links[p].left].height
	r := s.links[s.links[p].right].height
	if l > r {
		s.links[p].height = 1 + l
	} else {
		s.links[p].height = 1 + r
	}
}

// internal: walk from p to the root recomputing heights, stopping
// once a node's height is unchanged
func (s *shape) reheight(p handle) {
	for walk := p; nilNode != walk; walk = s.links[walk].up {
		old := s.links[walk].height
		s.recomputeHeight(walk)
		if old == s.links[walk].height && walk != p {
			return
		}
	}
}

// internal: child heights differ by at most one
func (s *shape) balanced(p handle) bool {
	d := s.links[s.links[p].left].height - s.links[s.links[p].right].height
	return d >= -1 && d <= 1
}

// internal: the child with the larger height, on a tie the child on
// the side given by preferLeft
func (s *shape) tallChild(p handle, preferLeft bool) handle {
	left := s.links[p].left
	right := s.links[p].right
	l := s.links[left].height
	r := s.links[right].height
	switch {
	case l > r:
		return left
	case r > l:
		return right
	case preferLeft:
		return left
	default:
		return right
	}
}

// internal: walk from p to the root restoring balance
//
// after an insert a single restructure is enough, after a delete
// every ancestor has to be checked
func (s *shape) rebalance(p handle, insert bool) {
	for walk := p; nilNode != walk; walk = s.links[walk].up {
		if !s.balanced(walk) {
			child := s.tallChild(walk, false)

			// on a tie keep the chain aligned so one rotation does
			grandchild := s.tallChild(child, child == s.links[walk].left)

			top := s.restructure(grandchild)
			s.recomputeHeight(s.links[top].left)
			s.recomputeHeight(s.links[top].right)
			s.recomputeHeight(top)
			if insert {
				return
			}
		}
		s.recomputeHeight(walk)
	}
}
