// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: set the left child of a node and its up pointer
func (s *shape) setLeft(p handle, child handle) {
	s.links[p].left = child
	if nilNode != child {
		s.links[child].up = p
	}
}

// internal: set the right child of a node and its up pointer
func (s *shape) setRight(p handle, child handle) {
	s.links[p].right = child
	if nilNode != child {
		s.links[child].up = p
	}
}

// internal: make child take the place of old under old's parent
func (s *shape) replace(old handle, child handle) {
	up := s.links[old].up
	switch {
	case nilNode == up:
		s.root = child
		if nilNode != child {
			s.links[child].up = nilNode
		}
	case old == s.links[up].left:
		s.setLeft(up, child)
	default:
		s.setRight(up, child)
	}
}

// internal: rotate x above its parent
//
//	     y             x
//	    / \           / \
//	   x   c   <->   a   y
//	  / \               / \
//	 a   b             b   c
//
// b is the moved child.  Sub-tree sizes of x and y are exchanged
// here, heights are left to the caller.
func (s *shape) rotate(x handle) {
	y := s.links[x].up
	if nilNode == y {
		return
	}

	var moved handle
	if x == s.links[y].left {
		moved = s.links[x].right
		s.replace(y, x)
		s.setRight(x, y)
		s.setLeft(y, moved)
	} else {
		moved = s.links[x].left
		s.replace(y, x)
		s.setLeft(x, y)
		s.setRight(y, moved)
	}

	if s.indexed {
		total := s.links[y].size
		s.links[y].size = total - s.links[x].size + s.links[moved].size
		s.links[x].size = total
	}
}

// internal: one or two rotations that lift the middle node of the
// chain grandparent → parent → x, returns the new local root
func (s *shape) restructure(x handle) handle {
	y := s.links[x].up
	z := s.links[y].up
	aligned := (x == s.links[y].left) == (y == s.links[z].left)
	if aligned {
		s.rotate(y)
		return y
	}
	s.rotate(x)
	s.rotate(x)
	return x
}

// internal: add delta to the size of a node and all of its ancestors
func (s *shape) propagate(p handle, delta int) {
	if !s.indexed || 0 == delta {
		return
	}
	for ; nilNode != p; p = s.links[p].up {
		s.links[p].size += delta
	}
}
