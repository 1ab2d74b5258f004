// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// the key independent part of a tree: the arena links and the
// cached root, extreme nodes and counts
type shape struct {
	links     []link // index 0 is the sentinel
	pool      handle // linked list of reclaimed nodes
	freeNodes int    // number of nodes in the pool
	root      handle
	min       handle // cached lowest node
	max       handle // cached highest node
	count     int    // number of items (occurrences in a List)
	indexed   bool   // maintain sub-tree sizes for rank/select
}

// the key dependent part shared by all balancing strategies
type core[K, V any] struct {
	shape
	items   []item[K, V] // parallel to links
	compare func(a, b K) int
}

// Tree - type to hold an ordered tree of key/value items
//
// B selects the balancing strategy at compile time, see AVL and
// Unbalanced.
type Tree[K, V any, B Balancer] struct {
	core[K, V]
	balancer B
}

// Option - construction time settings
type Option func(*settings)

type settings struct {
	indexed  bool
	capacity int
}

// WithoutIndex - do not maintain sub-tree sizes, this disables
// Rank, Select and the positional range queries
func WithoutIndex(s *settings) {
	s.indexed = false
}

// WithCapacity - preallocate room for n nodes
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// New - create an initially empty AVL balanced tree ordered by
// compare, which must return a negative, zero or positive value as
// a < b, a == b or a > b
func New[K, V any](compare func(a, b K) int, options ...Option) *Tree[K, V, AVL] {
	return NewWithBalancer[K, V, AVL](compare, options...)
}

// NewOrdered - create an initially empty AVL balanced tree for a key
// type with a natural order
func NewOrdered[K cmp.Ordered, V any](options ...Option) *Tree[K, V, AVL] {
	return NewWithBalancer[K, V, AVL](cmp.Compare[K], options...)
}

// NewUnbalanced - create a plain binary search tree that never
// restructures, mostly of use for testing and comparison
func NewUnbalanced[K, V any](compare func(a, b K) int, options ...Option) *Tree[K, V, Unbalanced] {
	return NewWithBalancer[K, V, Unbalanced](compare, options...)
}

// NewWithBalancer - create an initially empty tree with an explicit
// balancing strategy
func NewWithBalancer[K, V any, B Balancer](compare func(a, b K) int, options ...Option) *Tree[K, V, B] {
	s := settings{
		indexed: true,
	}
	for _, option := range options {
		option(&s)
	}

	tree := &Tree[K, V, B]{}
	tree.compare = compare
	tree.indexed = s.indexed
	tree.links = make([]link, 1, 1+s.capacity)
	tree.items = make([]item[K, V], 1, 1+s.capacity)
	return tree
}

// IsEmpty - true if tree contains no data
func (t *core[K, V]) IsEmpty() bool {
	return nilNode == t.root
}

// Count - number of items currently in the tree
func (t *core[K, V]) Count() int {
	return t.count
}

// Indexed - true if rank/select support was enabled at construction
func (t *core[K, V]) Indexed() bool {
	return t.indexed
}

// Height - height of the whole tree, zero when empty
func (t *core[K, V]) Height() int {
	return t.links[t.root].height
}

// Root - return the root node of the tree
func (t *core[K, V]) Root() Node[K, V] {
	return t.node(t.root)
}

// Clear - empty the tree
func (t *core[K, V]) Clear() {
	t.reset()
}

// wrap a handle as a cursor
func (t *core[K, V]) node(h handle) Node[K, V] {
	return Node[K, V]{tree: t, h: h}
}
