// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers to allow
// iteration through the nodes, and sub-tree sizes to allow access by
// position
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are kept in an arena inside the tree and refer to each other
// by index.  The balancing strategy is a type parameter so a plain
// binary tree can be built from the same code for comparison.
//
// Insert with an existing key overwrites the data in place.  Deleting
// a node with two children moves the data of its predecessor into it,
// so a Node cursor held on that predecessor is no longer valid.
//
// List is a sorted multiset built on the same tree: each node counts
// the occurrences of its key and positions count occurrences.
package avl
