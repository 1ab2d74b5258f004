// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

type boundKind int

const (
	unbounded boundKind = iota
	before
	after
)

// Bound - one end of a range
//
// a bound is a boundary between items rather than an item: Before(k)
// lies just below k and After(k) just above it, so whether k itself is
// inside a range depends on which end the bound is used for.
type Bound[K any] struct {
	kind boundKind
	key  K
}

// Unbounded - no limit, the start or end of the whole tree
func Unbounded[K any]() Bound[K] {
	return Bound[K]{}
}

// Before - the boundary just below key
func Before[K any](key K) Bound[K] {
	return Bound[K]{kind: before, key: key}
}

// After - the boundary just above key
func After[K any](key K) Bound[K] {
	return Bound[K]{kind: after, key: key}
}

// Start - a start bound that includes key
func Start[K any](key K) Bound[K] {
	return Before(key)
}

// Stop - a stop bound, key is included only if inclusive is set
func Stop[K any](key K, inclusive bool) Bound[K] {
	if inclusive {
		return After(key)
	}
	return Before(key)
}

// IsUnbounded - true for the open end of a range
func (b Bound[K]) IsUnbounded() bool {
	return unbounded == b.kind
}

// Key - the key the bound is attached to, false if unbounded
func (b Bound[K]) Key() (K, bool) {
	return b.key, unbounded != b.kind
}

// String - printable form, e.g. "before(3)"
func (b Bound[K]) String() string {
	switch b.kind {
	case before:
		return fmt.Sprintf("before(%v)", b.key)
	case after:
		return fmt.Sprintf("after(%v)", b.key)
	default:
		return "unbounded"
	}
}
