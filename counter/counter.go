// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be shared between go
// routines, just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Add - add n to a counter, returns new value
func (ic *Counter) Add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(ic), n)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Totals - one counter per kind of tree operation
type Totals struct {
	Inserts    Counter
	Overwrites Counter
	Deletes    Counter
	Misses     Counter
	Queries    Counter
	Checks     Counter
}

// Snapshot - current values keyed by name, for reporting
func (t *Totals) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"inserts":    t.Inserts.Uint64(),
		"overwrites": t.Overwrites.Uint64(),
		"deletes":    t.Deletes.Uint64(),
		"misses":     t.Misses.Uint64(),
		"queries":    t.Queries.Uint64(),
		"checks":     t.Checks.Uint64(),
	}
}

// Operations - total of all mutations and queries
func (t *Totals) Operations() uint64 {
	return t.Inserts.Uint64() + t.Overwrites.Uint64() + t.Deletes.Uint64() + t.Misses.Uint64() + t.Queries.Uint64()
}
