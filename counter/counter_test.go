// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(7); 10 != n {
		t.Errorf("counter is not 10 after adding: %d", n)
	}
}

// many go routines sharing one set of totals
func TestTotalsConcurrent(t *testing.T) {

	var totals counter.Totals
	var wg sync.WaitGroup

	const workers = 8
	const loops = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < loops; j += 1 {
				totals.Inserts.Increment()
				totals.Queries.Add(2)
			}
			totals.Checks.Increment()
		}()
	}
	wg.Wait()

	if workers*loops*3 != totals.Operations() {
		t.Errorf("operations: %d  expected: %d", totals.Operations(), workers*loops*3)
	}
	s := totals.Snapshot()
	if workers != s["checks"] {
		t.Errorf("checks: %d  expected: %d", s["checks"], workers)
	}
	if !totals.Deletes.IsZero() {
		t.Errorf("deletes: %d  expected zero", totals.Deletes.Uint64())
	}
}
