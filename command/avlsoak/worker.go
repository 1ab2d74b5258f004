// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// settings shared by all workers
type soakOptions struct {
	operations int
	keys       int
	checkEvery int
	rate       int // operations per second per worker, zero is unlimited
}

// one goroutine exercising its own tree and list against plain Go
// reference structures
type worker struct {
	id      int
	log     *logger.L
	rnd     *rand.Rand
	totals  *counter.Totals
	options soakOptions
	limiter *rate.Limiter

	tree      *avl.Tree[int, int, avl.AVL]
	reference map[int]int

	list   *avl.List[int]
	sorted []int

	completed int
	err       error
}

func newWorker(id int, seed int64, totals *counter.Totals, options soakOptions) *worker {
	if options.keys < 1 {
		options.keys = 1
	}
	if options.checkEvery < 1 {
		options.checkEvery = options.operations + 1
	}
	var limiter *rate.Limiter
	if options.rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.rate), 1)
	}
	return &worker{
		id:        id,
		limiter:   limiter,
		log:       logger.New(fmt.Sprintf("soak-%d", id)),
		rnd:       rand.New(rand.NewSource(seed)),
		totals:    totals,
		options:   options,
		tree:      avl.NewOrdered[int, int](),
		reference: make(map[int]int),
		list:      avl.NewOrderedList[int](),
	}
}

// Run - background process body
func (w *worker) Run(_ interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("starting: %d operations on %d keys", w.options.operations, w.options.keys)

loop:
	for w.completed < w.options.operations {
		select {
		case <-shutdown:
			log.Warnf("shutdown after: %d operations", w.completed)
			break loop
		default:
		}

		proceed, err := w.throttle(shutdown)
		if nil != err {
			w.fail(err)
			return
		}
		if !proceed {
			log.Warnf("shutdown while throttled after: %d operations", w.completed)
			break loop
		}
		if err := w.step(); nil != err {
			w.fail(err)
			return
		}
		w.completed += 1

		if 0 == w.completed%w.options.checkEvery {
			if err := w.check(); nil != err {
				w.fail(err)
				return
			}
		}
	}

	if err := w.check(); nil != err {
		w.fail(err)
		return
	}
	log.Infof("finished: %d operations  keys: %d  height: %d  list: %d", w.completed, w.tree.Count(), w.tree.Height(), w.list.Len())
}

func (w *worker) fail(err error) {
	w.err = fmt.Errorf("worker: %d  operation: %d  %w", w.id, w.completed, err)
	w.log.Criticalf("%s", w.err)
}

// delay until the limiter allows the next operation
//
// returns false if shutdown arrived first
func (w *worker) throttle(shutdown <-chan struct{}) (bool, error) {
	if nil == w.limiter {
		return true, nil
	}
	r := w.limiter.Reserve()
	if !r.OK() {
		return false, fault.ErrInvalidCount
	}
	delay := r.Delay()
	if delay <= 0 {
		return true, nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true, nil
	case <-shutdown:
		r.Cancel()
		return false, nil
	}
}

// perform one random operation and verify its result
func (w *worker) step() error {
	key := w.rnd.Intn(w.options.keys)

	switch w.rnd.Intn(8) {
	case 0, 1:
		value := w.rnd.Int()
		_, exists := w.reference[key]
		if w.tree.Insert(key, value) == exists {
			return fmt.Errorf("insert: %d  existed: %t", key, exists)
		}
		w.reference[key] = value
		if exists {
			w.totals.Overwrites.Increment()
		} else {
			w.totals.Inserts.Increment()
		}

	case 2:
		expected, exists := w.reference[key]
		value, ok := w.tree.Delete(key)
		if ok != exists || (ok && value != expected) {
			return fmt.Errorf("delete: %d  got: %d/%t  expected: %d/%t", key, value, ok, expected, exists)
		}
		delete(w.reference, key)
		if exists {
			w.totals.Deletes.Increment()
		} else {
			w.totals.Misses.Increment()
		}

	case 3:
		expected, exists := w.reference[key]
		value, err := w.tree.Get(key)
		if exists && (nil != err || value != expected) {
			return fmt.Errorf("get: %d  got: %d/%v  expected: %d", key, value, err, expected)
		}
		if !exists && !errors.Is(err, fault.ErrKeyNotFound) {
			return fmt.Errorf("get: %d  missing key returned: %v", key, err)
		}
		w.totals.Queries.Increment()

	case 4:
		if err := w.position(); nil != err {
			return err
		}
		w.totals.Queries.Increment()

	case 5:
		if err := w.span(key); nil != err {
			return err
		}
		w.totals.Queries.Increment()

	case 6:
		w.list.Append(key)
		i, _ := slices.BinarySearch(w.sorted, key)
		w.sorted = slices.Insert(w.sorted, i, key)
		w.totals.Inserts.Increment()

	case 7:
		i, found := slices.BinarySearch(w.sorted, key)
		if w.list.Remove(key) != found {
			return fmt.Errorf("list remove: %d  expected: %t", key, found)
		}
		if found {
			w.sorted = slices.Delete(w.sorted, i, i+1)
			w.totals.Deletes.Increment()
		} else {
			w.totals.Misses.Increment()
		}
	}
	return nil
}

// select a random position and confirm rank maps back to it
func (w *worker) position() error {
	n := w.tree.Count()
	if 0 == n {
		if _, _, err := w.tree.Select(0); !errors.Is(err, fault.ErrIndexOutOfRange) {
			return fmt.Errorf("select on empty tree returned: %v", err)
		}
		return nil
	}

	index := w.rnd.Intn(n)
	key, value, err := w.tree.Select(index)
	if nil != err {
		return fmt.Errorf("select: %d  error: %w", index, err)
	}
	if expected, ok := w.reference[key]; !ok || expected != value {
		return fmt.Errorf("select: %d  returned unknown item: %d", index, key)
	}
	rank, err := w.tree.Rank(key)
	if nil != err || rank != index {
		return fmt.Errorf("rank: %d  got: %d/%v  expected: %d", key, rank, err, index)
	}
	below, err := w.tree.CountInRange(avl.Unbounded[int](), avl.Before(key))
	if nil != err || below != index {
		return fmt.Errorf("count below: %d  got: %d/%v  expected: %d", key, below, err, index)
	}

	if 0 != w.list.Len() {
		index = w.rnd.Intn(w.list.Len())
		v, err := w.list.At(index)
		if nil != err || v != w.sorted[index] {
			return fmt.Errorf("list at: %d  got: %d/%v  expected: %d", index, v, err, w.sorted[index])
		}
	}
	return nil
}

// compare an inclusive key range against the reference map
func (w *worker) span(lo int) error {
	hi := lo + w.rnd.Intn(w.options.keys/4+1)
	step := 1 + w.rnd.Intn(3)

	seq, err := w.tree.Range(avl.Start(lo), avl.Stop(hi, true), step)
	if nil != err {
		return fmt.Errorf("range: %d to %d  error: %w", lo, hi, err)
	}

	expected := []int{}
	skip := 0
	for k := lo; k <= hi; k += 1 {
		if _, ok := w.reference[k]; !ok {
			continue
		}
		if 0 == skip {
			expected = append(expected, k)
			skip = step
		}
		skip -= 1
	}

	actual := []int{}
	for k, v := range seq {
		if v != w.reference[k] {
			return fmt.Errorf("range: %d to %d  key: %d has wrong value", lo, hi, k)
		}
		actual = append(actual, k)
	}
	if !slices.Equal(expected, actual) {
		return fmt.Errorf("range: %d to %d  step: %d  got: %v  expected: %v", lo, hi, step, actual, expected)
	}
	return nil
}

// full structural and content comparison
func (w *worker) check() error {
	w.totals.Checks.Increment()

	if err := w.tree.Check(); nil != err {
		return err
	}
	if err := w.list.Check(); nil != err {
		return err
	}

	if w.tree.Count() != len(w.reference) {
		return fmt.Errorf("count: %d  expected: %d", w.tree.Count(), len(w.reference))
	}
	previous := -1
	for k, v := range w.tree.All() {
		if k <= previous {
			return fmt.Errorf("keys out of order: %d after %d", k, previous)
		}
		if expected, ok := w.reference[k]; !ok || expected != v {
			return fmt.Errorf("key: %d  value: %d  not in reference", k, v)
		}
		previous = k
	}

	if !slices.Equal(slices.Collect(w.list.All()), w.sorted) {
		return fmt.Errorf("list contents differ: length: %d  expected: %d", w.list.Len(), len(w.sorted))
	}
	return nil
}
