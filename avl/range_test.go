// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// keys from..to with value key*scale
func intTree(from int, to int, scale int, options ...avl.Option) *avl.Tree[int, int, avl.AVL] {
	tree := avl.NewOrdered[int, int](options...)
	for key := from; key <= to; key += 1 {
		tree.Insert(key, key*scale)
	}
	return tree
}

func collectKeys(seq iter.Seq2[int, int]) []int {
	keys := []int{}
	for k := range seq {
		keys = append(keys, k)
	}
	return keys
}

func TestRangeExclusiveAndInclusiveStop(t *testing.T) {
	tree := intTree(1, 4, 1)

	seq, err := tree.Range(avl.Unbounded[int](), avl.Stop(2, false), 1)
	assert.Nil(t, err, "exclusive range error")
	pairs := [][2]int{}
	for k, v := range seq {
		pairs = append(pairs, [2]int{k, v})
	}
	assert.Equal(t, [][2]int{{1, 1}}, pairs, "wrong exclusive range")

	seq, err = tree.Range(avl.Unbounded[int](), avl.Stop(2, true), 1)
	assert.Nil(t, err, "inclusive range error")
	assert.Equal(t, []int{1, 2}, collectKeys(seq), "wrong inclusive range")
}

func TestRangeStep(t *testing.T) {
	tree := intTree(1, 10, 1)

	seq, err := tree.Range(avl.Start(2), avl.Unbounded[int](), 2)
	assert.Nil(t, err, "range error")
	assert.Equal(t, []int{2, 4, 6, 8, 10}, collectKeys(seq), "wrong step 2 range")

	seq, err = tree.Range(avl.Start(3), avl.Stop(8, true), 3)
	assert.Nil(t, err, "range error")
	assert.Equal(t, []int{3, 6}, collectKeys(seq), "wrong step 3 range")

	seq, err = tree.Range(avl.After(3), avl.Before(3), 1)
	assert.Nil(t, err, "range error")
	assert.Equal(t, []int{}, collectKeys(seq), "crossed bounds on one key should be empty")
}

func TestRangeAbsentKeys(t *testing.T) {
	tree := avl.NewOrdered[int, int]()
	for key := 10; key <= 90; key += 10 {
		tree.Insert(key, key)
	}

	seq, err := tree.Range(avl.Start(25), avl.Stop(55, false), 1)
	assert.Nil(t, err, "range error")
	assert.Equal(t, []int{30, 40, 50}, collectKeys(seq), "wrong range between absent keys")

	seq, err = tree.Range(avl.Start(95), avl.Unbounded[int](), 1)
	assert.Nil(t, err, "range error")
	assert.Equal(t, []int{}, collectKeys(seq), "range beyond max should be empty")
}

func TestRangeErrors(t *testing.T) {
	tree := intTree(1, 10, 1)

	_, err := tree.Range(avl.Start(5), avl.Stop(2, false), 1)
	assert.Equal(t, fault.ErrInvalidRange, err, "start above stop")

	_, err = tree.Range(avl.Start(1), avl.Stop(2, false), 0)
	assert.Equal(t, fault.ErrInvalidStep, err, "zero step")
	assert.True(t, fault.IsErrInvalid(err), "step error class")

	_, err = tree.Complement(avl.Start(5), avl.Stop(2, false), 1)
	assert.Equal(t, fault.ErrInvalidRange, err, "complement start above stop")
}

func TestRangeEarlyStop(t *testing.T) {
	tree := intTree(1, 100, 1)
	seq, err := tree.Range(avl.Unbounded[int](), avl.Unbounded[int](), 1)
	assert.Nil(t, err, "range error")

	keys := []int{}
	for k := range seq {
		if k > 3 {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2, 3}, keys, "wrong keys before break")

	// a fresh run restarts
	assert.Equal(t, 100, len(collectKeys(seq)), "sequence did not restart")
}

func TestComplement(t *testing.T) {
	tree := intTree(1, 4, 1)

	// omit [1, 2]
	seq, err := tree.Complement(avl.Before(1), avl.After(2), 1)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{3, 4}, collectKeys(seq), "wrong closed complement")

	// omit (1, 2) which holds nothing
	seq, err = tree.Complement(avl.After(1), avl.Before(2), 1)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{1, 2, 3, 4}, collectKeys(seq), "wrong open complement")

	tree = intTree(1, 5, 1)
	seq, err = tree.Complement(avl.Start(2), avl.Stop(3, true), 1)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{1, 4, 5}, collectKeys(seq), "wrong middle band")

	seq, err = tree.Complement(avl.Unbounded[int](), avl.Unbounded[int](), 1)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{}, collectKeys(seq), "unbounded complement should be empty")
}

// each side restarts the step at its own first item
func TestComplementStepSeams(t *testing.T) {
	tree := intTree(1, 10, 1)
	seq, err := tree.Complement(avl.Start(4), avl.Stop(6, true), 2)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{1, 3, 7, 9}, collectKeys(seq), "wrong stepped complement")

	seq, err = tree.Complement(avl.Start(5), avl.Stop(5, false), 3)
	assert.Nil(t, err, "complement error")
	assert.Equal(t, []int{1, 4, 5, 8}, collectKeys(seq), "wrong complement of empty band")
}

func TestRangeByPosition(t *testing.T) {
	tree := intTree(0, 9, 10)

	seq, err := tree.RangeByPosition(avl.Before(2), avl.Before(5), 1)
	assert.Nil(t, err, "position range error")
	assert.Equal(t, []int{2, 3, 4}, collectKeys(seq), "wrong position range")

	seq, err = tree.RangeByPosition(avl.Before(-3), avl.Unbounded[int](), 1)
	assert.Nil(t, err, "position range error")
	assert.Equal(t, []int{7, 8, 9}, collectKeys(seq), "wrong negative position range")

	seq, err = tree.RangeByPosition(avl.Unbounded[int](), avl.After(-1), 4)
	assert.Nil(t, err, "position range error")
	assert.Equal(t, []int{0, 4, 8}, collectKeys(seq), "wrong stepped position range")

	seq, err = tree.RangeByPosition(avl.Before(10), avl.Before(10), 1)
	assert.Nil(t, err, "empty position range error")
	assert.Equal(t, []int{}, collectKeys(seq), "position range at the end should be empty")

	values := []int{}
	seq, _ = tree.RangeByPosition(avl.After(0), avl.After(2), 1)
	for _, v := range seq {
		values = append(values, v)
	}
	assert.Equal(t, []int{10, 20}, values, "wrong values")
}

func TestRangeByPositionErrors(t *testing.T) {
	tree := intTree(0, 9, 10)

	_, err := tree.RangeByPosition(avl.Before(11), avl.Unbounded[int](), 1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "before beyond end")

	_, err = tree.RangeByPosition(avl.After(10), avl.Unbounded[int](), 1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "after last")

	_, err = tree.RangeByPosition(avl.Before(-11), avl.Unbounded[int](), 1)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "negative before start")

	_, err = tree.RangeByPosition(avl.Before(5), avl.Before(2), 1)
	assert.Equal(t, fault.ErrInvalidRange, err, "start above stop")

	_, err = tree.RangeByPosition(avl.Before(1), avl.Before(2), -1)
	assert.Equal(t, fault.ErrInvalidStep, err, "negative step")

	unindexed := intTree(0, 9, 10, avl.WithoutIndex)
	_, err = unindexed.RangeByPosition(avl.Before(1), avl.Before(2), 1)
	assert.Equal(t, fault.ErrIndexingDisabled, err, "unindexed position range")
	_, err = unindexed.ComplementByPosition(avl.Before(1), avl.Before(2), 1)
	assert.Equal(t, fault.ErrIndexingDisabled, err, "unindexed position complement")
}

func TestComplementByPosition(t *testing.T) {
	tree := intTree(0, 9, 1)

	seq, err := tree.ComplementByPosition(avl.Before(2), avl.After(6), 1)
	assert.Nil(t, err, "position complement error")
	assert.Equal(t, []int{0, 1, 7, 8, 9}, collectKeys(seq), "wrong position complement")

	seq, err = tree.ComplementByPosition(avl.Before(-2), avl.Unbounded[int](), 1)
	assert.Nil(t, err, "position complement error")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, collectKeys(seq), "wrong open ended complement")
}

func TestSetRange(t *testing.T) {
	tree := intTree(1, 10, 1)

	n, err := tree.SetRange(avl.Start(3), avl.Stop(7, true), 2, -1)
	assert.Nil(t, err, "set range error")
	assert.Equal(t, 3, n, "wrong number of items set")

	values := []int{}
	for _, v := range tree.All() {
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2, -1, 4, -1, 6, -1, 8, 9, 10}, values, "wrong values after set range")

	_, err = tree.SetRange(avl.Start(7), avl.Stop(3, true), 1, 0)
	assert.Equal(t, fault.ErrInvalidRange, err, "set range start above stop")
}

func TestCountInRange(t *testing.T) {
	for _, tree := range []*avl.Tree[int, int, avl.AVL]{
		intTree(1, 20, 1),
		intTree(1, 20, 1, avl.WithoutIndex),
	} {
		n, err := tree.CountInRange(avl.Start(5), avl.Stop(10, false))
		assert.Nil(t, err, "count error")
		assert.Equal(t, 5, n, "wrong exclusive count")

		n, err = tree.CountInRange(avl.Start(5), avl.Stop(10, true))
		assert.Nil(t, err, "count error")
		assert.Equal(t, 6, n, "wrong inclusive count")

		n, err = tree.CountInRange(avl.After(15), avl.Unbounded[int]())
		assert.Nil(t, err, "count error")
		assert.Equal(t, 5, n, "wrong open count")

		n, err = tree.CountInRange(avl.After(5), avl.Before(5))
		assert.Nil(t, err, "count error")
		assert.Equal(t, 0, n, "crossed bounds on one key")

		_, err = tree.CountInRange(avl.Start(9), avl.Stop(2, false))
		assert.Equal(t, fault.ErrInvalidRange, err, "count start above stop")
	}
}

func TestSelectAndRank(t *testing.T) {
	tree := intTree(1, 5, 100)

	k, v, err := tree.Select(-1)
	assert.Nil(t, err, "select(-1) error")
	assert.Equal(t, 5, k, "select(-1) is not the largest key")
	assert.Equal(t, 500, v, "select(-1) value")

	k, _, err = tree.Select(-5)
	assert.Nil(t, err, "select(-5) error")
	assert.Equal(t, 1, k, "select(-5) is not the smallest key")

	_, _, err = tree.Select(5)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "select(5)")
	_, _, err = tree.Select(-6)
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "select(-6)")

	_, err = tree.Rank(6)
	assert.Equal(t, fault.ErrKeyNotFound, err, "rank of absent key")

	node, err := tree.SelectNode(2)
	assert.Nil(t, err, "select node error")
	assert.Equal(t, 3, node.Key(), "select node key")
	assert.Equal(t, 5, tree.Root().Size(), "root size")

	unindexed := intTree(1, 5, 100, avl.WithoutIndex)
	assert.False(t, unindexed.Indexed(), "tree claims to be indexed")
	_, _, err = unindexed.Select(0)
	assert.Equal(t, fault.ErrIndexingDisabled, err, "unindexed select")
	_, err = unindexed.Rank(1)
	assert.Equal(t, fault.ErrIndexingDisabled, err, "unindexed rank")
	_, index := unindexed.Search(3)
	assert.Equal(t, -1, index, "unindexed search index")
	assert.Nil(t, unindexed.Check(), "unindexed tree check")
}

func TestFind(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	for _, key := range []int{10, 20, 30} {
		tree.Insert(key, "x")
	}

	k, _, err := tree.FindGreaterThan(20)
	assert.Nil(t, err, "greater than error")
	assert.Equal(t, 30, k, "greater than")

	k, _, err = tree.FindGreaterOrEqual(20)
	assert.Nil(t, err, "greater or equal error")
	assert.Equal(t, 20, k, "greater or equal")

	k, _, err = tree.FindLessThan(20)
	assert.Nil(t, err, "less than error")
	assert.Equal(t, 10, k, "less than")

	k, _, err = tree.FindLessOrEqual(25)
	assert.Nil(t, err, "less or equal error")
	assert.Equal(t, 20, k, "less or equal")

	_, _, err = tree.FindGreaterThan(30)
	assert.Equal(t, fault.ErrNoSuchElement, err, "nothing greater than max")
	_, _, err = tree.FindLessThan(10)
	assert.Equal(t, fault.ErrNoSuchElement, err, "nothing less than min")
	assert.True(t, fault.IsErrNotFound(err), "find error class")

	_, err = tree.Get(15)
	assert.Equal(t, fault.ErrKeyNotFound, err, "get absent key")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "clear left items")
	_, _, err = tree.Min()
	assert.Equal(t, fault.ErrEmptyContainer, err, "min of empty tree")
	_, _, err = tree.Max()
	assert.Equal(t, fault.ErrEmptyContainer, err, "max of empty tree")
	assert.Nil(t, tree.Check(), "empty tree check")
}
