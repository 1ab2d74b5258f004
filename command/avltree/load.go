// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"iter"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/source"
)

// the tree operations used by the commands, satisfied by both
// balancing strategies
type store interface {
	Insert(key string, value string) bool
	Count() int
	Height() int
	Get(key string) (string, error)
	Min() (string, string, error)
	Max() (string, string, error)
	Rank(key string) (int, error)
	Select(index int) (string, string, error)
	FindGreaterThan(key string) (string, string, error)
	FindGreaterOrEqual(key string) (string, string, error)
	FindLessThan(key string) (string, string, error)
	FindLessOrEqual(key string) (string, string, error)
	Range(start avl.Bound[string], stop avl.Bound[string], step int) (iter.Seq2[string, string], error)
	Complement(start avl.Bound[string], stop avl.Bound[string], step int) (iter.Seq2[string, string], error)
	RangeByPosition(start avl.Bound[int], stop avl.Bound[int], step int) (iter.Seq2[string, string], error)
	Values() iter.Seq[string]
	Check() error
	Fprint(w io.Writer, printData bool) int
}

// create an empty tree for the configured strategy
func newStore(balance string, indexed bool) (store, error) {
	options := []avl.Option{}
	if !indexed {
		options = append(options, avl.WithoutIndex)
	}

	switch balance {
	case "avl", "":
		return avl.NewOrdered[string, string](options...), nil
	case "none":
		return avl.NewUnbalanced[string, string](strings.Compare, options...), nil
	default:
		return nil, fault.ErrInvalidBalance
	}
}

// read every record of a source into a tree, later records with the
// same key replace earlier ones
func loadTree(log *logger.L, src source.Source, balance string, indexed bool) (store, error) {

	tree, err := newStore(balance, indexed)
	if nil != err {
		return nil, err
	}

	records := 0
	err = src.Each(func(key []byte, value []byte) error {
		records += 1
		if !tree.Insert(string(key), string(value)) {
			log.Debugf("overwrite key: %q", key)
		}
		return nil
	})
	if nil != err {
		log.Errorf("load failed after: %d records  error: %s", records, err)
		return nil, err
	}

	log.Infof("loaded: %d records  keys: %d  height: %d", records, tree.Count(), tree.Height())
	return tree, nil
}
