// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

type item struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type itemList struct {
	Count int    `json:"count"`
	Items []item `json:"items"`
}

type position struct {
	Key   string `json:"key"`
	Index int    `json:"index"`
}

// a single argument is required
func oneArgument(c *cli.Context, name string) (string, error) {
	if 1 != c.NArg() {
		return "", fmt.Errorf("%s: requires exactly one %s argument", c.Command.Name, name)
	}
	return c.Args().Get(0), nil
}

func printItem(m *metadata, key string, value string, err error) error {
	if nil != err {
		return err
	}
	return printJson(m.w, item{Key: key, Value: value})
}

func printItems(m *metadata, seq iter.Seq2[string, string], err error) error {
	if nil != err {
		return err
	}
	result := itemList{
		Items: []item{},
	}
	for k, v := range seq {
		result.Items = append(result.Items, item{Key: k, Value: v})
	}
	result.Count = len(result.Items)
	m.log.Debugf("%d items", result.Count)
	return printJson(m.w, result)
}

func runCount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printJson(m.w, struct {
		Count  int `json:"count"`
		Height int `json:"height"`
	}{
		Count:  m.tree.Count(),
		Height: m.tree.Height(),
	})
}

func runMin(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	key, value, err := m.tree.Min()
	return printItem(m, key, value, err)
}

func runMax(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	key, value, err := m.tree.Max()
	return printItem(m, key, value, err)
}

func runGet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	key, err := oneArgument(c, "KEY")
	if nil != err {
		return err
	}
	value, err := m.tree.Get(key)
	return printItem(m, key, value, err)
}

func runRank(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	key, err := oneArgument(c, "KEY")
	if nil != err {
		return err
	}
	index, err := m.tree.Rank(key)
	if nil != err {
		return err
	}
	return printJson(m.w, position{Key: key, Index: index})
}

func runSelect(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	arg, err := oneArgument(c, "INDEX")
	if nil != err {
		return err
	}
	index, err := strconv.Atoi(arg)
	if nil != err {
		return err
	}
	key, value, err := m.tree.Select(index)
	return printItem(m, key, value, err)
}

// the key bounds from the start/stop/inclusive flags
func keyBounds(c *cli.Context) (avl.Bound[string], avl.Bound[string]) {
	start := avl.Unbounded[string]()
	if c.IsSet("start") {
		start = avl.Start(c.String("start"))
	}
	stop := avl.Unbounded[string]()
	if c.IsSet("stop") {
		stop = avl.Stop(c.String("stop"), c.Bool("inclusive"))
	}
	return start, stop
}

func runRange(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	start, stop := keyBounds(c)
	m.log.Infof("range: %s to %s  step: %d", start, stop, c.Int("step"))
	seq, err := m.tree.Range(start, stop, c.Int("step"))
	return printItems(m, seq, err)
}

func runComplement(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	start, stop := keyBounds(c)
	m.log.Infof("complement: %s to %s  step: %d", start, stop, c.Int("step"))
	seq, err := m.tree.Complement(start, stop, c.Int("step"))
	return printItems(m, seq, err)
}

func runSlice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	start := avl.Unbounded[int]()
	if c.IsSet("start") {
		start = avl.Start(c.Int("start"))
	}
	stop := avl.Unbounded[int]()
	if c.IsSet("stop") {
		stop = avl.Stop(c.Int("stop"), c.Bool("inclusive"))
	}
	m.log.Infof("slice: %s to %s  step: %d", start, stop, c.Int("step"))
	seq, err := m.tree.RangeByPosition(start, stop, c.Int("step"))
	return printItems(m, seq, err)
}

func runFind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	key, err := oneArgument(c, "KEY")
	if nil != err {
		return err
	}

	var k, v string
	switch mode := c.String("mode"); mode {
	case "gt":
		k, v, err = m.tree.FindGreaterThan(key)
	case "ge":
		k, v, err = m.tree.FindGreaterOrEqual(key)
	case "lt":
		k, v, err = m.tree.FindLessThan(key)
	case "le":
		k, v, err = m.tree.FindLessOrEqual(key)
	default:
		return fmt.Errorf("mode: %q can only be gt/ge/lt/le", mode)
	}
	return printItem(m, k, v, err)
}

// the values may repeat so they are counted in a sorted list
func runMedian(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	values := avl.NewOrderedList[string]()
	for v := range m.tree.Values() {
		values.Append(v)
	}
	if 0 == values.Len() {
		return fault.ErrEmptyContainer
	}

	median, err := values.At((values.Len() - 1) / 2)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Median   string `json:"median"`
		Values   int    `json:"values"`
		Distinct int    `json:"distinct"`
	}{
		Median:   median,
		Values:   values.Len(),
		Distinct: values.Distinct(),
	})
}

func runPrint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	depth := m.tree.Fprint(m.w, m.verbose)
	if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if err := m.tree.Check(); nil != err {
		m.log.Criticalf("check failed: %s", err)
		return err
	}
	return printJson(m.w, struct {
		OK     bool `json:"ok"`
		Count  int  `json:"count"`
		Height int  `json:"height"`
	}{
		OK:     true,
		Count:  m.tree.Count(),
		Height: m.tree.Height(),
	})
}
