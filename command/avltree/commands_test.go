// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

// run the app on a preloaded tree of keys "a".."g" with values "1".."7"
func runApp(t *testing.T, balance string, indexed bool, args ...string) (string, error) {
	tree, err := newStore(balance, indexed)
	require.Nil(t, err, "new store")
	for _, k := range "dbfaceg" {
		tree.Insert(string(k), string('1'+k-'a'))
	}

	buffer := &bytes.Buffer{}
	app := newApp(buffer, buffer)
	app.Metadata = map[string]interface{}{
		"config": &metadata{
			tree: tree,
			log:  logger.New(category),
			w:    buffer,
			e:    buffer,
		},
	}

	err = app.Run(append([]string{"avltree"}, args...))
	return buffer.String(), err
}

func decodeItems(t *testing.T, text string) []string {
	var result itemList
	require.Nil(t, json.Unmarshal([]byte(text), &result), "decode: %s", text)
	keys := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		keys = append(keys, item.Key+"="+item.Value)
	}
	assert.Equal(t, len(keys), result.Count, "count")
	return keys
}

func TestRunRange(t *testing.T) {
	items := []struct {
		args     []string
		expected []string
	}{
		{[]string{"range"}, []string{"a=1", "b=2", "c=3", "d=4", "e=5", "f=6", "g=7"}},
		{[]string{"range", "--start", "b", "--stop", "e"}, []string{"b=2", "c=3", "d=4"}},
		{[]string{"range", "-a", "b", "-b", "e", "-i"}, []string{"b=2", "c=3", "d=4", "e=5"}},
		{[]string{"range", "--start", "a", "--step", "3"}, []string{"a=1", "d=4", "g=7"}},
		{[]string{"range", "--start", "bb", "--stop", "dd"}, []string{"c=3", "d=4"}},
		{[]string{"complement", "--start", "b", "--stop", "f"}, []string{"a=1", "f=6", "g=7"}},
		{[]string{"complement", "-a", "b", "-b", "f", "-i"}, []string{"a=1", "g=7"}},
		{[]string{"slice", "--start", "1", "--stop", "4"}, []string{"b=2", "c=3", "d=4"}},
		{[]string{"slice", "--start", "-2"}, []string{"f=6", "g=7"}},
		{[]string{"slice", "--stop", "2", "--inclusive"}, []string{"a=1", "b=2", "c=3"}},
		{[]string{"slice", "--step", "2"}, []string{"a=1", "c=3", "e=5", "g=7"}},
	}

	for _, balance := range []string{"avl", "none"} {
		for i, item := range items {
			output, err := runApp(t, balance, true, item.args...)
			require.Nil(t, err, "%s %d: %v", balance, i, item.args)
			assert.Equal(t, item.expected, decodeItems(t, output), "%s %d: %v", balance, i, item.args)
		}
	}
}

func TestRunRangeErrors(t *testing.T) {
	_, err := runApp(t, "avl", true, "range", "--start", "e", "--stop", "b")
	assert.Equal(t, fault.ErrInvalidRange, err, "crossed keys")

	_, err = runApp(t, "avl", true, "range", "--step", "0")
	assert.Equal(t, fault.ErrInvalidStep, err, "zero step")

	_, err = runApp(t, "avl", false, "slice", "--start", "1")
	assert.Equal(t, fault.ErrIndexingDisabled, err, "slice unindexed")

	_, err = runApp(t, "avl", true, "slice", "--start", "9")
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "start beyond end")
}

func TestRunQueries(t *testing.T) {
	items := []struct {
		args     []string
		expected string
	}{
		{[]string{"min"}, `"key": "a"`},
		{[]string{"max"}, `"key": "g"`},
		{[]string{"get", "c"}, `"value": "3"`},
		{[]string{"rank", "e"}, `"index": 4`},
		{[]string{"select", "5"}, `"key": "f"`},
		{[]string{"select", "--", "-1"}, `"key": "g"`},
		{[]string{"find", "--mode", "gt", "c"}, `"key": "d"`},
		{[]string{"find", "cc"}, `"key": "d"`},
		{[]string{"find", "--mode", "lt", "c"}, `"key": "b"`},
		{[]string{"find", "--mode", "le", "c"}, `"key": "c"`},
		{[]string{"count"}, `"count": 7`},
		{[]string{"median"}, `"median": "4"`},
		{[]string{"check"}, `"ok": true`},
	}

	for i, item := range items {
		output, err := runApp(t, "avl", true, item.args...)
		require.Nil(t, err, "%d: %v", i, item.args)
		assert.Contains(t, output, item.expected, "%d: %v", i, item.args)
	}
}

func TestRunQueryErrors(t *testing.T) {
	_, err := runApp(t, "avl", true, "get", "z")
	assert.Equal(t, fault.ErrKeyNotFound, err, "missing key")

	_, err = runApp(t, "avl", true, "rank", "z")
	assert.Equal(t, fault.ErrKeyNotFound, err, "rank missing key")

	_, err = runApp(t, "avl", true, "select", "7")
	assert.Equal(t, fault.ErrIndexOutOfRange, err, "select beyond end")

	_, err = runApp(t, "avl", true, "find", "--mode", "gt", "g")
	assert.Equal(t, fault.ErrNoSuchElement, err, "nothing greater")

	_, err = runApp(t, "avl", true, "find", "--mode", "xx", "g")
	assert.NotNil(t, err, "bad mode accepted")

	_, err = runApp(t, "avl", true, "get")
	assert.NotNil(t, err, "missing argument accepted")
}

func TestRunPrint(t *testing.T) {
	output, err := runApp(t, "avl", true, "print")
	require.Nil(t, err, "print")
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		assert.Contains(t, output, k, "key not drawn")
	}
}

func TestRunMissingConfiguration(t *testing.T) {
	buffer := &bytes.Buffer{}
	app := newApp(buffer, buffer)

	err := app.Run([]string{"avltree", "--config", filepath.Join(t.TempDir(), "none.conf"), "count"})
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestRunVersion(t *testing.T) {
	buffer := &bytes.Buffer{}
	app := newApp(buffer, buffer)

	err := app.Run([]string{"avltree", "version"})
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", buffer.String(), "version output")
}
