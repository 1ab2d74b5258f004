// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - load the records of a text file or LevelDB database into
// an ordered tree and run a query against it
//
// the configuration file is a Lua script returning a table, see
// avltree.conf.sample
package main
