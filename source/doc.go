// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - read key/value records from a LevelDB database or
// a text file so they can be loaded into a tree
package source
