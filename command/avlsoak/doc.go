// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlsoak - run concurrent workers that each apply random operations
// to their own tree and sorted list, comparing every result against
// a plain map or slice and checking the tree structure periodically
package main
