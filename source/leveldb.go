// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB - every record of a LevelDB database in key order
type LevelDB struct {
	db       *leveldb.DB
	maxRange *ldb_util.Range
}

// OpenLevelDB - open an existing database read only
func OpenLevelDB(path string) (*LevelDB, error) {
	return OpenLevelDBPrefix(path, nil)
}

// OpenLevelDBPrefix - open an existing database read only and only
// return the records whose key starts with prefix, the prefix is
// stripped from the keys
func OpenLevelDBPrefix(path string, prefix []byte) (*LevelDB, error) {
	opt := &ldb_opt.Options{
		ErrorIfMissing: true,
		ReadOnly:       true,
	}
	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		return nil, err
	}

	var r *ldb_util.Range
	if 0 != len(prefix) {
		r = ldb_util.BytesPrefix(prefix)
	}
	return &LevelDB{
		db:       db,
		maxRange: r,
	}, nil
}

// Each - call f for each record in key order
func (l *LevelDB) Each(f func(key []byte, value []byte) error) error {
	iter := l.db.NewIterator(l.maxRange, nil)
	defer iter.Release()

	strip := 0
	if nil != l.maxRange {
		strip = len(l.maxRange.Start)
	}

	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		if err := f(iter.Key()[strip:], iter.Value()); nil != err {
			return err
		}
	}
	return iter.Error()
}

// Close - close the database
func (l *LevelDB) Close() error {
	return l.db.Close()
}
