// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -source=source.go -destination=mocks/source.go -package=mocks

// Source - a sequence of key/value records used to fill a tree
type Source interface {
	// call f for every record in the order they are stored, stop
	// at the first error returned by f
	//
	// the slices are only valid during the call
	Each(f func(key []byte, value []byte) error) error

	Close() error
}

// names of the source types
const (
	TextType    = "text"
	LevelDBType = "leveldb"
)

// Open - open a source by type name
func Open(sourceType string, path string) (Source, error) {
	if "" == path {
		return nil, fault.ErrMissingSourcePath
	}
	switch strings.ToLower(sourceType) {
	case TextType:
		t, err := OpenText(path)
		if nil != err {
			return nil, err
		}
		return t, nil
	case LevelDBType:
		l, err := OpenLevelDB(path)
		if nil != err {
			return nil, err
		}
		return l, nil
	default:
		return nil, fault.ErrInvalidSourceType
	}
}
