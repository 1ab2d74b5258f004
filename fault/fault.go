// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DisabledError GenericError
type EmptyError GenericError
type ExistsError GenericError
type IndexError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyContainer       = EmptyError("container is empty")
	ErrIndexOutOfRange      = IndexError("index out of range")
	ErrIndexingDisabled     = DisabledError("indexing is disabled")
	ErrInvalidBalance       = InvalidError("balance must be avl or none")
	ErrInvalidCount         = InvalidError("count must be positive")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrInvalidRange         = InvalidError("range start is greater than stop")
	ErrInvalidSourceType    = InvalidError("source type must be text or leveldb")
	ErrInvalidStep          = InvalidError("step must be positive")
	ErrInvalidStructPointer = InvalidError("configuration must be a pointer to a struct")
	ErrInvariantViolation   = ProcessError("tree invariant violated")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingSourcePath    = InvalidError("source path is required")
	ErrNoSuchElement        = NotFoundError("no such element")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrSourceRemoved        = NotFoundError("source was removed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DisabledError) Error() string { return string(e) }
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e IndexError) Error() string    { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrDisabled(e error) bool { var x DisabledError; return errors.As(e, &x) }
func IsErrEmpty(e error) bool    { var x EmptyError; return errors.As(e, &x) }
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrIndex(e error) bool    { var x IndexError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
