// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrChainCount            = InvalidError("chain count must be positive")
	ErrChainMismatch         = ProcessError("chain end point mismatch")
	ErrColumnCount           = InvalidError("column count must be positive")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrEntropy               = ProcessError("entropy source failed")
	ErrInvalidHeader         = InvalidError("table header is invalid")
	ErrInvalidRow            = InvalidError("table row is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingArguments      = InvalidError("chain and column counts are required")
	ErrMissingDirectory      = InvalidError("table directory is required")
	ErrNotADirectory         = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrRowCountMismatch      = InvalidError("row count does not match chain count")
	ErrTableCount            = InvalidError("table count must be in range 1..255")
	ErrTooManyChains         = InvalidError("chain count exceeds password domain")
	ErrUnknownHash           = NotFoundError("hash algorithm is not supported")
	ErrValueOutOfDomain      = InvalidError("value is outside the password domain")
	ErrWrongParallelism      = InvalidError("parallelism must not be negative")
	ErrWrongProgressInterval = InvalidError("progress interval must not be negative")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// TableError - failure of a single table, keeps the table id
type TableError struct {
	ID  int
	Err error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("table %d: %s", e.ID, e.Err)
}

// Unwrap - give access to the underlying error
func (e *TableError) Unwrap() error { return e.Err }

// determine the class of an error, wrapped errors are examined
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }

// TableID - id of the failed table, false if not a table error
func TableID(e error) (int, bool) {
	var t *TableError
	if errors.As(e, &t) {
		return t.ID, true
	}
	return 0, false
}
