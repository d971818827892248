// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/tmto/chain"
)

const (
	headerFormat  = "nchains=%d, ncolumns=%d, redu=%d"
	fileExtension = ".txt"
)

// Header - the metadata line of a table
type Header struct {
	Chains    uint64
	Columns   uint64
	Reduction uint8
}

// String - header line without the line terminator
func (h Header) String() string {
	return fmt.Sprintf(headerFormat, h.Chains, h.Columns, h.Reduction)
}

// Table - a complete table as read from a file
type Table struct {
	Header
	Pairs []chain.Pair
}

// FileName - name of the file holding a table
func FileName(id int) string {
	return strconv.Itoa(id) + fileExtension
}
