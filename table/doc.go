// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package table - read and write table files
//
// a table file is plain text; one header line followed by one line
// per chain:
//
//	nchains=<N>, ncolumns=<C>, redu=<R>
//	<start_0> <end_0>
//	<start_1> <end_1>
//	...
//
// all values are decimal and rows follow the start point order
package table
