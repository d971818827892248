// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Hellman table generator
//
// This program draws one set of random start points from a 38 bit
// password space and builds up to 255 tables of hash and reduce
// chains from it, one file per table.
//
//	tmto-generate [--help] [--verbose] [--quiet] [--config-file=FILE]
//	              [--tables=1..255] [--parallelism=N] [--hash=sha256|sha3-256]
//	              NCHAINS NCOLUMNS [DIRECTORY]
//
// The counts may instead come from a Lua configuration file, see
// tmto-generate.conf.sample; options and arguments override the file.
package main
