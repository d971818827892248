// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - build hash and reduce chains
//
// a chain starts at a password and applies hash then reduce a fixed
// number of times; only the start and end points are kept
package chain
