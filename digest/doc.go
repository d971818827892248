// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - 256 bit digests used along a chain
//
// the digest is kept in the byte order produced by the hash function,
// the reduction function depends on this order
package digest
