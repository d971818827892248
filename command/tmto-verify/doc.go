// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Hellman table checker
//
// Reads table files written by tmto-generate and recomputes the end
// point of every chain (or of the first --sample chains) from the
// start point, the header's column count and reduction.
//
//	tmto-verify [--sample=K] [--hash=NAME] FILE...
package main
