// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package domain - bounds of the password space covered by the tables
package domain

// Bits - number of significant bits in a password
const Bits = 38

// Size - number of distinct passwords
const Size = uint64(1) << Bits

// Maximum - largest password value, also the mask for the low Bits
const Maximum = Size - 1

// Valid - true if the value is inside the password space
func Valid(value uint64) bool {
	return value <= Maximum
}
