// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reduction - map a digest back into the password domain
//
// the reduction is a circular right rotation of the 256 bit digest
// followed by extraction of the low 38 bits of the first six bytes
// read as little endian; the rotation amount selects one of 256
// reduction functions and tables must reproduce it bit for bit
package reduction

import (
	"github.com/bitmark-inc/tmto/digest"
)

// Reduce - digest to password using a right rotation of the given number of bits
func Reduce(d digest.Digest, rotation uint8) uint64 {
	rotated := RotateBytes(d, uint(rotation/8))
	rotated = RotateBits(rotated, uint(rotation%8))
	return Extract(rotated)
}

// RotateBytes - circular right rotation by whole bytes
//
// output byte j comes from input byte (j + 32 - shift) mod 32
func RotateBytes(in digest.Digest, shift uint) digest.Digest {
	shift %= digest.Length
	if 0 == shift {
		return in
	}

	var out digest.Digest
	for j := uint(0); j < digest.Length; j += 1 {
		out[j] = in[(j+digest.Length-shift)%digest.Length]
	}
	return out
}

// RotateBits - circular right rotation by 0..7 bits
//
// each byte is shifted right and receives the low bits of the byte
// before it, byte 0 borrows from byte 31
func RotateBits(in digest.Digest, shift uint) digest.Digest {
	shift %= 8
	if 0 == shift {
		return in
	}

	var out digest.Digest
	for j := uint(0); j < digest.Length; j += 1 {
		previous := in[(j+digest.Length-1)%digest.Length]
		out[j] = in[j]>>shift | previous<<(8-shift)
	}
	return out
}

// Extract - low 38 bits of the first six bytes as little endian
//
// bytes 0..3 are used whole, only the low 6 bits of byte 4 are kept
// and byte 5 is ignored
func Extract(d digest.Digest) uint64 {
	return uint64(d[0]) |
		uint64(d[1])<<8 |
		uint64(d[2])<<16 |
		uint64(d[3])<<24 |
		uint64(d[4]&0x3f)<<32
}
