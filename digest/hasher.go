// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tmto/fault"
)

// names of the supported hash algorithms
const (
	SHA256  = "sha256"
	SHA3256 = "sha3-256"

	Default = SHA256
)

// Hasher - computes the digest of one chain element
//
// implementations must not retain the data slice
type Hasher interface {
	Sum(data []byte) Digest
}

type sha256Hasher struct{}

func (sha256Hasher) Sum(data []byte) Digest {
	return sha256.Sum256(data)
}

type sha3Hasher struct{}

func (sha3Hasher) Sum(data []byte) Digest {
	return sha3.Sum256(data)
}

// New - hasher for a given algorithm name, "" selects the default
func New(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", SHA256:
		return sha256Hasher{}, nil
	case SHA3256:
		return sha3Hasher{}, nil
	default:
		return nil, fault.ErrUnknownHash
	}
}

// Valid - true if the algorithm name is supported
func Valid(name string) bool {
	_, err := New(name)
	return nil == err
}
