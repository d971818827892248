// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package startpoint - random distinct chain start points
package startpoint

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bitmark-inc/tmto/domain"
	"github.com/bitmark-inc/tmto/fault"
)

// upper bound on the initial set allocation
const maximumPreallocate = 1 << 24

// Generator - draws passwords from its own random source
type Generator struct {
	source io.Reader
	buffer [8]byte
}

// New - generator reading from the given source
func New(source io.Reader) *Generator {
	return &Generator{
		source: source,
	}
}

// NewFromEntropy - generator reading from the operating system entropy pool
func NewFromEntropy() *Generator {
	return New(rand.Reader)
}

// Generate - return n pairwise distinct passwords in the order drawn
//
// each candidate is uniform over the domain since the domain size is
// a power of two; repeated candidates are discarded and redrawn
func (g *Generator) Generate(n uint64) ([]uint64, error) {
	if n >= domain.Size {
		return nil, fault.ErrTooManyChains
	}

	capacity := n
	if capacity > maximumPreallocate {
		capacity = maximumPreallocate
	}
	seen := make(map[uint64]struct{}, capacity)
	result := make([]uint64, 0, capacity)

	for uint64(len(result)) < n {
		candidate, err := g.draw()
		if nil != err {
			return nil, err
		}
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}
		result = append(result, candidate)
	}
	return result, nil
}

// one uniform password
func (g *Generator) draw() (uint64, error) {
	if _, err := io.ReadFull(g.source, g.buffer[:]); nil != err {
		return 0, fmt.Errorf("%w: %s", fault.ErrEntropy, err)
	}
	return binary.LittleEndian.Uint64(g.buffer[:]) & domain.Maximum, nil
}
