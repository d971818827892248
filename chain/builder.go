// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/binary"

	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/reduction"
)

// Reducer - maps a digest to a password for a rotation amount
type Reducer interface {
	Reduce(d digest.Digest, rotation uint8) uint64
}

// ReducerFunc - adapter to use an ordinary function as a Reducer
type ReducerFunc func(d digest.Digest, rotation uint8) uint64

// Reduce - calls f(d, rotation)
func (f ReducerFunc) Reduce(d digest.Digest, rotation uint8) uint64 {
	return f(d, rotation)
}

// Pair - start and end points of one chain
type Pair struct {
	Start uint64
	End   uint64
}

// Builder - computes chains with a fixed hasher and reducer
//
// a Builder holds no mutable state and may be shared by goroutines
// provided the hasher and reducer can be
type Builder struct {
	hasher  digest.Hasher
	reducer Reducer
}

// New - builder from a hasher and reducer
func New(hasher digest.Hasher, reducer Reducer) *Builder {
	return &Builder{
		hasher:  hasher,
		reducer: reducer,
	}
}

// NewDefault - builder using the given hasher and the rotation reduction
func NewDefault(hasher digest.Hasher) *Builder {
	return New(hasher, ReducerFunc(reduction.Reduce))
}

// Build - end point after exactly columns hash and reduce steps
//
// zero columns returns the start point unchanged
func (b *Builder) Build(start uint64, rotation uint8, columns uint64) uint64 {
	var buffer [8]byte
	m := start
	for i := uint64(0); i < columns; i += 1 {
		binary.LittleEndian.PutUint64(buffer[:], m)
		m = b.reducer.Reduce(b.hasher.Sum(buffer[:]), rotation)
	}
	return m
}

// BuildAll - one pair per start point, in the same order
//
// tick, if not nil, is called after each chain completes
func (b *Builder) BuildAll(starts []uint64, rotation uint8, columns uint64, tick func()) []Pair {
	pairs := make([]Pair, len(starts))
	for i, start := range starts {
		pairs[i] = Pair{
			Start: start,
			End:   b.Build(start, rotation, columns),
		}
		if nil != tick {
			tick()
		}
	}
	return pairs
}

// Verify - indices of pairs whose recomputed end point differs
//
// at most limit pairs are checked, zero checks all of them
func (b *Builder) Verify(pairs []Pair, rotation uint8, columns uint64, limit int) []int {
	if limit <= 0 || limit > len(pairs) {
		limit = len(pairs)
	}
	mismatches := []int{}
	for i, p := range pairs[:limit] {
		if p.End != b.Build(p.Start, rotation, columns) {
			mismatches = append(mismatches, i)
		}
	}
	return mismatches
}
