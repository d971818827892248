// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

import (
	"fmt"

	"github.com/bitmark-inc/tmto/chain"
	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/fault"
	"github.com/bitmark-inc/tmto/table"
)

// Verification - outcome of recomputing the chains of one table file
type Verification struct {
	Header     table.Header
	Checked    int
	Mismatches []int // row indices, 0 is the first row after the header
}

// VerifyFile - recompute up to sample chains of a table file, zero
// checks every chain
//
// a readable table with mismatching rows returns both the
// verification and an error wrapping fault.ErrChainMismatch
func VerifyFile(fileName string, hash string, sample int) (*Verification, error) {
	hasher, err := digest.New(hash)
	if nil != err {
		return nil, err
	}

	t, err := table.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	checked := len(t.Pairs)
	if sample > 0 && sample < checked {
		checked = sample
	}

	v := &Verification{
		Header:     t.Header,
		Checked:    checked,
		Mismatches: chain.NewDefault(hasher).Verify(t.Pairs, t.Reduction, t.Columns, checked),
	}
	if 0 != len(v.Mismatches) {
		return v, fmt.Errorf("%w: %d of %d rows", fault.ErrChainMismatch, len(v.Mismatches), checked)
	}
	return v, nil
}
