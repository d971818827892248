// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

import (
	"time"

	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/domain"
	"github.com/bitmark-inc/tmto/fault"
)

// limits
const (
	MaximumTables = 255

	DefaultProgressInterval = 10 * time.Second
)

// Parameters - everything needed for one run
type Parameters struct {
	Tables           int           // number of tables, ids 1..Tables
	Chains           uint64        // start points per table
	Columns          uint64        // hash and reduce steps per chain
	Directory        string        // output directory, created if missing
	Hash             string        // digest algorithm name, "" for default
	Parallelism      int           // concurrent tables, 0 for one per table
	ProgressInterval time.Duration // minimum time between progress log lines
}

// Validate - reject parameters before any sampling is done
func (p Parameters) Validate() error {
	if p.Tables < 1 || p.Tables > MaximumTables {
		return fault.ErrTableCount
	}
	if 0 == p.Chains {
		return fault.ErrChainCount
	}
	if p.Chains >= domain.Size {
		return fault.ErrTooManyChains
	}
	if 0 == p.Columns {
		return fault.ErrColumnCount
	}
	if "" == p.Directory {
		return fault.ErrMissingDirectory
	}
	if !digest.Valid(p.Hash) {
		return fault.ErrUnknownHash
	}
	if p.Parallelism < 0 {
		return fault.ErrWrongParallelism
	}
	if p.ProgressInterval < 0 {
		return fault.ErrWrongProgressInterval
	}
	return nil
}
