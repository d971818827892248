// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator

import (
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tmto/chain"
	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/fault"
	"github.com/bitmark-inc/tmto/progress"
	"github.com/bitmark-inc/tmto/startpoint"
	"github.com/bitmark-inc/tmto/table"
)

const directoryPermission = 0755

// Result - outcome of a run
type Result struct {
	StartPoints []uint64       // shared start points, in row order
	Files       map[int]string // table id to written file
	Failed      []int          // ids of failed tables, ascending
	Elapsed     time.Duration
}

// Run - generate every table
//
// log must not be nil
//
// entropy supplies the start point randomness, nil selects the
// operating system source; an entropy failure aborts the run before
// any table is started
//
// every table is waited for even when others fail; the returned
// error combines one fault.TableError per failed table and the
// Result is still valid for the tables that succeeded
func Run(p Parameters, entropy io.Reader, log *logger.L) (*Result, error) {
	if err := p.Validate(); nil != err {
		return nil, err
	}

	hashName := p.Hash
	if "" == hashName {
		hashName = digest.Default
	}
	hasher, err := digest.New(hashName)
	if nil != err {
		return nil, err
	}

	if err := os.MkdirAll(p.Directory, directoryPermission); nil != err {
		log.Errorf("create directory: %q  error: %s", p.Directory, err)
		return nil, err
	}

	sampler := startpoint.NewFromEntropy()
	if nil != entropy {
		sampler = startpoint.New(entropy)
	}

	start := time.Now()

	log.Infof("generating %d start points", p.Chains)
	starts, err := sampler.Generate(p.Chains)
	if nil != err {
		log.Criticalf("start point generation failed: %s", err)
		return nil, err
	}

	builder := chain.NewDefault(hasher)

	interval := p.ProgressInterval
	if 0 == interval {
		interval = DefaultProgressInterval
	}
	tracker := progress.New(uint64(p.Tables)*p.Chains, interval, log)

	files := make([]string, p.Tables)
	failures := make([]error, p.Tables)

	var group errgroup.Group
	if p.Parallelism > 0 {
		group.SetLimit(p.Parallelism)
	}

	log.Infof("tables: %d  chains: %d  columns: %d  hash: %q  parallelism: %d", p.Tables, p.Chains, p.Columns, hashName, p.Parallelism)

	for id := 1; id <= p.Tables; id += 1 {
		id := id
		group.Go(func() error {
			fileName, err := generateTable(builder, starts, id, p, tracker)
			if nil != err {
				log.Errorf("table: %d  error: %s", id, err)
				failures[id-1] = &fault.TableError{ID: id, Err: err}
				return failures[id-1]
			}
			log.Debugf("table: %d  written: %q", id, fileName)
			files[id-1] = fileName
			return nil
		})
	}

	// failures holds every error, Wait only reports the first
	_ = group.Wait()

	result := &Result{
		StartPoints: starts,
		Files:       make(map[int]string, p.Tables),
		Failed:      []int{},
		Elapsed:     time.Since(start),
	}
	for i, fileName := range files {
		if nil != failures[i] {
			result.Failed = append(result.Failed, i+1)
		} else {
			result.Files[i+1] = fileName
		}
	}

	err = multierr.Combine(failures...)
	if nil != err {
		log.Errorf("%d of %d tables failed", len(result.Failed), p.Tables)
	} else {
		log.Infof("all %d tables written in %s", p.Tables, result.Elapsed)
	}
	return result, err
}

// build and write one table
func generateTable(builder *chain.Builder, starts []uint64, id int, p Parameters, tracker *progress.Tracker) (string, error) {
	rotation := uint8(id)
	pairs := builder.BuildAll(starts, rotation, p.Columns, tracker.Tick)

	header := table.Header{
		Chains:    p.Chains,
		Columns:   p.Columns,
		Reduction: rotation,
	}
	return table.WriteFile(p.Directory, header, pairs)
}
