// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progress_test

import (
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tmto/progress"
)

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "progress-test")
	if nil != err {
		panic(err)
	}

	logConfig := logger.Configuration{
		Directory: directory,
		File:      "progress.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(directory)
	os.Exit(rc)
}

func TestConcurrentTicks(t *testing.T) {
	const workers = 16
	const perWorker = 1000

	tracker := progress.New(workers*perWorker, time.Millisecond, logger.New("progress"))

	var wg sync.WaitGroup
	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j += 1 {
				tracker.Tick()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*perWorker), tracker.Done(), "lost ticks")
}

func TestNilLog(t *testing.T) {
	tracker := progress.New(2, 0, nil)
	tracker.Tick()
	tracker.Tick()
	tracker.Tick()
	assert.Equal(t, uint64(3), tracker.Done(), "wrong count")
}
