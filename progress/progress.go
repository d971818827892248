// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package progress - count completed chains across all tables
package progress

import (
	"time"

	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
)

// Tracker - concurrent counter which logs at a limited rate
type Tracker struct {
	done    *atomic.Uint64
	total   uint64
	start   time.Time
	limiter *rate.Limiter
	log     *logger.L
}

// New - tracker for total items logging at most once per interval
//
// a nil log disables logging, a zero interval logs every tick
func New(total uint64, interval time.Duration, log *logger.L) *Tracker {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Tracker{
		done:    atomic.NewUint64(0),
		total:   total,
		start:   time.Now(),
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Tick - one more item completed
func (t *Tracker) Tick() {
	n := t.done.Inc()
	if nil == t.log {
		return
	}
	if n == t.total || t.limiter.Allow() {
		t.report(n)
	}
}

// Done - number of completed items
func (t *Tracker) Done() uint64 {
	return t.done.Load()
}

func (t *Tracker) report(n uint64) {
	percent := 100.0
	if 0 != t.total {
		percent = 100 * float64(n) / float64(t.total)
	}
	elapsed := time.Since(t.start)
	speed := 0.0
	if elapsed > 0 {
		speed = float64(n) / elapsed.Seconds()
	}
	t.log.Infof("chains: %d/%d (%.1f%%)  elapsed: %s  rate: %.0f chains/s", n, t.total, percent, elapsed.Truncate(time.Millisecond), speed)
}
