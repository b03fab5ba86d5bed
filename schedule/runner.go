// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// jobs handled per poll
const batchSize = 20

// Executor - runs due jobs
//
// Execute must remove the job in the same transaction as its effects;
// Postpone moves a job whose execution failed to a later time
type Executor interface {
	Execute(job Job) error
	Postpone(job Job) error
}

// Clock - seconds since the epoch
type Clock interface {
	Now() uint64
}

// Runner - background delivery of due jobs
type Runner struct {
	log      *logger.L
	store    *Store
	executor Executor
	clock    Clock
	interval time.Duration
}

// NewRunner - create a runner polling the store every interval
func NewRunner(store *Store, executor Executor, clock Clock, interval time.Duration) *Runner {
	return &Runner{
		log:      logger.New("runner"),
		store:    store,
		executor: executor,
		clock:    clock,
		interval: interval,
	}
}

// Run - background loop
func (r *Runner) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("starting…")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			r.Poll()
		}
	}
	log.Info("shutting down…")
	log.Flush()
}

// Poll - deliver every job due now, returns the number executed
// successfully
func (r *Runner) Poll() int {
	now := r.clock.Now()
	executed := 0
	for {
		jobs, err := r.store.Due(now, batchSize)
		if nil != err {
			r.log.Errorf("fetch due jobs error: %s", err)
			return executed
		}
		if 0 == len(jobs) {
			return executed
		}

		for _, job := range jobs {
			err := r.executor.Execute(job)
			if nil == err {
				executed += 1
				continue
			}
			r.log.Warnf("job: %s  %s  id: %s  error: %s", job.Operation, job.Symbol, job.RequestID, err)
			err = r.executor.Postpone(job)
			if nil != err {
				r.log.Criticalf("postpone job: %s  id: %s  error: %s", job.Operation, job.RequestID, err)
				return executed
			}
		}
	}
}
