// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/storage"
)

// Store - persisted jobs in storage.Pool.Jobs
type Store struct {
	log *logger.L
}

// NewStore - access to the job pool
func NewStore() *Store {
	return &Store{
		log: logger.New("schedule"),
	}
}

// Schedule - add a job in the caller's transaction
//
// the key is (due, request id) so scheduling the same job twice
// leaves a single job
func (s *Store) Schedule(trx storage.Transaction, job Job) error {
	if 0 == job.Operation {
		return fault.UnknownOperation
	}
	trx.Put(storage.Pool.Jobs, job.key(), job.value())
	s.log.Debugf("schedule: %s  %s  due: %d  id: %s", job.Operation, job.Symbol, job.Due, job.RequestID)
	return nil
}

// Remove - delete a job in the caller's transaction
func (s *Store) Remove(trx storage.Transaction, job Job) {
	trx.Delete(storage.Pool.Jobs, job.key())
}

// Cancel - remove every pending job for an operation on a symbol code,
// returns the number removed
func (s *Store) Cancel(trx storage.Transaction, operation Operation, symbol asset.Symbol) (int, error) {
	jobs, err := s.Pending(trx)
	if nil != err {
		return 0, err
	}
	n := 0
	for _, job := range jobs {
		if operation == job.Operation && symbol.Code() == job.Symbol.Code() {
			s.Remove(trx, job)
			n += 1
		}
	}
	if n > 0 {
		s.log.Debugf("cancel: %s  %s  removed: %d", operation, symbol, n)
	}
	return n, nil
}

// Exists - true if the job is still pending
func (s *Store) Exists(trx storage.Transaction, job Job) bool {
	return trx.Has(storage.Pool.Jobs, job.key())
}

// Due - up to count committed jobs with due <= now, earliest first
func (s *Store) Due(now uint64, count int) ([]Job, error) {
	elements, err := storage.Pool.Jobs.NewFetchCursor().Fetch(count)
	if nil != err {
		return nil, err
	}

	jobs := make([]Job, 0, len(elements))
	for _, e := range elements {
		job, err := unpackJob(e.Key, e.Value)
		fault.PanicIfError("schedule.Due", err)
		if job.Due > now {
			break
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// Pending - all jobs visible in a transaction, earliest first
func (s *Store) Pending(trx storage.Transaction) ([]Job, error) {
	jobs := make([]Job, 0)
	err := trx.Map(storage.Pool.Jobs, nil, func(key []byte, value []byte) error {
		job, err := unpackJob(key, value)
		if nil != err {
			return err
		}
		jobs = append(jobs, *job)
		return nil
	})
	return jobs, err
}
