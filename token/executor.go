// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/distribution"
	"github.com/bitmark-inc/protocoind/emission"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/schedule"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

// Executor - serial, all-or-nothing application of operations
type Executor struct {
	sync.Mutex

	log        *logger.L
	contract   account.Name
	parameters *parameter.Parameters
	clock      Clock
	notifier   Notifier
	registry   Registry

	ledger *ledger.Ledger
	book   *stake.Book
	engine *distribution.Engine
	ticker *emission.Ticker
	jobs   *schedule.Store
}

// an event to send once the operation is committed
type notification struct {
	principal account.Name
	command   string
	data      interface{}
}

// New - compose the ledger components for a contract
//
// a nil notifier discards events
func New(contract account.Name, parameters *parameter.Parameters, clock Clock, notifier Notifier) *Executor {
	l := ledger.New(contract, parameters)
	book := stake.New(parameters, l)
	engine := distribution.New(book, l)
	l.SetHooks(book, engine)
	jobs := schedule.NewStore()

	return &Executor{
		log:        logger.New("token"),
		contract:   contract,
		parameters: parameters,
		clock:      clock,
		notifier:   notifier,
		registry:   AccountRegistry{},
		ledger:     l,
		book:       book,
		engine:     engine,
		ticker:     emission.New(parameters, l, book, engine, jobs),
		jobs:       jobs,
	}
}

// Initialise - register the contract account if it is not yet known
func (e *Executor) Initialise() error {
	_, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if e.registry.Exists(trx, e.contract) {
			return nil, nil
		}
		e.log.Infof("register contract: %s", e.contract)
		return nil, e.registry.Register(trx, e.contract, now)
	})
	return err
}

// Contract - the contract account
func (e *Executor) Contract() account.Name {
	return e.contract
}

// Parameters - the economic parameters in use
func (e *Executor) Parameters() *parameter.Parameters {
	return e.parameters
}

// run f in a new transaction, commit on success and then send the
// returned notifications; returns the time used for the operation
func (e *Executor) apply(f func(trx storage.Transaction, now uint64) ([]notification, error)) (uint64, error) {
	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	now := e.clock.Now()
	notifications, err := f(trx, now)
	if nil != err {
		trx.Abort()
		return now, err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Criticalf("commit error: %s", err)
		return now, err
	}

	if nil != e.notifier {
		for _, n := range notifications {
			e.notifier.Notify(n.principal, n.command, n.data)
		}
	}
	return now, nil
}

// run a read only function, nothing is ever written
func (e *Executor) read(f func(trx storage.Transaction) error) error {
	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	return f(trx)
}

// Execute - run a due job and remove it in the same transaction
//
// a job that no longer exists has already been handled
func (e *Executor) Execute(job schedule.Job) error {
	_, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if !e.jobs.Exists(trx, job) {
			return nil, nil
		}
		e.jobs.Remove(trx, job)

		switch job.Operation {
		case schedule.Update:
			result, err := e.ticker.Update(trx, job.Symbol, now)
			if nil != err {
				return nil, err
			}
			return e.updateNotifications(job.Symbol.String(), result), nil
		default:
			return nil, fault.UnknownOperation
		}
	})
	return err
}

// Postpone - move a job to one update interval from now
func (e *Executor) Postpone(job schedule.Job) error {
	_, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if !e.jobs.Exists(trx, job) {
			return nil, nil
		}
		e.jobs.Remove(trx, job)

		next := emission.NextJob(e.contract, job.Symbol, now, e.parameters.UpdateInterval)
		next.Operation = job.Operation
		e.log.Warnf("postpone: %s  %s  from: %d  to: %d", job.Operation, job.Symbol, job.Due, next.Due)
		return nil, e.jobs.Schedule(trx, next)
	})
	return err
}
