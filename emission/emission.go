// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package emission - the periodic update of a symbol
//
// each update sweeps matured stakes, issues the next boost of the
// decaying emission schedule once its time has come, shares the boost
// amongst the stakers and re-arms itself.  BoostsIssued in the
// currency statistics is changed only here.
package emission

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/distribution"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/schedule"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

// Scheduler - deferred delivery of the next update
type Scheduler interface {
	Schedule(trx storage.Transaction, job schedule.Job) error
	Cancel(trx storage.Transaction, operation schedule.Operation, symbol asset.Symbol) (int, error)
}

// Result - what an update did
type Result struct {
	Expired     int          `json:"expired"`
	Boost       uint64       `json:"boost"`
	Emission    asset.Asset  `json:"emission"`
	Distributed int64        `json:"distributed"`
	Next        schedule.Job `json:"next"`
}

// Ticker - performs updates for one contract
type Ticker struct {
	log        *logger.L
	parameters *parameter.Parameters
	ledger     *ledger.Ledger
	book       *stake.Book
	engine     *distribution.Engine
	scheduler  Scheduler
}

// New - create a ticker
func New(parameters *parameter.Parameters, l *ledger.Ledger, book *stake.Book, engine *distribution.Engine, scheduler Scheduler) *Ticker {
	return &Ticker{
		log:        logger.New("emission"),
		parameters: parameters,
		ledger:     l,
		book:       book,
		engine:     engine,
		scheduler:  scheduler,
	}
}

// Update - one tick for a symbol
//
// authorisation of the contract is checked by the caller
func (t *Ticker) Update(trx storage.Transaction, symbol asset.Symbol, now uint64) (*Result, error) {
	if !symbol.IsValid() {
		return nil, fault.InvalidSymbol
	}

	result := &Result{
		Emission: asset.New(0, symbol),
	}

	expired, err := t.book.ExpireAndRecompute(trx, symbol, now)
	if nil != err {
		return nil, err
	}
	result.Expired = expired

	err = t.boost(trx, symbol, now, result)
	if nil != err {
		return nil, err
	}

	// one update chain per symbol
	_, err = t.scheduler.Cancel(trx, schedule.Update, symbol)
	if nil != err {
		return nil, err
	}

	result.Next = NextJob(t.ledger.Contract(), symbol, now, t.parameters.UpdateInterval)
	err = t.scheduler.Schedule(trx, result.Next)
	if nil != err {
		return nil, err
	}
	return result, nil
}

// NextJob - the update job armed by an update at now
func NextJob(contract account.Name, symbol asset.Symbol, now uint64, interval uint64) schedule.Job {
	return schedule.Job{
		Due:       now + interval,
		RequestID: schedule.NewRequestID(contract, symbol, now),
		Operation: schedule.Update,
		Symbol:    symbol,
	}
}

// issue the next boost if it is due and fits under the cap
func (t *Ticker) boost(trx storage.Transaction, symbol asset.Symbol, now uint64, result *Result) error {
	log := t.log

	stats, err := t.ledger.GetStats(trx, symbol.Code())
	if nil != err {
		return err
	}
	if symbol != stats.Supply.Symbol {
		return fault.SymbolMismatch
	}

	next := stats.BoostsIssued + 1
	if next > t.parameters.BoostCount {
		log.Debugf("%s: all %d boosts issued", symbol.Code(), t.parameters.BoostCount)
		return nil
	}

	due := stats.Created + next*t.parameters.BoostInterval
	if now < due {
		log.Debugf("%s: boost: %d  due: %d  now: %d", symbol.Code(), next, due, now)
		return nil
	}

	amount := t.parameters.Emission(next, stats.MaxSupply.Amount)
	if amount <= 0 {
		log.Warnf("%s: boost: %d  emission rounds to zero", symbol.Code(), next)
		return nil
	}
	if stats.Supply.Amount+amount > stats.MaxSupply.Amount {
		log.Warnf("%s: boost: %d  emission: %d  would exceed max supply: %s", symbol.Code(), next, amount, stats.MaxSupply)
		return nil
	}

	emission := asset.New(amount, symbol)
	stats, err = t.ledger.Mint(trx, emission, now)
	if nil != err {
		return err
	}
	stats.BoostsIssued = next
	t.ledger.PutStats(trx, stats)

	distributed, err := t.engine.Distribute(trx, emission)
	if nil != err {
		return err
	}

	contract := t.ledger.Contract()
	if remainder := amount - distributed; remainder > 0 {
		err = t.ledger.AddBalance(trx, contract, asset.New(remainder, symbol), contract)
		if nil != err {
			return err
		}
	}

	result.Boost = next
	result.Emission = emission
	result.Distributed = distributed

	log.Infof("%s: boost: %d  emission: %s  distributed: %d", symbol.Code(), next, emission, distributed)
	return nil
}
