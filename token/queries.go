// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/schedule"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

// BalanceInfo - an account's holding of one symbol
type BalanceInfo struct {
	Balance  asset.Asset `json:"balance"`
	Unstaked asset.Asset `json:"unstaked"`
}

// StakeInfo - an account's stakes in one symbol
type StakeInfo struct {
	Total     asset.Asset      `json:"total"`
	Weight    int64            `json:"weight"`
	Positions []stake.Position `json:"positions"`
}

// Supply - currency statistics of a symbol
func (e *Executor) Supply(code asset.SymbolCode) (*ledger.Stats, error) {
	var stats *ledger.Stats
	err := e.read(func(trx storage.Transaction) error {
		var err error
		stats, err = e.ledger.GetStats(trx, code)
		return err
	})
	return stats, err
}

// AllSupply - statistics of every symbol
func (e *Executor) AllSupply() ([]*ledger.Stats, error) {
	var all []*ledger.Stats
	err := e.read(func(trx storage.Transaction) error {
		var err error
		all, err = e.ledger.AllStats(trx)
		return err
	})
	return all, err
}

// Balance - zero values if the account holds nothing
func (e *Executor) Balance(owner account.Name, symbol asset.Symbol) (*BalanceInfo, error) {
	info := &BalanceInfo{}
	err := e.read(func(trx storage.Transaction) error {
		info.Balance = e.ledger.GetBalance(trx, owner, symbol)
		info.Unstaked = e.book.UnstakedBalance(trx, owner, symbol)
		return nil
	})
	return info, err
}

// Stake - zero values if nothing is staked
func (e *Executor) Stake(staker account.Name, symbol asset.Symbol) (*StakeInfo, error) {
	info := &StakeInfo{}
	err := e.read(func(trx storage.Transaction) error {
		info.Total = e.book.TotalStake(trx, staker, symbol)
		info.Weight = e.book.StakeWeight(trx, staker, symbol)
		info.Positions = e.book.Positions(trx, staker, symbol)
		return nil
	})
	return info, err
}

// AccountExists - true if the account is registered
func (e *Executor) AccountExists(name account.Name) (bool, error) {
	exists := false
	err := e.read(func(trx storage.Transaction) error {
		exists = e.registry.Exists(trx, name)
		return nil
	})
	return exists, err
}

// PendingJobs - scheduled jobs, earliest first
func (e *Executor) PendingJobs() ([]schedule.Job, error) {
	var jobs []schedule.Job
	err := e.read(func(trx storage.Transaction) error {
		var err error
		jobs, err = e.jobs.Pending(trx)
		return err
	})
	return jobs, err
}

// Jobs - the job store for the background runner
func (e *Executor) Jobs() *schedule.Store {
	return e.jobs
}
