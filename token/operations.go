// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/emission"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/storage"
)

// notification commands
const (
	TransferCommand = "transfer"
	StakeCommand    = "stake"
	UpdateCommand   = "update"
)

// TransferEvent - sent to both parties of a transfer
type TransferEvent struct {
	From     account.Name `json:"from"`
	To       account.Name `json:"to"`
	Quantity asset.Asset  `json:"quantity"`
	Fee      asset.Asset  `json:"fee"`
	Memo     string       `json:"memo"`
}

// StakeEvent - sent to the staker
type StakeEvent struct {
	Staker        account.Name `json:"staker"`
	ID            uint64       `json:"id"`
	Quantity      asset.Asset  `json:"quantity"`
	DurationIndex int          `json:"duration_index"`
}

// UpdateEvent - sent to the contract after a periodic update
type UpdateEvent struct {
	Symbol string           `json:"symbol"`
	Result *emission.Result `json:"result"`
}

// RegisterAccount - add an account; the account must authorise
func (e *Executor) RegisterAccount(auth Authority, name account.Name) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if !name.IsValid() {
			return nil, fault.InvalidAccountName
		}
		if err := auth.Require(name); nil != err {
			return nil, err
		}
		return nil, e.registry.Register(trx, name, now)
	})
	if nil != err {
		return Receipt{}, err
	}
	e.log.Infof("register: %s", name)
	return newReceipt("Account.Register", now, name), nil
}

// Create - a new symbol with its maximum supply; the contract must
// authorise
func (e *Executor) Create(auth Authority, maxSupply asset.Asset) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if err := auth.Require(e.contract); nil != err {
			return nil, err
		}
		return nil, e.ledger.Create(trx, maxSupply, now)
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.Create", now, maxSupply), nil
}

// Transfer - move quantity plus fee from one account to another; from
// must authorise
func (e *Executor) Transfer(auth Authority, from account.Name, to account.Name, quantity asset.Asset, memo string) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		return e.transfer(trx, auth, from, to, quantity, memo)
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.Transfer", now, []interface{}{from, to, quantity, memo}), nil
}

// TransferStaked - a transfer whose quantity is then staked for the
// receiver, who need not authorise
func (e *Executor) TransferStaked(auth Authority, from account.Name, to account.Name, quantity asset.Asset, memo string, durationIndex int) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		notifications, err := e.transfer(trx, auth, from, to, quantity, memo)
		if nil != err {
			return nil, err
		}
		n, err := e.addStake(trx, to, quantity, durationIndex, now)
		if nil != err {
			return nil, err
		}
		return append(notifications, n), nil
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.TransferStaked", now, []interface{}{from, to, quantity, memo, durationIndex}), nil
}

func (e *Executor) transfer(trx storage.Transaction, auth Authority, from account.Name, to account.Name, quantity asset.Asset, memo string) ([]notification, error) {
	if from == to {
		return nil, fault.SelfTransfer
	}
	if err := auth.Require(from); nil != err {
		return nil, err
	}
	if !e.registry.Exists(trx, to) {
		return nil, fault.UnknownAccount
	}

	payer := from
	if auth.Has(to) {
		payer = to
	}

	fee, err := e.ledger.Transfer(trx, from, to, quantity, memo, payer)
	if nil != err {
		return nil, err
	}

	event := &TransferEvent{
		From:     from,
		To:       to,
		Quantity: quantity,
		Fee:      fee,
		Memo:     memo,
	}
	return []notification{
		{principal: from, command: TransferCommand, data: event},
		{principal: to, command: TransferCommand, data: event},
	}, nil
}

// Open - create an empty balance row; payer must authorise
func (e *Executor) Open(auth Authority, owner account.Name, symbol asset.Symbol, payer account.Name) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if err := auth.Require(payer); nil != err {
			return nil, err
		}
		return nil, e.ledger.Open(trx, owner, symbol, payer)
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.Open", now, []interface{}{owner, symbol, payer}), nil
}

// Close - remove an empty balance row; owner must authorise
func (e *Executor) Close(auth Authority, owner account.Name, symbol asset.Symbol) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if err := auth.Require(owner); nil != err {
			return nil, err
		}
		return nil, e.ledger.Close(trx, owner, symbol)
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.Close", now, []interface{}{owner, symbol}), nil
}

// AddStake - lock part of the unstaked balance; staker must authorise
func (e *Executor) AddStake(auth Authority, staker account.Name, quantity asset.Asset, durationIndex int) (Receipt, error) {
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if err := auth.Require(staker); nil != err {
			return nil, err
		}
		n, err := e.addStake(trx, staker, quantity, durationIndex, now)
		if nil != err {
			return nil, err
		}
		return []notification{n}, nil
	})
	if nil != err {
		return Receipt{}, err
	}
	return newReceipt("Token.AddStake", now, []interface{}{staker, quantity, durationIndex}), nil
}

// no authorisation check, shared with TransferStaked
func (e *Executor) addStake(trx storage.Transaction, staker account.Name, quantity asset.Asset, durationIndex int, now uint64) (notification, error) {
	if !e.registry.Exists(trx, staker) {
		return notification{}, fault.UnknownAccount
	}
	position, err := e.book.Add(trx, staker, quantity, durationIndex, now)
	if nil != err {
		return notification{}, err
	}
	return notification{
		principal: staker,
		command:   StakeCommand,
		data: &StakeEvent{
			Staker:        staker,
			ID:            position.ID,
			Quantity:      position.Quantity,
			DurationIndex: position.DurationIndex,
		},
	}, nil
}

// Update - sweep stakes, issue a due boost and re-arm; the contract
// must authorise
func (e *Executor) Update(auth Authority, symbol asset.Symbol) (Receipt, *emission.Result, error) {
	var result *emission.Result
	now, err := e.apply(func(trx storage.Transaction, now uint64) ([]notification, error) {
		if err := auth.Require(e.contract); nil != err {
			return nil, err
		}
		var err error
		result, err = e.ticker.Update(trx, symbol, now)
		if nil != err {
			return nil, err
		}
		return e.updateNotifications(symbol.String(), result), nil
	})
	if nil != err {
		return Receipt{}, nil, err
	}
	return newReceipt("Token.Update", now, symbol), result, nil
}

func (e *Executor) updateNotifications(symbol string, result *emission.Result) []notification {
	return []notification{
		{
			principal: e.contract,
			command:   UpdateCommand,
			data: &UpdateEvent{
				Symbol: symbol,
				Result: result,
			},
		},
	}
}
