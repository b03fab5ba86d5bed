// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/storage"
)

// StakeReader - the amount locked by stakes, which cannot be spent
type StakeReader interface {
	TotalStake(trx storage.Transaction, staker account.Name, symbol asset.Symbol) asset.Asset
}

// FeeDistributor - shares part of a fee amongst the stakers and
// returns the amount actually handed out
type FeeDistributor interface {
	Distribute(trx storage.Transaction, quantity asset.Asset) (int64, error)
}

// Ledger - balances and supply of all symbols issued by one contract
type Ledger struct {
	log        *logger.L
	contract   account.Name
	parameters *parameter.Parameters
	stakes     StakeReader
	fees       FeeDistributor
}

// New - create a ledger for a contract account
func New(contract account.Name, parameters *parameter.Parameters) *Ledger {
	return &Ledger{
		log:        logger.New("ledger"),
		contract:   contract,
		parameters: parameters,
	}
}

// SetHooks - connect the stake book and the distribution engine
//
// both are optional: without a stake reader nothing is locked and
// without a distributor every fee goes to the contract
func (l *Ledger) SetHooks(stakes StakeReader, fees FeeDistributor) {
	l.stakes = stakes
	l.fees = fees
}

// Contract - the account that issues and collects
func (l *Ledger) Contract() account.Name {
	return l.contract
}

// Create - set up the statistics for a new symbol and issue the
// initial proportion of the maximum supply to the contract
func (l *Ledger) Create(trx storage.Transaction, maxSupply asset.Asset, now uint64) error {
	if !maxSupply.Symbol.IsValid() {
		return fault.InvalidSymbol
	}
	if !maxSupply.IsValid() || !maxSupply.IsPositive() {
		return fault.InvalidAmount
	}

	code := maxSupply.Symbol.Code().Bytes()
	if trx.Has(storage.Pool.Stats, code) {
		return fault.DuplicateToken
	}

	stats := &Stats{
		Supply:       asset.New(0, maxSupply.Symbol),
		MaxSupply:    maxSupply,
		Created:      now,
		Updated:      now,
		BoostsIssued: 0,
		Issuer:       l.contract,
	}
	trx.Put(storage.Pool.Stats, code, stats.Pack())

	initial := l.parameters.InitialIssue(maxSupply.Amount)
	l.log.Infof("create: %s  initial issue: %d", maxSupply, initial)
	if 0 == initial {
		return nil
	}
	return l.Issue(trx, asset.New(initial, maxSupply.Symbol))
}

// Issue - increase supply and credit the contract
func (l *Ledger) Issue(trx storage.Transaction, quantity asset.Asset) error {
	_, err := l.Mint(trx, quantity, 0)
	if nil != err {
		return err
	}
	return l.AddBalance(trx, l.contract, quantity, l.contract)
}

// Mint - increase supply without crediting anyone
//
// the caller is responsible for crediting exactly quantity; a non
// zero now also sets the updated time
func (l *Ledger) Mint(trx storage.Transaction, quantity asset.Asset, now uint64) (*Stats, error) {
	if !quantity.Symbol.IsValid() {
		return nil, fault.InvalidSymbol
	}
	stats, err := l.stats(trx, quantity.Symbol.Code())
	if nil != err {
		return nil, err
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return nil, fault.InvalidAmount
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return nil, fault.SymbolMismatch
	}
	if quantity.Amount > stats.MaxSupply.Amount-stats.Supply.Amount {
		return nil, fault.SupplyExceeded
	}

	stats.Supply.Amount += quantity.Amount
	if 0 != now {
		stats.Updated = now
	}
	l.PutStats(trx, stats)

	l.log.Debugf("mint: %s  supply: %s", quantity, stats.Supply)
	return stats, nil
}

// Transfer - move quantity from one account to another, charging the
// sender a fee on top
//
// payer is recorded if the receiver's row has to be created; account
// existence and authorisation are checked by the caller
func (l *Ledger) Transfer(trx storage.Transaction, from account.Name, to account.Name, quantity asset.Asset, memo string, payer account.Name) (asset.Asset, error) {
	if from == to {
		return asset.Asset{}, fault.SelfTransfer
	}
	stats, err := l.stats(trx, quantity.Symbol.Code())
	if nil != err {
		return asset.Asset{}, err
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return asset.Asset{}, fault.InvalidAmount
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return asset.Asset{}, fault.SymbolMismatch
	}
	if len(memo) > l.parameters.MemoLimit {
		return asset.Asset{}, fault.MemoTooLong
	}

	fee := asset.New(l.parameters.Fee(quantity.Amount), quantity.Symbol)

	err = l.SubBalance(trx, from, quantity, fee)
	if nil != err {
		return asset.Asset{}, err
	}
	err = l.AddBalance(trx, to, quantity, payer)
	if nil != err {
		return asset.Asset{}, err
	}

	l.log.Infof("transfer: %s → %s  quantity: %s  fee: %s", from, to, quantity, fee)
	return fee, nil
}

// SubBalance - debit value plus fee from the unstaked part of a
// balance and route the fee
//
// floor(fee * feeToStakers) is offered to the stakers and whatever
// they do not receive is credited to the contract
func (l *Ledger) SubBalance(trx storage.Transaction, owner account.Name, value asset.Asset, fee asset.Asset) error {
	key := balanceKey(owner, value.Symbol.Code())
	balance := l.balance(trx, key)
	if nil == balance {
		return fault.MissingBalanceRow
	}

	total, err := value.Add(fee)
	if nil != err {
		return err
	}

	staked := int64(0)
	if nil != l.stakes {
		staked = l.stakes.TotalStake(trx, owner, value.Symbol).Amount
	}
	if balance.Asset.Amount-staked < total.Amount {
		return fault.InsufficientUnstakedBalance
	}

	balance.Asset, err = balance.Asset.Sub(total)
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Balances, key, balance.Pack())

	if 0 == fee.Amount {
		return nil
	}

	remaining := fee.Amount
	toStakers := l.parameters.StakersFee(fee.Amount)
	if toStakers > 0 && nil != l.fees {
		distributed, err := l.fees.Distribute(trx, asset.New(toStakers, fee.Symbol))
		if nil != err {
			return err
		}
		remaining -= distributed
	}

	if remaining > 0 {
		return l.AddBalance(trx, l.contract, asset.New(remaining, fee.Symbol), l.contract)
	}
	return nil
}

// AddBalance - credit an account, creating its row if necessary
func (l *Ledger) AddBalance(trx storage.Transaction, owner account.Name, value asset.Asset, payer account.Name) error {
	key := balanceKey(owner, value.Symbol.Code())
	balance := l.balance(trx, key)
	if nil == balance {
		balance = &Balance{
			Asset: value,
			Payer: payer,
		}
	} else {
		var err error
		balance.Asset, err = balance.Asset.Add(value)
		if nil != err {
			return err
		}
	}
	trx.Put(storage.Pool.Balances, key, balance.Pack())
	return nil
}

// Open - create an empty balance row paid for by payer
//
// does nothing if the row already exists
func (l *Ledger) Open(trx storage.Transaction, owner account.Name, symbol asset.Symbol, payer account.Name) error {
	stats, err := l.stats(trx, symbol.Code())
	if nil != err {
		return err
	}
	if symbol != stats.Supply.Symbol {
		return fault.SymbolMismatch
	}

	key := balanceKey(owner, symbol.Code())
	if trx.Has(storage.Pool.Balances, key) {
		return nil
	}

	balance := &Balance{
		Asset: asset.New(0, symbol),
		Payer: payer,
	}
	trx.Put(storage.Pool.Balances, key, balance.Pack())
	return nil
}

// Close - remove an empty balance row
func (l *Ledger) Close(trx storage.Transaction, owner account.Name, symbol asset.Symbol) error {
	key := balanceKey(owner, symbol.Code())
	balance := l.balance(trx, key)
	if nil == balance {
		return fault.MissingBalanceRow
	}
	if 0 != balance.Asset.Amount {
		return fault.NonZeroBalanceOnClose
	}
	trx.Delete(storage.Pool.Balances, key)
	return nil
}

// GetStats - statistics for a symbol code
func (l *Ledger) GetStats(trx storage.Transaction, code asset.SymbolCode) (*Stats, error) {
	return l.stats(trx, code)
}

// PutStats - replace the statistics record
func (l *Ledger) PutStats(trx storage.Transaction, stats *Stats) {
	trx.Put(storage.Pool.Stats, stats.Supply.Symbol.Code().Bytes(), stats.Pack())
}

// GetBalance - current balance, zero if no row exists
func (l *Ledger) GetBalance(trx storage.Transaction, owner account.Name, symbol asset.Symbol) asset.Asset {
	balance := l.balance(trx, balanceKey(owner, symbol.Code()))
	if nil == balance {
		return asset.New(0, symbol)
	}
	return balance.Asset
}

// GetBalanceRow - the full row, nil if absent
func (l *Ledger) GetBalanceRow(trx storage.Transaction, owner account.Name, code asset.SymbolCode) *Balance {
	return l.balance(trx, balanceKey(owner, code))
}

func (l *Ledger) stats(trx storage.Transaction, code asset.SymbolCode) (*Stats, error) {
	buffer := trx.Get(storage.Pool.Stats, code.Bytes())
	if nil == buffer {
		return nil, fault.UnknownToken
	}
	stats, err := UnpackStats(buffer)
	fault.PanicIfError("ledger.stats", err)
	return stats, nil
}

func (l *Ledger) balance(trx storage.Transaction, key []byte) *Balance {
	buffer := trx.Get(storage.Pool.Balances, key)
	if nil == buffer {
		return nil
	}
	balance, err := UnpackBalance(buffer)
	fault.PanicIfError("ledger.balance", err)
	return balance
}

// AllStats - statistics of every symbol in code order
func (l *Ledger) AllStats(trx storage.Transaction) ([]*Stats, error) {
	all := make([]*Stats, 0)
	err := trx.Map(storage.Pool.Stats, nil, func(key []byte, value []byte) error {
		stats, err := UnpackStats(value)
		if nil != err {
			return err
		}
		all = append(all, stats)
		return nil
	})
	return all, err
}
