// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/storage"
)

// Book - stake positions for all symbols of one ledger
type Book struct {
	log        *logger.L
	parameters *parameter.Parameters
	ledger     *ledger.Ledger
}

// New - create a stake book reading balances from the ledger
func New(parameters *parameter.Parameters, l *ledger.Ledger) *Book {
	return &Book{
		log:        logger.New("stake"),
		parameters: parameters,
		ledger:     l,
	}
}

// Add - lock part of a staker's unstaked balance
//
// authorisation and existence of the staker are checked by the caller
func (b *Book) Add(trx storage.Transaction, staker account.Name, quantity asset.Asset, durationIndex int, now uint64) (*Position, error) {
	weight, err := b.parameters.Weight(durationIndex)
	if nil != err {
		return nil, err
	}

	stats, err := b.ledger.GetStats(trx, quantity.Symbol.Code())
	if nil != err {
		return nil, err
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return nil, fault.InvalidAmount
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return nil, fault.SymbolMismatch
	}

	unstaked := b.UnstakedBalance(trx, staker, quantity.Symbol)
	if quantity.Amount > unstaked.Amount {
		return nil, fault.InsufficientUnstakedBalance
	}

	weighted, err := weightOf(weight, quantity.Amount)
	if nil != err {
		return nil, err
	}

	code := quantity.Symbol.Code()
	id, _ := trx.GetN(storage.Pool.StakeNextID, staker.Bytes())
	trx.PutN(storage.Pool.StakeNextID, staker.Bytes(), id+1)

	position := &Position{
		ID:            id,
		Quantity:      quantity,
		Start:         now,
		DurationIndex: durationIndex,
	}
	trx.Put(storage.Pool.Stakes, positionKey(staker, code, id), position.pack())

	stat := b.stat(trx, staker, code)
	if nil == stat {
		stat = &Stat{
			Staker:      staker,
			TotalStake:  quantity,
			StakeWeight: weighted,
		}
	} else {
		stat.TotalStake, err = stat.TotalStake.Add(quantity)
		if nil != err {
			return nil, err
		}
		stat.StakeWeight, err = addWeight(stat.StakeWeight, weighted)
		if nil != err {
			return nil, err
		}
	}
	trx.Put(storage.Pool.StakeStats, statKey(code, staker), stat.pack())

	b.log.Infof("add: %s  id: %d  quantity: %s  duration index: %d", staker, id, quantity, durationIndex)
	return position, nil
}

// ExpireAndRecompute - erase every matured position of a symbol and
// rebuild each staker's aggregate from the survivors
//
// a position matures when start + duration <= now; returns the
// number of positions erased
func (b *Book) ExpireAndRecompute(trx storage.Transaction, symbol asset.Symbol, now uint64) (int, error) {
	code := symbol.Code()

	stakers := make([]account.Name, 0)
	err := trx.Map(storage.Pool.StakeStats, code.Bytes(), func(key []byte, value []byte) error {
		staker, err := account.NameFromBytes(key[8:])
		if nil != err {
			return err
		}
		stakers = append(stakers, staker)
		return nil
	})
	if nil != err {
		return 0, err
	}

	expired := 0
	for _, staker := range stakers {
		total := asset.New(0, symbol)
		weight := int64(0)

		prefix := append(staker.Bytes(), code.Bytes()...)
		err := trx.Map(storage.Pool.Stakes, prefix, func(key []byte, value []byte) error {
			position, err := unpackPosition(key, value)
			fault.PanicIfError("stake.ExpireAndRecompute", err)

			duration, err := b.parameters.Duration(position.DurationIndex)
			fault.PanicIfError("stake.ExpireAndRecompute: duration", err)

			if position.Start+duration <= now {
				trx.Delete(storage.Pool.Stakes, key)
				expired += 1
				b.log.Debugf("expire: %s  id: %d  quantity: %s", staker, position.ID, position.Quantity)
				return nil
			}

			total, err = total.Add(position.Quantity)
			if nil != err {
				return err
			}
			w, err := b.parameters.Weight(position.DurationIndex)
			if nil != err {
				return err
			}
			weighted, err := weightOf(w, position.Quantity.Amount)
			if nil != err {
				return err
			}
			weight, err = addWeight(weight, weighted)
			return err
		})
		if nil != err {
			return expired, err
		}

		key := statKey(code, staker)
		if 0 == total.Amount {
			trx.Delete(storage.Pool.StakeStats, key)
			continue
		}
		stat := &Stat{
			Staker:      staker,
			TotalStake:  total,
			StakeWeight: weight,
		}
		trx.Put(storage.Pool.StakeStats, key, stat.pack())
	}

	if expired > 0 {
		b.log.Infof("%s: expired: %d positions of %d stakers", symbol.Code(), expired, len(stakers))
	}
	return expired, nil
}

// Each - call f for every staker of a symbol in ascending key order
func (b *Book) Each(trx storage.Transaction, code asset.SymbolCode, f func(stat *Stat) error) error {
	return trx.Map(storage.Pool.StakeStats, code.Bytes(), func(key []byte, value []byte) error {
		staker, err := account.NameFromBytes(key[8:])
		if nil != err {
			return err
		}
		stat, err := unpackStat(staker, value)
		fault.PanicIfError("stake.Each", err)
		return f(stat)
	})
}

// TotalStake - sum of live positions, zero if none
func (b *Book) TotalStake(trx storage.Transaction, staker account.Name, symbol asset.Symbol) asset.Asset {
	stat := b.stat(trx, staker, symbol.Code())
	if nil == stat {
		return asset.New(0, symbol)
	}
	return stat.TotalStake
}

// StakeWeight - weighted power, zero if nothing is staked
func (b *Book) StakeWeight(trx storage.Transaction, staker account.Name, symbol asset.Symbol) int64 {
	stat := b.stat(trx, staker, symbol.Code())
	if nil == stat {
		return 0
	}
	return stat.StakeWeight
}

// UnstakedBalance - balance minus total stake
func (b *Book) UnstakedBalance(trx storage.Transaction, staker account.Name, symbol asset.Symbol) asset.Asset {
	balance := b.ledger.GetBalance(trx, staker, symbol)
	stake := b.TotalStake(trx, staker, symbol)
	return asset.New(balance.Amount-stake.Amount, symbol)
}

// Positions - live positions of a staker in id order
func (b *Book) Positions(trx storage.Transaction, staker account.Name, symbol asset.Symbol) []Position {
	positions := make([]Position, 0)
	prefix := append(staker.Bytes(), symbol.Code().Bytes()...)
	err := trx.Map(storage.Pool.Stakes, prefix, func(key []byte, value []byte) error {
		position, err := unpackPosition(key, value)
		if nil != err {
			return err
		}
		positions = append(positions, *position)
		return nil
	})
	fault.PanicIfError("stake.Positions", err)
	return positions
}

func (b *Book) stat(trx storage.Transaction, staker account.Name, code asset.SymbolCode) *Stat {
	buffer := trx.Get(storage.Pool.StakeStats, statKey(code, staker))
	if nil == buffer {
		return nil
	}
	stat, err := unpackStat(staker, buffer)
	fault.PanicIfError("stake.stat", err)
	return stat
}

// weight * amount, failing rather than wrapping
func weightOf(weight int64, amount int64) (int64, error) {
	if weight <= 0 || amount <= 0 || amount > math.MaxInt64/weight {
		return 0, fault.InvalidAmount
	}
	return weight * amount, nil
}

func addWeight(a int64, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, fault.InvalidAmount
	}
	return a + b, nil
}
