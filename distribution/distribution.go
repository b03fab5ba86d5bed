// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package distribution - share an amount amongst stakers by weight
package distribution

import (
	"math/big"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

// Engine - credits stakers from a ledger
type Engine struct {
	log    *logger.L
	book   *stake.Book
	ledger *ledger.Ledger
}

type share struct {
	staker account.Name
	weight *big.Int
}

// New - create a distribution engine
func New(book *stake.Book, l *ledger.Ledger) *Engine {
	return &Engine{
		log:    logger.New("distribution"),
		book:   book,
		ledger: l,
	}
}

// Distribute - credit each staker floor(quantity * weight / total)
//
// stakers are visited in ascending key order; returns the amount
// credited, which never exceeds quantity and falls short of it by
// less than the number of stakers.  Nothing is credited when the
// total weight is zero.
func (e *Engine) Distribute(trx storage.Transaction, quantity asset.Asset) (int64, error) {
	if !quantity.IsValid() || quantity.Amount < 0 {
		return 0, fault.InvalidAmount
	}
	if 0 == quantity.Amount {
		return 0, nil
	}

	shares := make([]share, 0)
	total := big.NewInt(0)
	err := e.book.Each(trx, quantity.Symbol.Code(), func(stat *stake.Stat) error {
		w := big.NewInt(stat.StakeWeight)
		total.Add(total, w)
		shares = append(shares, share{
			staker: stat.Staker,
			weight: w,
		})
		return nil
	})
	if nil != err {
		return 0, err
	}

	if 0 == total.Sign() {
		e.log.Debugf("distribute: %s  no stakers", quantity)
		return 0, nil
	}

	contract := e.ledger.Contract()
	q := big.NewInt(quantity.Amount)
	distributed := int64(0)
	for _, s := range shares {
		n := new(big.Int).Mul(q, s.weight)
		n.Quo(n, total)
		amount := n.Int64()
		if 0 == amount {
			continue
		}
		err := e.ledger.AddBalance(trx, s.staker, asset.New(amount, quantity.Symbol), contract)
		if nil != err {
			return 0, err
		}
		distributed += amount
	}

	e.log.Debugf("distribute: %s  stakers: %d  distributed: %d", quantity, len(shares), distributed)
	return distributed, nil
}
