// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package distribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/distribution"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

var (
	contract = name("protocoin")
	alice    = name("alice")
	bob      = name("bob")
	carol    = name("carol")
	tok      = symbol(0, "TOK")
)

type stakeItem struct {
	staker account.Name
	amount int64
	index  int
}

func setupEngine(t *testing.T, stakes []stakeItem) (*ledger.Ledger, *distribution.Engine) {
	p := parameter.Default()
	l := ledger.New(contract, p)
	book := stake.New(p, l)
	engine := distribution.New(book, l)
	l.SetHooks(book, engine)

	err := run(t, func(trx storage.Transaction) error {
		err := l.Create(trx, asset.New(1000000, tok), 1)
		if nil != err {
			return err
		}
		for _, s := range stakes {
			_, err := l.Transfer(trx, contract, s.staker, asset.New(s.amount, tok), "", contract)
			if nil != err {
				return err
			}
			_, err = book.Add(trx, s.staker, asset.New(s.amount, tok), s.index, 1)
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
	return l, engine
}

func distribute(t *testing.T, engine *distribution.Engine, amount int64) int64 {
	d := int64(0)
	err := run(t, func(trx storage.Transaction) error {
		var err error
		d, err = engine.Distribute(trx, asset.New(amount, tok))
		return err
	})
	assert.Nil(t, err, "distribute error")
	return d
}

func balance(t *testing.T, l *ledger.Ledger, owner account.Name) int64 {
	amount := int64(0)
	_ = run(t, func(trx storage.Transaction) error {
		amount = l.GetBalance(trx, owner, tok).Amount
		return nil
	})
	return amount
}

func TestDistributeByWeight(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	l, engine := setupEngine(t, []stakeItem{
		{alice, 100, 3}, // weight 100
		{bob, 100, 0},   // weight 50
	})

	d := distribute(t, engine, 150)
	assert.Equal(t, int64(150), d, "distributed")
	assert.Equal(t, int64(200), balance(t, l, alice), "alice")
	assert.Equal(t, int64(150), balance(t, l, bob), "bob")
}

func TestDistributeRounding(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	l, engine := setupEngine(t, []stakeItem{
		{alice, 10, 0},
		{bob, 10, 0},
		{carol, 10, 0},
	})

	d := distribute(t, engine, 100)
	assert.Equal(t, int64(99), d, "distributed")
	for _, owner := range []account.Name{alice, bob, carol} {
		assert.Equal(t, int64(43), balance(t, l, owner), "%s", owner)
	}

	// less than one unit each
	d = distribute(t, engine, 2)
	assert.Equal(t, int64(0), d, "nothing distributed")
}

func TestDistributeNoStakers(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	l, engine := setupEngine(t, nil)

	before := balance(t, l, contract)
	d := distribute(t, engine, 1000)
	assert.Equal(t, int64(0), d, "distributed")
	assert.Equal(t, before, balance(t, l, contract), "contract unchanged")
}

func TestTransferFeeToStakers(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	l, _ := setupEngine(t, []stakeItem{
		{alice, 100, 3}, // weight 100
		{bob, 100, 0},   // weight 50
	})

	contractBefore := balance(t, l, contract)

	// fee 150: stakers floor(105) split 70/35, contract keeps 45
	err := run(t, func(trx storage.Transaction) error {
		_, err := l.Transfer(trx, contract, carol, asset.New(15000, tok), "", contract)
		return err
	})
	assert.Nil(t, err, "transfer error")

	assert.Equal(t, int64(170), balance(t, l, alice), "alice")
	assert.Equal(t, int64(135), balance(t, l, bob), "bob")
	assert.Equal(t, int64(15000), balance(t, l, carol), "carol")
	assert.Equal(t, contractBefore-15150+45, balance(t, l, contract), "contract")

	total := int64(0)
	for _, owner := range []account.Name{contract, alice, bob, carol} {
		total += balance(t, l, owner)
	}
	supply := int64(0)
	_ = run(t, func(trx storage.Transaction) error {
		stats, err := l.GetStats(trx, tok.Code())
		supply = stats.Supply.Amount
		return err
	})
	assert.Equal(t, supply, total, "conservation")
}
