// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/parameter"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/storage"
)

var (
	contract = name("protocoin")
	alice    = name("alice")
	bob      = name("bob")
	tok      = symbol(0, "TOK")
)

// ledger with 1000000 TOK and funded accounts
func setupBook(t *testing.T, funds map[account.Name]int64) (*ledger.Ledger, *stake.Book) {
	p := parameter.Default()
	l := ledger.New(contract, p)
	book := stake.New(p, l)
	l.SetHooks(book, nil)

	err := run(t, func(trx storage.Transaction) error {
		err := l.Create(trx, asset.New(1000000, tok), 1)
		if nil != err {
			return err
		}
		for owner, amount := range funds {
			_, err := l.Transfer(trx, contract, owner, asset.New(amount, tok), "", contract)
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}
	return l, book
}

func add(t *testing.T, book *stake.Book, staker account.Name, amount int64, index int, now uint64) error {
	return run(t, func(trx storage.Transaction) error {
		_, err := book.Add(trx, staker, asset.New(amount, tok), index, now)
		return err
	})
}

func expire(t *testing.T, book *stake.Book, now uint64) int {
	n := 0
	err := run(t, func(trx storage.Transaction) error {
		var err error
		n, err = book.ExpireAndRecompute(trx, tok, now)
		return err
	})
	assert.Nil(t, err, "expire error")
	return n
}

type summary struct {
	total    int64
	weight   int64
	unstaked int64
	count    int
}

func summarise(t *testing.T, book *stake.Book, staker account.Name) summary {
	s := summary{}
	_ = run(t, func(trx storage.Transaction) error {
		s.total = book.TotalStake(trx, staker, tok).Amount
		s.weight = book.StakeWeight(trx, staker, tok)
		s.unstaked = book.UnstakedBalance(trx, staker, tok).Amount
		s.count = len(book.Positions(trx, staker, tok))
		return nil
	})
	return s
}

func TestAdd(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	_, book := setupBook(t, map[account.Name]int64{alice: 1000})

	assert.Equal(t, summary{0, 0, 1000, 0}, summarise(t, book, alice), "before staking")

	err := add(t, book, alice, 600, 0, 100)
	assert.Nil(t, err, "first add")
	assert.Equal(t, summary{600, 50 * 600, 400, 1}, summarise(t, book, alice), "after first")

	err = add(t, book, alice, 500, 0, 100)
	assert.Equal(t, fault.InsufficientUnstakedBalance, err, "over stake")

	err = add(t, book, alice, 400, 3, 200)
	assert.Nil(t, err, "second add")
	assert.Equal(t, summary{1000, 50*600 + 100*400, 0, 2}, summarise(t, book, alice), "after second")

	_ = run(t, func(trx storage.Transaction) error {
		positions := book.Positions(trx, alice, tok)
		assert.Equal(t, uint64(0), positions[0].ID, "first id")
		assert.Equal(t, uint64(1), positions[1].ID, "second id")
		assert.Equal(t, uint64(200), positions[1].Start, "second start")
		assert.Equal(t, 3, positions[1].DurationIndex, "second index")
		return nil
	})
}

func TestAddFailures(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	_, book := setupBook(t, map[account.Name]int64{alice: 1000})

	items := []struct {
		quantity asset.Asset
		index    int
		err      error
	}{
		{asset.New(1, tok), 6, fault.DurationIndexOutOfRange},
		{asset.New(1, tok), -1, fault.DurationIndexOutOfRange},
		{asset.New(1, symbol(0, "XYZ")), 0, fault.UnknownToken},
		{asset.New(0, tok), 0, fault.InvalidAmount},
		{asset.New(-10, tok), 0, fault.InvalidAmount},
		{asset.New(1, symbol(4, "TOK")), 0, fault.SymbolMismatch},
		{asset.New(1001, tok), 0, fault.InsufficientUnstakedBalance},
	}

	for i, item := range items {
		err := run(t, func(trx storage.Transaction) error {
			_, err := book.Add(trx, alice, item.quantity, item.index, 1)
			return err
		})
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
	assert.Equal(t, summary{0, 0, 1000, 0}, summarise(t, book, alice), "unchanged")

	// nothing to stake with
	err := add(t, book, bob, 1, 0, 1)
	assert.Equal(t, fault.InsufficientUnstakedBalance, err, "no balance")
}

func TestExpireAndRecompute(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	_, book := setupBook(t, map[account.Name]int64{alice: 1000, bob: 1000})

	assert.Nil(t, add(t, book, alice, 100, 0, 1000), "alice 60s")
	assert.Nil(t, add(t, book, alice, 200, 1, 1000), "alice 180s")
	assert.Nil(t, add(t, book, bob, 300, 5, 1000), "bob 3600s")

	assert.Equal(t, 0, expire(t, book, 1059), "nothing mature")
	assert.Equal(t, summary{300, 50*100 + 60*200, 700, 2}, summarise(t, book, alice), "alice unchanged")

	// matures exactly now
	assert.Equal(t, 1, expire(t, book, 1060), "first matured")
	assert.Equal(t, summary{200, 60 * 200, 800, 1}, summarise(t, book, alice), "alice survivors")
	assert.Equal(t, summary{300, 100 * 300, 700, 1}, summarise(t, book, bob), "bob untouched")

	assert.Equal(t, 1, expire(t, book, 1180), "second matured")
	assert.Equal(t, summary{0, 0, 1000, 0}, summarise(t, book, alice), "alice has no stake")

	stakers := []account.Name{}
	_ = run(t, func(trx storage.Transaction) error {
		return book.Each(trx, tok.Code(), func(stat *stake.Stat) error {
			stakers = append(stakers, stat.Staker)
			return nil
		})
	})
	assert.Equal(t, []account.Name{bob}, stakers, "alice aggregate not removed")

	// next id keeps increasing after expiry
	assert.Nil(t, add(t, book, alice, 10, 0, 2000), "alice again")
	_ = run(t, func(trx storage.Transaction) error {
		positions := book.Positions(trx, alice, tok)
		assert.Equal(t, 1, len(positions), "positions")
		assert.Equal(t, uint64(2), positions[0].ID, "reused id")
		return nil
	})
}

func TestStakedBalanceIsLocked(t *testing.T) {
	dir := setupStorage(t)
	defer teardownStorage(dir)

	l, book := setupBook(t, map[account.Name]int64{alice: 1000})

	assert.Nil(t, add(t, book, alice, 950, 2, 1), "stake")

	err := run(t, func(trx storage.Transaction) error {
		_, err := l.Transfer(trx, alice, bob, asset.New(51, tok), "", alice)
		return err
	})
	assert.Equal(t, fault.InsufficientUnstakedBalance, err, "spent staked balance")

	err = run(t, func(trx storage.Transaction) error {
		_, err := l.Transfer(trx, alice, bob, asset.New(50, tok), "", alice)
		return err
	})
	assert.Nil(t, err, "unstaked part")

	_ = run(t, func(trx storage.Transaction) error {
		assert.True(t, book.TotalStake(trx, alice, tok).Amount <= l.GetBalance(trx, alice, tok).Amount, "stake bound")
		return nil
	})
}
