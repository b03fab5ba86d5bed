// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/rpc/fixtures"
	"github.com/bitmark-inc/protocoind/rpc/mocks"
	"github.com/bitmark-inc/protocoind/rpc/query"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/token"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockReader, *query.Query, asset.Symbol, account.Name) {
	ctl := gomock.NewController(t)
	r := mocks.NewMockReader(ctl)
	q := query.New(logger.New(fixtures.LogCategory), r)
	symbol, _ := asset.NewSymbol(4, "TOK")
	alice, _ := account.NameFromString("alice")
	return ctl, r, q, symbol, alice
}

func TestQuerySupply(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, r, q, symbol, alice := setup(t)
	defer ctl.Finish()

	stats := &ledger.Stats{
		Supply:    asset.New(750, symbol),
		MaxSupply: asset.New(1000, symbol),
		Issuer:    alice,
	}

	r.EXPECT().Supply(symbol.Code()).Return(stats, nil).Times(1)

	var reply query.SupplyReply
	err := q.Supply(&query.SupplyArguments{Code: "TOK"}, &reply)
	assert.Nil(t, err, "wrong Supply")
	assert.Equal(t, []*ledger.Stats{stats}, reply.Tokens, "wrong tokens")
}

func TestQuerySupplyAll(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, r, q, symbol, alice := setup(t)
	defer ctl.Finish()

	all := []*ledger.Stats{
		{Supply: asset.New(1, symbol), MaxSupply: asset.New(2, symbol), Issuer: alice},
	}
	r.EXPECT().AllSupply().Return(all, nil).Times(1)

	var reply query.SupplyReply
	err := q.Supply(&query.SupplyArguments{}, &reply)
	assert.Nil(t, err, "wrong Supply")
	assert.Equal(t, all, reply.Tokens, "wrong tokens")
}

func TestQuerySupplyWhenUnknown(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, r, q, symbol, _ := setup(t)
	defer ctl.Finish()

	r.EXPECT().Supply(symbol.Code()).Return(nil, fault.UnknownToken).Times(1)

	var reply query.SupplyReply
	err := q.Supply(&query.SupplyArguments{Code: "TOK"}, &reply)
	assert.Equal(t, fault.UnknownToken, err, "wrong error")

	err = q.Supply(&query.SupplyArguments{Code: "tok"}, &reply)
	assert.Equal(t, fault.InvalidSymbol, err, "wrong lower case code")
}

func TestQueryBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, r, q, symbol, alice := setup(t)
	defer ctl.Finish()

	info := &token.BalanceInfo{
		Balance:  asset.New(100, symbol),
		Unstaked: asset.New(40, symbol),
	}
	r.EXPECT().Balance(alice, symbol).Return(info, nil).Times(1)

	var reply token.BalanceInfo
	err := q.Balance(&query.BalanceArguments{Owner: alice, Symbol: symbol}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, *info, reply, "wrong balance")

	err = q.Balance(&query.BalanceArguments{Symbol: symbol}, &reply)
	assert.Equal(t, fault.InvalidAccountName, err, "wrong missing owner")

	err = q.Balance(&query.BalanceArguments{Owner: alice}, &reply)
	assert.Equal(t, fault.InvalidSymbol, err, "wrong missing symbol")
}

func TestQueryStake(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl, r, q, symbol, alice := setup(t)
	defer ctl.Finish()

	info := &token.StakeInfo{
		Total:  asset.New(60, symbol),
		Weight: 3500,
		Positions: []stake.Position{
			{ID: 1, Quantity: asset.New(50, symbol), Start: 100, DurationIndex: 0},
			{ID: 2, Quantity: asset.New(10, symbol), Start: 120, DurationIndex: 3},
		},
	}
	r.EXPECT().Stake(alice, symbol).Return(info, nil).Times(1)

	var reply query.StakeReply
	err := q.Stake(&query.StakeArguments{Staker: alice, Symbol: symbol}, &reply)
	assert.Nil(t, err, "wrong Stake")
	assert.Equal(t, info.Total, reply.Total, "wrong total")
	assert.Equal(t, info.Weight, reply.Weight, "wrong weight")
	assert.Equal(t, info.Positions, reply.Positions, "wrong positions")
}
