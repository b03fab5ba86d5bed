// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/ledger"
	"github.com/bitmark-inc/protocoind/rpc/ratelimit"
	"github.com/bitmark-inc/protocoind/stake"
	"github.com/bitmark-inc/protocoind/token"
)

const (
	rateLimitQuery = 500
	rateBurstQuery = 200
)

// Reader - read only token state
type Reader interface {
	Supply(code asset.SymbolCode) (*ledger.Stats, error)
	AllSupply() ([]*ledger.Stats, error)
	Balance(owner account.Name, symbol asset.Symbol) (*token.BalanceInfo, error)
	Stake(staker account.Name, symbol asset.Symbol) (*token.StakeInfo, error)
}

// Query - type for RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  Reader
}

// New - query RPC service
func New(log *logger.L, reader Reader) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
		Reader:  reader,
	}
}

// Supply
// ------

// SupplyArguments - empty code lists every token
type SupplyArguments struct {
	Code string `json:"code"`
}

// SupplyReply - result of RPC
type SupplyReply struct {
	Tokens []*ledger.Stats `json:"tokens"`
}

// Supply - currency statistics
func (q *Query) Supply(arguments *SupplyArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	if "" == arguments.Code {
		all, err := q.Reader.AllSupply()
		if nil != err {
			return err
		}
		reply.Tokens = all
		return nil
	}

	code, err := asset.CodeFromString(arguments.Code)
	if nil != err {
		return err
	}
	stats, err := q.Reader.Supply(code)
	if nil != err {
		return err
	}
	reply.Tokens = []*ledger.Stats{stats}
	return nil
}

// Balance
// -------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner  account.Name `json:"owner"`
	Symbol asset.Symbol `json:"symbol"`
}

// Balance - total and unstaked holdings
func (q *Query) Balance(arguments *BalanceArguments, reply *token.BalanceInfo) error {
	if err := q.validate(arguments.Owner, arguments.Symbol); nil != err {
		return err
	}

	info, err := q.Reader.Balance(arguments.Owner, arguments.Symbol)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// Stake
// -----

// StakeArguments - arguments for RPC
type StakeArguments struct {
	Staker account.Name `json:"staker"`
	Symbol asset.Symbol `json:"symbol"`
}

// StakeReply - result of RPC
type StakeReply struct {
	Total     asset.Asset      `json:"total"`
	Weight    int64            `json:"weight"`
	Positions []stake.Position `json:"positions"`
}

// Stake - staked total, weighted stake and open positions
func (q *Query) Stake(arguments *StakeArguments, reply *StakeReply) error {
	if err := q.validate(arguments.Staker, arguments.Symbol); nil != err {
		return err
	}

	info, err := q.Reader.Stake(arguments.Staker, arguments.Symbol)
	if nil != err {
		return err
	}
	reply.Total = info.Total
	reply.Weight = info.Weight
	reply.Positions = info.Positions
	return nil
}

func (q *Query) validate(name account.Name, symbol asset.Symbol) error {
	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}
	if !name.IsValid() {
		return fault.InvalidAccountName
	}
	if !symbol.IsValid() {
		return fault.InvalidSymbol
	}
	return nil
}
