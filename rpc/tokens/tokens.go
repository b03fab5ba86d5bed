// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/emission"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/rpc/ratelimit"
	"github.com/bitmark-inc/protocoind/token"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Executor - the token operations
type Executor interface {
	Create(auth token.Authority, maxSupply asset.Asset) (token.Receipt, error)
	Transfer(auth token.Authority, from account.Name, to account.Name, quantity asset.Asset, memo string) (token.Receipt, error)
	TransferStaked(auth token.Authority, from account.Name, to account.Name, quantity asset.Asset, memo string, durationIndex int) (token.Receipt, error)
	Open(auth token.Authority, owner account.Name, symbol asset.Symbol, payer account.Name) (token.Receipt, error)
	Close(auth token.Authority, owner account.Name, symbol asset.Symbol) (token.Receipt, error)
	AddStake(auth token.Authority, staker account.Name, quantity asset.Asset, durationIndex int) (token.Receipt, error)
	Update(auth token.Authority, symbol asset.Symbol) (token.Receipt, *emission.Result, error)
}

// Token - type for RPC
type Token struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Executor     Executor
}

// New - token RPC service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, executor Executor) *Token {
	return &Token{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitToken, rateBurstToken),
		IsNormalMode: isNormalMode,
		Executor:     executor,
	}
}

// Create a token
// --------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Signers   token.Signers `json:"signers"`
	MaxSupply asset.Asset   `json:"maxSupply"`
}

// Create - new currency owned by the contract account
func (t *Token) Create(arguments *CreateArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	t.Log.Infof("Token.Create: %+v", arguments)

	r, err := t.Executor.Create(arguments.Signers, arguments.MaxSupply)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// Transfer tokens
// ---------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Signers  token.Signers `json:"signers"`
	From     account.Name  `json:"from"`
	To       account.Name  `json:"to"`
	Quantity asset.Asset   `json:"quantity"`
	Memo     string        `json:"memo"`
}

// Transfer - move unstaked tokens and charge the fee
func (t *Token) Transfer(arguments *TransferArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	t.Log.Infof("Token.Transfer: %+v", arguments)

	r, err := t.Executor.Transfer(arguments.Signers, arguments.From, arguments.To, arguments.Quantity, arguments.Memo)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// TransferStakedArguments - arguments for RPC
type TransferStakedArguments struct {
	Signers       token.Signers `json:"signers"`
	From          account.Name  `json:"from"`
	To            account.Name  `json:"to"`
	Quantity      asset.Asset   `json:"quantity"`
	Memo          string        `json:"memo"`
	DurationIndex int           `json:"durationIndex"`
}

// TransferStaked - transfer then stake the amount for the receiver
func (t *Token) TransferStaked(arguments *TransferStakedArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	t.Log.Infof("Token.TransferStaked: %+v", arguments)

	r, err := t.Executor.TransferStaked(arguments.Signers, arguments.From, arguments.To, arguments.Quantity, arguments.Memo, arguments.DurationIndex)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// Open and close balance rows
// ---------------------------

// OpenArguments - arguments for RPC
type OpenArguments struct {
	Signers token.Signers `json:"signers"`
	Owner   account.Name  `json:"owner"`
	Symbol  asset.Symbol  `json:"symbol"`
	Payer   account.Name  `json:"payer"`
}

// Open - create a zero balance row
func (t *Token) Open(arguments *OpenArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	r, err := t.Executor.Open(arguments.Signers, arguments.Owner, arguments.Symbol, arguments.Payer)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// CloseArguments - arguments for RPC
type CloseArguments struct {
	Signers token.Signers `json:"signers"`
	Owner   account.Name  `json:"owner"`
	Symbol  asset.Symbol  `json:"symbol"`
}

// Close - remove a zero balance row
func (t *Token) Close(arguments *CloseArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	r, err := t.Executor.Close(arguments.Signers, arguments.Owner, arguments.Symbol)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// Staking
// -------

// AddStakeArguments - arguments for RPC
type AddStakeArguments struct {
	Signers       token.Signers `json:"signers"`
	Staker        account.Name  `json:"staker"`
	Quantity      asset.Asset   `json:"quantity"`
	DurationIndex int           `json:"durationIndex"`
}

// AddStake - lock tokens for one of the configured durations
func (t *Token) AddStake(arguments *AddStakeArguments, reply *token.Receipt) error {
	if err := t.check(); nil != err {
		return err
	}

	t.Log.Infof("Token.AddStake: %+v", arguments)

	r, err := t.Executor.AddStake(arguments.Signers, arguments.Staker, arguments.Quantity, arguments.DurationIndex)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// Periodic update
// ---------------

// UpdateArguments - arguments for RPC
type UpdateArguments struct {
	Signers token.Signers `json:"signers"`
	Symbol  asset.Symbol  `json:"symbol"`
}

// UpdateReply - results of an update
type UpdateReply struct {
	token.Receipt
	Result *emission.Result `json:"result"`
}

// Update - expire stakes and issue any due boost, contract only
func (t *Token) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := t.check(); nil != err {
		return err
	}

	r, result, err := t.Executor.Update(arguments.Signers, arguments.Symbol)
	if nil != err {
		return err
	}
	reply.Receipt = r
	reply.Result = result
	return nil
}

// common checks for every mutating call
func (t *Token) check() error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if !t.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhileStopped
	}
	return nil
}
