// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/rpc/ratelimit"
	"github.com/bitmark-inc/protocoind/token"
)

const (
	rateLimitAccount = 200
	rateBurstAccount = 100
)

// Registrar - account registration
type Registrar interface {
	RegisterAccount(auth token.Authority, name account.Name) (token.Receipt, error)
	AccountExists(name account.Name) (bool, error)
}

// Account - type for RPC
type Account struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registrar    Registrar
}

// New - account RPC service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, registrar Registrar) *Account {
	return &Account{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		IsNormalMode: isNormalMode,
		Registrar:    registrar,
	}
}

// RegisterArguments - arguments for RPC
type RegisterArguments struct {
	Signers token.Signers `json:"signers"`
	Name    account.Name  `json:"name"`
}

// Register - add a new account, it must sign for itself
func (a *Account) Register(arguments *RegisterArguments, reply *token.Receipt) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !a.IsNormalMode(mode.Normal) {
		return fault.NotAvailableWhileStopped
	}

	a.Log.Infof("Account.Register: %s", arguments.Name)

	r, err := a.Registrar.RegisterAccount(arguments.Signers, arguments.Name)
	if nil != err {
		return err
	}
	*reply = r
	return nil
}

// ExistsArguments - arguments for RPC
type ExistsArguments struct {
	Name account.Name `json:"name"`
}

// ExistsReply - result of RPC
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check registration
func (a *Account) Exists(arguments *ExistsArguments, reply *ExistsReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if !arguments.Name.IsValid() {
		return fault.InvalidAccountName
	}

	exists, err := a.Registrar.AccountExists(arguments.Name)
	if nil != err {
		return err
	}
	reply.Exists = exists
	return nil
}
