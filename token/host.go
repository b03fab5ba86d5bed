// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/storage"
)

// Clock - whole seconds since the epoch
type Clock interface {
	Now() uint64
}

// SystemClock - the real time
type SystemClock struct{}

// Now - current time in seconds
func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Authority - the principals that authorised a call
type Authority interface {
	Require(principal account.Name) error
	Has(principal account.Name) bool
}

// Signers - a list of authorising accounts
type Signers []account.Name

// Require - UnauthorizedPrincipal unless principal signed
func (s Signers) Require(principal account.Name) error {
	if s.Has(principal) {
		return nil
	}
	return fault.UnauthorizedPrincipal
}

// Has - true if principal signed
func (s Signers) Has(principal account.Name) bool {
	for _, signer := range s {
		if signer == principal {
			return true
		}
	}
	return false
}

// Notifier - receives events after they are committed
type Notifier interface {
	Notify(principal account.Name, command string, data interface{})
}

// Registry - account existence
type Registry interface {
	Exists(trx storage.Transaction, name account.Name) bool
	Register(trx storage.Transaction, name account.Name, now uint64) error
}

// AccountRegistry - accounts kept in storage.Pool.Accounts
type AccountRegistry struct{}

// Exists - true if the account is registered
func (AccountRegistry) Exists(trx storage.Transaction, name account.Name) bool {
	return trx.Has(storage.Pool.Accounts, name.Bytes())
}

// Register - add an account with its registration time
func (AccountRegistry) Register(trx storage.Transaction, name account.Name, now uint64) error {
	if !name.IsValid() {
		return fault.InvalidAccountName
	}
	if trx.Has(storage.Pool.Accounts, name.Bytes()) {
		return fault.DuplicateAccount
	}
	trx.PutN(storage.Pool.Accounts, name.Bytes(), now)
	return nil
}
