// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/fault"
	"github.com/bitmark-inc/protocoind/mode"
	"github.com/bitmark-inc/protocoind/rpc/accounts"
	"github.com/bitmark-inc/protocoind/rpc/fixtures"
	"github.com/bitmark-inc/protocoind/rpc/mocks"
	"github.com/bitmark-inc/protocoind/token"
)

func TestAccountRegister(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistrar(ctl)
	a := accounts.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return true }, r)

	alice, _ := account.NameFromString("alice")
	arg := accounts.RegisterArguments{
		Signers: token.Signers{alice},
		Name:    alice,
	}
	receipt := token.Receipt{ID: "abc", Timestamp: 5}

	gomock.InOrder(
		r.EXPECT().RegisterAccount(arg.Signers, alice).Return(receipt, nil).Times(1),
		r.EXPECT().RegisterAccount(arg.Signers, alice).Return(token.Receipt{}, fault.DuplicateAccount).Times(1),
	)

	var reply token.Receipt
	err := a.Register(&arg, &reply)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, receipt, reply, "wrong receipt")

	err = a.Register(&arg, &reply)
	assert.Equal(t, fault.DuplicateAccount, err, "wrong second Register")
}

func TestAccountRegisterWhenStopped(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistrar(ctl)
	a := accounts.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return false }, r)

	var reply token.Receipt
	err := a.Register(&accounts.RegisterArguments{}, &reply)
	assert.Equal(t, fault.NotAvailableWhileStopped, err, "wrong error")
}

func TestAccountExists(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistrar(ctl)
	a := accounts.New(logger.New(fixtures.LogCategory), func(_ mode.Mode) bool { return false }, r)

	bob, _ := account.NameFromString("bob")
	r.EXPECT().AccountExists(bob).Return(true, nil).Times(1)

	var reply accounts.ExistsReply
	err := a.Exists(&accounts.ExistsArguments{Name: bob}, &reply)
	assert.Nil(t, err, "wrong Exists")
	assert.True(t, reply.Exists, "wrong exists")

	err = a.Exists(&accounts.ExistsArguments{}, &reply)
	assert.Equal(t, fault.InvalidAccountName, err, "wrong empty name")
}
