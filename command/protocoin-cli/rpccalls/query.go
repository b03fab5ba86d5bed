// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/protocoind/rpc/accounts"
	"github.com/bitmark-inc/protocoind/rpc/node"
	"github.com/bitmark-inc/protocoind/rpc/query"
	"github.com/bitmark-inc/protocoind/token"
)

// Register - add an account name
func (c *Client) Register(arguments *accounts.RegisterArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Account.Register", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Exists - check for a registered account
func (c *Client) Exists(arguments *accounts.ExistsArguments) (*accounts.ExistsReply, error) {
	reply := &accounts.ExistsReply{}
	err := c.call("Account.Exists", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Supply - statistics for one or all tokens
func (c *Client) Supply(arguments *query.SupplyArguments) (*query.SupplyReply, error) {
	reply := &query.SupplyReply{}
	err := c.call("Query.Supply", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - one balance row
func (c *Client) Balance(arguments *query.BalanceArguments) (*token.BalanceInfo, error) {
	reply := &token.BalanceInfo{}
	err := c.call("Query.Balance", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Stake - positions of one staker
func (c *Client) Stake(arguments *query.StakeArguments) (*query.StakeReply, error) {
	reply := &query.StakeReply{}
	err := c.call("Query.Stake", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - node status
func (c *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
