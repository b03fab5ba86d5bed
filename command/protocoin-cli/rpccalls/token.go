// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/protocoind/rpc/tokens"
	"github.com/bitmark-inc/protocoind/token"
)

// Create - new token with a maximum supply
func (c *Client) Create(arguments *tokens.CreateArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.Create", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - move unstaked tokens
func (c *Client) Transfer(arguments *tokens.TransferArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.Transfer", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferStaked - move tokens and stake them for the receiver
func (c *Client) TransferStaked(arguments *tokens.TransferStakedArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.TransferStaked", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Open - create an empty balance row
func (c *Client) Open(arguments *tokens.OpenArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.Open", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Close - remove an empty balance row
func (c *Client) Close(arguments *tokens.CloseArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.Close", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// AddStake - lock tokens
func (c *Client) AddStake(arguments *tokens.AddStakeArguments) (*token.Receipt, error) {
	reply := &token.Receipt{}
	err := c.call("Token.AddStake", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Update - run the periodic update for a token
func (c *Client) Update(arguments *tokens.UpdateArguments) (*tokens.UpdateReply, error) {
	reply := &tokens.UpdateReply{}
	err := c.call("Token.Update", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
