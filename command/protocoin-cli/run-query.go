// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/rpc/query"
)

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// blank code lists all tokens
	code := c.String("code")
	if "" != code {
		if _, err := asset.CodeFromString(code); nil != err {
			return fmt.Errorf("code: %q error: %s", code, err)
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Supply(&query.SupplyArguments{
		Code: code,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkName("owner", c.String("owner"))
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c.String("symbol"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(&query.BalanceArguments{
		Owner:  owner,
		Symbol: symbol,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runStakeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	staker, err := checkName("staker", c.String("staker"))
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c.String("symbol"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Stake(&query.StakeArguments{
		Staker: staker,
		Symbol: symbol,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
