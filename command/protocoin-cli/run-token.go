// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/protocoind/rpc/tokens"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	maxSupply, err := checkQuantity(c.String("max-supply"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signers: %v\n", signers)
		fmt.Fprintf(m.e, "max supply: %s\n", maxSupply)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(&tokens.CreateArguments{
		Signers:   signers,
		MaxSupply: maxSupply,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	from, err := checkName("from", c.String("from"))
	if nil != err {
		return err
	}
	to, err := checkName("to", c.String("to"))
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c.String("quantity"))
	if nil != err {
		return err
	}
	memo := c.String("memo")

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	arguments := tokens.TransferArguments{
		Signers:  signers,
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     memo,
	}

	if c.IsSet("duration") {
		index, err := checkDurationIndex(c)
		if nil != err {
			return err
		}
		response, err := client.TransferStaked(&tokens.TransferStakedArguments{
			Signers:       arguments.Signers,
			From:          arguments.From,
			To:            arguments.To,
			Quantity:      arguments.Quantity,
			Memo:          arguments.Memo,
			DurationIndex: index,
		})
		if nil != err {
			return err
		}
		printJson(m.w, response)
		return nil
	}

	response, err := client.Transfer(&arguments)
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOpen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	owner, err := checkName("owner", c.String("owner"))
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c.String("symbol"))
	if nil != err {
		return err
	}

	// payer defaults to the owner
	payer := owner
	if "" != c.String("payer") {
		payer, err = checkName("payer", c.String("payer"))
		if nil != err {
			return err
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Open(&tokens.OpenArguments{
		Signers: signers,
		Owner:   owner,
		Symbol:  symbol,
		Payer:   payer,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runClose(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
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

	response, err := client.Close(&tokens.CloseArguments{
		Signers: signers,
		Owner:   owner,
		Symbol:  symbol,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runStake(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	staker, err := checkName("staker", c.String("staker"))
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c.String("quantity"))
	if nil != err {
		return err
	}
	index, err := checkDurationIndex(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.AddStake(&tokens.AddStakeArguments{
		Signers:       signers,
		Staker:        staker,
		Quantity:      quantity,
		DurationIndex: index,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runUpdate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
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

	response, err := client.Update(&tokens.UpdateArguments{
		Signers: signers,
		Symbol:  symbol,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
