// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/protocoind/rpc/accounts"
)

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signers, err := checkSigners(c.StringSlice("signer"))
	if nil != err {
		return err
	}
	name, err := checkName("name", c.String("name"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Register(&accounts.RegisterArguments{
		Signers: signers,
		Name:    name,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runExists(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName("name", c.String("name"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Exists(&accounts.ExistsArguments{
		Name: name,
	})
	if nil != err {
		return err
	}

	printJson(m.w, response)
	return nil
}
