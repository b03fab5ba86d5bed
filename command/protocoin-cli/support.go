// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/protocoind/account"
	"github.com/bitmark-inc/protocoind/asset"
	"github.com/bitmark-inc/protocoind/command/protocoin-cli/rpccalls"
	"github.com/bitmark-inc/protocoind/token"
)

// connect using the global flags
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}

func checkName(title string, s string) (account.Name, error) {
	if "" == s {
		return 0, fmt.Errorf("%s is required", title)
	}
	name, err := account.NameFromString(s)
	if nil != err {
		return 0, fmt.Errorf("%s: %q error: %s", title, s, err)
	}
	return name, nil
}

// --signer may be repeated or given as a comma separated list
func checkSigners(names []string) (token.Signers, error) {
	signers := token.Signers{}
	for _, n := range names {
		for _, s := range strings.Split(n, ",") {
			s = strings.TrimSpace(s)
			if "" == s {
				continue
			}
			name, err := checkName("signer", s)
			if nil != err {
				return nil, err
			}
			signers = append(signers, name)
		}
	}
	if 0 == len(signers) {
		return nil, fmt.Errorf("at least one signer is required")
	}
	return signers, nil
}

func checkQuantity(s string) (asset.Asset, error) {
	if "" == s {
		return asset.Asset{}, fmt.Errorf("quantity is required")
	}
	a, err := asset.Parse(s)
	if nil != err {
		return asset.Asset{}, fmt.Errorf("quantity: %q error: %s", s, err)
	}
	return a, nil
}

func checkSymbol(s string) (asset.Symbol, error) {
	if "" == s {
		return 0, fmt.Errorf("symbol is required")
	}
	symbol, err := asset.ParseSymbol(s)
	if nil != err {
		return 0, fmt.Errorf("symbol: %q error: %s", s, err)
	}
	return symbol, nil
}

func checkDurationIndex(c *cli.Context) (int, error) {
	index := c.Int("duration")
	if index < 0 {
		return 0, fmt.Errorf("invalid duration index: %d", index)
	}
	return index, nil
}
