// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect     string
	fingerprint string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "protocoin-cli"
	app.Usage = "JSON-RPC client for protocoind"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " protocoind host/IP and port, `HOST:PORT`",
			EnvVar: "PROTOCOIN_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 of the server certificate `HEX`",
			EnvVar: "PROTOCOIN_FINGERPRINT",
		},
	}

	signerFlag := cli.StringSliceFlag{
		Name:  "signer, s",
		Usage: "*authorising account `NAME` (repeat or comma separate for more)",
	}
	symbolFlag := cli.StringFlag{
		Name:  "symbol, y",
		Value: "",
		Usage: "*token symbol `PRECISION,CODE` e.g. 4,TOK",
	}

	app.Commands = []cli.Command{
		{
			Name:      "register",
			Usage:     "register an account name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*account `NAME`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "exists",
			Usage:     "check whether an account name is registered",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*account `NAME`",
				},
			},
			Action: runExists,
		},
		{
			Name:      "create",
			Usage:     "create a new token, contract only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "max-supply, m",
					Value: "",
					Usage: "*maximum supply `QUANTITY` e.g. \"1000000.0000 TOK\"",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens to another account, optionally staked for the receiver",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "from",
					Value: "",
					Usage: "*sending account `NAME`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving account `NAME`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount to send `QUANTITY` e.g. \"12.5000 TOK\"",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " free text `STRING`",
				},
				cli.IntFlag{
					Name:  "duration, d",
					Value: 0,
					Usage: " stake the transfer for the receiver using duration `INDEX`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "open",
			Usage:     "open an empty balance row",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*balance owner `NAME`",
				},
				symbolFlag,
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: " account paying for the row `NAME` [default owner]",
				},
			},
			Action: runOpen,
		},
		{
			Name:      "close",
			Usage:     "close an empty balance row",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*balance owner `NAME`",
				},
				symbolFlag,
			},
			Action: runClose,
		},
		{
			Name:      "stake",
			Usage:     "lock tokens for one of the staking durations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				cli.StringFlag{
					Name:  "staker",
					Value: "",
					Usage: "*staking account `NAME`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount to stake `QUANTITY`",
				},
				cli.IntFlag{
					Name:  "duration, d",
					Value: 0,
					Usage: "*staking duration `INDEX` (see info)",
				},
			},
			Action: runStake,
		},
		{
			Name:      "update",
			Usage:     "expire matured stakes and issue any due boost, contract only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signerFlag,
				symbolFlag,
			},
			Action: runUpdate,
		},
		{
			Name:      "supply",
			Usage:     "display token supply",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "code",
					Value: "",
					Usage: " token `CODE` [default all tokens]",
				},
			},
			Action: runSupply,
		},
		{
			Name:      "balance",
			Usage:     "display a balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*balance owner `NAME`",
				},
				symbolFlag,
			},
			Action: runBalance,
		},
		{
			Name:      "stakes",
			Usage:     "display the stake positions of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "staker",
					Value: "",
					Usage: "*staking account `NAME`",
				},
				symbolFlag,
			},
			Action: runStakeInfo,
		},
		{
			Name:   "info",
			Usage:  "display protocoind status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display protocoin-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("connect: missing HOST:PORT")
		}

		c.App.Metadata["config"] = &metadata{
			connect:     connect,
			fingerprint: c.GlobalString("fingerprint"),
			verbose:     verbose,
			e:           e,
			w:           w,
		}

		return nil
	}

	return app
}
