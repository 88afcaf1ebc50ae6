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

	"github.com/datahighway/registryd/account"
)

type metadata struct {
	connect string
	caller  string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "entity registry client"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	kindFlag := cli.StringFlag{
		Name:  "kind, k",
		Value: "",
		Usage: "*entity kind `KIND`",
	}
	idFlag := cli.Uint64Flag{
		Name:  "id, i",
		Value: 0,
		Usage: "*entity id `ID`",
	}
	childFlag := cli.StringFlag{
		Name:  "child",
		Value: "",
		Usage: "*child entity kind `KIND`",
	}
	parentFlag := cli.StringFlag{
		Name:  "parent",
		Value: "",
		Usage: "*parent entity kind `KIND`",
	}
	slotFlag := cli.StringFlag{
		Name:  "slot, s",
		Value: "",
		Usage: "*configuration slot name `NAME`",
	}
	parentIdFlag := cli.Uint64Flag{
		Name:  "parent-id, p",
		Value: 0,
		Usage: " parent entity id `ID` for composite slots",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " accounts are for the testing or local chains",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " registryd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "account, a",
			Value: "",
			Usage: " caller `ACCOUNT` for calls that change state",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "create a new entity owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{kindFlag},
			Action:    runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "give an entity to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				idFlag,
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account to receive the entity `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "set-price",
			Usage:     "list an entity for sale, or withdraw it without a price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				idFlag,
				cli.StringFlag{
					Name:  "price",
					Value: "",
					Usage: " asking `PRICE`, blank to withdraw",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				idFlag,
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*highest acceptable `PRICE`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "entity",
			Usage:     "show one entity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{kindFlag, idFlag},
			Action:    runEntity,
		},
		{
			Name:      "list",
			Usage:     "list entities of a kind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				cli.Uint64Flag{
					Name:  "start",
					Value: 0,
					Usage: " first entity `ID`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "owned",
			Usage:     "list entity ids owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the caller",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "assign",
			Usage:     "attach a child entity to a parent entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				childFlag,
				parentFlag,
				cli.Uint64Flag{
					Name:  "child-id",
					Value: 0,
					Usage: "*child entity `ID`",
				},
				cli.Uint64Flag{
					Name:  "parent-id",
					Value: 0,
					Usage: "*parent entity `ID`",
				},
			},
			Action: runAssign,
		},
		{
			Name:      "parent",
			Usage:     "show the parent of a child entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				childFlag,
				parentFlag,
				cli.Uint64Flag{
					Name:  "child-id",
					Value: 0,
					Usage: "*child entity `ID`",
				},
			},
			Action: runParent,
		},
		{
			Name:      "children",
			Usage:     "list the children of a parent entity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				childFlag,
				parentFlag,
				cli.Uint64Flag{
					Name:  "parent-id",
					Value: 0,
					Usage: "*parent entity `ID`",
				},
			},
			Action: runChildren,
		},
		{
			Name:      "set-config",
			Usage:     "write a configuration record, missing fields take defaults",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				kindFlag,
				slotFlag,
				idFlag,
				parentIdFlag,
				cli.StringSliceFlag{
					Name:  "field, f",
					Usage: " field value `NAME=VALUE` may be repeated",
				},
			},
			Action: runSetConfig,
		},
		{
			Name:      "config",
			Usage:     "show a configuration record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{kindFlag, slotFlag, idFlag, parentIdFlag},
			Action:    runConfig,
		},
		{
			Name:      "balance",
			Usage:     "show the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` default is the caller",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "kinds",
			Usage:     "list the entity kinds served",
			ArgsUsage: " ",
			Action:    runKinds,
		},
		{
			Name:      "info",
			Usage:     "display registryd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "version",
			Usage:     "display registry-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		testnet := c.GlobalBool("testnet")
		account.SetTesting(testnet)

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				caller:  c.GlobalString("account"),
				testnet: testnet,
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
