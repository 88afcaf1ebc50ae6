// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/datahighway/registryd/registry"
)

func runSetPrice(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	from, err := caller(m)
	if nil != err {
		return err
	}
	price, err := parsePrice(c.String("price"))
	if nil != err {
		return err
	}
	id := registry.Index(c.Uint64("id"))

	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s  id: %d\n", kind, id)
		if nil == price {
			fmt.Fprintf(m.e, "withdraw from sale\n")
		} else {
			fmt.Fprintf(m.e, "price: %d\n", *price)
		}
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.SetPrice(kind, from, id, price); nil != err {
		return err
	}

	return printEntity(m, client, kind, id)
}

func runBuy(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	buyer, err := caller(m)
	if nil != err {
		return err
	}
	id := registry.Index(c.Uint64("id"))
	maximumPrice := c.Uint64("max-price")

	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s  id: %d\n", kind, id)
		fmt.Fprintf(m.e, "maximum price: %d\n", maximumPrice)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Buy(kind, buyer, id, maximumPrice); nil != err {
		return err
	}

	return printEntity(m, client, kind, id)
}
