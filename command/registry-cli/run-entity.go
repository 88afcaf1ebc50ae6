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

func runCreate(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	from, err := caller(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s\n", kind)
		fmt.Fprintf(m.e, "caller: %s\n", from)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Create(kind, from)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runTransfer(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	from, err := caller(m)
	if nil != err {
		return err
	}
	receiver := c.String("receiver")
	if "" == receiver {
		return fmt.Errorf("receiver is required")
	}
	to, err := decodeAccount(receiver)
	if nil != err {
		return err
	}
	id := registry.Index(c.Uint64("id"))

	if m.verbose {
		fmt.Fprintf(m.e, "kind: %s  id: %d\n", kind, id)
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Transfer(kind, from, to, id); nil != err {
		return err
	}

	return printEntity(m, client, kind, id)
}

func runEntity(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return printEntity(m, client, kind, registry.Index(c.Uint64("id")))
}

func runList(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.List(kind, registry.Index(c.Uint64("start")), count)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}

func runOwned(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	owner, err := accountOrCaller(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owned(kind, owner)
	if nil != err {
		return err
	}

	return printJSON(m.w, response)
}
