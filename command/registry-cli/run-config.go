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

func slotKey(c *cli.Context) registry.SlotKey {
	return registry.SlotKey{
		Parent: registry.Index(c.Uint64("parent-id")),
		Id:     registry.Index(c.Uint64("id")),
	}
}

func runSetConfig(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	name, err := checkKind(c, "slot")
	if nil != err {
		return err
	}
	from, err := caller(m)
	if nil != err {
		return err
	}
	values, err := parseFields(c.StringSlice("field"))
	if nil != err {
		return err
	}
	key := slotKey(c)

	if m.verbose {
		fmt.Fprintf(m.e, "slot: %s.%s  key: %+v\n", kind, name, key)
		fmt.Fprintf(m.e, "fields: %d\n", len(values))
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetConfiguration(kind, name, from, key, values)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runConfig(c *cli.Context) error {

	m := getMetadata(c)

	kind, err := checkKind(c, "kind")
	if nil != err {
		return err
	}
	name, err := checkKind(c, "slot")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Configuration(kind, name, slotKey(c))
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
