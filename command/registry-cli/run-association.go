// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/datahighway/registryd/command/registry-cli/rpccalls"
	"github.com/datahighway/registryd/registry"
)

func checkPair(c *cli.Context) (string, string, error) {
	child, err := checkKind(c, "child")
	if nil != err {
		return "", "", err
	}
	parent, err := checkKind(c, "parent")
	if nil != err {
		return "", "", err
	}
	return child, parent, nil
}

func runAssign(c *cli.Context) error {

	m := getMetadata(c)

	child, parent, err := checkPair(c)
	if nil != err {
		return err
	}
	from, err := caller(m)
	if nil != err {
		return err
	}

	data := &rpccalls.AssignData{
		Child:    child,
		Parent:   parent,
		ChildId:  registry.Index(c.Uint64("child-id")),
		ParentId: registry.Index(c.Uint64("parent-id")),
	}

	if m.verbose {
		fmt.Fprintf(m.e, "assign: %s[%d] to: %s[%d]\n", child, data.ChildId, parent, data.ParentId)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if err := client.Assign(from, data); nil != err {
		return err
	}

	response, err := client.Children(child, parent, data.ParentId)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runParent(c *cli.Context) error {

	m := getMetadata(c)

	child, parent, err := checkPair(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Parent(child, parent, registry.Index(c.Uint64("child-id")))
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runChildren(c *cli.Context) error {

	m := getMetadata(c)

	child, parent, err := checkPair(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Children(child, parent, registry.Index(c.Uint64("parent-id")))
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
