// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := accountOrCaller(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}

func runKinds(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}

	return printJSON(m.w, struct {
		Kinds        interface{} `json:"kinds"`
		Associations []string    `json:"associations"`
	}{
		Kinds:        response.Kinds,
		Associations: response.Associations,
	})
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Info()
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
