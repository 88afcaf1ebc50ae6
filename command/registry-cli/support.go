// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/command/registry-cli/rpccalls"
	"github.com/datahighway/registryd/registry"
)

// every reply is written as indented JSON
func printJSON(w io.Writer, message interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// the global --account value
func caller(m *metadata) (account.Account, error) {
	if "" == m.caller {
		return account.Account{}, fmt.Errorf("caller account is required")
	}
	return decodeAccount(m.caller)
}

// account from a flag, falling back to the caller
func accountOrCaller(m *metadata, s string) (account.Account, error) {
	if "" == s {
		return caller(m)
	}
	return decodeAccount(s)
}

func decodeAccount(s string) (account.Account, error) {
	a, err := account.FromBase58(s)
	if nil != err {
		return a, fmt.Errorf("account: %q error: %s", s, err)
	}
	return a, nil
}

func checkKind(c *cli.Context, flag string) (string, error) {
	kind := strings.TrimSpace(c.String(flag))
	if "" == kind {
		return "", fmt.Errorf("%s is required", flag)
	}
	return kind, nil
}

// blank for no price
func parsePrice(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	price, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return nil, fmt.Errorf("invalid price: %q", s)
	}
	return &price, nil
}

// NAME=VALUE pairs: a JSON number, boolean or string, anything
// else is taken as text
func parseFields(fields []string) (map[string]registry.Value, error) {
	values := make(map[string]registry.Value)
	for _, f := range fields {
		n := strings.Index(f, "=")
		if n <= 0 {
			return nil, fmt.Errorf("field: %q is not NAME=VALUE", f)
		}
		name := strings.TrimSpace(f[:n])
		text := f[n+1:]

		var v registry.Value
		if err := json.Unmarshal([]byte(text), &v); nil != err {
			v = registry.TextValue(text)
		}
		values[name] = v
	}
	return values, nil
}

func printEntity(m *metadata, client *rpccalls.Client, kind string, id registry.Index) error {
	response, err := client.Entity(kind, id)
	if nil != err {
		return err
	}
	return printJSON(m.w, response)
}
