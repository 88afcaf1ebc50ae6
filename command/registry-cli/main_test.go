// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/counter"
	"github.com/datahighway/registryd/rpc/fixtures"
	"github.com/datahighway/registryd/rpc/server"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	env, err := fixtures.NewEnvironment()
	if nil != err {
		fmt.Printf("environment error: %s\n", err)
		os.Exit(1)
	}

	c := counter.Counter(0)
	srv := server.Create(logger.New(fixtures.LogCategory), "1.0", chain.Local, env.Clock, env.Runtime, env.Ledger, &c)

	dir, err := ioutil.TempDir("", "registry-cli")
	if nil != err {
		fmt.Printf("temp dir error: %s\n", err)
		os.Exit(1)
	}
	tlsConfig, err := fixtures.TLSConfiguration(dir)
	_ = os.RemoveAll(dir)
	if nil != err {
		fmt.Printf("certificate error: %s\n", err)
		os.Exit(1)
	}

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go srv.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	env.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// run the client and decode its output
func run(t *testing.T, reply interface{}, arguments ...string) error {
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)

	args := append([]string{"registry-cli", "--connect", address}, arguments...)
	if err := app.Run(args); nil != err {
		return err
	}
	if nil != reply {
		if err := json.Unmarshal(out.Bytes(), reply); nil != err {
			t.Fatalf("output: %q  error: %s", out.String(), err)
		}
	}
	return nil
}

func TestCreateListAndPrice(t *testing.T) {
	alice := fixtures.Alice.String()
	bob := fixtures.Bob.String()

	var created struct {
		Id string `json:"id"`
	}
	err := run(t, &created, "--account", alice, "create", "--kind", "roaming_networks")
	assert.Nil(t, err, "create error")
	assert.NotEqual(t, "", created.Id, "missing id")

	var entity struct {
		Entity struct {
			Owner string      `json:"owner"`
			Price json.Number `json:"price"`
		} `json:"entity"`
	}
	err = run(t, &entity, "--account", alice, "set-price", "--kind", "roaming_networks", "--id", created.Id, "--price", "15")
	assert.Nil(t, err, "set price error")
	assert.Equal(t, alice, entity.Entity.Owner, "wrong owner")
	assert.Equal(t, json.Number("15"), entity.Entity.Price, "wrong price")

	err = run(t, &entity, "--account", bob, "buy", "--kind", "roaming_networks", "--id", created.Id, "--max-price", "15")
	assert.Nil(t, err, "buy error")
	assert.Equal(t, bob, entity.Entity.Owner, "not bought")

	var owned struct {
		Ids []json.Number `json:"ids"`
	}
	err = run(t, &owned, "--account", bob, "owned", "--kind", "roaming_networks")
	assert.Nil(t, err, "owned error")
	assert.Contains(t, owned.Ids, json.Number(created.Id), "bought entity not listed")

	err = run(t, nil, "--account", alice, "buy", "--kind", "roaming_networks", "--id", created.Id, "--max-price", "15")
	assert.NotNil(t, err, "bought an entity that is not for sale")
}

func TestConfigCommands(t *testing.T) {
	alice := fixtures.Alice.String()

	var created struct {
		Id string `json:"id"`
	}
	err := run(t, &created, "--account", alice, "create", "--kind", "roaming_service_profiles")
	assert.Nil(t, err, "create error")

	var set struct {
		Record map[string]interface{} `json:"record"`
	}
	err = run(t, &set, "--account", alice, "set-config", "--kind", "roaming_service_profiles", "--slot", "downlink_rate", "--id", created.Id, "--field", "downlink_rate=9")
	assert.Nil(t, err, "set config error")
	assert.Equal(t, float64(9), set.Record["downlink_rate"], "wrong stored value")

	var got struct {
		Record map[string]interface{} `json:"record"`
	}
	err = run(t, &got, "config", "--kind", "roaming_service_profiles", "--slot", "downlink_rate", "--id", created.Id)
	assert.Nil(t, err, "config error")
	assert.Equal(t, set.Record, got.Record, "wrong record")
}

func TestCallerRequired(t *testing.T) {
	err := run(t, nil, "create", "--kind", "roaming_operators")
	assert.NotNil(t, err, "create without a caller")

	err = run(t, nil, "--account", "nobody", "create", "--kind", "roaming_operators")
	assert.NotNil(t, err, "create with a bad caller")

	err = run(t, nil, "--account", fixtures.Alice.String(), "create")
	assert.NotNil(t, err, "create without a kind")
}

func TestBalanceAndKinds(t *testing.T) {
	var balance struct {
		Account string `json:"account"`
		Balance string `json:"balance"`
	}
	err := run(t, &balance, "balance", "--owner", fixtures.Bob.String())
	assert.Nil(t, err, "balance error")
	assert.Equal(t, fixtures.Bob.String(), balance.Account, "wrong account")

	var kinds struct {
		Kinds        []interface{} `json:"kinds"`
		Associations []string      `json:"associations"`
	}
	err = run(t, &kinds, "kinds")
	assert.Nil(t, err, "kinds error")
	assert.Equal(t, 25, len(kinds.Kinds), "wrong kind count")
	assert.Equal(t, 26, len(kinds.Associations), "wrong association count")
}
