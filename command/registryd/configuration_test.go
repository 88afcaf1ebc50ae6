// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/account"
)

// text form of an account on the test chains
func testAccount(b byte) string {
	account.SetTesting(true)
	defer account.SetTesting(false)
	return account.Account{b}.String()
}

func TestGetConfiguration(t *testing.T) {
	alice := testAccount(0xa1)
	content := fmt.Sprintf(`
local M = {}
M.data_directory = "."
M.pidfile = "registryd.pid"
M.chain = "Local"
M.legacy_association = true
M.existential_deposit = 5
M.endowments = {
    { account = "%s", amount = 1000 },
}
M.client_rpc = {
    maximum_connections = 7,
    listen = { "127.0.0.1:2130", "[0:0::1]:2130", "*:2131" },
    certificate = "keys/server.crt",
    private_key = "/etc/registryd/server.key",
    rate_limit = 50,
    rate_burst = 100,
}
M.block = { interval = 3 }
M.logging = {
    size = 4096,
    count = 2,
    levels = { DEFAULT = "info", rpc = "debug" },
}
return M
`, alice)
	dir, fileName := writeConfiguration(t, content)
	defer os.RemoveAll(dir)
	defer account.SetTesting(false)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong configuration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "wrong data directory")
	assert.Equal(t, "local", c.Chain, "chain not lower cased")
	assert.Equal(t, filepath.Join(dir, "registryd.pid"), c.PidFile, "pid file not absolute")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultLocalDatabase), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "wrong log file")
	assert.Equal(t, 4096, c.Logging.Size, "wrong log size")
	assert.Equal(t, "debug", c.Logging.Levels["rpc"], "wrong rpc level")
	assert.True(t, c.LegacyAssociation, "legacy flag not read")
	assert.Equal(t, uint64(5), c.ExistentialDeposit, "wrong existential deposit")
	assert.Equal(t, []Endowment{{Account: alice, Amount: 1000}}, c.Endowments, "wrong endowments")
	assert.Equal(t, uint64(7), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130", "*:2131"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, "keys", "server.crt"), c.ClientRPC.Certificate, "certificate not absolute")
	assert.Equal(t, "/etc/registryd/server.key", c.ClientRPC.PrivateKey, "absolute key path changed")
	assert.Equal(t, float64(50), c.ClientRPC.RateLimit, "wrong rate limit")
	assert.Equal(t, 100, c.ClientRPC.RateBurst, "wrong rate burst")
	assert.Equal(t, 3, c.Block.Interval, "wrong block interval")

	info, err := os.Stat(filepath.Join(dir, defaultLevelDBDirectory))
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database path is not a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong configuration")

	assert.Equal(t, "datahighway", c.Chain, "wrong default chain")
	assert.Equal(t, "", c.PidFile, "pid file should stay blank")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultDataHighwayDatabase), c.Database.Name, "wrong database")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, filepath.Join(dir, defaultRPCCertificateFile), c.ClientRPC.Certificate, "wrong default certificate")
	assert.Equal(t, filepath.Join(dir, defaultRPCPrivateKeyFile), c.ClientRPC.PrivateKey, "wrong default private key")
	assert.Equal(t, defaultBlockInterval, c.Block.Interval, "wrong block interval")
	assert.Equal(t, uint64(defaultExistentialDeposit), c.ExistentialDeposit, "wrong existential deposit")
	assert.False(t, c.LegacyAssociation, "legacy is not the default")
}

func TestGetConfigurationErrors(t *testing.T) {
	alice := testAccount(0xa1)

	cases := []struct {
		name    string
		content string
	}{
		{"blank data directory", `return { data_directory = "" }`},
		{"home data directory", `return { data_directory = "~" }`},
		{"missing data directory", `return { data_directory = "/no/such/registryd/directory" }`},
		{"unknown chain", `return { data_directory = ".", chain = "bitmark" }`},
		{"zero interval", `return { data_directory = ".", block = { interval = 0 } }`},
		{"zero existential deposit", `return { data_directory = ".", existential_deposit = 0 }`},
		{"database path", `return { data_directory = ".", database = { name = "sub/db.leveldb" } }`},
		{"bad endowment account", `return { data_directory = ".", chain = "local", endowments = { { account = "nobody", amount = 10 } } }`},
		{"live chain test account", fmt.Sprintf(`return { data_directory = ".", endowments = { { account = "%s", amount = 10 } } }`, alice)},
		{"endowment below deposit", fmt.Sprintf(`return { data_directory = ".", chain = "local", existential_deposit = 20, endowments = { { account = "%s", amount = 10 } } }`, alice)},
		{"bad listen address", `return { data_directory = ".", client_rpc = { listen = { "localhost:2130" } } }`},
		{"bad listen port", `return { data_directory = ".", client_rpc = { listen = { "127.0.0.1:0" } } }`},
		{"blank certificate", `return { data_directory = ".", client_rpc = { certificate = "" } }`},
		{"blank private key", `return { data_directory = ".", client_rpc = { private_key = "" } }`},
		{"lua syntax", `return {`},
		{"not a table", `return 42`},
	}

	for _, c := range cases {
		dir, fileName := writeConfiguration(t, c.content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, c.name)
		os.RemoveAll(dir)
	}
	account.SetTesting(false)
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("registryd.conf.sample")
	assert.Nil(t, err, "read sample")

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)
	defer account.SetTesting(false)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "sample does not parse")
	assert.Equal(t, "local", c.Chain, "wrong chain")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, "info", c.Logging.Levels["file-watcher"], "wrong watcher level")
}
