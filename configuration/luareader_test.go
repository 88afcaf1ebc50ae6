// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/configuration"
	"github.com/datahighway/registryd/fault"
)

type endowment struct {
	Account string `gluamapper:"account"`
	Amount  uint64 `gluamapper:"amount"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Legacy        bool              `gluamapper:"legacy_association"`
	Listen        []string          `gluamapper:"listen"`
	RateLimit     float64           `gluamapper:"rate_limit"`
	Endowments    []endowment       `gluamapper:"endowments"`
	Levels        map[string]string `gluamapper:"levels"`
	Source        string            `gluamapper:"source"`
}

const sampleFile = `
local M = {}
M.data_directory = "."
M.chain = "local"
M.legacy_association = true
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.rate_limit = 12.5
M.endowments = {
    { account = "alice", amount = 1000 },
    { account = "bob", amount = 20 },
}
M.levels = { DEFAULT = "info", rpc = "debug" }
M.source = arg[0]
return M
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "registryd.conf", sampleFile)

	var s sample
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, ".", s.DataDirectory, "wrong data directory")
	assert.Equal(t, "local", s.Chain, "wrong chain")
	assert.True(t, s.Legacy, "wrong legacy flag")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.Listen, "wrong listen")
	assert.Equal(t, 12.5, s.RateLimit, "wrong rate limit")
	assert.Equal(t, []endowment{{"alice", 1000}, {"bob", 20}}, s.Endowments, "wrong endowments")
	assert.Equal(t, "debug", s.Levels["rpc"], "wrong rpc level")
	assert.Equal(t, fileName, s.Source, "wrong arg[0]")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "good.conf", sampleFile)

	var s sample
	err = configuration.ParseConfigurationFile(fileName, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong non-pointer")

	n := 5
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong non-struct")

	notTable := writeFile(t, dir, "number.conf", "return 42\n")
	err = configuration.ParseConfigurationFile(notTable, &s)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong non-table")

	broken := writeFile(t, dir, "broken.conf", "return {\n")
	err = configuration.ParseConfigurationFile(broken, &s)
	assert.NotNil(t, err, "wrong syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), &s)
	assert.NotNil(t, err, "wrong missing file")
}
