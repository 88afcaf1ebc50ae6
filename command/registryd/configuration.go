// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/configuration"
	"github.com/datahighway/registryd/rpc/listeners"
	"github.com/datahighway/registryd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory    = "data"
	defaultDataHighwayDatabase = chain.DataHighway + ".leveldb"
	defaultTestingDatabase     = chain.Testing + ".leveldb"
	defaultLocalDatabase       = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "registryd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients         = 10
	defaultRPCCertificateFile = "rpc.crt"
	defaultRPCPrivateKeyFile  = "rpc.key"
	defaultBlockInterval      = 6 // seconds

	defaultExistentialDeposit = 1
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type BlockType struct {
	Interval int `gluamapper:"interval" json:"interval"`
}

// Endowment - balance credited at genesis
type Endowment struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount,string"`
}

type Configuration struct {
	DataDirectory      string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile            string                     `gluamapper:"pidfile" json:"pidfile"`
	Chain              string                     `gluamapper:"chain" json:"chain"`
	Database           DatabaseType               `gluamapper:"database" json:"database"`
	ClientRPC          listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Block              BlockType                  `gluamapper:"block" json:"block"`
	LegacyAssociation  bool                       `gluamapper:"legacy_association" json:"legacy_association"`
	ExistentialDeposit uint64                     `gluamapper:"existential_deposit" json:"existential_deposit,string"`
	Endowments         []Endowment                `gluamapper:"endowments" json:"endowments"`
	Logging            logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the mapper updates maps in place
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{

		DataDirectory:      defaultDataDirectory,
		PidFile:            "", // no PidFile by default
		Chain:              chain.DataHighway,
		ExistentialDeposit: defaultExistentialDeposit,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDataHighwayDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultRPCCertificateFile,
			PrivateKey:         defaultRPCPrivateKeyFile,
		},

		Block: BlockType{
			Interval: defaultBlockInterval,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultDataHighwayDatabase {
		switch options.Chain {
		case chain.DataHighway:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if options.Block.Interval <= 0 {
		return nil, fmt.Errorf("Block: interval: %d must be positive", options.Block.Interval)
	}
	if 0 == options.ExistentialDeposit {
		return nil, fmt.Errorf("Existential deposit must be positive")
	}

	// endowment accounts must decode on the selected chain
	account.SetTesting(chain.IsTesting(options.Chain))
	for i, e := range options.Endowments {
		if _, err := account.FromBase58(e.Account); nil != err {
			return nil, fmt.Errorf("Endowment[%d]: account: %q error: %s", i, e.Account, err)
		}
		if e.Amount < options.ExistentialDeposit {
			return nil, fmt.Errorf("Endowment[%d]: amount: %d below existential deposit: %d", i, e.Amount, options.ExistentialDeposit)
		}
	}

	listen, err := util.CanonicalListen(options.ClientRPC.Listen)
	if nil != err {
		return nil, fmt.Errorf("Listen: %v error: %s", options.ClientRPC.Listen, err)
	}
	options.ClientRPC.Listen = listen

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// required absolute paths, existence is checked when the
	// listener loads them
	for _, f := range []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	} {
		if "" == *f {
			return nil, fmt.Errorf("Client RPC: certificate and private key are required")
		}
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// done
	return options, nil
}
