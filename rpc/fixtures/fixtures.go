// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for RPC tests
package fixtures

import (
	"crypto/tls"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/entropy"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/certificate"
	"github.com/datahighway/registryd/storage"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test accounts
var (
	Alice = account.Account{0xa1}
	Bob   = account.Account{0xb0}
)

// Position - where every call in a test environment executes
var Position = chain.Position{Block: 100, Extrinsic: 0}

// Environment - a runtime on an in-memory store
type Environment struct {
	Store   *storage.Store
	Ledger  *currency.Ledger
	Runtime *pallet.Runtime
	Clock   chain.FixedClock
}

// Close - release the store
func (e *Environment) Close() {
	e.Store.Close()
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// NewEnvironment - the full catalogue with Alice holding 1000 and Bob 500
func NewEnvironment() (*Environment, error) {
	s, err := storage.OpenMemory()
	if nil != err {
		return nil, err
	}

	l, err := currency.NewLedger(logger.New(LogCategory), s, 1)
	if nil != err {
		s.Close()
		return nil, err
	}

	trx, err := s.Begin()
	if nil != err {
		s.Close()
		return nil, err
	}
	_ = l.Deposit(trx, Alice, 1000)
	_ = l.Deposit(trx, Bob, 500)
	if err := trx.Commit(); nil != err {
		s.Close()
		return nil, err
	}

	clock := chain.FixedClock(Position)
	rt, err := pallet.NewRuntime(registry.Environment{
		Store:    s,
		Clock:    clock,
		Entropy:  entropy.CryptoSource{},
		Currency: l,
	}, pallet.DataHighway(), false)
	if nil != err {
		s.Close()
		return nil, err
	}

	return &Environment{
		Store:   s,
		Ledger:  l,
		Runtime: rt,
		Clock:   clock,
	}, nil
}

// CertificateFiles - a new self-signed key pair for 127.0.0.1 in directory
func CertificateFiles(directory string) (string, string, error) {
	cer := filepath.Join(directory, "rpc.crt")
	key := filepath.Join(directory, "rpc.key")
	err := certificate.Generate("testing", cer, key, []string{"127.0.0.1"})
	return cer, key, err
}

// TLSConfiguration - server side TLS from a new key pair in directory
func TLSConfiguration(directory string) (*tls.Config, error) {
	cer, key, err := CertificateFiles(directory)
	if nil != err {
		return nil, err
	}
	tlsConfig, _, err := certificate.Get(logger.New(LogCategory), "testing", cer, key)
	return tlsConfig, err
}
