// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/counter"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/rpc/certificate"
	"github.com/datahighway/registryd/rpc/listeners"
	"github.com/datahighway/registryd/rpc/server"
)

// Services - what the RPC services operate on
type Services struct {
	Chain    string
	Clock    chain.Source
	Runtime  *pallet.Runtime
	Currency currency.Currency
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	server   *server.Server
	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(configuration *listeners.RPCConfiguration, services Services, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Get(log, "client_rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	s := server.Create(log, version, services.Chain, services.Clock, services.Runtime, services.Currency, &connectionCountRPC)
	if configuration.RateLimit > 0 && configuration.RateBurst > 0 {
		s.Reconfigure(configuration.RateLimit, configuration.RateBurst)
	}

	rpcListener, err := listeners.NewRPC(configuration, log, &connectionCountRPC, s.Server, tlsConfig)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	globalData.server = s
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	_ = globalData.listener.Close()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Reconfigure - change the rate limits of a running server
func Reconfigure(limit float64, burst int) error {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if limit <= 0 || burst <= 0 {
		globalData.log.Warnf("ignore invalid rate limit: %g  burst: %d", limit, burst)
		return fault.ErrInvalidCount
	}

	globalData.server.Reconfigure(limit, burst)
	return nil
}

// Connections - number of open client connections
func Connections() uint64 {
	return connectionCountRPC.Uint64()
}
