// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/background"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/entropy"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/messagebus"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc"
	"github.com/datahighway/registryd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// first block number after a restart
const startBlock = 1

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// account text forms follow the chain
	account.SetTesting(chain.IsTesting(theConfiguration.Chain))

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("legacy association: %v", theConfiguration.LegacyAssociation)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	log.Info("initialise currency")
	ledger, err := currency.NewLedger(logger.New("currency"), store, theConfiguration.ExistentialDeposit)
	if nil != err {
		log.Criticalf("currency initialise error: %s", err)
		exitwithstatus.Message("currency initialise error: %s", err)
	}

	endowed, err := endow(store, ledger, theConfiguration.Endowments)
	if nil != err {
		log.Criticalf("endowment error: %s", err)
		exitwithstatus.Message("endowment error: %s", err)
	}
	log.Infof("endowed: %v  issuance: %d", endowed, ledger.Issuance())

	clock := chain.NewBlockClock(logger.New("clock"), startBlock)

	env := registry.Environment{
		Store:    store,
		Clock:    clock,
		Entropy:  entropy.CryptoSource{},
		Currency: ledger,
		Events:   messagebus.Bus.Broadcast,
	}

	log.Info("initialise runtime")
	runtime, err := pallet.NewRuntime(env, pallet.DataHighway(), theConfiguration.LegacyAssociation)
	if nil != err {
		log.Criticalf("runtime initialise error: %s", err)
		exitwithstatus.Message("runtime initialise error: %s", err)
	}

	// listeners must be registered before any call can commit
	events := &eventLogger{
		log:   logger.New("events"),
		queue: messagebus.Bus.Broadcast.Chan(0),
	}
	defer messagebus.Bus.Broadcast.Release()

	processes := background.Processes{
		clock,
		events,
		&reloader{
			log:   logger.New("reload"),
			queue: messagebus.Bus.Reload.Chan(),
			read:  getConfiguration,
			apply: rpc.Reconfigure,
		},
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), messagebus.Bus.Reload)
	if nil != err {
		log.Warnf("configuration file will not be watched: %s", err)
	} else {
		processes = append(processes, watcher)
	}

	interval := time.Duration(theConfiguration.Block.Interval) * time.Second
	bg := background.Start(processes, interval)
	defer bg.Stop()

	// start up the rpc background processes
	services := rpc.Services{
		Chain:    theConfiguration.Chain,
		Clock:    clock,
		Runtime:  runtime,
		Currency: ledger,
	}
	err = rpc.Initialise(&theConfiguration.ClientRPC, services, version)
	if fault.IsErrNotFound(err) {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s  (create with: %s gen-rpc-cert %s)", err, program, theConfiguration.DataDirectory)
	} else if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
