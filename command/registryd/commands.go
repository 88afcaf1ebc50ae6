// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/rand"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/rpc/certificate"
)

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-account", "account":
		testnet := len(arguments) > 0 && "test" == arguments[0]
		if err := generateAccount(os.Stdout, rand.Reader, testnet); nil != err {
			exitwithstatus.Message("generate account error: %s", err)
		}

	case "gen-rpc-cert", "rpc":
		directory := "."
		if len(arguments) > 0 {
			directory = arguments[0]
			arguments = arguments[1:]
		}
		if err := generateRPCCertificate(os.Stdout, directory, arguments); nil != err {
			exitwithstatus.Message("generate RPC certificate error: %s", err)
		}

	case "kinds", "k":
		if err := printKinds(os.Stdout, pallet.DataHighway()); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-account [test]         (account)- create a new account key pair\n")
		fmt.Printf("                                        for the test chains if \"test\" is given\n")
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+defaultRPCPrivateKeyFile)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+defaultRPCCertificateFile)
		fmt.Printf("                                        valid for the IPs if any are given\n")
		fmt.Printf("\n")

		fmt.Printf("  kinds                      (k)      - list entity kinds, associations and slots\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to the daemon
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

type generatedAccount struct {
	Account string `json:"account"`
	Seed    string `json:"seed"`
	Testnet bool   `json:"testnet"`
}

// create a key pair and print its account and private seed
func generateAccount(w io.Writer, random io.Reader, testnet bool) error {
	keyPair, err := account.NewKeyPair(random)
	if nil != err {
		return err
	}

	account.SetTesting(testnet)
	defer account.SetTesting(false)

	return printJSON(w, generatedAccount{
		Account: keyPair.Account.String(),
		Seed:    keyPair.Seed(),
		Testnet: testnet,
	})
}

type generatedCertificate struct {
	Certificate string `json:"certificate"`
	PrivateKey  string `json:"private_key"`
	Fingerprint string `json:"fingerprint"`
}

// create the client RPC key pair in a directory and print its fingerprint
func generateRPCCertificate(w io.Writer, directory string, addresses []string) error {
	hosts := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if "" != a {
			hosts = append(hosts, a)
		}
	}

	certificateFileName := filepath.Join(directory, defaultRPCCertificateFile)
	keyFileName := filepath.Join(directory, defaultRPCPrivateKeyFile)

	err := certificate.Generate("rpc", certificateFileName, keyFileName, hosts)
	if nil != err {
		return err
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		return err
	}
	fingerprint := certificate.Fingerprint(keyPair.Certificate[0])

	return printJSON(w, generatedCertificate{
		Certificate: certificateFileName,
		PrivateKey:  keyFileName,
		Fingerprint: hex.EncodeToString(fingerprint[:]),
	})
}

type catalogueSummary struct {
	Kinds        interface{}         `json:"kinds"`
	Associations interface{}         `json:"associations"`
	Slots        map[string][]string `json:"slots"`
}

func printKinds(w io.Writer, catalogue pallet.Catalogue) error {
	slots := make(map[string][]string)
	for _, s := range catalogue.Slots {
		slots[s.Kind] = append(slots[s.Kind], s.Definition.Name)
	}
	return printJSON(w, catalogueSummary{
		Kinds:        catalogue.Kinds,
		Associations: catalogue.Associations,
		Slots:        slots,
	})
}

func printJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
