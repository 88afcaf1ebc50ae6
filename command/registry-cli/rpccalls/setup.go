// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON-RPC calls to a registryd
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a registryd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	// the daemon certificate is self-signed
	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the registryd connection
func (client *Client) Close() {
	client.client.Close()
}

// call a method showing the request and reply when verbose
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.trace(method, "Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		client.trace(method, "Error", err.Error())
		return err
	}

	client.trace(method, "Reply", reply)
	return nil
}

// write one side of a call as indented JSON
func (client *Client) trace(method string, direction string, message interface{}) {
	if !client.verbose || nil == client.handle {
		return
	}
	fmt.Fprintf(client.handle, "%s %s:\n", method, direction)
	encoder := json.NewEncoder(client.handle)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(message); nil != err {
		fmt.Fprintf(client.handle, "  (%s)\n", err)
	}
}
