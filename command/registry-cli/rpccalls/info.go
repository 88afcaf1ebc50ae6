// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/rpc/balance"
	"github.com/datahighway/registryd/rpc/node"
)

// Balance - free balance of an account
func (client *Client) Balance(a account.Account) (*balance.GetReply, error) {
	arguments := balance.GetArguments{
		Account: &a,
	}
	var reply balance.GetReply
	if err := client.call("Balance.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Info - status of the registryd
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
