// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/slot"
)

// SetConfiguration - write a configuration record, missing fields take defaults
func (client *Client) SetConfiguration(kind string, name string, caller account.Account, key registry.SlotKey, values map[string]registry.Value) (*slot.SetReply, error) {
	arguments := slot.SetArguments{
		Kind:   kind,
		Slot:   name,
		Caller: &caller,
		Key:    key,
		Values: values,
	}
	var reply slot.SetReply
	if err := client.call("Slot.Set", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Configuration - read a configuration record
func (client *Client) Configuration(kind string, name string, key registry.SlotKey) (*slot.GetReply, error) {
	arguments := slot.GetArguments{
		Kind: kind,
		Slot: name,
		Key:  key,
	}
	var reply slot.GetReply
	if err := client.call("Slot.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
