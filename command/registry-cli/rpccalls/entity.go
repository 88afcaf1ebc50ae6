// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/entity"
)

// Create - a new entity owned by the caller
func (client *Client) Create(kind string, caller account.Account) (*entity.CreateReply, error) {
	arguments := entity.CreateArguments{
		Kind:   kind,
		Caller: &caller,
	}
	var reply entity.CreateReply
	if err := client.call("Entity.Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Transfer - give an entity to another account
func (client *Client) Transfer(kind string, caller account.Account, to account.Account, id registry.Index) error {
	arguments := entity.TransferArguments{
		Kind:   kind,
		Caller: &caller,
		To:     &to,
		Id:     id,
	}
	var reply entity.TransferReply
	return client.call("Entity.Transfer", &arguments, &reply)
}

// Entity - committed state of one entity
func (client *Client) Entity(kind string, id registry.Index) (*entity.GetReply, error) {
	arguments := entity.GetArguments{
		Kind: kind,
		Id:   id,
	}
	var reply entity.GetReply
	if err := client.call("Entity.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - entities of a kind from start
func (client *Client) List(kind string, start registry.Index, count int) (*entity.ListReply, error) {
	arguments := entity.ListArguments{
		Kind:  kind,
		Start: start,
		Count: count,
	}
	var reply entity.ListReply
	if err := client.call("Entity.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - ids of a kind owned by an account
func (client *Client) Owned(kind string, owner account.Account) (*entity.OwnedReply, error) {
	arguments := entity.OwnedArguments{
		Kind:  kind,
		Owner: &owner,
	}
	var reply entity.OwnedReply
	if err := client.call("Entity.Owned", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
