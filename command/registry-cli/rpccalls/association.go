// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/association"
)

// AssignData - which child to attach to which parent
type AssignData struct {
	Child    string
	Parent   string
	ChildId  registry.Index
	ParentId registry.Index
}

// Assign - attach a child entity to a parent entity
func (client *Client) Assign(caller account.Account, data *AssignData) error {
	arguments := association.AssignArguments{
		Child:    data.Child,
		Parent:   data.Parent,
		Caller:   &caller,
		ChildId:  data.ChildId,
		ParentId: data.ParentId,
	}
	var reply association.AssignReply
	return client.call("Association.Assign", &arguments, &reply)
}

// Parent - the parent of a child entity
func (client *Client) Parent(child string, parent string, childId registry.Index) (*association.ParentReply, error) {
	arguments := association.ParentArguments{
		Child:   child,
		Parent:  parent,
		ChildId: childId,
	}
	var reply association.ParentReply
	if err := client.call("Association.Parent", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Children - the children recorded for a parent entity
func (client *Client) Children(child string, parent string, parentId registry.Index) (*association.ChildrenReply, error) {
	arguments := association.ChildrenArguments{
		Child:    child,
		Parent:   parent,
		ParentId: parentId,
	}
	var reply association.ChildrenReply
	if err := client.call("Association.Children", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
