// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"github.com/datahighway/registryd/account"
)

// event names
const (
	EventCreated     = "created"
	EventTransferred = "transferred"
	EventPriceSet    = "price_set"
	EventSold        = "sold"
	EventAssigned    = "assigned"
	EventSettingSet  = "setting_set"
)

// Sink - receives events after the change is committed
type Sink interface {
	Send(command string, parameters interface{})
}

// Created - a new entity
type Created struct {
	Kind  string          `json:"kind"`
	Owner account.Account `json:"owner"`
	Id    Index           `json:"id"`
}

// Transferred - ownership moved by the owner
type Transferred struct {
	Kind string          `json:"kind"`
	From account.Account `json:"from"`
	To   account.Account `json:"to"`
	Id   Index           `json:"id"`
}

// PriceSet - listing changed, nil price means delisted
type PriceSet struct {
	Kind  string          `json:"kind"`
	Owner account.Account `json:"owner"`
	Id    Index           `json:"id"`
	Price *uint64         `json:"price"`
}

// Sold - ownership bought through the marketplace
type Sold struct {
	Kind  string          `json:"kind"`
	From  account.Account `json:"from"`
	To    account.Account `json:"to"`
	Id    Index           `json:"id"`
	Price uint64          `json:"price"`
}

// Assigned - child attached to a parent
type Assigned struct {
	Child    string          `json:"child"`
	Parent   string          `json:"parent"`
	Caller   account.Account `json:"caller"`
	ChildId  Index           `json:"childId"`
	ParentId Index           `json:"parentId"`
}

// SettingSet - configuration slot written
type SettingSet struct {
	Kind   string          `json:"kind"`
	Slot   string          `json:"slot"`
	Caller account.Account `json:"caller"`
	Key    SlotKey         `json:"key"`
	Record Record          `json:"record"`
}

type discard struct{}

func (discard) Send(string, interface{}) {}
