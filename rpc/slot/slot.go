// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/ratelimit"
)

const (
	rateLimitSlot = 200
	rateBurstSlot = 100
)

// Slot - type for the RPC
type Slot struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Runtime *pallet.Runtime
}

func New(log *logger.L, rt *pallet.Runtime) *Slot {
	return &Slot{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSlot, rateBurstSlot),
		Runtime: rt,
	}
}

// SetArguments - omitted values take the field defaults
type SetArguments struct {
	Kind   string                    `json:"kind"`
	Slot   string                    `json:"slot"`
	Caller *account.Account          `json:"caller"`
	Key    registry.SlotKey          `json:"key"`
	Values map[string]registry.Value `json:"values"`
}

// SetReply - the record as stored
type SetReply struct {
	Record registry.Record `json:"record"`
}

// Set - write a configuration record
func (slot *Slot) Set(arguments *SetArguments, reply *SetReply) error {

	if err := ratelimit.Limit(slot.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}

	slot.Log.Infof("Slot.Set: %+v", arguments)

	s, err := slot.Runtime.Slot(arguments.Kind, arguments.Slot)
	if nil != err {
		return err
	}

	record, err := s.Set(*arguments.Caller, arguments.Key, arguments.Values)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Kind string           `json:"kind"`
	Slot string           `json:"slot"`
	Key  registry.SlotKey `json:"key"`
}

// GetReply - result of get RPC
type GetReply struct {
	Record registry.Record `json:"record"`
}

// Get - read a configuration record
func (slot *Slot) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(slot.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	s, err := slot.Runtime.Slot(arguments.Kind, arguments.Slot)
	if nil != err {
		return err
	}

	record, err := s.Get(arguments.Key)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}
