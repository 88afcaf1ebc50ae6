// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/fixtures"
	"github.com/datahighway/registryd/rpc/slot"
)

func TestSlotSetAndGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env, err := fixtures.NewEnvironment()
	if nil != err {
		t.Fatalf("environment error: %s", err)
	}
	defer env.Close()

	rates, _ := env.Runtime.Registry("exchange_rates")
	id, _ := rates.Create(fixtures.Alice)

	s := slot.New(logger.New(fixtures.LogCategory), env.Runtime)

	// values as a client would send them
	var values map[string]registry.Value
	err = json.Unmarshal([]byte(`{"dot_rate": 120, "decimals_after_point": 4}`), &values)
	assert.Nil(t, err, "wrong values JSON")

	var reply slot.SetReply
	err = s.Set(&slot.SetArguments{
		Kind:   "exchange_rates",
		Slot:   "config",
		Caller: &fixtures.Alice,
		Key:    registry.SlotKey{Id: id},
		Values: values,
	}, &reply)
	assert.Nil(t, err, "wrong Set")

	expected := registry.Record{
		"hbtc_rate":            registry.NumberValue(200000),
		"dot_rate":             registry.NumberValue(120),
		"iota_rate":            registry.NumberValue(5),
		"fil_rate":             registry.NumberValue(200),
		"decimals_after_point": registry.NumberValue(4),
	}
	assert.True(t, expected.Equal(reply.Record), "wrong set record: %v", reply.Record)

	var stored slot.GetReply
	err = s.Get(&slot.GetArguments{Kind: "exchange_rates", Slot: "config", Key: registry.SlotKey{Id: id}}, &stored)
	assert.Nil(t, err, "wrong Get")
	assert.True(t, expected.Equal(stored.Record), "wrong stored record: %v", stored.Record)

	buffer, err := json.Marshal(stored)
	assert.Nil(t, err, "wrong reply JSON")
	assert.Contains(t, string(buffer), `"hbtc_rate":200000`, "wrong number encoding")
}

func TestSlotErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	env, err := fixtures.NewEnvironment()
	if nil != err {
		t.Fatalf("environment error: %s", err)
	}
	defer env.Close()

	sessions, _ := env.Runtime.Registry("roaming_sessions")
	id, _ := sessions.Create(fixtures.Alice)

	s := slot.New(logger.New(fixtures.LogCategory), env.Runtime)

	err = s.Set(&slot.SetArguments{Kind: "roaming_sessions", Slot: "join_request"}, &slot.SetReply{})
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong missing caller")

	err = s.Set(&slot.SetArguments{Kind: "roaming_sessions", Slot: "hand_shake", Caller: &fixtures.Alice}, &slot.SetReply{})
	assert.Equal(t, fault.ErrInvalidSlot, err, "wrong unknown slot")

	err = s.Set(&slot.SetArguments{
		Kind:   "roaming_sessions",
		Slot:   "join_request",
		Caller: &fixtures.Bob,
		Key:    registry.SlotKey{Id: id},
	}, &slot.SetReply{})
	assert.Equal(t, fault.ErrNotOwner, err, "wrong non-owner")

	err = s.Get(&slot.GetArguments{Kind: "roaming_sessions", Slot: "join_request", Key: registry.SlotKey{Id: id}}, &slot.GetReply{})
	assert.Equal(t, fault.ErrSlotNotFound, err, "wrong unwritten slot")

	var reply slot.SetReply
	err = s.Set(&slot.SetArguments{
		Kind:   "roaming_sessions",
		Slot:   "join_request",
		Caller: &fixtures.Alice,
		Key:    registry.SlotKey{Id: id},
	}, &reply)
	assert.Nil(t, err, "wrong Set")
	assert.Equal(t, registry.NumberValue(fixtures.Position.Block), reply.Record["join_requested_at_block"], "wrong block default")
}
