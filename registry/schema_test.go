// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/registry"
)

func TestSchemaValidate(t *testing.T) {
	number := registry.Literal(registry.NumberValue(0))
	tests := []struct {
		schema registry.Schema
		err    error
	}{
		{registry.Schema{{Name: "a", Kind: registry.Number, Default: number}}, nil},
		{registry.Schema{{Name: "a", Kind: registry.Number, Default: registry.CurrentBlock(5)}}, nil},
		{registry.Schema{{Name: "a", Kind: registry.Bytes, Default: registry.FromSlot("s", "b", registry.TextValue("x"))}}, nil},
		{registry.Schema{}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "", Kind: registry.Number, Default: number}}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "a", Kind: registry.Number, Default: number}, {Name: "a", Kind: registry.Number, Default: number}}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "a", Kind: registry.FieldKind(9), Default: number}}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "a", Kind: registry.Flag, Default: number}}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "a", Kind: registry.Bytes, Default: registry.Default{Value: registry.TextValue(""), FromBlock: true}}}, fault.ErrInvalidSchema},
		{registry.Schema{{Name: "a", Kind: registry.Number, Default: registry.Default{Value: registry.NumberValue(0), Slot: "s"}}}, fault.ErrInvalidSchema},
	}

	for i, test := range tests {
		assert.Equal(t, test.err, test.schema.Validate(), "%d: wrong validation result", i)
	}
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		value registry.Value
		json  string
	}{
		{registry.NumberValue(18446744073709551615), "18446744073709551615"},
		{registry.NumberValue(0), "0"},
		{registry.TextValue("eu868"), "\"eu868\""},
		{registry.FlagValue(true), "true"},
		{registry.FlagValue(false), "false"},
	}

	for i, test := range tests {
		buffer, err := json.Marshal(test.value)
		assert.Nil(t, err, "%d: marshal error", i)
		assert.Equal(t, test.json, string(buffer), "%d: wrong JSON", i)

		var v registry.Value
		err = json.Unmarshal([]byte(test.json), &v)
		assert.Nil(t, err, "%d: unmarshal error", i)
		assert.True(t, test.value.Equal(v), "%d: wrong value: %v", i, v)
	}
}

func TestValueJSONRejects(t *testing.T) {
	for _, s := range []string{"-1", "1.5", "null", "[1]", "{}"} {
		var v registry.Value
		assert.Equal(t, fault.ErrFieldKind, json.Unmarshal([]byte(s), &v), "accepted: %s", s)
	}

	_, err := json.Marshal(registry.Value{})
	assert.NotNil(t, err, "kindless value marshalled")
}

func TestRecordJSON(t *testing.T) {
	values := map[string]registry.Value{}
	err := json.Unmarshal([]byte(`{"enabled":false,"band":"as923","channels":8}`), &values)
	assert.Nil(t, err, "unmarshal error")

	expected := registry.Record{
		"enabled":  registry.FlagValue(false),
		"band":     registry.TextValue("as923"),
		"channels": registry.NumberValue(8),
	}
	assert.True(t, expected.Equal(values), "wrong record: %v", values)
}

func TestRecordEqual(t *testing.T) {
	a := registry.Record{"x": registry.NumberValue(1), "y": registry.BytesValue(nil)}
	b := registry.Record{"x": registry.NumberValue(1), "y": registry.BytesValue([]byte{})}
	c := registry.Record{"x": registry.NumberValue(2), "y": registry.BytesValue(nil)}
	d := registry.Record{"x": registry.NumberValue(1)}
	e := registry.Record{"x": registry.FlagValue(true), "y": registry.BytesValue(nil)}

	assert.True(t, a.Equal(b), "nil and empty bytes differ")
	assert.False(t, a.Equal(c), "different numbers equal")
	assert.False(t, a.Equal(d), "different sizes equal")
	assert.False(t, a.Equal(e), "different kinds equal")
}
