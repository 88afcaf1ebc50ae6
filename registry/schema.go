// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gogo/protobuf/proto"

	"github.com/datahighway/registryd/fault"
)

// FieldKind - type of a configuration field
type FieldKind int

// possible field kinds
const (
	Number FieldKind = iota + 1
	Bytes
	Flag
)

// Value - a single field value
//
// JSON form is a number, a string or a boolean according to kind
type Value struct {
	Kind   FieldKind
	Number uint64
	Bytes  []byte
	Flag   bool
}

// NumberValue - a numeric value
func NumberValue(n uint64) Value {
	return Value{Kind: Number, Number: n}
}

// BytesValue - a byte string value
func BytesValue(b []byte) Value {
	return Value{Kind: Bytes, Bytes: b}
}

// TextValue - a byte string value from text
func TextValue(s string) Value {
	return BytesValue([]byte(s))
}

// FlagValue - a boolean value
func FlagValue(f bool) Value {
	return Value{Kind: Flag, Flag: f}
}

// Equal - same kind and content
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case Number:
		return v.Number == other.Number
	case Bytes:
		return bytes.Equal(v.Bytes, other.Bytes)
	case Flag:
		return v.Flag == other.Flag
	}
	return true
}

// MarshalJSON - kind dependent JSON
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Number:
		return []byte(strconv.FormatUint(v.Number, 10)), nil
	case Bytes:
		return json.Marshal(string(v.Bytes))
	case Flag:
		return json.Marshal(v.Flag)
	default:
		return nil, fault.ErrFieldKind
	}
}

// UnmarshalJSON - the JSON type selects the kind
func (v *Value) UnmarshalJSON(s []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(s))
	decoder.UseNumber()

	var item interface{}
	if err := decoder.Decode(&item); nil != err {
		return err
	}

	switch value := item.(type) {
	case json.Number:
		n, err := strconv.ParseUint(value.String(), 10, 64)
		if nil != err {
			return fault.ErrFieldKind
		}
		*v = NumberValue(n)
	case string:
		*v = TextValue(value)
	case bool:
		*v = FlagValue(value)
	default:
		return fault.ErrFieldKind
	}
	return nil
}

// Default - how a field is filled when no value is given
//
// the literal is used unless FromBlock is set (current block plus
// BlockOffset) or Slot names another slot of the same entity whose
// Field is copied when that slot has been written
type Default struct {
	Value       Value
	FromBlock   bool
	BlockOffset uint64
	Slot        string
	Field       string
}

// Literal - default to a fixed value
func Literal(v Value) Default {
	return Default{Value: v}
}

// CurrentBlock - default to the block of the call plus an offset
func CurrentBlock(offset uint64) Default {
	return Default{
		Value:       NumberValue(0),
		FromBlock:   true,
		BlockOffset: offset,
	}
}

// FromSlot - default to a field of another slot, else the fallback
func FromSlot(slot string, field string, fallback Value) Default {
	return Default{
		Value: fallback,
		Slot:  slot,
		Field: field,
	}
}

// Field - one named field of a slot
type Field struct {
	Name    string
	Kind    FieldKind
	Default Default
}

// Schema - ordered fields of a slot
type Schema []Field

// Record - resolved values of every field of a schema
type Record map[string]Value

// Equal - same field names and values
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for name, v := range r {
		if o, ok := other[name]; !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// Validate - names unique and defaults of the field kind
func (s Schema) Validate() error {
	if 0 == len(s) {
		return fault.ErrInvalidSchema
	}
	seen := make(map[string]struct{})
	for _, f := range s {
		if "" == f.Name {
			return fault.ErrInvalidSchema
		}
		if _, ok := seen[f.Name]; ok {
			return fault.ErrInvalidSchema
		}
		seen[f.Name] = struct{}{}

		switch f.Kind {
		case Number, Bytes, Flag:
		default:
			return fault.ErrInvalidSchema
		}
		if f.Default.Value.Kind != f.Kind {
			return fault.ErrInvalidSchema
		}
		if f.Default.FromBlock && Number != f.Kind {
			return fault.ErrInvalidSchema
		}
		if ("" == f.Default.Slot) != ("" == f.Default.Field) {
			return fault.ErrInvalidSchema
		}
	}
	return nil
}

// Field - look up a field by name
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// check the caller supplied values against the schema
func (s Schema) check(values map[string]Value) error {
	for name, v := range values {
		f, ok := s.Field(name)
		if !ok {
			return fault.ErrUnknownField
		}
		if f.Kind != v.Kind {
			return fault.ErrFieldKind
		}
	}
	return nil
}

// pack a record in schema order: varint field count then each value
func (s Schema) pack(record Record) []byte {
	buffer := proto.NewBuffer(nil)
	_ = buffer.EncodeVarint(uint64(len(s)))
	for _, f := range s {
		v := record[f.Name]
		switch f.Kind {
		case Number:
			_ = buffer.EncodeVarint(v.Number)
		case Bytes:
			_ = buffer.EncodeRawBytes(v.Bytes)
		case Flag:
			flag := uint64(0)
			if v.Flag {
				flag = 1
			}
			_ = buffer.EncodeVarint(flag)
		}
	}
	return buffer.Bytes()
}

// unpack a stored record, fields added to the schema after the
// record was written take their zero value
func (s Schema) unpack(packed []byte) Record {
	buffer := proto.NewBuffer(packed)
	n, err := buffer.DecodeVarint()
	fault.PanicIfError("unpack field count", err)

	record := make(Record, len(s))
	for i, f := range s {
		if uint64(i) >= n {
			record[f.Name] = Value{Kind: f.Kind}
			continue
		}
		switch f.Kind {
		case Number:
			x, err := buffer.DecodeVarint()
			fault.PanicIfError("unpack number", err)
			record[f.Name] = NumberValue(x)
		case Bytes:
			b, err := buffer.DecodeRawBytes(true)
			fault.PanicIfError("unpack bytes", err)
			record[f.Name] = BytesValue(b)
		case Flag:
			x, err := buffer.DecodeVarint()
			fault.PanicIfError("unpack flag", err)
			record[f.Name] = FlagValue(0 != x)
		}
	}
	return record
}
