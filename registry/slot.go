// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

// Authorization - who may write a slot
type Authorization int

// possible authorizations
const (
	// Owner - the owner of the entity
	Owner Authorization = iota
	// OwnerAndParentOwner - the owner of the entity who also owns
	// the entity's current parent
	OwnerAndParentOwner
)

// SlotDefinition - describes a configuration slot
type SlotDefinition struct {
	Name          string
	Schema        Schema
	Composite     bool // keyed by (parent id, id)
	Authorization Authorization
}

// SlotKey - address of a record, Parent only used for composite keys
//
// index 0 is a valid parent, so a composite key with Parent omitted
// addresses the record under parent 0
type SlotKey struct {
	Parent Index `json:"parent"`
	Id     Index `json:"id"`
}

type slotPools struct {
	Records *storage.PoolHandle `prefix:"S"`
}

// Slot - a mutable settings record attached to entities of one kind
type Slot struct {
	log         *logger.L
	name        string
	definition  SlotDefinition
	registry    *Registry
	association *Association
	pools       slotPools
}

// NewSlot - register a slot on a kind
//
// association is required for composite keys and for
// OwnerAndParentOwner, its child kind must be this registry
func (r *Registry) NewSlot(log *logger.L, definition SlotDefinition, association *Association) (*Slot, error) {
	if "" == definition.Name {
		return nil, fault.ErrInvalidSchema
	}
	if _, ok := r.slots[definition.Name]; ok {
		return nil, fault.ErrAlreadyInitialised
	}
	if err := definition.Schema.Validate(); nil != err {
		return nil, err
	}

	needsAssociation := definition.Composite || OwnerAndParentOwner == definition.Authorization
	if needsAssociation && (nil == association || association.child != r) {
		return nil, fault.ErrInvalidSchema
	}

	s := &Slot{
		log:         log,
		name:        r.kind.Name + "." + definition.Name,
		definition:  definition,
		registry:    r,
		association: association,
	}
	if err := r.env.Store.Bind(s.name, &s.pools); nil != err {
		return nil, err
	}
	r.slots[definition.Name] = s
	return s, nil
}

// Name - kind "." slot name
func (s *Slot) Name() string {
	return s.name
}

// Definition - the slot description
func (s *Slot) Definition() SlotDefinition {
	return s.definition
}

// Set - write every field of a record, missing values take their defaults
//
// an existing record is replaced by the newly resolved values so two
// identical calls leave identical state
func (s *Slot) Set(caller account.Account, key SlotKey, values map[string]Value) (Record, error) {
	r := s.registry

	if err := s.definition.Schema.check(values); nil != err {
		return nil, err
	}

	trx, err := r.env.Store.Begin()
	if nil != err {
		return nil, err
	}

	if err := s.authorize(trx, caller, key); nil != err {
		trx.Abort()
		return nil, err
	}

	record := s.resolve(trx, r.env.Clock.Next(), key, values)

	k := s.key(key)
	if trx.Has(s.pools.Records, k) {
		s.log.Debugf("%s: update: %v", s.name, key)
	} else {
		s.log.Debugf("%s: insert: %v", s.name, key)
	}
	trx.Put(s.pools.Records, k, s.definition.Schema.pack(record))

	if err := trx.Commit(); nil != err {
		return nil, err
	}

	s.log.Infof("%s: set: %v by: %s", s.name, key, caller)
	r.env.Events.Send(EventSettingSet, SettingSet{
		Kind:   r.kind.Name,
		Slot:   s.definition.Name,
		Caller: caller,
		Key:    key,
		Record: record,
	})
	return record, nil
}

// Get - the committed record
func (s *Slot) Get(key SlotKey) (Record, error) {
	packed := s.pools.Records.Get(s.key(key))
	if nil == packed {
		return nil, fault.ErrSlotNotFound
	}
	return s.definition.Schema.unpack(packed), nil
}

func (s *Slot) authorize(trx storage.Transaction, caller account.Account, key SlotKey) error {
	r := s.registry

	if !r.existsIn(trx, key.Id) {
		return fault.ErrEntityNotFound
	}

	if s.definition.Composite && !s.association.parent.existsIn(trx, key.Parent) {
		return fault.ErrParentNotFound
	}

	if !r.isOwnerIn(trx, key.Id, caller) {
		return fault.ErrNotOwner
	}

	if OwnerAndParentOwner == s.definition.Authorization {
		parentId, ok := s.association.parentIn(trx, key.Id)
		if !ok {
			return fault.ErrNoParent
		}
		if !s.association.parent.isOwnerIn(trx, parentId, caller) {
			return fault.ErrNotOwnedByParent
		}
	}
	return nil
}

// fill every field from the given values or its default
func (s *Slot) resolve(trx storage.Transaction, position chain.Position, key SlotKey, values map[string]Value) Record {
	record := make(Record, len(s.definition.Schema))
	for _, f := range s.definition.Schema {
		if v, ok := values[f.Name]; ok {
			record[f.Name] = v
			continue
		}

		d := f.Default
		switch {
		case d.FromBlock:
			record[f.Name] = NumberValue(position.Block + d.BlockOffset)
		case "" != d.Slot:
			record[f.Name] = s.sibling(trx, key, d)
		default:
			record[f.Name] = d.Value
		}
	}
	return record
}

// a field of another slot of the same entity, else the fallback
func (s *Slot) sibling(trx storage.Transaction, key SlotKey, d Default) Value {
	other, ok := s.registry.slots[d.Slot]
	if !ok || other == s {
		return d.Value
	}
	packed := trx.Get(other.pools.Records, other.key(key))
	if nil == packed {
		return d.Value
	}
	v, ok := other.definition.Schema.unpack(packed)[d.Field]
	if !ok || v.Kind != d.Value.Kind {
		return d.Value
	}
	return v
}

func (s *Slot) key(key SlotKey) []byte {
	if !s.definition.Composite {
		return key.Id.Bytes()
	}
	return append(key.Parent.Bytes(), key.Id.Bytes()...)
}
