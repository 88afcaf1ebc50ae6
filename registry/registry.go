// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/entropy"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

// key of the count record
var countKey = []byte{}

// Kind - describes one entity kind
type Kind struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Maximum     Index  `json:"maximum,string"`
	Marketplace bool   `json:"marketplace"`
}

// Environment - services shared by every kind
type Environment struct {
	Store    *storage.Store
	Clock    chain.Clock
	Entropy  entropy.Source
	Currency currency.Currency
	Events   Sink
}

// Entity - the committed state of one entity
type Entity struct {
	Id          Index               `json:"id"`
	Fingerprint entropy.Fingerprint `json:"fingerprint"`
	Owner       account.Account     `json:"owner"`
	Price       *uint64             `json:"price,omitempty"`
}

type entityPools struct {
	Entities *storage.PoolHandle `prefix:"E"`
	Count    *storage.PoolHandle `prefix:"N"`
	Owners   *storage.PoolHandle `prefix:"O"`
	Prices   *storage.PoolHandle `prefix:"P"`
}

// Registry - entities of a single kind
type Registry struct {
	log   *logger.L
	kind  Kind
	env   Environment
	pools entityPools
	slots map[string]*Slot
}

// New - create the registry for a kind
func New(log *logger.L, env Environment, kind Kind) (*Registry, error) {
	if "" == kind.Name || 0 == kind.Maximum {
		return nil, fault.ErrInvalidKind
	}
	if nil == env.Store || nil == env.Clock || nil == env.Entropy {
		return nil, fault.ErrMissingParameters
	}
	if kind.Marketplace && nil == env.Currency {
		return nil, fault.ErrMissingParameters
	}
	if nil == env.Events {
		env.Events = discard{}
	}

	r := &Registry{
		log:   log,
		kind:  kind,
		env:   env,
		slots: make(map[string]*Slot),
	}
	if err := env.Store.Bind(kind.Name, &r.pools); nil != err {
		return nil, err
	}
	return r, nil
}

// Kind - the description of this registry
func (r *Registry) Kind() Kind {
	return r.kind
}

// Create - allocate the next index owned by the caller
func (r *Registry) Create(caller account.Account) (Index, error) {
	trx, err := r.env.Store.Begin()
	if nil != err {
		return 0, err
	}

	count, _ := trx.GetN(r.pools.Count, countKey)
	id := Index(count)
	if id == r.kind.Maximum {
		trx.Abort()
		return 0, fault.ErrCounterOverflow
	}

	position := r.env.Clock.Next()
	seed, err := r.env.Entropy.Random([]byte(r.kind.Name))
	if nil != err {
		trx.Abort()
		return 0, err
	}
	fingerprint := entropy.NewFingerprint(seed, caller, position)

	trx.Put(r.pools.Entities, id.Bytes(), fingerprint[:])
	trx.PutN(r.pools.Count, countKey, count+1)
	trx.Put(r.pools.Owners, id.Bytes(), caller.Bytes())

	if err := trx.Commit(); nil != err {
		return 0, err
	}

	r.log.Infof("create: %s[%d] owner: %s", r.kind.Name, id, caller)
	r.env.Events.Send(EventCreated, Created{
		Kind:  r.kind.Name,
		Owner: caller,
		Id:    id,
	})
	return id, nil
}

// Transfer - give an entity to another account
func (r *Registry) Transfer(caller account.Account, to account.Account, id Index) error {
	trx, err := r.env.Store.Begin()
	if nil != err {
		return err
	}

	if !r.isOwnerIn(trx, id, caller) {
		trx.Abort()
		return fault.ErrNotOwner
	}

	trx.Put(r.pools.Owners, id.Bytes(), to.Bytes())

	if err := trx.Commit(); nil != err {
		return err
	}

	r.log.Infof("transfer: %s[%d] from: %s to: %s", r.kind.Name, id, caller, to)
	r.env.Events.Send(EventTransferred, Transferred{
		Kind: r.kind.Name,
		From: caller,
		To:   to,
		Id:   id,
	})
	return nil
}

// Exists - true if the entity was created
func (r *Registry) Exists(id Index) bool {
	return r.pools.Entities.Has(id.Bytes())
}

// Get - committed state of an entity
//
// the fingerprint, owner and listing are read under one transaction
// so they always come from the same commit
func (r *Registry) Get(id Index) (*Entity, error) {
	trx, err := r.env.Store.Begin()
	if nil != err {
		return nil, err
	}
	defer trx.Abort()

	buffer := trx.Get(r.pools.Entities, id.Bytes())
	if nil == buffer {
		return nil, fault.ErrEntityNotFound
	}
	return r.entityIn(trx, id, buffer)
}

// OwnerOf - the owner, false if the entity has none
func (r *Registry) OwnerOf(id Index) (account.Account, bool) {
	return decodeOwner(r.pools.Owners.Get(id.Bytes()))
}

// IsOwner - absent entities are owned by nobody
func (r *Registry) IsOwner(id Index, who account.Account) bool {
	owner, ok := r.OwnerOf(id)
	return ok && owner == who
}

// Count - number of entities created
func (r *Registry) Count() Index {
	n, _ := r.pools.Count.GetN(countKey)
	return Index(n)
}

// List - up to count entities starting at an index
//
// also returns the index to continue from
func (r *Registry) List(start Index, count int) ([]Entity, Index, error) {
	trx, err := r.env.Store.Begin()
	if nil != err {
		return nil, start, err
	}
	defer trx.Abort()

	elements, err := r.pools.Entities.NewFetchCursor().Seek(start.Bytes()).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	entities := make([]Entity, 0, len(elements))
	next := start
	for _, element := range elements {
		id, err := IndexFromBytes(element.Key)
		if nil != err {
			return nil, start, err
		}
		e, err := r.entityIn(trx, id, element.Value)
		if nil != err {
			return nil, start, err
		}
		entities = append(entities, *e)
		next = id + 1
	}
	return entities, next, nil
}

// OwnedBy - indexes of all entities of this kind owned by an account
func (r *Registry) OwnedBy(owner account.Account) ([]Index, error) {
	owned := make([]Index, 0)
	err := r.pools.Owners.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if a, ok := decodeOwner(value); ok && a == owner {
			id, err := IndexFromBytes(key)
			if nil != err {
				return err
			}
			owned = append(owned, id)
		}
		return nil
	})
	return owned, err
}

// Slot - a configuration slot registered on this kind
func (r *Registry) Slot(name string) (*Slot, bool) {
	s, ok := r.slots[name]
	return s, ok
}

// SlotNames - sorted names of all registered slots
func (r *Registry) SlotNames() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) entityIn(trx storage.Transaction, id Index, fingerprint []byte) (*Entity, error) {
	f, err := entropy.FingerprintFromBytes(fingerprint)
	if nil != err {
		fault.Panicf("%s[%d] corrupt fingerprint: %x", r.kind.Name, id, fingerprint)
	}
	e := &Entity{
		Id:          id,
		Fingerprint: f,
	}
	if owner, ok := r.ownerIn(trx, id); ok {
		e.Owner = owner
	}
	if price, ok := trx.GetN(r.pools.Prices, id.Bytes()); ok {
		e.Price = &price
	}
	return e, nil
}

// transaction level lookups

func (r *Registry) existsIn(trx storage.Transaction, id Index) bool {
	return trx.Has(r.pools.Entities, id.Bytes())
}

func (r *Registry) ownerIn(trx storage.Transaction, id Index) (account.Account, bool) {
	return decodeOwner(trx.Get(r.pools.Owners, id.Bytes()))
}

func (r *Registry) isOwnerIn(trx storage.Transaction, id Index, who account.Account) bool {
	owner, ok := r.ownerIn(trx, id)
	return ok && owner == who
}

func decodeOwner(buffer []byte) (account.Account, bool) {
	if nil == buffer {
		return account.Account{}, false
	}
	a, err := account.FromBytes(buffer)
	if nil != err {
		fault.Panicf("corrupt owner record: %x", buffer)
	}
	return a, true
}
