// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/ratelimit"
)

// Entity
// ------

const (
	MaximumListCount = 100
	rateLimitEntity  = 200
	rateBurstEntity  = 100
)

// Entity - type for the RPC
type Entity struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Runtime *pallet.Runtime
}

func New(log *logger.L, rt *pallet.Runtime) *Entity {
	return &Entity{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEntity, rateBurstEntity),
		Runtime: rt,
	}
}

// Entity create
// -------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Kind   string           `json:"kind"`
	Caller *account.Account `json:"caller"`
}

// CreateReply - result of create RPC
type CreateReply struct {
	Id registry.Index `json:"id,string"`
}

// Create - allocate a new entity owned by the caller
func (entity *Entity) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(entity.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}

	entity.Log.Infof("Entity.Create: %+v", arguments)

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}

	id, err := r.Create(*arguments.Caller)
	if nil != err {
		return err
	}
	reply.Id = id
	return nil
}

// Entity transfer
// ---------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Kind   string           `json:"kind"`
	Caller *account.Account `json:"caller"`
	To     *account.Account `json:"to"`
	Id     registry.Index   `json:"id,string"`
}

// TransferReply - result of transfer RPC
type TransferReply struct{}

// Transfer - give an entity to another account
func (entity *Entity) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(entity.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller || nil == arguments.To {
		return fault.ErrMissingParameters
	}

	entity.Log.Infof("Entity.Transfer: %+v", arguments)

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}

	return r.Transfer(*arguments.Caller, *arguments.To, arguments.Id)
}

// Entity get
// ----------

// GetArguments - arguments for RPC
type GetArguments struct {
	Kind string         `json:"kind"`
	Id   registry.Index `json:"id,string"`
}

// GetReply - result of get RPC
type GetReply struct {
	Entity *registry.Entity `json:"entity"`
}

// Get - state of one entity
func (entity *Entity) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(entity.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	entity.Log.Debugf("Entity.Get: %+v", arguments)

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}

	e, err := r.Get(arguments.Id)
	if nil != err {
		return err
	}
	reply.Entity = e
	return nil
}

// Entity list
// -----------

// ListArguments - arguments for RPC
type ListArguments struct {
	Kind  string         `json:"kind"`
	Start registry.Index `json:"start,string"`
	Count int            `json:"count"`
}

// ListReply - result of list RPC
type ListReply struct {
	Entities []registry.Entity `json:"entities"`
	Next     registry.Index    `json:"next,string"` // Start value for the next call
}

// List - entities of a kind in index order
func (entity *Entity) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(entity.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	entity.Log.Debugf("Entity.List: %+v", arguments)

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}

	entities, next, err := r.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Entities = entities
	reply.Next = next
	return nil
}

// Entity owned
// ------------

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Kind  string           `json:"kind"`
	Owner *account.Account `json:"owner"`
}

// OwnedReply - result of owned RPC
type OwnedReply struct {
	Ids []registry.Index `json:"ids"`
}

// Owned - indexes of all entities of a kind held by an account
func (entity *Entity) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if err := ratelimit.Limit(entity.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	entity.Log.Debugf("Entity.Owned: %+v", arguments)

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}

	ids, err := r.OwnedBy(*arguments.Owner)
	if nil != err {
		return err
	}
	reply.Ids = ids
	return nil
}

// Entity count
// ------------

// CountArguments - arguments for RPC
type CountArguments struct {
	Kind string `json:"kind"`
}

// CountReply - result of count RPC
type CountReply struct {
	Count registry.Index `json:"count,string"`
}

// Count - number of entities created for a kind
func (entity *Entity) Count(arguments *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(entity.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r, err := entity.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}
	reply.Count = r.Count()
	return nil
}
