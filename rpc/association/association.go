// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package association

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
	rateLimitAssociation = 200
	rateBurstAssociation = 100
)

// Association - type for the RPC
type Association struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Runtime *pallet.Runtime
}

func New(log *logger.L, rt *pallet.Runtime) *Association {
	return &Association{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAssociation, rateBurstAssociation),
		Runtime: rt,
	}
}

// AssignArguments - arguments for RPC
type AssignArguments struct {
	Child    string           `json:"child"`
	Parent   string           `json:"parent"`
	Caller   *account.Account `json:"caller"`
	ChildId  registry.Index   `json:"childId,string"`
	ParentId registry.Index   `json:"parentId,string"`
}

// AssignReply - result of assign RPC
type AssignReply struct{}

// Assign - attach a child entity to a parent entity
func (association *Association) Assign(arguments *AssignArguments, reply *AssignReply) error {

	if err := ratelimit.Limit(association.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}

	association.Log.Infof("Association.Assign: %+v", arguments)

	a, err := association.Runtime.Association(arguments.Child, arguments.Parent)
	if nil != err {
		return err
	}
	return a.Assign(*arguments.Caller, arguments.ChildId, arguments.ParentId)
}

// ParentArguments - arguments for RPC
type ParentArguments struct {
	Child   string         `json:"child"`
	Parent  string         `json:"parent"`
	ChildId registry.Index `json:"childId,string"`
}

// ParentReply - result of parent RPC
type ParentReply struct {
	ParentId registry.Index `json:"parentId,string"`
}

// Parent - current parent of a child
func (association *Association) Parent(arguments *ParentArguments, reply *ParentReply) error {

	if err := ratelimit.Limit(association.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, err := association.Runtime.Association(arguments.Child, arguments.Parent)
	if nil != err {
		return err
	}

	parentId, ok := a.ParentOf(arguments.ChildId)
	if !ok {
		return fault.ErrNoParent
	}
	reply.ParentId = parentId
	return nil
}

// ChildrenArguments - arguments for RPC
type ChildrenArguments struct {
	Child    string         `json:"child"`
	Parent   string         `json:"parent"`
	ParentId registry.Index `json:"parentId,string"`
}

// ChildrenReply - result of children RPC
type ChildrenReply struct {
	ChildIds []registry.Index `json:"childIds"`
}

// Children - children of a parent in assignment order
func (association *Association) Children(arguments *ChildrenArguments, reply *ChildrenReply) error {

	if err := ratelimit.Limit(association.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, err := association.Runtime.Association(arguments.Child, arguments.Parent)
	if nil != err {
		return err
	}
	reply.ChildIds = a.ChildrenOf(arguments.ParentId)
	return nil
}
