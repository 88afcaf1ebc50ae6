// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"github.com/bitmark-inc/logger"
	"github.com/gogo/protobuf/proto"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

type associationPools struct {
	Parents  *storage.PoolHandle `prefix:"A"`
	Children *storage.PoolHandle `prefix:"L"`
}

// Association - each child has at most one parent
//
// in legacy mode the historic ordering is kept: the association is
// written before the child is checked and the write survives the
// InvalidChild error, and a re-parented child is never removed from
// its old parent's list
type Association struct {
	log    *logger.L
	name   string
	child  *Registry
	parent *Registry
	legacy bool
	pools  associationPools
}

// NewAssociation - relate two kinds
func NewAssociation(log *logger.L, child *Registry, parent *Registry, legacy bool) (*Association, error) {
	if nil == child || nil == parent {
		return nil, fault.ErrMissingParameters
	}
	a := &Association{
		log:    log,
		name:   AssociationName(child.kind.Name, parent.kind.Name),
		child:  child,
		parent: parent,
		legacy: legacy,
	}
	if err := child.env.Store.Bind(a.name, &a.pools); nil != err {
		return nil, err
	}
	return a, nil
}

// AssociationName - the name of the association of two kinds
func AssociationName(child string, parent string) string {
	return child + "/" + parent
}

// Name - child kind "/" parent kind
func (a *Association) Name() string {
	return a.name
}

// Child - registry of the children
func (a *Association) Child() *Registry {
	return a.child
}

// Parent - registry of the parents
func (a *Association) Parent() *Registry {
	return a.parent
}

// Legacy - true if the historic ordering is in effect
func (a *Association) Legacy() bool {
	return a.legacy
}

// Assign - make parentId the parent of childId
//
// only the owner of the parent may assign, assigning the same pair
// twice fails and assigning a new parent replaces the old one
func (a *Association) Assign(caller account.Account, childId Index, parentId Index) error {
	trx, err := a.child.env.Store.Begin()
	if nil != err {
		return err
	}

	if !a.parent.existsIn(trx, parentId) {
		trx.Abort()
		return fault.ErrParentNotFound
	}
	if !a.parent.isOwnerIn(trx, parentId, caller) {
		trx.Abort()
		return fault.ErrNotParentOwner
	}

	childExists := a.child.existsIn(trx, childId)
	if !a.legacy && !childExists {
		trx.Abort()
		return fault.ErrInvalidChild
	}

	children := a.childrenIn(trx, parentId)
	if contains(children, childId) {
		trx.Abort()
		return fault.ErrAlreadyAssociated
	}

	if oldParent, ok := a.parentIn(trx, childId); ok && !a.legacy && oldParent != parentId {
		siblings := remove(a.childrenIn(trx, oldParent), childId)
		if 0 == len(siblings) {
			trx.Delete(a.pools.Children, oldParent.Bytes())
		} else {
			trx.Put(a.pools.Children, oldParent.Bytes(), packIndexes(siblings))
		}
		a.log.Debugf("%s: child: %d leaves parent: %d", a.name, childId, oldParent)
	}

	children = append(children, childId)
	trx.Put(a.pools.Children, parentId.Bytes(), packIndexes(children))
	trx.PutN(a.pools.Parents, childId.Bytes(), uint64(parentId))

	if !childExists {
		// legacy: the dangling association is kept
		if err := trx.Commit(); nil != err {
			return err
		}
		a.log.Warnf("%s: dangling association child: %d parent: %d", a.name, childId, parentId)
		return fault.ErrInvalidChild
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	a.log.Infof("%s: assign child: %d to parent: %d", a.name, childId, parentId)
	a.child.env.Events.Send(EventAssigned, Assigned{
		Child:    a.child.kind.Name,
		Parent:   a.parent.kind.Name,
		Caller:   caller,
		ChildId:  childId,
		ParentId: parentId,
	})
	return nil
}

// ParentOf - current parent of a child
func (a *Association) ParentOf(childId Index) (Index, bool) {
	n, ok := a.pools.Parents.GetN(childId.Bytes())
	return Index(n), ok
}

// ChildrenOf - children in assignment order
func (a *Association) ChildrenOf(parentId Index) []Index {
	return unpackIndexes(a.pools.Children.Get(parentId.Bytes()))
}

func (a *Association) parentIn(trx storage.Transaction, childId Index) (Index, bool) {
	n, ok := trx.GetN(a.pools.Parents, childId.Bytes())
	return Index(n), ok
}

func (a *Association) childrenIn(trx storage.Transaction, parentId Index) []Index {
	return unpackIndexes(trx.Get(a.pools.Children, parentId.Bytes()))
}

func contains(list []Index, id Index) bool {
	for _, item := range list {
		if item == id {
			return true
		}
	}
	return false
}

func remove(list []Index, id Index) []Index {
	result := make([]Index, 0, len(list))
	for _, item := range list {
		if item != id {
			result = append(result, item)
		}
	}
	return result
}

// list of indexes: varint count followed by varint items
func packIndexes(list []Index) []byte {
	buffer := proto.NewBuffer(make([]byte, 0, 1+len(list)*IndexSize))
	_ = buffer.EncodeVarint(uint64(len(list)))
	for _, item := range list {
		_ = buffer.EncodeVarint(uint64(item))
	}
	return buffer.Bytes()
}

func unpackIndexes(packed []byte) []Index {
	if 0 == len(packed) {
		return []Index{}
	}
	buffer := proto.NewBuffer(packed)
	n, err := buffer.DecodeVarint()
	fault.PanicIfError("unpack index count", err)

	list := make([]Index, 0, n)
	for i := uint64(0); i < n; i += 1 {
		item, err := buffer.DecodeVarint()
		fault.PanicIfError("unpack index", err)
		list = append(list, Index(item))
	}
	return list
}
