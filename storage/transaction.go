// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/datahighway/registryd/fault"
)

// Transaction - an atomic set of writes across any pools of a store
//
// only one transaction is open on a store at a time, Begin blocks
// until the previous one is committed or aborted
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type transaction struct {
	store *Store
	batch *leveldb.Batch
	cache Cache
	inUse bool
}

// Begin - start a transaction
func (s *Store) Begin() (Transaction, error) {
	if s.readOnly {
		return nil, fault.ErrDatabaseIsNotSet
	}
	s.trx.Lock()
	return &transaction{
		store: s,
		batch: new(leveldb.Batch),
		cache: newCache(),
		inUse: true,
	}, nil
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse()
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.mustBeInUse()
	k := p.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	if value, written := t.cache.Get(string(k)); written {
		return value
	}
	return t.store.get(k)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	k := p.prefixKey(key)
	if value, written := t.cache.Get(string(k)); written {
		return nil != value
	}
	return t.store.has(k)
}

// Commit - write the batch and release the store
func (t *transaction) Commit() error {
	if !t.inUse {
		return fault.ErrTransactionNotStarted
	}
	err := t.store.write(t.batch)
	t.finish()
	return err
}

// Abort - discard all writes and release the store
func (t *transaction) Abort() {
	if !t.inUse {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	t.store.trx.Unlock()
}

func (t *transaction) mustBeInUse() {
	if !t.inUse {
		fault.Panicf("write to finished transaction")
	}
}
