// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// PoolHandle - access to one prefix of one namespace
//
// the read methods here see committed data only, use a Transaction
// to read uncommitted writes
type PoolHandle struct {
	store  *Store
	prefix []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, len(p.prefix), len(p.prefix)+len(key))
	copy(prefixedKey, p.prefix)
	return append(prefixedKey, key...)
}

// the range covering every key of the pool
func (p *PoolHandle) fullRange() *ldb_util.Range {
	return ldb_util.BytesPrefix(p.prefix)
}

// Get - read a value for a given key, nil if not found
func (p *PoolHandle) Get(key []byte) []byte {
	return p.store.get(p.prefixKey(key))
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return decodeN(key, p.Get(key))
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return p.store.has(p.prefixKey(key))
}

func decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func encodeN(value uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return buffer
}
