// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/datahighway/registryd/fault"
)

// read a committed value, nil if the key is absent
//
// this returns a fresh slice owned by the caller
func (s *Store) get(key []byte) []byte {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return nil
	}
	value, err := s.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("store.get", err)
	return value
}

func (s *Store) has(key []byte) bool {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return false
	}
	found, err := s.db.Has(key, nil)
	logger.PanicIfError("store.has", err)
	return found
}

func (s *Store) write(batch *leveldb.Batch) error {
	s.RLock()
	defer s.RUnlock()
	if nil == s.db {
		return fault.ErrDatabaseIsNotSet
	}
	return s.db.Write(batch, nil)
}

// iterate over committed data
//
// the caller must hold the read lock until the iterator is released
func (s *Store) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return s.db.NewIterator(searchRange, nil)
}
