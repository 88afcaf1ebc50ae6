// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/datahighway/registryd/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// separates the namespace from the pool prefix
const namespaceSeparator = 0x00

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - holds the database handle
type Store struct {
	sync.RWMutex            // protects db
	trx          sync.Mutex // held from Begin until Commit/Abort
	db           *leveldb.DB
	readOnly     bool
}

// Open - open up a database file, creating it if necessary
func Open(fileName string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}
	return initialise(db, readOnly)
}

// OpenMemory - an empty store that is lost on Close
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return initialise(db, ReadWrite)
}

func initialise(db *leveldb.DB, readOnly bool) (*Store, error) {
	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version && !readOnly {
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	}

	return &Store{
		db:       db,
		readOnly: readOnly,
	}, nil
}

// Close - close the database connection
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// Pool - a single pool in a namespace
func (s *Store) Pool(namespace string, prefix byte) *PoolHandle {
	full := make([]byte, 0, len(namespace)+2)
	full = append(full, namespace...)
	full = append(full, namespaceSeparator, prefix)
	return &PoolHandle{
		store:  s,
		prefix: full,
	}
}

// Bind - fill in the pool handles of a struct from its prefix tags
//
// pools must be a pointer to a struct whose fields are all exported
// *PoolHandle with a one character tag, e.g:
//
//   Owners *storage.PoolHandle `prefix:"O"`
func (s *Store) Bind(namespace string, pools interface{}) error {
	if "" == namespace {
		return fmt.Errorf("pool namespace is empty")
	}

	value := reflect.ValueOf(pools)
	if reflect.Ptr != value.Kind() || reflect.Struct != value.Elem().Kind() {
		return fmt.Errorf("pools: %T is not a pointer to a struct", pools)
	}

	// get write access by using pointer + Elem()
	poolValue := value.Elem()
	poolType := poolValue.Type()
	handleType := reflect.TypeOf((*PoolHandle)(nil))

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %s.%s has invalid prefix: %q", namespace, fieldInfo.Name, prefixTag)
		}
		prefix := prefixTag[0]
		if other, ok := seen[prefix]; ok {
			return fmt.Errorf("pool: %s.%s duplicates prefix of: %s", namespace, fieldInfo.Name, other)
		}
		seen[prefix] = fieldInfo.Name

		if fieldInfo.Type != handleType || !poolValue.Field(i).CanSet() {
			return fmt.Errorf("pool: %s.%s must be an exported *PoolHandle", namespace, fieldInfo.Name)
		}

		poolValue.Field(i).Set(reflect.ValueOf(s.Pool(namespace, prefix)))
	}
	return nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fault.ErrDatabaseVersion
	}
	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))
	return db.Put(versionKey, currentVersion, nil)
}
