// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/storage"
)

func TestBindRejectsBadStructs(t *testing.T) {
	s, err := storage.OpenMemory()
	assert.Nil(t, err, "open error")
	defer s.Close()

	type noTag struct {
		Data *storage.PoolHandle
	}
	type longTag struct {
		Data *storage.PoolHandle `prefix:"DD"`
	}
	type duplicate struct {
		One *storage.PoolHandle `prefix:"D"`
		Two *storage.PoolHandle `prefix:"D"`
	}
	type wrongType struct {
		Data *storage.Store `prefix:"D"`
	}

	assert.NotNil(t, s.Bind("x", &noTag{}), "missing tag accepted")
	assert.NotNil(t, s.Bind("x", &longTag{}), "long tag accepted")
	assert.NotNil(t, s.Bind("x", &duplicate{}), "duplicate tag accepted")
	assert.NotNil(t, s.Bind("x", &wrongType{}), "wrong field type accepted")
	assert.NotNil(t, s.Bind("x", noTag{}), "non-pointer accepted")
	assert.NotNil(t, s.Bind("", &testPools{}), "empty namespace accepted")

	p := &testPools{}
	assert.Nil(t, s.Bind("x", p), "valid pools rejected")
	assert.NotNil(t, p.Data, "pool not assigned")
	assert.NotNil(t, p.Count, "pool not assigned")
}

func TestNamespacesAreIsolated(t *testing.T) {
	s, one, two := setupTestStore(t)
	defer s.Close()

	writeElements(t, s, one.Data, makeElements([]stringElement{{"key", "one"}}))

	assert.Equal(t, []byte("one"), one.Data.Get([]byte("key")), "wrong value")
	assert.False(t, two.Data.Has([]byte("key")), "key leaked into other namespace")
	assert.False(t, one.Count.Has([]byte("key")), "key leaked into other prefix")
}

func TestReopenFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "registryd-storage")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.leveldb")

	s, err := storage.Open(fileName, storage.ReadWrite)
	assert.Nil(t, err, "open error")
	p := &testPools{}
	assert.Nil(t, s.Bind("ns", p), "bind error")
	writeElements(t, s, p.Data, makeElements([]stringElement{{"persist", "yes"}}))
	s.Close()

	s, err = storage.Open(fileName, storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	defer s.Close()
	p = &testPools{}
	assert.Nil(t, s.Bind("ns", p), "bind error")
	assert.Equal(t, []byte("yes"), p.Data.Get([]byte("persist")), "value lost on reopen")

	_, err = s.Begin()
	assert.NotNil(t, err, "read only store allowed a transaction")
}
