// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func TestCursorFetch(t *testing.T) {
	s, one, two := setupTestStore(t)
	defer s.Close()

	writeElements(t, s, one.Data, expectedElements)
	writeElements(t, s, two.Data, makeElements([]stringElement{{"key-zero", "other"}}))

	cursor := one.Data.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[:3], first, "wrong first page")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[3:], rest, "wrong second page")

	empty, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(empty), "fetch beyond end returned data")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count accepted")
}

func TestCursorSeek(t *testing.T) {
	s, one, _ := setupTestStore(t)
	defer s.Close()

	writeElements(t, s, one.Data, expectedElements)

	elements, err := one.Data.NewFetchCursor().Seek([]byte("key-six")).Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, expectedElements[4:6], elements, "wrong elements after seek")
}

func TestCursorMap(t *testing.T) {
	s, one, _ := setupTestStore(t)
	defer s.Close()

	writeElements(t, s, one.Data, expectedElements)

	collected := make([]storage.Element, 0)
	err := one.Data.NewFetchCursor().Map(func(key []byte, value []byte) error {
		collected = append(collected, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, expectedElements, collected, "wrong map elements")

	stop := fault.ErrInvalidCount
	n := 0
	err = one.Data.NewFetchCursor().Map(func(key []byte, value []byte) error {
		n += 1
		if 2 == n {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "map did not return callback error")
	assert.Equal(t, 2, n, "map did not stop")
}
