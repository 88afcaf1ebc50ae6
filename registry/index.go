// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"encoding/binary"
	"strconv"

	"github.com/datahighway/registryd/fault"
)

// Index - identifier of an entity within its kind
type Index uint64

// IndexSize - bytes in a stored index
const IndexSize = 8

// Bytes - big endian key form
func (i Index) Bytes() []byte {
	buffer := make([]byte, IndexSize)
	binary.BigEndian.PutUint64(buffer, uint64(i))
	return buffer
}

// String - decimal form
func (i Index) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// IndexFromBytes - decode a key
func IndexFromBytes(buffer []byte) (Index, error) {
	if IndexSize != len(buffer) {
		return 0, fault.ErrInvalidCount
	}
	return Index(binary.BigEndian.Uint64(buffer)), nil
}

// ParseIndex - decimal text to index
func ParseIndex(s string) (Index, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, err
	}
	return Index(n), nil
}
