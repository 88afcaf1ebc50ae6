// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
// Package storage - maintain the on-disk data store
//
// keys are grouped into pools; each pool belongs to a namespace and
// is identified by a single byte prefix so a key on disk is:
//
//   namespace ++ 0x00 ++ prefix ++ key
//
// all writes go through a Transaction which buffers them in a
// leveldb batch together with an overlay so that reads made inside the
// transaction see its own uncommitted writes
package storage
