// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
// Package registry - generic entity registry
//
// every entity kind shares the same engine: an ownership registry
// with an optional marketplace, single parent associations between
// kinds and per entity configuration slots
//
// Storage per kind (namespace = kind name):
//
//   E ++ id                   - 16 byte fingerprint
//   N                         - next index (count)
//   O ++ id                   - owner account
//   P ++ id                   - listing price
//
// per association (namespace = child kind "/" parent kind):
//
//   A ++ child id             - parent id
//   L ++ parent id            - packed list of child ids
//
// per configuration slot (namespace = kind name "." slot name):
//
//   S ++ id                   - packed record
//   S ++ parent id ++ id      - packed record for a composite key
//
// all indexes are 8 byte big endian so cursors return them in order
package registry
