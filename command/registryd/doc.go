// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Entity registry daemon for the DataHighway network
//
// This program holds the roaming and mining entity registries in a
// leveldb database and serves JSON-RPC calls that create, trade,
// associate and configure entities.  Blocks advance on a fixed
// interval and rate limits follow edits to the configuration file.
package main
