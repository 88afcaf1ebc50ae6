// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - accept client connections for the RPC server
package listeners

// Listener - a started set of network listeners
type Listener interface {
	Serve() error
	Close() error
}
