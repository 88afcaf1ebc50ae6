// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
// Package currency - the balance service used by the marketplace
package currency

import (
	"strings"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

// ExistenceRequirement - whether a transfer may reap the sender
type ExistenceRequirement int

// possible requirements
const (
	AllowDeath ExistenceRequirement = iota
	KeepAlive
)

// Currency - move value between accounts inside a storage transaction
//
// Transfer must not write anything when it returns an error
type Currency interface {
	Balance(a account.Account) uint64
	Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, requirement ExistenceRequirement) error
}

// String - text form of a requirement
func (r ExistenceRequirement) String() string {
	switch r {
	case AllowDeath:
		return "AllowDeath"
	case KeepAlive:
		return "KeepAlive"
	default:
		return "*unknown*"
	}
}

// MarshalText - convert a requirement to text
func (r ExistenceRequirement) MarshalText() ([]byte, error) {
	switch r {
	case AllowDeath, KeepAlive:
		return []byte(r.String()), nil
	default:
		return nil, fault.ErrMissingParameters
	}
}

// UnmarshalText - case insensitive requirement name
func (r *ExistenceRequirement) UnmarshalText(s []byte) error {
	switch strings.ToLower(string(s)) {
	case "", "allowdeath", "allow_death":
		*r = AllowDeath
	case "keepalive", "keep_alive":
		*r = KeepAlive
	default:
		return fault.ErrMissingParameters
	}
	return nil
}
