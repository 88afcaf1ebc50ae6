// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/storage"
)

// credit the configured endowments once, on an empty ledger
//
// returns false if the ledger already had issuance
func endow(store *storage.Store, ledger *currency.Ledger, endowments []Endowment) (bool, error) {
	if 0 != ledger.Issuance() {
		return false, nil
	}

	trx, err := store.Begin()
	if nil != err {
		return false, err
	}
	for _, e := range endowments {
		a, err := account.FromBase58(e.Account)
		if nil != err {
			trx.Abort()
			return false, err
		}
		if err := ledger.Deposit(trx, a, e.Amount); nil != err {
			trx.Abort()
			return false, err
		}
	}
	if err := trx.Commit(); nil != err {
		return false, err
	}
	return true, nil
}
