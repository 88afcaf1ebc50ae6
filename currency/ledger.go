// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package currency

import (
	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/storage"
)

const namespace = "balances"

// key for the issuance total
var issuanceKey = []byte{}

type pools struct {
	Balances *storage.PoolHandle `prefix:"B"`
	Issuance *storage.PoolHandle `prefix:"I"`
}

// Ledger - free balances stored alongside the registry
type Ledger struct {
	log                *logger.L
	pools              pools
	existentialDeposit uint64
}

// NewLedger - bind a ledger to a store
func NewLedger(log *logger.L, store *storage.Store, existentialDeposit uint64) (*Ledger, error) {
	l := &Ledger{
		log:                log,
		existentialDeposit: existentialDeposit,
	}
	if err := store.Bind(namespace, &l.pools); nil != err {
		return nil, err
	}
	return l, nil
}

// ExistentialDeposit - minimum balance of a live account
func (l *Ledger) ExistentialDeposit() uint64 {
	return l.existentialDeposit
}

// Balance - committed free balance of an account
func (l *Ledger) Balance(a account.Account) uint64 {
	n, _ := l.pools.Balances.GetN(a.Bytes())
	return n
}

// Issuance - committed total of all balances
func (l *Ledger) Issuance() uint64 {
	n, _ := l.pools.Issuance.GetN(issuanceKey)
	return n
}

// Deposit - create new value in an account
func (l *Ledger) Deposit(trx storage.Transaction, to account.Account, amount uint64) error {
	balance, _ := trx.GetN(l.pools.Balances, to.Bytes())
	issuance, _ := trx.GetN(l.pools.Issuance, issuanceKey)

	if balance+amount < balance || issuance+amount < issuance {
		return fault.ErrBalanceOverflow
	}
	if 0 == balance && amount < l.existentialDeposit {
		return fault.ErrExistentialDeposit
	}

	trx.PutN(l.pools.Balances, to.Bytes(), balance+amount)
	trx.PutN(l.pools.Issuance, issuanceKey, issuance+amount)
	l.log.Infof("deposit: %d to: %s", amount, to)
	return nil
}

// Transfer - move amount from one account to another
//
// all checks happen before any write
func (l *Ledger) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, requirement ExistenceRequirement) error {
	fromBalance, _ := trx.GetN(l.pools.Balances, from.Bytes())
	if fromBalance < amount {
		return fault.ErrInsufficientBalance
	}

	if from == to || 0 == amount {
		return nil
	}

	remaining := fromBalance - amount
	dust := uint64(0)
	if remaining < l.existentialDeposit {
		if KeepAlive == requirement {
			return fault.ErrExistentialDeposit
		}
		dust = remaining
	}

	toBalance, _ := trx.GetN(l.pools.Balances, to.Bytes())
	if 0 == toBalance && amount < l.existentialDeposit {
		return fault.ErrExistentialDeposit
	}
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	if remaining-dust == 0 {
		trx.Delete(l.pools.Balances, from.Bytes())
	} else {
		trx.PutN(l.pools.Balances, from.Bytes(), remaining)
	}
	trx.PutN(l.pools.Balances, to.Bytes(), toBalance+amount)

	if dust > 0 {
		issuance, _ := trx.GetN(l.pools.Issuance, issuanceKey)
		trx.PutN(l.pools.Issuance, issuanceKey, issuance-dust)
		l.log.Debugf("reaped: %s  dust: %d", from, dust)
	}

	l.log.Debugf("transfer: %d from: %s to: %s", amount, from, to)
	return nil
}
