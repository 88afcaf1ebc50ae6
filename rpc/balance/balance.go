// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/rpc/ratelimit"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// Balance - type for the RPC
type Balance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Currency currency.Currency
}

func New(log *logger.L, c currency.Currency) *Balance {
	return &Balance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Currency: c,
	}
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Account *account.Account `json:"account"`
}

// GetReply - result of get RPC
type GetReply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance,string"`
}

// Get - free balance of an account
func (balance *Balance) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(balance.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}

	balance.Log.Debugf("Balance.Get: %s", arguments.Account)

	reply.Account = arguments.Account
	reply.Balance = balance.Currency.Balance(*arguments.Account)
	return nil
}
