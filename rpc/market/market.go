// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/ratelimit"
)

const (
	rateLimitMarket = 100
	rateBurstMarket = 50
)

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Runtime *pallet.Runtime
}

func New(log *logger.L, rt *pallet.Runtime) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Runtime: rt,
	}
}

// SetPriceArguments - a nil price removes the listing
type SetPriceArguments struct {
	Kind   string           `json:"kind"`
	Caller *account.Account `json:"caller"`
	Id     registry.Index   `json:"id,string"`
	Price  *uint64          `json:"price,string,omitempty"`
}

// SetPriceReply - result of set price RPC
type SetPriceReply struct{}

// SetPrice - list or delist an entity
func (market *Market) SetPrice(arguments *SetPriceArguments, reply *SetPriceReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}

	market.Log.Infof("Market.SetPrice: %+v", arguments)

	r, err := market.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}
	return r.SetPrice(*arguments.Caller, arguments.Id, arguments.Price)
}

// BuyArguments - arguments for RPC
type BuyArguments struct {
	Kind         string           `json:"kind"`
	Caller       *account.Account `json:"caller"`
	Id           registry.Index   `json:"id,string"`
	MaximumPrice uint64           `json:"maximumPrice,string"`
}

// BuyReply - result of buy RPC
type BuyReply struct{}

// Buy - purchase a listed entity at no more than the maximum price
func (market *Market) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}

	market.Log.Infof("Market.Buy: %+v", arguments)

	r, err := market.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}
	return r.Buy(*arguments.Caller, arguments.Id, arguments.MaximumPrice)
}

// PriceArguments - arguments for RPC
type PriceArguments struct {
	Kind string         `json:"kind"`
	Id   registry.Index `json:"id,string"`
}

// PriceReply - Price is nil when not for sale
type PriceReply struct {
	Price *uint64 `json:"price,string,omitempty"`
}

// Price - current listing of an entity
func (market *Market) Price(arguments *PriceArguments, reply *PriceReply) error {

	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	r, err := market.Runtime.Registry(arguments.Kind)
	if nil != err {
		return err
	}
	if !r.Kind().Marketplace {
		return fault.ErrMarketplaceDisabled
	}

	if p, ok := r.Price(arguments.Id); ok {
		reply.Price = &p
	} else {
		reply.Price = nil
	}
	return nil
}
