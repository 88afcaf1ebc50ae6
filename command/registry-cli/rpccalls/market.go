// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/market"
)

// SetPrice - list an entity, a nil price withdraws it
func (client *Client) SetPrice(kind string, caller account.Account, id registry.Index, price *uint64) error {
	arguments := market.SetPriceArguments{
		Kind:   kind,
		Caller: &caller,
		Id:     id,
		Price:  price,
	}
	var reply market.SetPriceReply
	return client.call("Market.SetPrice", &arguments, &reply)
}

// Buy - purchase a listed entity
func (client *Client) Buy(kind string, caller account.Account, id registry.Index, maximumPrice uint64) error {
	arguments := market.BuyArguments{
		Kind:         kind,
		Caller:       &caller,
		Id:           id,
		MaximumPrice: maximumPrice,
	}
	var reply market.BuyReply
	return client.call("Market.Buy", &arguments, &reply)
}
