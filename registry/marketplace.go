// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package registry

import (
	"github.com/datahighway/registryd/account"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/fault"
)

// SetPrice - list an entity for sale, a nil price removes the listing
func (r *Registry) SetPrice(caller account.Account, id Index, price *uint64) error {
	if !r.kind.Marketplace {
		return fault.ErrMarketplaceDisabled
	}

	trx, err := r.env.Store.Begin()
	if nil != err {
		return err
	}

	if !r.isOwnerIn(trx, id, caller) {
		trx.Abort()
		return fault.ErrNotOwner
	}

	if nil == price {
		trx.Delete(r.pools.Prices, id.Bytes())
	} else {
		trx.PutN(r.pools.Prices, id.Bytes(), *price)
	}

	if err := trx.Commit(); nil != err {
		return err
	}

	if nil == price {
		r.log.Infof("delist: %s[%d]", r.kind.Name, id)
	} else {
		r.log.Infof("list: %s[%d] price: %d", r.kind.Name, id, *price)
	}
	r.env.Events.Send(EventPriceSet, PriceSet{
		Kind:  r.kind.Name,
		Owner: caller,
		Id:    id,
		Price: price,
	})
	return nil
}

// Buy - pay the listing price to the owner and take ownership
//
// the currency transfer happens before any registry write and all
// writes share one transaction, so a failed payment changes nothing
func (r *Registry) Buy(caller account.Account, id Index, maximumPrice uint64) error {
	if !r.kind.Marketplace {
		return fault.ErrMarketplaceDisabled
	}

	trx, err := r.env.Store.Begin()
	if nil != err {
		return err
	}

	owner, ok := r.ownerIn(trx, id)
	if !ok {
		trx.Abort()
		return fault.ErrNoOwner
	}

	price, listed := trx.GetN(r.pools.Prices, id.Bytes())
	if !listed {
		trx.Abort()
		return fault.ErrNotForSale
	}

	if maximumPrice < price {
		trx.Abort()
		return fault.ErrPriceTooLow
	}

	err = r.env.Currency.Transfer(trx, caller, owner, price, currency.AllowDeath)
	if nil != err {
		trx.Abort()
		r.log.Warnf("buy: %s[%d] payment from: %s failed: %s", r.kind.Name, id, caller, err)
		return err
	}

	trx.Delete(r.pools.Prices, id.Bytes())
	trx.Put(r.pools.Owners, id.Bytes(), caller.Bytes())

	if err := trx.Commit(); nil != err {
		return err
	}

	r.log.Infof("sold: %s[%d] from: %s to: %s price: %d", r.kind.Name, id, owner, caller, price)
	r.env.Events.Send(EventSold, Sold{
		Kind:  r.kind.Name,
		From:  owner,
		To:    caller,
		Id:    id,
		Price: price,
	})
	return nil
}

// Price - current listing, false if not for sale
func (r *Registry) Price(id Index) (uint64, bool) {
	return r.pools.Prices.GetN(id.Bytes())
}
