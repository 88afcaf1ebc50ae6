// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/counter"
	"github.com/datahighway/registryd/currency"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/rpc/association"
	"github.com/datahighway/registryd/rpc/balance"
	"github.com/datahighway/registryd/rpc/entity"
	"github.com/datahighway/registryd/rpc/market"
	"github.com/datahighway/registryd/rpc/node"
	"github.com/datahighway/registryd/rpc/ratelimit"
	"github.com/datahighway/registryd/rpc/slot"
)

// Server - RPC server with the limiters of its services
type Server struct {
	*rpc.Server
	log      *logger.L
	limiters map[string]*rate.Limiter
}

// Create - register all services
func Create(log *logger.L, version string, chainName string, clock chain.Source, rt *pallet.Runtime, c currency.Currency, rpcCount *counter.Counter) *Server {

	start := time.Now().UTC()

	e := entity.New(log, rt)
	m := market.New(log, rt)
	a := association.New(log, rt)
	s := slot.New(log, rt)
	b := balance.New(log, c)
	n := node.New(log, chainName, clock, rt, start, version, rpcCount)

	server := rpc.NewServer()

	_ = server.Register(e)
	_ = server.Register(m)
	_ = server.Register(a)
	_ = server.Register(s)
	_ = server.Register(b)
	_ = server.Register(n)

	return &Server{
		Server: server,
		log:    log,
		limiters: map[string]*rate.Limiter{
			"Entity":      e.Limiter,
			"Market":      m.Limiter,
			"Association": a.Limiter,
			"Slot":        s.Limiter,
			"Balance":     b.Limiter,
			"Node":        n.Limiter,
		},
	}
}

// Reconfigure - apply one limit and burst to every service
func (s *Server) Reconfigure(limit float64, burst int) {
	for name, limiter := range s.limiters {
		ratelimit.Reconfigure(limiter, limit, burst)
		s.log.Debugf("%s: rate limit: %g  burst: %d", name, limit, burst)
	}
	s.log.Infof("rate limit: %g  burst: %d", limit, burst)
}

// Limiter - the limiter of a service, nil if unknown
func (s *Server) Limiter(service string) *rate.Limiter {
	return s.limiters[service]
}
