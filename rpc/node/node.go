// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/chain"
	"github.com/datahighway/registryd/counter"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/pallet"
	"github.com/datahighway/registryd/registry"
	"github.com/datahighway/registryd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Clock   chain.Source
	Runtime *pallet.Runtime
	counter *counter.Counter
}

func New(log *logger.L, chainName string, clock chain.Source, rt *pallet.Runtime, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chainName,
		Clock:   clock,
		Runtime: rt,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain        string          `json:"chain"`
	Block        chain.Position  `json:"block"`
	Kinds        []registry.Kind `json:"kinds"`
	Associations []string        `json:"associations"`
	Legacy       bool            `json:"legacyAssociation"`
	RPCs         uint64          `json:"rpcs"`
	Version      string          `json:"version"`
	Uptime       string          `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Runtime || nil == node.Clock {
		return fault.ErrNotInitialised
	}

	reply.Chain = node.Chain
	reply.Block = node.Clock.Current()
	reply.Kinds = node.Runtime.Kinds()
	reply.Associations = node.Runtime.Associations()
	reply.Legacy = node.Runtime.Legacy()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
