// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package chain

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// Position - where a call executes: block number and extrinsic index
type Position struct {
	Block     uint64 `json:"block,string"`
	Extrinsic uint32 `json:"extrinsic"`
}

// Clock - hands out execution positions
type Clock interface {
	// Next - position for the next call
	Next() Position
}

// Source - reports the position without consuming it
type Source interface {
	Current() Position
}

// BlockClock - block numbers advanced by a ticker, extrinsic
// indexes increase within a block and reset on each new block
type BlockClock struct {
	sync.Mutex
	block     uint64
	extrinsic uint32
	log       *logger.L
}

// NewBlockClock - a clock starting at the given block
func NewBlockClock(log *logger.L, start uint64) *BlockClock {
	return &BlockClock{
		block: start,
		log:   log,
	}
}

// Next - the next extrinsic position in the current block
func (c *BlockClock) Next() Position {
	c.Lock()
	defer c.Unlock()
	p := Position{
		Block:     c.block,
		Extrinsic: c.extrinsic,
	}
	c.extrinsic += 1
	return p
}

// Current - the current block without consuming an extrinsic index
func (c *BlockClock) Current() Position {
	c.Lock()
	defer c.Unlock()
	return Position{
		Block:     c.block,
		Extrinsic: c.extrinsic,
	}
}

// Advance - move to the next block
func (c *BlockClock) Advance() uint64 {
	c.Lock()
	defer c.Unlock()
	c.block += 1
	c.extrinsic = 0
	return c.block
}

// Run - background process advancing the block on every interval
//
// args must be a time.Duration
func (c *BlockClock) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
	ticker := time.NewTicker(interval)

	c.log.Infof("block clock started at: %d  interval: %s", c.Current().Block, interval)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := c.Advance()
			c.log.Debugf("block: %d", n)
		}
	}
	ticker.Stop()
	c.log.Info("block clock stopped")
}

// FixedClock - always at the same position, for tests and queries
type FixedClock Position

// Next - the fixed position
func (f FixedClock) Next() Position {
	return Position(f)
}

// Current - the fixed position
func (f FixedClock) Current() Position {
	return Position(f)
}
