// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package messagebus

import (
	"sync"

	"github.com/datahighway/registryd/counter"
)

// default listener buffer
const defaultQueueSize = 1000

// Message - a single event
type Message struct {
	Command    string      `json:"command"`
	Parameters interface{} `json:"parameters"`
}

// Queue - single consumer queue
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// BroadcastQueue - every listener receives each message
type BroadcastQueue struct {
	sync.RWMutex
	out     []chan Message
	dropped counter.Counter
}

// Bus - the process wide queues
var Bus = struct {
	Broadcast *BroadcastQueue // committed registry events
	Reload    *Queue          // configuration reload requests
}{
	Broadcast: &BroadcastQueue{},
	Reload:    NewQueue(1),
}

// NewQueue - a queue with a fixed buffer
func NewQueue(size int) *Queue {
	if size < 1 {
		size = defaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message unless the queue is full
func (q *Queue) Send(command string, parameters interface{}) bool {
	select {
	case q.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		q.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.c
}

// Dropped - count of messages not queued
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}

// Chan - register a new listener
func (b *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 1 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	b.Lock()
	b.out = append(b.out, c)
	b.Unlock()
	return c
}

// Release - close and remove all listeners
func (b *BroadcastQueue) Release() {
	b.Lock()
	for _, c := range b.out {
		close(c)
	}
	b.out = nil
	b.Unlock()
}

// Send - deliver a message to every listener
func (b *BroadcastQueue) Send(command string, parameters interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	b.RLock()
	defer b.RUnlock()
	for _, c := range b.out {
		select {
		case c <- m:
		default:
			b.dropped.Increment()
		}
	}
}

// Dropped - count of undelivered messages over all listeners
func (b *BroadcastQueue) Dropped() uint64 {
	return b.dropped.Uint64()
}
