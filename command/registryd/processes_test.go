// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/datahighway/registryd/background"
	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/messagebus"
	"github.com/datahighway/registryd/rpc/listeners"
)

type applied struct {
	limit float64
	burst int
}

func TestReloaderAppliesRateLimit(t *testing.T) {
	queue := messagebus.NewQueue(4)
	results := make(chan applied, 4)

	configurations := map[string]*Configuration{
		"good":  {ClientRPC: listeners.RPCConfiguration{RateLimit: 20, RateBurst: 40}},
		"unset": {},
	}

	r := &reloader{
		log:   logger.New("test"),
		queue: queue.Chan(),
		read: func(fileName string) (*Configuration, error) {
			c, ok := configurations[fileName]
			if !ok {
				return nil, fault.ErrFileNotFound
			}
			return c, nil
		},
		apply: func(limit float64, burst int) error {
			results <- applied{limit, burst}
			return nil
		},
	}

	p := background.Start(background.Processes{r}, nil)
	defer p.Stop()

	queue.Send("unknown", "good")
	queue.Send(reloadCommand, "missing")
	queue.Send(reloadCommand, "unset")
	queue.Send(reloadCommand, "good")

	select {
	case a := <-results:
		assert.Equal(t, applied{20, 40}, a, "wrong limits")
	case <-time.After(5 * time.Second):
		t.Fatal("limits not applied")
	}

	select {
	case a := <-results:
		t.Errorf("unexpected apply: %v", a)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventLoggerStopsOnRelease(t *testing.T) {
	bus := &messagebus.BroadcastQueue{}
	e := &eventLogger{
		log:   logger.New("test"),
		queue: bus.Chan(1),
	}

	done := make(chan struct{})
	go func() {
		e.Run(nil, make(chan struct{}))
		close(done)
	}()

	bus.Send("Created", 1)
	bus.Release()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event logger did not stop")
	}
}
