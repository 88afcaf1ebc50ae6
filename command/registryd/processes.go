// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/messagebus"
)

// eventLogger - record every committed registry event
type eventLogger struct {
	log   *logger.L
	queue <-chan messagebus.Message
}

func (e *eventLogger) Run(args interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-e.queue:
			if !ok {
				break loop
			}
			e.log.Infof("%s: %+v", m.Command, m.Parameters)
		}
	}
	e.log.Info("stopped")
}

// reloader - apply the hot-reloadable settings on each change notification
type reloader struct {
	log   *logger.L
	queue <-chan messagebus.Message
	read  func(fileName string) (*Configuration, error)
	apply func(limit float64, burst int) error
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-r.queue:
			if !ok {
				break loop
			}
			if reloadCommand != m.Command {
				r.log.Warnf("unexpected command: %q", m.Command)
				continue loop
			}
			fileName, _ := m.Parameters.(string)
			r.reload(fileName)
		}
	}
	r.log.Info("stopped")
}

func (r *reloader) reload(fileName string) {
	c, err := r.read(fileName)
	if nil != err {
		r.log.Errorf("read configuration: %q  error: %s", fileName, err)
		return
	}

	limit := c.ClientRPC.RateLimit
	burst := c.ClientRPC.RateBurst
	if limit <= 0 && burst <= 0 {
		r.log.Debug("no rate limit configured, keep current limits")
		return
	}
	if err := r.apply(limit, burst); nil != err {
		r.log.Errorf("apply rate limit: %g  burst: %d  error: %s", limit, burst, err)
		return
	}
	r.log.Infof("rate limit: %g  burst: %d", limit, burst)
}
