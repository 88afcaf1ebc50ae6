// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/datahighway/registryd/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"

	reloadCommand = "reload"
)

// reloadSink - where change notifications go
type reloadSink interface {
	Send(command string, parameters interface{}) bool
}

// FileWatcher - report writes to the configuration file
type FileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	sink     reloadSink
}

func newFileWatcher(targetFile string, log *logger.L, sink reloadSink) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	// watch the directory so that editors replacing the file are seen
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		sink:     sink,
	}, nil
}

// Run - background process forwarding file changes until shutdown
func (w *FileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed", w.filePath)
				continue loop
			}
			if watcherEventFileChange(event) {
				w.log.Info("sending config change event…")
				if !w.sink.Send(reloadCommand, w.filePath) {
					w.log.Info("reload already pending, discard event")
				}
			}
		}
	}

	w.watcher.Close()
	w.log.Info("stopped")
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
