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

	"github.com/bitmark-inc/protocoind/fault"
)

// watch the configuration file; changes are only reported since a
// restart is needed to apply them
type configurationWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string

	// one event is kept if nobody is reading
	change chan struct{}
	remove chan struct{}
}

func newConfigurationWatcher(fileName string, log *logger.L) (*configurationWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	// the directory is watched so that editors which replace the
	// file are still seen
	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &configurationWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Run - background process
func (w *configurationWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log
	log.Infof("watching: %q", w.filePath)

	defer w.watcher.Close()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err := <-w.watcher.Errors:
			log.Errorf("watcher error: %s", err)

		case event := <-w.watcher.Events:
			log.Debugf("file event: %v", event)

			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}

			if watcherEventFileRemove(event) {
				log.Errorf("configuration file: %q removed", w.filePath)
				w.sendEvent(w.remove, "remove")
				continue loop
			}

			if watcherEventFileChange(event) {
				log.Warnf("%s: %q restart to apply", fault.ConfigurationFileChanged, w.filePath)
				w.sendEvent(w.change, "change")
			}
		}
	}

	log.Info("stopped")
}

func (w *configurationWatcher) sendEvent(ch chan struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
