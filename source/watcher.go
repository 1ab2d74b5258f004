// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package source

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher - report modification or removal of a source
//
// a text source is watched as a single file, a LevelDB source as its
// directory so that compaction inside it counts as a change
type Watcher struct {
	log     *logger.L
	watcher *fsnotify.Watcher
	path    string
	change  chan struct{}
	remove  chan struct{}
}

// NewWatcher - create a watcher for an existing source path
func NewWatcher(path string, log *logger.L) (*Watcher, error) {

	path, err := filepath.Abs(filepath.Clean(path))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(path); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	return &Watcher{
		log:     log,
		watcher: watcher,
		path:    path,
		change:  make(chan struct{}, 1),
		remove:  make(chan struct{}, 1),
	}, nil
}

// Change - signalled after the source is written, several writes
// may be merged into one signal
func (w *Watcher) Change() <-chan struct{} {
	return w.change
}

// Remove - signalled once if the source itself is removed or renamed
func (w *Watcher) Remove() <-chan struct{} {
	return w.remove
}

// Start - begin delivering events
func (w *Watcher) Start() error {
	err := w.watcher.Add(w.path)
	if nil != err {
		w.log.Errorf("watcher add: %q  error: %s", w.path, err)
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if removed(w.path, event) {
					w.log.Warnf("source: %q removed", w.path)
					send(w.log, w.remove, "remove")
					return
				}
				if modified(event) {
					send(w.log, w.change, "change")
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Close - stop watching
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// deliver without blocking, a pending signal already covers this event
func send(log *logger.L, ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		log.Debugf("event channel: %s full, discard event", name)
	}
}

func removed(path string, event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == path &&
		0 != event.Op&(fsnotify.Remove|fsnotify.Rename)
}

func modified(event fsnotify.Event) bool {
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Chmod)
}
