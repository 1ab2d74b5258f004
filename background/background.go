// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - a background task, Run must return promptly once
// shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}

	wg := sync.WaitGroup{}
	wg.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			defer wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}

	// all processes finished, either by themselves or after Stop
	go func() {
		wg.Wait()
		close(register.finished)
	}()

	return register
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	return t.finished
}

// Wait - wait for all processes to return by themselves
func (t *T) Wait() {
	<-t.finished
}

// Stop - signal shutdown and wait for all processes to return
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	<-t.finished
}
