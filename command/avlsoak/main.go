// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultWorkers    = 4
	defaultOperations = 100000
	defaultKeys       = 1000
	defaultCheckEvery = 1000
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
		{Long: "operations", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "keys", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'k'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "check-every", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "rate", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--workers=N] [--operations=N] [--keys=N] [--seed=N] [--check-every=N] [--rate=N] [--log-directory=DIR]", program)
	}

	verbose := len(options["verbose"]) > 0

	workers := intOption(program, options, "workers", defaultWorkers)
	soak := soakOptions{
		operations: intOption(program, options, "operations", defaultOperations),
		keys:       intOption(program, options, "keys", defaultKeys),
		checkEvery: intOption(program, options, "check-every", defaultCheckEvery),
		rate:       intOption(program, options, "rate", 0),
	}
	if workers < 1 {
		exitwithstatus.Message("%s: workers: %s", program, fault.ErrInvalidCount)
	}
	seed := int64(intOption(program, options, "seed", int(time.Now().UnixNano()&0x7fffffff)))

	logDirectory := "."
	if n := len(options["log-directory"]); n > 0 {
		logDirectory = options["log-directory"][n-1]
	}
	logDirectory, err = filepath.Abs(logDirectory)
	if nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}

	level := "info"
	if verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "avlsoak.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("workers: %d  seed: %d  options: %+v", workers, seed, soak)

	totals := &counter.Totals{}
	crew, processes := hire(workers, seed, totals, soak)

	start := time.Now()
	p := background.Start(processes, nil)

	// wait for completion or a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-p.Done():
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if verbose {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
		p.Stop()
	}
	elapsed := time.Since(start)

	report(log, totals, elapsed, verbose)

	failed := 0
	for _, w := range crew {
		if nil != w.err {
			failed += 1
			fmt.Fprintf(os.Stderr, "%s\n", w.err)
		}
	}
	if failed > 0 {
		exitwithstatus.Message("%s: %d of %d workers failed, seed: %d", program, failed, workers, seed)
	}
}

// create the workers, each with its own seed derived from the base
func hire(n int, seed int64, totals *counter.Totals, options soakOptions) ([]*worker, background.Processes) {
	crew := make([]*worker, 0, n)
	processes := make(background.Processes, 0, n)
	for i := 0; i < n; i += 1 {
		w := newWorker(i, seed+int64(i), totals, options)
		crew = append(crew, w)
		processes = append(processes, w)
	}
	return crew, processes
}

func report(log *logger.L, totals *counter.Totals, elapsed time.Duration, verbose bool) {
	snapshot := totals.Snapshot()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	operations := totals.Operations()
	rate := float64(operations) / elapsed.Seconds()
	log.Infof("operations: %d  elapsed: %s  rate: %.0f/s", operations, elapsed, rate)
	for _, name := range names {
		log.Infof("%s: %d", name, snapshot[name])
	}

	if verbose {
		fmt.Printf("operations: %d  elapsed: %s  rate: %.0f/s\n", operations, elapsed, rate)
		for _, name := range names {
			fmt.Printf("%12s: %d\n", name, snapshot[name])
		}
	}
}

// last value of a numeric option or its default
func intOption(program string, options map[string][]string, name string, defaultValue int) int {
	values := options[name]
	if 0 == len(values) {
		return defaultValue
	}
	n, err := strconv.Atoi(values[len(values)-1])
	if nil != err || n < 0 {
		exitwithstatus.Message("%s: invalid %s: %q", program, name, values[len(values)-1])
	}
	return n
}
