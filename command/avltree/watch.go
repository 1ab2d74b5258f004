// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/source"
)

type summary struct {
	Reload int    `json:"reload"`
	Count  int    `json:"count"`
	Height int    `json:"height"`
	Time   string `json:"time"`
}

// reload the tree whenever the source changes, printing a summary
// after each load
func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	if nil == m.config {
		return fmt.Errorf("%s: requires a configuration file", c.Command.Name)
	}

	limit := c.Int("limit")
	if limit < 0 {
		return fault.ErrInvalidCount
	}

	log := logger.New("watch")

	w, err := source.NewWatcher(m.config.Source.Path, log)
	if nil != err {
		return err
	}
	defer w.Close()

	if err := w.Start(); nil != err {
		return err
	}

	reload := func() error {
		src, err := openSource(m.config.Source.Type, m.config.Source.Path)
		if nil != err {
			return err
		}
		defer src.Close()

		tree, err := loadTree(log, src, m.config.Balance, m.config.Indexed)
		if nil != err {
			return err
		}
		m.tree = tree
		return nil
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return watchLoop(m, log, w.Change(), w.Remove(), stop, limit, reload)
}

// limit of zero means run until the source is removed or a signal
// arrives, a failed reload keeps the previous tree
func watchLoop(m *metadata, log *logger.L, change <-chan struct{}, remove <-chan struct{}, stop <-chan os.Signal, limit int, reload func() error) error {

	reloads := 0
	show := func() error {
		return printJson(m.w, summary{
			Reload: reloads,
			Count:  m.tree.Count(),
			Height: m.tree.Height(),
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := show(); nil != err {
		return err
	}

	for {
		select {
		case <-change:
			reloads += 1
			if err := reload(); nil != err {
				log.Errorf("reload: %d  error: %s", reloads, err)
				if m.verbose {
					fmt.Fprintf(m.e, "reload: %d  error: %s\n", reloads, err)
				}
				continue
			}
			if err := show(); nil != err {
				return err
			}
			if limit > 0 && reloads >= limit {
				return nil
			}

		case <-remove:
			log.Error("source removed, stopping")
			return fault.ErrSourceRemoved

		case sig := <-stop:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
