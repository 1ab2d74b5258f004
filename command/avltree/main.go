// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/source"
)

type metadata struct {
	file    string
	config  *Configuration
	tree    store
	log     *logger.L
	started bool // logging was initialised by Before
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// opens the configured source, replaced by tests
var openSource = source.Open

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avltree"
	app.Usage = "load key/value records into an ordered tree and query them"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "avltree.conf",
			Usage: " configuration `FILE`",
		},
	}

	stepFlag := cli.IntFlag{
		Name:  "step, s",
		Value: 1,
		Usage: " return every `N`th item",
	}
	inclusiveFlag := cli.BoolFlag{
		Name:  "inclusive, i",
		Usage: " include the stop item",
	}

	app.Commands = []cli.Command{
		{
			Name:   "count",
			Usage:  "number of keys",
			Action: runCount,
		},
		{
			Name:   "min",
			Usage:  "lowest key",
			Action: runMin,
		},
		{
			Name:   "max",
			Usage:  "highest key",
			Action: runMax,
		},
		{
			Name:      "get",
			Usage:     "value of a key",
			ArgsUsage: "KEY",
			Action:    runGet,
		},
		{
			Name:      "rank",
			Usage:     "position of a key",
			ArgsUsage: "KEY",
			Action:    runRank,
		},
		{
			Name:      "select",
			Usage:     "key at a position, negative counts from the end",
			ArgsUsage: "INDEX",
			Action:    runSelect,
		},
		{
			Name:      "range",
			Usage:     "items between two keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, a",
					Usage: " first `KEY` [default: lowest]",
				},
				cli.StringFlag{
					Name:  "stop, b",
					Usage: " stop `KEY` [default: none]",
				},
				stepFlag,
				inclusiveFlag,
			},
			Action: runRange,
		},
		{
			Name:      "slice",
			Usage:     "items between two positions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start, a",
					Usage: " first `INDEX` [default: 0]",
				},
				cli.IntFlag{
					Name:  "stop, b",
					Usage: " stop `INDEX` [default: end]",
				},
				stepFlag,
				inclusiveFlag,
			},
			Action: runSlice,
		},
		{
			Name:      "complement",
			Usage:     "items outside two keys",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, a",
					Usage: " first excluded `KEY`",
				},
				cli.StringFlag{
					Name:  "stop, b",
					Usage: " stop `KEY` of the excluded band",
				},
				stepFlag,
				inclusiveFlag,
			},
			Action: runComplement,
		},
		{
			Name:      "find",
			Usage:     "nearest key to a given key",
			ArgsUsage: "KEY",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: "ge",
					Usage: " comparison `MODE` [gt|ge|lt|le]",
				},
			},
			Action: runFind,
		},
		{
			Name:   "median",
			Usage:  "middle value of all the values",
			Action: runMedian,
		},
		{
			Name:   "print",
			Usage:  "draw the tree, --verbose adds node details",
			Action: runPrint,
		},
		{
			Name:  "watch",
			Usage: "reload whenever the source changes",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "limit, l",
					Usage: " stop after `N` reloads [default: never]",
				},
			},
			Action: runWatch,
		},
		{
			Name:   "check",
			Usage:  "verify the tree structure",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display avltree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and load the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		// already loaded
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file, map[string]string{"command": command})
		if nil != err {
			return err
		}

		// start logging
		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err = fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("load")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", config)

		src, err := openSource(config.Source.Type, config.Source.Path)
		if nil != err {
			log.Errorf("open source: %q  error: %s", config.Source.Path, err)
			return err
		}
		defer src.Close()

		tree, err := loadTree(log, src, config.Balance, config.Indexed)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			tree:    tree,
			log:     logger.New("main"),
			started: true,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok && m.started {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	return app
}
