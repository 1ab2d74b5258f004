// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2024 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/source"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultSourceType = source.TextType
	defaultSourceFile = "data.txt"

	defaultBalance = "avl"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "error",
	}
)

// SourceType - where the records come from
type SourceType struct {
	Type string `gluamapper:"type" json:"type"`
	Path string `gluamapper:"path" json:"path"`
}

// Configuration - the decoded Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Source        SourceType           `gluamapper:"source" json:"source"`
	Indexed       bool                 `gluamapper:"indexed" json:"indexed"`
	Balance       string               `gluamapper:"balance" json:"balance"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Source: SourceType{
			Type: defaultSourceType,
			Path: defaultSourceFile,
		},

		Indexed: true,
		Balance: defaultBalance,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Source.Type = strings.ToLower(options.Source.Type)
	switch options.Source.Type {
	case source.TextType, source.LevelDBType:
	default:
		return nil, fault.ErrInvalidSourceType
	}
	if "" == options.Source.Path {
		return nil, fault.ErrMissingSourcePath
	}

	options.Balance = strings.ToLower(options.Balance)
	switch options.Balance {
	case "avl", "none":
	default:
		return nil, fault.ErrInvalidBalance
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Source.Path,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// create the log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
