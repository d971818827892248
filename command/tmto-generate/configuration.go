// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tmto/configuration"
	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/fault"
	"github.com/bitmark-inc/tmto/generator"
	"github.com/bitmark-inc/tmto/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultTableDirectory   = "tables"
	defaultTables           = 1
	defaultProgressInterval = 10 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "tmto-generate.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"generator":       "info",
		logger.DefaultTag: "critical",
	}
)

type LoggerType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

type Configuration struct {
	DataDirectory    string     `gluamapper:"data_directory" json:"data_directory"`
	TableDirectory   string     `gluamapper:"table_directory" json:"table_directory"`
	Tables           int        `gluamapper:"tables" json:"tables"`
	Chains           int64      `gluamapper:"chains" json:"chains"`
	Columns          int64      `gluamapper:"columns" json:"columns"`
	Hash             string     `gluamapper:"hash" json:"hash"`
	Parallelism      int        `gluamapper:"parallelism" json:"parallelism"`
	ProgressInterval int        `gluamapper:"progress_interval" json:"progress_interval"`
	Logging          LoggerType `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory:    ".",
		TableDirectory:   defaultTableDirectory,
		Tables:           defaultTables,
		Hash:             digest.Default,
		Parallelism:      0,
		ProgressInterval: defaultProgressInterval,

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}

	dataDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(configurationFileName) {
			return nil, fault.ErrNotFoundConfigFile
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	}

	// Lua numbers are signed, reject before conversion to counts
	if options.Chains < 0 {
		return nil, fault.ErrChainCount
	}
	if options.Columns < 0 {
		return nil, fault.ErrColumnCount
	}
	if options.ProgressInterval < 0 {
		return nil, fault.ErrWrongProgressInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	options.Hash = strings.ToLower(options.Hash)
	if !digest.Valid(options.Hash) {
		return nil, fault.ErrUnknownHash
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.TableDirectory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// done
	return options, nil
}

// command line options and arguments override the file
//
// arguments are: NCHAINS NCOLUMNS [DIRECTORY], a relative DIRECTORY
// is taken from the current directory
func (c *Configuration) applyArguments(options map[string][]string, arguments []string) error {

	if n := len(options["tables"]); n > 0 {
		tables, err := strconv.Atoi(options["tables"][n-1])
		if nil != err {
			return fmt.Errorf("tables: %q is not a number", options["tables"][n-1])
		}
		c.Tables = tables
	}

	if n := len(options["parallelism"]); n > 0 {
		parallelism, err := strconv.Atoi(options["parallelism"][n-1])
		if nil != err {
			return fmt.Errorf("parallelism: %q is not a number", options["parallelism"][n-1])
		}
		c.Parallelism = parallelism
	}

	if n := len(options["hash"]); n > 0 {
		c.Hash = strings.ToLower(options["hash"][n-1])
		if !digest.Valid(c.Hash) {
			return fault.ErrUnknownHash
		}
	}

	switch len(arguments) {
	case 0:
		if 0 == c.Chains || 0 == c.Columns {
			return fault.ErrMissingArguments
		}
		return nil
	case 2, 3:
	default:
		return fault.ErrMissingArguments
	}

	chains, err := strconv.ParseInt(arguments[0], 10, 64)
	if nil != err {
		return fmt.Errorf("chains: %q is not a number", arguments[0])
	}
	if chains < 0 {
		return fault.ErrChainCount
	}
	columns, err := strconv.ParseInt(arguments[1], 10, 64)
	if nil != err {
		return fmt.Errorf("columns: %q is not a number", arguments[1])
	}
	if columns < 0 {
		return fault.ErrColumnCount
	}
	c.Chains = chains
	c.Columns = columns

	if 3 == len(arguments) {
		directory, err := filepath.Abs(arguments[2])
		if nil != err {
			return err
		}
		c.TableDirectory = directory
	}
	return nil
}

// create the log directory and convert to the logger's form
func (c *Configuration) loggerConfiguration() (logger.Configuration, error) {
	if err := util.EnsureDirectory(c.Logging.Directory, 0700); nil != err {
		return logger.Configuration{}, err
	}
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    c.Logging.Levels,
	}, nil
}

func (c *Configuration) parameters() generator.Parameters {
	return generator.Parameters{
		Tables:           c.Tables,
		Chains:           uint64(c.Chains),
		Columns:          uint64(c.Columns),
		Directory:        c.TableDirectory,
		Hash:             c.Hash,
		Parallelism:      c.Parallelism,
		ProgressInterval: time.Duration(c.ProgressInterval) * time.Second,
	}
}
