// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tmto/generator"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "tables", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "parallelism", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "hash", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'H'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--tables=1..255] [--parallelism=N] [--hash=sha256|sha3-256] NCHAINS NCOLUMNS [DIRECTORY]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = masterConfiguration.applyArguments(options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s  (try --help)", program, err)
	}

	// reject bad parameters before setting up any files
	parameters := masterConfiguration.parameters()
	if err := parameters.Validate(); nil != err {
		exitwithstatus.Message("%s: invalid parameters: %s", program, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	logging, err := masterConfiguration.loggerConfiguration()
	if nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	result, err := generator.Run(parameters, nil, logger.New("generator"))
	if nil != err && nil == result {
		log.Criticalf("generation aborted: %s", err)
		exitwithstatus.Message("%s: generation aborted: %s", program, err)
	}
	if nil != err {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", program, e)
		}
		exitwithstatus.Message("%s: %d of %d tables failed", program, len(result.Failed), parameters.Tables)
	}

	if 0 == len(options["quiet"]) {
		for id := 1; id <= parameters.Tables; id += 1 {
			fmt.Printf("table %d: %s\n", id, result.Files[id])
		}
		fmt.Printf("%d tables of %d chains × %d columns in %s\n", parameters.Tables, parameters.Chains, parameters.Columns, result.Elapsed)
	}
}
