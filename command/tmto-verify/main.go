// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/tmto/generator"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// show at most this many mismatching rows per file
const maximumReported = 10

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "sample", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "hash", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'H'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--sample=K] [--hash=sha256|sha3-256] FILE...", program)
	}

	sample := 0
	if n := len(options["sample"]); n > 0 {
		sample, err = strconv.Atoi(options["sample"][n-1])
		if nil != err || sample < 0 {
			exitwithstatus.Message("%s: sample: %q is not a count", program, options["sample"][n-1])
		}
	}

	hash := ""
	if n := len(options["hash"]); n > 0 {
		hash = options["hash"][n-1]
	}

	verbose := len(options["verbose"]) > 0

	failed := 0
	for _, fileName := range arguments {
		v, err := generator.VerifyFile(fileName, hash, sample)
		if nil != err && nil == v {
			fmt.Printf("%s: error: %s\n", fileName, err)
			failed += 1
			continue
		}

		if verbose {
			fmt.Printf("%s: %s  checked: %d\n", fileName, v.Header, v.Checked)
		}
		if nil != err {
			fmt.Printf("%s: %s\n", fileName, err)
			for i, row := range v.Mismatches {
				if i >= maximumReported {
					fmt.Printf("%s: ...\n", fileName)
					break
				}
				fmt.Printf("%s: row: %d mismatch\n", fileName, row)
			}
			failed += 1
			continue
		}
		fmt.Printf("%s: ok\n", fileName)
	}

	if 0 != failed {
		exitwithstatus.Message("%s: %d of %d files failed verification", program, failed, len(arguments))
	}
}
