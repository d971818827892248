// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/tmto/chain"
	"github.com/bitmark-inc/tmto/domain"
	"github.com/bitmark-inc/tmto/fault"
)

// limit the up front allocation taken from an untrusted header
const maximumPreallocate = 1 << 20

// ReadFile - read and validate a table file
func ReadFile(fileName string) (*Table, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read - parse a table, checking the header, the row count and that
// every value lies in the password domain
func Read(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); nil != err {
			return nil, err
		}
		return nil, fault.ErrInvalidHeader
	}
	header, err := parseHeader(scanner.Text())
	if nil != err {
		return nil, err
	}

	capacity := header.Chains
	if capacity > maximumPreallocate {
		capacity = maximumPreallocate
	}
	t := &Table{
		Header: header,
		Pairs:  make([]chain.Pair, 0, capacity),
	}

	lineNumber := 1
	for scanner.Scan() {
		lineNumber += 1
		p, err := parseRow(scanner.Text())
		if nil != err {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		t.Pairs = append(t.Pairs, p)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	if uint64(len(t.Pairs)) != header.Chains {
		return nil, fault.ErrRowCountMismatch
	}
	return t, nil
}

func parseHeader(line string) (Header, error) {
	var h Header
	var reduction uint64
	n, err := fmt.Sscanf(line, headerFormat, &h.Chains, &h.Columns, &reduction)
	if nil != err || 3 != n || reduction > 255 {
		return Header{}, fault.ErrInvalidHeader
	}
	h.Reduction = uint8(reduction)

	// reject anything not in canonical form
	if h.String() != line {
		return Header{}, fault.ErrInvalidHeader
	}
	return h, nil
}

func parseRow(line string) (chain.Pair, error) {
	fields := strings.Split(line, " ")
	if 2 != len(fields) {
		return chain.Pair{}, fault.ErrInvalidRow
	}

	values := [2]uint64{}
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if nil != err {
			return chain.Pair{}, fault.ErrInvalidRow
		}
		if !domain.Valid(v) {
			return chain.Pair{}, fault.ErrValueOutOfDomain
		}
		values[i] = v
	}

	return chain.Pair{Start: values[0], End: values[1]}, nil
}
