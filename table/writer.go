// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/tmto/chain"
	"github.com/bitmark-inc/tmto/fault"
)

const (
	writeBufferSize = 64 * 1024
	filePermission  = 0644
)

// Write - header and one row per pair, through a buffered writer
//
// the first error encountered is returned; a short table is never
// reported as success
func Write(w io.Writer, header Header, pairs []chain.Pair) error {
	if uint64(len(pairs)) != header.Chains {
		return fault.ErrRowCountMismatch
	}

	buffered := bufio.NewWriterSize(w, writeBufferSize)

	if _, err := buffered.WriteString(header.String() + "\n"); nil != err {
		return err
	}

	line := make([]byte, 0, 48)
	for _, p := range pairs {
		line = strconv.AppendUint(line[:0], p.Start, 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, p.End, 10)
		line = append(line, '\n')
		if _, err := buffered.Write(line); nil != err {
			return err
		}
	}

	return buffered.Flush()
}

// WriteFile - write a table as <reduction>.txt in the directory
//
// data goes to a temporary file in the same directory which is only
// renamed to the final name once completely written and synced, on
// failure the temporary file is removed
func WriteFile(directory string, header Header, pairs []chain.Pair) (string, error) {
	name := FileName(int(header.Reduction))
	fileName := filepath.Join(directory, name)

	f, err := os.CreateTemp(directory, name+".*.tmp")
	if nil != err {
		return "", err
	}
	temporary := f.Name()

	err = writeAndClose(f, header, pairs)
	if nil == err {
		err = os.Rename(temporary, fileName)
	}
	if nil != err {
		os.Remove(temporary)
		return "", err
	}

	return fileName, nil
}

// the file is always closed
func writeAndClose(f *os.File, header Header, pairs []chain.Pair) error {
	err := f.Chmod(filePermission)
	if nil == err {
		err = Write(f, header, pairs)
	}
	if nil == err {
		err = f.Sync()
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}
