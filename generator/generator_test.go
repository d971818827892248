// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package generator_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tmto/chain"
	"github.com/bitmark-inc/tmto/digest"
	"github.com/bitmark-inc/tmto/domain"
	"github.com/bitmark-inc/tmto/fault"
	"github.com/bitmark-inc/tmto/generator"
	"github.com/bitmark-inc/tmto/table"
)

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "generator-test")
	if nil != err {
		panic(err)
	}

	logConfig := logger.Configuration{
		Directory: directory,
		File:      "generator.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(directory)
	os.Exit(rc)
}

func testParameters(t *testing.T) generator.Parameters {
	return generator.Parameters{
		Tables:    2,
		Chains:    10,
		Columns:   4,
		Directory: filepath.Join(t.TempDir(), "tables"),
	}
}

// always fails
type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestValidate(t *testing.T) {
	valid := generator.Parameters{
		Tables:    1,
		Chains:    1,
		Columns:   1,
		Directory: "x",
	}
	require.NoError(t, valid.Validate(), "minimal parameters")

	items := []struct {
		modify   func(p *generator.Parameters)
		expected error
	}{
		{func(p *generator.Parameters) { p.Tables = 0 }, fault.ErrTableCount},
		{func(p *generator.Parameters) { p.Tables = 256 }, fault.ErrTableCount},
		{func(p *generator.Parameters) { p.Chains = 0 }, fault.ErrChainCount},
		{func(p *generator.Parameters) { p.Chains = domain.Size }, fault.ErrTooManyChains},
		{func(p *generator.Parameters) { p.Columns = 0 }, fault.ErrColumnCount},
		{func(p *generator.Parameters) { p.Directory = "" }, fault.ErrMissingDirectory},
		{func(p *generator.Parameters) { p.Hash = "md5" }, fault.ErrUnknownHash},
		{func(p *generator.Parameters) { p.Parallelism = -1 }, fault.ErrWrongParallelism},
		{func(p *generator.Parameters) { p.ProgressInterval = -time.Second }, fault.ErrWrongProgressInterval},
		{func(p *generator.Parameters) {
			p.Tables = generator.MaximumTables
			p.Chains = domain.Maximum
			p.Hash = digest.SHA3256
		}, nil},
	}

	for i, item := range items {
		p := valid
		item.modify(&p)
		assert.Equal(t, item.expected, p.Validate(), "%d: %+v", i, p)
	}
}

func TestRunTwoTables(t *testing.T) {
	p := testParameters(t)

	result, err := generator.Run(p, nil, logger.New("generator"))
	require.NoError(t, err, "run")
	require.Len(t, result.StartPoints, 10, "start points")
	assert.Empty(t, result.Failed, "failed tables")
	assert.Equal(t, map[int]string{
		1: filepath.Join(p.Directory, "1.txt"),
		2: filepath.Join(p.Directory, "2.txt"),
	}, result.Files, "written files")

	hasher, err := digest.New(digest.SHA256)
	require.NoError(t, err, "hasher")
	builder := chain.NewDefault(hasher)

	tables := make([]*table.Table, 0, 2)
	for id := 1; id <= 2; id += 1 {
		fileName := result.Files[id]
		data, err := os.ReadFile(fileName)
		require.NoError(t, err, "read: %s", fileName)

		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		require.Len(t, lines, 11, "line count: %s", fileName)
		assert.Equal(t, table.Header{Chains: 10, Columns: 4, Reduction: uint8(id)}.String(), lines[0], "header: %s", fileName)

		tbl, err := table.Read(bytes.NewReader(data))
		require.NoError(t, err, "parse: %s", fileName)
		assert.Equal(t, uint8(id), tbl.Reduction, "reduction: %s", fileName)

		for i, pair := range tbl.Pairs {
			assert.Equal(t, result.StartPoints[i], pair.Start, "%s: row: %d start", fileName, i)
			assert.True(t, domain.Valid(pair.End), "%s: row: %d end out of domain", fileName, i)
			assert.Equal(t, builder.Build(pair.Start, uint8(id), 4), pair.End, "%s: row: %d end not reproduced", fileName, i)
		}
		tables = append(tables, tbl)
	}

	different := 0
	for i := range tables[0].Pairs {
		if tables[0].Pairs[i].End != tables[1].Pairs[i].End {
			different += 1
		}
	}
	assert.NotZero(t, different, "rotations 1 and 2 gave identical tables")

	for id := 1; id <= 2; id += 1 {
		v, err := generator.VerifyFile(result.Files[id], "", 0)
		require.NoError(t, err, "verify: %d", id)
		assert.Equal(t, 10, v.Checked, "checked rows: %d", id)
	}
}

func TestRunWithLimitAndSHA3(t *testing.T) {
	p := testParameters(t)
	p.Tables = 5
	p.Parallelism = 1
	p.Hash = digest.SHA3256

	result, err := generator.Run(p, nil, logger.New("generator"))
	require.NoError(t, err, "run")
	assert.Len(t, result.Files, 5, "written files")

	_, err = generator.VerifyFile(result.Files[5], digest.SHA3256, 0)
	assert.NoError(t, err, "verify with matching hash")

	v, err := generator.VerifyFile(result.Files[5], digest.SHA256, 3)
	assert.ErrorIs(t, err, fault.ErrChainMismatch, "verify with wrong hash")
	require.NotNil(t, v, "verification")
	assert.Equal(t, 3, v.Checked, "sample not applied")
}

func TestRunEntropyFailure(t *testing.T) {
	p := testParameters(t)

	result, err := generator.Run(p, brokenReader{}, logger.New("generator"))
	assert.ErrorIs(t, err, fault.ErrEntropy, "entropy failure not reported")
	assert.Nil(t, result, "result after abort")

	entries, err := os.ReadDir(p.Directory)
	require.NoError(t, err, "read directory")
	assert.Empty(t, entries, "files written after entropy failure")
}

func TestRunInvalidParameters(t *testing.T) {
	p := testParameters(t)
	p.Chains = domain.Size

	_, err := generator.Run(p, brokenReader{}, logger.New("generator"))
	assert.Equal(t, fault.ErrTooManyChains, err, "oversized chain count accepted")

	_, err = os.Stat(p.Directory)
	assert.True(t, os.IsNotExist(err), "directory created for rejected run")
}

func TestRunTableFailureDoesNotStopOthers(t *testing.T) {
	p := testParameters(t)
	p.Tables = 4

	// occupy the names of tables 2 and 3 with non-empty directories
	for _, id := range []int{2, 3} {
		blocker := filepath.Join(p.Directory, table.FileName(id))
		require.NoError(t, os.MkdirAll(filepath.Join(blocker, "occupied"), 0700), "blocker: %d", id)
	}

	result, err := generator.Run(p, nil, logger.New("generator"))
	require.Error(t, err, "failure not reported")
	require.NotNil(t, result, "result")

	assert.Equal(t, []int{2, 3}, result.Failed, "failed tables")
	assert.Len(t, result.Files, 2, "written files")

	errs := multierr.Errors(err)
	require.Len(t, errs, 2, "combined errors")
	for i, expected := range []int{2, 3} {
		id, ok := fault.TableID(errs[i])
		assert.True(t, ok, "not a table error: %v", errs[i])
		assert.Equal(t, expected, id, "wrong table id")
	}

	for _, id := range []int{1, 4} {
		_, err := generator.VerifyFile(result.Files[id], "", 0)
		assert.NoError(t, err, "table: %d", id)
	}

	leftovers, err := filepath.Glob(filepath.Join(p.Directory, "*.tmp"))
	require.NoError(t, err, "glob")
	assert.Empty(t, leftovers, "temporary files left behind")
}
