// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"bytes"
	"testing"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	chk := require.New(t)
	out, err := runCommand(t, "sort", "--size", "5000", "--workers", "3", "--log-level", "error")
	chk.NoError(err)
	chk.Contains(out, "sorted 5000 elements on 3 workers")
}

func TestMapCollectCommand(t *testing.T) {
	chk := require.New(t)
	out, err := runCommand(t, "mapcollect", "--size", "1000", "--workers", "2", "--log-level", "error")
	chk.NoError(err)
	chk.Contains(out, "collected 1000 elements on 2 workers")
}

func TestWorkersFromEnvironment(t *testing.T) {
	chk := require.New(t)
	t.Setenv("FORKJOIN_WORKER_COUNT", "2")
	out, err := runCommand(t, "mapcollect", "--size", "10", "--log-level", "error")
	chk.NoError(err)
	chk.Contains(out, "on 2 workers")
}

func TestInvalidPanicPolicy(t *testing.T) {
	chk := require.New(t)
	_, err := runCommand(t, "sort", "--size", "10", "--panic-policy", "shrug")
	chk.ErrorIs(err, forkjoin.ErrInvalidPanicPolicy)
}

func TestInvalidLogLevel(t *testing.T) {
	chk := require.New(t)
	_, err := runCommand(t, "sort", "--size", "10", "--log-level", "loud")
	chk.Error(err)
}

func TestPartition(t *testing.T) {
	chk := require.New(t)
	s := []int{5, 1, 9, 3, 7, 3, 8}
	mid := partition(s)
	for i := range mid {
		chk.Less(s[i], s[mid])
	}
	for i := mid + 1; i < len(s); i++ {
		chk.GreaterOrEqual(s[i], s[mid])
	}
}
