// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package envconf_test

import (
	"testing"

	"github.com/petenewcomb/forkjoin-go/internal/envconf"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chk := require.New(t)
	t.Setenv("FORKJOIN_WORKER_COUNT", "")
	t.Setenv("FORKJOIN_PANIC_POLICY", "")

	s, err := envconf.Load(envconf.New())
	chk.NoError(err)
	chk.Equal(0, s.WorkerCount)
	chk.Equal("propagate", s.PanicPolicy)
}

func TestLoadFromEnvironment(t *testing.T) {
	chk := require.New(t)
	t.Setenv("FORKJOIN_WORKER_COUNT", "3")
	t.Setenv("FORKJOIN_PANIC_POLICY", " Suppress ")

	s, err := envconf.Load(envconf.New())
	chk.NoError(err)
	chk.Equal(3, s.WorkerCount)
	chk.Equal("suppress", s.PanicPolicy)
}

func TestLoadRejectsMalformedWorkerCount(t *testing.T) {
	var testcases = map[string]string{
		"not_a_number": "many",
		"negative":     "-2",
	}
	for name, value := range testcases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("FORKJOIN_WORKER_COUNT", value)
			_, err := envconf.Load(envconf.New())
			require.Error(t, err)
		})
	}
}

func TestLoadExplicitOverride(t *testing.T) {
	chk := require.New(t)
	t.Setenv("FORKJOIN_WORKER_COUNT", "")
	v := envconf.New()
	v.Set(envconf.WorkerCountKey, 7)

	s, err := envconf.Load(v)
	chk.NoError(err)
	chk.Equal(7, s.WorkerCount)
}
