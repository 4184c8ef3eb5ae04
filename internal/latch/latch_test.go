// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package latch_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/petenewcomb/forkjoin-go/internal/latch"
	"github.com/stretchr/testify/require"
)

func TestLatchZeroValueUnset(t *testing.T) {
	chk := require.New(t)
	var l latch.Latch
	chk.False(l.Probe())
}

func TestLatchWaitAfterSet(t *testing.T) {
	chk := require.New(t)
	var l latch.Latch
	l.Set()
	chk.True(l.Probe())

	// Must not block since the latch was already set.
	l.Wait()

	// Setting again is harmless.
	l.Set()
	chk.True(l.Probe())
	l.Wait()
}

func TestLatchReleasesWaiters(t *testing.T) {
	chk := require.New(t)
	var l latch.Latch
	var payload int
	var released atomic.Int32

	const waiters = 8
	var wg sync.WaitGroup
	wg.Add(waiters)
	for range waiters {
		go func() {
			defer wg.Done()
			l.Wait()
			// Writes made before Set must be visible after Wait.
			if payload == 42 {
				released.Add(1)
			}
		}()
	}

	payload = 42
	l.Set()
	wg.Wait()
	chk.Equal(int32(waiters), released.Load())
}
