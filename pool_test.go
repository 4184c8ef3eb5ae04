// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin_test

import (
	"testing"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewInvalidWorkerCount(t *testing.T) {
	chk := require.New(t)
	for _, n := range []int{0, -1} {
		p, err := forkjoin.New(forkjoin.WithWorkerCount(n))
		chk.ErrorIs(err, forkjoin.ErrInvalidWorkerCount)
		chk.Nil(p)
	}
}

func TestNewInvalidPanicPolicy(t *testing.T) {
	chk := require.New(t)
	p, err := forkjoin.New(forkjoin.WithPanicPolicy(forkjoin.PanicPolicy(7)))
	chk.ErrorIs(err, forkjoin.ErrInvalidPanicPolicy)
	chk.Nil(p)
}

func TestNewStartsWorkers(t *testing.T) {
	chk := require.New(t)
	p := newTestPool(t, 5, forkjoin.WithMeterProvider(noop.NewMeterProvider()))
	chk.Equal(5, p.WorkerCount())
	chk.Equal(forkjoin.PanicPropagate, p.PanicPolicy())
	chk.Equal(forkjoin.Stats{Workers: 5}, p.Stats())
}

func TestPoolLogsLifecycle(t *testing.T) {
	chk := require.New(t)
	core, logs := observer.New(zapcore.DebugLevel)
	p, err := forkjoin.New(
		forkjoin.WithWorkerCount(3),
		forkjoin.WithLogger(zap.New(core)),
	)
	chk.NoError(err)

	started := logs.FilterMessage("pool started").All()
	chk.Len(started, 1)
	chk.Equal("forkjoin", started[0].LoggerName)
	chk.EqualValues(3, started[0].ContextMap()["workers"])
	chk.Equal("propagate", started[0].ContextMap()["panic_policy"])
	chk.Equal(3, logs.FilterMessage("worker registered").Len())

	p.Close()
	chk.Equal(1, logs.FilterMessage("pool closed").Len())
	chk.Equal(3, logs.FilterMessage("worker exited").Len())
}

func TestCloseLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	chk := require.New(t)

	p, err := forkjoin.New(forkjoin.WithWorkerCount(4), forkjoin.WithLogger(nil))
	chk.NoError(err)
	chk.Equal(55, forkjoin.Call(p, func(w *forkjoin.Worker) int {
		return fib(w, 10)
	}))
	p.Close()
	p.Close()
}

func TestClosedPoolPanics(t *testing.T) {
	chk := require.New(t)
	p, err := forkjoin.New(forkjoin.WithWorkerCount(1), forkjoin.WithLogger(nil))
	chk.NoError(err)
	p.Close()

	chk.PanicsWithValue(forkjoin.ErrPoolClosed, func() {
		forkjoin.Call(p, func(*forkjoin.Worker) int { return 1 })
	})
	chk.PanicsWithValue(forkjoin.ErrPoolClosed, func() {
		forkjoin.JoinOn(p,
			func(*forkjoin.Worker) int { return 1 },
			func(*forkjoin.Worker) int { return 2 },
		)
	})
}

func TestDefaultPool(t *testing.T) {
	chk := require.New(t)
	p := forkjoin.Default()
	chk.Same(p, forkjoin.Default())
	chk.Positive(p.WorkerCount())
}

func TestStatsAccounting(t *testing.T) {
	chk := require.New(t)
	p := newTestPool(t, 4)
	chk.Equal(6765, forkjoin.Call(p, func(w *forkjoin.Worker) int {
		return fib(w, 20)
	}))

	// fib(20) makes one join per call with n >= 2.
	s := p.Stats()
	chk.EqualValues(10945, s.Joins)
	chk.Equal(s.Joins, s.Reclaimed+s.Stolen)
	chk.EqualValues(1, s.Injected)
	chk.Zero(s.Panicked)
}

func TestSingleWorkerNeverSteals(t *testing.T) {
	chk := require.New(t)
	p := newTestPool(t, 1)
	forkjoin.Call(p, func(w *forkjoin.Worker) int {
		return fib(w, 15)
	})
	s := p.Stats()
	chk.Zero(s.Stolen)
	chk.Equal(s.Joins, s.Reclaimed)
}
