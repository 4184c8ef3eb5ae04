// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/petenewcomb/forkjoin-go"

// Stats is a point-in-time snapshot of a pool's activity counters. Counters
// are kept per worker and summed on demand, so a snapshot taken while joins
// are running is not atomic across workers.
type Stats struct {
	Workers int

	// Joins counts Join calls made by pool workers.
	Joins int64

	// Reclaimed counts deferred join halves that were executed by the worker
	// that deferred them.
	Reclaimed int64

	// Stolen counts deferred join halves that were executed by another
	// worker.
	Stolen int64

	// Injected counts closures submitted from outside the pool.
	Injected int64

	// Panicked counts closures that panicked, under either policy.
	Panicked int64
}

type workerStats struct {
	joins     atomic.Int64
	reclaimed atomic.Int64
	stolen    atomic.Int64
	panicked  atomic.Int64
}

// Mirrors the counters in Stats into OpenTelemetry instruments. Join counts
// are not exported since they are hot enough that even a no-op instrument
// call would show up in profiles.
type instruments struct {
	injected  metric.Int64Counter
	reclaimed metric.Int64Counter
	stolen    metric.Int64Counter
	panicked  metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(meterName)
	var ins instruments
	var err error
	if ins.injected, err = meter.Int64Counter("forkjoin.jobs.injected",
		metric.WithDescription("Closures submitted to the pool from outside its workers.")); err != nil {
		return nil, fmt.Errorf("creating injected counter: %w", err)
	}
	if ins.reclaimed, err = meter.Int64Counter("forkjoin.jobs.reclaimed",
		metric.WithDescription("Deferred join halves executed by the worker that deferred them.")); err != nil {
		return nil, fmt.Errorf("creating reclaimed counter: %w", err)
	}
	if ins.stolen, err = meter.Int64Counter("forkjoin.jobs.stolen",
		metric.WithDescription("Deferred join halves executed by another worker.")); err != nil {
		return nil, fmt.Errorf("creating stolen counter: %w", err)
	}
	if ins.panicked, err = meter.Int64Counter("forkjoin.jobs.panicked",
		metric.WithDescription("Closures that panicked.")); err != nil {
		return nil, fmt.Errorf("creating panicked counter: %w", err)
	}
	return &ins, nil
}

func workerAttributes(index int) metric.MeasurementOption {
	return metric.WithAttributeSet(attribute.NewSet(attribute.Int("worker", index)))
}
