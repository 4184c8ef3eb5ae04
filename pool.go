// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gammazero/deque"
	"go.uber.org/zap"
)

// A Pool is a fixed set of worker goroutines that cooperate through [Join].
// Each worker owns a queue of deferred join halves, and idle workers steal
// from each other's queues. Work submitted from outside the pool goes through
// a shared injection queue.
//
// Most programs use the lazily created [Default] pool. [New] creates isolated
// pools, which is mainly useful for tests and for keeping unrelated workloads
// from competing for the same workers.
type Pool struct {
	config  Config
	logger  *zap.Logger
	metrics *instruments
	workers []*Worker

	injectMu    sync.Mutex
	injectQueue deque.Deque[jobRef]
	injected    atomic.Int64

	closed    atomic.Bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates and starts a pool. It returns only once every worker is running
// and ready to take work, so no caller ever sees a partially started pool.
//
// The pool runs until [Pool.Close] is called. Idle workers poll for work
// without ever parking, so an unused pool still consumes CPU.
func New(opts ...Option) (*Pool, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if err := config.complete(); err != nil {
		return nil, err
	}

	metrics, err := newInstruments(config.MeterProvider)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		config:  config,
		logger:  config.Logger.Named("forkjoin"),
		metrics: metrics,
		workers: make([]*Worker, config.WorkerCount),
	}
	for i := range p.workers {
		p.workers[i] = &Worker{
			pool:  p,
			index: i,
			attrs: workerAttributes(i),
		}
	}

	p.wg.Add(len(p.workers))
	for _, w := range p.workers {
		go w.run()
	}
	for _, w := range p.workers {
		w.ready.Wait()
	}

	p.logger.Info("pool started",
		zap.Int("workers", config.WorkerCount),
		zap.Stringer("panic_policy", config.PanicPolicy))
	return p, nil
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool, creating it on first use from the
// settings read by [ConfigFromEnv]. Concurrent first callers all block until
// the pool is fully started.
//
// If the environment describes an invalid configuration, Default logs a
// warning and falls back to a pool with a single worker rather than failing.
//
// The default pool is meant to live as long as the process. Closing it makes
// every later use of Default panic.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = newDefaultPool()
	})
	return defaultPool
}

func newDefaultPool() *Pool {
	opts, err := ConfigFromEnv()
	if err == nil {
		var p *Pool
		if p, err = New(opts...); err == nil {
			return p
		}
	}
	zap.L().Named("forkjoin").Warn("invalid default pool configuration, falling back to a single worker",
		zap.Error(err))
	p, err := New(WithWorkerCount(1))
	if err != nil {
		panic(fmt.Sprintf("unable to create fallback pool: %v", err))
	}
	return p
}

// WorkerCount returns the number of worker goroutines in the pool.
func (p *Pool) WorkerCount() int {
	return len(p.workers)
}

// PanicPolicy returns the policy the pool applies to panicking closures.
func (p *Pool) PanicPolicy() PanicPolicy {
	return p.config.PanicPolicy
}

// Stats returns a snapshot of the pool's activity counters.
func (p *Pool) Stats() Stats {
	s := Stats{
		Workers:  len(p.workers),
		Injected: p.injected.Load(),
	}
	for _, w := range p.workers {
		s.Joins += w.stats.joins.Load()
		s.Reclaimed += w.stats.reclaimed.Load()
		s.Stolen += w.stats.stolen.Load()
		s.Panicked += w.stats.panicked.Load()
	}
	return s
}

// Close stops the pool's workers and waits for them to exit. It must not be
// called while any [Join] or [Call] on the pool is still running, since work
// still queued at that point would never be executed. Calling Close more than
// once has no additional effect.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.wg.Wait()
		p.logger.Info("pool closed")
	})
}

func (p *Pool) inject(jobs ...jobRef) {
	if p.closed.Load() {
		panic(ErrPoolClosed)
	}
	p.injectMu.Lock()
	for _, job := range jobs {
		p.injectQueue.PushBack(job)
	}
	p.injectMu.Unlock()

	p.injected.Add(int64(len(jobs)))
	p.metrics.injected.Add(context.Background(), int64(len(jobs)))
}

func (p *Pool) popInjected() (jobRef, bool) {
	p.injectMu.Lock()
	defer p.injectMu.Unlock()
	if p.injectQueue.Len() == 0 {
		return nil, false
	}
	return p.injectQueue.PopFront(), true
}

// handlePanic records a panic caught on w and returns the error to re-panic
// with, or nil if the pool suppresses panics.
func (p *Pool) handlePanic(w *Worker, perr *PanicError) *PanicError {
	w.stats.panicked.Add(1)
	p.metrics.panicked.Add(context.Background(), 1, w.attrs)
	if p.config.PanicPolicy == PanicPropagate {
		return perr
	}
	p.logger.Error("panic in job suppressed",
		zap.Int("worker", w.index),
		zap.Any("panic", perr.Value),
		zap.String("stack", perr.Stack))
	return nil
}
