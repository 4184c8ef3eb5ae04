// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"context"
	"runtime"
	"sync"

	"github.com/gammazero/deque"
	"github.com/petenewcomb/forkjoin-go/internal/latch"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// A Worker identifies one of a [Pool]'s worker goroutines. Every closure run
// by the pool receives the Worker that is running it, and must pass that same
// Worker to any [Join] it makes. A Worker is only meaningful for the duration
// of the closure call that received it and must not be retained or handed to
// other goroutines.
type Worker struct {
	pool  *Pool
	index int
	attrs metric.MeasurementOption

	// The owner pushes and pops at the back; thieves take from the front.
	mu    sync.Mutex
	queue deque.Deque[jobRef]

	ready latch.Latch
	stats workerStats
}

// Index returns the worker's position in its pool, in [0, WorkerCount).
func (w *Worker) Index() int {
	return w.index
}

// Pool returns the pool the worker belongs to.
func (w *Worker) Pool() *Pool {
	return w.pool
}

func (w *Worker) push(job jobRef) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue.PushBack(job)
}

// reclaim removes job from the back of the worker's own queue if it is still
// there, meaning no other worker has stolen it.
func (w *Worker) reclaim(job jobRef) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queue.Len() == 0 || w.queue.Back() != job {
		return false
	}
	w.queue.PopBack()
	return true
}

func (w *Worker) popOwn() (jobRef, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.queue.Len() == 0 {
		return nil, false
	}
	return w.queue.PopBack(), true
}

// stealFrom takes the oldest job from victim's queue. It never waits for the
// victim's lock: a contended queue is skipped so that thieves cannot form
// chains of workers blocked on each other.
func (w *Worker) stealFrom(victim *Worker) (jobRef, bool) {
	if !victim.mu.TryLock() {
		return nil, false
	}
	defer victim.mu.Unlock()
	if victim.queue.Len() == 0 {
		return nil, false
	}
	return victim.queue.PopFront(), true
}

func (w *Worker) steal() (jobRef, bool) {
	workers := w.pool.workers
	n := len(workers)
	for offset := 1; offset < n; offset++ {
		victim := workers[(w.index+offset)%n]
		if job, ok := w.stealFrom(victim); ok {
			w.stats.stolen.Add(1)
			w.pool.metrics.stolen.Add(context.Background(), 1, w.attrs)
			if ce := w.pool.logger.Check(zap.DebugLevel, "job stolen"); ce != nil {
				ce.Write(zap.Int("worker", w.index), zap.Int("victim", victim.index))
			}
			return job, true
		}
	}
	return nil, false
}

func (w *Worker) findWork() (jobRef, bool) {
	if job, ok := w.popOwn(); ok {
		w.stats.reclaimed.Add(1)
		w.pool.metrics.reclaimed.Add(context.Background(), 1, w.attrs)
		return job, true
	}
	if job, ok := w.pool.popInjected(); ok {
		return job, true
	}
	return w.steal()
}

func (w *Worker) run() {
	defer w.pool.wg.Done()

	w.pool.logger.Debug("worker registered", zap.Int("worker", w.index))
	w.ready.Set()

	for !w.pool.closed.Load() {
		if job, ok := w.findWork(); ok {
			job.execute(w)
			continue
		}
		// Idle workers never park, they just give other goroutines a turn
		// before polling again.
		runtime.Gosched()
	}

	w.pool.logger.Debug("worker exited", zap.Int("worker", w.index))
}
