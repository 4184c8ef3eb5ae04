// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"context"
)

// Join runs a and b, potentially in parallel, and returns both results once
// both have completed.
//
// w must be the [Worker] passed to the closure calling Join, or nil when Join
// is called from outside any pool. In the latter case both closures are
// submitted to the [Default] pool and the caller waits for them.
//
// Inside the pool, b is first offered to other workers by pushing it onto w's
// queue, and a then runs on the calling goroutine. If nobody stole b in the
// meantime, it also runs on the calling goroutine; otherwise Join waits for
// the worker that stole it to finish. Either way, each closure runs exactly
// once and receives the Worker that runs it, which it must use for any nested
// Join.
//
// If either closure panics, the pool's [PanicPolicy] applies. Under
// [PanicPropagate], Join waits for the other closure to finish and then
// panics with the [*PanicError] of a (or, if only b panicked, of b).
func Join[A, B any](w *Worker, a func(*Worker) A, b func(*Worker) B) (A, B) {
	if a == nil || b == nil {
		panic("join function must be non-nil")
	}
	if w == nil {
		return JoinOn(Default(), a, b)
	}

	w.stats.joins.Add(1)

	var rb B
	jb := newJob(b, &rb)
	w.push(jb)

	ra, pa := runGuarded(w, a)

	if w.reclaim(jb) {
		w.stats.reclaimed.Add(1)
		w.pool.metrics.reclaimed.Add(context.Background(), 1, w.attrs)
		jb.execute(w)
	} else {
		jb.wait()
	}

	repanic(pa, jb.panicked)
	return ra, rb
}

// Do is the variant of [Join] for closures without results.
func Do(w *Worker, a, b func(*Worker)) {
	if a == nil || b == nil {
		panic("join function must be non-nil")
	}
	Join(w,
		func(w *Worker) struct{} {
			a(w)
			return struct{}{}
		},
		func(w *Worker) struct{} {
			b(w)
			return struct{}{}
		},
	)
}

// JoinOn is like [Join] called from outside any pool, but submits a and b to
// p instead of the default pool. A nil p selects the [Default] pool. It must
// not be called from one of p's own workers: the calling worker would wait
// without taking part in the work, which deadlocks a single-worker pool.
func JoinOn[A, B any](p *Pool, a func(*Worker) A, b func(*Worker) B) (A, B) {
	if a == nil || b == nil {
		panic("join function must be non-nil")
	}
	if p == nil {
		p = Default()
	}
	var ra A
	var rb B
	ja := newJob(a, &ra)
	jb := newJob(b, &rb)
	p.inject(ja, jb)
	ja.wait()
	jb.wait()
	repanic(ja.panicked, jb.panicked)
	return ra, rb
}

// Call runs f on one of p's workers and returns its result. It is the entry
// point for running a computation built from [Join] on a specific pool, and
// like [JoinOn] must not be called from one of p's own workers. A nil p
// selects the [Default] pool.
func Call[R any](p *Pool, f func(*Worker) R) R {
	if f == nil {
		panic("call function must be non-nil")
	}
	if p == nil {
		p = Default()
	}
	var r R
	j := newJob(f, &r)
	p.inject(j)
	j.wait()
	repanic(j.panicked)
	return r
}
