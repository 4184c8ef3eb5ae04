// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"github.com/petenewcomb/forkjoin-go/internal/latch"
)

// A jobRef is what the pool's queues hold. Being an interface value it is
// exactly a (method table, data pointer) pair, so queues of jobRef can carry
// jobs of every result type without knowing them. A jobRef does not keep the
// job's result slot alive on its own terms: whoever created the job waits on
// its latch before reading the result or returning.
type jobRef interface {
	execute(w *Worker)
}

type job[R any] struct {
	fn     func(*Worker) R
	result *R

	// Set instead of result when the closure panicked under PanicPropagate.
	panicked *PanicError

	done latch.Latch
}

func newJob[R any](fn func(*Worker) R, result *R) *job[R] {
	return &job[R]{
		fn:     fn,
		result: result,
	}
}

// execute runs the job's closure on w. A job is handed out by exactly one
// queue pop, so a second execution means the queues have been corrupted.
func (j *job[R]) execute(w *Worker) {
	fn := j.fn
	if fn == nil {
		panic("job executed twice")
	}
	j.fn = nil

	r, perr := runGuarded(w, fn)
	if perr != nil {
		j.panicked = perr
	} else {
		*j.result = r
	}

	// Setting the latch must be the last access to j: the waiter may return
	// and discard the job as soon as it observes the latch.
	j.done.Set()
}

// wait blocks until the job has run, wherever it ran.
func (j *job[R]) wait() {
	j.done.Wait()
}

// runGuarded calls fn inside a panic boundary. The returned *PanicError is
// non-nil only if fn panicked and the pool's policy asks for the panic to be
// propagated; suppressed panics have already been logged.
func runGuarded[R any](w *Worker, fn func(*Worker) R) (r R, perr *PanicError) {
	defer func() {
		if v := recover(); v != nil {
			var zero R
			r = zero
			if nested, ok := v.(*PanicError); ok {
				// Re-panicked by a nested Join; already recorded where it
				// originated.
				perr = nested
				return
			}
			perr = w.pool.handlePanic(w, newPanicError(w.index, v))
		}
	}()
	return fn(w), nil
}

func repanic(perrs ...*PanicError) {
	for _, perr := range perrs {
		if perr != nil {
			panic(perr)
		}
	}
}
