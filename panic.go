// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"fmt"
	"runtime"
)

// PanicError carries a value recovered from a panicking closure together with
// the stack of the goroutine that panicked.
//
// Under [PanicPropagate], the goroutine that waits for the panicking side of a
// [Join] (or [Call]) re-panics with a *PanicError once both sides are done.
// Because the closure may have run on a different worker than the one that
// called Join, Stack is the only record of where the panic originated.
type PanicError struct {
	// Value is the value originally passed to panic.
	Value any

	// Stack is the stack trace of the panicking goroutine.
	Stack string

	// Worker is the index of the worker that ran the closure.
	Worker int
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in job on worker %d: %v\n\n%s", e.Worker, e.Value, e.Stack)
}

// Unwrap returns the panic value if it is an error, allowing [errors.Is] and
// [errors.As] to see through a PanicError.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func newPanicError(worker int, v any) *PanicError {
	// runtime.Stack truncates if the buffer is too small, which is fine for
	// diagnostics.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value:  v,
		Stack:  string(buf[:n]),
		Worker: worker,
	}
}
