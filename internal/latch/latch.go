// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package latch provides a single-use completion flag that is waited on by
// spinning rather than by parking the waiting goroutine.
package latch

import (
	"runtime"
	"sync/atomic"
)

// Number of polls performed back to back before a waiter starts yielding the
// processor between polls.
const spinLimit = 64

// A Latch starts unset and can be set exactly once. The zero value is an unset
// latch ready to use. A Latch must not be copied after first use.
//
// Waiting never parks: a waiter keeps polling until the latch is set, yielding
// the processor between polls once the initial burst of spinning is over. This
// keeps wake-up latency low for short jobs but burns CPU when waits are long
// or when more goroutines are spinning than there are processors.
type Latch struct {
	set atomic.Bool
}

// Set marks the latch as set, releasing all current and future waiters.
// Calling Set more than once has no additional effect.
func (l *Latch) Set() {
	l.set.Store(true)
}

// Probe reports whether the latch has been set without waiting.
func (l *Latch) Probe() bool {
	return l.set.Load()
}

// Wait returns once the latch has been set. It returns immediately if the
// latch was set before the call.
func (l *Latch) Wait() {
	for i := 0; !l.set.Load(); i++ {
		if i >= spinLimit {
			runtime.Gosched()
		}
	}
}
