// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package forkjoin provides a small fork-join runtime: a fixed-size pool of
// worker goroutines that balance load by stealing work from each other, and a
// single primitive, [Join], that runs two closures potentially in parallel and
// waits for both.
//
// Join is cheap enough to be called recursively all the way down a
// divide-and-conquer algorithm. The second closure is only offered to other
// workers, and if none of them is idle it simply runs on the calling
// goroutine after the first, so the cost of an un-stolen Join is little more
// than that of two function calls and a pair of uncontended mutex operations.
//
// Go has no thread-local storage, so the identity of the current worker is
// passed explicitly: every closure run by a pool receives a [*Worker], and
// nested calls to Join must pass it along. Code running outside any pool
// passes nil, in which case the work is handed to the [Default] pool.
//
// Waiting is always done by spinning, never by parking. This keeps latency
// low for the short closures typical of fork-join code at the cost of burning
// CPU when closures are long or when the machine is oversubscribed.
//
// The pariter subpackage builds parallel map, for-each, collect and reduce
// operations over slices on top of Join.
package forkjoin
