// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package pariter provides parallel bulk operations over slices, built on
// [forkjoin.Join].
//
// An operation is described by two halves that are split in lock-step. A
// [Producer] hands out the input elements and can be split into two disjoint
// producers at any index. A [Consumer] performs the operation and can be split
// at the same index into a consumer for the left part of the output and one
// for the right, plus a [Reducer] that later merges their outputs. [Bridge]
// recursively splits both halves, running the two sides of each split through
// [forkjoin.Join], until the split budget is exhausted, and then feeds each
// remaining producer sequentially into its consumer.
//
// The split budget starts at the pool's worker count and is halved at every
// level, so an operation is divided into roughly as many pieces as there are
// workers. This keeps fork-join overhead small at the price of coarser load
// balancing than splitting all the way down would give.
//
// Iterators are lazy: [FromSlice] and [Map] only describe an operation, which
// runs when a terminal function such as [ForEach], [Collect] or [Reduce] is
// called.
package pariter
