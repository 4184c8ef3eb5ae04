// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"github.com/petenewcomb/forkjoin-go"
)

// An Iterator is a lazy description of a parallel sequence of elements.
// Nothing runs until a terminal operation drives it with a consumer.
type Iterator[T any] interface {
	// Len returns the exact number of elements the iterator will produce.
	Len() int

	// Drive feeds every element to consumer, splitting the work across the
	// pool of w (or the default pool if w is nil), and returns the
	// consumer's combined output.
	Drive(w *forkjoin.Worker, consumer Consumer[T]) any
}
