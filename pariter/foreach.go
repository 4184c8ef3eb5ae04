// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"iter"

	"github.com/petenewcomb/forkjoin-go"
)

// ForEach calls f once for every element of it. Calls may happen concurrently
// on different workers and in no particular order.
func ForEach[T any](w *forkjoin.Worker, it Iterator[T], f func(T)) {
	if f == nil {
		panic("for-each function must be non-nil")
	}
	it.Drive(w, forEachConsumer[T]{f: f})
}

type forEachConsumer[T any] struct {
	f func(T)
}

func (c forEachConsumer[T]) Consume(item T) {
	c.f(item)
}

func (c forEachConsumer[T]) ConsumeSeq(seq iter.Seq[T]) {
	for item := range seq {
		c.f(item)
	}
}

func (c forEachConsumer[T]) SplitAt(int) (Consumer[T], Consumer[T], Reducer) {
	return c, c, noopReducer{}
}

func (c forEachConsumer[T]) Complete() any {
	return nil
}
