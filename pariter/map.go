// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"iter"

	"github.com/petenewcomb/forkjoin-go"
)

// Map returns an iterator that yields f applied to each element of it. Nothing
// is computed until the result is driven, and chained maps are applied to
// each element in turn without buffering intermediate results. f may be
// called concurrently from multiple workers.
func Map[T, U any](it Iterator[T], f func(T) U) Iterator[U] {
	if f == nil {
		panic("map function must be non-nil")
	}
	return mapIter[T, U]{base: it, f: f}
}

type mapIter[T, U any] struct {
	base Iterator[T]
	f    func(T) U
}

func (m mapIter[T, U]) Len() int {
	return m.base.Len()
}

func (m mapIter[T, U]) Drive(w *forkjoin.Worker, consumer Consumer[U]) any {
	return m.base.Drive(w, &mapConsumer[T, U]{base: consumer, f: m.f})
}

type mapConsumer[T, U any] struct {
	base Consumer[U]
	f    func(T) U
}

func (c *mapConsumer[T, U]) Consume(item T) {
	c.base.Consume(c.f(item))
}

func (c *mapConsumer[T, U]) ConsumeSeq(seq iter.Seq[T]) {
	f := c.f
	c.base.ConsumeSeq(func(yield func(U) bool) {
		for item := range seq {
			if !yield(f(item)) {
				return
			}
		}
	})
}

func (c *mapConsumer[T, U]) SplitAt(mid int) (Consumer[T], Consumer[T], Reducer) {
	left, right, reducer := c.base.SplitAt(mid)
	return &mapConsumer[T, U]{base: left, f: c.f}, &mapConsumer[T, U]{base: right, f: c.f}, reducer
}

func (c *mapConsumer[T, U]) Complete() any {
	return c.base.Complete()
}
