// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"iter"

	"github.com/petenewcomb/forkjoin-go"
)

// Reduce folds the elements of it with op, starting each independently
// processed piece from a fresh identity value. op must be associative and
// identity() must be an identity for it; the order of the elements is
// otherwise preserved, so op need not be commutative. An empty iterator
// reduces to identity().
func Reduce[T any](w *forkjoin.Worker, it Iterator[T], identity func() T, op func(T, T) T) T {
	if identity == nil || op == nil {
		panic("reduce functions must be non-nil")
	}
	return outputAs[T](it.Drive(w, &reduceConsumer[T]{acc: identity(), identity: identity, op: op}))
}

type reduceConsumer[T any] struct {
	acc      T
	identity func() T
	op       func(T, T) T
}

func (c *reduceConsumer[T]) Consume(item T) {
	c.acc = c.op(c.acc, item)
}

func (c *reduceConsumer[T]) ConsumeSeq(seq iter.Seq[T]) {
	for item := range seq {
		c.acc = c.op(c.acc, item)
	}
}

func (c *reduceConsumer[T]) SplitAt(int) (Consumer[T], Consumer[T], Reducer) {
	right := &reduceConsumer[T]{acc: c.identity(), identity: c.identity, op: c.op}
	op := c.op
	return c, right, ReducerFunc(func(left, right any) any {
		return op(outputAs[T](left), outputAs[T](right))
	})
}

func (c *reduceConsumer[T]) Complete() any {
	return c.acc
}
