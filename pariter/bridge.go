// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"github.com/petenewcomb/forkjoin-go"
)

// Bridge runs consumer over everything producer yields and returns the
// consumer's combined output.
//
// w is the current worker, or nil outside any pool in which case the whole
// operation runs on the default pool. While the split budget lasts, the
// producer and consumer are both split at the midpoint of the producer and
// the halves are processed through [forkjoin.Join], left side first. The
// budget starts at the worker count of w's pool and is halved at every level.
func Bridge[T any](w *forkjoin.Worker, producer Producer[T], consumer Consumer[T]) any {
	if w == nil {
		return forkjoin.Call(nil, func(w *forkjoin.Worker) any {
			return Bridge(w, producer, consumer)
		})
	}
	return bridge(w, splitter{budget: w.Pool().WorkerCount()}, producer, consumer)
}

func bridge[T any](w *forkjoin.Worker, s splitter, producer Producer[T], consumer Consumer[T]) any {
	n := producer.Len()
	if n < 2 || !s.trySplit() {
		consumer.ConsumeSeq(producer.Seq())
		return consumer.Complete()
	}

	mid := n / 2
	leftProducer, rightProducer := producer.SplitAt(mid)
	leftConsumer, rightConsumer, reducer := consumer.SplitAt(mid)
	left, right := forkjoin.Join(w,
		func(w *forkjoin.Worker) any {
			return bridge(w, s, leftProducer, leftConsumer)
		},
		func(w *forkjoin.Worker) any {
			return bridge(w, s, rightProducer, rightConsumer)
		},
	)
	return reducer.Reduce(left, right)
}

// splitter tracks how many more times an operation may be split.
type splitter struct {
	budget int
}

func (s *splitter) trySplit() bool {
	if s.budget/2 == 0 {
		return false
	}
	s.budget /= 2
	return true
}
