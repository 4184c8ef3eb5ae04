// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"fmt"
	"iter"

	"github.com/petenewcomb/forkjoin-go"
)

// FromSlice returns an iterator over the elements of s. The slice is read,
// not modified, and must not be modified while the iterator is being driven.
func FromSlice[T any](s []T) Iterator[T] {
	return sliceIter[T]{items: s}
}

type sliceIter[T any] struct {
	items []T
}

func (it sliceIter[T]) Len() int {
	return len(it.items)
}

func (it sliceIter[T]) Drive(w *forkjoin.Worker, consumer Consumer[T]) any {
	return Bridge(w, Producer[T](sliceProducer[T]{items: it.items}), consumer)
}

type sliceProducer[T any] struct {
	items []T
}

func (p sliceProducer[T]) Len() int {
	return len(p.items)
}

func (p sliceProducer[T]) SplitAt(mid int) (Producer[T], Producer[T]) {
	if mid < 0 || mid > len(p.items) {
		panic(fmt.Sprintf("split index %d out of range [0, %d]", mid, len(p.items)))
	}
	// The full slice expression keeps appends to the left half from writing
	// into the right half.
	return sliceProducer[T]{items: p.items[:mid:mid]}, sliceProducer[T]{items: p.items[mid:]}
}

func (p sliceProducer[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.items {
			if !yield(item) {
				return
			}
		}
	}
}
