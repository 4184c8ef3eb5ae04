// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import (
	"fmt"
	"iter"
	"slices"

	"github.com/petenewcomb/forkjoin-go"
)

// Collect returns the elements of it in a new slice, in iteration order.
func Collect[T any](w *forkjoin.Worker, it Iterator[T]) []T {
	return Extend(w, nil, it)
}

// Extend appends the elements of it to dst, in iteration order, and returns
// the extended slice. Like append, it reuses dst's spare capacity when there
// is enough of it.
//
// The destination is sized once, up front, from it.Len(). Every consumer
// created by splitting is handed the sub-slice matching its index range, so
// the parallel writes never overlap and need no locking.
func Extend[T any](w *forkjoin.Worker, dst []T, it Iterator[T]) []T {
	n := it.Len()
	start := len(dst)
	dst = slices.Grow(dst, n)[:start+n]

	result := outputAs[collectResult](it.Drive(w, &collectConsumer[T]{target: dst[start:]}))
	if result.written != n {
		panic(fmt.Sprintf("expected %d total writes, but got %d", n, result.written))
	}
	return dst
}

type collectConsumer[T any] struct {
	// The part of the destination this consumer is responsible for, and the
	// position of its first element relative to the start of the collection.
	target []T
	offset int

	written int
}

func (c *collectConsumer[T]) Consume(item T) {
	if c.written == len(c.target) {
		panic("too many values pushed to consumer")
	}
	c.target[c.written] = item
	c.written++
}

func (c *collectConsumer[T]) ConsumeSeq(seq iter.Seq[T]) {
	for item := range seq {
		c.Consume(item)
	}
}

func (c *collectConsumer[T]) SplitAt(mid int) (Consumer[T], Consumer[T], Reducer) {
	if c.written != 0 {
		panic("collect consumer split after it started consuming")
	}
	if mid < 0 || mid > len(c.target) {
		panic(fmt.Sprintf("split index %d out of range [0, %d]", mid, len(c.target)))
	}
	left := &collectConsumer[T]{target: c.target[:mid:mid], offset: c.offset}
	right := &collectConsumer[T]{target: c.target[mid:], offset: c.offset + mid}
	return left, right, collectReducer{}
}

func (c *collectConsumer[T]) Complete() any {
	return collectResult{
		offset:  c.offset,
		written: c.written,
		size:    len(c.target),
	}
}

// collectResult describes the run of initialized elements a consumer, or a
// reduced group of consumers, wrote.
type collectResult struct {
	offset  int
	written int
	size    int
}

type collectReducer struct{}

// Reduce merges the two runs if the left one is complete and the right one
// starts where it ends. Otherwise the right run is dropped, which leaves the
// total short and makes Extend panic.
//
// A side whose consumer panicked under [forkjoin.PanicSuppress] has no output
// at all and counts as an empty run.
func (collectReducer) Reduce(left, right any) any {
	l := outputAs[collectResult](left)
	r := outputAs[collectResult](right)
	if l.written == l.size && l.offset+l.written == r.offset {
		return collectResult{
			offset:  l.offset,
			written: l.written + r.written,
			size:    l.size + r.size,
		}
	}
	return l
}
