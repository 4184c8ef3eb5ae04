// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import "iter"

// A Consumer carries out an operation on the elements it is given, and can be
// split into two consumers that each take responsibility for part of the
// output.
//
// Consumers produce untyped outputs so that iterators, which cannot have
// generic methods, can drive consumers of any output type. Each terminal
// operation asserts the output back to the concrete type its consumer
// produces.
type Consumer[T any] interface {
	// Consume processes a single element.
	Consume(item T)

	// ConsumeSeq processes every element of seq. It is the path used at the
	// leaves of a split and should be preferred over repeated Consume calls.
	ConsumeSeq(seq iter.Seq[T])

	// SplitAt returns a consumer responsible for the first mid results, a
	// consumer for the remaining results, and the reducer that will combine
	// their outputs. The split must use the same index as the paired
	// producer split. The receiver must not be used afterwards.
	SplitAt(mid int) (left, right Consumer[T], reducer Reducer)

	// Complete returns the consumer's output. The receiver must not be used
	// afterwards.
	Complete() any
}

// A Reducer combines the outputs of the two consumers produced by a split. The
// left output always covers elements that precede those of the right output,
// but the two sides may finish in either order on different workers, so
// reducers must not depend on anything but their arguments.
type Reducer interface {
	Reduce(left, right any) any
}

// ReducerFunc adapts an ordinary function to the [Reducer] interface.
type ReducerFunc func(left, right any) any

func (f ReducerFunc) Reduce(left, right any) any {
	return f(left, right)
}

type noopReducer struct{}

func (noopReducer) Reduce(any, any) any {
	return nil
}

// outputAs converts an untyped consumer output back to T. A nil output stands
// for the zero value, which matters when T is itself an interface type.
func outputAs[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
