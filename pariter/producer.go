// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter

import "iter"

// A Producer yields a contiguous run of elements and can be split into two
// producers covering disjoint parts of that run.
type Producer[T any] interface {
	// Len returns the number of elements the producer will yield.
	Len() int

	// SplitAt returns a producer for the first mid elements and another for
	// the rest, preserving order. The receiver must not be used afterwards.
	SplitAt(mid int) (Producer[T], Producer[T])

	// Seq returns the elements as a sequential iterator, for use once no
	// further splitting is wanted. The receiver must not be used afterwards.
	Seq() iter.Seq[T]
}
