// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package pariter_test

import (
	"fmt"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/petenewcomb/forkjoin-go/pariter"
)

// Squares a slice in parallel on the default pool.
func Example() {
	squares := pariter.Collect(nil, pariter.Map(pariter.FromSlice([]int{1, 2, 3, 4, 5}), func(x int) int {
		return x * x
	}))
	fmt.Println(squares)
	// Output: [1 4 9 16 25]
}

// Runs several bulk operations as one computation on an isolated pool.
func Example_pool() {
	pool, err := forkjoin.New(forkjoin.WithWorkerCount(4))
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	words := []string{"fork", "join", "steal", "split"}
	total := forkjoin.Call(pool, func(w *forkjoin.Worker) int {
		lengths := pariter.Map(pariter.FromSlice(words), func(s string) int {
			return len(s)
		})
		return pariter.Reduce(w, lengths,
			func() int { return 0 },
			func(a, b int) int { return a + b })
	})
	fmt.Println(total)
	// Output: 18
}
