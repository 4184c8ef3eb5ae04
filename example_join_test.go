// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin_test

import (
	"fmt"

	// Superfluous alias needed to work around
	// https://github.com/golang/go/issues/12794
	forkjoin "github.com/petenewcomb/forkjoin-go"
)

// Sums a slice by recursively splitting it in half with Join.
func Example_sum() {
	pool, err := forkjoin.New(forkjoin.WithWorkerCount(4))
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	var sum func(w *forkjoin.Worker, s []int) int
	sum = func(w *forkjoin.Worker, s []int) int {
		if len(s) <= 8 {
			total := 0
			for _, x := range s {
				total += x
			}
			return total
		}
		mid := len(s) / 2
		left, right := forkjoin.Join(w,
			func(w *forkjoin.Worker) int { return sum(w, s[:mid]) },
			func(w *forkjoin.Worker) int { return sum(w, s[mid:]) },
		)
		return left + right
	}

	data := make([]int, 100)
	for i := range data {
		data[i] = i + 1
	}
	fmt.Println(forkjoin.Call(pool, func(w *forkjoin.Worker) int {
		return sum(w, data)
	}))
	// Output: 5050
}

// Joins two closures from outside any pool, using the default pool.
func ExampleJoin() {
	greeting, count := forkjoin.Join(nil,
		func(*forkjoin.Worker) string { return "hello" },
		func(*forkjoin.Worker) int { return 42 },
	)
	fmt.Println(greeting, count)
	// Output: hello 42
}
