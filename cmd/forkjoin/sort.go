// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Below this many elements, quicksort stops splitting and sorts sequentially.
const sortCutoff = 256

func newSortCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Sort random integers with a join-based quicksort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, logger, size, err := setup(v)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			defer pool.Close()

			data := make([]int, size)
			for i := range data {
				data[i] = rand.Int()
			}
			expected := slices.Clone(data)

			start := time.Now()
			forkjoin.Call(pool, func(w *forkjoin.Worker) struct{} {
				quicksort(w, data)
				return struct{}{}
			})
			parallel := time.Since(start)

			start = time.Now()
			slices.Sort(expected)
			sequential := time.Since(start)

			if !slices.Equal(expected, data) {
				return fmt.Errorf("parallel sort disagrees with slices.Sort")
			}

			stats := pool.Stats()
			logger.Info("sort finished",
				zap.Int("size", size),
				zap.Duration("parallel", parallel),
				zap.Duration("sequential", sequential),
				zap.Int64("joins", stats.Joins),
				zap.Int64("stolen", stats.Stolen))
			fmt.Fprintf(cmd.OutOrStdout(), "sorted %d elements on %d workers in %v (slices.Sort: %v)\n",
				size, pool.WorkerCount(), parallel, sequential)
			return nil
		},
	}
}

func quicksort(w *forkjoin.Worker, s []int) {
	if len(s) <= sortCutoff {
		slices.Sort(s)
		return
	}
	mid := partition(s)
	forkjoin.Do(w,
		func(w *forkjoin.Worker) { quicksort(w, s[:mid]) },
		func(w *forkjoin.Worker) { quicksort(w, s[mid+1:]) },
	)
}

// partition moves the middle element into its sorted position and returns
// that position. Smaller elements end up to its left, others to its right.
func partition(s []int) int {
	last := len(s) - 1
	s[len(s)/2], s[last] = s[last], s[len(s)/2]
	pivot := s[last]
	store := 0
	for i := range last {
		if s[i] < pivot {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[last] = s[last], s[store]
	return store
}
