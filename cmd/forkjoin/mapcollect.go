// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"time"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/petenewcomb/forkjoin-go/pariter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newMapCollectCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "mapcollect",
		Short: "Map a slice through two functions in parallel and collect the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, logger, size, err := setup(v)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			defer pool.Close()

			input := make([]int, size)
			for i := range input {
				input[i] = i
			}
			double := func(x int) int { return x * 2 }
			increment := func(x int) int { return x + 1 }

			start := time.Now()
			output := forkjoin.Call(pool, func(w *forkjoin.Worker) []int {
				it := pariter.Map(pariter.Map(pariter.FromSlice(input), double), increment)
				return pariter.Collect(w, it)
			})
			elapsed := time.Since(start)

			for i, x := range input {
				if output[i] != increment(double(x)) {
					return fmt.Errorf("element %d is %d, expected %d", i, output[i], increment(double(x)))
				}
			}

			logger.Info("mapcollect finished",
				zap.Int("size", size),
				zap.Duration("elapsed", elapsed),
				zap.Int64("stolen", pool.Stats().Stolen))
			fmt.Fprintf(cmd.OutOrStdout(), "collected %d elements on %d workers in %v\n",
				len(output), pool.WorkerCount(), elapsed)
			return nil
		},
	}
}
