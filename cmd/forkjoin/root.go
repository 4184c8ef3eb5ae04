// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/petenewcomb/forkjoin-go"
	"github.com/petenewcomb/forkjoin-go/internal/envconf"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	workersFlag     = "workers"
	panicPolicyFlag = "panic-policy"
	sizeFlag        = "size"
	sizeKey         = "size"
	logLevelFlag    = "log-level"
	logLevelKey     = "log_level"
)

// newRootCommand lets every subcommand read its settings from flags or from
// FORKJOIN_-prefixed environment variables, in that order.
func newRootCommand() *cobra.Command {
	v := envconf.New()
	v.SetDefault(sizeKey, 1<<20)
	v.SetDefault(logLevelKey, "info")

	cmd := &cobra.Command{
		Use:          "forkjoin",
		Short:        "Run parallel workloads on a work-stealing fork-join pool",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()

	flags.Int(workersFlag, 0, "the number of worker goroutines, or 0 for GOMAXPROCS")
	mustBindPFlag(v, envconf.WorkerCountKey, flags.Lookup(workersFlag))

	flags.String(panicPolicyFlag, forkjoin.PanicPropagate.String(), "how panicking closures are handled: propagate or suppress")
	mustBindPFlag(v, envconf.PanicPolicyKey, flags.Lookup(panicPolicyFlag))

	flags.Int(sizeFlag, 1<<20, "the number of elements to process")
	mustBindPFlag(v, sizeKey, flags.Lookup(sizeFlag))

	flags.String(logLevelFlag, "info", "the minimum level of log messages: debug, info, warn or error")
	mustBindPFlag(v, logLevelKey, flags.Lookup(logLevelFlag))

	cmd.AddCommand(newSortCommand(v))
	cmd.AddCommand(newMapCollectCommand(v))
	return cmd
}

// mustBindPFlag binds a viper key to a pflag and panics if the binding fails.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// setup builds the logger and pool shared by all subcommands. The caller must
// close the pool and sync the logger.
func setup(v *viper.Viper) (*forkjoin.Pool, *zap.Logger, int, error) {
	size := v.GetInt(sizeKey)
	if size < 0 {
		return nil, nil, 0, fmt.Errorf("%s must not be negative, got %d", sizeFlag, size)
	}

	level, err := zap.ParseAtomicLevel(v.GetString(logLevelKey))
	if err != nil {
		return nil, nil, 0, fmt.Errorf("parsing %s: %w", logLevelFlag, err)
	}
	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = level
	logger, err := logConfig.Build()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("building logger: %w", err)
	}

	opts, err := forkjoin.ConfigFromViper(v)
	if err != nil {
		return nil, nil, 0, err
	}
	pool, err := forkjoin.New(append(opts, forkjoin.WithLogger(logger))...)
	if err != nil {
		return nil, nil, 0, err
	}
	return pool, logger, size, nil
}
