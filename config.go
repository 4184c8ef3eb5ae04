// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import (
	"fmt"
	"runtime"

	"github.com/petenewcomb/forkjoin-go/internal/envconf"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// PanicPolicy selects what happens when a closure run by the pool panics.
type PanicPolicy int

const (
	// PanicPropagate captures the panic in a [*PanicError] and re-panics with
	// it in the goroutine waiting on the closure's result, after both sides of
	// the enclosing [Join] have completed.
	PanicPropagate PanicPolicy = iota

	// PanicSuppress logs the panic and lets the enclosing [Join] complete
	// normally with the zero value in place of the missing result.
	PanicSuppress
)

func (pp PanicPolicy) String() string {
	switch pp {
	case PanicPropagate:
		return "propagate"
	case PanicSuppress:
		return "suppress"
	default:
		return fmt.Sprintf("PanicPolicy(%d)", int(pp))
	}
}

// ParsePanicPolicy converts the name returned by [PanicPolicy.String] back
// into a PanicPolicy. The empty string selects [PanicPropagate].
func ParsePanicPolicy(s string) (PanicPolicy, error) {
	switch s {
	case "", "propagate":
		return PanicPropagate, nil
	case "suppress":
		return PanicSuppress, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPanicPolicy, s)
	}
}

// Config holds the startup settings of a [Pool]. None of them can change once
// the pool is running.
type Config struct {
	// Number of worker goroutines. Defaults to runtime.GOMAXPROCS(0).
	WorkerCount int

	PanicPolicy PanicPolicy

	// Defaults to zap.L() at the time the pool is created.
	Logger *zap.Logger

	// Defaults to otel.GetMeterProvider() at the time the pool is created.
	MeterProvider metric.MeterProvider
}

// An Option adjusts a [Config] before a pool is created. See [New].
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		WorkerCount: runtime.GOMAXPROCS(0),
		PanicPolicy: PanicPropagate,
	}
}

// WithWorkerCount sets the number of worker goroutines. [New] fails with
// [ErrInvalidWorkerCount] unless n is positive.
func WithWorkerCount(n int) Option {
	return func(c *Config) {
		c.WorkerCount = n
	}
}

// WithPanicPolicy sets how panics in closures run by the pool are handled.
func WithPanicPolicy(pp PanicPolicy) Option {
	return func(c *Config) {
		c.PanicPolicy = pp
	}
}

// WithLogger sets the logger used by the pool. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.Logger = logger
	}
}

// WithMeterProvider sets the provider of the pool's metric instruments.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Config) {
		c.MeterProvider = mp
	}
}

func (c *Config) complete() error {
	if c.WorkerCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, c.WorkerCount)
	}
	switch c.PanicPolicy {
	case PanicPropagate, PanicSuppress:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidPanicPolicy, c.PanicPolicy)
	}
	if c.Logger == nil {
		c.Logger = zap.L()
	}
	if c.MeterProvider == nil {
		c.MeterProvider = otel.GetMeterProvider()
	}
	return nil
}

// ConfigFromEnv returns the options described by the FORKJOIN_WORKER_COUNT
// and FORKJOIN_PANIC_POLICY environment variables. Unset variables leave the
// corresponding defaults in place. This is how [Default] configures itself.
func ConfigFromEnv() ([]Option, error) {
	return ConfigFromViper(envconf.New())
}

// ConfigFromViper is like [ConfigFromEnv] but reads the worker_count and
// panic_policy keys from v, which lets callers layer flags or config files
// over the environment.
func ConfigFromViper(v *viper.Viper) ([]Option, error) {
	s, err := envconf.Load(v)
	if err != nil {
		return nil, err
	}
	pp, err := ParsePanicPolicy(s.PanicPolicy)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithPanicPolicy(pp)}
	if s.WorkerCount > 0 {
		opts = append(opts, WithWorkerCount(s.WorkerCount))
	}
	return opts, nil
}
