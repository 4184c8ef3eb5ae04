// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package envconf reads pool settings from the environment (and from anything
// else bound into the same viper instance, such as command-line flags).
package envconf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "FORKJOIN"

	WorkerCountKey = "worker_count"
	PanicPolicyKey = "panic_policy"
)

// Settings holds raw pool settings. A WorkerCount of zero selects the
// library default.
type Settings struct {
	WorkerCount int
	PanicPolicy string
}

// New returns a viper instance that resolves the pool keys from environment
// variables prefixed with FORKJOIN_, for instance FORKJOIN_WORKER_COUNT.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault(WorkerCountKey, 0)
	v.SetDefault(PanicPolicyKey, "propagate")
	return v
}

// Load extracts Settings from v. Unlike viper's own typed getters, it reports
// values that do not parse instead of silently replacing them with zero.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings

	raw := strings.TrimSpace(v.GetString(WorkerCountKey))
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", WorkerCountKey, err)
		}
		if n < 0 {
			return Settings{}, fmt.Errorf("%s must not be negative, got %d", WorkerCountKey, n)
		}
		s.WorkerCount = n
	}

	s.PanicPolicy = strings.ToLower(strings.TrimSpace(v.GetString(PanicPolicyKey)))
	return s, nil
}
