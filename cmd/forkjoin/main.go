// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command forkjoin runs small parallel workloads on a forkjoin pool and checks
// their results against sequential equivalents.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
