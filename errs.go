// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package forkjoin

import "github.com/petenewcomb/forkjoin-go/internal/cerr"

const ErrPoolClosed = cerr.Error("pool is closed")
const ErrInvalidWorkerCount = cerr.Error("worker count must be positive")
const ErrInvalidPanicPolicy = cerr.Error("invalid panic policy")
