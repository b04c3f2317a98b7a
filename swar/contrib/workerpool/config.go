// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"os"
	"strconv"
)

const (
	// WorkersEnv overrides the default number of pool workers.
	WorkersEnv = "SWAR_WORKERS"

	// ParallelMinBytesEnv overrides the input size below which callers
	// should scan sequentially instead of using a pool.
	ParallelMinBytesEnv = "SWAR_PARALLEL_MIN_BYTES"

	defaultParallelMinBytes = 1 << 20
)

// ParallelMinBytes returns the smallest input, in bytes, worth splitting
// across a pool: SWAR_PARALLEL_MIN_BYTES when it holds a non-negative
// integer, 1 MiB otherwise.
func ParallelMinBytes() int {
	if n, ok := envInt(ParallelMinBytesEnv); ok && n >= 0 {
		return n
	}
	return defaultParallelMinBytes
}

// envInt parses an integer environment variable. Unset, empty or malformed
// values report ok == false.
func envInt(name string) (int, bool) {
	val := os.Getenv(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
