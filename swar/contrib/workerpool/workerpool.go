// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool for splitting large
// byte buffers across goroutines. A Pool is created once and reused, so
// scanning many buffers does not pay a goroutine spawn per call.
//
// Usage:
//
//	pool := workerpool.New(0) // SWAR_WORKERS or GOMAXPROCS workers
//	defer pool.Close()
//
//	total := pool.ParallelSum(len(words), func(start, end int) int {
//	    return countMatches(words[start:end])
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// partial is one worker's share of a ParallelSum, padded so that workers
// never write to the same cache line.
type partial struct {
	n int
	_ cpu.CacheLinePad
}

// New creates a pool with numWorkers workers.
// If numWorkers <= 0, DefaultWorkers is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Calling Close more than once is safe; a closed
// pool runs work sequentially on the caller's goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into contiguous chunks, one per worker, and calls
// fn(start, end) for each. It blocks until every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelSum(n, func(start, end int) int {
		fn(start, end)
		return 0
	})
}

// ParallelSum splits [0, n) like ParallelFor and returns the sum of the
// values fn returns for each chunk.
func (p *Pool) ParallelSum(n int, fn func(start, end int) int) int {
	if n <= 0 {
		return 0
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		return fn(0, n)
	}

	chunkSize := (n + workers - 1) / workers
	partials := make([]partial, workers)

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				partials[i].n = fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	total := 0
	for i := range partials {
		total += partials[i].n
	}
	return total
}

// DefaultWorkers returns the worker count used by New(0): the SWAR_WORKERS
// environment variable when it holds a positive integer, GOMAXPROCS otherwise.
func DefaultWorkers() int {
	if n, ok := envInt(WorkersEnv); ok && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
