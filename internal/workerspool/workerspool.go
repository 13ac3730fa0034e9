// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package workerspool runs the parallel units of work of a GEMM on a bounded number of goroutines.
package workerspool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type Pool struct {
	// maxParallelism is a soft target on the limit of parallel work to do.
	maxParallelism int
	mu             sync.Mutex
	cond           sync.Cond // Should be signaled whenever numRunning is decreased.
	numRunning     int
}

// New return a new Pool of workers with the default parallelism (runtime.NumCPU()).
func New() *Pool {
	w := &Pool{}
	w.maxParallelism = runtime.NumCPU()
	w.cond = sync.Cond{L: &w.mu}
	return w
}

// NewWithParallelism returns a new Pool with the given parallelism: 0 (or 1) disables parallelism,
// and -1 makes it unlimited.
func NewWithParallelism(maxParallelism int) *Pool {
	w := New()
	w.SetMaxParallelism(maxParallelism)
	return w
}

// IsEnabled returns whether parallelism is enabled (maxParallelism is != 0)
func (w *Pool) IsEnabled() bool {
	return w.maxParallelism != 0
}

// IsUnlimited returns whether parallelism is unlimited (maxParallelism < 0)
func (w *Pool) IsUnlimited() bool {
	return w.maxParallelism < 0
}

// MaxParallelism is a soft-target for parallelism.
// If set to 0 parallelism is disabled.
// If set to -1 parallelism is unlimited.
func (w *Pool) MaxParallelism() int {
	return w.maxParallelism
}

// SetMaxParallelism sets the maxParallelism. A value of 1 is the same as 0: tasks run in the caller's goroutine.
//
// You should only change the parallelism before any workers start running. If changed during the execution
// the behavior is undefined.
func (w *Pool) SetMaxParallelism(maxParallelism int) {
	if maxParallelism == 1 {
		maxParallelism = 0
	}
	w.maxParallelism = maxParallelism
}

// AdjustedMaxParallelism returns the number of workers to plan work for: always >= 1, and never more than
// runtime.GOMAXPROCS(0).
func (w *Pool) AdjustedMaxParallelism() int {
	if w.maxParallelism < 0 {
		return runtime.GOMAXPROCS(0)
	}
	return min(max(w.maxParallelism, 1), runtime.GOMAXPROCS(0))
}

// lockedIsFull returns whether all available workers are in use.
//
// It must be called with workerPool.mu acquired.
func (w *Pool) lockedIsFull() bool {
	if w.maxParallelism == 0 {
		return true
	} else if w.maxParallelism < 0 {
		return false
	}
	return w.numRunning >= w.maxParallelism
}

// WaitToStart waits until there is a worker available to run the task.
//
// If parallelism is disabled (maxParallelism is 0), it runs the task inline and returns when it is finished.
func (w *Pool) WaitToStart(task func()) {
	if w.IsUnlimited() {
		go task()
		return

	} else if w.maxParallelism == 0 {
		// No parallelism, run inline.
		task()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for w.lockedIsFull() {
		w.cond.Wait()
	}
	w.lockedRunTaskInGoroutine(task)
}

// lockedRunTaskInGoroutine and keep tabs on w.numRunning.
//
// It must be called with workerPool.mu acquired.
func (w *Pool) lockedRunTaskInGoroutine(task func()) {
	w.numRunning++
	go func() {
		task()
		w.mu.Lock()
		w.numRunning--
		w.cond.Signal()
		w.mu.Unlock()
	}()
}

// StartIfAvailable runs the task in a separate goroutine, if there are enough workers left.
// It returns true if it found workers to run the function, false otherwise.
//
// It's up to the client to synchronize the end of the function execution.
func (w *Pool) StartIfAvailable(task func()) bool {
	if w.IsUnlimited() {
		go task()
		return true
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lockedIsFull() {
		return false
	}
	w.lockedRunTaskInGoroutine(task)
	return true
}

// Saturate fans out as many workers as available (up to limit, if limit > 0), each running task.
// The tasks are expected to consume work from a shared source: once the first one returns, no new ones are
// started. Saturate returns when all started tasks have finished.
//
// If parallelism is disabled, it runs one task inline.
func (w *Pool) Saturate(limit int, task func()) {
	if w.maxParallelism == 0 || limit == 1 {
		task()
		return
	}
	if limit <= 0 {
		limit = w.maxParallelism
		if w.IsUnlimited() {
			limit = runtime.GOMAXPROCS(0)
		}
	}

	var wg sync.WaitGroup
	var doneFanningOut atomic.Bool
	w.mu.Lock()
	for started := 0; started < limit && !doneFanningOut.Load(); {
		if w.lockedIsFull() {
			w.cond.Wait()
			continue
		}
		started++
		wg.Add(1)
		w.lockedRunTaskInGoroutine(func() {
			defer wg.Done()
			task()
			doneFanningOut.Store(true)
		})
	}
	// Propagate the wake-up to other waiters.
	w.cond.Signal()
	w.mu.Unlock()
	wg.Wait()
}

// ForEach calls task(worker, i) for every i in [0, n) and returns when all calls are done.
//
// The calls run on up to AdjustedMaxParallelism() workers, numbered from 0: calls with the same worker number
// never run concurrently, so worker-private resources can be indexed by it.
func (w *Pool) ForEach(n int, task func(worker, i int)) {
	if n <= 0 {
		return
	}
	var next, workers atomic.Int32
	w.Saturate(min(n, w.AdjustedMaxParallelism()), func() {
		worker := int(workers.Add(1)) - 1
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			task(worker, i)
		}
	})
}
