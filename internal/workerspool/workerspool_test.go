// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package workerspool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Saturate(t *testing.T) {
	// Test saturation: all wantTasks must be running at the same time to finish.
	pool := New()
	wantTasks := 5
	pool.SetMaxParallelism(wantTasks)

	var count atomic.Int32
	allStarted := make(chan struct{})
	doneTest := make(chan struct{})

	go func() {
		pool.Saturate(0, func() {
			got := count.Add(1)
			runtime.Gosched()
			if int(got) == wantTasks {
				close(allStarted)
				return
			}
			<-allStarted
		})
		close(doneTest)
	}()

	select {
	case <-doneTest:
		// Success
	case <-time.After(5 * time.Second):
		t.Fatal("Timeout before all tasks were executed.")
	}
	assert.Equal(t, int32(wantTasks), count.Load())

	// Test No Parallelism
	pool.SetMaxParallelism(0)
	count.Store(0)
	pool.Saturate(0, func() { count.Add(1) })
	assert.Equal(t, int32(1), count.Load())

	// Test Unlimited
	pool.SetMaxParallelism(-1)
	count.Store(0)
	var started atomic.Int32
	pool.Saturate(0, func() {
		started.Add(1)
		runtime.Gosched()
		count.Add(1)
	})
	assert.GreaterOrEqual(t, int(started.Load()), 1)
	assert.Equal(t, count.Load(), started.Load())
}

func TestPool_SetMaxParallelism(t *testing.T) {
	pool := NewWithParallelism(1)
	assert.False(t, pool.IsEnabled())
	assert.Equal(t, 1, pool.AdjustedMaxParallelism())

	pool.SetMaxParallelism(-1)
	assert.True(t, pool.IsUnlimited())
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.AdjustedMaxParallelism())

	pool.SetMaxParallelism(1 << 20)
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.AdjustedMaxParallelism())
}

func TestPool_StartIfAvailable(t *testing.T) {
	pool := NewWithParallelism(2)
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	for range 2 {
		require.True(t, pool.StartIfAvailable(func() {
			defer wg.Done()
			<-release
		}))
	}
	assert.False(t, pool.StartIfAvailable(func() {}))
	close(release)
	wg.Wait()

	// WaitToStart blocks until a slot is free, then runs.
	done := make(chan struct{})
	pool.WaitToStart(func() { close(done) })
	<-done

	// Disabled parallelism runs inline.
	pool.SetMaxParallelism(0)
	ran := false
	pool.WaitToStart(func() { ran = true })
	assert.True(t, ran)
	assert.False(t, pool.StartIfAvailable(func() {}))
}

func TestPool_ForEach(t *testing.T) {
	for _, parallelism := range []int{0, 2, 8, -1} {
		pool := NewWithParallelism(parallelism)
		const n = 1000
		var seen [n]atomic.Int32
		numWorkers := pool.AdjustedMaxParallelism()
		busy := make([]atomic.Bool, numWorkers)
		pool.ForEach(n, func(worker, i int) {
			if !assert.Less(t, worker, numWorkers) {
				return
			}
			// The same worker never runs two calls at the same time.
			assert.False(t, busy[worker].Swap(true))
			seen[i].Add(1)
			busy[worker].Store(false)
		})
		for i := range seen {
			require.Equalf(t, int32(1), seen[i].Load(), "item %d with parallelism %d", i, parallelism)
		}
	}
	pool := New()
	pool.ForEach(0, func(_, _ int) { t.Fatal("no calls expected") })
}
