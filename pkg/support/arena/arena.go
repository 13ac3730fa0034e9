// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package arena provides the scratch memory of the GEMM workers: one growable slab per (thread, block kind),
// handed out as generation-checked handles.
//
// A Handle stays valid until its slab is regrown or the arena is Reset: using a stale handle panics instead
// of silently aliasing memory handed out to someone else.
package arena

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Kind is the block kind of a slab.
type Kind int

const (
	// PackedA holds a packed MC×KC block of A.
	PackedA Kind = iota

	// PackedB holds a packed KC×NC block of B.
	PackedB

	// TempC holds the wide accumulators of an MC×NC block when the final store goes to a narrow output.
	TempC

	// ColSums holds the column sums compensation of a signed-A block.
	ColSums

	numKinds
)

var kindNames = [numKinds]string{"PackedA", "PackedB", "TempC", "ColSums"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Key addresses one slab.
type Key struct {
	Thread int
	Kind   Kind
}

// String implements fmt.Stringer.
func (k Key) String() string {
	return fmt.Sprintf("thread#%d/%s", k.Thread, k.Kind)
}

type slab struct {
	data       any // []T
	bytes      int
	generation uint64
}

// Arena owns the slabs. It is safe for concurrent use by workers using different threads.
type Arena struct {
	mu         sync.Mutex
	slabs      map[Key]*slab
	generation uint64
	grows      int
	peakBytes  int
}

// New creates an empty Arena.
func New() *Arena {
	return &Arena{slabs: make(map[Key]*slab)}
}

// Handle indexes a slab of the arena.
type Handle[T any] struct {
	arena      *Arena
	key        Key
	length     int
	generation uint64
}

// Get returns a handle to n values of type T for the key, growing its slab if needed.
// The contents are not cleared: use GetZeroed if the caller relies on zeros.
//
// Getting a handle invalidates previous handles of the same key with a different type or a larger size.
func Get[T any](a *Arena, key Key, n int) Handle[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	s, found := a.slabs[key]
	if found {
		if data, ok := s.data.([]T); ok && len(data) >= n {
			return Handle[T]{arena: a, key: key, length: n, generation: s.generation}
		}
	}
	var zero T
	a.generation++
	a.grows++
	s = &slab{
		data:       make([]T, n),
		bytes:      n * int(unsafe.Sizeof(zero)),
		generation: a.generation,
	}
	a.slabs[key] = s
	total := a.lockedBytes()
	a.peakBytes = max(a.peakBytes, total)
	if klog.V(2).Enabled() {
		klog.Infof("arena: %s grown to %s (total %s)", key, humanize.Bytes(uint64(s.bytes)), humanize.Bytes(uint64(total)))
	}
	return Handle[T]{arena: a, key: key, length: n, generation: s.generation}
}

// GetZeroed is like Get, and clears the values.
func GetZeroed[T any](a *Arena, key Key, n int) Handle[T] {
	h := Get[T](a, key, n)
	clear(h.Slice())
	return h
}

// Slice returns the values of the handle. It panics if the handle is stale.
func (h Handle[T]) Slice() []T {
	if h.arena == nil {
		exceptions.Panicf("arena: Slice() called on a zero Handle")
	}
	h.arena.mu.Lock()
	s, found := h.arena.slabs[h.key]
	h.arena.mu.Unlock()
	if !found || s.generation != h.generation {
		exceptions.Panicf("arena: stale handle for %s (generation %d)", h.key, h.generation)
	}
	return s.data.([]T)[:h.length]
}

// Len returns the number of values of the handle.
func (h Handle[T]) Len() int {
	return h.length
}

// Key returns the slab key of the handle.
func (h Handle[T]) Key() Key {
	return h.key
}

// Valid returns whether the handle still refers to its slab.
func (h Handle[T]) Valid() bool {
	if h.arena == nil {
		return false
	}
	h.arena.mu.Lock()
	defer h.arena.mu.Unlock()
	s, found := h.arena.slabs[h.key]
	return found && s.generation == h.generation
}

// Reset drops all slabs, invalidating every handle.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.slabs)
	a.generation++
}

func (a *Arena) lockedBytes() int {
	total := 0
	for _, s := range a.slabs {
		total += s.bytes
	}
	return total
}

// Stats summarizes the memory held by an arena.
type Stats struct {
	Slabs, Grows     int
	Bytes, PeakBytes uint64
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("%d slabs, %s (peak %s), %d grows",
		s.Slabs, humanize.Bytes(s.Bytes), humanize.Bytes(s.PeakBytes), s.Grows)
}

// Stats returns the current memory usage.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{
		Slabs:     len(a.slabs),
		Grows:     a.grows,
		Bytes:     uint64(a.lockedBytes()),
		PeakBytes: uint64(a.peakBytes),
	}
}
