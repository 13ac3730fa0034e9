// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pack

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Blocking holds the block sizes a reordered B is laid out for.
type Blocking struct {
	KC, NC, NR, Chunk int
}

// ColumnSums selects the compensation sums computed with a reordered B.
type ColumnSums int

const (
	// NoColumnSums for unsigned A.
	NoColumnSums ColumnSums = iota

	// ColumnSums32 for signed A with 32-bit accumulators.
	ColumnSums32

	// ColumnSums16 for signed A with 16-bit accumulators.
	ColumnSums16
)

// Reordered is a whole K×N matrix B packed ahead of time, block by block, for a given Blocking.
// It is immutable once built and can be read concurrently by any number of GEMM calls.
//
// The (jc, pc) block (jc a multiple of NC, pc a multiple of KC) is the PackB layout of
// B[pc:pc+KC, jc:jc+NC], stored at offset jc·Kp + RoundUp(nc0, 16)·pc, where Kp is K rounded up to Chunk.
type Reordered struct {
	K, N     int
	Blocking Blocking

	Data      []int8
	ColSums32 []int32
	ColSums16 []int16
}

// Reorder packs all of B (k×n, element (k, n) at b[k*rs + n*cs]).
func Reorder(b []int8, rs, cs, k, n int, blk Blocking, sums ColumnSums) *Reordered {
	kPadded := RoundUp(k, blk.Chunk)
	r := &Reordered{
		K: k, N: n, Blocking: blk,
		Data: make([]int8, kPadded*reorderedCols(n, blk.NC)),
	}
	switch sums {
	case ColumnSums32:
		r.ColSums32 = make([]int32, RoundUp(n, VecCols))
		AccumulateColumnSums(r.ColSums32, b, rs, cs, k, n)
	case ColumnSums16:
		r.ColSums16 = make([]int16, RoundUp(n, VecCols))
		AccumulateColumnSums(r.ColSums16, b, rs, cs, k, n)
	}
	for jc := 0; jc < n; jc += blk.NC {
		nc0 := min(blk.NC, n-jc)
		for pc := 0; pc < k; pc += blk.KC {
			kc0 := min(blk.KC, k-pc)
			PackB(r.Block(jc, pc), b[pc*rs+jc*cs:], rs, cs, kc0, nc0, blk.NR, blk.Chunk)
		}
	}
	return r
}

// reorderedCols returns the total packed width of n columns split in blocks of nc.
func reorderedCols(n, nc int) int {
	full := n / nc
	return full*nc + RoundUp(n-full*nc, VecCols)
}

// Block returns the packed (jc, pc) block.
func (r *Reordered) Block(jc, pc int) []int8 {
	blk := r.Blocking
	kPadded := RoundUp(r.K, blk.Chunk)
	ncPadded := RoundUp(min(blk.NC, r.N-jc), VecCols)
	kcPadded := RoundUp(min(blk.KC, r.K-pc), blk.Chunk)
	start := jc*kPadded + ncPadded*pc
	return r.Data[start : start+ncPadded*kcPadded]
}

// String implements fmt.Stringer.
func (r *Reordered) String() string {
	return fmt.Sprintf("Reordered(K=%d, N=%d, KC=%d, NC=%d, NR=%d, chunk=%d, %s)",
		r.K, r.N, r.Blocking.KC, r.Blocking.NC, r.Blocking.NR, r.Blocking.Chunk,
		humanize.Bytes(uint64(len(r.Data))))
}
