// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package pack rearranges GEMM operand blocks into the interleaved layouts read by the micro-kernels.
//
// B blocks (kc×nc) are split into column panels of width NR. Within a panel of width w the K dimension is
// grouped in chunks of `chunk` consecutive values (4 for the 32-bit accumulator family, 2 for the 16-bit one),
// and the packed index of element (k, n) is:
//
//	(k / chunk) * (w * chunk) + n * chunk + k % chunk
//
// so that one 16-lane vector load reads 16 columns × chunk K values. When nc is not a multiple of NR, the
// remainder is packed contiguously as one panel of width 48, 32 or 16 (the largest multiple of 16 that fits)
// followed by a panel of the last (< 16) columns, zero padded to 16.
//
// A blocks (mc×kc) are split into row groups of MR rows, zero padded to MR rows. Within a group the packed
// index of element (m, k) is (k / chunk) * (MR * chunk) + m * chunk + k % chunk.
//
// In both layouts the K remainder is zero padded to a multiple of chunk. Signed A values are offset by +128
// into the unsigned domain of the u8·s8 dot products; see AccumulateColumnSums for the compensation.
package pack

// VecCols is the number of columns of one vector load.
const VecCols = 16

// SignedOffset is added to signed A values to bring them into the unsigned domain.
const SignedOffset = 128

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// RoundUp returns x rounded up to a multiple of m.
func RoundUp(x, m int) int {
	return ceilDiv(x, m) * m
}

// Segment is a contiguous run of packed columns: a full panel, a 48/32/16-wide fallback panel
// or the final masked panel of fewer than 16 columns.
type Segment struct {
	// Col is the first column of the segment within the block.
	Col int

	// Width is the number of real columns.
	Width int

	// Padded is the packed width: Width rounded up to a multiple of VecCols.
	Padded int
}

// Segments splits n columns into packed panels for the register tile width nr.
func Segments(n, nr int) []Segment {
	segs := make([]Segment, 0, n/nr+2)
	col := 0
	for ; col+nr <= n; col += nr {
		segs = append(segs, Segment{Col: col, Width: nr, Padded: nr})
	}
	return append(segs, RemainderSegments(col, n-col)...)
}

// RemainderSegments splits a remainder of rem (< nr) columns starting at col into the fallback panels:
// the widest multiple of 16, then the final columns.
func RemainderSegments(col, rem int) []Segment {
	var segs []Segment
	if wide := (rem / VecCols) * VecCols; wide > 0 {
		segs = append(segs, Segment{Col: col, Width: wide, Padded: wide})
		col += wide
		rem -= wide
	}
	if rem > 0 {
		segs = append(segs, Segment{Col: col, Width: rem, Padded: VecCols})
	}
	return segs
}
