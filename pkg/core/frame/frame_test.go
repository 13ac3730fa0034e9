// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package frame

import (
	"fmt"
	"testing"

	"github.com/gomlx/lpgemm/internal/gemmtest"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/gomlx/lpgemm/pkg/support/arena"
	"github.com/gomlx/lpgemm/pkg/support/partition"
	"github.com/stretchr/testify/require"
)

// Small blocks so that every loop of the nest runs more than once.
var (
	s32Families = []*kernels.Family[int32]{
		kernels.S32x16.WithBlocks(kernels.BlockSizes{MC: 12, NC: 32, KC: 8}),
		kernels.S32x64.WithBlocks(kernels.BlockSizes{MC: 18, NC: 128, KC: 12}),
	}
	s16Families = []*kernels.Family[int16]{
		kernels.S16x16.WithBlocks(kernels.BlockSizes{MC: 12, NC: 32, KC: 6}),
		kernels.S16x32.WithBlocks(kernels.BlockSizes{MC: 18, NC: 64, KC: 10}),
	}
)

func whole(m, n int) partition.Partition {
	return partition.Partition{Rows: partition.Range{End: m}, Cols: partition.Range{End: n}}
}

func biasClip(t *testing.T, n int) *postops.List {
	bias := gemmtest.RandomInts[int32](gemmtest.NewRand(99), n, -1000, 1000)
	ops, err := postops.New().Bias(bias).Clip(-20000, 30000).Done()
	require.NoError(t, err)
	return ops
}

func runS32[TA AType](t *testing.T, fam *kernels.Family[int32], prob *gemmtest.Problem[TA], columnMajor bool) {
	m, n, k := prob.M, prob.N, prob.K
	prev := gemmtest.RandomInts[int32](gemmtest.NewRand(5), m*n, -100, 100)
	ops := biasClip(t, n)
	p := &Params[TA, int32]{
		M: m, N: n, K: k,
		A: prob.A, RsA: k, CsA: 1,
		B: prob.B, RsB: n, CsB: 1,
		C: append([]int32(nil), prev...), RsC: n,
		Alpha: 2, Beta: -1, PostOps: ops,
	}
	if columnMajor {
		p.A, p.RsA, p.CsA = prob.ATransposed(), 1, m
		p.B, p.RsB, p.CsB = prob.BTransposed(), 1, k
	}
	Run(p, fam, whole(m, n), arena.New(), 0)
	want := gemmtest.ReferenceS32(prob.Product(), m, n, 2, -1, prev, ops)
	require.Equal(t, want, p.C)
}

func TestRunS32(t *testing.T) {
	for _, fam := range s32Families {
		for _, size := range [][3]int{{1, 1, 1}, {5, 16, 4}, {29, 150, 37}, {40, 67, 8}, {13, 300, 25}} {
			m, n, k := size[0], size[1], size[2]
			for _, columnMajor := range []bool{false, true} {
				t.Run(fmt.Sprintf("%s/%dx%dx%d/colMajor=%v", fam.Name, m, n, k, columnMajor), func(t *testing.T) {
					runS32(t, fam, gemmtest.NewProblem[uint8](1, m, n, k, 127), columnMajor)
					runS32(t, fam, gemmtest.NewProblem[int8](2, m, n, k, 127), columnMajor)
				})
			}
		}
	}
}

func TestRunS16(t *testing.T) {
	for _, fam := range s16Families {
		for _, size := range [][3]int{{1, 1, 1}, {7, 33, 5}, {25, 100, 23}} {
			m, n, k := size[0], size[1], size[2]
			t.Run(fmt.Sprintf("%s/%dx%dx%d", fam.Name, m, n, k), func(t *testing.T) {
				for seed, signed := range []bool{false, true} {
					var product []int32
					p := &Params[uint8, int16]{M: m, N: n, K: k, RsA: k, CsA: 1, RsB: n, CsB: 1, RsC: n, Alpha: 3, Beta: 2}
					var ps *Params[int8, int16]
					prev := gemmtest.RandomInts[int16](gemmtest.NewRand(uint64(seed)), m*n, -50, 50)
					if signed {
						prob := gemmtest.NewProblem[int8](uint64(seed), m, n, k, 63)
						product = prob.Product()
						ps = &Params[int8, int16]{M: m, N: n, K: k, A: prob.A, RsA: k, CsA: 1, B: prob.B, RsB: n, CsB: 1,
							C: append([]int16(nil), prev...), RsC: n, Alpha: 3, Beta: 2}
						Run(ps, fam, whole(m, n), arena.New(), 0)
					} else {
						prob := gemmtest.NewProblem[uint8](uint64(seed), m, n, k, 63)
						product = prob.Product()
						p.A, p.B, p.C = prob.A, prob.B, append([]int16(nil), prev...)
						Run(p, fam, whole(m, n), arena.New(), 0)
					}
					want := gemmtest.ReferenceS16(product, m, n, 3, 2, prev, nil)
					if signed {
						require.Equal(t, want, ps.C)
					} else {
						require.Equal(t, want, p.C)
					}
				}
			})
		}
	}
}

func TestRunOutput(t *testing.T) {
	// int8 output with beta reading back the previous output, over several K slices.
	for _, fam := range s32Families {
		m, n, k := 23, 70, 30
		prob := gemmtest.NewProblem[int8](3, m, n, k, 127)
		ops, err := postops.New().ReLU().Downscale([]float32{1.0 / 64}, []int8{-5}).Done()
		require.NoError(t, err)
		prevOut := gemmtest.RandomInts[int8](gemmtest.NewRand(4), m*n, -100, 100)
		out := append([]int8(nil), prevOut...)
		p := &Params[int8, int32]{
			M: m, N: n, K: k,
			A: prob.A, RsA: k, CsA: 1,
			B: prob.B, RsB: n, CsB: 1,
			Alpha: 1, Beta: 3, PostOps: ops,
			Output: postops.NewOutput(out, n),
		}
		Run(p, fam, whole(m, n), arena.New(), 0)
		prev32 := make([]int32, len(prevOut))
		for i, x := range prevOut {
			prev32[i] = int32(x)
		}
		want := gemmtest.Saturate[int8](gemmtest.ReferenceS32(prob.Product(), m, n, 1, 3, prev32, ops), -128, 127)
		require.Equal(t, want, out, fam.Name)
	}
}

func TestRunUnpackedA(t *testing.T) {
	for _, fam := range s32Families {
		m, n, k := 19, 45, 21
		prob := gemmtest.NewProblem[uint8](6, m, n, k, 127)
		p := &Params[uint8, int32]{
			M: m, N: n, K: k,
			A: prob.A, RsA: k, CsA: 1,
			B: prob.B, RsB: n, CsB: 1,
			C: make([]int32, m*n), RsC: n,
			Alpha: 1, UnpackedA: true,
		}
		Run(p, fam, whole(m, n), arena.New(), 0)
		require.Equal(t, prob.Product(), p.C, fam.Name)
	}

	// Signed A can't be read in place.
	p := &Params[int8, int32]{M: 1, N: 1, K: 1, A: []int8{1}, RsA: 1, CsA: 1, B: []int8{1}, RsB: 1, CsB: 1,
		C: []int32{0}, RsC: 1, Alpha: 1, UnpackedA: true}
	require.Panics(t, func() { Run(p, s32Families[0], whole(1, 1), arena.New(), 0) })
}

func TestRunReordered(t *testing.T) {
	for _, fam := range s32Families {
		m, n, k := 17, 200, 29
		prob := gemmtest.NewProblem[int8](7, m, n, k, 127)
		reordered := pack.Reorder(prob.B, n, 1, k, n, fam.Blocking(fam.Blocks), pack.ColumnSums32)
		p := &Params[int8, int32]{
			M: m, N: n, K: k,
			A: prob.A, RsA: k, CsA: 1,
			Reordered: reordered,
			C:         make([]int32, m*n), RsC: n,
			Alpha: 1,
		}
		// Two column partitions aligned to NC, computed by two threads sharing the reordered B.
		ar := arena.New()
		for thread, part := range partition.Plan(m, n, 2, fam.Shape.MR, fam.Blocks.NC) {
			Run(p, fam, part, ar, thread)
		}
		require.Equal(t, prob.Product(), p.C, fam.Name)
	}

	// Mismatched layout.
	prob := gemmtest.NewProblem[uint8](8, 4, 4, 4, 127)
	reordered := pack.Reorder(prob.B, 4, 1, 4, 4, pack.Blocking{KC: 4, NC: 64, NR: 64, Chunk: 4}, pack.NoColumnSums)
	p := &Params[uint8, int32]{M: 4, N: 4, K: 4, A: prob.A, RsA: 4, CsA: 1, Reordered: reordered,
		C: make([]int32, 16), RsC: 4, Alpha: 1}
	require.Panics(t, func() { Run(p, s32Families[0], whole(4, 4), arena.New(), 0) })
}

func TestRunPartitions(t *testing.T) {
	fam := s32Families[0]
	m, n, k := 50, 90, 17
	prob := gemmtest.NewProblem[uint8](9, m, n, k, 127)
	ops := biasClip(t, n)
	p := &Params[uint8, int32]{
		M: m, N: n, K: k,
		A: prob.A, RsA: k, CsA: 1,
		B: prob.B, RsB: n, CsB: 1,
		C: make([]int32, m*n), RsC: n,
		Alpha: 1, PostOps: ops,
	}
	parts := partition.Plan(m, n, 4, fam.Shape.MR, fam.Shape.NR)
	require.NoError(t, partition.Validate(parts, m, n))
	ar := arena.New()
	for _, part := range parts {
		Run(p, fam, part, ar, part.Index)
	}
	require.Equal(t, gemmtest.ReferenceS32(prob.Product(), m, n, 1, 0, nil, ops), p.C)
	require.Equal(t, len(parts)*2, ar.Stats().Slabs) // PackedA and PackedB per thread.
}

func TestRunReusesArena(t *testing.T) {
	fam := s32Families[0]
	ar := arena.New()
	run := func(m, n, k int) {
		prob := gemmtest.NewProblem[uint8](uint64(m*n+k), m, n, k, 127)
		p := &Params[uint8, int32]{
			M: m, N: n, K: k,
			A: prob.A, RsA: k, CsA: 1,
			B: prob.B, RsB: n, CsB: 1,
			C: make([]int32, m*n), RsC: n,
			Alpha: 1,
		}
		Run(p, fam, whole(m, n), ar, 0)
		require.Equal(t, gemmtest.ReferenceS32(prob.Product(), m, n, 1, 0, nil, nil), p.C, "%dx%dx%d", m, n, k)
	}

	// Growing the slabs between calls invalidates the old handles, never the new ones.
	run(3, 16, 4)
	run(30, 70, 21)
	grows := ar.Stats().Grows
	run(5, 20, 6)
	require.Equal(t, grows, ar.Stats().Grows)
}
