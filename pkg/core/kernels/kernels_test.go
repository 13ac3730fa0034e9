// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// operands holds one row-major m×k A and one row-major k×n B, plus their packed versions for a family.
type operands[T Accumulator] struct {
	m, n, k       int
	a             []uint8
	b             []int8
	aPacked       []uint8
	bPacked       []int8
	rsA, csA, psA int
	rsB, csB      int
}

func newOperands[T Accumulator](fam *Family[T], a []uint8, b []int8, m, n, k int) *operands[T] {
	op := &operands[T]{m: m, n: n, k: k, a: a, b: b}
	op.aPacked = make([]uint8, pack.PackedASize(m, k, fam.Shape.MR, fam.Chunk))
	pack.PackA(op.aPacked, a, k, 1, m, k, fam.Shape.MR, fam.Chunk)
	op.rsA, op.csA, op.psA = pack.AStrides(k, fam.Shape.MR, fam.Chunk)
	op.bPacked = make([]int8, pack.PackedBSize(k, n, fam.Chunk))
	pack.PackB(op.bPacked, b, n, 1, k, n, fam.Shape.NR, fam.Chunk)
	op.rsB, op.csB = pack.PanelStrides(fam.Shape.NR, fam.Chunk)
	return op
}

func (op *operands[T]) run(fam *Family[T], alpha, beta T, c []T, ops *postops.List, attr postops.Attributes) {
	fam.RowVar(op.m, op.n, op.k, op.aPacked, op.rsA, op.csA, op.psA, op.bPacked, op.rsB, op.csB,
		c, op.n, alpha, beta, ops, attr)
}

func randomOperands(rng *rand.Rand, m, n, k, bLimit int) (a []uint8, b []int8) {
	a = make([]uint8, m*k)
	for i := range a {
		a[i] = uint8(rng.IntN(256))
	}
	b = make([]int8, k*n)
	for i := range b {
		b[i] = int8(rng.IntN(2*bLimit+1) - bLimit)
	}
	return
}

func referenceProduct(a []uint8, b []int8, m, n, k int) []int32 {
	c := make([]int32, m*n)
	for i := range m {
		for j := range n {
			var s int32
			for p := range k {
				s += int32(a[i*k+p]) * int32(b[p*n+j])
			}
			c[i*n+j] = s
		}
	}
	return c
}

var lastK = postops.Attributes{IsFirstK: true, IsLastK: true}

func TestKernelAllOnes(t *testing.T) {
	// 5×4 all-ones A times 4×16 all-ones B is 4 everywhere.
	m, n, k := 5, 16, 4
	a := make([]uint8, m*k)
	for i := range a {
		a[i] = 1
	}
	b := make([]int8, k*n)
	for i := range b {
		b[i] = 1
	}
	op := newOperands(S32x16, a, b, m, n, k)
	c := make([]int32, m*n)
	op.run(S32x16, 1, 0, c, nil, lastK)
	for i, x := range c {
		require.Equalf(t, int32(4), x, "c[%d]", i)
	}

	op16 := newOperands(S16x16, a, b, m, n, k)
	c16 := make([]int16, m*n)
	op16.run(S16x16, 1, 0, c16, nil, lastK)
	for i, x := range c16 {
		require.Equalf(t, int16(4), x, "c16[%d]", i)
	}
}

func TestKernelFringesS32(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for _, fam := range []*Family[int32]{S32x16, S32x64} {
		for _, k := range []int{1, 3, 4, 9} {
			for m := 1; m <= 2*fam.Shape.MR+1; m++ {
				for n := 1; n <= fam.Shape.NR; n++ {
					a, b := randomOperands(rng, m, n, k, 127)
					want := referenceProduct(a, b, m, n, k)
					c := make([]int32, m*n)
					newOperands(fam, a, b, m, n, k).run(fam, 1, 0, c, nil, lastK)
					require.Equal(t, want, c, "%s: m=%d, n=%d, k=%d", fam.Name, m, n, k)
				}
			}
		}
	}
}

func TestKernelFringesS16(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2))
	for _, fam := range []*Family[int16]{S16x16, S16x32} {
		for _, k := range []int{1, 2, 3, 7} {
			for m := 1; m <= 2*fam.Shape.MR+1; m++ {
				for n := 1; n <= fam.Shape.NR; n++ {
					// |b| <= 63 keeps every byte pair product sum below the int16 saturation point.
					a, b := randomOperands(rng, m, n, k, 63)
					want32 := referenceProduct(a, b, m, n, k)
					want := make([]int16, len(want32))
					for i, x := range want32 {
						want[i] = int16(x)
					}
					c := make([]int16, m*n)
					newOperands(fam, a, b, m, n, k).run(fam, 1, 0, c, nil, lastK)
					require.Equal(t, want, c, "%s: m=%d, n=%d, k=%d", fam.Name, m, n, k)
				}
			}
		}
	}
}

func TestKernelAlphaBeta(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	m, n, k := 7, 37, 11
	fam := S32x16
	a, b := randomOperands(rng, m, n, k, 127)
	prod := referenceProduct(a, b, m, n, k)
	c := make([]int32, m*n)
	prev := make([]int32, m*n)
	for i := range c {
		c[i] = int32(rng.IntN(1000) - 500)
		prev[i] = c[i]
	}
	newOperands(fam, a, b, m, n, k).run(fam, 3, -2, c, nil, lastK)
	for i := range c {
		require.Equal(t, 3*prod[i]-2*prev[i], c[i], "c[%d]", i)
	}
}

func TestKernelSignedCompensation(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	m, n, k := 9, 21, 13
	for _, fam := range []*Family[int32]{S32x16, S32x64} {
		aSigned := make([]int8, m*k)
		for i := range aSigned {
			aSigned[i] = int8(rng.IntN(256) - 128)
		}
		_, b := randomOperands(rng, m, n, k, 127)

		aPacked := make([]uint8, pack.PackedASize(m, k, fam.Shape.MR, fam.Chunk))
		pack.PackA(aPacked, aSigned, k, 1, m, k, fam.Shape.MR, fam.Chunk)
		rsA, csA, psA := pack.AStrides(k, fam.Shape.MR, fam.Chunk)
		bPacked := make([]int8, pack.PackedBSize(k, n, fam.Chunk))
		pack.PackB(bPacked, b, n, 1, k, n, fam.Shape.NR, fam.Chunk)
		rsB, csB := pack.PanelStrides(fam.Shape.NR, fam.Chunk)
		sums := make([]int32, pack.RoundUp(n, pack.VecCols))
		pack.AccumulateColumnSums(sums, b, n, 1, k, n)

		attr := lastK
		attr.ColSums32 = sums
		c := make([]int32, m*n)
		fam.RowVar(m, n, k, aPacked, rsA, csA, psA, bPacked, rsB, csB, c, n, 1, 0, nil, attr)
		for i := range m {
			for j := range n {
				var want int32
				for p := range k {
					want += int32(aSigned[i*k+p]) * int32(b[p*n+j])
				}
				require.Equal(t, want, c[i*n+j], "%s: c[%d, %d]", fam.Name, i, j)
			}
		}
	}
}

func TestKernelUnpackedA(t *testing.T) {
	// Row-major uint8 A can be read in place: rsA = lda, csA = chunk, psA = MR·lda.
	rng := rand.New(rand.NewPCG(11, 13))
	m, n, k := 8, 40, 10
	fam := S32x16
	a, b := randomOperands(rng, m, n, k, 127)
	want := referenceProduct(a, b, m, n, k)
	op := newOperands(fam, a, b, m, n, k)
	c := make([]int32, m*n)
	fam.RowVar(m, n, k, a, k, fam.Chunk, fam.Shape.MR*k, op.bPacked, op.rsB, op.csB, c, n, 1, 0, nil, lastK)
	require.Equal(t, want, c)
}

func TestKernelOutputAndPostOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 19))
	m, n, k := 6, 50, 8
	fam := S32x64
	a, b := randomOperands(rng, m, n, k, 127)
	prod := referenceProduct(a, b, m, n, k)
	bias := make([]int32, n)
	for j := range bias {
		bias[j] = int32(j * 100)
	}
	ops, err := postops.New().Bias(bias).ReLU().Downscale([]float32{1.0 / 256}, []int32{3}).Done()
	require.NoError(t, err)

	out := make([]int8, m*n)
	attr := lastK
	attr.Output = postops.NewOutput(out, n)
	newOperands(fam, a, b, m, n, k).run(fam, 1, 0, nil, ops, attr)
	for i := range m {
		for j := range n {
			want := ops.ApplyScalar32(prod[i*n+j], i, j)
			want = max(min(want, 127), -128)
			require.Equal(t, int8(want), out[i*n+j], "out[%d, %d]", i, j)
		}
	}
}

func TestShapeAndTriple(t *testing.T) {
	s, err := ParseShape("6x64")
	require.NoError(t, err)
	assert.Equal(t, Shape{MR: 6, NR: 64}, s)
	assert.Equal(t, "6x64", s.String())
	_, err = ParseShape("6by64")
	require.Error(t, err)
	_, err = ParseShape("ax16")
	require.Error(t, err)

	assert.Equal(t, "u8s8s32", U8S8S32.String())
	assert.Equal(t, "s8s8s16", S8S8S16.String())
	tr, err := ParseTriple("S8S8S32")
	require.NoError(t, err)
	assert.Equal(t, S8S8S32, tr)
	assert.True(t, tr.SignedA())
	assert.False(t, U8S8S16.SignedA())
	_, err = ParseTriple("u8u8s32")
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	fam, err := Select[int32](U8S8S32, cpuinfo.Generic, Shape{})
	require.NoError(t, err)
	assert.Equal(t, S32x16, fam)

	fam, err = Select[int32](S8S8S32, cpuinfo.AVX512VNNI, Shape{})
	require.NoError(t, err)
	assert.Equal(t, S32x64, fam)

	fam16, err := Select[int16](U8S8S16, cpuinfo.AVX512VNNI, Shape{})
	require.NoError(t, err)
	assert.Equal(t, S16x32, fam16)

	fam16, err = Select[int16](U8S8S16, cpuinfo.NEONDot, Shape{})
	require.NoError(t, err)
	assert.Equal(t, S16x16, fam16)

	// Forced shapes.
	fam, err = Select[int32](U8S8S32, cpuinfo.AVX512VNNI, Shape{MR: 6, NR: 16})
	require.NoError(t, err)
	assert.Equal(t, S32x16, fam)
	_, err = Select[int32](U8S8S32, cpuinfo.AVX2, Shape{MR: 6, NR: 64})
	require.Error(t, err)
	_, err = Select[int32](U8S8S32, cpuinfo.AVX2, Shape{MR: 4, NR: 8})
	require.Error(t, err)

	// Mismatched accumulator.
	_, err = Select[int16](U8S8S32, cpuinfo.Generic, Shape{})
	require.Error(t, err)

	_, found := Lookup[int32](U8S8S32, Shape{MR: 6, NR: 64})
	assert.True(t, found)
	_, found = Lookup[int16](U8S8S32, Shape{MR: 6, NR: 64})
	assert.False(t, found)

	regs := Registered(U8S8S16)
	require.Len(t, regs, 2)
	assert.Equal(t, "s16-6x32", regs[0].Name)
	assert.Equal(t, PriorityTuned, regs[0].Priority)
}

func TestWithBlocks(t *testing.T) {
	fam := S32x64.WithBlocks(BlockSizes{MC: 100, NC: 100, KC: 10})
	assert.Equal(t, BlockSizes{MC: 102, NC: 128, KC: 12}, fam.Blocks)
	assert.Equal(t, S32x64.Shape, fam.Shape)
	assert.NotEqual(t, S32x64.Blocks, fam.Blocks)
	assert.Equal(t, fmt.Sprintf("%s(avx512vnni, chunk=4, %s)", fam.Name, fam.Blocks), fam.String())
}
