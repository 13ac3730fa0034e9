// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package gemmtest generates deterministic GEMM operands and computes reference results with a plain
// triple loop, for tests and for the benchmark correctness check.
package gemmtest

import (
	"math/rand/v2"

	"github.com/gomlx/lpgemm/pkg/core/postops"
	"golang.org/x/exp/constraints"
)

// NewRand returns a deterministic random source for the seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInts returns n random values in [lo, hi].
func RandomInts[T constraints.Integer](rng *rand.Rand, n int, lo, hi int) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = T(lo + rng.IntN(hi-lo+1))
	}
	return values
}

// Problem holds row-major operands: A is M×K and B is K×N.
type Problem[TA uint8 | int8] struct {
	M, N, K int
	A       []TA
	B       []int8
}

// NewProblem generates random operands. A spans its whole type range, B spans [-bLimit, bLimit].
//
// For the 16-bit accumulators, bLimit <= 63 keeps every u8·s8 pair sum within int16, so that the result is
// the exact product wrapped to 16 bits.
func NewProblem[TA uint8 | int8](seed uint64, m, n, k, bLimit int) *Problem[TA] {
	rng := NewRand(seed)
	p := &Problem[TA]{M: m, N: n, K: k}
	var zero TA
	if _, signed := any(zero).(int8); signed {
		p.A = RandomInts[TA](rng, m*k, -128, 127)
	} else {
		p.A = RandomInts[TA](rng, m*k, 0, 255)
	}
	p.B = RandomInts[int8](rng, k*n, -bLimit, bLimit)
	return p
}

// ATransposed returns A in column-major order (element (m, k) at k*M + m).
func (p *Problem[TA]) ATransposed() []TA {
	return transpose(p.A, p.M, p.K)
}

// BTransposed returns B in column-major order (element (k, n) at n*K + k).
func (p *Problem[TA]) BTransposed() []int8 {
	return transpose(p.B, p.K, p.N)
}

func transpose[T any](x []T, rows, cols int) []T {
	t := make([]T, len(x))
	for r := range rows {
		for c := range cols {
			t[c*rows+r] = x[r*cols+c]
		}
	}
	return t
}

// Product returns the exact A·B, row-major M×N.
func (p *Problem[TA]) Product() []int32 {
	c := make([]int32, p.M*p.N)
	for i := range p.M {
		for j := range p.N {
			var s int32
			for k := range p.K {
				s += int32(p.A[i*p.K+k]) * int32(p.B[k*p.N+j])
			}
			c[i*p.N+j] = s
		}
	}
	return c
}

// ReferenceS32 returns post-ops(alpha·product + beta·prev), row-major M×N, with int32 wrapping arithmetic.
// prev may be nil when beta is 0.
func ReferenceS32(product []int32, m, n int, alpha, beta int32, prev []int32, ops *postops.List) []int32 {
	out := make([]int32, m*n)
	for i := range m {
		for j := range n {
			x := alpha * product[i*n+j]
			if beta != 0 {
				x += beta * prev[i*n+j]
			}
			out[i*n+j] = ops.ApplyScalar32(x, i, j)
		}
	}
	return out
}

// ReferenceS16 is ReferenceS32 with int16 wrapping arithmetic.
func ReferenceS16(product []int32, m, n int, alpha, beta int16, prev []int16, ops *postops.List) []int16 {
	out := make([]int16, m*n)
	for i := range m {
		for j := range n {
			x := alpha * int16(product[i*n+j])
			if beta != 0 {
				x += beta * prev[i*n+j]
			}
			out[i*n+j] = ops.ApplyScalar16(x, i, j)
		}
	}
	return out
}

// Saturate converts reference values to the integer type T, saturating.
func Saturate[T constraints.Integer, S constraints.Integer](values []S, lo, hi T) []T {
	out := make([]T, len(values))
	for i, x := range values {
		switch {
		case int64(x) < int64(lo):
			out[i] = lo
		case int64(x) > int64(hi):
			out[i] = hi
		default:
			out[i] = T(x)
		}
	}
	return out
}
