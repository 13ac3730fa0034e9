// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package kernels holds the register-tile micro-kernels of the low-precision GEMM and the tables used to
// select them.
//
// A micro-kernel computes one tile of up to MR×NR outputs from a packed (or row-major) A row group and a packed
// B panel, accumulating u8·s8 products over k0 and running the epilogue: offset compensation, alpha/beta
// scaling, post-ops and the final store.
//
// Kernels are grouped in families by accumulator type and register tile shape. The full-width kernel of each
// family and all its fringe variants (fewer rows, 48/32/16 columns and the masked < 16 columns case) are
// generated by ./internal/cmd/kernels_generator into gen_kernels_*.go.
package kernels

//go:generate go run ../../../internal/cmd/kernels_generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/pkg/errors"
)

// Accumulator is the set of accumulator types of the kernels.
type Accumulator interface {
	int16 | int32
}

// Kernel computes a tile of rows×(16·vecs) outputs: rows and vecs are fixed by the kernel.
//
// A is read at a[m*rsA + (k/chunk)*csA + k%chunk], B at b[(k/chunk)*rsB + (n/16)*csB + (n%16)*chunk + k%chunk],
// and C at c[m*rsC + n]. c may be nil when attr.Output receives the final store and there is a single K slice.
type Kernel[T Accumulator] func(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int,
	c []T, rsC int, alpha, beta T, ops *postops.List, attr postops.Attributes)

// MaskedKernel is a Kernel for a tile of rows×n0 outputs, with n0 < 16.
type MaskedKernel[T Accumulator] func(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int,
	c []T, rsC int, alpha, beta T, ops *postops.List, attr postops.Attributes)

// RowVarFn computes an m0×n0 block (n0 <= NR) by calling the kernels over row groups of MR rows,
// with psA the stride between row groups of A.
type RowVarFn[T Accumulator] func(m0, n0, k0 int, a []uint8, rsA, csA, psA int, b []int8, rsB, csB int,
	c []T, rsC int, alpha, beta T, ops *postops.List, attr postops.Attributes)

// Shape is the register tile shape of a kernel family.
type Shape struct {
	MR, NR int
}

// String returns the shape as "MRxNR".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.MR, s.NR)
}

// IsZero returns whether the shape is unset.
func (s Shape) IsZero() bool {
	return s.MR == 0 && s.NR == 0
}

// ParseShape parses a "MRxNR" shape.
func ParseShape(str string) (Shape, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(str)), "x")
	if len(parts) != 2 {
		return Shape{}, errors.Errorf("invalid kernel shape %q, expected MRxNR, e.g. 6x64", str)
	}
	mr, err := strconv.Atoi(parts[0])
	if err != nil {
		return Shape{}, errors.Wrapf(err, "invalid MR in kernel shape %q", str)
	}
	nr, err := strconv.Atoi(parts[1])
	if err != nil {
		return Shape{}, errors.Wrapf(err, "invalid NR in kernel shape %q", str)
	}
	return Shape{MR: mr, NR: nr}, nil
}

// Triple identifies a GEMM by the dtypes of A, B and the accumulator.
type Triple struct {
	A, B, C dtypes.DType
}

var (
	U8S8S32 = Triple{A: dtypes.Uint8, B: dtypes.Int8, C: dtypes.Int32}
	S8S8S32 = Triple{A: dtypes.Int8, B: dtypes.Int8, C: dtypes.Int32}
	U8S8S16 = Triple{A: dtypes.Uint8, B: dtypes.Int8, C: dtypes.Int16}
	S8S8S16 = Triple{A: dtypes.Int8, B: dtypes.Int8, C: dtypes.Int16}
)

// Triples lists the supported triples.
var Triples = []Triple{U8S8S32, S8S8S32, U8S8S16, S8S8S16}

func dtypeShortName(dt dtypes.DType) string {
	switch dt {
	case dtypes.Uint8:
		return "u8"
	case dtypes.Int8:
		return "s8"
	case dtypes.Int16:
		return "s16"
	case dtypes.Int32:
		return "s32"
	}
	return strings.ToLower(dt.String())
}

// String returns the short name of the triple, e.g. "u8s8s32".
func (t Triple) String() string {
	return dtypeShortName(t.A) + dtypeShortName(t.B) + dtypeShortName(t.C)
}

// SignedA returns whether A is signed, requiring the column sums compensation.
func (t Triple) SignedA() bool {
	return t.A == dtypes.Int8
}

// ParseTriple parses the short name of a triple.
func ParseTriple(name string) (Triple, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Triples {
		if t.String() == name {
			return t, nil
		}
	}
	return Triple{}, errors.Errorf("unknown GEMM triple %q, valid values are %v", name, Triples)
}

// BlockSizes are the cache blocking parameters of a family.
// MC is a multiple of MR and NC a multiple of NR.
type BlockSizes struct {
	MC, NC, KC int
}

// String implements fmt.Stringer.
func (b BlockSizes) String() string {
	return fmt.Sprintf("MC=%d NC=%d KC=%d", b.MC, b.NC, b.KC)
}

// Family is a set of kernels sharing an accumulator type, a register tile shape and a K chunk.
type Family[T Accumulator] struct {
	// Name identifies the family, e.g. "s32-6x64".
	Name string

	Shape Shape

	// Chunk is the number of consecutive K values reduced by one vector instruction:
	// 4 for 32-bit accumulators, 2 for 16-bit ones.
	Chunk int

	// Level is the CPU capability level the family is tuned for.
	Level cpuinfo.Level

	// Blocks are the default cache blocking parameters.
	Blocks BlockSizes

	full   func(rows, vecs int) Kernel[T]
	masked func(rows int) MaskedKernel[T]
}

// String implements fmt.Stringer.
func (f *Family[T]) String() string {
	return fmt.Sprintf("%s(%s, chunk=%d, %s)", f.Name, f.Level, f.Chunk, f.Blocks)
}

// Kernel returns the full kernel for the given rows (1..MR) and number of 16-column vectors.
func (f *Family[T]) Kernel(rows, vecs int) Kernel[T] {
	return f.full(rows, vecs)
}

// MaskedKernel returns the kernel for fewer than 16 columns for the given rows (1..MR).
func (f *Family[T]) MaskedKernel(rows int) MaskedKernel[T] {
	return f.masked(rows)
}

// Blocking returns the layout parameters to reorder B for this family.
func (f *Family[T]) Blocking(blocks BlockSizes) pack.Blocking {
	return pack.Blocking{KC: blocks.KC, NC: blocks.NC, NR: f.Shape.NR, Chunk: f.Chunk}
}

// WithBlocks returns a copy of the family with the given block sizes, rounded to its tile shape.
func (f *Family[T]) WithBlocks(blocks BlockSizes) *Family[T] {
	c := *f
	if blocks.MC > 0 {
		c.Blocks.MC = pack.RoundUp(blocks.MC, f.Shape.MR)
	}
	if blocks.NC > 0 {
		c.Blocks.NC = pack.RoundUp(blocks.NC, f.Shape.NR)
	}
	if blocks.KC > 0 {
		c.Blocks.KC = pack.RoundUp(blocks.KC, f.Chunk)
	}
	return &c
}
