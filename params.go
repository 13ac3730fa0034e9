// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lpgemm

import (
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/pkg/errors"
)

// Matrix is a strided view over a flat slice.
//
// In row-major order element (r, c) is at Data[r*Stride + c], in column-major order it is at
// Data[c*Stride + r].
type Matrix[T any] struct {
	Data        []T
	Rows, Cols  int
	Stride      int
	ColumnMajor bool
}

// RowMajor returns a dense row-major view of data.
func RowMajor[T any](data []T, rows, cols int) Matrix[T] {
	return Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
}

// ColMajor returns a dense column-major view of data.
func ColMajor[T any](data []T, rows, cols int) Matrix[T] {
	return Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: rows, ColumnMajor: true}
}

// Strides returns the distance between consecutive rows and consecutive columns.
func (m Matrix[T]) Strides() (rs, cs int) {
	if m.ColumnMajor {
		return 1, m.Stride
	}
	return m.Stride, 1
}

// At returns element (r, c).
func (m Matrix[T]) At(r, c int) T {
	rs, cs := m.Strides()
	return m.Data[r*rs+c*cs]
}

func (m Matrix[T]) validate(name string) error {
	if m.Rows < 0 || m.Cols < 0 {
		return errors.Errorf("%s has negative dimensions %dx%d", name, m.Rows, m.Cols)
	}
	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}
	inner := m.Cols
	outer := m.Rows
	if m.ColumnMajor {
		inner, outer = outer, inner
	}
	if m.Stride < inner {
		return errors.Errorf("%s (%dx%d) has stride %d, it must be at least %d", name, m.Rows, m.Cols, m.Stride, inner)
	}
	if need := (outer-1)*m.Stride + inner; len(m.Data) < need {
		return errors.Errorf("%s (%dx%d, stride %d) needs %d values, got %d", name, m.Rows, m.Cols, m.Stride, need, len(m.Data))
	}
	return nil
}

// ReorderedB is a B operand packed ahead of time by Engine.ReorderB for one triple.
// It is immutable and can be shared by concurrent Gemm calls.
type ReorderedB struct {
	*pack.Reordered
	Triple kernels.Triple
}

// Params of one GEMM: C = postops(alpha·A·B + beta·C).
type Params[TA uint8 | int8, TC int32 | int16] struct {
	// A is M×K.
	A Matrix[TA]

	// B is K×N. It is ignored if Reordered is set.
	B Matrix[int8]

	// Reordered is a pre-packed B.
	Reordered *ReorderedB

	// C is M×N and must be row-major. It is not used if Output is set.
	C Matrix[TC]

	Alpha, Beta TC

	// PostOps, if not nil, are applied to the accumulators before the final store.
	PostOps *postops.List

	// Output, if set, receives the final values, converted, instead of C.
	// With beta != 0 its previous values are read back.
	Output postops.Output

	// UnpackedA reads a row-major uint8 A in place instead of packing it.
	UnpackedA bool
}

// dims returns M, N and K.
func (p *Params[TA, TC]) dims() (m, n, k int) {
	m, k = p.A.Rows, p.A.Cols
	if p.Reordered != nil {
		n = p.Reordered.N
	} else {
		n = p.B.Cols
	}
	return
}

func (p *Params[TA, TC]) validate(triple kernels.Triple) error {
	if err := p.A.validate("A"); err != nil {
		return err
	}
	m, n, k := p.dims()
	if p.Reordered != nil {
		if p.Reordered.Triple != triple {
			return errors.Errorf("B was reordered for %s, it can't be used for %s", p.Reordered.Triple, triple)
		}
		if p.Reordered.K != k {
			return errors.Errorf("A is %dx%d but reordered B is %dx%d", m, k, p.Reordered.K, p.Reordered.N)
		}
	} else {
		if err := p.B.validate("B"); err != nil {
			return err
		}
		if p.B.Rows != k {
			return errors.Errorf("A is %dx%d but B is %dx%d", m, k, p.B.Rows, p.B.Cols)
		}
	}
	if m > 0 && n > 0 && k == 0 {
		return errors.Errorf("contracting dimension K must be > 0 (A is %dx%d)", m, k)
	}
	if p.Output != nil {
		if p.Output.RowStride() < n {
			return errors.Errorf("output row stride %d is smaller than N=%d", p.Output.RowStride(), n)
		}
		if need := (m-1)*p.Output.RowStride() + n; m > 0 && n > 0 && p.Output.Len() < need {
			return errors.Errorf("output (%s) for %dx%d needs %d values, got %d", p.Output.DType(), m, n, need, p.Output.Len())
		}
	} else {
		if p.C.ColumnMajor {
			return errors.New("C must be row-major")
		}
		if err := p.C.validate("C"); err != nil {
			return err
		}
		if p.C.Rows != m || p.C.Cols != n {
			return errors.Errorf("C is %dx%d, expected %dx%d", p.C.Rows, p.C.Cols, m, n)
		}
	}
	if p.UnpackedA {
		if triple.SignedA() || p.A.ColumnMajor {
			return errors.New("unpacked A requires a row-major uint8 A")
		}
	}
	if err := p.PostOps.Validate(m, n); err != nil {
		return errors.WithMessage(err, "invalid post-ops")
	}
	return nil
}
