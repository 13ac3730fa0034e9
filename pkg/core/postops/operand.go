// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

// Operand is a read-only row-major matrix added by KindMatrixAdd.
// Values are up-converted to the accumulator type before the add.
type Operand interface {
	DType() dtypes.DType
	LeadingDim() int
	Len() int

	// At returns the value at (row, col), widened to int32.
	At(row, col int) int32

	load32(row, col int, m vec.Mask16) vec.I32x16
	load16(row, col int, m vec.Mask16) vec.I16x16
}

// OperandType enumerates the element types accepted by NewOperand.
type OperandType interface {
	int8 | uint8 | int16 | int32
}

type operand[T OperandType] struct {
	data  []T
	ld    int
	dtype dtypes.DType
}

// NewOperand wraps a row-major matrix with leading dimension ld.
func NewOperand[T OperandType](data []T, ld int) Operand {
	var dtype dtypes.DType
	switch any(data).(type) {
	case []int8:
		dtype = dtypes.Int8
	case []uint8:
		dtype = dtypes.Uint8
	case []int16:
		dtype = dtypes.Int16
	case []int32:
		dtype = dtypes.Int32
	}
	return &operand[T]{data: data, ld: ld, dtype: dtype}
}

func (o *operand[T]) DType() dtypes.DType { return o.dtype }
func (o *operand[T]) LeadingDim() int     { return o.ld }
func (o *operand[T]) Len() int            { return len(o.data) }

func (o *operand[T]) At(row, col int) int32 {
	return int32(o.data[row*o.ld+col])
}

func (o *operand[T]) load32(row, col int, m vec.Mask16) vec.I32x16 {
	return vec.LoadWiden(o.data[row*o.ld+col:], m)
}

func (o *operand[T]) load16(row, col int, m vec.Mask16) vec.I16x16 {
	return vec.LoadWiden16(o.data[row*o.ld+col:], m)
}
