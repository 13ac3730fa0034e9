// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/lpgemm/pkg/core/vec"
	"github.com/x448/float16"
)

// Output is a caller-owned row-major matrix of a narrower (or floating point) type that receives the final
// store of a GEMM in place of the wide accumulator matrix.
//
// Integer outputs saturate on store. Floating point outputs convert the integer result.
// When beta != 0 the previous contents are read back (up-converted, rounding floats to the nearest integer)
// on the first K slice.
type Output interface {
	DType() dtypes.DType
	RowStride() int
	Len() int

	// At returns the stored value at (row, col) converted to int32.
	At(row, col int) int32

	load32(row, col int, m vec.Mask16) vec.I32x16
	store32(row, col int, v *vec.I32x16, m vec.Mask16)
	load16(row, col int, m vec.Mask16) vec.I16x16
	store16(row, col int, v *vec.I16x16, m vec.Mask16)
}

// OutputType enumerates the element types accepted by NewOutput.
type OutputType interface {
	int8 | uint8 | int16 | float32 | bfloat16.BFloat16 | float16.Float16
}

type output[T OutputType] struct {
	data      []T
	rowStride int
	dtype     dtypes.DType
	from      func(int32) T
	to        func(T) int32
}

// NewOutput wraps data, a row-major matrix with the given row stride, as the destination of the final store.
func NewOutput[T OutputType](data []T, rowStride int) Output {
	o := &output[T]{data: data, rowStride: rowStride}
	switch conv := any(o).(type) {
	case *output[int8]:
		conv.dtype = dtypes.Int8
		conv.from = vec.SaturateInt8
		conv.to = func(x int8) int32 { return int32(x) }
	case *output[uint8]:
		conv.dtype = dtypes.Uint8
		conv.from = vec.SaturateUint8
		conv.to = func(x uint8) int32 { return int32(x) }
	case *output[int16]:
		conv.dtype = dtypes.Int16
		conv.from = vec.SaturateInt16
		conv.to = func(x int16) int32 { return int32(x) }
	case *output[float32]:
		conv.dtype = dtypes.Float32
		conv.from = func(x int32) float32 { return float32(x) }
		conv.to = vec.RoundToInt32
	case *output[bfloat16.BFloat16]:
		conv.dtype = dtypes.BFloat16
		conv.from = func(x int32) bfloat16.BFloat16 { return bfloat16.FromFloat32(float32(x)) }
		conv.to = func(x bfloat16.BFloat16) int32 { return vec.RoundToInt32(x.Float32()) }
	case *output[float16.Float16]:
		conv.dtype = dtypes.Float16
		conv.from = func(x int32) float16.Float16 { return float16.Fromfloat32(float32(x)) }
		conv.to = func(x float16.Float16) int32 { return vec.RoundToInt32(x.Float32()) }
	}
	return o
}

func (o *output[T]) DType() dtypes.DType { return o.dtype }
func (o *output[T]) RowStride() int      { return o.rowStride }
func (o *output[T]) Len() int            { return len(o.data) }

func (o *output[T]) At(row, col int) int32 {
	return o.to(o.data[row*o.rowStride+col])
}

func (o *output[T]) load32(row, col int, m vec.Mask16) (v vec.I32x16) {
	src := o.data[row*o.rowStride+col:]
	for l := range v {
		if m.Active(l) {
			v[l] = o.to(src[l])
		}
	}
	return
}

func (o *output[T]) store32(row, col int, v *vec.I32x16, m vec.Mask16) {
	vec.StoreConvert(o.data[row*o.rowStride+col:], v, m, o.from)
}

func (o *output[T]) load16(row, col int, m vec.Mask16) (v vec.I16x16) {
	src := o.data[row*o.rowStride+col:]
	for l := range v {
		if m.Active(l) {
			v[l] = vec.SaturateInt16(o.to(src[l]))
		}
	}
	return
}

func (o *output[T]) store16(row, col int, v *vec.I16x16, m vec.Mask16) {
	dst := o.data[row*o.rowStride+col:]
	for l := range v {
		if m.Active(l) {
			dst[l] = o.from(int32(v[l]))
		}
	}
}
