// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

// Apply32 runs the list on an int32 tile whose origin is at (attr.PostOpCI, attr.PostOpCJ).
func (l *List) Apply32(t *Tile32, attr *Attributes) {
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		op.apply32(t, attr.PostOpCI, attr.PostOpCJ)
	}
}

// Apply16 runs the list on an int16 tile whose origin is at (attr.PostOpCI, attr.PostOpCJ).
func (l *List) Apply16(t *Tile16, attr *Attributes) {
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		op.apply16(t, attr.PostOpCI, attr.PostOpCJ)
	}
}

// perColumn returns the 16 values of a per-column (len > 1) or per-tensor (len == 1) parameter
// starting at column col.
func perColumn[T int32 | float32](values []T, col int, m vec.Mask16) (out [vec.Lanes]T) {
	if len(values) == 1 {
		for l := range out {
			out[l] = values[0]
		}
		return
	}
	src := values[col:]
	for l := range out {
		if m.Active(l) {
			out[l] = src[l]
		}
	}
	return
}

// at returns the per-column or per-tensor parameter for column col, or zero if values is empty.
func at[T int32 | float32](values []T, col int) T {
	switch len(values) {
	case 0:
		var zero T
		return zero
	case 1:
		return values[0]
	default:
		return values[col]
	}
}

// requantize is the vector form of requantize32, with per-lane scales and zero points.
func requantize(x vec.I32x16, scales *vec.F32x16, zeroPoints *vec.I32x16) vec.I32x16 {
	f := x.ToFloat32()
	f.Mul(scales)
	q := f.RoundToI32()
	q.AddSaturating(zeroPoints)
	return q
}

// requantize32 computes round(x·scale) + zeroPoint, saturating to int32.
func requantize32(x int32, scale float32, zeroPoint int32) int32 {
	q := vec.RoundToInt32(float32(x) * scale)
	return vec.SaturateInt32(int64(q) + int64(zeroPoint))
}

func (op *Op) apply32(t *Tile32, ci, cj int) {
	switch op.Kind {
	case KindBias:
		for v := range t.Vecs {
			b := vec.LoadI32(op.Bias[cj+v*vec.Lanes:], t.Mask(v))
			for r := range t.Rows {
				t.Acc[r][v].Add(&b)
			}
		}
	case KindReLU:
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].MaxScalar(0)
			}
		}
	case KindPReLU:
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].MulIfNonPositive(op.Alpha)
			}
		}
	case KindGELUTanh:
		t.mapFloat(geluTanhVec)
	case KindGELUErf:
		t.mapFloat(geluErfVec)
	case KindSiLU:
		t.mapFloat(siluVec(float32(op.Alpha)))
	case KindClip:
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].Clamp(op.Min, op.Max)
			}
		}
	case KindDownscale:
		for v := range t.Vecs {
			m := t.Mask(v)
			col := cj + v*vec.Lanes
			scales := vec.F32x16(perColumn(op.Scale, col, m))
			var zeroPoints vec.I32x16
			if len(op.ZeroPoint) > 0 {
				zeroPoints = perColumn(op.ZeroPoint, col, m)
			}
			for r := range t.Rows {
				t.Acc[r][v] = requantize(t.Acc[r][v], &scales, &zeroPoints)
			}
		}
	case KindMatrixAdd:
		for r := range t.Rows {
			for v := range t.Vecs {
				x := op.Matrix.load32(ci+r, cj+v*vec.Lanes, t.Mask(v))
				t.Acc[r][v].Add(&x)
			}
		}
	default:
		exceptions.Panicf("postops: unknown kind %s in list", op.Kind)
	}
}

func (op *Op) apply16(t *Tile16, ci, cj int) {
	switch op.Kind {
	case KindBias:
		for v := range t.Vecs {
			b := vec.LoadWiden16(op.Bias[cj+v*vec.Lanes:], t.Mask(v))
			for r := range t.Rows {
				t.Acc[r][v].Add(&b)
			}
		}
	case KindReLU:
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].MaxScalar(0)
			}
		}
	case KindPReLU:
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].MulIfNonPositive(int16(op.Alpha))
			}
		}
	case KindGELUTanh:
		t.mapFloat(geluTanhVec)
	case KindGELUErf:
		t.mapFloat(geluErfVec)
	case KindSiLU:
		t.mapFloat(siluVec(float32(op.Alpha)))
	case KindClip:
		lo, hi := vec.SaturateInt16(op.Min), vec.SaturateInt16(op.Max)
		for r := range t.Rows {
			for v := range t.Vecs {
				t.Acc[r][v].Clamp(lo, hi)
			}
		}
	case KindDownscale:
		for v := range t.Vecs {
			m := t.Mask(v)
			col := cj + v*vec.Lanes
			scales := vec.F32x16(perColumn(op.Scale, col, m))
			var zeroPoints vec.I32x16
			if len(op.ZeroPoint) > 0 {
				zeroPoints = perColumn(op.ZeroPoint, col, m)
			}
			for r := range t.Rows {
				q := requantize(t.Acc[r][v].Widen(), &scales, &zeroPoints)
				t.Acc[r][v] = q.NarrowI16()
			}
		}
	case KindMatrixAdd:
		for r := range t.Rows {
			for v := range t.Vecs {
				x := op.Matrix.load16(ci+r, cj+v*vec.Lanes, t.Mask(v))
				t.Acc[r][v].Add(&x)
			}
		}
	default:
		exceptions.Panicf("postops: unknown kind %s in list", op.Kind)
	}
}

// ApplyScalar32 runs the list on a single int32 value at output position (row, col).
// It is the element-wise definition the tile version follows.
func (l *List) ApplyScalar32(x int32, row, col int) int32 {
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		switch op.Kind {
		case KindBias:
			x += op.Bias[col]
		case KindReLU:
			x = max(x, 0)
		case KindPReLU:
			if x <= 0 {
				x *= op.Alpha
			}
		case KindGELUTanh:
			x = vec.RoundToInt32(GELUTanh(float32(x)))
		case KindGELUErf:
			x = vec.RoundToInt32(GELUErf(float32(x)))
		case KindSiLU:
			x = vec.RoundToInt32(SiLU(float32(x), float32(op.Alpha)))
		case KindClip:
			x = min(max(x, op.Min), op.Max)
		case KindDownscale:
			x = requantize32(x, at(op.Scale, col), at(op.ZeroPoint, col))
		case KindMatrixAdd:
			x += op.Matrix.At(row, col)
		default:
			exceptions.Panicf("postops: unknown kind %s in list", op.Kind)
		}
	}
	return x
}

// ApplyScalar16 runs the list on a single int16 value at output position (row, col).
func (l *List) ApplyScalar16(x int16, row, col int) int16 {
	narrow := func(f float32) int16 { return vec.SaturateInt16(vec.RoundToInt32(f)) }
	for op := l.Head(); op.Kind != KindDisable; op = op.next {
		switch op.Kind {
		case KindBias:
			x += int16(op.Bias[col])
		case KindReLU:
			x = max(x, 0)
		case KindPReLU:
			if x <= 0 {
				x *= int16(op.Alpha)
			}
		case KindGELUTanh:
			x = narrow(GELUTanh(float32(x)))
		case KindGELUErf:
			x = narrow(GELUErf(float32(x)))
		case KindSiLU:
			x = narrow(SiLU(float32(x), float32(op.Alpha)))
		case KindClip:
			x = min(max(x, vec.SaturateInt16(op.Min)), vec.SaturateInt16(op.Max))
		case KindDownscale:
			x = vec.SaturateInt16(requantize32(int32(x), at(op.Scale, col), at(op.ZeroPoint, col)))
		case KindMatrixAdd:
			x += int16(op.Matrix.At(row, col))
		default:
			exceptions.Panicf("postops: unknown kind %s in list", op.Kind)
		}
	}
	return x
}
