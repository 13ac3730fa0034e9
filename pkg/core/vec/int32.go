// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-highway/hwy"

// I32x16 is a vector of 16 int32 lanes. Arithmetic wraps around, like the hardware instructions.
type I32x16 [Lanes]int32

// Broadcast32 returns a vector with all lanes set to x.
func Broadcast32(x int32) (v I32x16) {
	broadcast(v[:], x)
	return
}

// DotU8I8 accumulates a 4-deep unsigned·signed dot product into every lane:
//
//	v[l] += a[0]*b[4l] + a[1]*b[4l+1] + a[2]*b[4l+2] + a[3]*b[4l+3]
//
// b must hold at least 64 values: 16 columns of 4 interleaved K values.
func (v *I32x16) DotU8I8(a Group4, b []int8) {
	b = b[:4*Lanes]
	a0, a1, a2, a3 := int32(a[0]), int32(a[1]), int32(a[2]), int32(a[3])
	for l := range v {
		bl := b[4*l : 4*l+4]
		v[l] += a0*int32(bl[0]) + a1*int32(bl[1]) + a2*int32(bl[2]) + a3*int32(bl[3])
	}
}

// Add adds o to v, lane by lane.
func (v *I32x16) Add(o *I32x16) {
	zipInPlace(v[:], o[:], hwy.Add[int32])
}

// Sub subtracts o from v, lane by lane.
func (v *I32x16) Sub(o *I32x16) {
	zipInPlace(v[:], o[:], hwy.Sub[int32])
}

// AddSaturating adds o to v, lane by lane, saturating to the int32 range.
func (v *I32x16) AddSaturating(o *I32x16) {
	zipInPlace(v[:], o[:], hwy.SaturatedAdd[int32])
}

// MulScalar multiplies every lane by s, keeping the low 32 bits.
func (v *I32x16) MulScalar(s int32) {
	sv := hwy.Set(s)
	mapInPlace(v[:], func(x hwy.Vec[int32]) hwy.Vec[int32] { return hwy.Mul(x, sv) })
}

// MulAddScalar adds o*s to v.
func (v *I32x16) MulAddScalar(o *I32x16, s int32) {
	sv := hwy.Set(s)
	zipInPlace(v[:], o[:], func(x, y hwy.Vec[int32]) hwy.Vec[int32] { return hwy.Add(x, hwy.Mul(y, sv)) })
}

// MaxScalar sets every lane to max(v[l], s).
func (v *I32x16) MaxScalar(s int32) {
	sv := hwy.Set(s)
	mapInPlace(v[:], func(x hwy.Vec[int32]) hwy.Vec[int32] { return hwy.Max(x, sv) })
}

// Clamp sets every lane to min(max(v[l], lo), hi).
func (v *I32x16) Clamp(lo, hi int32) {
	loV, hiV := hwy.Set(lo), hwy.Set(hi)
	mapInPlace(v[:], func(x hwy.Vec[int32]) hwy.Vec[int32] { return hwy.Clamp(x, loV, hiV) })
}

// MulIfNonPositive multiplies by s the lanes that are <= 0.
func (v *I32x16) MulIfNonPositive(s int32) {
	sv, zero := hwy.Set(s), hwy.Zero[int32]()
	mapInPlace(v[:], func(x hwy.Vec[int32]) hwy.Vec[int32] {
		return hwy.IfThenElse(hwy.LessEqual(x, zero), hwy.Mul(x, sv), x)
	})
}

// ToFloat32 converts every lane to float32 (round to nearest even for |x| > 2^24).
func (v *I32x16) ToFloat32() (f F32x16) {
	for i, n := 0, chunk[int32](); i < Lanes; i += n {
		hwy.Store(hwy.ConvertToFloat32(hwy.Load(v[i:])), f[i:])
	}
	return
}

// LoadI32 loads the active lanes from src; inactive lanes are zero.
func LoadI32(src []int32, m Mask16) (v I32x16) {
	maskedLoad(v[:], src, m)
	return
}

// Store writes the active lanes of v into dst.
func (v *I32x16) Store(dst []int32, m Mask16) {
	maskedStore(dst, v[:], m)
}

// LoadWiden loads the active lanes from src, sign or zero extending them to int32.
func LoadWiden[T int8 | uint8 | int16 | int32](src []T, m Mask16) (v I32x16) {
	if src32, ok := any(src).([]int32); ok {
		maskedLoad(v[:], src32, m)
		return
	}
	w := LoadWiden16(src, m)
	return w.Widen()
}

// StoreConvert writes the active lanes of v into dst, converting each with convert.
// It runs lane by lane, since convert may target types hwy has no vectors for (float16, bfloat16).
func StoreConvert[T any](dst []T, v *I32x16, m Mask16, convert func(int32) T) {
	for l := range m.Count() {
		dst[l] = convert(v[l])
	}
}

// NarrowI16 converts v to int16 lanes with saturation.
func (v *I32x16) NarrowI16() (n I16x16) {
	for i, step := 0, chunk[int32](); i < Lanes; i += step {
		hwy.Store(hwy.DemoteI32ToI16(hwy.Load(v[i:])), n[i:])
	}
	return
}
