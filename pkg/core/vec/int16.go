// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-highway/hwy"

// I16x16 is a vector of 16 int16 lanes. Arithmetic wraps around, except where noted.
type I16x16 [Lanes]int16

// Broadcast16 returns a vector with all lanes set to x.
func Broadcast16(x int16) (v I16x16) {
	broadcast(v[:], x)
	return
}

// MaddU8I8 accumulates a 2-deep unsigned·signed multiply-add into every lane.
// Each pair sum saturates to int16 before the (wrapping) accumulation:
//
//	v[l] += saturate16(a[0]*b[2l] + a[1]*b[2l+1])
//
// b must hold at least 32 values: 16 columns of 2 interleaved K values.
func (v *I16x16) MaddU8I8(a Group2, b []int8) {
	b = b[:2*Lanes]
	a0, a1 := int32(a[0]), int32(a[1])
	for l := range v {
		v[l] += SaturateInt16(a0*int32(b[2*l]) + a1*int32(b[2*l+1]))
	}
}

// Add adds o to v, lane by lane.
func (v *I16x16) Add(o *I16x16) {
	zipInPlace(v[:], o[:], hwy.Add[int16])
}

// Sub subtracts o from v, lane by lane.
func (v *I16x16) Sub(o *I16x16) {
	zipInPlace(v[:], o[:], hwy.Sub[int16])
}

// MulScalar multiplies every lane by s, keeping the low 16 bits.
func (v *I16x16) MulScalar(s int16) {
	sv := hwy.Set(s)
	mapInPlace(v[:], func(x hwy.Vec[int16]) hwy.Vec[int16] { return hwy.Mul(x, sv) })
}

// MulAddScalar adds o*s to v.
func (v *I16x16) MulAddScalar(o *I16x16, s int16) {
	sv := hwy.Set(s)
	zipInPlace(v[:], o[:], func(x, y hwy.Vec[int16]) hwy.Vec[int16] { return hwy.Add(x, hwy.Mul(y, sv)) })
}

// MaxScalar sets every lane to max(v[l], s).
func (v *I16x16) MaxScalar(s int16) {
	sv := hwy.Set(s)
	mapInPlace(v[:], func(x hwy.Vec[int16]) hwy.Vec[int16] { return hwy.Max(x, sv) })
}

// Clamp sets every lane to min(max(v[l], lo), hi).
func (v *I16x16) Clamp(lo, hi int16) {
	loV, hiV := hwy.Set(lo), hwy.Set(hi)
	mapInPlace(v[:], func(x hwy.Vec[int16]) hwy.Vec[int16] { return hwy.Clamp(x, loV, hiV) })
}

// MulIfNonPositive multiplies by s the lanes that are <= 0.
func (v *I16x16) MulIfNonPositive(s int16) {
	sv, zero := hwy.Set(s), hwy.Zero[int16]()
	mapInPlace(v[:], func(x hwy.Vec[int16]) hwy.Vec[int16] {
		return hwy.IfThenElse(hwy.LessEqual(x, zero), hwy.Mul(x, sv), x)
	})
}

// Widen sign extends v to int32 lanes.
func (v *I16x16) Widen() (w I32x16) {
	for i, n := 0, chunk[int16](); i < Lanes; i += n {
		hwy.Store(hwy.PromoteI16ToI32(hwy.Load(v[i:])), w[i:])
	}
	return
}

// LoadI16 loads the active lanes from src; inactive lanes are zero.
func LoadI16(src []int16, m Mask16) (v I16x16) {
	maskedLoad(v[:], src, m)
	return
}

// LoadWiden16 loads the active lanes from src, extending bytes and truncating int32 values to int16.
func LoadWiden16[T int8 | uint8 | int16 | int32](src []T, m Mask16) (v I16x16) {
	if src16, ok := any(src).([]int16); ok {
		maskedLoad(v[:], src16, m)
		return
	}
	var raw [Lanes]T
	maskedLoad(raw[:], src, m)
	switch raw := any(raw[:]).(type) {
	case []int8:
		for i, n := 0, chunk[int8](); i < Lanes; i += n {
			hwy.Store(hwy.PromoteI8ToI16(hwy.Load(raw[i:])), v[i:])
		}
	case []int32:
		for i, n := 0, chunk[int32](); i < Lanes; i += n {
			hwy.Store(hwy.TruncateI32ToI16(hwy.Load(raw[i:])), v[i:])
		}
	case []uint8:
		// hwy only promotes unsigned bytes to unsigned lanes.
		for l, x := range raw {
			v[l] = int16(x)
		}
	}
	return
}

// Store writes the active lanes of v into dst.
func (v *I16x16) Store(dst []int16, m Mask16) {
	maskedStore(dst, v[:], m)
}
