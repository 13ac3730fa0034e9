// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// F32x16 is a vector of 16 float32 lanes.
type F32x16 [Lanes]float32

// MulScalar multiplies every lane by s.
func (f *F32x16) MulScalar(s float32) {
	sv := hwy.Set(s)
	mapInPlace(f[:], func(x hwy.Vec[float32]) hwy.Vec[float32] { return hwy.Mul(x, sv) })
}

// Mul multiplies f by o, lane by lane.
func (f *F32x16) Mul(o *F32x16) {
	zipInPlace(f[:], o[:], hwy.Mul[float32])
}

// Map replaces the lanes of f by fn applied to them, one hwy.Vec at a time.
// fn must return as many lanes as it is given.
func (f *F32x16) Map(fn func(hwy.Vec[float32]) hwy.Vec[float32]) {
	mapInPlace(f[:], fn)
}

// LoadF32 loads the active lanes from src; inactive lanes are zero.
func LoadF32(src []float32, m Mask16) (f F32x16) {
	maskedLoad(f[:], src, m)
	return
}

// RoundToI32 rounds every lane to the nearest integer (ties to even), saturating to the int32 range.
// NaN lanes convert to 0, like RoundToInt32.
func (f *F32x16) RoundToI32() (v I32x16) {
	// Saturation is done in float64, where both int32 bounds are exact.
	lo, hi := hwy.Set[float64](math.MinInt32), hwy.Set[float64](math.MaxInt32)
	zero := hwy.Zero[float64]()
	for i, n := 0, chunk[float64](); i < Lanes; i += n {
		r := hwy.PromoteF32ToF64(hwy.RoundToEven(hwy.Load(f[i:min(i+n, Lanes)])))
		r = hwy.IfThenElse(hwy.IsNaN(r), zero, hwy.Clamp(r, lo, hi))
		hwy.Store(hwy.ConvertToInt32(r), v[i:])
	}
	return
}
