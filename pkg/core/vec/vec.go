// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package vec implements the fixed-width lane types used by the low-precision GEMM kernels.
//
// Each type mirrors one SIMD register: I32x16 is a 512-bit register of int32 lanes (the accumulator of
// the u8·s8 dot-product family), I16x16 is a 256-bit register of int16 lanes (the accumulator of the
// pairwise u8·s8 multiply-add family) and F32x16 is the float32 view used by activations and requantization.
//
// The 16 lanes are stored in plain arrays, the layout the packed B panels and the accumulator tiles rely on.
// Arithmetic, masked loads and stores, conversions and rounding run through go-highway, one hwy.Vec of
// hwy.MaxLanes lanes at a time, so the same code picks up AVX2/AVX-512/NEON when hwy is built with SIMD.
// Only the u8·s8 dot products (DotU8I8 and MaddU8I8) are written lane by lane: hwy has no mixed-sign byte dot.
//
// All loads and stores take bounds-checked slices. Masked variants only touch the lanes enabled in the Mask16,
// so a slice shorter than 16 elements is fine as long as it covers the active lanes.
package vec

import (
	"math"
	"math/bits"

	"github.com/ajroetker/go-highway/hwy"
)

// Lanes is the number of lanes of every vector type in this package.
const Lanes = 16

// Mask16 selects active lanes: bit i enables lane i.
// Masks are always a prefix of the lanes (see TailMask): masked loads and stores rely on it.
type Mask16 uint16

// FullMask enables all 16 lanes.
const FullMask Mask16 = 0xFFFF

// TailMask returns the mask enabling the first n lanes (n in [0, 16]).
func TailMask(n int) Mask16 {
	if n >= Lanes {
		return FullMask
	}
	return Mask16(uint32(1)<<uint(n) - 1)
}

// Active returns whether lane is enabled.
func (m Mask16) Active(lane int) bool {
	return m&(1<<uint(lane)) != 0
}

// Count returns the number of active lanes.
func (m Mask16) Count() int {
	return bits.OnesCount16(uint16(m))
}

// IsFull returns whether all lanes are enabled.
func (m Mask16) IsFull() bool {
	return m == FullMask
}

// chunk returns how many lanes of T one hwy.Vec covers, capped at Lanes.
func chunk[T hwy.Lanes]() int {
	return min(hwy.MaxLanes[T](), Lanes)
}

// chunkMask returns the hwy mask of the lanes of m that fall in the chunk starting at lane i.
func chunkMask[T hwy.Lanes](m Mask16, i int) hwy.Mask[T] {
	return hwy.FirstN[T](m.Count() - i)
}

// broadcast sets every lane of dst to x.
func broadcast[T hwy.Lanes](dst []T, x T) {
	for i, n := 0, chunk[T](); i < Lanes; i += n {
		hwy.Store(hwy.Set(x), dst[i:])
	}
}

// mapInPlace replaces every lane of v by op applied to it.
func mapInPlace[T hwy.Lanes](v []T, op func(x hwy.Vec[T]) hwy.Vec[T]) {
	for i, n := 0, chunk[T](); i < Lanes; i += n {
		hwy.Store(op(hwy.Load(v[i:Lanes])), v[i:])
	}
}

// zipInPlace replaces every lane of v by op applied to it and the matching lane of o.
func zipInPlace[T hwy.Lanes](v, o []T, op func(x, y hwy.Vec[T]) hwy.Vec[T]) {
	for i, n := 0, chunk[T](); i < Lanes; i += n {
		hwy.Store(op(hwy.Load(v[i:Lanes]), hwy.Load(o[i:Lanes])), v[i:])
	}
}

// maskedLoad copies the active lanes of src into dst, which must be zeroed.
func maskedLoad[T hwy.Lanes](dst, src []T, m Mask16) {
	for i, n := 0, chunk[T](); i < m.Count(); i += n {
		hwy.Store(hwy.MaskLoad(chunkMask[T](m, i), src[i:]), dst[i:])
	}
}

// maskedStore copies the active lanes of src into dst.
func maskedStore[T hwy.Lanes](dst, src []T, m Mask16) {
	for i, n := 0, chunk[T](); i < m.Count(); i += n {
		hwy.MaskStore(chunkMask[T](m, i), hwy.Load(src[i:Lanes]), dst[i:])
	}
}

// Group4 is one broadcast group of 4 consecutive unsigned A values along K.
type Group4 [4]uint8

// Group2 is one broadcast group of 2 consecutive unsigned A values along K.
type Group2 [2]uint8

// LoadGroup4 reads the 4 A values at a[off:off+4].
func LoadGroup4(a []uint8, off int) Group4 {
	return Group4(a[off : off+4])
}

// LoadGroup4Partial reads the first n (< 4) A values at a[off:] and zero fills the rest.
func LoadGroup4Partial(a []uint8, off, n int) (g Group4) {
	copy(g[:n], a[off:off+n])
	return
}

// LoadGroup2 reads the 2 A values at a[off:off+2].
func LoadGroup2(a []uint8, off int) Group2 {
	return Group2(a[off : off+2])
}

// LoadGroup2Partial reads the first n (< 2) A values at a[off:] and zero fills the rest.
func LoadGroup2Partial(a []uint8, off, n int) (g Group2) {
	copy(g[:n], a[off:off+n])
	return
}

// SaturateInt32 clamps x to the int32 range.
func SaturateInt32(x int64) int32 {
	if x > math.MaxInt32 {
		return math.MaxInt32
	} else if x < math.MinInt32 {
		return math.MinInt32
	}
	return int32(x)
}

// SaturateInt16 clamps x to the int16 range.
func SaturateInt16(x int32) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	} else if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}

// SaturateInt8 clamps x to the int8 range.
func SaturateInt8(x int32) int8 {
	if x > math.MaxInt8 {
		return math.MaxInt8
	} else if x < math.MinInt8 {
		return math.MinInt8
	}
	return int8(x)
}

// SaturateUint8 clamps x to the uint8 range.
func SaturateUint8(x int32) uint8 {
	if x > math.MaxUint8 {
		return math.MaxUint8
	} else if x < 0 {
		return 0
	}
	return uint8(x)
}

// RoundToInt32 rounds f to the nearest integer, ties to even, saturating to the int32 range.
// NaN converts to 0.
func RoundToInt32(f float32) int32 {
	if f != f {
		return 0
	}
	r := math.RoundToEven(float64(f))
	if r >= math.MaxInt32 {
		return math.MaxInt32
	} else if r <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(r)
}
