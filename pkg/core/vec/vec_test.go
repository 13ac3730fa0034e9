// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask16(t *testing.T) {
	assert.Equal(t, Mask16(0), TailMask(0))
	assert.Equal(t, Mask16(0b111), TailMask(3))
	assert.Equal(t, FullMask, TailMask(16))
	assert.Equal(t, FullMask, TailMask(20))
	assert.Equal(t, 5, TailMask(5).Count())
	assert.True(t, TailMask(5).Active(4))
	assert.False(t, TailMask(5).Active(5))
}

func TestDotU8I8(t *testing.T) {
	b := make([]int8, 64)
	for l := range Lanes {
		for j := range 4 {
			b[4*l+j] = int8(l - j*8)
		}
	}
	a := Group4{1, 2, 255, 0}
	v := Broadcast32(10)
	v.DotU8I8(a, b)
	for l := range Lanes {
		want := int32(10) + 1*int32(l) + 2*int32(l-8) + 255*int32(l-16)
		require.Equal(t, want, v[l], "lane %d", l)
	}
}

func TestMaddU8I8Saturates(t *testing.T) {
	b := make([]int8, 32)
	for l := range Lanes {
		b[2*l], b[2*l+1] = 127, 127
	}
	var v I16x16
	v.MaddU8I8(Group2{255, 255}, b)
	for l := range Lanes {
		require.Equal(t, int16(math.MaxInt16), v[l])
	}

	// The accumulation itself wraps.
	v.MaddU8I8(Group2{1, 0}, b)
	for l := range Lanes {
		require.Equal(t, int16(math.MinInt16+126), v[l])
	}
}

func TestLoadGroups(t *testing.T) {
	a := []uint8{1, 2, 3, 4, 5, 6}
	assert.Equal(t, Group4{3, 4, 5, 6}, LoadGroup4(a, 2))
	assert.Equal(t, Group4{5, 6, 0, 0}, LoadGroup4Partial(a, 4, 2))
	assert.Equal(t, Group2{6, 0}, LoadGroup2Partial(a, 5, 1))
	assert.Panics(t, func() { LoadGroup4(a, 4) })
}

func TestMaskedLoadStore(t *testing.T) {
	src := []int32{1, 2, 3}
	v := LoadI32(src, TailMask(3))
	assert.Equal(t, I32x16{1, 2, 3}, v)

	dst := []int32{-1, -1, -1, -1}
	v.MulScalar(2)
	v.Store(dst, TailMask(3))
	assert.Equal(t, []int32{2, 4, 6, -1}, dst)

	w := LoadWiden([]int8{-1, 127}, TailMask(2))
	assert.Equal(t, int32(-1), w[0])
	assert.Equal(t, int32(127), w[1])
	assert.Equal(t, int32(0), w[2])
}

func TestRoundAndSaturate(t *testing.T) {
	assert.Equal(t, int32(2), RoundToInt32(2.5))
	assert.Equal(t, int32(4), RoundToInt32(3.5))
	assert.Equal(t, int32(-2), RoundToInt32(-2.5))
	assert.Equal(t, int32(math.MaxInt32), RoundToInt32(float32(math.Inf(1))))
	assert.Equal(t, int32(math.MinInt32), RoundToInt32(-3e10))
	assert.Equal(t, int32(0), RoundToInt32(float32(math.NaN())))

	assert.Equal(t, int8(127), SaturateInt8(1000))
	assert.Equal(t, int8(-128), SaturateInt8(-1000))
	assert.Equal(t, uint8(0), SaturateUint8(-3))
	assert.Equal(t, uint8(255), SaturateUint8(256))
	assert.Equal(t, int16(-32768), SaturateInt16(-40000))
	assert.Equal(t, int32(math.MaxInt32), SaturateInt32(1<<40))
}

func TestLaneArithmetic(t *testing.T) {
	var v, o I32x16
	for l := range Lanes {
		v[l] = int32(l - 8)
		o[l] = int32(2 * l)
	}
	w := v
	w.Add(&o)
	w.Sub(&v)
	assert.Equal(t, o, w)

	w = v
	w.MulAddScalar(&o, 3)
	w.MulIfNonPositive(-2)
	for l := range Lanes {
		want := int32(l-8) + 6*int32(l)
		if want <= 0 {
			want *= -2
		}
		require.Equal(t, want, w[l], "lane %d", l)
	}

	w = v
	w.Clamp(-3, 4)
	w.MaxScalar(-1)
	for l := range Lanes {
		require.Equal(t, min(max(int32(l-8), -1), 4), w[l], "lane %d", l)
	}

	// Multiplication keeps the low 32 bits.
	big := Broadcast32(math.MaxInt32)
	big.MulScalar(2)
	assert.Equal(t, Broadcast32(-2), big)

	var h I16x16
	for l := range Lanes {
		h[l] = int16(l - 8)
	}
	h.MulScalar(4096)
	h.MulIfNonPositive(3)
	for l := range Lanes {
		want := int16(l-8) * 4096
		if want <= 0 {
			want *= 3
		}
		require.Equal(t, want, h[l], "lane %d", l)
	}
}

func TestWidenNarrow(t *testing.T) {
	m := TailMask(11)
	u := LoadWiden16([]uint8{0, 1, 200, 255, 7, 7, 7, 7, 7, 7, 9}, m)
	assert.Equal(t, I16x16{0, 1, 200, 255, 7, 7, 7, 7, 7, 7, 9}, u)
	s := LoadWiden16([]int8{-128, 127, -1}, TailMask(3))
	assert.Equal(t, I16x16{-128, 127, -1}, s)
	tr := LoadWiden16([]int32{70000, -1}, TailMask(2))
	assert.Equal(t, I16x16{int16(70000 - 65536), -1}, tr)

	wide := LoadWiden([]uint8{255, 3}, TailMask(2))
	assert.Equal(t, I32x16{255, 3}, wide)

	var v I32x16
	for l := range Lanes {
		v[l] = int32(l-8) * 10000
	}
	n := v.NarrowI16()
	for l := range Lanes {
		require.Equal(t, SaturateInt16(v[l]), n[l], "lane %d", l)
	}
	back := n.Widen()
	for l := range Lanes {
		require.Equal(t, int32(n[l]), back[l], "lane %d", l)
	}
}

func TestTailStoreLeavesTheRest(t *testing.T) {
	dst := make([]int16, Lanes)
	for l := range dst {
		dst[l] = -7
	}
	v := Broadcast16(3)
	v.Store(dst, TailMask(13))
	for l := range Lanes {
		want := int16(3)
		if l >= 13 {
			want = -7
		}
		require.Equal(t, want, dst[l], "lane %d", l)
	}

	// Inactive lanes are never read, so a short source is fine.
	f := LoadF32([]float32{1.5, 2.5}, TailMask(2))
	assert.Equal(t, F32x16{1.5, 2.5}, f)
}

func TestRoundToI32MatchesScalar(t *testing.T) {
	f := F32x16{0.5, 1.5, 2.5, -0.5, -1.5, 3.49, -3.51, 1e10, -1e10,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()), 2147483520, -2147483648, 7, -7}
	got := f.RoundToI32()
	for l := range Lanes {
		require.Equal(t, RoundToInt32(f[l]), got[l], "lane %d (%g)", l, f[l])
	}

	i := I32x16{1, -2, 1 << 24, 1<<24 + 1}
	asFloat := i.ToFloat32()
	assert.Equal(t, float32(1<<24), asFloat[3])
	asFloat.MulScalar(0.5)
	asFloat.Mul(&F32x16{2, 2})
	assert.Equal(t, float32(1), asFloat[0])
	assert.Equal(t, float32(-2), asFloat[1])
	assert.Equal(t, float32(0), asFloat[2])
}

func TestAddSaturating(t *testing.T) {
	v := I32x16{math.MaxInt32, math.MinInt32, 5, -5}
	o := I32x16{1, -1, 7, -7}
	v.AddSaturating(&o)
	assert.Equal(t, I32x16{math.MaxInt32, math.MinInt32, 12, -12}, v)
}
