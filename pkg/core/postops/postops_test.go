// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/lpgemm/pkg/core/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCols = 64

func testList(t *testing.T) *List {
	bias := make([]int16, testCols)
	scales := make([]float32, testCols)
	zeroPoints := make([]int8, testCols)
	matrix := make([]int8, MaxRows*testCols)
	for i := range bias {
		bias[i] = int16(i*7 - 200)
		scales[i] = 0.25 + float32(i)/64
		zeroPoints[i] = int8(i - 32)
	}
	for i := range matrix {
		matrix[i] = int8(i%255 - 127)
	}
	ops, err := New().
		Bias(bias).
		PReLU(3).
		GELUTanh().
		MatrixAdd(NewOperand(matrix, testCols)).
		GELUErf().
		SiLU(2).
		Clip(-3000, 3000).
		Downscale(scales, zeroPoints).
		ReLU().
		Done()
	require.NoError(t, err)
	return ops
}

func randomTile32(rng *rand.Rand, rows, vecs int, tail vec.Mask16) *Tile32 {
	t := &Tile32{}
	t.Init(rows, vecs, tail)
	for r := range rows {
		for v := range vecs {
			for l := range vec.Lanes {
				if t.Mask(v).Active(l) {
					t.Acc[r][v][l] = rng.Int32N(8000) - 4000
				}
			}
		}
	}
	return t
}

func TestBuilder(t *testing.T) {
	ops := testList(t)
	assert.Equal(t, 9, ops.Len())
	assert.Equal(t, []Kind{KindBias, KindPReLU, KindGELUTanh, KindMatrixAdd, KindGELUErf, KindSiLU, KindClip,
		KindDownscale, KindReLU}, ops.Kinds())
	assert.True(t, ops.Has(KindMatrixAdd))
	assert.False(t, ops.Has(KindDisable))

	// The list is terminated by the sentinel.
	var last *Op
	for op := ops.Head(); op != nil; op = op.Next() {
		last = op
	}
	assert.Equal(t, KindDisable, last.Kind)

	// Empty lists.
	var nilList *List
	assert.Equal(t, KindDisable, nilList.Head().Kind)
	assert.Equal(t, 0, nilList.Len())
	empty, err := New().Done()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty.String())

	_, err = New().Clip(10, -10).Done()
	assert.Error(t, err)
	_, err = New().Downscale(nil, nil).Done()
	assert.Error(t, err)
	_, err = New().ReLU().Bias([]float32{1}).Done()
	assert.Error(t, err)
	_, err = New().MatrixAdd(nil).Done()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ops := testList(t)
	require.NoError(t, ops.Validate(MaxRows, testCols))
	assert.Error(t, ops.Validate(MaxRows, testCols+1))
	assert.Error(t, ops.Validate(MaxRows+1, testCols))

	perTensor, err := New().Downscale([]float32{0.5}, []int32{3}).Done()
	require.NoError(t, err)
	assert.NoError(t, perTensor.Validate(1000, 1000))
}

func TestKindString(t *testing.T) {
	for _, kind := range KindValues() {
		parsed, err := KindString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	k, err := KindString("GELUTanh")
	require.NoError(t, err)
	assert.Equal(t, KindGELUTanh, k)
	_, err = KindString("softmax")
	assert.Error(t, err)
}

func TestApply32MatchesScalar(t *testing.T) {
	ops := testList(t)
	rng := rand.New(rand.NewPCG(42, 0))
	for _, tc := range []struct {
		rows, vecs int
		tail       vec.Mask16
	}{{6, 4, vec.FullMask}, {3, 3, vec.FullMask}, {1, 1, vec.TailMask(5)}, {5, 2, vec.TailMask(15)}} {
		tile := randomTile32(rng, tc.rows, tc.vecs, tc.tail)
		want := *tile
		attr := &Attributes{PostOpCI: 0, PostOpCJ: 64 - tc.vecs*vec.Lanes}
		ops.Apply32(tile, attr)
		for r := range tc.rows {
			for v := range tc.vecs {
				for l := range vec.Lanes {
					if !tile.Mask(v).Active(l) {
						continue
					}
					col := attr.PostOpCJ + v*vec.Lanes + l
					expected := ops.ApplyScalar32(want.Acc[r][v][l], attr.PostOpCI+r, col)
					require.Equal(t, expected, tile.Acc[r][v][l], "rows=%d vecs=%d r=%d col=%d", tc.rows, tc.vecs, r, col)
				}
			}
		}
	}
}

func TestApply16MatchesScalar(t *testing.T) {
	ops := testList(t)
	rng := rand.New(rand.NewPCG(7, 0))
	tile := &Tile16{}
	tile.Init(6, 2, vec.TailMask(9))
	for r := range tile.Rows {
		for v := range tile.Vecs {
			for l := range vec.Lanes {
				tile.Acc[r][v][l] = int16(rng.Int32N(4000) - 2000)
			}
		}
	}
	want := *tile
	attr := &Attributes{PostOpCI: 0, PostOpCJ: 16}
	ops.Apply16(tile, attr)
	for r := range tile.Rows {
		for v := range tile.Vecs {
			for l := range vec.Lanes {
				if !tile.Mask(v).Active(l) {
					continue
				}
				col := attr.PostOpCJ + v*vec.Lanes + l
				require.Equal(t, ops.ApplyScalar16(want.Acc[r][v][l], r, col), tile.Acc[r][v][l])
			}
		}
	}
}

func TestIdempotentTraversal(t *testing.T) {
	ops := testList(t)
	rng := rand.New(rand.NewPCG(3, 3))
	tile := randomTile32(rng, 6, 4, vec.FullMask)
	first, second := *tile, *tile
	attr := &Attributes{IsFirstK: true, IsLastK: true}
	ops.Apply32(&first, attr)
	ops.Apply32(&second, attr)
	assert.Equal(t, first, second)
}

func TestRequantizationBoundaries(t *testing.T) {
	scales := make([]float32, 16)
	zeroPoints := make([]int32, 16)
	for i := range scales {
		scales[i] = 0.5
		zeroPoints[i] = int32(i) - 8
	}
	ops, err := New().Downscale(scales, zeroPoints).Done()
	require.NoError(t, err)

	values := []int32{0, 1, 3, 5, -1, -3, 254, 255, 256, -256, -257, -258, math.MaxInt32, math.MinInt32, 300, -300}
	tile := &Tile32{}
	tile.Init(1, 1, vec.FullMask)
	copy(tile.Acc[0][0][:], values)
	attr := &Attributes{IsLastK: true}
	ops.Apply32(tile, attr)

	out := make([]int8, 16)
	tile.StoreOutput(NewOutput(out, 16), 0, 0)
	for i, x := range values {
		rounded := math.RoundToEven(float64(x) * 0.5)
		want := rounded + float64(zeroPoints[i])
		want = math.Max(math.Min(want, 127), -128)
		assert.Equal(t, int8(want), out[i], "value %d at column %d", x, i)
	}
}

func TestRequantizationSaturates(t *testing.T) {
	// The zero point add and the float to int conversion saturate instead of wrapping.
	assert.Equal(t, int32(math.MaxInt32), requantize32(math.MaxInt32, 1, 5))
	assert.Equal(t, int32(math.MinInt32), requantize32(math.MinInt32, 1, -5))
	assert.Equal(t, int32(math.MaxInt32), requantize32(math.MaxInt32, 4, 0))
	assert.Equal(t, int32(math.MinInt32), requantize32(math.MaxInt32, -4, 0))
	assert.Equal(t, int32(-3), requantize32(5, 0.5, -5))

	ops, err := New().Downscale([]float32{4}, []int32{7}).Done()
	require.NoError(t, err)
	tile := &Tile32{}
	tile.Init(1, 1, vec.TailMask(3))
	tile.Acc[0][0] = vec.I32x16{math.MaxInt32, math.MinInt32, 10}
	ops.Apply32(tile, &Attributes{IsLastK: true})
	assert.Equal(t, []int32{math.MaxInt32, math.MinInt32 + 7, 47}, tile.Acc[0][0][:3])
	for i, x := range []int32{math.MaxInt32, math.MinInt32, 10} {
		assert.Equal(t, tile.Acc[0][0][i], ops.ApplyScalar32(x, 0, i), "column %d", i)
	}
}

func TestOutputs(t *testing.T) {
	tile := &Tile32{}
	tile.Init(2, 1, vec.TailMask(3))
	tile.Acc[0][0] = vec.I32x16{-300, 7, 300}
	tile.Acc[1][0] = vec.I32x16{1, 2, 3}

	t.Run("Uint8", func(t *testing.T) {
		out := make([]uint8, 8)
		o := NewOutput(out, 4)
		assert.Equal(t, dtypes.Uint8, o.DType())
		tile.StoreOutput(o, 0, 1)
		assert.Equal(t, []uint8{0, 0, 7, 255, 0, 1, 2, 3}, out)
	})

	t.Run("BFloat16", func(t *testing.T) {
		out := make([]bfloat16.BFloat16, 6)
		o := NewOutput(out, 3)
		tile.StoreOutput(o, 0, 0)
		assert.Equal(t, float32(-300), out[0].Float32())
		assert.Equal(t, int32(3), o.At(1, 2))

		// Beta reads the previous values back.
		next := &Tile32{}
		next.Init(2, 1, vec.TailMask(3))
		next.AddScaledOutput(o, 0, 0, 2)
		assert.Equal(t, int32(-600), next.Acc[0][0][0])
		assert.Equal(t, int32(6), next.Acc[1][0][2])
	})

	t.Run("Int8From16BitTile", func(t *testing.T) {
		t16 := &Tile16{}
		t16.Init(1, 1, vec.TailMask(2))
		t16.Acc[0][0] = vec.I16x16{-129, 200}
		out := make([]int8, 2)
		t16.StoreOutput(NewOutput(out, 2), 0, 0)
		assert.Equal(t, []int8{-128, 127}, out)
	})
}

func TestActivations(t *testing.T) {
	for x := float32(-6); x <= 6; x += 0.125 {
		assert.InDelta(t, math.Erf(float64(x)), float64(Erf(x)), 2e-6, "erf(%g)", x)
		assert.InDelta(t, math.Tanh(float64(x)), float64(Tanh(x)), 2e-6, "tanh(%g)", x)
		geluRef := 0.5 * float64(x) * (1 + math.Erf(float64(x)/math.Sqrt2))
		assert.InDelta(t, geluRef, float64(GELUErf(x)), 1e-5, "gelu_erf(%g)", x)
		assert.InDelta(t, geluRef, float64(GELUTanh(x)), 1e-3, "gelu_tanh(%g)", x)
	}
	assert.Equal(t, float32(0), SiLU(0, 1))
	assert.InDelta(t, 10*(1/(1+math.Exp(-20))), float64(SiLU(10, 2)), 1e-5)

	// The tile path maps the same hwy functions over whole vectors.
	xs := vec.F32x16{-6, -3, -1.5, -0.75, -0.25, 0, 0.125, 0.5, 1, 1.75, 2.5, 3, 4, 5, 6, 7.5}
	for name, fns := range map[string]struct {
		lanes  func(hwy.Vec[float32]) hwy.Vec[float32]
		scalar func(float32) float32
	}{
		"GELUTanh": {geluTanhVec, GELUTanh},
		"GELUErf":  {geluErfVec, GELUErf},
		"SiLU":     {siluVec(3), func(x float32) float32 { return SiLU(x, 3) }},
	} {
		got := xs
		got.Map(fns.lanes)
		for l, x := range xs {
			assert.Equal(t, fns.scalar(x), got[l], "%s(%g)", name, x)
		}
	}
	assert.Equal(t, int32(2), (&List{}).ApplyScalar32(2, 0, 0))
}
