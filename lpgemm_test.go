// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lpgemm

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/lpgemm/internal/gemmtest"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// testConfigs covers both kernel families of each accumulator, small blocks and parallelism.
var testConfigs = []string{
	"level=generic,threads=1",
	"level=avx512vnni,threads=1",
	"level=avx512vnni,threads=4,mc=12,nc=64,kc=16",
	"level=generic,threads=3,mc=6,nc=16,kc=8",
}

func forEachEngine(t *testing.T, fn func(t *testing.T, e *Engine)) {
	for _, cfg := range testConfigs {
		t.Run(cfg, func(t *testing.T) {
			fn(t, must.M1(NewFromString(cfg)))
		})
	}
}

func TestAllOnes(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e *Engine) {
		m, n, k := 5, 16, 4
		a := make([]uint8, m*k)
		for i := range a {
			a[i] = 1
		}
		b := make([]int8, k*n)
		for i := range b {
			b[i] = 1
		}
		c := make([]int32, m*n)
		require.NoError(t, e.U8S8S32(&Params[uint8, int32]{
			A: RowMajor(a, m, k), B: RowMajor(b, k, n), C: RowMajor(c, m, n), Alpha: 1,
		}))
		for i, x := range c {
			require.Equalf(t, int32(4), x, "c[%d]", i)
		}
	})
}

func TestGemmS32(t *testing.T) {
	sizes := [][3]int{{1, 1, 1}, {3, 7, 5}, {17, 33, 19}, {64, 130, 70}, {100, 40, 9}}
	forEachEngine(t, func(t *testing.T, e *Engine) {
		for _, size := range sizes {
			m, n, k := size[0], size[1], size[2]
			t.Run(fmt.Sprintf("%dx%dx%d", m, n, k), func(t *testing.T) {
				bias := gemmtest.RandomInts[int32](gemmtest.NewRand(1), n, -500, 500)
				ops := must.M1(postops.New().Bias(bias).PReLU(3).Done())
				prev := gemmtest.RandomInts[int32](gemmtest.NewRand(2), m*n, -1000, 1000)

				probU := gemmtest.NewProblem[uint8](3, m, n, k, 127)
				c := append([]int32(nil), prev...)
				require.NoError(t, e.U8S8S32(&Params[uint8, int32]{
					A: RowMajor(probU.A, m, k), B: RowMajor(probU.B, k, n), C: RowMajor(c, m, n),
					Alpha: -2, Beta: 5, PostOps: ops,
				}))
				require.Equal(t, gemmtest.ReferenceS32(probU.Product(), m, n, -2, 5, prev, ops), c)

				probS := gemmtest.NewProblem[int8](4, m, n, k, 127)
				c = append([]int32(nil), prev...)
				require.NoError(t, e.S8S8S32(&Params[int8, int32]{
					A: ColMajor(probS.ATransposed(), m, k), B: ColMajor(probS.BTransposed(), k, n), C: RowMajor(c, m, n),
					Alpha: 3, Beta: 1, PostOps: ops,
				}))
				require.Equal(t, gemmtest.ReferenceS32(probS.Product(), m, n, 3, 1, prev, ops), c)
			})
		}
	})
}

func TestGemmS16(t *testing.T) {
	sizes := [][3]int{{1, 1, 1}, {6, 32, 2}, {13, 45, 11}, {50, 70, 31}}
	forEachEngine(t, func(t *testing.T, e *Engine) {
		for _, size := range sizes {
			m, n, k := size[0], size[1], size[2]
			t.Run(fmt.Sprintf("%dx%dx%d", m, n, k), func(t *testing.T) {
				ops := must.M1(postops.New().Clip(-3000, 3000).Done())
				prev := gemmtest.RandomInts[int16](gemmtest.NewRand(5), m*n, -100, 100)

				probU := gemmtest.NewProblem[uint8](6, m, n, k, 63)
				c := append([]int16(nil), prev...)
				require.NoError(t, e.U8S8S16(&Params[uint8, int16]{
					A: RowMajor(probU.A, m, k), B: RowMajor(probU.B, k, n), C: RowMajor(c, m, n),
					Alpha: 1, Beta: -1, PostOps: ops,
				}))
				require.Equal(t, gemmtest.ReferenceS16(probU.Product(), m, n, 1, -1, prev, ops), c)

				probS := gemmtest.NewProblem[int8](7, m, n, k, 63)
				c = append([]int16(nil), prev...)
				require.NoError(t, e.S8S8S16(&Params[int8, int16]{
					A: RowMajor(probS.A, m, k), B: RowMajor(probS.B, k, n), C: RowMajor(c, m, n),
					Alpha: 2, PostOps: ops,
				}))
				require.Equal(t, gemmtest.ReferenceS16(probS.Product(), m, n, 2, 0, nil, ops), c)
			})
		}
	})
}

func TestOutputs(t *testing.T) {
	m, n, k := 21, 37, 40
	prob := gemmtest.NewProblem[uint8](8, m, n, k, 127)
	product := prob.Product()
	scale := []float32{1.0 / 512}
	ops := must.M1(postops.New().Downscale(scale, []int32{10}).Done())
	want := gemmtest.ReferenceS32(product, m, n, 1, 0, nil, ops)
	forEachEngine(t, func(t *testing.T, e *Engine) {
		params := func(out postops.Output) *Params[uint8, int32] {
			return &Params[uint8, int32]{
				A: RowMajor(prob.A, m, k), B: RowMajor(prob.B, k, n),
				Alpha: 1, PostOps: ops, Output: out,
			}
		}
		outU8 := make([]uint8, m*n)
		require.NoError(t, e.U8S8S32(params(postops.NewOutput(outU8, n))))
		assert.Equal(t, gemmtest.Saturate[uint8](want, 0, 255), outU8)

		outS16 := make([]int16, m*n)
		require.NoError(t, e.U8S8S32(params(postops.NewOutput(outS16, n))))
		assert.Equal(t, gemmtest.Saturate[int16](want, -32768, 32767), outS16)

		// Float outputs without the downscale.
		noOps := params(nil)
		noOps.PostOps = nil
		outF32 := make([]float32, m*n)
		noOps.Output = postops.NewOutput(outF32, n)
		require.NoError(t, e.U8S8S32(noOps))
		outBF16 := make([]bfloat16.BFloat16, m*n)
		noOps.Output = postops.NewOutput(outBF16, n)
		require.NoError(t, e.U8S8S32(noOps))
		outF16 := make([]float16.Float16, m*n)
		noOps.Output = postops.NewOutput(outF16, n)
		require.NoError(t, e.U8S8S32(noOps))
		for i, x := range product {
			require.Equal(t, float32(x), outF32[i])
			require.Equal(t, bfloat16.FromFloat32(float32(x)), outBF16[i])
			require.Equal(t, float16.Fromfloat32(float32(x)), outF16[i])
		}
	})
}

func TestOutputWithStrideAndBeta(t *testing.T) {
	// Output rows are padded to 50 columns: the padding must not be touched.
	m, n, k, stride := 9, 40, 33, 50
	prob := gemmtest.NewProblem[int8](9, m, n, k, 127)
	ops := must.M1(postops.New().Downscale([]float32{1.0 / 128}, nil).Done())
	forEachEngine(t, func(t *testing.T, e *Engine) {
		out := make([]int8, m*stride)
		prev := make([]int32, m*n)
		for i := range m {
			for j := range stride {
				out[i*stride+j] = int8((i + j) % 7)
				if j < n {
					prev[i*n+j] = int32(out[i*stride+j])
				}
			}
		}
		require.NoError(t, e.S8S8S32(&Params[int8, int32]{
			A: RowMajor(prob.A, m, k), B: RowMajor(prob.B, k, n),
			Alpha: 1, Beta: 64, PostOps: ops, Output: postops.NewOutput(out, stride),
		}))
		want := gemmtest.Saturate[int8](gemmtest.ReferenceS32(prob.Product(), m, n, 1, 64, prev, ops), -128, 127)
		for i := range m {
			for j := range stride {
				if j < n {
					require.Equalf(t, want[i*n+j], out[i*stride+j], "out[%d, %d]", i, j)
				} else {
					require.Equalf(t, int8((i+j)%7), out[i*stride+j], "padding out[%d, %d]", i, j)
				}
			}
		}
	})
}

func TestReorderB(t *testing.T) {
	m, n, k := 30, 150, 45
	forEachEngine(t, func(t *testing.T, e *Engine) {
		probS := gemmtest.NewProblem[int8](10, m, n, k, 127)
		reordered, err := ReorderB[int8, int32](e, RowMajor(probS.B, k, n))
		require.NoError(t, err)
		c := make([]int32, m*n)
		for range 2 {
			require.NoError(t, e.S8S8S32(&Params[int8, int32]{
				A: RowMajor(probS.A, m, k), Reordered: reordered, C: RowMajor(c, m, n), Alpha: 1,
			}))
			require.Equal(t, probS.Product(), c)
		}

		prob16 := gemmtest.NewProblem[int8](11, m, n, k, 63)
		reordered16, err := ReorderB[int8, int16](e, ColMajor(prob16.BTransposed(), k, n))
		require.NoError(t, err)
		c16 := make([]int16, m*n)
		require.NoError(t, e.S8S8S16(&Params[int8, int16]{
			A: RowMajor(prob16.A, m, k), Reordered: reordered16, C: RowMajor(c16, m, n), Alpha: 1,
		}))
		require.Equal(t, gemmtest.ReferenceS16(prob16.Product(), m, n, 1, 0, nil, nil), c16)

		// A reordered B is bound to its triple.
		err = e.U8S8S32(&Params[uint8, int32]{
			A: RowMajor(make([]uint8, m*k), m, k), Reordered: reordered, C: RowMajor(c, m, n), Alpha: 1,
		})
		require.ErrorContains(t, err, "reordered for s8s8s32")
	})
}

func TestUnpackedA(t *testing.T) {
	m, n, k := 20, 70, 23
	prob := gemmtest.NewProblem[uint8](12, m, n, k, 127)
	forEachEngine(t, func(t *testing.T, e *Engine) {
		c := make([]int32, m*n)
		require.NoError(t, e.U8S8S32(&Params[uint8, int32]{
			A: RowMajor(prob.A, m, k), B: RowMajor(prob.B, k, n), C: RowMajor(c, m, n), Alpha: 1, UnpackedA: true,
		}))
		require.Equal(t, prob.Product(), c)
	})
}

func TestValidation(t *testing.T) {
	e := must.M1(NewFromString("threads=1"))
	a := make([]uint8, 12)
	b := make([]int8, 12)
	c := make([]int32, 9)
	valid := func() *Params[uint8, int32] {
		return &Params[uint8, int32]{A: RowMajor(a, 3, 4), B: RowMajor(b, 4, 3), C: RowMajor(c, 3, 3), Alpha: 1}
	}
	require.NoError(t, e.U8S8S32(valid()))

	for name, tc := range map[string]struct {
		modify func(p *Params[uint8, int32])
		errMsg string
	}{
		"K mismatch":      {func(p *Params[uint8, int32]) { p.B = RowMajor(b, 3, 4) }, "A is 3x4 but B is 3x4"},
		"short A":         {func(p *Params[uint8, int32]) { p.A = RowMajor(a[:11], 3, 4) }, "needs 12 values"},
		"bad stride":      {func(p *Params[uint8, int32]) { p.A.Stride = 2 }, "stride 2"},
		"C shape":         {func(p *Params[uint8, int32]) { p.C = RowMajor(c, 1, 9) }, "C is 1x9"},
		"C column-major":  {func(p *Params[uint8, int32]) { p.C = ColMajor(c, 3, 3) }, "row-major"},
		"zero K":          {func(p *Params[uint8, int32]) { p.A = RowMajor(a, 3, 0); p.B = RowMajor(b, 0, 3) }, "K must be > 0"},
		"unpacked colmaj": {func(p *Params[uint8, int32]) { p.A = ColMajor(a, 3, 4); p.UnpackedA = true }, "unpacked A"},
		"short output": {func(p *Params[uint8, int32]) {
			p.Output = postops.NewOutput(make([]int8, 8), 3)
		}, "needs 9 values"},
		"output stride": {func(p *Params[uint8, int32]) {
			p.Output = postops.NewOutput(make([]int8, 9), 2)
		}, "row stride 2"},
		"bias length": {func(p *Params[uint8, int32]) {
			p.PostOps = must.M1(postops.New().Bias([]int32{1, 2}).Done())
		}, "bias has 2 values"},
	} {
		t.Run(name, func(t *testing.T) {
			p := valid()
			tc.modify(p)
			require.ErrorContains(t, e.U8S8S32(p), tc.errMsg)
		})
	}

	// Empty outputs are a no-op.
	require.NoError(t, e.U8S8S32(&Params[uint8, int32]{A: RowMajor(a, 0, 4), B: RowMajor(b, 4, 3), C: RowMajor(c, 0, 3)}))

	// Unpacked A isn't available for signed A.
	err := e.S8S8S32(&Params[int8, int32]{
		A: RowMajor(make([]int8, 12), 3, 4), B: RowMajor(b, 4, 3), C: RowMajor(c, 3, 3), UnpackedA: true,
	})
	require.ErrorContains(t, err, "unpacked A")
}

func TestEngineConfig(t *testing.T) {
	e := must.M1(NewFromString("level=avx512vnni,kernel=6x32,threads=1"))
	// 6x32 only exists for 16-bit accumulators: the 32-bit triples keep the default selection.
	assert.Contains(t, e.Family(kernels.U8S8S32), "s32-6x64")
	assert.Contains(t, e.Family(kernels.U8S8S16), "s16-6x32")
	assert.Equal(t, 1, e.Parallelism())
	assert.Contains(t, e.String(), "level=avx512vnni")

	e = must.M1(NewFromString("level=generic,kernel=6x16,kc=100"))
	assert.Contains(t, e.Family(kernels.S8S8S32), "s32-6x16")
	assert.Contains(t, e.Family(kernels.S8S8S32), "KC=100")

	// The forced kernel requires a CPU level the host doesn't have.
	_, err := NewFromString("level=generic,kernel=6x64")
	require.Error(t, err)

	_, err = NewFromString("threads=many")
	require.Error(t, err)

	t.Setenv("LPGEMM_CONFIG", "level=avx2,threads=2")
	e, err = New()
	require.NoError(t, err)
	assert.Contains(t, e.Family(kernels.U8S8S16), "s16-6x32")
	assert.Contains(t, e.Family(kernels.U8S8S32), "s32-6x16")
}

func TestNewWithOptions(t *testing.T) {
	t.Setenv("LPGEMM_CONFIG", "level=avx512vnni,threads=3")
	e, err := NewWithOptions(Options{Kernel: kernels.Shape{MR: 6, NR: 16}, Blocks: kernels.BlockSizes{NC: 96}})
	require.NoError(t, err)
	assert.Equal(t, "avx512vnni", e.Level().String())
	assert.Contains(t, e.Family(kernels.U8S8S32), "s32-6x16")
	assert.Contains(t, e.Family(kernels.U8S8S32), "NC=96")

	e, err = NewWithOptions(Options{Level: "generic", Threads: 1})
	require.NoError(t, err)
	assert.Equal(t, "generic", e.Level().String())
	assert.Equal(t, 1, e.Parallelism())
	assert.Contains(t, e.Family(kernels.U8S8S32), "s32-6x16")

	_, err = NewWithOptions(Options{Level: "sse9"})
	require.Error(t, err)
	_, err = NewWithOptions(Options{Threads: -1})
	require.Error(t, err)
}

func TestForcedKernelWarning(t *testing.T) {
	// Shapes no triple has, so no engine built by the other tests warned about them.
	shape := kernels.Shape{MR: 3, NR: 7}
	assert.True(t, warnForcedKernel(shape, kernels.U8S8S16))
	assert.False(t, warnForcedKernel(shape, kernels.U8S8S16))
	assert.True(t, warnForcedKernel(shape, kernels.S8S8S16))
	assert.True(t, warnForcedKernel(kernels.Shape{MR: 3, NR: 9}, kernels.U8S8S16))
	assert.False(t, warnForcedKernel(kernels.Shape{MR: 3, NR: 9}, kernels.U8S8S16))
}

func TestConcurrentCalls(t *testing.T) {
	e := must.M1(NewFromString("threads=2,mc=12,nc=32,kc=8"))
	m, n, k := 25, 50, 20
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prob := gemmtest.NewProblem[uint8](uint64(100+i), m, n, k, 127)
			c := make([]int32, m*n)
			assert.NoError(t, e.U8S8S32(&Params[uint8, int32]{
				A: RowMajor(prob.A, m, k), B: RowMajor(prob.B, k, n), C: RowMajor(c, m, n), Alpha: 1,
			}))
			assert.Equal(t, prob.Product(), c)
		}()
	}
	wg.Wait()
}
