// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package lpgemm

import (
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/lpgemm/pkg/core/frame"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/support/arena"
	"github.com/gomlx/lpgemm/pkg/support/partition"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TripleOf returns the triple of the A and accumulator types.
func TripleOf[TA uint8 | int8, TC int32 | int16]() kernels.Triple {
	return kernels.Triple{
		A: dtypes.FromGenericsType[TA](),
		B: dtypes.Int8,
		C: dtypes.FromGenericsType[TC](),
	}
}

// family returns the kernel family the engine selected for the triple.
func family[TC int32 | int16](e *Engine, triple kernels.Triple) *kernels.Family[TC] {
	var fam any
	var zero TC
	switch any(zero).(type) {
	case int32:
		fam = e.s32[triple]
	case int16:
		fam = e.s16[triple]
	}
	return fam.(*kernels.Family[TC])
}

// Gemm computes C = postops(alpha·A·B + beta·C), or stores the result into p.Output if set.
//
// The work is split into disjoint output partitions run in parallel. Invalid parameters are reported as
// errors, and so is any panic raised while computing.
func Gemm[TA uint8 | int8, TC int32 | int16](e *Engine, p *Params[TA, TC]) error {
	triple := TripleOf[TA, TC]()
	if err := p.validate(triple); err != nil {
		return errors.WithMessagef(err, "lpgemm.Gemm(%s)", triple)
	}
	m, n, k := p.dims()
	if m == 0 || n == 0 {
		return nil
	}
	fam := family[TC](e, triple)

	fp := &frame.Params[TA, TC]{
		M: m, N: n, K: k,
		A: p.A.Data,
		C: p.C.Data, RsC: p.C.Stride,
		Alpha: p.Alpha, Beta: p.Beta,
		PostOps:   p.PostOps,
		Output:    p.Output,
		UnpackedA: p.UnpackedA,
	}
	fp.RsA, fp.CsA = p.A.Strides()
	colAlign := fam.Shape.NR
	if p.Reordered != nil {
		fp.Reordered = p.Reordered.Reordered
		colAlign = p.Reordered.Blocking.NC
	} else {
		fp.B = p.B.Data
		fp.RsB, fp.CsB = p.B.Strides()
	}

	parts := partition.Plan(m, n, e.Parallelism(), fam.Shape.MR, colAlign)
	ar := e.arenas.Get().(*arena.Arena)
	defer e.arenas.Put(ar)
	if klog.V(2).Enabled() {
		klog.Infof("lpgemm.Gemm(%s, M=%d, N=%d, K=%d): %s, %d partitions", triple, m, n, k, fam.Name, len(parts))
	}

	var mu sync.Mutex
	var firstErr error
	e.pool.ForEach(len(parts), func(worker, i int) {
		err := exceptions.TryCatch[error](func() {
			frame.Run(fp, fam, parts[i], ar, worker)
		})
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = errors.WithMessagef(err, "lpgemm.Gemm(%s) failed computing %s", triple, parts[i])
			}
			mu.Unlock()
		}
	})
	return firstErr
}

// U8S8S32 computes a GEMM with uint8 A and int32 accumulators.
func (e *Engine) U8S8S32(p *Params[uint8, int32]) error { return Gemm(e, p) }

// S8S8S32 computes a GEMM with int8 A and int32 accumulators.
func (e *Engine) S8S8S32(p *Params[int8, int32]) error { return Gemm(e, p) }

// U8S8S16 computes a GEMM with uint8 A and int16 accumulators.
//
// The u8·s8 products are summed in pairs with int16 saturation before accumulation, so large magnitudes of both
// A and B may saturate: keep |B| < 64 for exact results.
func (e *Engine) U8S8S16(p *Params[uint8, int16]) error { return Gemm(e, p) }

// S8S8S16 computes a GEMM with int8 A and int16 accumulators. See U8S8S16 on saturation.
func (e *Engine) S8S8S16(p *Params[int8, int16]) error { return Gemm(e, p) }

// ReorderB packs B for repeated use as the B operand of the triple of TA and TC.
func ReorderB[TA uint8 | int8, TC int32 | int16](e *Engine, b Matrix[int8]) (*ReorderedB, error) {
	triple := TripleOf[TA, TC]()
	if err := b.validate("B"); err != nil {
		return nil, errors.WithMessagef(err, "lpgemm.ReorderB(%s)", triple)
	}
	if b.Rows == 0 || b.Cols == 0 {
		return nil, errors.Errorf("lpgemm.ReorderB(%s): B is empty (%dx%d)", triple, b.Rows, b.Cols)
	}
	fam := family[TC](e, triple)
	sums := pack.NoColumnSums
	if triple.SignedA() {
		sums = pack.ColumnSums32
		if triple.C == dtypes.Int16 {
			sums = pack.ColumnSums16
		}
	}
	rs, cs := b.Strides()
	var r *pack.Reordered
	err := exceptions.TryCatch[error](func() {
		r = pack.Reorder(b.Data, rs, cs, b.Rows, b.Cols, fam.Blocking(fam.Blocks), sums)
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "lpgemm.ReorderB(%s)", triple)
	}
	klog.V(1).Infof("lpgemm.ReorderB(%s): %s", triple, r)
	return &ReorderedB{Reordered: r, Triple: triple}, nil
}
