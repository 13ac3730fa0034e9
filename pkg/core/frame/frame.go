// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package frame implements the five-loop blocking nest of the low-precision GEMM over one output partition.
//
// Loop order, outermost first:
//
//	jc: N in NC columns    (B block reused across the M sweep)
//	pc: K in KC slices     (pack B[pc:pc+KC, jc:jc+NC], accumulate column sums for signed A)
//	ic: M in MC rows       (pack A[ic:ic+MC, pc:pc+KC])
//	jr: NC in NR panels    (kernels.Family.RowVar)
//	ir: MC in MR groups    (inside RowVar, with the N fringes)
//
// All K slices of an output tile are accumulated in increasing K order: the first slice applies beta to the
// previous C (or Output) values, later slices accumulate into C with beta = 1, and only the last one runs the
// column sums compensation, the post-ops and the store into the Output.
package frame

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/gomlx/lpgemm/pkg/support/arena"
	"github.com/gomlx/lpgemm/pkg/support/partition"
	"k8s.io/klog/v2"
)

// AType is the set of A element types.
type AType interface {
	uint8 | int8
}

// Params describes one GEMM: C = alpha·A·B + beta·C, followed by the post-ops.
//
// A is M×K with element (m, k) at A[m*RsA + k*CsA]. B is K×N with element (k, n) at B[k*RsB + n*CsB], or
// pre-packed in Reordered. C is M×N row-major with row stride RsC. If Output is set, the final values are
// stored there instead of C, and C is not used.
type Params[TA AType, TC kernels.Accumulator] struct {
	M, N, K int

	A        []TA
	RsA, CsA int

	B        []int8
	RsB, CsB int

	Reordered *pack.Reordered

	C   []TC
	RsC int

	Alpha, Beta TC
	PostOps     *postops.List
	Output      postops.Output

	// UnpackedA reads A in place instead of packing it: only valid for row-major (CsA == 1) uint8 A.
	UnpackedA bool
}

func isSigned[TA AType]() bool {
	var zero TA
	_, signed := any(zero).(int8)
	return signed
}

// workspace holds the arena handles of one Run call. They are sliced where each block is used.
type workspace[TC kernels.Accumulator] struct {
	packedA arena.Handle[uint8]
	packedB arena.Handle[int8]
	tempC   arena.Handle[TC]
	colSums arena.Handle[TC]
}

// Run computes the output elements owned by part, using the family's kernels and block sizes, and the
// arena slabs of the given thread.
//
// If p.Reordered is set, its Blocking must match the family's NR and Chunk, and part.Cols.Start must be a
// multiple of its NC.
func Run[TA AType, TC kernels.Accumulator](p *Params[TA, TC], fam *kernels.Family[TC], part partition.Partition,
	ar *arena.Arena, thread int) {
	rows, cols := part.Rows.Len(), part.Cols.Len()
	if rows <= 0 || cols <= 0 {
		return
	}
	blocks := fam.Blocks
	if p.Reordered != nil {
		blk := p.Reordered.Blocking
		if blk.NR != fam.Shape.NR || blk.Chunk != fam.Chunk {
			exceptions.Panicf("frame.Run: reordered B laid out for NR=%d, chunk=%d, but kernel family %s uses NR=%d, chunk=%d",
				blk.NR, blk.Chunk, fam.Name, fam.Shape.NR, fam.Chunk)
		}
		blocks.KC, blocks.NC = blk.KC, blk.NC
	}
	mr, nr, chunk := fam.Shape.MR, fam.Shape.NR, fam.Chunk
	signed := isSigned[TA]()
	if p.UnpackedA && (signed || p.CsA != 1) {
		exceptions.Panicf("frame.Run: unpacked A requires row-major uint8 A, got CsA=%d, signed=%v", p.CsA, signed)
	}
	if klog.V(3).Enabled() {
		klog.Infof("frame.Run(%s, M=%d, N=%d, K=%d, %s, thread=%d, blocks %s)",
			fam.Name, p.M, p.N, p.K, part, thread, blocks)
	}

	// Scratch sized for the largest block of the partition.
	maxMC, maxNC, maxKC := min(blocks.MC, rows), min(blocks.NC, cols), min(blocks.KC, p.K)
	var ws workspace[TC]
	if !p.UnpackedA {
		ws.packedA = arena.Get[uint8](ar, arena.Key{Thread: thread, Kind: arena.PackedA},
			pack.PackedASize(maxMC, maxKC, mr, chunk))
	}
	if p.Reordered == nil {
		ws.packedB = arena.Get[int8](ar, arena.Key{Thread: thread, Kind: arena.PackedB},
			pack.PackedBSize(maxKC, maxNC, chunk))
	}
	useTempC := p.Output != nil && p.K > blocks.KC
	if useTempC {
		ws.tempC = arena.Get[TC](ar, arena.Key{Thread: thread, Kind: arena.TempC}, rows*maxNC)
	}
	if signed && p.Reordered == nil {
		ws.colSums = arena.Get[TC](ar, arena.Key{Thread: thread, Kind: arena.ColSums},
			pack.RoundUp(maxNC, pack.VecCols))
	}

	rsB, csB := pack.PanelStrides(nr, chunk)
	for jc := part.Cols.Start; jc < part.Cols.End; jc += blocks.NC {
		nc0 := min(blocks.NC, part.Cols.End-jc)

		// Column sums compensation for the signed path.
		var colSums []TC
		if signed {
			if p.Reordered != nil {
				colSums = reorderedColSums[TC](p.Reordered, jc)
			} else {
				colSums = ws.colSums.Slice()[:pack.RoundUp(nc0, pack.VecCols)]
				clear(colSums)
			}
		}

		for pc := 0; pc < p.K; pc += blocks.KC {
			kc0 := min(blocks.KC, p.K-pc)
			kcPadded := pack.RoundUp(kc0, chunk)
			var bBlock []int8
			if p.Reordered != nil {
				bBlock = p.Reordered.Block(jc, pc)
			} else {
				bSrc := p.B[pc*p.RsB+jc*p.CsB:]
				bBlock = ws.packedB.Slice()[:pack.PackedBSize(kc0, nc0, chunk)]
				pack.PackB(bBlock, bSrc, p.RsB, p.CsB, kc0, nc0, nr, chunk)
				if signed {
					pack.AccumulateColumnSums(colSums, bSrc, p.RsB, p.CsB, kc0, nc0)
				}
			}
			beta := p.Beta
			if pc > 0 {
				beta = 1
			}
			isFirstK, isLastK := pc == 0, pc+kc0 == p.K

			for ic := part.Rows.Start; ic < part.Rows.End; ic += blocks.MC {
				mc0 := min(blocks.MC, part.Rows.End-ic)
				var aBlock []uint8
				var rsA, csA, psA int
				if p.UnpackedA {
					aBlock = any(p.A).([]uint8)[ic*p.RsA+pc:]
					rsA, csA, psA = p.RsA, chunk, mr*p.RsA
				} else {
					aBlock = ws.packedA.Slice()[:pack.PackedASize(mc0, kc0, mr, chunk)]
					pack.PackA(aBlock, p.A[ic*p.RsA+pc*p.CsA:], p.RsA, p.CsA, mc0, kc0, mr, chunk)
					rsA, csA, psA = pack.AStrides(kc0, mr, chunk)
				}

				var tempC []TC
				if useTempC {
					tempC = ws.tempC.Slice()
				}
				for jr := 0; jr < nc0; jr += nr {
					nr0 := min(nr, nc0-jr)
					attr := postops.Attributes{
						PostOpCI:     ic,
						PostOpCJ:     jc + jr,
						IsFirstK:     isFirstK,
						IsLastK:      isLastK,
						Output:       p.Output,
						ColSumOffset: jr,
					}
					setColSums(&attr, colSums)
					var c []TC
					var rsC int
					switch {
					case useTempC:
						c, rsC = tempC[(ic-part.Rows.Start)*nc0+jr:], nc0
					case p.Output == nil:
						c, rsC = p.C[ic*p.RsC+jc+jr:], p.RsC
					}
					fam.RowVar(mc0, nr0, kc0, aBlock, rsA, csA, psA, bBlock[jr*kcPadded:], rsB, csB,
						c, rsC, p.Alpha, beta, p.PostOps, attr)
				}
			}
		}
	}
}

// reorderedColSums returns the column sums of the reordered B starting at column jc.
func reorderedColSums[TC kernels.Accumulator](r *pack.Reordered, jc int) []TC {
	var sums any
	var zero TC
	switch any(zero).(type) {
	case int32:
		sums = r.ColSums32
	case int16:
		sums = r.ColSums16
	}
	colSums, _ := sums.([]TC)
	if colSums == nil {
		exceptions.Panicf("frame.Run: reordered B has no column sums for signed A")
	}
	return colSums[jc:]
}

func setColSums[TC kernels.Accumulator](attr *postops.Attributes, colSums []TC) {
	if colSums == nil {
		return
	}
	switch sums := any(colSums).(type) {
	case []int32:
		attr.ColSums32 = sums
	case []int16:
		attr.ColSums16 = sums
	}
}
