// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/lpgemm/pkg/core/pack"
	"github.com/gomlx/lpgemm/pkg/core/postops"
)

// RowVar computes an m0×n0 block of C (n0 <= NR) from an A block with row groups psA apart and one packed B
// panel. It implements RowVarFn.
//
// rsB and csB are the strides of a full-width panel: when n0 < NR the panel was packed as a 48/32/16-wide
// segment followed by a masked segment of fewer than 16 columns, and the strides of each segment are derived
// from its padded width.
func (f *Family[T]) RowVar(m0, n0, k0 int, a []uint8, rsA, csA, psA int, b []int8, rsB, csB int,
	c []T, rsC int, alpha, beta T, ops *postops.List, attr postops.Attributes) {
	if n0 == f.Shape.NR {
		f.rowGroups(m0, n0, k0, a, rsA, csA, psA, b, rsB, csB, c, rsC, alpha, beta, ops, attr)
		return
	}
	kPadded := pack.RoundUp(k0, f.Chunk)
	for _, seg := range pack.RemainderSegments(0, n0) {
		segAttr := attr
		segAttr.PostOpCJ += seg.Col
		segAttr.ColSumOffset += seg.Col
		segRsB, segCsB := pack.PanelStrides(seg.Padded, f.Chunk)
		f.rowGroups(m0, seg.Width, k0, a, rsA, csA, psA, b[seg.Col*kPadded:], segRsB, segCsB,
			offset(c, seg.Col), rsC, alpha, beta, ops, segAttr)
	}
}

// rowGroups calls the kernels for n0 columns (a multiple of 16, or less than 16) over groups of MR rows.
func (f *Family[T]) rowGroups(m0, n0, k0 int, a []uint8, rsA, csA, psA int, b []int8, rsB, csB int,
	c []T, rsC int, alpha, beta T, ops *postops.List, attr postops.Attributes) {
	mr := f.Shape.MR
	for ir := 0; ir < m0; ir += mr {
		rows := min(mr, m0-ir)
		rowAttr := attr
		rowAttr.PostOpCI += ir
		aGroup := a[(ir/mr)*psA:]
		cRows := offset(c, ir*rsC)
		if n0 < pack.VecCols {
			f.masked(rows)(n0, k0, aGroup, rsA, csA, b, rsB, csB, cRows, rsC, alpha, beta, ops, rowAttr)
		} else {
			f.full(rows, n0/pack.VecCols)(k0, aGroup, rsA, csA, b, rsB, csB, cRows, rsC, alpha, beta, ops, rowAttr)
		}
	}
}

// offset returns c[off:], or nil if c is nil.
func offset[T any](c []T, off int) []T {
	if c == nil {
		return nil
	}
	return c[off:]
}
