// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import "github.com/gomlx/gopjrt/dtypes"

// Attributes is the per-call cursor state threaded from the blocking loop into the micro-kernels.
//
// Kernels receive it by value: the caller advances PostOpCI between row groups and sets PostOpCJ per N panel.
type Attributes struct {
	// PostOpCI and PostOpCJ are the absolute row and column of the tile origin in the output.
	// They index per-column post-op operands, matrix-add operands and the Output.
	PostOpCI, PostOpCJ int

	// IsFirstK is set on the first K slice: with an Output, beta reads the previous values from it.
	IsFirstK bool

	// IsLastK is set on the last K slice: offset compensation, post-ops and the Output store only run then.
	IsLastK bool

	// Output, if not nil, receives the final store instead of the accumulator matrix.
	Output Output

	// ColSums32 (32-bit family) or ColSums16 (16-bit family) hold the per-column compensation
	// 128·Σk B[k][n] subtracted when A was offset into the unsigned domain. Nil for unsigned A.
	ColSums32 []int32
	ColSums16 []int16

	// ColSumOffset is the index into ColSums32/ColSums16 of the tile's first column.
	ColSumOffset int
}

// StorageType returns the dtype of the final store, given the accumulator dtype.
func (a *Attributes) StorageType(accumulator dtypes.DType) dtypes.DType {
	if a.Output != nil {
		return a.Output.DType()
	}
	return accumulator
}
