// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "github.com/gomlx/lpgemm/pkg/core/postops"

// finishS32 runs the epilogue of a 32-bit accumulator tile and stores it.
//
// Order: column sums compensation (last K slice), alpha, beta (reading the Output on the first K slice,
// otherwise the partial sums in c), post-ops (last K slice) and the store into the Output (last K slice)
// or into c.
func finishS32(t *postops.Tile32, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr *postops.Attributes) {
	if attr.IsLastK && attr.ColSums32 != nil {
		t.SubtractColumnSums(attr.ColSums32[attr.ColSumOffset:])
	}
	if alpha != 1 {
		t.Scale(alpha)
	}
	if beta != 0 {
		if attr.Output != nil && attr.IsFirstK {
			t.AddScaledOutput(attr.Output, attr.PostOpCI, attr.PostOpCJ, beta)
		} else {
			t.AddScaled(c, rsC, beta)
		}
	}
	if attr.IsLastK {
		ops.Apply32(t, attr)
	}
	if attr.Output != nil && attr.IsLastK {
		t.StoreOutput(attr.Output, attr.PostOpCI, attr.PostOpCJ)
	} else {
		t.Store(c, rsC)
	}
}

// finishS16 is the 16-bit accumulator version of finishS32.
func finishS16(t *postops.Tile16, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr *postops.Attributes) {
	if attr.IsLastK && attr.ColSums16 != nil {
		t.SubtractColumnSums(attr.ColSums16[attr.ColSumOffset:])
	}
	if alpha != 1 {
		t.Scale(alpha)
	}
	if beta != 0 {
		if attr.Output != nil && attr.IsFirstK {
			t.AddScaledOutput(attr.Output, attr.PostOpCI, attr.PostOpCJ, beta)
		} else {
			t.AddScaled(c, rsC, beta)
		}
	}
	if attr.IsLastK {
		ops.Apply16(t, attr)
	}
	if attr.Output != nil && attr.IsLastK {
		t.StoreOutput(attr.Output, attr.PostOpCI, attr.PostOpCJ)
	} else {
		t.Store(c, rsC)
	}
}
