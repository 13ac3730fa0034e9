// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pack

// AccumulateColumnSums adds SignedOffset·Σk B[k][n] over the kc×nc block (element (k, n) at b[k*rs + n*cs])
// into sums[0:nc]. Accumulation wraps around like the accumulator type T.
//
// A·B with A offset by +128 equals the true signed product plus these sums, so the kernels subtract them on the
// last K slice. Sums must accumulate over all K blocks of the same columns before that.
func AccumulateColumnSums[T int16 | int32](sums []T, b []int8, rs, cs, kc, nc int) {
	sums = sums[:nc]
	if cs == 1 {
		for k := range kc {
			row := b[k*rs : k*rs+nc]
			for n, x := range row {
				sums[n] += T(x) * SignedOffset
			}
		}
		return
	}
	for n := range nc {
		var s T
		for k := range kc {
			s += T(b[k*rs+n*cs]) * SignedOffset
		}
		sums[n] += s
	}
}
