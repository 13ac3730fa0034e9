// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pack

// PackedASize returns the number of values of a packed mc×kc block of A.
func PackedASize(mc, kc, mr, chunk int) int {
	return RoundUp(mc, mr) * RoundUp(kc, chunk)
}

// AStrides returns the strides of a packed A block as consumed by the micro-kernels:
// rs between rows of a group, cs between K chunks and ps between row groups.
func AStrides(kc, mr, chunk int) (rs, cs, ps int) {
	return chunk, mr * chunk, mr * RoundUp(kc, chunk)
}

// offsetFlip returns the XOR mask that maps T values to the unsigned domain: 0x80 for int8, which is the
// same as adding SignedOffset, and 0 for uint8.
func offsetFlip[T uint8 | int8]() uint8 {
	var zero T
	if _, signed := any(zero).(int8); signed {
		return 0x80
	}
	return 0
}

// PackA packs the mc×kc block of A, whose element (m, k) is a[m*rs + k*cs], into dst in groups of mr rows.
// Signed values are offset by +128.
//
// dst must hold at least PackedASize(mc, kc, mr, chunk) values; every one of them is written, padding included.
func PackA[T uint8 | int8](dst []uint8, a []T, rs, cs, mc, kc, mr, chunk int) {
	flip := offsetFlip[T]()
	kPadded := RoundUp(kc, chunk)
	groupStride := mr * chunk
	for g := 0; g < mc; g += mr {
		group := dst[g*kPadded : (g+mr)*kPadded]
		rows := min(mr, mc-g)
		if cs == 1 || rs != 1 {
			packAGroupRowMajor(group, a[g*rs:], rs, cs, kc, rows, mr, chunk, groupStride, flip)
		} else {
			packAGroupColMajor(group, a[g:], cs, kc, rows, mr, chunk, groupStride, flip)
		}
	}
}

// packAGroupRowMajor walks each row of the group along K.
func packAGroupRowMajor[T uint8 | int8](group []uint8, a []T, rs, cs, kc, rows, mr, chunk, groupStride int, flip uint8) {
	kPadded := RoundUp(kc, chunk)
	for r := range mr {
		if r >= rows {
			for k := range kPadded {
				group[(k/chunk)*groupStride+r*chunk+k%chunk] = 0
			}
			continue
		}
		row := a[r*rs:]
		for k := range kPadded {
			var x uint8
			if k < kc {
				x = uint8(row[k*cs]) ^ flip
			}
			group[(k/chunk)*groupStride+r*chunk+k%chunk] = x
		}
	}
}

// packAGroupColMajor walks K, reading the contiguous rows of each column.
func packAGroupColMajor[T uint8 | int8](group []uint8, a []T, cs, kc, rows, mr, chunk, groupStride int, flip uint8) {
	kPadded := RoundUp(kc, chunk)
	for k := range kPadded {
		var col []T
		if k < kc {
			col = a[k*cs : k*cs+rows]
		}
		base := (k/chunk)*groupStride + k%chunk
		for r := range mr {
			var x uint8
			if r < len(col) {
				x = uint8(col[r]) ^ flip
			}
			group[base+r*chunk] = x
		}
	}
}

// PackedAIndex returns the index of element (m, k) in a block packed by PackA.
func PackedAIndex(m, k, kc, mr, chunk int) int {
	g, r := m/mr, m%mr
	return g*mr*RoundUp(kc, chunk) + (k/chunk)*(mr*chunk) + r*chunk + k%chunk
}
