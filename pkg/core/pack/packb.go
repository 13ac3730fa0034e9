// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package pack

// PackedBSize returns the number of values of a packed kc×nc block of B.
func PackedBSize(kc, nc, chunk int) int {
	return RoundUp(kc, chunk) * RoundUp(nc, VecCols)
}

// PanelStrides returns the row (per K chunk) and column (per 16-column vector) strides of a packed B panel
// of the given width.
func PanelStrides(width, chunk int) (rs, cs int) {
	return RoundUp(width, VecCols) * chunk, VecCols * chunk
}

// PackB packs the kc×nc block of B, whose element (k, n) is b[k*rs + n*cs], into dst.
//
// dst must hold at least PackedBSize(kc, nc, chunk) values; every one of them is written, padding included.
// Row-major (cs == 1) and column-major (rs == 1) sources use dedicated loops and produce identical results.
func PackB(dst, b []int8, rs, cs, kc, nc, nr, chunk int) {
	kPadded := RoundUp(kc, chunk)
	columnMajor := rs == 1 && cs != 1
	off := 0
	for _, seg := range Segments(nc, nr) {
		panel := dst[off : off+kPadded*seg.Padded]
		if columnMajor {
			packBPanelColMajor(panel, b[seg.Col*cs:], cs, kc, seg.Width, seg.Padded, chunk)
		} else {
			packBPanelRowMajor(panel, b[seg.Col*cs:], rs, cs, kc, seg.Width, seg.Padded, chunk)
		}
		off += len(panel)
	}
}

// packBPanelRowMajor packs one panel reading B row by row (K outer), one 16-column group at a time.
func packBPanelRowMajor(panel, b []int8, rs, cs, kc, width, padded, chunk int) {
	stride := padded * chunk
	for g := 0; g < padded; g += VecCols {
		valid := min(VecCols, width-g)
		if valid == VecCols && cs == 1 {
			packBGroup16RowMajor(panel[g*chunk:], b[g:], rs, kc, stride, chunk)
		} else {
			packBGroupMasked(panel[g*chunk:], b[g*cs:], rs, cs, kc, valid, stride, chunk)
		}
	}
}

// packBGroup16RowMajor packs a full group of 16 contiguous columns.
func packBGroup16RowMajor(dst, b []int8, rs, kc, stride, chunk int) {
	kChunks := ceilDiv(kc, chunk)
	for kch := range kChunks {
		out := dst[kch*stride : kch*stride+VecCols*chunk]
		for kk := range chunk {
			k := kch*chunk + kk
			if k >= kc {
				for n := range VecCols {
					out[n*chunk+kk] = 0
				}
				continue
			}
			src := b[k*rs : k*rs+VecCols]
			for n, x := range src {
				out[n*chunk+kk] = x
			}
		}
	}
}

// packBGroupMasked packs a group of valid (<= 16) columns with arbitrary strides, zero filling up to 16 columns.
func packBGroupMasked(dst, b []int8, rs, cs, kc, valid, stride, chunk int) {
	kChunks := ceilDiv(kc, chunk)
	for kch := range kChunks {
		out := dst[kch*stride : kch*stride+VecCols*chunk]
		for kk := range chunk {
			k := kch*chunk + kk
			for n := range VecCols {
				var x int8
				if k < kc && n < valid {
					x = b[k*rs+n*cs]
				}
				out[n*chunk+kk] = x
			}
		}
	}
}

// packBPanelColMajor packs one panel reading B column by column (K contiguous).
func packBPanelColMajor(panel, b []int8, cs, kc, width, padded, chunk int) {
	stride := padded * chunk
	kPadded := RoundUp(kc, chunk)
	for n := range padded {
		var src []int8
		if n < width {
			src = b[n*cs : n*cs+kc]
		}
		for k := range kPadded {
			var x int8
			if k < len(src) {
				x = src[k]
			}
			panel[(k/chunk)*stride+n*chunk+k%chunk] = x
		}
	}
}

// PackedBIndex returns the index of element (k, n) in a block packed by PackB.
func PackedBIndex(k, n, kc, nc, nr, chunk int) int {
	kPadded := RoundUp(kc, chunk)
	off := 0
	for _, seg := range Segments(nc, nr) {
		if n < seg.Col+seg.Width {
			local := n - seg.Col
			return off + (k/chunk)*(seg.Padded*chunk) + local*chunk + k%chunk
		}
		off += kPadded * seg.Padded
	}
	return -1
}

// UnpackB reads a packed block back into a row-major kc×nc matrix.
func UnpackB(packed []int8, kc, nc, nr, chunk int) []int8 {
	out := make([]int8, kc*nc)
	for k := range kc {
		for n := range nc {
			out[k*nc+n] = packed[PackedBIndex(k, n, kc, nc, nr, chunk)]
		}
	}
	return out
}
