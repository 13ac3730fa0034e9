// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

const (
	// MaxRows is the largest number of rows of a register tile.
	MaxRows = 6

	// MaxVecs32 is the largest number of 16-lane int32 vectors per row of a Tile32 (64 columns).
	MaxVecs32 = 4

	// MaxVecs16 is the largest number of 16-lane int16 vectors per row of a Tile16 (32 columns).
	MaxVecs16 = 2
)

// Tile32 is the int32 accumulator tile of one micro-kernel call.
// Only the first Rows×Vecs vectors are in use, and only the Tail lanes of the last vector of each row.
type Tile32 struct {
	Rows, Vecs int
	Tail       vec.Mask16
	Acc        [MaxRows][MaxVecs32]vec.I32x16
}

// Init sets the active extent. Accumulators are not touched: a fresh Tile32 is already zero.
func (t *Tile32) Init(rows, vecs int, tail vec.Mask16) {
	t.Rows, t.Vecs, t.Tail = rows, vecs, tail
}

// Mask returns the active lanes of the vector column v.
func (t *Tile32) Mask(v int) vec.Mask16 {
	if v == t.Vecs-1 {
		return t.Tail
	}
	return vec.FullMask
}

// Cols returns the number of active columns.
func (t *Tile32) Cols() int {
	return (t.Vecs-1)*vec.Lanes + t.Tail.Count()
}

// SubtractColumnSums removes the unsigned-offset contribution: sums[col] from every row.
func (t *Tile32) SubtractColumnSums(sums []int32) {
	for v := range t.Vecs {
		s := vec.LoadI32(sums[v*vec.Lanes:], t.Mask(v))
		for r := range t.Rows {
			t.Acc[r][v].Sub(&s)
		}
	}
}

// Scale multiplies every accumulator by alpha.
func (t *Tile32) Scale(alpha int32) {
	for r := range t.Rows {
		for v := range t.Vecs {
			t.Acc[r][v].MulScalar(alpha)
		}
	}
}

// AddScaled adds beta·C, with C row-major with row stride rsC starting at the tile origin.
func (t *Tile32) AddScaled(c []int32, rsC int, beta int32) {
	for r := range t.Rows {
		for v := range t.Vecs {
			x := vec.LoadI32(c[r*rsC+v*vec.Lanes:], t.Mask(v))
			t.Acc[r][v].MulAddScalar(&x, beta)
		}
	}
}

// AddScaledOutput adds beta times the previous contents of out at (row, col), up-converted.
func (t *Tile32) AddScaledOutput(out Output, row, col int, beta int32) {
	for r := range t.Rows {
		for v := range t.Vecs {
			x := out.load32(row+r, col+v*vec.Lanes, t.Mask(v))
			t.Acc[r][v].MulAddScalar(&x, beta)
		}
	}
}

// Store writes the tile to C, row-major with row stride rsC starting at the tile origin.
func (t *Tile32) Store(c []int32, rsC int) {
	for r := range t.Rows {
		for v := range t.Vecs {
			t.Acc[r][v].Store(c[r*rsC+v*vec.Lanes:], t.Mask(v))
		}
	}
}

// StoreOutput converts the tile into out at (row, col).
func (t *Tile32) StoreOutput(out Output, row, col int) {
	for r := range t.Rows {
		for v := range t.Vecs {
			out.store32(row+r, col+v*vec.Lanes, &t.Acc[r][v], t.Mask(v))
		}
	}
}

// mapFloat widens every accumulator to float32, applies fn and rounds back.
func (t *Tile32) mapFloat(fn func(hwy.Vec[float32]) hwy.Vec[float32]) {
	for r := range t.Rows {
		for v := range t.Vecs {
			f := t.Acc[r][v].ToFloat32()
			f.Map(fn)
			t.Acc[r][v] = f.RoundToI32()
		}
	}
}

// Tile16 is the int16 accumulator tile of the 16-bit family.
type Tile16 struct {
	Rows, Vecs int
	Tail       vec.Mask16
	Acc        [MaxRows][MaxVecs16]vec.I16x16
}

// Init sets the active extent.
func (t *Tile16) Init(rows, vecs int, tail vec.Mask16) {
	t.Rows, t.Vecs, t.Tail = rows, vecs, tail
}

// Mask returns the active lanes of the vector column v.
func (t *Tile16) Mask(v int) vec.Mask16 {
	if v == t.Vecs-1 {
		return t.Tail
	}
	return vec.FullMask
}

// Cols returns the number of active columns.
func (t *Tile16) Cols() int {
	return (t.Vecs-1)*vec.Lanes + t.Tail.Count()
}

// SubtractColumnSums removes the unsigned-offset contribution (wrapping).
func (t *Tile16) SubtractColumnSums(sums []int16) {
	for v := range t.Vecs {
		s := vec.LoadI16(sums[v*vec.Lanes:], t.Mask(v))
		for r := range t.Rows {
			t.Acc[r][v].Sub(&s)
		}
	}
}

// Scale multiplies every accumulator by alpha.
func (t *Tile16) Scale(alpha int16) {
	for r := range t.Rows {
		for v := range t.Vecs {
			t.Acc[r][v].MulScalar(alpha)
		}
	}
}

// AddScaled adds beta·C.
func (t *Tile16) AddScaled(c []int16, rsC int, beta int16) {
	for r := range t.Rows {
		for v := range t.Vecs {
			x := vec.LoadI16(c[r*rsC+v*vec.Lanes:], t.Mask(v))
			t.Acc[r][v].MulAddScalar(&x, beta)
		}
	}
}

// AddScaledOutput adds beta times the previous contents of out at (row, col).
func (t *Tile16) AddScaledOutput(out Output, row, col int, beta int16) {
	for r := range t.Rows {
		for v := range t.Vecs {
			x := out.load16(row+r, col+v*vec.Lanes, t.Mask(v))
			t.Acc[r][v].MulAddScalar(&x, beta)
		}
	}
}

// Store writes the tile to C.
func (t *Tile16) Store(c []int16, rsC int) {
	for r := range t.Rows {
		for v := range t.Vecs {
			t.Acc[r][v].Store(c[r*rsC+v*vec.Lanes:], t.Mask(v))
		}
	}
}

// StoreOutput converts the tile into out at (row, col).
func (t *Tile16) StoreOutput(out Output, row, col int) {
	for r := range t.Rows {
		for v := range t.Vecs {
			out.store16(row+r, col+v*vec.Lanes, &t.Acc[r][v], t.Mask(v))
		}
	}
}

// mapFloat widens to float32, applies fn, and rounds back saturating to int16.
func (t *Tile16) mapFloat(fn func(hwy.Vec[float32]) hwy.Vec[float32]) {
	for r := range t.Rows {
		for v := range t.Vecs {
			w := t.Acc[r][v].Widen()
			f := w.ToFloat32()
			f.Map(fn)
			q := f.RoundToI32()
			t.Acc[r][v] = q.NarrowI16()
		}
	}
}
