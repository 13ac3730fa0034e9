/***** File generated by ./internal/cmd/kernels_generator. Don't edit it directly. *****/

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

// Micro-kernels with 16-bit accumulators, 2-deep saturating u8·s8 multiply-adds.

// s16Kernel6x32 computes a 6x32 tile.
func s16Kernel6x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(6, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
		t.Acc[4][1].MaddU8I8(a4, b1)
		a5 := vec.LoadGroup2(a, aOff+5*rsA)
		t.Acc[5][0].MaddU8I8(a5, b0)
		t.Acc[5][1].MaddU8I8(a5, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
		t.Acc[4][1].MaddU8I8(a4, b1)
		a5 := vec.LoadGroup2Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].MaddU8I8(a5, b0)
		t.Acc[5][1].MaddU8I8(a5, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel6x16 computes a 6x16 tile.
func s16Kernel6x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(6, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
		a5 := vec.LoadGroup2(a, aOff+5*rsA)
		t.Acc[5][0].MaddU8I8(a5, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
		a5 := vec.LoadGroup2Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].MaddU8I8(a5, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel6xLt16 computes a 6xn0 (n0 < 16) tile.
func s16Kernel6xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(6, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
		a5 := vec.LoadGroup2(a, aOff+5*rsA)
		t.Acc[5][0].MaddU8I8(a5, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
		a5 := vec.LoadGroup2Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].MaddU8I8(a5, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel5x32 computes a 5x32 tile.
func s16Kernel5x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(5, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
		t.Acc[4][1].MaddU8I8(a4, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
		t.Acc[4][1].MaddU8I8(a4, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel5x16 computes a 5x16 tile.
func s16Kernel5x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(5, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel5xLt16 computes a 5xn0 (n0 < 16) tile.
func s16Kernel5xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(5, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2(a, aOff+4*rsA)
		t.Acc[4][0].MaddU8I8(a4, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		a4 := vec.LoadGroup2Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].MaddU8I8(a4, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel4x32 computes a 4x32 tile.
func s16Kernel4x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(4, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
		t.Acc[3][1].MaddU8I8(a3, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel4x16 computes a 4x16 tile.
func s16Kernel4x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(4, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel4xLt16 computes a 4xn0 (n0 < 16) tile.
func s16Kernel4xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(4, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2(a, aOff+3*rsA)
		t.Acc[3][0].MaddU8I8(a3, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		a3 := vec.LoadGroup2Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].MaddU8I8(a3, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel3x32 computes a 3x32 tile.
func s16Kernel3x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(3, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
		t.Acc[2][1].MaddU8I8(a2, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel3x16 computes a 3x16 tile.
func s16Kernel3x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(3, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel3xLt16 computes a 3xn0 (n0 < 16) tile.
func s16Kernel3xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(3, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2(a, aOff+2*rsA)
		t.Acc[2][0].MaddU8I8(a2, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		a2 := vec.LoadGroup2Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].MaddU8I8(a2, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel2x32 computes a 2x32 tile.
func s16Kernel2x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(2, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
		t.Acc[1][1].MaddU8I8(a1, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel2x16 computes a 2x16 tile.
func s16Kernel2x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(2, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel2xLt16 computes a 2xn0 (n0 < 16) tile.
func s16Kernel2xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(2, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2(a, aOff+rsA)
		t.Acc[1][0].MaddU8I8(a1, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		a1 := vec.LoadGroup2Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].MaddU8I8(a1, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel1x32 computes a 1x32 tile.
func s16Kernel1x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(1, 2, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
		t.Acc[0][1].MaddU8I8(a0, b1)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel1x16 computes a 1x16 tile.
func s16Kernel1x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(1, 1, vec.FullMask)
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernel1xLt16 computes a 1xn0 (n0 < 16) tile.
func s16Kernel1xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int16, rsC int, alpha, beta int16, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile16
	t.Init(1, 1, vec.TailMask(n0))
	kFull, kPartial := k0/2, k0%2
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup2(a, aOff)
		t.Acc[0][0].MaddU8I8(a0, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup2Partial(a, aOff, kPartial)
		t.Acc[0][0].MaddU8I8(a0, b0)
	}
	finishS16(&t, c, rsC, alpha, beta, ops, &attr)
}

// s16Kernels indexes the full-width kernels by [rows][16-column vectors].
var s16Kernels = [postops.MaxRows + 1][postops.MaxVecs16 + 1]Kernel[int16]{
	1: {1: s16Kernel1x16, 2: s16Kernel1x32},
	2: {1: s16Kernel2x16, 2: s16Kernel2x32},
	3: {1: s16Kernel3x16, 2: s16Kernel3x32},
	4: {1: s16Kernel4x16, 2: s16Kernel4x32},
	5: {1: s16Kernel5x16, 2: s16Kernel5x32},
	6: {1: s16Kernel6x16, 2: s16Kernel6x32},
}

// s16MaskedKernels indexes the kernels for fewer than 16 columns by rows.
var s16MaskedKernels = [postops.MaxRows + 1]MaskedKernel[int16]{
	1: s16Kernel1xLt16,
	2: s16Kernel2xLt16,
	3: s16Kernel3xLt16,
	4: s16Kernel4xLt16,
	5: s16Kernel5xLt16,
	6: s16Kernel6xLt16,
}
