/***** File generated by ./internal/cmd/kernels_generator. Don't edit it directly. *****/

// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import (
	"github.com/gomlx/lpgemm/pkg/core/postops"
	"github.com/gomlx/lpgemm/pkg/core/vec"
)

// Micro-kernels with 32-bit accumulators, 4-deep u8·s8 dot products.

// s32Kernel6x64 computes a 6x64 tile.
func s32Kernel6x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(6, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		t.Acc[4][3].DotU8I8(a4, b3)
		a5 := vec.LoadGroup4(a, aOff+5*rsA)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
		t.Acc[5][2].DotU8I8(a5, b2)
		t.Acc[5][3].DotU8I8(a5, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		t.Acc[4][3].DotU8I8(a4, b3)
		a5 := vec.LoadGroup4Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
		t.Acc[5][2].DotU8I8(a5, b2)
		t.Acc[5][3].DotU8I8(a5, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel6x48 computes a 6x48 tile.
func s32Kernel6x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(6, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		a5 := vec.LoadGroup4(a, aOff+5*rsA)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
		t.Acc[5][2].DotU8I8(a5, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		a5 := vec.LoadGroup4Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
		t.Acc[5][2].DotU8I8(a5, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel6x32 computes a 6x32 tile.
func s32Kernel6x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(6, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		a5 := vec.LoadGroup4(a, aOff+5*rsA)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		a5 := vec.LoadGroup4Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].DotU8I8(a5, b0)
		t.Acc[5][1].DotU8I8(a5, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel6x16 computes a 6x16 tile.
func s32Kernel6x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(6, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		a5 := vec.LoadGroup4(a, aOff+5*rsA)
		t.Acc[5][0].DotU8I8(a5, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		a5 := vec.LoadGroup4Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].DotU8I8(a5, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel6xLt16 computes a 6xn0 (n0 < 16) tile.
func s32Kernel6xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(6, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		a5 := vec.LoadGroup4(a, aOff+5*rsA)
		t.Acc[5][0].DotU8I8(a5, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		a5 := vec.LoadGroup4Partial(a, aOff+5*rsA, kPartial)
		t.Acc[5][0].DotU8I8(a5, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel5x64 computes a 5x64 tile.
func s32Kernel5x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(5, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		t.Acc[4][3].DotU8I8(a4, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
		t.Acc[4][3].DotU8I8(a4, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel5x48 computes a 5x48 tile.
func s32Kernel5x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(5, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
		t.Acc[4][2].DotU8I8(a4, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel5x32 computes a 5x32 tile.
func s32Kernel5x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(5, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
		t.Acc[4][1].DotU8I8(a4, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel5x16 computes a 5x16 tile.
func s32Kernel5x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(5, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel5xLt16 computes a 5xn0 (n0 < 16) tile.
func s32Kernel5xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(5, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4(a, aOff+4*rsA)
		t.Acc[4][0].DotU8I8(a4, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		a4 := vec.LoadGroup4Partial(a, aOff+4*rsA, kPartial)
		t.Acc[4][0].DotU8I8(a4, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel4x64 computes a 4x64 tile.
func s32Kernel4x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(4, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
		t.Acc[3][3].DotU8I8(a3, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel4x48 computes a 4x48 tile.
func s32Kernel4x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(4, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
		t.Acc[3][2].DotU8I8(a3, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel4x32 computes a 4x32 tile.
func s32Kernel4x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(4, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
		t.Acc[3][1].DotU8I8(a3, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel4x16 computes a 4x16 tile.
func s32Kernel4x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(4, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel4xLt16 computes a 4xn0 (n0 < 16) tile.
func s32Kernel4xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(4, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4(a, aOff+3*rsA)
		t.Acc[3][0].DotU8I8(a3, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		a3 := vec.LoadGroup4Partial(a, aOff+3*rsA, kPartial)
		t.Acc[3][0].DotU8I8(a3, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel3x64 computes a 3x64 tile.
func s32Kernel3x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(3, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
		t.Acc[2][3].DotU8I8(a2, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel3x48 computes a 3x48 tile.
func s32Kernel3x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(3, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
		t.Acc[2][2].DotU8I8(a2, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel3x32 computes a 3x32 tile.
func s32Kernel3x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(3, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
		t.Acc[2][1].DotU8I8(a2, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel3x16 computes a 3x16 tile.
func s32Kernel3x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(3, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel3xLt16 computes a 3xn0 (n0 < 16) tile.
func s32Kernel3xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(3, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4(a, aOff+2*rsA)
		t.Acc[2][0].DotU8I8(a2, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		a2 := vec.LoadGroup4Partial(a, aOff+2*rsA, kPartial)
		t.Acc[2][0].DotU8I8(a2, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel2x64 computes a 2x64 tile.
func s32Kernel2x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(2, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
		t.Acc[1][3].DotU8I8(a1, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel2x48 computes a 2x48 tile.
func s32Kernel2x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(2, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
		t.Acc[1][2].DotU8I8(a1, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel2x32 computes a 2x32 tile.
func s32Kernel2x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(2, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
		t.Acc[1][1].DotU8I8(a1, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel2x16 computes a 2x16 tile.
func s32Kernel2x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(2, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel2xLt16 computes a 2xn0 (n0 < 16) tile.
func s32Kernel2xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(2, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4(a, aOff+rsA)
		t.Acc[1][0].DotU8I8(a1, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		a1 := vec.LoadGroup4Partial(a, aOff+rsA, kPartial)
		t.Acc[1][0].DotU8I8(a1, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel1x64 computes a 1x64 tile.
func s32Kernel1x64(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(1, 4, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		b3 := b[bOff+3*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
		t.Acc[0][3].DotU8I8(a0, b3)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel1x48 computes a 1x48 tile.
func s32Kernel1x48(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(1, 3, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		b2 := b[bOff+2*csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
		t.Acc[0][2].DotU8I8(a0, b2)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel1x32 computes a 1x32 tile.
func s32Kernel1x32(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(1, 2, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		b1 := b[bOff+csB:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
		t.Acc[0][1].DotU8I8(a0, b1)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel1x16 computes a 1x16 tile.
func s32Kernel1x16(k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(1, 1, vec.FullMask)
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernel1xLt16 computes a 1xn0 (n0 < 16) tile.
func s32Kernel1xLt16(n0, k0 int, a []uint8, rsA, csA int, b []int8, rsB, csB int, c []int32, rsC int, alpha, beta int32, ops *postops.List, attr postops.Attributes) {
	var t postops.Tile32
	t.Init(1, 1, vec.TailMask(n0))
	kFull, kPartial := k0/4, k0%4
	for kr := range kFull {
		bOff := rsB * kr
		b0 := b[bOff:]
		aOff := csA * kr
		a0 := vec.LoadGroup4(a, aOff)
		t.Acc[0][0].DotU8I8(a0, b0)
	}
	if kPartial > 0 {
		bOff := rsB * kFull
		b0 := b[bOff:]
		aOff := csA * kFull
		a0 := vec.LoadGroup4Partial(a, aOff, kPartial)
		t.Acc[0][0].DotU8I8(a0, b0)
	}
	finishS32(&t, c, rsC, alpha, beta, ops, &attr)
}

// s32Kernels indexes the full-width kernels by [rows][16-column vectors].
var s32Kernels = [postops.MaxRows + 1][postops.MaxVecs32 + 1]Kernel[int32]{
	1: {1: s32Kernel1x16, 2: s32Kernel1x32, 3: s32Kernel1x48, 4: s32Kernel1x64},
	2: {1: s32Kernel2x16, 2: s32Kernel2x32, 3: s32Kernel2x48, 4: s32Kernel2x64},
	3: {1: s32Kernel3x16, 2: s32Kernel3x32, 3: s32Kernel3x48, 4: s32Kernel3x64},
	4: {1: s32Kernel4x16, 2: s32Kernel4x32, 3: s32Kernel4x48, 4: s32Kernel4x64},
	5: {1: s32Kernel5x16, 2: s32Kernel5x32, 3: s32Kernel5x48, 4: s32Kernel5x64},
	6: {1: s32Kernel6x16, 2: s32Kernel6x32, 3: s32Kernel6x48, 4: s32Kernel6x64},
}

// s32MaskedKernels indexes the kernels for fewer than 16 columns by rows.
var s32MaskedKernels = [postops.MaxRows + 1]MaskedKernel[int32]{
	1: s32Kernel1xLt16,
	2: s32Kernel2xLt16,
	3: s32Kernel3xLt16,
	4: s32Kernel4xLt16,
	5: s32Kernel5xLt16,
	6: s32Kernel6xLt16,
}
