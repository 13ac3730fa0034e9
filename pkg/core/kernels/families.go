// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package kernels

import "github.com/gomlx/lpgemm/internal/cpuinfo"

// Families with 32-bit accumulators (chunk 4).
var (
	// S32x64 uses the widest tile: 6 rows × 4 vectors of 16 lanes.
	S32x64 = &Family[int32]{
		Name:   "s32-6x64",
		Shape:  Shape{MR: 6, NR: 64},
		Chunk:  4,
		Level:  cpuinfo.AVX512VNNI,
		Blocks: BlockSizes{MC: 144, NC: 1024, KC: 2048},
		full:   func(rows, vecs int) Kernel[int32] { return s32Kernels[rows][vecs] },
		masked: func(rows int) MaskedKernel[int32] { return s32MaskedKernels[rows] },
	}

	// S32x16 is the portable family.
	S32x16 = &Family[int32]{
		Name:   "s32-6x16",
		Shape:  Shape{MR: 6, NR: 16},
		Chunk:  4,
		Level:  cpuinfo.Generic,
		Blocks: BlockSizes{MC: 72, NC: 512, KC: 512},
		full:   func(rows, vecs int) Kernel[int32] { return s32Kernels[rows][vecs] },
		masked: func(rows int) MaskedKernel[int32] { return s32MaskedKernels[rows] },
	}
)

// Families with 16-bit accumulators (chunk 2).
var (
	S16x32 = &Family[int16]{
		Name:   "s16-6x32",
		Shape:  Shape{MR: 6, NR: 32},
		Chunk:  2,
		Level:  cpuinfo.AVX2,
		Blocks: BlockSizes{MC: 144, NC: 1024, KC: 1024},
		full:   func(rows, vecs int) Kernel[int16] { return s16Kernels[rows][vecs] },
		masked: func(rows int) MaskedKernel[int16] { return s16MaskedKernels[rows] },
	}

	S16x16 = &Family[int16]{
		Name:   "s16-6x16",
		Shape:  Shape{MR: 6, NR: 16},
		Chunk:  2,
		Level:  cpuinfo.Generic,
		Blocks: BlockSizes{MC: 72, NC: 512, KC: 512},
		full:   func(rows, vecs int) Kernel[int16] { return s16Kernels[rows][vecs] },
		masked: func(rows int) MaskedKernel[int16] { return s16MaskedKernels[rows] },
	}
)
