// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

// Kind of a post-op node. The values follow the order of the epilogue stages.
type Kind int

//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=lower -values -text -output=gen_kind_enumer.go kind.go

const (
	// KindDisable terminates a list.
	KindDisable Kind = iota

	// KindBias adds a per-output-column vector.
	KindBias

	// KindReLU computes max(x, 0).
	KindReLU

	// KindPReLU multiplies non-positive values by an integer slope (parametric/leaky ReLU).
	KindPReLU

	// KindGELUTanh is GELU with the tanh approximation.
	KindGELUTanh

	// KindGELUErf is GELU with the erf formulation.
	KindGELUErf

	// KindClip clamps to [Min, Max].
	KindClip

	// KindDownscale requantizes: round(x * scale) + zeroPoint.
	KindDownscale

	// KindMatrixAdd adds another matrix, up-converted to the accumulator type.
	KindMatrixAdd

	// KindSiLU is the Swish activation x * sigmoid(alpha * x).
	KindSiLU
)
