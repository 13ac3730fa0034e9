// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package postops

import (
	"github.com/ajroetker/go-highway/hwy"
	hwymath "github.com/ajroetker/go-highway/hwy/contrib/math"
)

// Constants of the GELU approximations.
const (
	geluSqrt2OverPi = 0.797884   // sqrt(2/π)
	geluCubicCoef   = 0.044715   // tanh approximation cubic term
	geluInvSqrt2    = 0.70710678 // 1/sqrt(2)
)

// geluTanhVec computes 0.5·x·(1 + tanh(sqrt(2/π)·(x + 0.044715·x³))) on every lane.
func geluTanhVec(x hwy.Vec[float32]) hwy.Vec[float32] {
	x3 := hwy.Mul(hwy.Mul(x, x), x)
	inner := hwy.Mul(hwy.Set[float32](geluSqrt2OverPi), hwy.Add(x, hwy.Mul(hwy.Set[float32](geluCubicCoef), x3)))
	return halfXTimesOnePlus(x, hwymath.BaseTanhVec(inner))
}

// geluErfVec computes 0.5·x·(1 + erf(x/sqrt(2))) on every lane.
func geluErfVec(x hwy.Vec[float32]) hwy.Vec[float32] {
	return halfXTimesOnePlus(x, hwymath.BaseErfVec(hwy.Mul(x, hwy.Set[float32](geluInvSqrt2))))
}

func halfXTimesOnePlus(x, y hwy.Vec[float32]) hwy.Vec[float32] {
	return hwy.Mul(hwy.Mul(hwy.Set[float32](0.5), x), hwy.Add(hwy.Set[float32](1), y))
}

// siluVec returns the activation x·sigmoid(alpha·x), applied on every lane.
func siluVec(alpha float32) func(hwy.Vec[float32]) hwy.Vec[float32] {
	a := hwy.Set(alpha)
	return func(x hwy.Vec[float32]) hwy.Vec[float32] {
		return hwy.Mul(x, hwymath.BaseSigmoidVec(hwy.Mul(a, x)))
	}
}

// scalar evaluates a lane-wise function on a single value, so the per-element
// paths round exactly like the tiles.
func scalar(fn func(hwy.Vec[float32]) hwy.Vec[float32], x float32) float32 {
	return fn(hwy.Load([]float32{x})).Data()[0]
}

// Erf computes the error function in float32.
func Erf(x float32) float32 {
	return scalar(hwymath.BaseErfVec[float32], x)
}

// Tanh computes tanh in float32.
func Tanh(x float32) float32 {
	return scalar(hwymath.BaseTanhVec[float32], x)
}

// GELUTanh computes 0.5·x·(1 + tanh(sqrt(2/π)·(x + 0.044715·x³))).
func GELUTanh(x float32) float32 {
	return scalar(geluTanhVec, x)
}

// GELUErf computes 0.5·x·(1 + erf(x/sqrt(2))).
func GELUErf(x float32) float32 {
	return scalar(geluErfVec, x)
}

// SiLU computes x·sigmoid(alpha·x).
func SiLU(x, alpha float32) float32 {
	return scalar(siluVec(alpha), x)
}
