// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package cubic holds the floating-point sensor response fit. It has no
// dependency on the generated travel table, so the table can always be
// rebuilt from it.
package cubic

// Raw window the fit was made over.
const (
	RawMin = 1200
	RawMax = 3500
)

// Sensor response fit: travel ≈ A + B·x + C·x² + D·x³ for raw x.
const (
	A = 426.88962
	B = -0.48358
	C = 2.04637e-4
	D = -2.99368e-8
)

func clamp(x float64) float64 {
	if x < RawMin {
		return RawMin
	}
	if x > RawMax {
		return RawMax
	}
	return x
}

// Poly evaluates the cubic in power basis. x is clamped to the raw window.
func Poly(x float64) float64 {
	x = clamp(x)
	return A + B*x + C*x*x + D*x*x*x
}

// ChebyshevCoefficients returns c0..c3 such that the cubic equals
// c0·T0(t) + c1·T1(t) + c2·T2(t) + c3·T3(t), with t mapping the raw
// window onto [-1, 1].
func ChebyshevCoefficients() [4]float64 {
	m := (RawMax - RawMin) / 2.0
	b := (RawMax + RawMin) / 2.0

	// Power basis in t: x = m·t + b.
	p0 := A + B*b + C*b*b + D*b*b*b
	p1 := (B + 2*C*b + 3*D*b*b) * m
	p2 := (C + 3*D*b) * m * m
	p3 := D * m * m * m

	// t² = (T2 + T0)/2, t³ = (T3 + 3·T1)/4
	return [4]float64{p0 + p2/2, p1 + 3*p3/4, p2 / 2, p3 / 4}
}

var chebyshev = ChebyshevCoefficients()

// Chebyshev evaluates the same cubic with the Clenshaw recurrence, which
// stays well conditioned at both ends of the raw window.
func Chebyshev(x float64) float64 {
	x = clamp(x)
	t := (2*x - (RawMax + RawMin)) / (RawMax - RawMin)

	var b1, b2 float64
	for k := 3; k >= 1; k-- {
		b1, b2 = 2*t*b1-b2+chebyshev[k], b1
	}
	return t*b1 - b2 + chebyshev[0]
}
