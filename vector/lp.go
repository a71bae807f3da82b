// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// LpNorm is the norm ‖x‖ₚ = (Σ|xᵢ|ᵖ)^(1/p) on Dense, and the metric
// ‖x − y‖ₚ it induces. p = +Inf gives the maximum norm. The zero value is
// the Euclidean norm (p = 2).
type LpNorm struct {
	p float64
}

// NewLpNorm returns the Lᵖ norm. It fails with ErrInvalidExponent unless
// p ≥ 1, since smaller exponents break the triangle inequality.
func NewLpNorm(p float64) (LpNorm, error) {
	if math.IsNaN(p) || p < 1 {
		return LpNorm{}, fmt.Errorf("%w: got %v", ErrInvalidExponent, p)
	}

	return LpNorm{p: p}, nil
}

// P returns the exponent.
func (l LpNorm) P() float64 {
	if l.p == 0 {
		return 2
	}

	return l.p
}

// Norm returns ‖x‖ₚ.
func (l LpNorm) Norm(x Dense) scalar.Float64 {
	return scalar.Float64(floats.Norm(x.data, l.P()))
}

// Definite tags the norm as definite.
func (LpNorm) Definite() {}

// Distance returns ‖x − y‖ₚ.
func (l LpNorm) Distance(x, y Dense) scalar.Float64 {
	a, b := pad(x, y)

	return scalar.Float64(floats.Distance(a, b, l.P()))
}
