// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvalgebra/ring"

// Dim returns the static dimension of V.
func Dim[V FiniteBasis[V, K], K any]() int {
	var zero V
	return zero.Dimensions()
}

// Coordinates copies the populated coordinates of v, in basis order.
// Complexity: O(v.Elements()).
func Coordinates[V CountableBasis[V, K], K any](v V) []K {
	n := v.Elements()
	out := make([]K, n)
	for i := 0; i < n; i++ {
		out[i] = v.At(i)
	}

	return out
}

// Expand builds Σ coords[i]·Basis(i). With no coordinates it returns the
// additive identity of V, obtained as e₀ − e₀.
//
// Expand(Coordinates(v)...) == v for every v of a countable module.
func Expand[V CountableModule[V, K], K ring.UnitalRing[K]](coords ...K) V {
	var zero V
	e0 := zero.Basis(0)
	if len(coords) == 0 {
		return e0.Sub(e0)
	}
	acc := e0.MulScalar(coords[0])
	for i := 1; i < len(coords); i++ {
		acc = acc.Add(zero.Basis(i).MulScalar(coords[i]))
	}

	return acc
}

// SetCoord writes k at coordinate i of *v through its mutable index.
func SetCoord[V any, PV IndexMut[V, K], K any](v *V, i int, k K) {
	PV(v).SetAt(i, k)
}
