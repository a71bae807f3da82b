// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvalgebra/ring"

// Lerp returns the point p + t·(q − p). Lerp(p, q, 0) == p and
// Lerp(p, q, 1) == q up to rounding.
func Lerp[P AffineSpace[P, K, V], K ring.Field[K], V VectorSpace[V, K]](p, q P, t K) P {
	return p.AddVec(q.Diff(p).MulScalar(t))
}

// Midpoint returns the point halfway between p and q.
func Midpoint[P AffineSpace[P, K, V], K ring.Field[K], V VectorSpace[V, K]](p, q P) P {
	var k K

	return p.AddVec(q.Diff(p).DivScalar(k.One().Add(k.One())))
}
