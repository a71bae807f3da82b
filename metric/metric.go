// SPDX-License-Identifier: MIT

package metric

import (
	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/ring"
)

// Metric is a real-valued distance d: X×X → R such that
//   - d(x, y) > 0 for x ≠ y
//   - d(x, x) = 0
//   - d(x, z) ≤ d(x, y) + d(y, z)
type Metric[X any, R ring.Real[R]] interface {
	Distance(x1, x2 X) R
}

// Seminorm is a length ‖·‖ on a ring module X over K such that
//   - ‖x‖ ≥ 0
//   - ‖c·x‖ = |c|·‖x‖
//   - ‖x + y‖ ≤ ‖x‖ + ‖y‖
//
// Nonzero vectors may have zero length.
type Seminorm[K ring.UnitalRing[K], X module.RingModule[X, K], R ring.Real[R]] interface {
	Norm(x X) R
}

// Norm is a Seminorm where only the zero vector has zero length.
// Definite is the tag for that law.
type Norm[K ring.UnitalRing[K], X module.RingModule[X, K], R ring.Real[R]] interface {
	Seminorm[K, X, R]
	Definite()
}

// NormedMetric is a Norm and a Metric over the same space.
type NormedMetric[K ring.UnitalRing[K], X module.RingModule[X, K], R ring.Real[R]] interface {
	Norm[K, X, R]
	Metric[X, R]
}

type normalizer[X any] interface {
	Normalize(x X) X
}

// Normalize scales x to unit length under s: x·K(‖x‖⁻¹).
//
// A seminorm with its own Normalize method is used as is. Otherwise the
// result for ‖x‖ = 0 is whatever the scalars produce for 0⁻¹.
func Normalize[
	S Seminorm[K, X, R],
	K interface {
		ring.UnitalRing[K]
		FromReal(r R) K
	},
	X module.RingModule[X, K],
	R ring.RealField[R],
](s S, x X) X {
	if n, ok := any(s).(normalizer[X]); ok {
		return n.Normalize(x)
	}
	var k K

	return x.MulScalar(k.FromReal(s.Norm(x).Inv()))
}
