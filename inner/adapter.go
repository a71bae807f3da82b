// SPDX-License-Identifier: MIT

package inner

import "github.com/katalvlaran/lvalgebra/ring"

// InnerProductMetric is the metric, norm and form induced by the inner
// product of V. For finite-dimensional real spaces it is the Euclidean
// metric; for functions on a measure space it is the L² metric.
//
// It holds no data. The type parameters only admit spaces that really
// carry an inner product over F, so every instantiation that compiles is a
//   - metric.Metric[V, R]            via DistEuclid
//   - metric.Norm[F, V, R]           via Norm
//   - form.SesquilinearForm[V, F]    via InnerProduct, with Sigma = Conj
//   - form.ReflexiveForm[V, F]
//   - form.SymSesquilinearForm[V, F]
type InnerProductMetric[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.Real[R]] struct{}

// Distance returns the Euclidean distance between x1 and x2.
func (InnerProductMetric[V, F, R]) Distance(x1, x2 V) R { return DistEuclid[V, F, R](x1, x2) }

// Norm returns the length of x.
func (InnerProductMetric[V, F, R]) Norm(x V) R { return Norm[V, F, R](x) }

// Definite tags the norm as definite: only 0 has zero length.
func (InnerProductMetric[V, F, R]) Definite() {}

// ProductOf returns ⟨v1, v2⟩.
func (InnerProductMetric[V, F, R]) ProductOf(v1, v2 V) F { return v1.InnerProduct(v2) }

// Sigma is complex conjugation.
func (InnerProductMetric[V, F, R]) Sigma(x F) F { return x.Conj() }

// SigmaInv is complex conjugation, its own inverse.
func (InnerProductMetric[V, F, R]) SigmaInv(x F) F { return x.Conj() }

// Reflexive tags orthogonality as symmetric.
func (InnerProductMetric[V, F, R]) Reflexive() {}

// SymmetricSesquilinear tags Hermitian symmetry.
func (InnerProductMetric[V, F, R]) SymmetricSesquilinear() {}

// RealInnerProductMetric is InnerProductMetric for real spaces, where the
// conjugation is trivial and the product is also a bilinear map.
type RealInnerProductMetric[V InnerProductSpace[V, R, R], R interface {
	ring.ComplexRing[R, R]
	ring.Real[R]
}] struct {
	InnerProductMetric[V, R, R]
}

// Bilinear tags the product as bilinear.
func (RealInnerProductMetric[V, R]) Bilinear() {}
