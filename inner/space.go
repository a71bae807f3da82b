// SPDX-License-Identifier: MIT

package inner

import (
	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/ring"
)

// InnerProductSpace is a ring module over F with a positive Hermitian
// pairing: ⟨x, x⟩ is real and ≥ 0, ⟨y, x⟩ = conj⟨x, y⟩.
type InnerProductSpace[V any, F ring.ComplexRing[F, R], R ring.Real[R]] interface {
	module.RingModule[V, F]
	InnerProduct(rhs V) F
}

// Override hooks. A space implements any of these with the signature
// shown to replace the generic derivation.
type (
	normSqrder[R any]      interface{ NormSqrd() R }
	normer[R any]          interface{ Norm() R }
	euclidDister[V, R any] interface{ DistEuclid(rhs V) R }
	normalizer[V any]      interface{ Normalized() V }
	orthogonaler[V any]    interface{ Orthogonal(rhs V) bool }
	projecter[V any]       interface{ Project(rhs V) V }
	rejecter[V any]        interface{ Reject(rhs V) V }
	angler[V, F any]       interface{ Angle(rhs V) F }
)

// lesser is implemented by ordered scalars.
type lesser[F any] interface{ Less(rhs F) bool }

// NormSqrd returns Re⟨x, x⟩.
func NormSqrd[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.Real[R]](x V) R {
	if o, ok := any(x).(normSqrder[R]); ok {
		return o.NormSqrd()
	}

	return x.InnerProduct(x).AsReal()
}

// Norm returns √⟨x, x⟩.
func Norm[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.Real[R]](x V) R {
	if o, ok := any(x).(normer[R]); ok {
		return o.Norm()
	}

	return NormSqrd[V, F, R](x).Sqrt()
}

// DistEuclid returns Norm(x − y).
func DistEuclid[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.Real[R]](x, y V) R {
	if o, ok := any(x).(euclidDister[V, R]); ok {
		return o.DistEuclid(y)
	}

	return Norm[V, F, R](x.Sub(y))
}

// Normalized returns x scaled to unit length. Undefined for x = 0.
func Normalized[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.RealField[R]](x V) V {
	if o, ok := any(x).(normalizer[V]); ok {
		return o.Normalized()
	}
	var f F

	return x.MulScalar(f.FromReal(Norm[V, F, R](x).Inv()))
}

// Orthogonal reports whether ⟨x, y⟩ is zero.
func Orthogonal[V InnerProductSpace[V, F, R], F ring.ComplexRing[F, R], R ring.Real[R]](x, y V) bool {
	if o, ok := any(x).(orthogonaler[V]); ok {
		return o.Orthogonal(y)
	}

	return x.InnerProduct(y).IsZero()
}

// Project returns the component of y along x. Undefined for x = 0.
func Project[V InnerProductSpace[V, F, R], F ring.ComplexField[F, R], R ring.Real[R]](x, y V) V {
	if o, ok := any(x).(projecter[V]); ok {
		return o.Project(y)
	}
	l := x.InnerProduct(x).Inv().Mul(x.InnerProduct(y))

	return x.MulScalar(l)
}

// Reject returns the component of y orthogonal to x, so that
// Project(x, y) + Reject(x, y) = y.
func Reject[V InnerProductSpace[V, F, R], F ring.ComplexField[F, R], R ring.Real[R]](x, y V) V {
	if o, ok := any(x).(rejecter[V]); ok {
		return o.Reject(y)
	}

	return y.Sub(Project[V, F, R](x, y))
}

// Angle returns the angle between x and y. Undefined when either vector
// is zero.
//
// When F is ordered (has Less) the cosine is clamped to [−1, 1] before
// Acos, so rounding on parallel vectors cannot produce NaN and the result
// lies in [0, π]. Complex cosines are passed to Acos unchanged.
func Angle[
	V InnerProductSpace[V, F, R],
	F interface {
		ring.ComplexRing[F, R]
		ring.Trig[F]
	},
	R ring.RealField[R],
](x, y V) F {
	if o, ok := any(x).(angler[V, F]); ok {
		return o.Angle(y)
	}
	l1 := Norm[V, F, R](x)
	l2 := Norm[V, F, R](y)
	var f F
	cos := x.InnerProduct(y).Mul(f.FromReal(l1.Mul(l2).Inv()))
	if lo, ok := any(cos).(lesser[F]); ok {
		one := cos.One()
		switch {
		case any(one).(lesser[F]).Less(cos):
			cos = one
		case lo.Less(one.Neg()):
			cos = one.Neg()
		}
	}

	return cos.Acos()
}
