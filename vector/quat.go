// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Quat is a quaternion a + bi + cj + dk. Under the Hamilton product it is
// an associative, non-commutative algebra over the reals; as a vector it is
// R⁴ with the Euclidean inner product.
type Quat quat.Number

// Q is shorthand for Quat{re, i, j, k}.
func Q(re, i, j, k float64) Quat { return Quat{Real: re, Imag: i, Jmag: j, Kmag: k} }

func (q Quat) n() quat.Number { return quat.Number(q) }

// Add returns q + r.
func (q Quat) Add(r Quat) Quat { return Quat(quat.Add(q.n(), r.n())) }

// Sub returns q - r.
func (q Quat) Sub(r Quat) Quat { return Quat(quat.Sub(q.n(), r.n())) }

// Neg returns -q.
func (q Quat) Neg() Quat { return Quat(quat.Scale(-1, q.n())) }

// IsZero reports whether q is 0.
func (q Quat) IsZero() bool { return q == Quat{} }

// MulScalar returns k·q.
func (q Quat) MulScalar(k scalar.Float64) Quat { return Quat(quat.Scale(float64(k), q.n())) }

// DivScalar returns q / k.
func (q Quat) DivScalar(k scalar.Float64) Quat { return Quat(quat.Scale(1/float64(k), q.n())) }

// Mul returns the Hamilton product q·r. In general q·r ≠ r·q.
func (q Quat) Mul(r Quat) Quat { return Quat(quat.Mul(q.n(), r.n())) }

// Distributive tags the Hamilton product as distributive.
func (Quat) Distributive() {}

// Conj returns the quaternion conjugate a - bi - cj - dk.
func (q Quat) Conj() Quat { return Quat(quat.Conj(q.n())) }

// Inv returns the multiplicative inverse of q.
func (q Quat) Inv() Quat { return Quat(quat.Inv(q.n())) }

// InnerProduct returns the Euclidean inner product on R⁴, which equals
// the real part of conj(q)·r.
func (q Quat) InnerProduct(r Quat) scalar.Float64 {
	return scalar.Float64(q.Real*r.Real + q.Imag*r.Imag + q.Jmag*r.Jmag + q.Kmag*r.Kmag)
}

// Norm returns |q|. It replaces the generic √⟨q, q⟩.
func (q Quat) Norm() scalar.Float64 { return scalar.Float64(quat.Abs(q.n())) }

// At returns coordinate i of (Real, Imag, Jmag, Kmag).
func (q Quat) At(i int) scalar.Float64 {
	switch i {
	case 0:
		return scalar.Float64(q.Real)
	case 1:
		return scalar.Float64(q.Imag)
	case 2:
		return scalar.Float64(q.Jmag)
	case 3:
		return scalar.Float64(q.Kmag)
	}
	panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
}

// Basis returns 1, i, j, k for i = 0..3.
func (Quat) Basis(i int) Quat {
	var e Quat
	e.SetAt(i, 1)

	return e
}

// Elements returns 4.
func (Quat) Elements() int { return 4 }

// Dimensions returns 4.
func (Quat) Dimensions() int { return 4 }

// SetAt writes coordinate i.
func (q *Quat) SetAt(i int, k scalar.Float64) {
	switch i {
	case 0:
		q.Real = float64(k)
	case 1:
		q.Imag = float64(k)
	case 2:
		q.Jmag = float64(k)
	case 3:
		q.Kmag = float64(k)
	default:
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
}
