// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvalgebra/ring"

// Pointer-receiver fast paths. A type that can update itself without a
// fresh allocation implements these on *V.
type (
	addAssigner[V any]       interface{ AddAssign(x V) }
	subAssigner[V any]       interface{ SubAssign(x V) }
	mulScalarAssigner[K any] interface{ MulScalarAssign(k K) }
	divScalarAssigner[K any] interface{ DivScalarAssign(k K) }
	addVecAssigner[V any]    interface{ AddVecAssign(v V) }
	subVecAssigner[V any]    interface{ SubVecAssign(v V) }
)

// AddAssign performs *dst += x.
func AddAssign[V ring.AddAbelianGroup[V]](dst *V, x V) {
	if a, ok := any(dst).(addAssigner[V]); ok {
		a.AddAssign(x)
		return
	}
	*dst = (*dst).Add(x)
}

// SubAssign performs *dst -= x.
func SubAssign[V ring.AddAbelianGroup[V]](dst *V, x V) {
	if a, ok := any(dst).(subAssigner[V]); ok {
		a.SubAssign(x)
		return
	}
	*dst = (*dst).Sub(x)
}

// MulScalarAssign performs *dst *= k.
func MulScalarAssign[V RingModule[V, K], K ring.UnitalRing[K]](dst *V, k K) {
	if a, ok := any(dst).(mulScalarAssigner[K]); ok {
		a.MulScalarAssign(k)
		return
	}
	*dst = (*dst).MulScalar(k)
}

// DivScalarAssign performs *dst /= k.
func DivScalarAssign[V VectorSpace[V, K], K ring.Field[K]](dst *V, k K) {
	if a, ok := any(dst).(divScalarAssigner[K]); ok {
		a.DivScalarAssign(k)
		return
	}
	*dst = (*dst).DivScalar(k)
}

// AddVecAssign moves the point *p by the displacement v.
func AddVecAssign[P AffineSpace[P, K, V], K ring.Field[K], V VectorSpace[V, K]](p *P, v V) {
	if a, ok := any(p).(addVecAssigner[V]); ok {
		a.AddVecAssign(v)
		return
	}
	*p = (*p).AddVec(v)
}

// SubVecAssign moves the point *p by -v.
func SubVecAssign[P AffineSpace[P, K, V], K ring.Field[K], V VectorSpace[V, K]](p *P, v V) {
	if a, ok := any(p).(subVecAssigner[V]); ok {
		a.SubVecAssign(v)
		return
	}
	*p = (*p).SubVec(v)
}
