// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvalgebra/ring"

// RingModule is an abelian group with a scalar multiplication by a unital
// ring K.
//
// Laws (unchecked):
//   - x.MulScalar(a.Add(b)) == x.MulScalar(a).Add(x.MulScalar(b))
//   - x.Add(y).MulScalar(a) == x.MulScalar(a).Add(y.MulScalar(a))
//   - x.MulScalar(a.Mul(b)) == x.MulScalar(a).MulScalar(b)
//   - x.MulScalar(one) == x
type RingModule[V any, K ring.UnitalRing[K]] interface {
	ring.AddAbelianGroup[V]
	MulScalar(k K) V
}

// VectorSpace is a RingModule over a field, which adds division by a
// nonzero scalar: x.DivScalar(k) == x.MulScalar(k.Inv()).
type VectorSpace[V any, K ring.Field[K]] interface {
	RingModule[V, K]
	DivScalar(k K) V
}

// Algebra is a vector space with an internal multiplication that
// distributes over addition and is compatible with the scalar action:
// (a·x)·y == a·(x·y) == x·(a·y).
type Algebra[V any, K ring.Field[K]] interface {
	VectorSpace[V, K]
	ring.MulMagma[V]
	ring.Distributive
}

// AffineSpace is a set of points P acted on by a vector space V of
// displacements.
//
// Laws (unchecked):
//   - p.AddVec(v).Diff(p) == v
//   - p.Diff(q) then AddVec onto q gives p
//   - p.SubVec(v) == p.AddVec(v.Neg())
type AffineSpace[P any, K ring.Field[K], V VectorSpace[V, K]] interface {
	Diff(q P) V
	AddVec(v V) P
	SubVec(v V) P
}
