// Package module composes the ring capabilities into modules, vector
// spaces, algebras and affine spaces, and layers the basis hierarchy on top.
//
// Every composite here is a pure conjunction of narrower interfaces. None
// adds an operation of its own, so a type that satisfies the primitives of
// the parts satisfies the composite for free:
//
//	RingModule           = AddAbelianGroup + MulScalar
//	VectorSpace          = RingModule + DivScalar        (K a field)
//	Algebra              = VectorSpace + Mul + Distributive
//	CountableModule      = RingModule + CountableBasis
//	CountableVectorSpace = VectorSpace + CountableBasis
//	FiniteModule         = RingModule + FiniteBasis
//	FiniteVectorSpace    = VectorSpace + FiniteBasis
//
// Generic code constrains on the composite it needs:
//
//	func Lerp[P AffineSpace[P, K, V], K ring.Field[K], V VectorSpace[V, K]](p, q P, t K) P
//
// Compound assignment (+=, *=, ...) has no operator form in Go. The Assign
// helpers below provide it over a pointer and pick up a pointer-receiver
// fast path when the type offers one.
package module
