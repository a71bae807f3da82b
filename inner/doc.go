// Package inner provides inner-product spaces and every operation derived
// from a single primitive, InnerProduct.
//
// A type implements
//
//	InnerProduct(rhs V) F
//
// on top of the ring-module primitives and gets, as generic functions:
//
//	NormSqrd(x)      = Re⟨x, x⟩
//	Norm(x)          = √NormSqrd(x)
//	DistEuclid(x, y) = Norm(x − y)
//	Normalized(x)    = x · F(Norm(x)⁻¹)
//	Orthogonal(x, y) = ⟨x, y⟩ == 0
//	Project(x, y)    = x · (⟨x, x⟩⁻¹ ⟨x, y⟩)
//	Reject(x, y)     = y − Project(x, y)
//	Angle(x, y)      = acos(⟨x, y⟩ · F((Norm(x)·Norm(y))⁻¹)), cosine clamped to [−1, 1] for ordered F
//
// Each function first looks for a method of the same name on the value
// (Norm() R, Project(V) V, ...) and calls it instead of the default body.
// Defaults reach each other through the same lookup, so overriding Norm
// also changes DistEuclid, Normalized and Angle. An override must agree
// with the default wherever the default is well defined; nothing enforces
// this, the scalar package tests it.
//
// Normalized, Project and Angle are undefined for the zero vector: the
// division by zero surfaces however the scalar type defines it.
//
// For complex scalars the inner product is conjugate-linear in the
// receiver: ⟨c·x, y⟩ = conj(c)⟨x, y⟩.
//
// InnerProductMetric turns any inner-product space into a Metric, a Norm
// and a Hermitian sesquilinear form in one zero-size value.
package inner
