// Package lvalgebra is a hierarchy of algebraic capabilities for generic
// numeric Go: modules, vector spaces, algebras, affine spaces, bases,
// forms, metrics, norms and inner-product spaces.
//
// 🚀 What is lvalgebra?
//
//	A set of small generic interfaces that numeric code constrains on,
//	instead of on concrete types:
//		• ring/   — groups, rings, fields, real and complex scalars
//		• module/ — RingModule, VectorSpace, Algebra, AffineSpace, bases
//		• form/   — bilinear, quadratic and sesquilinear forms
//		• metric/ — Metric, Seminorm, Norm, NormedMetric
//		• inner/  — InnerProductSpace, its derived operations, and the
//		            InnerProductMetric adapter
//		• scalar/ — int32, int64, float32, float64, complex64, complex128
//		            wired into all of the above
//		• vector/ — Dense, Vec3, Point3, Quat and LpNorm on gonum
//		• matrix/ — Mat3, a non-commutative 3×3 matrix algebra with the
//		            Frobenius inner product
//		• dtw/    — Dynamic Time Warping over any metric
//
// ✨ Why lvalgebra?
//
//   - One primitive, many operations – implement InnerProduct and get
//     Norm, DistEuclid, Project, Reject, Angle and a Metric for free
//   - Overridable – a type may supply its own Norm (or any derived
//     operation) and every derivation picks it up
//   - Composable – composites are pure interface conjunctions; generic code
//     asks for exactly what it uses
//   - Pure functions – values in, fresh values out; safe for concurrent use
//
// Quick example:
//
//	var d inner.InnerProductMetric[vector.Vec3, scalar.Float64, scalar.Float64]
//	d.Distance(vector.V3(0, 0, 0), vector.V3(3, 4, 0)) // 5
//
//	go get github.com/katalvlaran/lvalgebra
package lvalgebra
