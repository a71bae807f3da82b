// Package matrix provides Mat3, a 3×3 real matrix that plugs into the
// capability hierarchy as a non-commutative algebra.
//
// 🚀 What it is:
//
//   - A 9-dimensional FiniteVectorSpace over scalar.Float64. Coordinates
//     are the entries in row-major order; Basis(i) is the matrix unit E_rc
//     with r = i/3, c = i%3.
//   - An Algebra under the matrix product. Mul is associative and
//     distributive but A·B ≠ B·A in general, and Mat3 is a ring.UnitalRing
//     with One() = I.
//   - An InnerProductSpace with the Frobenius product ⟨A, B⟩ = tr(AᵀB),
//     so every derived operation in package inner (Norm, Angle, Project)
//     works on matrices unchanged.
//
// ✨ Extras:
//
//   - Transpose, Trace, Det and Inverse (adjugate formula, ErrSingular).
//   - Apply maps a vector.Vec3 through the matrix.
//   - Rotation builds a rotation about an axis (Rodrigues' formula).
//
// ⚠️ Errors:
//
// Constructors and the (row, col) indexers return sentinel errors from
// errors.go. Methods whose signature is fixed by the hierarchy (At, SetAt,
// Basis) panic with ErrOutOfRange instead.
//
// Example:
//
//	r, _ := matrix.Rotation(vector.V3(0, 0, 1), math.Pi/2)
//	v := r.Apply(vector.V3(1, 0, 0)) // ≈ (0, 1, 0)
//	n := inner.Norm[matrix.Mat3, scalar.Float64, scalar.Float64](r) // √3
package matrix
