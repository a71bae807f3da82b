// Package vector provides concrete real spaces that satisfy the
// capability hierarchy end to end, backed by gonum kernels.
//
//   - Dense  — finitely supported real sequences; a countable vector
//     space, an algebra under the Hadamard product, an inner-product space.
//   - Vec3   — R³ on gonum's r3.Vec; a finite vector space and an
//     inner-product space.
//   - Point3 — points of the affine space over Vec3.
//   - Quat   — quaternions on gonum's quat.Number; a non-commutative
//     algebra over the reals and a 4-dimensional inner-product space.
//   - LpNorm — the Lᵖ norm and metric on Dense for p ≥ 1.
//
// Scalars are scalar.Float64 throughout.
//
// Every type here has value semantics. Dense holds a slice, but its
// pointer methods (SetAt, AddAssign, ...) move the receiver to fresh
// storage before writing, so a copy is never changed through another.
package vector
