// Package scalar wires the primitive numeric types into the capability
// hierarchy.
//
// Go primitives cannot carry methods, so each primitive gets a named
// counterpart: Int32, Int64, Float32, Float64, Complex64, Complex128. A
// value converts freely (scalar.Float64(x), float64(s)) and behaves as
//   - a ring (integers), a field (floats, complex)
//   - a one-dimensional module or vector space over itself, with the
//     single basis element 1
//   - an algebra over itself with a symmetric bilinear form x·y
//   - an inner-product space over itself
//
// The method sets are generated from one template per kind by
// internal/gen; see scalar_gen.go.
//
// # Specialised derivations
//
// The real types override several operations that package inner would
// otherwise derive from InnerProduct:
//   - Norm is |x|, not √(x·x).
//   - Orthogonal is x == 0 || y == 0, with no multiplication.
//
// The floating-point types further override:
//   - Normalized is the sign of x (±1; zero keeps its sign bit).
//   - Project(x, y) is 0 if x == 0 else y; Reject is its complement.
//   - Angle is one of 0, π/2, π from zero and sign comparisons.
//
// On nonzero inputs these agree with the derived results. At zero they
// return finite values where the derivation divides by zero. Angle in
// particular is a discrete answer specific to a totally ordered line; it
// is kept as is rather than unified with the acos derivation.
//
// Integers are not fields, so Normalized, Project, Reject and Angle are
// unavailable for Int32 and Int64. Their Sqrt is the floor square root,
// which keeps the derived Norm exact.
package scalar

//go:generate go run ../internal/gen -out scalar_gen.go
