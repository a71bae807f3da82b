// Package form defines scalar-valued pairings on modules: bilinear,
// symmetric, alternating and quadratic forms carried by the vectors
// themselves, and sesquilinear forms carried by a separate form object.
//
// Symmetric, alternating, reflexive and Hermitian are tags. They add no
// operation and nothing verifies them; a type opts in by declaring the
// marker method. In particular a BilinearForm is not assumed symmetric.
//
// A bilinear form induces a quadratic form q(x) = B(x, x). The two are
// declared independently; Quadratic and Induced wire one from the other,
// and Polarize goes back from q to the symmetric part of B.
package form
