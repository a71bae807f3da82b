// SPDX-License-Identifier: MIT

package form

import "github.com/katalvlaran/lvalgebra/ring"

// SesquilinearForm is a pairing held by a form object rather than by the
// vectors. It is additive in both arguments and twisted by the
// automorphism Sigma in the first:
//   - ProductOf(c·x, y) = Sigma(c)·ProductOf(x, y)
//   - ProductOf(x, c·y) = c·ProductOf(x, y)
//
// SigmaInv undoes Sigma. Over the complex numbers Sigma is conjugation.
type SesquilinearForm[V any, K ring.UnitalRing[K]] interface {
	ProductOf(v1, v2 V) K
	Sigma(k K) K
	SigmaInv(k K) K
}

// ReflexiveForm tags ProductOf(x, y) = 0 ⇔ ProductOf(y, x) = 0.
type ReflexiveForm[V any, K ring.UnitalRing[K]] interface {
	SesquilinearForm[V, K]
	Reflexive()
}

// SymSesquilinearForm tags ProductOf(y, x) = Sigma(ProductOf(x, y)),
// the Hermitian symmetry of an inner product.
type SymSesquilinearForm[V any, K ring.UnitalRing[K]] interface {
	SesquilinearForm[V, K]
	SymmetricSesquilinear()
}

// BilinearMap tags a sesquilinear form whose Sigma is the identity, making
// ProductOf bilinear.
type BilinearMap[V any, K ring.UnitalRing[K]] interface {
	SesquilinearForm[V, K]
	Bilinear()
}
