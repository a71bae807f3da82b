// SPDX-License-Identifier: MIT

package form

import (
	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/ring"
)

// BilinearForm is a pairing B: V×V → K linear in each argument:
//   - B(x+y, z) = B(x, z) + B(y, z)
//   - B(x, y+z) = B(x, y) + B(x, z)
//   - B(c·x, y) = c·B(x, y) = B(x, c·y)
//
// Commutativity is not implied; see SymmetricForm.
type BilinearForm[V any, K ring.UnitalRing[K]] interface {
	Dot(rhs V) K
}

// SymmetricForm tags B(x, y) = B(y, x).
type SymmetricForm[V any, K ring.UnitalRing[K]] interface {
	BilinearForm[V, K]
	Symmetric()
}

// AlternatingForm tags B(x, y) = -B(y, x).
type AlternatingForm[V any, K ring.UnitalRing[K]] interface {
	BilinearForm[V, K]
	Alternating()
}

// QuadraticForm is a self-pairing q: V → K with q(c·x) = c²·q(x).
type QuadraticForm[K ring.UnitalRing[K]] interface {
	QForm() K
}

// QuadraticModule is a ring module equipped with a quadratic form.
type QuadraticModule[V any, K ring.UnitalRing[K]] interface {
	module.RingModule[V, K]
	QuadraticForm[K]
}

// QuadraticSpace is a vector space equipped with a quadratic form.
type QuadraticSpace[V any, K ring.Field[K]] interface {
	module.VectorSpace[V, K]
	QuadraticForm[K]
}

// BilinearModule is a quadratic module that also carries a bilinear form.
type BilinearModule[V any, K ring.UnitalRing[K]] interface {
	QuadraticModule[V, K]
	BilinearForm[V, K]
}

// BilinearSpace is a quadratic space that also carries a bilinear form.
type BilinearSpace[V any, K ring.Field[K]] interface {
	QuadraticSpace[V, K]
	BilinearForm[V, K]
}
