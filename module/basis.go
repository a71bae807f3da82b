// SPDX-License-Identifier: MIT

package module

import "github.com/katalvlaran/lvalgebra/ring"

// ConvergentBasis gives indexed read access to the coordinates of a value
// and builds the canonical basis elements.
//
// Basis is static: it ignores the receiver. At must be total over the
// range the type declares; outside that range implementations panic.
type ConvergentBasis[V, K any] interface {
	At(i int) K
	Basis(i int) V
}

// CountableBasis refines ConvergentBasis with the number of populated
// coordinates. Elements may vary per value (finitely supported sequences).
//
// Mutable indexed access is IndexMut on *V.
type CountableBasis[V, K any] interface {
	ConvergentBasis[V, K]
	Elements() int
}

// FiniteBasis refines CountableBasis with a dimension fixed by the type.
// Dimensions is static and Elements always equals it.
type FiniteBasis[V, K any] interface {
	CountableBasis[V, K]
	Dimensions() int
}

// IndexMut is satisfied by *V when V has mutable indexed access.
type IndexMut[V, K any] interface {
	*V
	SetAt(i int, k K)
}

// CountableModule is a ring module with a countable basis.
type CountableModule[V any, K ring.UnitalRing[K]] interface {
	RingModule[V, K]
	CountableBasis[V, K]
}

// CountableVectorSpace is a vector space with a countable basis.
type CountableVectorSpace[V any, K ring.Field[K]] interface {
	VectorSpace[V, K]
	CountableBasis[V, K]
}

// FiniteModule is a ring module of finite dimension.
type FiniteModule[V any, K ring.UnitalRing[K]] interface {
	RingModule[V, K]
	FiniteBasis[V, K]
}

// FiniteVectorSpace is a vector space of finite dimension.
type FiniteVectorSpace[V any, K ring.Field[K]] interface {
	VectorSpace[V, K]
	FiniteBasis[V, K]
}
