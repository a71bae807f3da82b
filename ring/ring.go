// SPDX-License-Identifier: MIT

package ring

// AddAbelianGroup is a commutative group under addition.
//
// Laws (unchecked):
//   - x.Add(y) == y.Add(x)
//   - x.Add(y).Add(z) == x.Add(y.Add(z))
//   - x.Add(x.Neg()).IsZero()
//   - x.Sub(y) == x.Add(y.Neg())
type AddAbelianGroup[T any] interface {
	Add(rhs T) T
	Sub(rhs T) T
	Neg() T
	IsZero() bool
}

// MulMagma is a set closed under a binary multiplication.
// No associativity or commutativity is implied.
type MulMagma[T any] interface {
	Mul(rhs T) T
}

// Distributive tags a multiplication that distributes over addition:
// x·(y+z) = x·y + x·z and (x+y)·z = x·z + y·z.
type Distributive interface {
	Distributive()
}

// UnitalRing is an abelian group with an associative, distributive
// multiplication and a multiplicative identity.
//
// Zero and One are static: they ignore the receiver and are normally
// called on the zero value of T.
type UnitalRing[T any] interface {
	AddAbelianGroup[T]
	MulMagma[T]
	Zero() T
	One() T
}

// Field is a commutative unital ring where every nonzero element has a
// multiplicative inverse. Div and Inv on zero follow the scalar's own
// semantics (IEEE infinities, panics, ...).
type Field[T any] interface {
	UnitalRing[T]
	Div(rhs T) T
	Inv() T
}

// Real is a totally ordered ring with absolute value and square root.
// Sqrt of a negative value follows the scalar's own semantics.
type Real[T any] interface {
	UnitalRing[T]
	Abs() T
	Sqrt() T
	Less(rhs T) bool
}

// RealField is a Real that is also a Field.
type RealField[T any] interface {
	Real[T]
	Field[T]
}

// ComplexSubset relates a scalar T to its real subtype R.
// AsReal projects onto R (the real part); FromReal embeds R into T.
type ComplexSubset[T, R any] interface {
	AsReal() R
	FromReal(r R) T
}

// ComplexRing is a unital ring with a conjugation involution over a real
// subtype R. For real scalars R is T itself and Conj is the identity.
type ComplexRing[T, R any] interface {
	UnitalRing[T]
	ComplexSubset[T, R]
	Conj() T
}

// ComplexField is a ComplexRing that is also a Field.
type ComplexField[T, R any] interface {
	ComplexRing[T, R]
	Field[T]
}

// Trig supplies the inverse cosine needed for angles between vectors.
type Trig[T any] interface {
	Acos() T
}
