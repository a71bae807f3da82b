// Package ring holds the foundational capability set the rest of lvalgebra
// is built on: additive abelian groups, unital rings, fields, real and
// complex scalars.
//
// The interfaces are deliberately thin. Each names exactly the primitive
// operations the higher layers (module, form, metric, inner) consume and
// documents the laws a conforming type promises. Nothing here checks those
// laws at runtime; they are caller-trusted contracts.
//
// All interfaces are self-typed: a type T conforms to UnitalRing[T] when its
// methods take and return T. Static operations such as Zero and One are
// called on the zero value:
//
//	var z scalar.Float64
//	one := z.One()
//
// Concrete conforming types live in package scalar.
package ring
