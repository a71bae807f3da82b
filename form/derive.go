// SPDX-License-Identifier: MIT

package form

import "github.com/katalvlaran/lvalgebra/ring"

// Quadratic evaluates the quadratic form induced by B: q(x) = B(x, x).
func Quadratic[V BilinearForm[V, K], K ring.UnitalRing[K]](x V) K {
	return x.Dot(x)
}

// Induced wraps a value so that it carries the quadratic form induced by
// its bilinear form. Use it to satisfy QuadraticForm from Dot alone.
type Induced[V BilinearForm[V, K], K ring.UnitalRing[K]] struct {
	V V
}

// QForm returns V.Dot(V).
func (q Induced[V, K]) QForm() K {
	return q.V.Dot(q.V)
}

// Polarize recovers the symmetric bilinear form of q:
//
//	B(x, y) = (q(x+y) − q(x) − q(y)) / 2
//
// For a SymmetricForm whose QForm is induced by Dot this equals x.Dot(y).
// K must not have characteristic 2.
func Polarize[V QuadraticSpace[V, K], K ring.Field[K]](x, y V) K {
	var k K
	two := k.One().Add(k.One())
	s := x.Add(y).QForm().Sub(x.QForm()).Sub(y.QForm())

	return s.Div(two)
}
