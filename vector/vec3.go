// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Vec3 is a displacement in R³.
type Vec3 r3.Vec

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) vec() r3.Vec { return r3.Vec(v) }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3(r3.Add(v.vec(), w.vec())) }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3(r3.Sub(v.vec(), w.vec())) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3(r3.Scale(-1, v.vec())) }

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v == Vec3{} }

// MulScalar returns k·v.
func (v Vec3) MulScalar(k scalar.Float64) Vec3 { return Vec3(r3.Scale(float64(k), v.vec())) }

// DivScalar returns v / k.
func (v Vec3) DivScalar(k scalar.Float64) Vec3 { return Vec3(r3.Scale(1/float64(k), v.vec())) }

// InnerProduct returns the Euclidean dot product.
func (v Vec3) InnerProduct(w Vec3) scalar.Float64 { return scalar.Float64(r3.Dot(v.vec(), w.vec())) }

// Dot returns the Euclidean dot product.
func (v Vec3) Dot(w Vec3) scalar.Float64 { return v.InnerProduct(w) }

// Symmetric tags Dot as symmetric.
func (Vec3) Symmetric() {}

// QForm returns the squared length.
func (v Vec3) QForm() scalar.Float64 { return scalar.Float64(r3.Norm2(v.vec())) }

// Norm returns the Euclidean length, computed without intermediate
// overflow. It replaces the generic √⟨v, v⟩.
func (v Vec3) Norm() scalar.Float64 { return scalar.Float64(r3.Norm(v.vec())) }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 { return Vec3(r3.Cross(v.vec(), w.vec())) }

// At returns coordinate i of (X, Y, Z).
func (v Vec3) At(i int) scalar.Float64 {
	switch i {
	case 0:
		return scalar.Float64(v.X)
	case 1:
		return scalar.Float64(v.Y)
	case 2:
		return scalar.Float64(v.Z)
	}
	panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
}

// Basis returns the unit vector along axis i.
func (Vec3) Basis(i int) Vec3 {
	var e Vec3
	e.SetAt(i, 1)

	return e
}

// Elements returns 3.
func (Vec3) Elements() int { return 3 }

// Dimensions returns 3.
func (Vec3) Dimensions() int { return 3 }

// SetAt writes coordinate i.
func (v *Vec3) SetAt(i int, k scalar.Float64) {
	switch i {
	case 0:
		v.X = float64(k)
	case 1:
		v.Y = float64(k)
	case 2:
		v.Z = float64(k)
	default:
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
}
