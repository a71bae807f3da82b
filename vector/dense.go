// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Dense is a finitely supported sequence of reals. Coordinates past the
// stored ones are zero, so values of different lengths combine as if the
// shorter were padded with zeros. The zero value is the zero vector.
type Dense struct {
	data []float64 // populated coordinates; may carry trailing zeros
}

// NewDense returns a Dense holding a copy of xs.
func NewDense(xs ...float64) Dense {
	return Dense{data: slices.Clone(xs)}
}

// Raw returns a copy of the populated coordinates.
func (v Dense) Raw() []float64 {
	return slices.Clone(v.data)
}

// Clone returns a Dense with its own storage.
func (v Dense) Clone() Dense {
	return Dense{data: slices.Clone(v.data)}
}

// widen returns a copy of the longer operand's data, grown to
// max(len(a), len(b)), plus the shorter operand's data.
func widen(a, b Dense) (long, short []float64) {
	if len(a.data) < len(b.data) {
		a, b = b, a
	}

	return slices.Clone(a.data), b.data
}

// Add returns v + w.
// Complexity: O(max(len v, len w)).
func (v Dense) Add(w Dense) Dense {
	out, short := widen(v, w)
	floats.Add(out[:len(short)], short)

	return Dense{data: out}
}

// Sub returns v - w.
func (v Dense) Sub(w Dense) Dense {
	out := make([]float64, max(len(v.data), len(w.data)))
	copy(out, v.data)
	floats.Sub(out[:len(w.data)], w.data)

	return Dense{data: out}
}

// Neg returns -v.
func (v Dense) Neg() Dense {
	return v.MulScalar(-1)
}

// IsZero reports whether every coordinate is zero.
func (v Dense) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}

	return true
}

// MulScalar returns k·v.
func (v Dense) MulScalar(k scalar.Float64) Dense {
	if len(v.data) == 0 {
		return Dense{}
	}

	return Dense{data: floats.ScaleTo(make([]float64, len(v.data)), float64(k), v.data)}
}

// DivScalar returns v / k, computed as v·(1/k).
func (v Dense) DivScalar(k scalar.Float64) Dense {
	return v.MulScalar(k.Inv())
}

// Mul returns the Hadamard (coordinate-wise) product of v and w. The
// result has min(len v, len w) coordinates since the rest are zero.
func (v Dense) Mul(w Dense) Dense {
	n := min(len(v.data), len(w.data))
	if n == 0 {
		return Dense{}
	}

	return Dense{data: floats.MulTo(make([]float64, n), v.data[:n], w.data[:n])}
}

// Distributive tags the Hadamard product as distributive.
func (Dense) Distributive() {}

// InnerProduct returns Σ vᵢwᵢ.
func (v Dense) InnerProduct(w Dense) scalar.Float64 {
	n := min(len(v.data), len(w.data))

	return scalar.Float64(floats.Dot(v.data[:n], w.data[:n]))
}

// Dot returns the standard bilinear form, equal to InnerProduct.
func (v Dense) Dot(w Dense) scalar.Float64 {
	return v.InnerProduct(w)
}

// Symmetric tags Dot as symmetric.
func (Dense) Symmetric() {}

// QForm returns Σ vᵢ².
func (v Dense) QForm() scalar.Float64 {
	return v.InnerProduct(v)
}

// At returns coordinate i; zero past the populated range.
// It panics with ErrIndexOutOfRange for i < 0.
func (v Dense) At(i int) scalar.Float64 {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	if i >= len(v.data) {
		return 0
	}

	return scalar.Float64(v.data[i])
}

// Basis returns eᵢ, with i+1 populated coordinates.
func (Dense) Basis(i int) Dense {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	data := make([]float64, i+1)
	data[i] = 1

	return Dense{data: data}
}

// Elements returns the number of populated coordinates.
func (v Dense) Elements() int {
	return len(v.data)
}

// own gives v fresh storage of at least n coordinates, so the pointer
// methods below never write through a slice another copy still holds.
func (v *Dense) own(n int) {
	data := make([]float64, max(n, len(v.data)))
	copy(data, v.data)
	v.data = data
}

// SetAt writes coordinate i, growing v when i is past the populated range.
// Other copies of v are not affected.
func (v *Dense) SetAt(i int, k scalar.Float64) {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	v.own(i + 1)
	v.data[i] = float64(k)
}

// AddAssign performs v += w, widening v to w's length when needed.
func (v *Dense) AddAssign(w Dense) {
	v.own(len(w.data))
	floats.Add(v.data[:len(w.data)], w.data)
}

// SubAssign performs v -= w, widening v to w's length when needed.
func (v *Dense) SubAssign(w Dense) {
	v.own(len(w.data))
	floats.Sub(v.data[:len(w.data)], w.data)
}

// MulScalarAssign performs v *= k.
func (v *Dense) MulScalarAssign(k scalar.Float64) {
	v.own(0)
	floats.Scale(float64(k), v.data)
}

// Equal reports whether v and w agree on every coordinate. Trailing zeros
// do not matter.
func (v Dense) Equal(w Dense) bool {
	return v.Sub(w).IsZero()
}

// EqualApprox reports whether v and w agree on every coordinate within tol.
func (v Dense) EqualApprox(w Dense, tol float64) bool {
	a, b := pad(v, w)

	return floats.EqualApprox(a, b, tol)
}

// String formats v as its populated coordinates.
func (v Dense) String() string {
	return fmt.Sprint(v.data)
}

// pad returns the coordinates of v and w extended with zeros to a common
// length. Inputs are not modified.
func pad(v, w Dense) ([]float64, []float64) {
	n := max(len(v.data), len(w.data))
	a, b := v.data, w.data
	if len(a) < n {
		a = append(slices.Clone(a), make([]float64, n-len(a))...)
	}
	if len(b) < n {
		b = append(slices.Clone(b), make([]float64, n-len(b))...)
	}

	return a, b
}
