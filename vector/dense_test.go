// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/katalvlaran/lvalgebra/vector"
)

type f64 = scalar.Float64

// recoverErr runs f and returns the error it panicked with, or nil.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = errors.New("non-error panic")
			}
		}
	}()
	f()

	return nil
}

func TestDense_ZeroExtension(t *testing.T) {
	x := vector.NewDense(1, 2, 3)
	for _, zero := range []vector.Dense{{}, vector.NewDense(0), vector.NewDense(0, 0, 0, 0, 0)} {
		assert.True(t, zero.IsZero())
		assert.True(t, x.Add(zero).Equal(x), "x + 0 = x for %v", zero)
		assert.True(t, zero.Add(x).Equal(x))
		assert.True(t, x.Sub(zero).Equal(x))
	}
	assert.True(t, vector.NewDense(1, 2).Equal(vector.NewDense(1, 2, 0, 0)))
	assert.False(t, vector.NewDense(1, 2).Equal(vector.NewDense(1, 2, 0, 1e-300)))
}

func TestDense_Arithmetic(t *testing.T) {
	x := vector.NewDense(1, 2, 3)
	y := vector.NewDense(10, 20)

	assert.Equal(t, []float64{11, 22, 3}, x.Add(y).Raw())
	assert.Equal(t, []float64{11, 22, 3}, y.Add(x).Raw())
	assert.Equal(t, []float64{-9, -18, 3}, x.Sub(y).Raw())
	assert.Equal(t, []float64{9, 18, -3}, y.Sub(x).Raw())
	assert.Equal(t, []float64{-1, -2, -3}, x.Neg().Raw())
	assert.Equal(t, []float64{2, 4, 6}, x.MulScalar(2).Raw())
	assert.Equal(t, []float64{0.5, 1, 1.5}, x.DivScalar(2).Raw())

	// Hadamard product: coordinates past the shorter operand are zero.
	assert.Equal(t, []float64{10, 40}, x.Mul(y).Raw())
	assert.True(t, x.Mul(vector.Dense{}).IsZero())

	assert.Equal(t, f64(50), x.InnerProduct(y))
	assert.Equal(t, x.Dot(y), y.Dot(x))
	assert.Equal(t, f64(14), x.QForm())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3}, x.Raw())
	assert.Equal(t, []float64{10, 20}, y.Raw())
}

func TestDense_AlgebraLaws(t *testing.T) {
	x := vector.NewDense(1, -2, 3)
	y := vector.NewDense(0.5, 4)
	z := vector.NewDense(2, 2, 2, 2)
	a := f64(-1.5)

	assert.True(t, x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z))), "left distributive")
	assert.True(t, y.Add(z).Mul(x).Equal(y.Mul(x).Add(z.Mul(x))), "right distributive")
	assert.True(t, x.MulScalar(a).Mul(y).Equal(x.Mul(y).MulScalar(a)), "compatible with scalars")
	assert.True(t, x.Mul(y).Equal(y.Mul(x)), "Hadamard product commutes")
}

func TestDense_Indexing(t *testing.T) {
	x := vector.NewDense(4, 5)
	assert.Equal(t, f64(5), x.At(1))
	assert.Equal(t, f64(0), x.At(100), "past the populated range")
	assert.Equal(t, 2, x.Elements())

	e := vector.Dense{}.Basis(2)
	assert.Equal(t, []float64{0, 0, 1}, e.Raw())

	x.SetAt(4, 7)
	assert.Equal(t, []float64{4, 5, 0, 0, 7}, x.Raw())
	x.SetAt(0, -1)
	assert.Equal(t, f64(-1), x.At(0))

	for _, f := range []func(){
		func() { _ = x.At(-1) },
		func() { _ = vector.Dense{}.Basis(-3) },
		func() { x.SetAt(-1, 0) },
	} {
		assert.ErrorIs(t, recoverErr(f), vector.ErrIndexOutOfRange)
	}
}

// TestDense_SetAtGrowsWithZeros checks that growth never exposes spare
// capacity as coordinates.
func TestDense_SetAtGrowsWithZeros(t *testing.T) {
	var w vector.Dense
	for i := 0; i < 8; i++ {
		w.SetAt(i, 0)
	}
	w.SetAt(20, 1)
	require.Equal(t, 21, w.Elements())
	for i := 0; i < 20; i++ {
		assert.Equal(t, f64(0), w.At(i))
	}
}

func TestDense_InPlace(t *testing.T) {
	x := vector.NewDense(1, 2, 3)
	c := x.Clone()
	y := x
	x.AddAssign(vector.NewDense(1, 1))
	x.SubAssign(vector.NewDense(0, 0, 3))
	x.MulScalarAssign(10)
	assert.Equal(t, []float64{20, 30, 0}, x.Raw())
	assert.Equal(t, []float64{1, 2, 3}, c.Raw(), "Clone owns its storage")
	assert.Equal(t, []float64{1, 2, 3}, y.Raw(), "a plain copy is not written through")

	y.SetAt(1, 5)
	assert.Equal(t, []float64{1, 5, 3}, y.Raw())
	assert.Equal(t, []float64{1, 2, 3}, c.Raw())

	raw := x.Raw()
	raw[0] = 99
	assert.Equal(t, f64(20), x.At(0), "Raw returns a copy")
}

func TestDense_EqualApprox(t *testing.T) {
	x := vector.NewDense(0.1, 0.2)
	y := vector.NewDense(0.1+1e-12, 0.2, 0)
	assert.True(t, x.EqualApprox(y, 1e-9))
	assert.False(t, x.EqualApprox(y, 1e-15))
	assert.Equal(t, "[0.1 0.2]", x.String())
}
