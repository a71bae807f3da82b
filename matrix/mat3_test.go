// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/form"
	"github.com/katalvlaran/lvalgebra/inner"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/ring"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/katalvlaran/lvalgebra/vector"
)

type f64 = scalar.Float64

var (
	_ module.Algebra[matrix.Mat3, f64]               = matrix.Mat3{}
	_ module.FiniteVectorSpace[matrix.Mat3, f64]     = matrix.Mat3{}
	_ ring.UnitalRing[matrix.Mat3]                   = matrix.Mat3{}
	_ form.BilinearSpace[matrix.Mat3, f64]           = matrix.Mat3{}
	_ form.SymmetricForm[matrix.Mat3, f64]           = matrix.Mat3{}
	_ inner.InnerProductSpace[matrix.Mat3, f64, f64] = matrix.Mat3{}
)

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

// mustMat3 builds a matrix from rows or fails the test.
func mustMat3(t *testing.T, rows ...[]float64) matrix.Mat3 {
	t.Helper()
	m, err := matrix.NewMat3(rows...)
	require.NoError(t, err)

	return m
}

func TestNewMat3(t *testing.T) {
	m := mustMat3(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	assert.Equal(t, matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, m)

	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"TwoRows", [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.ErrBadShape},
		{"ShortRow", [][]float64{{1, 2, 3}, {4, 5}, {7, 8, 9}}, matrix.ErrBadShape},
		{"NaN", [][]float64{{1, 2, 3}, {4, math.NaN(), 6}, {7, 8, 9}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewMat3(tc.rows...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEntrySet(t *testing.T) {
	m := matrix.Identity()
	require.NoError(t, m.Set(0, 2, 5))

	v, err := m.Entry(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, f64(5), m.At(2))

	before := m
	assert.ErrorIs(t, m.Set(3, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.Equal(t, before, m)

	_, err = m.Entry(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAlgebra(t *testing.T) {
	a := mustMat3(t, []float64{1, 2, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	b := mustMat3(t, []float64{1, 0, 0}, []float64{3, 1, 0}, []float64{0, 0, 1})
	c := mustMat3(t, []float64{2, -1, 4}, []float64{0, 3, 1}, []float64{5, 0, -2})

	assert.Equal(t, mustMat3(t, []float64{7, 2, 0}, []float64{3, 1, 0}, []float64{0, 0, 1}), a.Mul(b))
	assert.Equal(t, mustMat3(t, []float64{1, 2, 0}, []float64{3, 7, 0}, []float64{0, 0, 1}), b.Mul(a))
	assert.NotEqual(t, a.Mul(b), b.Mul(a))

	assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), "left distributive")
	assert.Equal(t, a.Add(b).Mul(c), a.Mul(c).Add(b.Mul(c)), "right distributive")
	assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)), "associative")

	var z matrix.Mat3
	assert.Equal(t, c, c.Mul(z.One()))
	assert.Equal(t, c, z.One().Mul(c))
	assert.True(t, c.Mul(z.Zero()).IsZero())
	assert.True(t, c.Add(c.Neg()).IsZero())
	assert.Equal(t, c.Sub(b), c.Add(b.Neg()))
	assert.Equal(t, c, c.MulScalar(4).DivScalar(4))

	assert.Equal(t, b.Transpose().Mul(a.Transpose()), a.Mul(b).Transpose())
	assert.Equal(t, f64(3), c.Trace())
}

func TestDetInverse(t *testing.T) {
	a := mustMat3(t, []float64{1, 2, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	inv, err := a.Inverse()
	require.NoError(t, err)
	assert.Equal(t, f64(1), a.Det())
	assert.Equal(t, mustMat3(t, []float64{1, -2, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}), inv)
	assert.Equal(t, matrix.Identity(), a.Mul(inv))

	d := matrix.Diag(2, 4, 8)
	assert.Equal(t, f64(64), d.Det())
	inv, err = d.Inverse()
	require.NoError(t, err)
	assert.Equal(t, matrix.Diag(0.5, 0.25, 0.125), inv)

	c := mustMat3(t, []float64{2, -1, 4}, []float64{0, 3, 1}, []float64{5, 0, -2})
	assert.Equal(t, f64(-77), c.Det())
	inv, err = c.Inverse()
	require.NoError(t, err)
	assert.True(t, c.Mul(inv).EqualApprox(matrix.Identity(), 1e-12))

	_, err = matrix.Diag(1, 0, 1).Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRotation(t *testing.T) {
	r, err := matrix.Rotation(vector.V3(0, 0, 2), math.Pi/2)
	require.NoError(t, err)

	v := r.Apply(vector.V3(1, 0, 0))
	assert.InDelta(t, 0, v.X, 1e-15)
	assert.InDelta(t, 1, v.Y, 1e-15)
	assert.InDelta(t, 0, v.Z, 1e-15)

	assert.InDelta(t, 1, float64(r.Det()), 1e-12)
	assert.True(t, r.Mul(r.Transpose()).EqualApprox(matrix.Identity(), 1e-12))

	// Rotations preserve length and angles.
	x, y := vector.V3(1, 2, 3), vector.V3(-2, 0, 1)
	r, err = matrix.Rotation(vector.V3(1, 1, 1), 0.7)
	require.NoError(t, err)
	assert.InDelta(t, float64(x.Norm()), float64(r.Apply(x).Norm()), 1e-12)
	assert.InDelta(t, float64(x.Dot(y)), float64(r.Apply(x).Dot(r.Apply(y))), 1e-12)

	_, err = matrix.Rotation(vector.Vec3{}, 1)
	assert.ErrorIs(t, err, matrix.ErrZeroAxis)
}

func TestFrobenius(t *testing.T) {
	a := mustMat3(t, []float64{1, 2, 0}, []float64{0, 1, 0}, []float64{0, 0, 1})
	c := mustMat3(t, []float64{2, -1, 4}, []float64{0, 3, 1}, []float64{5, 0, -2})

	assert.Equal(t, a.Transpose().Mul(c).Trace(), a.InnerProduct(c))
	assert.Equal(t, c.Dot(a), a.Dot(c))
	assert.Equal(t, f64(3), matrix.Identity().QForm())
	assert.Equal(t, a.Dot(c), form.Polarize[matrix.Mat3, f64](a, c))

	assert.InDelta(t, math.Sqrt(60), float64(inner.Norm[matrix.Mat3, f64, f64](c)), 1e-12)
	assert.Equal(t, f64(5), inner.DistEuclid[matrix.Mat3, f64, f64](matrix.Diag(3, 0, 0), matrix.Diag(0, 4, 0)))

	e := matrix.Mat3{}.Basis
	assert.True(t, inner.Orthogonal[matrix.Mat3, f64, f64](e(1), e(3)))
	assert.Equal(t, matrix.Diag(1, 0, 0), inner.Project[matrix.Mat3, f64, f64](e(0), matrix.Identity()))
	assert.InDelta(t, math.Acos(1/math.Sqrt(3)),
		float64(inner.Angle[matrix.Mat3, f64, f64](matrix.Identity(), e(0))), 1e-12)

	// The Norm override scales; the generic √⟨m, m⟩ overflows.
	big := matrix.Diag(1e200, 1e200, 0)
	assert.True(t, math.IsInf(float64(big.QForm()), 1))
	assert.InDelta(t, math.Sqrt2*1e200, float64(inner.Norm[matrix.Mat3, f64, f64](big)), 1e186)
}

func TestCoordinates(t *testing.T) {
	want := matrix.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := module.Expand[matrix.Mat3, f64](1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.Equal(t, want, got)
	assert.Equal(t, []f64{1, 2, 3, 4, 5, 6, 7, 8, 9}, module.Coordinates[matrix.Mat3, f64](want))
	assert.Equal(t, 9, module.Dim[matrix.Mat3, f64]())

	module.SetCoord[matrix.Mat3, *matrix.Mat3, f64](&got, 4, -5)
	v, err := got.Entry(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)

	assert.ErrorIs(t, recoverErr(func() { _ = want.At(9) }), matrix.ErrOutOfRange)
	assert.ErrorIs(t, recoverErr(func() { _ = matrix.Mat3{}.Basis(-1) }), matrix.ErrOutOfRange)
}

func TestString(t *testing.T) {
	assert.Equal(t, "[[1 0 0] [0 1 0] [0 0 1]]", matrix.Identity().String())
}
