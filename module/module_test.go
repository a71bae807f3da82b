// SPDX-License-Identifier: MIT

package module_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/katalvlaran/lvalgebra/vector"
)

type f64 = scalar.Float64

var (
	_ module.RingModule[scalar.Int64, scalar.Int64]       = scalar.Int64(0)
	_ module.Algebra[vector.Dense, f64]                   = vector.Dense{}
	_ module.Algebra[vector.Quat, f64]                    = vector.Quat{}
	_ module.CountableVectorSpace[vector.Dense, f64]      = vector.Dense{}
	_ module.FiniteVectorSpace[vector.Vec3, f64]          = vector.Vec3{}
	_ module.FiniteVectorSpace[vector.Quat, f64]          = vector.Quat{}
	_ module.AffineSpace[vector.Point3, f64, vector.Vec3] = vector.Point3{}
)

func TestAssign_CopiesStayIndependent(t *testing.T) {
	v := vector.NewDense(1, 2, 3)
	alias := v

	module.AddAssign(&v, vector.NewDense(10, 10))
	assert.Equal(t, []float64{11, 12, 3}, v.Raw())
	assert.Equal(t, []float64{1, 2, 3}, alias.Raw(), "AddAssign must not write through a copy")

	module.SubAssign(&v, vector.NewDense(1, 2, 3))
	assert.Equal(t, []float64{10, 10, 0}, v.Raw())

	module.MulScalarAssign(&v, f64(0.5))
	assert.Equal(t, []float64{5, 5, 0}, v.Raw())

	// DivScalarAssign has no fast path on Dense; it rebinds v.
	module.DivScalarAssign(&v, f64(5))
	assert.Equal(t, []float64{1, 1, 0}, v.Raw())

	c := alias
	module.SetCoord[vector.Dense, *vector.Dense, f64](&c, 1, 99)
	assert.Equal(t, []float64{1, 99, 3}, c.Raw())
	assert.Equal(t, []float64{1, 2, 3}, alias.Raw(), "SetCoord must not write through a copy")
}

func TestAssign_ConcurrentCopies(t *testing.T) {
	shared := vector.NewDense(1, 2, 3)

	var wg sync.WaitGroup
	results := make([]vector.Dense, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mine := shared
			module.AddAssign(&mine, vector.NewDense(100, 100, 100))
			module.MulScalarAssign(&mine, f64(2))
			results[i] = mine
		}(i)
	}
	wg.Wait()

	assert.Equal(t, []float64{1, 2, 3}, shared.Raw())
	for _, r := range results {
		assert.Equal(t, []float64{202, 204, 206}, r.Raw())
	}
}

func TestAssign_GrowsShorterOperand(t *testing.T) {
	v := vector.NewDense(1)
	module.AddAssign(&v, vector.NewDense(0, 0, 2))
	assert.Equal(t, []float64{1, 0, 2}, v.Raw())

	module.SubAssign(&v, vector.NewDense(0, 0, 0, 4))
	assert.Equal(t, []float64{1, 0, 2, -4}, v.Raw())
}

func TestAssign_Fallback(t *testing.T) {
	v := vector.V3(1, 2, 3)
	module.AddAssign(&v, vector.V3(1, 1, 1))
	module.MulScalarAssign(&v, f64(2))
	module.SubAssign(&v, vector.V3(0, 0, 8))
	module.DivScalarAssign(&v, f64(4))
	assert.Equal(t, vector.V3(1, 1.5, 0), v)

	n := scalar.Int64(7)
	module.AddAssign(&n, 5)
	module.MulScalarAssign(&n, scalar.Int64(3))
	assert.Equal(t, scalar.Int64(36), n)
}

func TestAffine_Laws(t *testing.T) {
	p := vector.P3(1, 2, 3)
	q := vector.P3(-4, 0, 2.5)
	v := vector.V3(0.5, -1, 2)

	assert.Equal(t, v, p.AddVec(v).Diff(p), "(p + v) − p = v")
	assert.Equal(t, p, q.AddVec(p.Diff(q)), "(p − q) + q = p")
	assert.Equal(t, p.AddVec(v.Neg()), p.SubVec(v))

	m := p
	module.AddVecAssign[vector.Point3, f64, vector.Vec3](&m, v)
	assert.Equal(t, p.AddVec(v), m)
	module.SubVecAssign[vector.Point3, f64, vector.Vec3](&m, v)
	assert.Equal(t, p, m)
}

func TestLerp(t *testing.T) {
	p, q := vector.P3(0, 0, 0), vector.P3(4, -2, 8)

	assert.Equal(t, p, module.Lerp[vector.Point3, f64, vector.Vec3](p, q, f64(0)))
	assert.Equal(t, q, module.Lerp[vector.Point3, f64, vector.Vec3](p, q, f64(1)))
	assert.Equal(t, vector.P3(1, -0.5, 2), module.Lerp[vector.Point3, f64, vector.Vec3](p, q, f64(0.25)))
	assert.Equal(t, vector.P3(2, -1, 4), module.Midpoint[vector.Point3, f64, vector.Vec3](p, q))
}

func TestBasis_Expand(t *testing.T) {
	t.Run("Vec3", func(t *testing.T) {
		assert.Equal(t, 3, module.Dim[vector.Vec3, f64]())
		v := vector.V3(7, -1, 0.5)
		coords := module.Coordinates[vector.Vec3, f64](v)
		assert.Equal(t, []f64{7, -1, 0.5}, coords)
		assert.Equal(t, v, module.Expand[vector.Vec3, f64](coords...))
		assert.Equal(t, vector.V3(0, 0, 1), vector.Vec3{}.Basis(2))
	})
	t.Run("Quat", func(t *testing.T) {
		assert.Equal(t, 4, module.Dim[vector.Quat, f64]())
		q := vector.Q(1, 2, 3, 4)
		assert.Equal(t, q, module.Expand[vector.Quat, f64](module.Coordinates[vector.Quat, f64](q)...))
	})
	t.Run("Dense", func(t *testing.T) {
		v := vector.NewDense(0, 2, 0, -3)
		got := module.Expand[vector.Dense, f64](module.Coordinates[vector.Dense, f64](v)...)
		assert.True(t, got.Equal(v), "got %v", got)
		assert.Equal(t, 4, got.Elements())

		zero := module.Expand[vector.Dense, f64]()
		assert.True(t, zero.IsZero())
	})
	t.Run("Int64", func(t *testing.T) {
		assert.Equal(t, scalar.Int64(-9), module.Expand[scalar.Int64, scalar.Int64](-9))
	})
}

func TestSetCoord(t *testing.T) {
	var v vector.Vec3
	module.SetCoord[vector.Vec3, *vector.Vec3, f64](&v, 1, 4)
	assert.Equal(t, vector.V3(0, 4, 0), v)

	var d vector.Dense
	module.SetCoord[vector.Dense, *vector.Dense, f64](&d, 3, 2)
	require.Equal(t, 4, d.Elements())
	assert.Equal(t, []float64{0, 0, 0, 2}, d.Raw())
}
