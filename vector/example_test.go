package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/inner"
	"github.com/katalvlaran/lvalgebra/module"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/katalvlaran/lvalgebra/vector"
)

// ExampleDense shows zero extension: vectors of different lengths add as
// if the shorter were padded with zeros.
func ExampleDense() {
	x := vector.NewDense(1, 2, 3)
	y := vector.NewDense(10)
	fmt.Println(x.Add(y), x.Mul(y), x.InnerProduct(y))
	// Output:
	// [11 2 3] [10] 10
}

// ExampleQuat multiplies unit quaternions.
func ExampleQuat() {
	i, j := vector.Q(0, 1, 0, 0), vector.Q(0, 0, 1, 0)
	fmt.Println(i.Mul(j), j.Mul(i))
	// Output:
	// {0 0 0 1} {0 0 0 -1}
}

// ExampleLpNorm compares the L¹, L² and L∞ lengths of one vector.
func ExampleLpNorm() {
	x := vector.NewDense(3, -4)
	for _, p := range []float64{1, 2, 3} {
		n, _ := vector.NewLpNorm(p)
		fmt.Printf("L%v: %.3f\n", p, n.Norm(x))
	}
	// Output:
	// L1: 7.000
	// L2: 5.000
	// L3: 4.498
}

// ExamplePoint3 walks from one point to another.
func ExamplePoint3() {
	type f = scalar.Float64
	a, b := vector.P3(0, 0, 0), vector.P3(2, 4, 6)
	fmt.Println(module.Lerp[vector.Point3, f, vector.Vec3](a, b, 0.5))
	fmt.Println(inner.Norm[vector.Vec3, f, f](b.Diff(a).Cross(vector.V3(1, 2, 3))))
	// Output:
	// {1 2 3}
	// 0
}
