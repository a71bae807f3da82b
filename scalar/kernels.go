// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// checkIndex panics unless i addresses the single coordinate.
func checkIndex(i int) {
	if i != 0 {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
}

// intAbs returns |x|. The minimum value wraps to itself.
func intAbs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// intSqrt returns ⌊√x⌋ and panics with ErrNegativeSqrt for x < 0.
func intSqrt[T constraints.Signed](x T) T {
	if x < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeSqrt, int64(x)))
	}
	r := T(math.Sqrt(float64(x)))
	// float64 rounding may land one off near the top of the range;
	// comparisons are by division to stay clear of overflow.
	for r > 0 && r > x/r {
		r--
	}
	for r+1 <= x/(r+1) {
		r++
	}

	return r
}

func floatAbs[T constraints.Float](x T) T {
	return T(math.Abs(float64(x)))
}

func floatSqrt[T constraints.Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func floatAcos[T constraints.Float](x T) T {
	return T(math.Acos(float64(x)))
}

// signum returns ±1 with the sign bit of x, or NaN.
func signum[T constraints.Float](x T) T {
	if math.IsNaN(float64(x)) {
		return x
	}

	return T(math.Copysign(1, float64(x)))
}

// projectLine projects y onto the line spanned by x. Any nonzero x spans
// the whole line, so the projection is y itself.
func projectLine[T constraints.Float](x, y T) T {
	if x == 0 {
		return 0
	}

	return y
}

// rejectLine is y - projectLine(x, y).
func rejectLine[T constraints.Float](x, y T) T {
	if x == 0 {
		return y
	}

	return 0
}

// angleLine is the angle between x and y on the real line.
func angleLine[T constraints.Float](x, y T) T {
	if (x == 0) != (y == 0) {
		return T(math.Pi / 2)
	}
	if (x < 0) != (y < 0) {
		return T(math.Pi)
	}

	return 0
}

func conj[T constraints.Complex](x T) T {
	return T(cmplx.Conj(complex128(x)))
}

func complexAcos[T constraints.Complex](x T) T {
	return T(cmplx.Acos(complex128(x)))
}
