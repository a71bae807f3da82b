// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrIndexOutOfRange is the panic value for a coordinate index
	// outside the range a type declares.
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidExponent is returned by NewLpNorm for p < 1 or NaN.
	ErrInvalidExponent = errors.New("vector: Lp exponent must be >= 1")
)
