// SPDX-License-Identifier: MIT

package scalar

import "errors"

// Scalars have no error slot in their method signatures; these sentinels
// are the panic values. Recover and match them with errors.Is.
var (
	// ErrIndexOutOfRange reports a coordinate index other than 0.
	ErrIndexOutOfRange = errors.New("scalar: index out of range")

	// ErrNegativeSqrt reports an integer square root of a negative value.
	ErrNegativeSqrt = errors.New("scalar: square root of negative integer")
)
