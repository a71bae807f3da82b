// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// context is added with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrBadShape is returned by NewMat3 when the rows do not form a 3×3 grid.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, 3).
	// Entry and Set return it; the coordinate accessors At/SetAt panic with it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Inverse when the determinant is zero.
	ErrSingular = errors.New("matrix: matrix is singular")

	// ErrZeroAxis is returned by Rotation for a zero rotation axis.
	ErrZeroAxis = errors.New("matrix: rotation axis is zero")

	// ErrNaNInf rejects non-finite entries at construction.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
