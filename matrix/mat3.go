// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/katalvlaran/lvalgebra/vector"
)

// Mat3 is a 3×3 real matrix stored row-major: entry (r, c) lives at
// index 3r + c. The zero value is the zero matrix. Mat3 is a value type;
// copies never share storage.
type Mat3 [9]float64

// NewMat3 builds a matrix from three rows of three entries each.
//
// Errors:
//   - ErrBadShape if len(rows) != 3 or any row has length != 3.
//   - ErrNaNInf if any entry is NaN or ±Inf.
//
// Complexity: O(1).
func NewMat3(rows ...[]float64) (Mat3, error) {
	var m Mat3
	if len(rows) != 3 {
		return m, fmt.Errorf("NewMat3: %d rows: %w", len(rows), ErrBadShape)
	}
	for r, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("NewMat3: row %d has %d entries: %w", r, len(row), ErrBadShape)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return m, fmt.Errorf("NewMat3: entry (%d,%d): %w", r, c, ErrNaNInf)
			}
			m[3*r+c] = v
		}
	}

	return m, nil
}

// Identity returns I.
func Identity() Mat3 { return Diag(1, 1, 1) }

// Diag returns the diagonal matrix diag(a, b, c).
func Diag(a, b, c float64) Mat3 { return Mat3{0: a, 4: b, 8: c} }

// Rotation returns the rotation by theta radians about axis, following
// the right-hand rule (Rodrigues' formula). The axis need not be unit.
//
// Errors:
//   - ErrZeroAxis if axis is the zero vector.
func Rotation(axis vector.Vec3, theta float64) (Mat3, error) {
	if axis.IsZero() {
		return Mat3{}, fmt.Errorf("Rotation: %w", ErrZeroAxis)
	}
	u := axis.DivScalar(axis.Norm())
	x, y, z := u.X, u.Y, u.Z
	s, c := math.Sincos(theta)
	t := 1 - c

	return Mat3{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c,
	}, nil
}

// Entry returns element (r, c).
//
// Errors:
//   - ErrOutOfRange if r or c is outside [0, 3).
func (m Mat3) Entry(r, c int) (float64, error) {
	i, err := flat(r, c)
	if err != nil {
		return 0, err
	}

	return m[i], nil
}

// Set writes element (r, c).
//
// Errors:
//   - ErrOutOfRange if r or c is outside [0, 3); m is left unchanged.
func (m *Mat3) Set(r, c int, v float64) error {
	i, err := flat(r, c)
	if err != nil {
		return err
	}
	m[i] = v

	return nil
}

func flat(r, c int) (int, error) {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return 0, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return 3*r + c, nil
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	floats.AddTo(out[:], m[:], n[:])

	return out
}

// Sub returns m - n.
func (m Mat3) Sub(n Mat3) Mat3 {
	var out Mat3
	floats.SubTo(out[:], m[:], n[:])

	return out
}

// Neg returns -m.
func (m Mat3) Neg() Mat3 { return m.MulScalar(-1) }

// IsZero reports whether every entry is zero.
func (m Mat3) IsZero() bool { return m == Mat3{} }

// MulScalar returns k·m.
func (m Mat3) MulScalar(k scalar.Float64) Mat3 {
	var out Mat3
	floats.ScaleTo(out[:], float64(k), m[:])

	return out
}

// DivScalar returns m / k.
func (m Mat3) DivScalar(k scalar.Float64) Mat3 { return m.MulScalar(k.Inv()) }

// Mul returns the matrix product m·n.
//
// Complexity: 27 multiply-adds.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[3*r+c] = m[3*r]*n[c] + m[3*r+1]*n[3+c] + m[3*r+2]*n[6+c]
		}
	}

	return out
}

// Distributive tags the matrix product as distributive over Add.
func (Mat3) Distributive() {}

// Zero returns the zero matrix.
func (Mat3) Zero() Mat3 { return Mat3{} }

// One returns the identity, the unit of Mul.
func (Mat3) One() Mat3 { return Identity() }

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Trace returns the sum of the diagonal.
func (m Mat3) Trace() scalar.Float64 { return scalar.Float64(m[0] + m[4] + m[8]) }

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3) Det() scalar.Float64 {
	return scalar.Float64(m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6]))
}

// Inverse returns m⁻¹ as adj(m) / det(m).
//
// Errors:
//   - ErrSingular if det(m) == 0. Nearly singular matrices are inverted
//     as-is; check Det against a tolerance when that matters.
func (m Mat3) Inverse() (Mat3, error) {
	d := float64(m.Det())
	if d == 0 {
		return Mat3{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}
	adj := Mat3{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}

	return adj.MulScalar(scalar.Float64(1 / d)), nil
}

// Apply returns the matrix-vector product m·v.
func (m Mat3) Apply(v vector.Vec3) vector.Vec3 {
	return vector.V3(
		m[0]*v.X+m[1]*v.Y+m[2]*v.Z,
		m[3]*v.X+m[4]*v.Y+m[5]*v.Z,
		m[6]*v.X+m[7]*v.Y+m[8]*v.Z,
	)
}

// InnerProduct returns the Frobenius product tr(mᵀn) = Σ mᵢ·nᵢ.
func (m Mat3) InnerProduct(n Mat3) scalar.Float64 { return scalar.Float64(floats.Dot(m[:], n[:])) }

// Dot is InnerProduct, viewed as a symmetric bilinear form.
func (m Mat3) Dot(n Mat3) scalar.Float64 { return m.InnerProduct(n) }

// Symmetric tags Dot as symmetric.
func (Mat3) Symmetric() {}

// QForm returns ‖m‖²_F.
func (m Mat3) QForm() scalar.Float64 { return m.InnerProduct(m) }

// Norm returns the Frobenius norm. It replaces the generic √⟨m, m⟩ with
// gonum's scaled accumulation, which does not overflow for large entries.
func (m Mat3) Norm() scalar.Float64 { return scalar.Float64(floats.Norm(m[:], 2)) }

// At returns coordinate i, the entry at row i/3, column i%3.
func (m Mat3) At(i int) scalar.Float64 {
	if i < 0 || i >= 9 {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, i))
	}

	return scalar.Float64(m[i])
}

// Basis returns the matrix unit with a single 1 at coordinate i.
func (Mat3) Basis(i int) Mat3 {
	var e Mat3
	e.SetAt(i, 1)

	return e
}

// Elements returns 9.
func (Mat3) Elements() int { return 9 }

// Dimensions returns 9.
func (Mat3) Dimensions() int { return 9 }

// SetAt writes coordinate i.
func (m *Mat3) SetAt(i int, k scalar.Float64) {
	if i < 0 || i >= 9 {
		panic(fmt.Errorf("%w: %d", ErrOutOfRange, i))
	}
	m[i] = float64(k)
}

// EqualApprox reports whether m and n agree entrywise within tol
// (absolute or relative, as floats.EqualApprox).
func (m Mat3) EqualApprox(n Mat3, tol float64) bool { return floats.EqualApprox(m[:], n[:], tol) }

// String formats m as three bracketed rows.
func (m Mat3) String() string {
	return fmt.Sprint([][]float64{m[0:3], m[3:6], m[6:9]})
}
