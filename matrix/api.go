// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks: constructors from literals,
//     identity, and package-level aliases of the Dense methods.
//   - Avoid logic duplication: each facade delegates to the canonical method.

package matrix

import "fmt"

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidShape when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from a row-major literal, copying the values.
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//
// Errors:
//   - ErrInvalidShape when there are no rows or the first row is empty.
//   - ErrShapeMismatch when rows have different lengths (ragged input).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrShapeMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Errors: ErrInvalidShape when m is empty.
func ZerosLike(m *Dense) (*Dense, error) { return NewDense(m.Rows(), m.Cols()) }

// IdentityLike returns I with dimension Rows(m); requires a valid square m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Arithmetic facades (all return fresh matrices) ----------

// Sum is a + b. Errors: ErrShapeMismatch.
func Sum(a, b *Dense) (*Dense, error) { return a.Add(b) }

// Diff is a − b. Errors: ErrShapeMismatch.
func Diff(a, b *Dense) (*Dense, error) { return a.Sub(b) }

// Product is a × b. Errors: ErrShapeMismatch.
func Product(a, b *Dense) (*Dense, error) { return a.Mul(b) }

// ScaleBy is k·m. Errors: ErrInvalidShape on an empty m.
func ScaleBy(m *Dense, k float64) (*Dense, error) { return m.Scale(k) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense) (*Dense, error) { return m.Transpose() }

// Det is an alias for Determinant.
func Det(m *Dense) (float64, error) { return m.Determinant() }

// InverseOf is an alias for Inverse.
func InverseOf(m *Dense) (*Dense, error) { return m.Inverse() }

// Adjugate returns adj(m) = C(m)ᵀ, the transpose of the cofactor matrix.
// Errors: ErrInvalidShape when m is empty or not square.
func Adjugate(m *Dense) (*Dense, error) {
	c, err := m.CalcComplements()
	if err != nil {
		return nil, err
	}

	return c.Transpose()
}
