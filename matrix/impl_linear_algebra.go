// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic, matrix product, comparison and transpose.
//
// Purpose:
//   - Each operation exists in two forms: a copying form (Add, Sub, Scale, Mul)
//     that returns a fresh Dense, and an in-place form (AddInPlace, ...) that
//     mutates and returns the receiver. Both forms call one validated kernel.
//
// Notes:
//   - Validation always completes before the first write, so a failing
//     in-place call never leaves the receiver half-updated.

package matrix

import "math"

// ZeroSum is the initial accumulator value for products and expansions.
const ZeroSum = 0.0

// EqualityTolerance is the absolute per-element tolerance used by Equal.
const EqualityTolerance = 1e-7

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opClone           = "Clone"
	opCopyFrom        = "CopyFrom"
	opMoveFrom        = "MoveFrom"
	opSetRows         = "SetRows"
	opSetCols         = "SetCols"
	opAdd             = "Add"
	opSub             = "Sub"
	opScale           = "Scale"
	opMul             = "Mul"
	opEqual           = "Equal"
	opTranspose       = "Transpose"
	opDeterminant     = "Determinant"
	opCalcComplements = "CalcComplements"
	opInverse         = "Inverse"
	opFromRows        = "NewFromRows"
	opIdentity        = "NewIdentity"
)

// addSub computes dst = m + sign*o for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(m, o).
//   - Stage 2: choose dst (m itself in place, or a deep copy of m).
//   - Stage 3: single flat loop 0..n-1 over both backing slices.
//
// Behavior highlights:
//   - m.AddInPlace(m) is well-defined: each cell reads before it writes.
//
// Errors:
//   - ErrShapeMismatch (different shapes or an empty operand).
//
// Complexity:
//   - Time O(r*c); Space O(r*c) for the copying form, O(1) in place.
func (m *Dense) addSub(o *Dense, sign float64, inPlace bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dst := m
	if !inPlace {
		dst = m.cloneUnchecked()
	}
	for idx := range dst.data {
		dst.data[idx] += sign * o.data[idx]
	}

	return dst, nil
}

// Add returns a new matrix C = m + o.
// Errors: ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) { return m.addSub(o, +1, false, opAdd) }

// AddInPlace sets m = m + o and returns m.
// Errors: ErrShapeMismatch (m unchanged). Complexity: O(r*c).
func (m *Dense) AddInPlace(o *Dense) (*Dense, error) { return m.addSub(o, +1, true, opAdd) }

// Sub returns a new matrix C = m − o.
// Errors: ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) Sub(o *Dense) (*Dense, error) { return m.addSub(o, -1, false, opSub) }

// SubInPlace sets m = m − o and returns m.
// Errors: ErrShapeMismatch (m unchanged). Complexity: O(r*c).
func (m *Dense) SubInPlace(o *Dense) (*Dense, error) { return m.addSub(o, -1, true, opSub) }

// scale multiplies every element by k, in place or on a copy.
func (m *Dense) scale(k float64, inPlace bool) (*Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dst := m
	if !inPlace {
		dst = m.cloneUnchecked()
	}
	for idx := range dst.data {
		dst.data[idx] *= k
	}

	return dst, nil
}

// Scale returns a new matrix with elements k*m[i,j].
// Always succeeds on a valid matrix; ErrInvalidShape on an empty one.
// NaN/Inf in k propagate. Complexity: O(r*c).
func (m *Dense) Scale(k float64) (*Dense, error) { return m.scale(k, false) }

// ScaleInPlace multiplies every element of m by k and returns m.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(k float64) (*Dense, error) { return m.scale(k, true) }

// product computes the standard matrix product m × o into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == o.Rows, both valid).
//   - Stage 2: allocate (m.Rows × o.Cols).
//   - Stage 3: i→j→k triple loop, float64 accumulation per output cell.
//
// Errors:
//   - ErrShapeMismatch, ErrAllocation.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) product(o *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, err
	}
	rows, inner, cols := m.r, m.c, o.c
	buf, err := allocate(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, j, k    int
		rowOffsetA int
		sum        float64
	)
	for i = 0; i < rows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += m.data[rowOffsetA+k] * o.data[k*cols+j]
			}
			buf[i*cols+j] = sum
		}
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Mul returns the matrix product m × o with shape m.Rows × o.Cols.
// Errors: ErrShapeMismatch when m.Cols != o.Rows or an operand is empty.
// Complexity: O(r*n*c).
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	res, err := m.product(o)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// MulInPlace replaces m with m × o and returns m. The shape of m becomes
// m.Rows × o.Cols. m.MulInPlace(m) is valid for square m: the product is
// computed into a fresh buffer before the swap.
// Errors: ErrShapeMismatch (m unchanged). Complexity: O(r*n*c).
func (m *Dense) MulInPlace(o *Dense) (*Dense, error) {
	res, err := m.product(o)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return m, nil
}

// Equal reports whether every pair of elements differs by less than
// EqualityTolerance in absolute value.
//
// Equality is a checked operation: comparing differently shaped matrices, or an
// empty one, is treated as misuse and returns ErrShapeMismatch. Use
// StructuralEqual where a total predicate is required.
//
// Complexity: O(r*c), early exit on the first differing element.
func (m *Dense) Equal(o *Dense) (bool, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range m.data {
		if !(math.Abs(m.data[idx]-o.data[idx]) < EqualityTolerance) {
			return false, nil
		}
	}

	return true, nil
}

// StructuralEqual is the total form of Equal: it returns false, instead of an
// error, for differently shaped or empty operands. Two empty matrices are
// not equal.
func (m *Dense) StructuralEqual(o *Dense) bool {
	eq, err := m.Equal(o)

	return err == nil && eq
}

// Transpose returns a new cols×rows matrix with out[j][i] = m[i][j].
// The receiver is never mutated.
//
// Errors:
//   - ErrInvalidShape when m is empty.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	buf, err := allocate(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → buf[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			buf[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return &Dense{r: cols, c: rows, data: buf}, nil
}
