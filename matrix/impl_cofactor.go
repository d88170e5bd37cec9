// SPDX-License-Identifier: MIT
// Package matrix: determinant, cofactor (adjugate) matrix and inverse.
//
// Purpose:
//   - Laplace (cofactor) expansion along the first row, recursing on minors.
//   - Cofactor matrix and inverse built on the same recursion.
//
// Determinism & Complexity:
//   - Pure functions over flat row-major slices; every recursive call works on a
//     freshly materialized minor, so no state outlives the call stack.
//   - Determinant costs O(n!) time; use it for small n only. No LU shortcut is
//     taken: results follow the expansion exactly, including its rounding.

package matrix

import "math"

// SingularityThreshold is the |det| below which Inverse reports ErrSingular.
const SingularityThreshold = 1e-6

// minorOf returns the (n-1)×(n-1) submatrix of the n×n row-major slice a with
// row skipRow and column skipCol removed. Remaining rows and columns keep
// their relative order. Requires n >= 2 and in-range skip indices.
//
// Complexity: Time O(n^2), Space O((n-1)^2).
func minorOf(a []float64, n, skipRow, skipCol int) []float64 {
	d := n - 1
	out := make([]float64, d*d)
	var i, j, k int
	for i = 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		row := a[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			out[k] = row[j]
			k++
		}
	}

	return out
}

// cofactorSign returns (-1)^p.
func cofactorSign(p int) float64 {
	if p%2 == 0 {
		return 1
	}

	return -1
}

// laplaceDet computes the determinant of the n×n row-major slice a.
//
// Implementation:
//   - n == 1: the single element.
//   - n == 2: a·d − b·c.
//   - n >= 3: Σ_f a[0][f] · (−1)^f · det(minor(0, f)).
//
// Complexity: O(n!) time, O(n^2) live memory along the recursion path.
func laplaceDet(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[1]*a[2]
	}

	det := ZeroSum
	var f int
	for f = 0; f < n; f++ {
		det += a[f] * laplaceDet(minorOf(a, n, 0, f), n-1) * cofactorSign(f)
	}

	return det
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Errors:
//   - ErrInvalidShape when m is empty or not square.
//
// Complexity:
//   - Time O(n!). Beyond roughly n=10 this becomes impractical.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplaceDet(m.data, m.r), nil
}

// CalcComplements returns the matrix of cofactors C[i,j] = (−1)^(i+j)·det(minor(i,j)).
// For a 1×1 matrix the result is [[1]].
//
// Errors:
//   - ErrInvalidShape when m is empty or not square.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) CalcComplements() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}

	return complements(m.data, m.r), nil
}

// complements builds the cofactor matrix of the n×n row-major slice a.
func complements(a []float64, n int) *Dense {
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	if n == 1 {
		out.data[0] = 1
		return out
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = cofactorSign(i+j) * laplaceDet(minorOf(a, n, i, j), n-1)
		}
	}

	return out
}

// Inverse returns m⁻¹ = adj(m) / det(m).
//
// Implementation:
//   - Stage 1: ValidateSquare(m); det = Determinant(m).
//   - Stage 2: |det| < SingularityThreshold → ErrSingular.
//   - Stage 3: n == 1 → [[1/a00]]; otherwise the cofactor matrix of mᵀ (the
//     adjugate) scaled element-wise by 1/det.
//
// Errors:
//   - ErrInvalidShape (empty or non-square), ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)! + n!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	det := laplaceDet(m.data, n)
	if math.Abs(det) < SingularityThreshold {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	if n == 1 {
		return &Dense{r: 1, c: 1, data: []float64{1.0 / m.data[0]}}, nil
	}

	t, err := m.Transpose()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj := complements(t.data, n)
	inv := 1 / det
	for idx := range adj.data {
		adj.data[idx] *= inv
	}

	return adj, nil
}
