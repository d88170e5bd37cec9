// SPDX-License-Identifier: MIT

// Package densemat is a small dense linear-algebra toolkit for real-valued
// matrices.
//
// Under the hood the module is organized as:
//
//	matrix/       Dense type, arithmetic, transpose, determinant, cofactors, inverse
//	matrixio/     yaml / json / text documents for Dense values
//	config/       matcalc settings loaded over defaults
//	cmd/matcalc/  command-line front end
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := a.Inverse()
//	if errors.Is(err, matrix.ErrSingular) {
//		// no inverse
//	}
//	fmt.Print(inv)
//
// All operations are deterministic and single-threaded; a Dense is not safe
// for concurrent mutation.
package densemat
