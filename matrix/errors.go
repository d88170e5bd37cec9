// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so the package is easy to grep
// in logs. Sentinels are wrapped exactly once at the detection site, either
// with an operation tag (matrixErrorf) or with coordinates (denseErrorf).
//
// ERROR PRIORITY (enforced in tests):
// nil receiver -> empty/invalid operand -> shape mismatch -> numeric (singular).

var (
	// ErrInvalidShape is returned when requested dimensions are non-positive,
	// when an empty (released or moved-from) matrix is used where a valid one is
	// required, or when a square matrix is required but the input is not.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrShapeMismatch indicates incompatible dimensions between two operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	// An empty operand is reported as a mismatch as well.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates that a row or column index lies outside
	// [0, Rows) × [0, Cols). Every index is out of range on an empty matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Inverse when |det| < SingularityThreshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAllocation signals that backing storage for the requested shape could
	// not be obtained (element count overflow or a rejected allocation).
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrNilMatrix indicates that a mutating method was called on a nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method context and coordinates to a sentinel error.
// Output shape: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
