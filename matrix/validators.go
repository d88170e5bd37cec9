// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating empty/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing beyond the error value.
//
// Note:
//  - A nil *Dense is treated exactly like an empty one.
//  - Composite validators follow a fixed sequence (NotEmpty → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotEmpty ensures m is a valid (non-empty, non-nil) matrix.
//
// Returns ErrInvalidShape if m is nil, released, or moved-from.
// Complexity: O(1).
func ValidateNotEmpty(m *Dense) error {
	if !m.IsValid() {
		return validatorErrorf("ValidateNotEmpty", ErrInvalidShape)
	}

	return nil
}

// ValidateSquare checks that m is valid and square (Rows == Cols).
//
// Errors: ErrInvalidShape for both conditions; the determinant family has no
// second operand to mismatch against.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotEmpty(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrInvalidShape)
	}

	return nil
}

// ValidateSameShape checks that a and b are both valid and identically shaped.
//
// Errors: ErrShapeMismatch, also when either operand is empty.
// Complexity: O(1).
// Use for Add/Sub/Equal.
func ValidateSameShape(a, b *Dense) error {
	if !a.IsValid() || !b.IsValid() {
		return validatorErrorf("ValidateSameShape: empty operand", ErrShapeMismatch)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows with both operands valid.
//
// Errors: ErrShapeMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if !a.IsValid() || !b.IsValid() {
		return validatorErrorf("ValidateMulCompatible: empty operand", ErrShapeMismatch)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}
