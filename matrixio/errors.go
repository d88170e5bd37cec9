// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrUnknownFormat is returned for a format name or file extension that is
	// not one of yaml, json, text.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrEmptyDocument is returned when a document holds no rows.
	ErrEmptyDocument = errors.New("matrixio: document has no rows")

	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("matrixio: rows have different lengths")

	// ErrSyntax is returned for malformed text-format input.
	ErrSyntax = errors.New("matrixio: syntax error")
)
