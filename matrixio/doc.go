// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrix.Dense values as documents.
//
// Supported formats:
//
//	yaml: a mapping with a "rows" key, one flow sequence per row.
//
//	    rows:
//	      - [1, 2]
//	      - [3, 4]
//
//	      A bare top-level sequence of rows is accepted on input as well.
//	json: {"rows": [[1, 2], [3, 4]]}, or a bare [[1, 2], [3, 4]] on input.
//	text: the Dense.String rendering, one bracketed row per line.
//
// Input is validated before a Dense is built: empty documents yield
// ErrEmptyDocument, rows of different lengths yield ErrRagged. Errors from
// package matrix propagate wrapped and still match with errors.Is.
package matrixio
