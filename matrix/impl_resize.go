// SPDX-License-Identifier: MIT

package matrix

// SetRows resizes m to n rows, keeping the column count.
// Rows [0, min(old,n)) keep their values; added rows are zero-filled; surplus
// rows are truncated. Asking for the current row count is a no-op.
//
// Implementation:
//   - Stage 1: validate n>0 and m non-empty.
//   - Stage 2: allocate the new buffer; a single copy covers the overlap because
//     rows are contiguous in row-major order.
//   - Stage 3: swap the buffer in (the receiver is untouched on failure).
//
// Errors:
//   - ErrInvalidShape (n<=0 or empty receiver), ErrAllocation.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if n <= 0 {
		return matrixErrorf(opSetRows, ErrInvalidShape)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return matrixErrorf(opSetRows, err)
	}
	if n == m.r {
		return nil
	}

	buf, err := allocate(n, m.c)
	if err != nil {
		return matrixErrorf(opSetRows, err)
	}
	keep := min(n, m.r)
	copy(buf, m.data[:keep*m.c])
	m.r, m.data = n, buf

	return nil
}

// SetCols resizes m to n columns, keeping the row count.
// Columns [0, min(old,n)) keep their values; added columns are zero-filled;
// surplus columns are truncated. Asking for the current column count is a no-op.
//
// Errors:
//   - ErrInvalidShape (n<=0 or empty receiver), ErrAllocation.
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if n <= 0 {
		return matrixErrorf(opSetCols, ErrInvalidShape)
	}
	if err := ValidateNotEmpty(m); err != nil {
		return matrixErrorf(opSetCols, err)
	}
	if n == m.c {
		return nil
	}

	buf, err := allocate(m.r, n)
	if err != nil {
		return matrixErrorf(opSetCols, err)
	}
	keep := min(n, m.c)
	var i int
	for i = 0; i < m.r; i++ { // row by row: strides differ between old and new
		copy(buf[i*n:i*n+keep], m.data[i*m.c:i*m.c+keep])
	}
	m.c, m.data = n, buf

	return nil
}
