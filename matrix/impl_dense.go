// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide an owned, cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Express copy / move / release through Go values instead of manual allocate/free pairing.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom: O(r*c); Move/MoveFrom/Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRef = "Ref" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix that exclusively owns its storage.
//   - r,c hold dimensions (rows, cols); both are 0 only in the empty state.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value (and a nil *Dense) is the empty/invalid state.
type Dense struct {
	r, c int       // row and column counts (>=1 when valid; 0,0 when empty)
	data []float64 // contiguous row-major storage (len == r*c), nil when empty
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// allocate returns a zero-filled buffer for a rows×cols matrix.
// MAIN DESCRIPTION:
//   - Single point where storage is obtained, so every constructor and resize
//     shares one shape contract and one allocation-failure signal.
//
// Implementation:
//   - Stage 1: reject rows<=0 || cols<=0 with ErrInvalidShape.
//   - Stage 2: reject rows*cols overflow with ErrAllocation.
//   - Stage 3: make() the buffer; a runtime refusal (len out of range) is
//     recovered and reported as ErrAllocation.
//
// Errors:
//   - ErrInvalidShape, ErrAllocation.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func allocate(rows, cols int) (buf []float64, err error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	if rows > math.MaxInt/cols {
		return nil, ErrAllocation
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrAllocation
		}
	}()

	return make([]float64, rows*cols), nil
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer (ErrAllocation on refusal).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions; the empty state is reachable
//     only through Move/MoveFrom/Release.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//   - ErrAllocation (element count overflow or refused allocation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	buf, err := allocate(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDefault returns a 1×1 zero matrix; equivalent to NewDense(1, 1).
// Complexity: O(1).
func NewDefault() *Dense {
	return &Dense{r: 1, c: 1, data: make([]float64, 1)}
}

// Rows returns the row count (0 for an empty or nil matrix).
// Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for an empty or nil matrix).
// Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsValid reports whether m holds a rows≥1, cols≥1 buffer of exactly rows*cols elements.
// Complexity: O(1).
func (m *Dense) IsValid() bool {
	return m != nil && m.r > 0 && m.c > 0 && len(m.data) == m.r*m.c
}

// ---------- Lifecycle ----------

// Clone returns an independent deep copy (copy construction).
// MAIN DESCRIPTION:
//   - Produce a Dense with identical shape and values and its own buffer.
//
// Behavior highlights:
//   - Independence: mutations of the clone never affect the original.
//
// Errors:
//   - ErrInvalidShape when m is empty (nothing to copy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if err := ValidateNotEmpty(m); err != nil {
		return nil, matrixErrorf(opClone, err)
	}

	return m.cloneUnchecked(), nil
}

// cloneUnchecked deep-copies a matrix already known to be valid.
func (m *Dense) cloneUnchecked() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces the contents of m with a deep copy of src (copy assignment).
// MAIN DESCRIPTION:
//   - Release the receiver's prior buffer, then copy shape and values of src.
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: validate receiver non-nil and src non-empty before touching m.
//   - Stage 3: allocate a fresh buffer, copy, then swap it in.
//
// Behavior highlights:
//   - On failure the receiver is left exactly as it was.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrInvalidShape (empty src).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if m == src {
		return nil
	}
	if m == nil {
		return matrixErrorf(opCopyFrom, ErrNilMatrix)
	}
	if err := ValidateNotEmpty(src); err != nil {
		return matrixErrorf(opCopyFrom, err)
	}

	cp := src.cloneUnchecked()
	m.r, m.c, m.data = cp.r, cp.c, cp.data

	return nil
}

// Move transfers ownership of src's storage into a new Dense (move construction).
// src is left empty (0×0, no storage). A nil or empty src yields an empty Dense.
// Complexity: O(1).
func Move(src *Dense) *Dense {
	if src == nil {
		return &Dense{}
	}
	dst := &Dense{r: src.r, c: src.c, data: src.data}
	src.Release()

	return dst
}

// MoveFrom transfers ownership of src's storage into m (move assignment).
// The receiver's prior buffer is dropped and src is left empty.
// Moving from itself is a no-op; moving from nil or an empty src empties m.
//
// Errors:
//   - ErrNilMatrix when the receiver is nil.
//
// Complexity: O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if m == src {
		return nil
	}
	if m == nil {
		return matrixErrorf(opMoveFrom, ErrNilMatrix)
	}
	if src == nil {
		m.Release()
		return nil
	}
	m.r, m.c, m.data = src.r, src.c, src.data
	src.Release()

	return nil
}

// Release drops the storage and puts m into the empty state.
// Releasing twice (or releasing nil) is harmless.
// Complexity: O(1).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
}

// ---------- Element access ----------

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set/Ref) wrap with coordinates.
//   - On an empty matrix r == c == 0, so every index is rejected.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrIndexOutOfRange
	}
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at zero-based coordinates.
//
// Errors:
//   - ErrIndexOutOfRange when out of bounds or when m is empty.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ref returns a live handle to the element at (row, col), so a caller can both
// read and write through one call: `p, _ := m.Ref(1, 1); *p += 2`.
//
// The handle is valid until the next structural change of m (SetRows, SetCols,
// MulInPlace, CopyFrom, MoveFrom, Release); after that it points into a buffer
// m no longer owns.
//
// Errors:
//   - ErrIndexOutOfRange when out of bounds or when m is empty.
//
// Complexity: O(1).
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// ToRows exports the elements as a freshly allocated [][]float64 (one slice per row).
// An empty matrix yields nil.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	if !m.IsValid() {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false. Does nothing on an empty matrix.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if !m.IsValid() {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as lines with comma-separated values in %g form,
// e.g. "[1, 2]\n[3, 4]\n". An empty matrix renders as "".
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	return m.FormatPrec(-1)
}

// FormatPrec renders like String with strconv 'g' formatting at the given precision
// (-1 selects the shortest representation that round-trips).
func (m *Dense) FormatPrec(precision int) string {
	if !m.IsValid() {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', precision, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
