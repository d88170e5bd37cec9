// SPDX-License-Identifier: MIT

// Package matrix provides Dense, an owned row-major matrix of float64 values
// with value semantics, arithmetic, and the classical cofactor-based
// determinant / adjugate / inverse family.
//
// What & Why:
//
//	Dense stores rows×cols elements in one flat slice (offset i*cols + j).
//	Every Dense exclusively owns its buffer: Clone and CopyFrom deep-copy,
//	Move and MoveFrom transfer the buffer and leave the source empty.
//	An empty Dense (0×0, no storage) is the only legal moved-from or released
//	state; every operation that needs elements fails on it.
//
// Operations:
//
//   - Construction: NewDense, NewDefault, NewIdentity, NewFromRows.
//   - Lifecycle:    Clone, CopyFrom, Move, MoveFrom, Release.
//   - Structure:    Rows, Cols, Shape, IsValid, SetRows, SetCols.
//   - Access:       At, Set, Ref (live *float64 handle), ToRows, Do, String.
//   - Arithmetic:   Add/AddInPlace, Sub/SubInPlace, Scale/ScaleInPlace,
//     Mul/MulInPlace. Copying and in-place forms share one validated kernel.
//   - Comparison:   Equal (checked, errors on shape mismatch) and
//     StructuralEqual (total, returns false instead).
//   - Algebra:      Transpose, Determinant, CalcComplements, Inverse.
//
// Numeric policy:
//
//	Equality uses an absolute tolerance of EqualityTolerance (1e-7).
//	Inverse refuses matrices with |det| < SingularityThreshold (1e-6).
//	Determinant uses Laplace expansion along the first row, O(n!) in the
//	dimension. It is exact in the algebraic sense and meant for small n.
//
// Errors:
//
//	All failures are sentinels from errors.go (ErrInvalidShape,
//	ErrShapeMismatch, ErrIndexOutOfRange, ErrSingular, ErrAllocation,
//	ErrNilMatrix), wrapped with an operation tag. Match them with errors.Is.
//
// Concurrency:
//
//	Dense carries no locks. Share a Dense across goroutines only under
//	external synchronization.
package matrix
