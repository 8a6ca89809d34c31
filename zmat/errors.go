// SPDX-License-Identifier: MIT
// Package zmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the zmat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package zmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "zmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the facade — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid: zero or
	// negative dimensions, empty component lists, or ragged row data.
	ErrBadShape = errors.New("zmat: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or component) is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("zmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, Mul where
	// a.Cols != b.Rows, or MatVec where len(x) != m.Cols.
	ErrDimensionMismatch = errors.New("zmat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (trace,
	// determinant, operator backing store) but the input was not.
	ErrNonSquare = errors.New("zmat: matrix is not square")

	// ErrDegenerate signals a degenerate input: normalizing a vector whose
	// norm is below DegenerateNorm.
	ErrDegenerate = errors.New("zmat: degenerate input")

	// ErrNaNInf signals that a NaN or ±Inf component was encountered where
	// finite values are required (all construction paths).
	ErrNaNInf = errors.New("zmat: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed to a kernel.
	ErrNilMatrix = errors.New("zmat: nil matrix")
)
