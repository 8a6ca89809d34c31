// SPDX-License-Identifier: MIT
// Package operator: sentinel error set (unified, consistent).
// All constructors and combinators return these sentinels (possibly
// wrapped with operation context); tests match them via errors.Is.

package operator

import "errors"

var (
	// ErrNilOperator indicates a nil *Operator receiver or argument.
	ErrNilOperator = errors.New("operator: nil operator")

	// ErrNotHermitian signals that a Hermitian/Observable constructor
	// received a matrix with M != M† within tolerance.
	ErrNotHermitian = errors.New("operator: matrix is not Hermitian")

	// ErrNotUnitary signals that a Unitary constructor received a matrix
	// with M†M != I within tolerance.
	ErrNotUnitary = errors.New("operator: matrix is not unitary")

	// ErrBadExponent is returned by Pow for negative exponents; operator
	// inversion is out of scope for the kernel.
	ErrBadExponent = errors.New("operator: exponent must be non-negative")

	// ErrEigenFailed signals a degenerate intermediate inside the
	// eigensolver (e.g. a deflated matrix whose dominant eigenvector
	// collapses below the degeneracy threshold).
	ErrEigenFailed = errors.New("operator: eigen decomposition failed")
)
