// SPDX-License-Identifier: MIT
// Package: zmat
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/finite checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).

package zmat

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Keeps a stable "Tag: underlying" shape for uniform reporting.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isFinite reports whether z has finite real and imaginary parts.
func isFinite(z complex128) bool {
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsInf(re, 0) {
		return false
	}
	if math.IsNaN(im) || math.IsInf(im, 0) {
		return false
	}

	return true
}

// validateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func validateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func validateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows for matrix multiplication.
// Complexity: O(1).
func validateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func validateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateVecDim checks that the vector dimension matches want.
// Complexity: O(1).
func validateVecDim(v Vector, want int) error {
	if v.Dim() != want {
		return validatorErrorf("ValidateVecDim", ErrDimensionMismatch)
	}

	return nil
}

// validateFinite rejects NaN/±Inf components at ingestion.
// Complexity: O(len(data)).
func validateFinite(data []complex128) error {
	for i := 0; i < len(data); i++ { // fixed order, fail on first offender
		if !isFinite(data[i]) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// validateBinarySameShape is the canonical composite for binary elementwise
// kernels: NotNil(a) → NotNil(b) → SameShape(a,b).
func validateBinarySameShape(a, b *Dense) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}

	return validateSameShape(a, b)
}
