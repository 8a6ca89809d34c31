// SPDX-License-Identifier: MIT
// Package zmat: canonical linear-algebra kernels over Dense.
// All kernels perform strict fail-fast validation, allocate exactly one
// fresh result, and traverse in fixed loop orders so results are
// bit-for-bit reproducible. Operands are never mutated.

package zmat

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opScale         = "Scale"
	opMatVec        = "MatVec"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
	opDet           = "Det"
	opFrobenius     = "FrobeniusNorm"
)

// zmatErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching. Call only with err != nil.
func zmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, −1}.
// Internal helper for Add/Sub to share validation and allocation.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := validateBinarySameShape(a, b); err != nil {
		return nil, zmatErrorf(opTag, err)
	}
	out := newZero(a.r, a.c)
	n := a.r * a.c
	for idx := 0; idx < n; idx++ { // deterministic flat 0..n-1
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Add computes the elementwise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes the elementwise difference C = A − B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs matrix multiplication C = A × B (no aliasing).
// Implementation: fixed i→k→j loop order over the flat row-major slices,
// skipping zero A[i,k] entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, zmatErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, zmatErrorf(opMul, err)
	}
	if err := validateMulCompatible(a, b); err != nil {
		return nil, zmatErrorf(opMul, err)
	}

	out := newZero(a.r, b.c)
	var (
		i, j, k                          int
		av                               complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				out.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return out, nil
}

// Scale returns a fresh Dense with elements alpha·m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, zmatErrorf(opScale, err)
	}
	out := newZero(m.r, m.c)
	n := m.r * m.c
	for idx := 0; idx < n; idx++ {
		out.data[idx] = alpha * m.data[idx]
	}

	return out, nil
}

// MatVec computes y = m·x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m *Dense, x Vector) (Vector, error) {
	if err := validateNotNil(m); err != nil {
		return Vector{}, zmatErrorf(opMatVec, err)
	}
	if err := validateVecDim(x, m.c); err != nil {
		return Vector{}, zmatErrorf(opMatVec, err)
	}
	y := make([]complex128, m.r)
	var i, j, base int
	var acc complex128
	for i = 0; i < m.r; i++ { // fixed i→j order
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x.data[j]
		}
		y[i] = acc
	}

	return Vector{data: y}, nil
}

// ConjTranspose returns the conjugate transpose M†: out[j,i] = conj(m[i,j]).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, zmatErrorf(opConjTranspose, err)
	}
	out := newZero(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[base+j])
		}
	}

	return out, nil
}

// Trace returns Σ m[i,i] for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m *Dense) (complex128, error) {
	if err := validateNotNil(m); err != nil {
		return 0, zmatErrorf(opTrace, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, zmatErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.r+i]
	}

	return sum, nil
}

// Det returns the determinant of a square matrix.
//
// Closed forms are used up to 3×3. Above 3×3 the kernel falls back to the
// product of diagonal entries — a documented simplification, NOT a general
// LU determinant; it is exact only for (block-)triangular inputs. The
// quantum kernel never needs a general determinant beyond dimension 3
// (eigenvalue extraction is spectral, see package operator).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1) for n ≤ 3, O(n) above.
func Det(m *Dense) (complex128, error) {
	if err := validateNotNil(m); err != nil {
		return 0, zmatErrorf(opDet, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, zmatErrorf(opDet, err)
	}

	d := m.data
	switch m.r {
	case 1:
		return d[0], nil
	case 2:
		// ad − bc
		return d[0]*d[3] - d[1]*d[2], nil
	case 3:
		// Sarrus rule.
		return d[0]*(d[4]*d[8]-d[5]*d[7]) -
			d[1]*(d[3]*d[8]-d[5]*d[6]) +
			d[2]*(d[3]*d[7]-d[4]*d[6]), nil
	default:
		// Simplified diagonal-product fallback (documented limitation).
		prod := complex128(1)
		for i := 0; i < m.r; i++ {
			prod *= d[i*m.r+i]
		}

		return prod, nil
	}
}

// FrobeniusNorm returns sqrt(Σ|m[i,j]|²).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m *Dense) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, zmatErrorf(opFrobenius, err)
	}
	var sum, re, im float64
	for idx := 0; idx < len(m.data); idx++ { // flat deterministic walk
		re, im = real(m.data[idx]), imag(m.data[idx])
		sum += re*re + im*im
	}

	return math.Sqrt(sum), nil
}

// Equal reports elementwise equality within absolute tolerance tol.
// Matrices of different shape are never equal. Complexity: O(r*c).
func (m *Dense) Equal(other *Dense, tol float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for idx := 0; idx < len(m.data); idx++ {
		if cmplx.Abs(m.data[idx]-other.data[idx]) > tol {
			return false
		}
	}

	return true
}
