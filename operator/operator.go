// SPDX-License-Identifier: MIT
// Package operator: the Operator value type and its combinators.
// Operators are immutable value objects: every combinator returns a new
// Operator and never mutates its operands. The content fingerprint is a
// pure function of the numeric contents, used for audit/bookkeeping only;
// it is strictly separate from Equal, which governs physical correctness
// via floating-point tolerance.

package operator

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/quantara/quanta/zmat"
)

// Operator is a square-matrix-backed linear map over zmat.Vector.
type Operator struct {
	mat  *zmat.Dense // square backing matrix, never mutated
	name string      // identity tag for reporting
	fp   string      // content-derived fingerprint (hex SHA-256)
}

// New constructs an Operator from a square matrix and a name tag.
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Prepare): clone the backing matrix, derive the fingerprint.
// Errors: zmat.ErrNilMatrix, zmat.ErrNonSquare.
// Complexity: O(n²).
func New(m *zmat.Dense, name string) (*Operator, error) {
	if m == nil {
		return nil, fmt.Errorf("operator.New: %w", zmat.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("operator.New: %w", zmat.ErrNonSquare)
	}
	mat := m.Clone() // private copy: the operator owns its matrix

	return &Operator{mat: mat, name: name, fp: fingerprint(mat)}, nil
}

// newDerived wraps a kernel result whose squareness is already known.
func newDerived(m *zmat.Dense, name string) *Operator {
	return &Operator{mat: m, name: name, fp: fingerprint(m)}
}

// fingerprint hashes the canonical numeric content (dimension, then
// row-major float64 bit patterns) into hex SHA-256. Pure and
// deterministic; equal contents hash equal, nothing more.
func fingerprint(m *zmat.Dense) string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m.Rows()))
	h.Write(buf[:])
	var i, j int
	var v complex128
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices in range by construction
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(real(v)))
			h.Write(buf[:])
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(imag(v)))
			h.Write(buf[:])
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Dim returns the operator dimension. Complexity: O(1).
func (a *Operator) Dim() int { return a.mat.Rows() }

// Name returns the identity tag.
func (a *Operator) Name() string { return a.name }

// Fingerprint returns the content-derived hex digest. Bookkeeping only:
// use Equal for physical comparison.
func (a *Operator) Fingerprint() string { return a.fp }

// Matrix returns the backing matrix. Dense is immutable, so sharing the
// reference is safe.
func (a *Operator) Matrix() *zmat.Dense { return a.mat }

// Apply computes A|ψ⟩.
// Errors: zmat.ErrDimensionMismatch when state dimension != Dim.
// Complexity: O(n²).
func (a *Operator) Apply(state zmat.Vector) (zmat.Vector, error) {
	return zmat.MatVec(a.mat, state)
}

// Add returns A + B.
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
func (a *Operator) Add(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, fmt.Errorf("Operator.Add: %w", ErrNilOperator)
	}
	sum, err := zmat.Add(a.mat, b.mat)
	if err != nil {
		return nil, fmt.Errorf("Operator.Add: %w", err)
	}

	return newDerived(sum, a.name+"+"+b.name), nil
}

// Sub returns A − B.
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
func (a *Operator) Sub(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, fmt.Errorf("Operator.Sub: %w", ErrNilOperator)
	}
	diff, err := zmat.Sub(a.mat, b.mat)
	if err != nil {
		return nil, fmt.Errorf("Operator.Sub: %w", err)
	}

	return newDerived(diff, a.name+"-"+b.name), nil
}

// Mul returns the operator product A·B (composition, B first).
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
func (a *Operator) Mul(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, fmt.Errorf("Operator.Mul: %w", ErrNilOperator)
	}
	prod, err := zmat.Mul(a.mat, b.mat)
	if err != nil {
		return nil, fmt.Errorf("Operator.Mul: %w", err)
	}

	return newDerived(prod, a.name+"*"+b.name), nil
}

// Scale returns α·A.
func (a *Operator) Scale(alpha complex128) *Operator {
	scaled, _ := zmat.Scale(a.mat, alpha) // receiver is non-nil by construction

	return newDerived(scaled, a.name)
}

// Dagger returns the adjoint (conjugate transpose) A†.
func (a *Operator) Dagger() *Operator {
	adj, _ := zmat.ConjTranspose(a.mat) // receiver is non-nil by construction

	return newDerived(adj, a.name+"†")
}

// Pow returns Aⁿ for n ≥ 0 (A⁰ = I).
// Implementation: iterated multiplication in fixed order; the kernel's
// dimensions are small enough that exponentiation-by-squaring buys
// nothing over determinism.
// Errors: ErrBadExponent for n < 0.
// Complexity: O(n·d³).
func (a *Operator) Pow(n int) (*Operator, error) {
	if n < 0 {
		return nil, fmt.Errorf("Operator.Pow(%d): %w", n, ErrBadExponent)
	}
	acc, _ := zmat.Identity(a.Dim())
	var err error
	for i := 0; i < n; i++ {
		if acc, err = zmat.Mul(acc, a.mat); err != nil {
			return nil, fmt.Errorf("Operator.Pow(%d): %w", n, err)
		}
	}

	return newDerived(acc, fmt.Sprintf("%s^%d", a.name, n)), nil
}

// Exp returns the truncated series exponential Σ_{k<terms} Aᵏ/k!.
//
// The term count is FIXED (DefaultExpTerms, override via WithExpTerms);
// there is no convergence check. For operators with moderate norm the
// default budget is ample (‖A‖ ≤ 1 gives ~1/20! truncation error); large
// norms degrade accuracy silently — a documented tradeoff.
//
// Complexity: O(terms·d³).
func (a *Operator) Exp(opts ...Option) *Operator {
	cfg := gatherOptions(opts...)
	n := a.Dim()
	sum, _ := zmat.Identity(n)  // k = 0 term
	term, _ := zmat.Identity(n) // running Aᵏ/k!
	for k := 1; k < cfg.expTerms; k++ {
		term, _ = zmat.Mul(term, a.mat) // square operands: cannot mismatch
		term, _ = zmat.Scale(term, complex(1.0/float64(k), 0))
		sum, _ = zmat.Add(sum, term)
	}

	return newDerived(sum, "exp("+a.name+")")
}

// Trace returns Σ A[i,i].
func (a *Operator) Trace() complex128 {
	tr, _ := zmat.Trace(a.mat) // square by construction

	return tr
}

// Det returns the determinant (closed forms up to 3×3; diagonal-product
// fallback above — see zmat.Det for the documented limitation).
func (a *Operator) Det() complex128 {
	d, _ := zmat.Det(a.mat) // square by construction

	return d
}

// Norm returns the Frobenius norm of the backing matrix.
func (a *Operator) Norm() float64 {
	n, _ := zmat.FrobeniusNorm(a.mat) // non-nil by construction

	return n
}

// Equal reports elementwise equality within absolute tolerance tol.
// Name tags and fingerprints are ignored: equality is physical.
func (a *Operator) Equal(b *Operator, tol float64) bool {
	if b == nil {
		return false
	}

	return a.mat.Equal(b.mat, tol)
}

// IsHermitian reports A = A† within tol.
func (a *Operator) IsHermitian(tol float64) bool {
	return a.mat.Equal(a.Dagger().mat, tol)
}

// IsUnitary reports A†A = I within tol.
func (a *Operator) IsUnitary(tol float64) bool {
	prod, err := zmat.Mul(a.Dagger().mat, a.mat)
	if err != nil {
		return false
	}
	id, _ := zmat.Identity(a.Dim())

	return prod.Equal(id, tol)
}

// IsProjection reports A² = A within tol (idempotence).
func (a *Operator) IsProjection(tol float64) bool {
	sq, err := zmat.Mul(a.mat, a.mat)
	if err != nil {
		return false
	}

	return sq.Equal(a.mat, tol)
}

// IsIdentity reports A = I within tol.
func (a *Operator) IsIdentity(tol float64) bool {
	id, _ := zmat.Identity(a.Dim())

	return a.mat.Equal(id, tol)
}

// IsZero reports ‖A‖ < tol in Frobenius norm.
func (a *Operator) IsZero(tol float64) bool {
	return a.Norm() < tol
}

// Expectation computes ⟨ψ|A|ψ⟩.
// The full complex value is returned: it is real for Hermitian A, purely
// imaginary for commutators of Hermitian pairs.
// Errors: zmat.ErrDimensionMismatch.
// Complexity: O(n²).
func (a *Operator) Expectation(state zmat.Vector) (complex128, error) {
	applied, err := a.Apply(state)
	if err != nil {
		return 0, fmt.Errorf("Operator.Expectation: %w", err)
	}
	exp, err := zmat.Inner(state, applied)
	if err != nil {
		return 0, fmt.Errorf("Operator.Expectation: %w", err)
	}

	return exp, nil
}

// Variance computes ⟨A²⟩ − ⟨A⟩² over the real parts of the quadratic
// forms (exact for Hermitian operators, whose forms are real).
// Errors: zmat.ErrDimensionMismatch.
// Complexity: O(n²).
func (a *Operator) Variance(state zmat.Vector) (float64, error) {
	applied, err := a.Apply(state)
	if err != nil {
		return 0, fmt.Errorf("Operator.Variance: %w", err)
	}
	appliedTwice, err := a.Apply(applied)
	if err != nil {
		return 0, fmt.Errorf("Operator.Variance: %w", err)
	}
	sqExp, err := zmat.Inner(state, appliedTwice)
	if err != nil {
		return 0, fmt.Errorf("Operator.Variance: %w", err)
	}
	exp, err := zmat.Inner(state, applied)
	if err != nil {
		return 0, fmt.Errorf("Operator.Variance: %w", err)
	}

	return real(sqExp) - real(exp)*real(exp), nil
}

// StdDev computes sqrt(|variance|). The absolute value guards against
// rounding-induced small negatives near eigenstates.
// Errors: zmat.ErrDimensionMismatch.
func (a *Operator) StdDev(state zmat.Vector) (float64, error) {
	v, err := a.Variance(state)
	if err != nil {
		return 0, fmt.Errorf("Operator.StdDev: %w", err)
	}

	return math.Sqrt(math.Abs(v)), nil
}

// String implements fmt.Stringer for debugging.
func (a *Operator) String() string {
	return fmt.Sprintf("Operator(%s, dim=%d)", a.name, a.Dim())
}

// absSq returns |z|² without the cmplx.Abs square root.
func absSq(z complex128) float64 {
	re, im := real(z), imag(z)

	return re*re + im*im
}
