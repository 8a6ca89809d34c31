// SPDX-License-Identifier: MIT
// Package operator: constructor-validated specializations.
// The constructors below are the kernel's primary defense against
// physically invalid operators: the defining invariant is checked exactly
// once, at construction, and immutability guarantees it is never broken
// afterwards. Reject early, assume forever.

package operator

import (
	"fmt"

	"github.com/quantara/quanta/zmat"
)

// Hermitian is an Operator with the invariant M = M†, checked at
// construction. Hermitian operators have real eigenvalues and represent
// physical observables.
type Hermitian struct {
	*Operator
}

// NewHermitian constructs a Hermitian operator.
// Stage 1 (Validate): square (via New), then M = M† within tolerance.
// Errors: zmat.ErrNilMatrix, zmat.ErrNonSquare, ErrNotHermitian.
// Complexity: O(n²).
func NewHermitian(m *zmat.Dense, name string, opts ...Option) (*Hermitian, error) {
	cfg := gatherOptions(opts...)
	op, err := New(m, name)
	if err != nil {
		return nil, fmt.Errorf("NewHermitian: %w", err)
	}
	if !op.IsHermitian(cfg.tol) {
		return nil, fmt.Errorf("NewHermitian(%s): %w", name, ErrNotHermitian)
	}

	return &Hermitian{Operator: op}, nil
}

// Unitary is an Operator with the invariant M†M = I, checked at
// construction. Unitary operators represent reversible evolution or a
// change of basis.
type Unitary struct {
	*Operator
}

// NewUnitary constructs a Unitary operator.
// Stage 1 (Validate): square (via New), then M†M = I within tolerance.
// Errors: zmat.ErrNilMatrix, zmat.ErrNonSquare, ErrNotUnitary.
// Complexity: O(n³) for the M†M product.
func NewUnitary(m *zmat.Dense, name string, opts ...Option) (*Unitary, error) {
	cfg := gatherOptions(opts...)
	op, err := New(m, name)
	if err != nil {
		return nil, fmt.Errorf("NewUnitary: %w", err)
	}
	if !op.IsUnitary(cfg.tol) {
		return nil, fmt.Errorf("NewUnitary(%s): %w", name, ErrNotUnitary)
	}

	return &Unitary{Operator: op}, nil
}

// Observable is a Hermitian operator with a presentation-only unit label
// (e.g. "ħ/2" for spin components). The unit carries no algebraic
// meaning.
type Observable struct {
	*Hermitian
	unit string
}

// NewObservable constructs an Observable.
// Errors: as NewHermitian.
func NewObservable(m *zmat.Dense, name, unit string, opts ...Option) (*Observable, error) {
	h, err := NewHermitian(m, name, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewObservable: %w", err)
	}

	return &Observable{Hermitian: h, unit: unit}, nil
}

// Unit returns the presentation-only unit label.
func (o *Observable) Unit() string { return o.unit }

// Symmetrize returns the Hermitian part (M + M†)/2 of a square matrix.
// Applied to an already-Hermitian M it returns M unchanged (within
// rounding): the map is idempotent.
// Errors: zmat.ErrNilMatrix, zmat.ErrNonSquare.
// Complexity: O(n²).
func Symmetrize(m *zmat.Dense) (*zmat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Symmetrize: %w", zmat.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("Symmetrize: %w", zmat.ErrNonSquare)
	}
	adj, err := zmat.ConjTranspose(m)
	if err != nil {
		return nil, fmt.Errorf("Symmetrize: %w", err)
	}
	sum, err := zmat.Add(m, adj)
	if err != nil {
		return nil, fmt.Errorf("Symmetrize: %w", err)
	}

	return zmat.Scale(sum, 0.5)
}
