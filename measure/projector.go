// SPDX-License-Identifier: MIT
// Package measure: orthogonal projectors.
// A Projector is the primitive every measurement in this package reduces
// to: Born probabilities are ⟨ψ|P|ψ⟩ and collapse is normalize(P|ψ⟩).

package measure

import (
	"fmt"
	"math"

	"github.com/quantara/quanta/zmat"
)

// Projector is an orthogonal projector P (Hermitian, P² = P).
// Immutable after construction.
type Projector struct {
	mat  *zmat.Dense
	rank int
}

// NewProjector builds the rank-1 projector P = |ψ⟩⟨ψ|. The input is
// normalized first, so any non-degenerate vector is accepted.
// Errors: zmat.ErrDegenerate (‖ψ‖ ~ 0), zmat.ErrBadShape.
// Complexity: O(n²).
func NewProjector(psi zmat.Vector) (*Projector, error) {
	unit, err := psi.Normalize()
	if err != nil {
		return nil, fmt.Errorf("NewProjector: %w", err)
	}
	m, err := zmat.Outer(unit, unit)
	if err != nil {
		return nil, fmt.Errorf("NewProjector: %w", err)
	}

	return &Projector{mat: m, rank: 1}, nil
}

// NewSubspaceProjector builds P = Σᵢ |uᵢ⟩⟨uᵢ| over an orthonormal basis
// of a subspace. The orthonormality requirement is VERIFIED (P² = P
// within tol), not assumed.
// Errors: zmat.ErrBadShape (no basis vectors), zmat.ErrDimensionMismatch,
// ErrNotProjector (basis not orthonormal).
// Complexity: O(k·n² + n³) for the idempotency check.
func NewSubspaceProjector(tol float64, basis ...zmat.Vector) (*Projector, error) {
	if len(basis) == 0 {
		return nil, fmt.Errorf("NewSubspaceProjector: %w", zmat.ErrBadShape)
	}
	sum, err := zmat.Outer(basis[0], basis[0])
	if err != nil {
		return nil, fmt.Errorf("NewSubspaceProjector: %w", err)
	}
	var i int
	for i = 1; i < len(basis); i++ {
		term, err := zmat.Outer(basis[i], basis[i])
		if err != nil {
			return nil, fmt.Errorf("NewSubspaceProjector: %w", err)
		}
		if sum, err = zmat.Add(sum, term); err != nil {
			return nil, fmt.Errorf("NewSubspaceProjector: %w", err)
		}
	}
	p := &Projector{mat: sum, rank: len(basis)}
	if !p.IsValid(tol) {
		return nil, fmt.Errorf("NewSubspaceProjector: %w", ErrNotProjector)
	}

	return p, nil
}

// Matrix returns the projector matrix (immutable; do not assume
// otherwise).
func (p *Projector) Matrix() *zmat.Dense { return p.mat }

// Rank returns the dimension of the projected subspace.
func (p *Projector) Rank() int { return p.rank }

// Dim returns the ambient dimension.
func (p *Projector) Dim() int { return p.mat.Rows() }

// IsValid reports idempotency: ‖P² − P‖_F < tol. Hermiticity follows
// from the construction (sums of |u⟩⟨u| terms).
func (p *Projector) IsValid(tol float64) bool {
	sq, err := zmat.Mul(p.mat, p.mat)
	if err != nil {
		return false
	}
	diff, err := zmat.Sub(sq, p.mat)
	if err != nil {
		return false
	}
	norm, err := zmat.FrobeniusNorm(diff)
	if err != nil {
		return false
	}

	return norm < tol
}

// Apply returns P|ψ⟩ (unnormalized).
// Errors: zmat.ErrDimensionMismatch.
func (p *Projector) Apply(state zmat.Vector) (zmat.Vector, error) {
	out, err := zmat.MatVec(p.mat, state)
	if err != nil {
		return zmat.Vector{}, fmt.Errorf("Projector.Apply: %w", err)
	}

	return out, nil
}

// Probability returns the Born probability ⟨ψ|P|ψ⟩ = ‖P|ψ⟩‖², clamped
// to [0,1] against rounding. The state must be normalized for the result
// to be a probability.
// Errors: zmat.ErrDimensionMismatch.
func (p *Projector) Probability(state zmat.Vector) (float64, error) {
	proj, err := p.Apply(state)
	if err != nil {
		return 0, fmt.Errorf("Projector.Probability: %w", err)
	}
	n := proj.Norm()

	return clamp01(n * n), nil
}

// Collapse returns the post-measurement state normalize(P|ψ⟩). When the
// outcome probability is below CollapseFloor the INPUT state is returned
// unchanged: the collapse direction is numerically meaningless there.
// Errors: zmat.ErrDimensionMismatch.
func (p *Projector) Collapse(state zmat.Vector) (zmat.Vector, error) {
	proj, err := p.Apply(state)
	if err != nil {
		return zmat.Vector{}, fmt.Errorf("Projector.Collapse: %w", err)
	}
	n := proj.Norm()
	if n*n <= CollapseFloor {
		return state, nil
	}
	unit, err := proj.Normalize()
	if err != nil {
		return state, nil // same floor, caught by Normalize first
	}

	return unit, nil
}

// clamp01 pins a probability into [0,1]; rounding in ‖P|ψ⟩‖² can step
// a hair outside.
func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}

	return p
}
