// SPDX-License-Identifier: MIT
// Package measure: positive operator-valued measures.
// A POVM generalizes projective measurement: effects need not be
// projectors or mutually orthogonal, only Hermitian, positive, and
// complete (Σ Eᵢ = I). Without the Kraus operators the post-measurement
// state is NOT determined by the effects, so Measure returns none — the
// zero zmat.Vector in the outcome is the contract, not an accident.

package measure

import (
	"fmt"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// POVM is a validated positive operator-valued measure.
// Immutable after construction apart from the owned random source.
type POVM struct {
	effects []*operator.Hermitian
	cfg     options
}

// POVMOutcome is one generalized-measurement draw. PostState is always
// the zero zmat.Vector: a POVM alone does not determine collapse.
type POVMOutcome struct {
	Index       int
	Probability float64
	PostState   zmat.Vector // zero value by contract
}

// NewPOVM validates and wraps a set of effects: non-empty, non-nil,
// equal dimensions, and complete (‖Σ Eᵢ − I‖_F < tol). Positivity of
// each effect is the caller's obligation; completeness is checked here
// because an incomplete set silently breaks Σp = 1.
// Errors: zmat.ErrBadShape (empty set), operator.ErrNilOperator,
// zmat.ErrDimensionMismatch, ErrIncompleteMeasurement.
// Complexity: O(k·n²).
func NewPOVM(effects []*operator.Hermitian, opts ...Option) (*POVM, error) {
	if len(effects) == 0 {
		return nil, fmt.Errorf("NewPOVM: %w", zmat.ErrBadShape)
	}
	cfg := gatherOptions(opts...)

	var i int
	for i = 0; i < len(effects); i++ {
		if effects[i] == nil {
			return nil, fmt.Errorf("NewPOVM: effect %d: %w", i, operator.ErrNilOperator)
		}
	}
	dim := effects[0].Dim()
	sum := effects[0].Matrix()
	for i = 1; i < len(effects); i++ {
		if effects[i].Dim() != dim {
			return nil, fmt.Errorf("NewPOVM: effect %d: %w", i, zmat.ErrDimensionMismatch)
		}
		next, err := zmat.Add(sum, effects[i].Matrix())
		if err != nil {
			return nil, fmt.Errorf("NewPOVM: %w", err)
		}
		sum = next
	}
	id, err := zmat.Identity(dim)
	if err != nil {
		return nil, fmt.Errorf("NewPOVM: %w", err)
	}
	diff, err := zmat.Sub(sum, id)
	if err != nil {
		return nil, fmt.Errorf("NewPOVM: %w", err)
	}
	norm, err := zmat.FrobeniusNorm(diff)
	if err != nil {
		return nil, fmt.Errorf("NewPOVM: %w", err)
	}
	if norm >= cfg.tol {
		return nil, fmt.Errorf("NewPOVM: %w", ErrIncompleteMeasurement)
	}

	return &POVM{effects: effects, cfg: cfg}, nil
}

// Len returns the number of effects.
func (p *POVM) Len() int { return len(p.effects) }

// Dim returns the Hilbert-space dimension.
func (p *POVM) Dim() int { return p.effects[0].Dim() }

// Effect returns the i-th effect.
// Errors: zmat.ErrOutOfRange.
func (p *POVM) Effect(i int) (*operator.Hermitian, error) {
	if i < 0 || i >= len(p.effects) {
		return nil, fmt.Errorf("POVM.Effect(%d): %w", i, zmat.ErrOutOfRange)
	}

	return p.effects[i], nil
}

// Probabilities returns pᵢ = ⟨ψ|Eᵢ|ψ⟩ for every effect, clamped to
// [0,1]. Completeness makes them sum to 1 on a normalized state.
// Errors: zmat.ErrDimensionMismatch.
// Complexity: O(k·n²).
func (p *POVM) Probabilities(state zmat.Vector) ([]float64, error) {
	probs := make([]float64, len(p.effects))
	var i int
	for i = 0; i < len(p.effects); i++ {
		exp, err := p.effects[i].Expectation(state)
		if err != nil {
			return nil, fmt.Errorf("POVM.Probabilities: %w", err)
		}
		probs[i] = clamp01(real(exp))
	}

	return probs, nil
}

// Measure performs one generalized-measurement draw by cumulative
// probability. The outcome carries NO post-measurement state (zero
// zmat.Vector): determining collapse requires Kraus operators, which a
// POVM does not fix.
// Errors: zmat.ErrDimensionMismatch.
func (p *POVM) Measure(state zmat.Vector) (POVMOutcome, error) {
	probs, err := p.Probabilities(state)
	if err != nil {
		return POVMOutcome{}, fmt.Errorf("POVM.Measure: %w", err)
	}

	u := p.cfg.rng.Float64()
	cum := 0.0
	idx := len(probs) - 1 // rounding residue falls here
	var i int
	for i = 0; i < len(probs); i++ {
		cum += probs[i]
		if u < cum {
			idx = i
			break
		}
	}

	return POVMOutcome{Index: idx, Probability: probs[idx]}, nil
}
