// SPDX-License-Identifier: MIT
// Package measure: projective (von Neumann) measurement.
// A Projective is built ONCE per observable: the eigen-decomposition and
// the per-eigenvalue projectors are computed eagerly at construction and
// never mutated, so a single apparatus may serve concurrent readers.
// Only Measure touches mutable state (the random source), and that is
// owned by the apparatus, never package-global.

package measure

import (
	"fmt"
	"math"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// Outcome is one possible measurement result on a given state.
type Outcome struct {
	Value       float64     // the eigenvalue read off the apparatus
	Probability float64     // Born probability, clamped to [0,1]
	PostState   zmat.Vector // collapsed state; the input state when Probability <= CollapseFloor
}

// Result is the record of one measurement draw.
type Result struct {
	Outcome
	Index int       // index into All (descending-eigenvalue order)
	All   []Outcome // the full outcome table the draw was made from
}

// Summary is the analytic (no-sampling) statistics of an observable on
// one state.
type Summary struct {
	Expectation float64
	Variance    float64
	StdDev      float64
	Outcomes    []Outcome
}

// Projective is a measurement apparatus for one observable.
type Projective struct {
	obs   *operator.Observable
	pairs []operator.EigenPair
	projs []*Projector
	cfg   options
}

// NewProjective builds the apparatus: eigen-decomposition of the
// observable plus one rank-1 projector per eigenpair, all cached.
// Degenerate eigenvalues appear as separate entries sharing a Value;
// their Degeneracy field records the cluster size.
// Errors: operator.ErrNilOperator, operator.ErrEigenFailed.
// Complexity: O(iters·n³) once; later calls are O(n²) per outcome.
func NewProjective(obs *operator.Observable, opts ...Option) (*Projective, error) {
	if obs == nil {
		return nil, fmt.Errorf("NewProjective: %w", operator.ErrNilOperator)
	}
	cfg := gatherOptions(opts...)

	pairs, err := operator.Eigen(obs.Hermitian)
	if err != nil {
		return nil, fmt.Errorf("NewProjective: %w", err)
	}
	projs := make([]*Projector, len(pairs))
	var i int
	for i = 0; i < len(pairs); i++ {
		if projs[i], err = NewProjector(pairs[i].Vector); err != nil {
			return nil, fmt.Errorf("NewProjective: %w", err)
		}
	}

	return &Projective{obs: obs, pairs: pairs, projs: projs, cfg: cfg}, nil
}

// Observable returns the measured observable.
func (p *Projective) Observable() *operator.Observable { return p.obs }

// Dim returns the Hilbert-space dimension.
func (p *Projective) Dim() int { return p.obs.Dim() }

// Eigenpairs returns a copy of the cached eigen-decomposition, sorted by
// descending eigenvalue.
func (p *Projective) Eigenpairs() []operator.EigenPair {
	out := make([]operator.EigenPair, len(p.pairs))
	copy(out, p.pairs)

	return out
}

// Projectors returns the cached per-eigenpair projectors (shared, not
// copied: projectors are immutable).
func (p *Projective) Projectors() []*Projector { return p.projs }

// Outcomes returns the Born probability and collapsed state for every
// eigenpair, in descending-eigenvalue order. The probabilities of a
// normalized state sum to 1 up to rounding.
// Errors: zmat.ErrDimensionMismatch.
// Complexity: O(n²) per eigenpair.
func (p *Projective) Outcomes(state zmat.Vector) ([]Outcome, error) {
	outs := make([]Outcome, len(p.pairs))
	var i int
	for i = 0; i < len(p.pairs); i++ {
		prob, err := p.projs[i].Probability(state)
		if err != nil {
			return nil, fmt.Errorf("Projective.Outcomes: %w", err)
		}
		post, err := p.projs[i].Collapse(state)
		if err != nil {
			return nil, fmt.Errorf("Projective.Outcomes: %w", err)
		}
		outs[i] = Outcome{Value: p.pairs[i].Value, Probability: prob, PostState: post}
	}

	return outs, nil
}

// Measure performs one Born-rule draw: a single uniform variate selects
// an outcome by cumulative probability. The returned Result carries the
// collapsed state and the full outcome table the draw was made from.
// Rounding residue (Σp marginally below 1) falls to the last outcome.
// Errors: zmat.ErrDimensionMismatch.
func (p *Projective) Measure(state zmat.Vector) (Result, error) {
	outs, err := p.Outcomes(state)
	if err != nil {
		return Result{}, fmt.Errorf("Projective.Measure: %w", err)
	}

	idx := drawIndex(outs, p.cfg.rng.Float64())

	return Result{Outcome: outs[idx], Index: idx, All: outs}, nil
}

// Expectation returns ⟨O⟩ = Σᵢ λᵢ·pᵢ from the cached spectrum.
// Agrees with operator.Expectation up to eigen-solver error.
// Errors: zmat.ErrDimensionMismatch.
func (p *Projective) Expectation(state zmat.Vector) (float64, error) {
	outs, err := p.Outcomes(state)
	if err != nil {
		return 0, fmt.Errorf("Projective.Expectation: %w", err)
	}

	return spectralMean(outs), nil
}

// Variance returns Var(O) = Σᵢ λᵢ²·pᵢ − ⟨O⟩².
// Errors: zmat.ErrDimensionMismatch.
func (p *Projective) Variance(state zmat.Vector) (float64, error) {
	outs, err := p.Outcomes(state)
	if err != nil {
		return 0, fmt.Errorf("Projective.Variance: %w", err)
	}

	return spectralVariance(outs), nil
}

// Statistics returns the full analytic summary on one state.
// Errors: zmat.ErrDimensionMismatch.
func (p *Projective) Statistics(state zmat.Vector) (Summary, error) {
	outs, err := p.Outcomes(state)
	if err != nil {
		return Summary{}, fmt.Errorf("Projective.Statistics: %w", err)
	}
	mean := spectralMean(outs)
	variance := spectralVariance(outs)

	return Summary{
		Expectation: mean,
		Variance:    variance,
		StdDev:      math.Sqrt(math.Abs(variance)),
		Outcomes:    outs,
	}, nil
}

// spectralMean is Σ λ·p over an outcome table.
func spectralMean(outs []Outcome) float64 {
	sum := 0.0
	for _, o := range outs {
		sum += o.Value * o.Probability
	}

	return sum
}

// spectralVariance is Σ λ²·p − (Σ λ·p)², floored at 0 against rounding.
func spectralVariance(outs []Outcome) float64 {
	mean := spectralMean(outs)
	sq := 0.0
	for _, o := range outs {
		sq += o.Value * o.Value * o.Probability
	}
	v := sq - mean*mean
	if v < 0 {
		v = 0
	}

	return v
}
