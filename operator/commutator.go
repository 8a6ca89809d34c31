// SPDX-License-Identifier: MIT
// Package operator: operator-pair algebra.
// Commutator and AntiCommutator compute their product EAGERLY at
// construction (not lazily on first request): immutable state after the
// constructor returns means concurrent reads are race-free without any
// synchronization primitive.

package operator

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/quantara/quanta/zmat"
)

// Commutator holds [A,B] = AB − BA for a fixed operator pair.
type Commutator struct {
	a, b   *Operator
	result *Operator // computed at construction
}

// NewCommutator computes [A,B] = AB − BA.
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
// Complexity: O(n³).
func NewCommutator(a, b *Operator) (*Commutator, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewCommutator: %w", ErrNilOperator)
	}
	ab, err := a.Mul(b)
	if err != nil {
		return nil, fmt.Errorf("NewCommutator: %w", err)
	}
	ba, err := b.Mul(a)
	if err != nil {
		return nil, fmt.Errorf("NewCommutator: %w", err)
	}
	diff, err := ab.Sub(ba)
	if err != nil {
		return nil, fmt.Errorf("NewCommutator: %w", err)
	}
	diff.name = "[" + a.name + "," + b.name + "]"

	return &Commutator{a: a, b: b, result: diff}, nil
}

// Result returns the commutator operator [A,B].
func (c *Commutator) Result() *Operator { return c.result }

// Vanishes reports whether ‖[A,B]‖ < tol, i.e. the operators commute.
func (c *Commutator) Vanishes(tol float64) bool { return c.result.IsZero(tol) }

// AntiCommutator holds {A,B} = AB + BA for a fixed operator pair.
type AntiCommutator struct {
	a, b   *Operator
	result *Operator // computed at construction
}

// NewAntiCommutator computes {A,B} = AB + BA.
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
// Complexity: O(n³).
func NewAntiCommutator(a, b *Operator) (*AntiCommutator, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewAntiCommutator: %w", ErrNilOperator)
	}
	ab, err := a.Mul(b)
	if err != nil {
		return nil, fmt.Errorf("NewAntiCommutator: %w", err)
	}
	ba, err := b.Mul(a)
	if err != nil {
		return nil, fmt.Errorf("NewAntiCommutator: %w", err)
	}
	sum, err := ab.Add(ba)
	if err != nil {
		return nil, fmt.Errorf("NewAntiCommutator: %w", err)
	}
	sum.name = "{" + a.name + "," + b.name + "}"

	return &AntiCommutator{a: a, b: b, result: sum}, nil
}

// Result returns the anti-commutator operator {A,B}.
func (c *AntiCommutator) Result() *Operator { return c.result }

// Vanishes reports whether ‖{A,B}‖ < tol, i.e. the operators
// anti-commute.
func (c *AntiCommutator) Vanishes(tol float64) bool { return c.result.IsZero(tol) }

// Commute reports [A,B] ≈ 0 within tol.
// Errors: as NewCommutator.
func Commute(a, b *Operator, tol float64) (bool, error) {
	c, err := NewCommutator(a, b)
	if err != nil {
		return false, err
	}

	return c.Vanishes(tol), nil
}

// AntiCommute reports {A,B} ≈ 0 within tol.
// Errors: as NewAntiCommutator.
func AntiCommute(a, b *Operator, tol float64) (bool, error) {
	c, err := NewAntiCommutator(a, b)
	if err != nil {
		return false, err
	}

	return c.Vanishes(tol), nil
}

// UncertaintyRelation bundles an observable pair with its commutator for
// Robertson-bound checks ΔA·ΔB ≥ |⟨[A,B]⟩|/2.
type UncertaintyRelation struct {
	a, b *Hermitian
	comm *Commutator // eager, as everywhere in this package
}

// UncertaintyReport is the outcome of validating the relation on one
// state.
type UncertaintyReport struct {
	DeltaA    float64 // standard deviation of A on the state
	DeltaB    float64 // standard deviation of B on the state
	Product   float64 // ΔA·ΔB
	Bound     float64 // |⟨[A,B]⟩|/2
	Satisfied bool    // Product ≥ Bound − ε
	Ratio     float64 // Product/Bound; ≈1 flags a minimum-uncertainty state, +Inf when Bound = 0
}

// NewUncertaintyRelation builds the relation for two observables.
// Errors: ErrNilOperator, zmat.ErrDimensionMismatch.
func NewUncertaintyRelation(a, b *Hermitian) (*UncertaintyRelation, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("NewUncertaintyRelation: %w", ErrNilOperator)
	}
	comm, err := NewCommutator(a.Operator, b.Operator)
	if err != nil {
		return nil, fmt.Errorf("NewUncertaintyRelation: %w", err)
	}

	return &UncertaintyRelation{a: a, b: b, comm: comm}, nil
}

// Validate evaluates the Robertson inequality on the given state.
// Satisfied uses a small slack ε (the configured tolerance) below the
// bound to absorb rounding.
// Errors: zmat.ErrDimensionMismatch.
// Complexity: O(n²) beyond the cached commutator.
func (u *UncertaintyRelation) Validate(state zmat.Vector, opts ...Option) (UncertaintyReport, error) {
	cfg := gatherOptions(opts...)

	dA, err := u.a.StdDev(state)
	if err != nil {
		return UncertaintyReport{}, fmt.Errorf("UncertaintyRelation.Validate: %w", err)
	}
	dB, err := u.b.StdDev(state)
	if err != nil {
		return UncertaintyReport{}, fmt.Errorf("UncertaintyRelation.Validate: %w", err)
	}
	commExp, err := u.comm.Result().Expectation(state)
	if err != nil {
		return UncertaintyReport{}, fmt.Errorf("UncertaintyRelation.Validate: %w", err)
	}

	report := UncertaintyReport{
		DeltaA:  dA,
		DeltaB:  dB,
		Product: dA * dB,
		Bound:   cmplx.Abs(commExp) / 2.0,
	}
	report.Satisfied = report.Product >= report.Bound-cfg.tol
	if report.Bound > 0 {
		report.Ratio = report.Product / report.Bound
	} else {
		report.Ratio = math.Inf(1)
	}

	return report, nil
}
