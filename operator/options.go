// SPDX-License-Identifier: MIT

// Package operator: functional configuration for numeric policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package operator

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the absolute tolerance for elementwise operator
	// comparison and for all property predicates (Hermitian, Unitary,
	// Projection, Identity, Zero).
	DefaultTolerance = 1e-10

	// DefaultExpTerms is the fixed term count of the truncated Taylor
	// series Σ Aⁿ/n! used by Exp. There is no convergence check: the
	// budget is fixed by design so results match across runs.
	DefaultExpTerms = 20

	// DefaultPowerIters is the fixed iteration budget of the power method
	// used per eigenpair by Eigen above dimension 2. Fixed, not
	// convergence-driven: a tested fixed-budget approximation.
	DefaultPowerIters = 100
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid  = "operator: WithTolerance: tol must be finite, non-negative"
	panicExpTermsInvalid   = "operator: WithExpTerms: terms must be >= 1"
	panicPowerItersInvalid = "operator: WithPowerIters: iters must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective numeric policy after applying setters.
// Unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	tol        float64 // >= 0; DefaultTolerance
	expTerms   int     // >= 1; DefaultExpTerms
	powerIters int     // >= 1; DefaultPowerIters
}

// WithTolerance sets the absolute comparison tolerance.
// Panics on NaN/Inf/negative input (programmer error).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithExpTerms sets the truncated-series term count for Exp.
// Panics for terms < 1 (programmer error).
func WithExpTerms(terms int) Option {
	if terms < 1 {
		panic(panicExpTermsInvalid)
	}

	return func(o *options) { o.expTerms = terms }
}

// WithPowerIters sets the fixed per-eigenpair power-iteration budget.
// Panics for iters < 1 (programmer error).
func WithPowerIters(iters int) Option {
	if iters < 1 {
		panic(panicPowerItersInvalid)
	}

	return func(o *options) { o.powerIters = iters }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins). The canonical internal resolution point.
func gatherOptions(user ...Option) options {
	o := options{
		tol:        DefaultTolerance,
		expTerms:   DefaultExpTerms,
		powerIters: DefaultPowerIters,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
