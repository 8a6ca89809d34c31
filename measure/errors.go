// SPDX-License-Identifier: MIT
// Package measure: sentinel error taxonomy.
// All failures wrap one of these sentinels; match with errors.Is.
// Dimension and state-validity failures surface the zmat sentinels
// (zmat.ErrDimensionMismatch, zmat.ErrDegenerate, …) unchanged.

package measure

import "errors"

var (
	// ErrIncompleteMeasurement - POVM effects do not sum to the identity
	// within tolerance, or an outcome set's probabilities do not close to 1.
	ErrIncompleteMeasurement = errors.New("measure: effects do not resolve the identity")

	// ErrNotProjector - a matrix expected to satisfy P² = P does not.
	ErrNotProjector = errors.New("measure: operator is not a projector")

	// ErrOrthogonalStates - weak value undefined: ⟨φ|ψ⟩ ≈ 0.
	ErrOrthogonalStates = errors.New("measure: pre- and post-selected states are orthogonal")

	// ErrBadSampleCount - a sampling routine was asked for n <= 0 shots.
	ErrBadSampleCount = errors.New("measure: sample count must be positive")
)
