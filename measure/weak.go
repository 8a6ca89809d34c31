// SPDX-License-Identifier: MIT
// Package measure: weak values and single-qubit state tomography.

package measure

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/quantara/quanta/gates"
	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// WeakValue returns A_w = ⟨φ|A|ψ⟩ / ⟨φ|ψ⟩ for pre-selected |ψ⟩ and
// post-selected ⟨φ|. Weak values are complex in general and can lie far
// outside the spectrum of A when the selections are nearly orthogonal.
// Errors: operator.ErrNilOperator, zmat.ErrDimensionMismatch,
// ErrOrthogonalStates (|⟨φ|ψ⟩| below zmat.DegenerateNorm).
// Complexity: O(n²).
func WeakValue(a *operator.Operator, pre, post zmat.Vector) (complex128, error) {
	if a == nil {
		return 0, fmt.Errorf("WeakValue: %w", operator.ErrNilOperator)
	}
	overlap, err := zmat.Inner(post, pre)
	if err != nil {
		return 0, fmt.Errorf("WeakValue: %w", err)
	}
	if cmplx.Abs(overlap) < zmat.DegenerateNorm {
		return 0, fmt.Errorf("WeakValue: %w", ErrOrthogonalStates)
	}
	apre, err := zmat.MatVec(a.Matrix(), pre)
	if err != nil {
		return 0, fmt.Errorf("WeakValue: %w", err)
	}
	num, err := zmat.Inner(post, apre)
	if err != nil {
		return 0, fmt.Errorf("WeakValue: %w", err)
	}

	return num / overlap, nil
}

// Bloch is an estimated single-qubit Bloch vector.
type Bloch struct {
	X, Y, Z float64
}

// Norm returns the Bloch-vector length; 1 for a pure state, below 1 when
// finite sampling washes the estimate toward the center.
func (b Bloch) Norm() float64 {
	return math.Sqrt(b.X*b.X + b.Y*b.Y + b.Z*b.Z)
}

// Tomography estimates the Bloch vector of a single-qubit state from
// repeated measurements of X, Y, and Z on identically prepared copies
// (shots draws per axis). The estimate is the sample mean of the drawn
// eigenvalues per axis; it converges to (⟨X⟩,⟨Y⟩,⟨Z⟩) at rate 1/√shots.
// Errors: zmat.ErrBadShape (not a qubit), ErrBadSampleCount.
// Complexity: O(shots) beyond three fixed 2×2 decompositions.
func Tomography(state zmat.Vector, shots int, opts ...Option) (Bloch, error) {
	if state.Dim() != 2 {
		return Bloch{}, fmt.Errorf("Tomography: %w", zmat.ErrBadShape)
	}
	if shots <= 0 {
		return Bloch{}, fmt.Errorf("Tomography: %w", ErrBadSampleCount)
	}

	axes := []*operator.Observable{gates.PauliX(), gates.PauliY(), gates.PauliZ()}
	means := make([]float64, len(axes))
	var i int
	for i = 0; i < len(axes); i++ {
		app, err := NewProjective(axes[i], opts...)
		if err != nil {
			return Bloch{}, fmt.Errorf("Tomography: %w", err)
		}
		ens, err := app.MeasureRepeated(state, shots)
		if err != nil {
			return Bloch{}, fmt.Errorf("Tomography: %w", err)
		}
		means[i] = ens.SampleMean
	}

	return Bloch{X: means[0], Y: means[1], Z: means[2]}, nil
}
