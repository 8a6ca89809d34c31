// Package measure_test: weak-value and tomography tests.
package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/quanta/gates"
	"github.com/quantara/quanta/measure"
	"github.com/quantara/quanta/zmat"
)

func TestWeakValue_Basic(t *testing.T) {
	// ⟨+|X|0⟩/⟨+|0⟩ = 1: the weak value of X between |0⟩ and |+⟩.
	w, err := measure.WeakValue(gates.PauliX().Operator, mustBasis(t, 2, 0), gates.Plus())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(w), tol)
	assert.InDelta(t, 0.0, imag(w), tol)

	// Pre = post = eigenstate reduces to the eigenvalue.
	w, err = measure.WeakValue(gates.PauliZ().Operator, mustBasis(t, 2, 1), mustBasis(t, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, real(w), tol)
}

func TestWeakValue_Anomalous(t *testing.T) {
	// Nearly orthogonal selections amplify the weak value far outside
	// the spectrum of X ([−1,1]).
	eps := 1e-3
	post, err := zmat.NewVector(complex(eps, 0), 1)
	require.NoError(t, err)
	unit, err := post.Normalize()
	require.NoError(t, err)

	w, err := measure.WeakValue(gates.PauliX().Operator, mustBasis(t, 2, 0), unit)
	require.NoError(t, err)
	assert.Greater(t, real(w), 100.0)
}

func TestWeakValue_Guards(t *testing.T) {
	_, err := measure.WeakValue(nil, mustBasis(t, 2, 0), gates.Plus())
	assert.Error(t, err)

	// Orthogonal pre/post selections leave the value undefined.
	_, err = measure.WeakValue(gates.PauliX().Operator, mustBasis(t, 2, 0), mustBasis(t, 2, 1))
	assert.ErrorIs(t, err, measure.ErrOrthogonalStates)

	_, err = measure.WeakValue(gates.PauliX().Operator, mustBasis(t, 3, 0), mustBasis(t, 2, 0))
	assert.ErrorIs(t, err, zmat.ErrDimensionMismatch)
}

func TestTomography_BasisState(t *testing.T) {
	const shots = 4000
	b, err := measure.Tomography(mustBasis(t, 2, 0), shots, measure.WithRand(seeded(20)))
	require.NoError(t, err)

	// |0⟩ sits at the north pole: Z component exact (deterministic
	// outcome), X and Y wash out at rate 1/√shots.
	assert.InDelta(t, 1.0, b.Z, tol)
	assert.InDelta(t, 0.0, b.X, 0.1)
	assert.InDelta(t, 0.0, b.Y, 0.1)
	assert.InDelta(t, 1.0, b.Norm(), 0.15)
}

func TestTomography_PlusState(t *testing.T) {
	const shots = 4000
	b, err := measure.Tomography(gates.Plus(), shots, measure.WithRand(seeded(21)))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, b.X, tol, "X outcome deterministic on |+⟩")
	assert.InDelta(t, 0.0, b.Y, 0.1)
	assert.InDelta(t, 0.0, b.Z, 0.1)
}

func TestTomography_Guards(t *testing.T) {
	_, err := measure.Tomography(mustBasis(t, 3, 0), 100)
	assert.ErrorIs(t, err, zmat.ErrBadShape)

	_, err = measure.Tomography(mustBasis(t, 2, 0), 0)
	assert.ErrorIs(t, err, measure.ErrBadSampleCount)
}

func TestBlochNorm(t *testing.T) {
	b := measure.Bloch{X: 1, Y: 2, Z: 2}
	assert.InDelta(t, 3.0, b.Norm(), tol)
	assert.InDelta(t, 0.0, measure.Bloch{}.Norm(), tol)
}
