// Package measure_test: POVM validation and sampling tests.
package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/quanta/gates"
	"github.com/quantara/quanta/measure"
	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// zEffects returns the complete projective pair {|0⟩⟨0|, |1⟩⟨1|} as
// Hermitian effects.
func zEffects(t *testing.T) []*operator.Hermitian {
	t.Helper()
	out := make([]*operator.Hermitian, 2)
	for k := 0; k < 2; k++ {
		p, err := measure.NewProjector(mustBasis(t, 2, k))
		require.NoError(t, err)
		h, err := operator.NewHermitian(p.Matrix(), "E")
		require.NoError(t, err)
		out[k] = h
	}

	return out
}

// trineEffects returns the symmetric three-outcome qubit POVM
// Eₖ = (2/3)·|θₖ⟩⟨θₖ| with |θₖ⟩ at 120° steps on the X–Z great circle.
func trineEffects(t *testing.T) []*operator.Hermitian {
	t.Helper()
	out := make([]*operator.Hermitian, 3)
	for k := 0; k < 3; k++ {
		theta := 2 * math.Pi * float64(k) / 3
		psi, err := zmat.NewVector(
			complex(math.Cos(theta/2), 0),
			complex(math.Sin(theta/2), 0),
		)
		require.NoError(t, err)
		p, err := measure.NewProjector(psi)
		require.NoError(t, err)
		scaled, err := zmat.Scale(p.Matrix(), complex(2.0/3.0, 0))
		require.NoError(t, err)
		h, err := operator.NewHermitian(scaled, "E")
		require.NoError(t, err)
		out[k] = h
	}

	return out
}

func TestNewPOVM_Validation(t *testing.T) {
	_, err := measure.NewPOVM(zEffects(t), measure.WithRand(seeded(10)))
	assert.NoError(t, err)

	_, err = measure.NewPOVM(trineEffects(t), measure.WithRand(seeded(11)))
	assert.NoError(t, err, "trine resolves the identity")

	// A single projector does not resolve the identity.
	_, err = measure.NewPOVM(zEffects(t)[:1])
	assert.ErrorIs(t, err, measure.ErrIncompleteMeasurement)

	_, err = measure.NewPOVM(nil)
	assert.ErrorIs(t, err, zmat.ErrBadShape)

	_, err = measure.NewPOVM([]*operator.Hermitian{nil, nil})
	assert.ErrorIs(t, err, operator.ErrNilOperator)
}

func TestNewPOVM_DimensionMismatch(t *testing.T) {
	id3, err := zmat.Identity(3)
	require.NoError(t, err)
	h3, err := operator.NewHermitian(id3, "I3")
	require.NoError(t, err)

	_, err = measure.NewPOVM([]*operator.Hermitian{zEffects(t)[0], h3})
	assert.ErrorIs(t, err, zmat.ErrDimensionMismatch)
}

func TestPOVM_Probabilities(t *testing.T) {
	povm, err := measure.NewPOVM(zEffects(t), measure.WithRand(seeded(12)))
	require.NoError(t, err)
	assert.Equal(t, 2, povm.Len())
	assert.Equal(t, 2, povm.Dim())

	probs, err := povm.Probabilities(gates.Plus())
	require.NoError(t, err)
	require.Len(t, probs, 2)
	total := 0.0
	for _, p := range probs {
		assert.InDelta(t, 0.5, p, tol)
		total += p
	}
	assert.InDelta(t, 1.0, total, tol)
}

func TestPOVM_TrineCompleteness(t *testing.T) {
	povm, err := measure.NewPOVM(trineEffects(t), measure.WithRand(seeded(13)))
	require.NoError(t, err)

	probs, err := povm.Probabilities(mustBasis(t, 2, 0))
	require.NoError(t, err)
	total := 0.0
	for _, p := range probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, tol)

	// |0⟩ is the k=0 trine direction: p₀ = 2/3.
	assert.InDelta(t, 2.0/3.0, probs[0], tol)
}

func TestPOVM_MeasureHasNoPostState(t *testing.T) {
	povm, err := measure.NewPOVM(zEffects(t), measure.WithRand(seeded(14)))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		out, err := povm.Measure(gates.Plus())
		require.NoError(t, err)
		assert.True(t, out.Index == 0 || out.Index == 1)
		assert.InDelta(t, 0.5, out.Probability, tol)
		assert.True(t, out.PostState.IsZeroDim(), "no collapse by contract")
	}
}

func TestPOVM_EffectAccessor(t *testing.T) {
	povm, err := measure.NewPOVM(zEffects(t), measure.WithRand(seeded(15)))
	require.NoError(t, err)

	e0, err := povm.Effect(0)
	require.NoError(t, err)
	assert.Equal(t, 2, e0.Dim())

	_, err = povm.Effect(2)
	assert.ErrorIs(t, err, zmat.ErrOutOfRange)
	_, err = povm.Effect(-1)
	assert.ErrorIs(t, err, zmat.ErrOutOfRange)
}
