// Package gates_test: ladder-operator and Fock-space truncation tests.
package gates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/quanta/gates"
	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

func TestNumber_Spectrum(t *testing.T) {
	// d=2 hits the closed-form path, d=5 the iterative one; the diagonal
	// operator makes both spectra known exactly.
	for _, dim := range []int{2, 5} {
		n, err := gates.Number(dim)
		require.NoError(t, err)

		pairs, err := operator.Eigen(n.Hermitian)
		require.NoError(t, err)
		require.Len(t, pairs, dim)
		for i, p := range pairs {
			assert.InDelta(t, float64(dim-1-i), p.Value, 0.01, "dim=%d pair %d", dim, i)
		}
	}
}

func TestLadder_MatrixElements(t *testing.T) {
	const dim = 4
	a, err := gates.Annihilation(dim)
	require.NoError(t, err)
	adag, err := gates.Creation(dim)
	require.NoError(t, err)

	// a|n⟩ = √n|n−1⟩ and a†|n⟩ = √(n+1)|n+1⟩.
	for n := 0; n < dim; n++ {
		ket, err := gates.BasisState(dim, n)
		require.NoError(t, err)

		down, err := a.Apply(ket)
		require.NoError(t, err)
		if n == 0 {
			assert.InDelta(t, 0, down.Norm(), tol)
		} else {
			want, err := gates.BasisState(dim, n-1)
			require.NoError(t, err)
			scaled := want.Scale(complex(math.Sqrt(float64(n)), 0))
			assert.True(t, down.Equal(scaled, tol), "a|%d⟩", n)
		}

		up, err := adag.Apply(ket)
		require.NoError(t, err)
		if n == dim-1 {
			// Truncation annihilates the top level.
			assert.InDelta(t, 0, up.Norm(), tol)
		} else {
			want, err := gates.BasisState(dim, n+1)
			require.NoError(t, err)
			scaled := want.Scale(complex(math.Sqrt(float64(n+1)), 0))
			assert.True(t, up.Equal(scaled, tol), "a†|%d⟩", n)
		}
	}
}

func TestLadder_NumberIdentity(t *testing.T) {
	// a†a = N on the truncated space.
	const dim = 5
	a, err := gates.Annihilation(dim)
	require.NoError(t, err)
	adag, err := gates.Creation(dim)
	require.NoError(t, err)
	n, err := gates.Number(dim)
	require.NoError(t, err)

	prod, err := adag.Mul(a)
	require.NoError(t, err)
	assert.True(t, prod.Equal(n.Operator, tol))
}

func TestCanonicalCommutator_Truncated(t *testing.T) {
	const (
		dim  = 6
		hbar = 1.0
	)
	x, err := gates.Position(dim, hbar)
	require.NoError(t, err)
	p, err := gates.Momentum(dim, hbar)
	require.NoError(t, err)

	comm, err := operator.NewCommutator(x.Operator, p.Operator)
	require.NoError(t, err)
	m := comm.Result().Matrix()

	// [x̂,p̂] = iħ·I on every entry except the (d−1,d−1) corner, which
	// absorbs the truncation: iħ(1−d) there.
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			want := complex(0, 0)
			switch {
			case i == dim-1 && j == dim-1:
				want = complex(0, hbar*float64(1-dim))
			case i == j:
				want = complex(0, hbar)
			}
			assert.InDelta(t, real(want), real(got), tol, "entry (%d,%d)", i, j)
			assert.InDelta(t, imag(want), imag(got), tol, "entry (%d,%d)", i, j)
		}
	}
}

func TestQuadratures_AreObservables(t *testing.T) {
	x, err := gates.Position(4, 1.0)
	require.NoError(t, err)
	assert.True(t, x.IsHermitian(tol))
	assert.Equal(t, "√(ħ/mω)", x.Unit())

	p, err := gates.Momentum(4, 1.0)
	require.NoError(t, err)
	assert.True(t, p.IsHermitian(tol))

	// Vacuum is a minimum-uncertainty state of the quadratures (away from
	// the truncation boundary): Δx·Δp = ħ/2.
	vac, err := gates.BasisState(4, 0)
	require.NoError(t, err)
	rel, err := operator.NewUncertaintyRelation(x.Hermitian, p.Hermitian)
	require.NoError(t, err)
	rep, err := rel.Validate(vac)
	require.NoError(t, err)
	assert.True(t, rep.Satisfied)
	assert.InDelta(t, 0.5, rep.Product, 1e-9)
	assert.InDelta(t, 1.0, rep.Ratio, 1e-9)
}

func TestLadder_Guards(t *testing.T) {
	_, err := gates.Number(0)
	assert.ErrorIs(t, err, zmat.ErrBadShape)
	_, err = gates.Creation(-1)
	assert.ErrorIs(t, err, zmat.ErrBadShape)
	_, err = gates.Annihilation(0)
	assert.ErrorIs(t, err, zmat.ErrBadShape)
	_, err = gates.Position(4, math.NaN())
	assert.ErrorIs(t, err, zmat.ErrNaNInf)
	_, err = gates.Momentum(4, math.Inf(1))
	assert.ErrorIs(t, err, zmat.ErrNaNInf)
	_, err = gates.Position(4, -1)
	assert.ErrorIs(t, err, zmat.ErrNaNInf)
}
