// Package operator_test contains unit tests for the Operator combinators.
package operator_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

const tol = operator.DefaultTolerance

// pauli returns the three Pauli matrices as plain Operators.
func pauli(t *testing.T) (x, y, z *operator.Operator) {
	t.Helper()
	x = mustOp(t, [][]complex128{{0, 1}, {1, 0}}, "X")
	y = mustOp(t, [][]complex128{{0, -1i}, {1i, 0}}, "Y")
	z = mustOp(t, [][]complex128{{1, 0}, {0, -1}}, "Z")

	return x, y, z
}

func mustOp(t *testing.T, rows [][]complex128, name string) *operator.Operator {
	t.Helper()
	m, err := zmat.NewDense(rows)
	require.NoError(t, err)
	op, err := operator.New(m, name)
	require.NoError(t, err)

	return op
}

func mustVec(t *testing.T, components ...complex128) zmat.Vector {
	t.Helper()
	v, err := zmat.NewVector(components...)
	require.NoError(t, err)

	return v
}

func TestNew_Validation(t *testing.T) {
	_, err := operator.New(nil, "nil")
	assert.ErrorIs(t, err, zmat.ErrNilMatrix)

	rect, err := zmat.NewDense([][]complex128{{1, 2, 3}})
	require.NoError(t, err)
	_, err = operator.New(rect, "rect")
	assert.ErrorIs(t, err, zmat.ErrNonSquare)
}

func TestDagger_Involution(t *testing.T) {
	a := mustOp(t, [][]complex128{{1 + 1i, 2}, {3i, 4}}, "A")
	assert.True(t, a.Dagger().Dagger().Equal(a, tol), "(A†)† must equal A")
}

func TestAlgebra_Basics(t *testing.T) {
	x, _, z := pauli(t)

	sum, err := x.Add(z)
	require.NoError(t, err)
	want := mustOp(t, [][]complex128{{1, 1}, {1, -1}}, "want")
	assert.True(t, sum.Equal(want, tol))

	diff, err := sum.Sub(z)
	require.NoError(t, err)
	assert.True(t, diff.Equal(x, tol), "(X+Z)-Z == X")

	prod, err := x.Mul(z)
	require.NoError(t, err)
	wantXZ := mustOp(t, [][]complex128{{0, -1}, {1, 0}}, "want")
	assert.True(t, prod.Equal(wantXZ, tol))

	scaled := z.Scale(2i)
	wantScaled := mustOp(t, [][]complex128{{2i, 0}, {0, -2i}}, "want")
	assert.True(t, scaled.Equal(wantScaled, tol))
}

func TestAlgebra_DimensionMismatch(t *testing.T) {
	x, _, _ := pauli(t)
	big := mustOp(t, [][]complex128{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, "I3")

	_, err := x.Add(big)
	assert.ErrorIs(t, err, zmat.ErrDimensionMismatch)
	_, err = x.Mul(big)
	assert.ErrorIs(t, err, zmat.ErrDimensionMismatch)
	_, err = x.Apply(mustVec(t, 1, 0, 0))
	assert.ErrorIs(t, err, zmat.ErrDimensionMismatch)
}

func TestPow(t *testing.T) {
	x, _, _ := pauli(t)

	sq, err := x.Pow(2)
	require.NoError(t, err)
	assert.True(t, sq.IsIdentity(tol), "X² = I")

	id, err := x.Pow(0)
	require.NoError(t, err)
	assert.True(t, id.IsIdentity(tol), "X⁰ = I")

	cube, err := x.Pow(3)
	require.NoError(t, err)
	assert.True(t, cube.Equal(x, tol), "X³ = X")

	_, err = x.Pow(-1)
	assert.ErrorIs(t, err, operator.ErrBadExponent)
}

func TestExp_AgainstClosedForm(t *testing.T) {
	// exp(iθX) = cos(θ)·I + i·sin(θ)·X for the involutory X.
	const theta = 0.5
	x, _, _ := pauli(t)
	generator := x.Scale(complex(0, theta))

	got := generator.Exp()

	c, s := math.Cos(theta), math.Sin(theta)
	want := mustOp(t, [][]complex128{
		{complex(c, 0), complex(0, s)},
		{complex(0, s), complex(c, 0)},
	}, "want")
	assert.True(t, got.Equal(want, 1e-9), "series exponential deviates from closed form")
	assert.True(t, got.IsUnitary(1e-9), "exp of anti-Hermitian generator must be unitary")
}

func TestExp_TermBudgetOption(t *testing.T) {
	x, _, _ := pauli(t)
	// A 2-term budget keeps only I + A: visibly non-unitary for iX.
	rough := x.Scale(1i).Exp(operator.WithExpTerms(2))
	want := mustOp(t, [][]complex128{{1, 1i}, {1i, 1}}, "I+iX")
	assert.True(t, rough.Equal(want, tol))
}

func TestPredicates(t *testing.T) {
	x, y, z := pauli(t)
	for _, op := range []*operator.Operator{x, y, z} {
		assert.True(t, op.IsHermitian(tol), "%s Hermitian", op.Name())
		assert.True(t, op.IsUnitary(tol), "%s unitary", op.Name())
		assert.False(t, op.IsProjection(tol), "%s is not idempotent", op.Name())
	}

	proj := mustOp(t, [][]complex128{{1, 0}, {0, 0}}, "P0")
	assert.True(t, proj.IsProjection(tol))
	assert.False(t, proj.IsUnitary(tol))

	zero := mustOp(t, [][]complex128{{0, 0}, {0, 0}}, "0")
	assert.True(t, zero.IsZero(tol))
}

func TestFingerprint_ContentDerived(t *testing.T) {
	a := mustOp(t, [][]complex128{{1, 2}, {3, 4}}, "A")
	b := mustOp(t, [][]complex128{{1, 2}, {3, 4}}, "B")
	c := mustOp(t, [][]complex128{{1, 2}, {3, 5}}, "C")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint(),
		"fingerprint is a pure function of numeric content, not the name tag")
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64, "hex SHA-256")
}

func TestSpectralStatistics(t *testing.T) {
	_, _, z := pauli(t)
	basis0 := mustVec(t, 1, 0)
	invSqrt2 := complex(1/math.Sqrt2, 0)
	plus := mustVec(t, invSqrt2, invSqrt2)

	t.Run("eigenstate", func(t *testing.T) {
		exp, err := z.Expectation(basis0)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, real(exp), tol)
		assert.InDelta(t, 0.0, imag(exp), tol)

		v, err := z.Variance(basis0)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, v, tol, "eigenstates have zero variance")
	})

	t.Run("superposition", func(t *testing.T) {
		exp, err := z.Expectation(plus)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, cmplx.Abs(exp), tol)

		v, err := z.Variance(plus)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, tol)

		sd, err := z.StdDev(plus)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sd, tol)
	})
}
