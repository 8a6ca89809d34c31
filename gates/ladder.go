// SPDX-License-Identifier: MIT
// Package gates: ladder-operator builders on a d-dimensional Fock space.
// These are finite truncations of infinite-dimensional operators; the
// truncation shows up as a corner artifact in the canonical commutator
// (see Position/Momentum docs).

package gates

import (
	"fmt"
	"math"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// Number returns N = diag(0, 1, …, dim−1), the occupation-number
// observable.
// Errors: zmat.ErrBadShape for dim <= 0.
func Number(dim int) (*operator.Observable, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("Number: %w", zmat.ErrBadShape)
	}
	rows := zeroRows(dim)
	for i := 0; i < dim; i++ {
		rows[i][i] = complex(float64(i), 0)
	}
	m, err := zmat.NewDense(rows)
	if err != nil {
		return nil, fmt.Errorf("Number: %w", err)
	}

	return operator.NewObservable(m, "N", "")
}

// Creation returns a† with a†|n⟩ = √(n+1)·|n+1⟩ (the top level is
// annihilated by truncation).
// Errors: zmat.ErrBadShape for dim <= 0.
func Creation(dim int) (*operator.Operator, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("Creation: %w", zmat.ErrBadShape)
	}
	rows := zeroRows(dim)
	for n := 0; n+1 < dim; n++ {
		rows[n+1][n] = complex(math.Sqrt(float64(n+1)), 0)
	}
	m, err := zmat.NewDense(rows)
	if err != nil {
		return nil, fmt.Errorf("Creation: %w", err)
	}

	return operator.New(m, "a†")
}

// Annihilation returns a with a|n⟩ = √n·|n−1⟩.
// Errors: zmat.ErrBadShape for dim <= 0.
func Annihilation(dim int) (*operator.Operator, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("Annihilation: %w", zmat.ErrBadShape)
	}
	rows := zeroRows(dim)
	for n := 1; n < dim; n++ {
		rows[n-1][n] = complex(math.Sqrt(float64(n)), 0)
	}
	m, err := zmat.NewDense(rows)
	if err != nil {
		return nil, fmt.Errorf("Annihilation: %w", err)
	}

	return operator.New(m, "a")
}

// Position returns the truncated x̂ = √(ħ/2)·(a + a†) for unit mass and
// frequency. On the truncated space [x̂,p̂] = iħ·I holds exactly on all
// but the highest Fock level; the (d−1,d−1) entry absorbs the cut.
// Errors: zmat.ErrBadShape (dim <= 0), zmat.ErrNaNInf (non-finite or
// negative ħ).
func Position(dim int, hbar float64) (*operator.Observable, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, fmt.Errorf("Position: %w", err)
	}
	a, adag, err := ladderPair(dim)
	if err != nil {
		return nil, fmt.Errorf("Position: %w", err)
	}
	sum, err := a.Add(adag)
	if err != nil {
		return nil, fmt.Errorf("Position: %w", err)
	}
	scaled := sum.Scale(complex(math.Sqrt(hbar/2), 0))

	return operator.NewObservable(scaled.Matrix(), "x", "√(ħ/mω)")
}

// Momentum returns the truncated p̂ = i·√(ħ/2)·(a† − a) for unit mass
// and frequency. See Position for the truncation artifact.
// Errors: zmat.ErrBadShape (dim <= 0), zmat.ErrNaNInf (non-finite or
// negative ħ).
func Momentum(dim int, hbar float64) (*operator.Observable, error) {
	if err := validateHbar(hbar); err != nil {
		return nil, fmt.Errorf("Momentum: %w", err)
	}
	a, adag, err := ladderPair(dim)
	if err != nil {
		return nil, fmt.Errorf("Momentum: %w", err)
	}
	diff, err := adag.Sub(a)
	if err != nil {
		return nil, fmt.Errorf("Momentum: %w", err)
	}
	scaled := diff.Scale(complex(0, math.Sqrt(hbar/2)))

	return operator.NewObservable(scaled.Matrix(), "p", "√(ħmω)")
}

// ladderPair builds (a, a†) once for the quadrature constructors.
func ladderPair(dim int) (a, adag *operator.Operator, err error) {
	if a, err = Annihilation(dim); err != nil {
		return nil, nil, err
	}
	if adag, err = Creation(dim); err != nil {
		return nil, nil, err
	}

	return a, adag, nil
}

// validateHbar rejects non-finite or negative ħ before it can poison a
// scale factor.
func validateHbar(hbar float64) error {
	if math.IsNaN(hbar) || math.IsInf(hbar, 0) || hbar < 0 {
		return zmat.ErrNaNInf
	}

	return nil
}

// zeroRows allocates a dim×dim zero row set for literal construction.
func zeroRows(dim int) [][]complex128 {
	rows := make([][]complex128, dim)
	for i := 0; i < dim; i++ {
		rows[i] = make([]complex128, dim)
	}

	return rows
}
