// SPDX-License-Identifier: MIT
// Package gates: single-qubit operator builders.
// Fixed gate matrices are compile-time constants of the theory; their
// constructors cannot fail and panic only on an (impossible) internal
// construction error, which would be a programmer bug, not user input.

package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// mustDense builds a Dense from literal rows; panics on programmer error.
func mustDense(rows [][]complex128) *zmat.Dense {
	m, err := zmat.NewDense(rows)
	if err != nil {
		panic(fmt.Sprintf("gates: invalid literal matrix: %v", err))
	}

	return m
}

// mustObservable wraps a literal Hermitian matrix; panics on programmer error.
func mustObservable(rows [][]complex128, name, unit string) *operator.Observable {
	obs, err := operator.NewObservable(mustDense(rows), name, unit)
	if err != nil {
		panic(fmt.Sprintf("gates: literal %s is not Hermitian: %v", name, err))
	}

	return obs
}

// mustUnitary wraps a literal unitary matrix; panics on programmer error.
func mustUnitary(rows [][]complex128, name string) *operator.Unitary {
	u, err := operator.NewUnitary(mustDense(rows), name)
	if err != nil {
		panic(fmt.Sprintf("gates: literal %s is not unitary: %v", name, err))
	}

	return u
}

// PauliX returns σₓ = (0 1; 1 0), dimensionless.
func PauliX() *operator.Observable {
	return mustObservable([][]complex128{{0, 1}, {1, 0}}, "X", "")
}

// PauliY returns σᵧ = (0 −i; i 0), dimensionless.
func PauliY() *operator.Observable {
	return mustObservable([][]complex128{{0, -1i}, {1i, 0}}, "Y", "")
}

// PauliZ returns σ_z = (1 0; 0 −1), dimensionless.
func PauliZ() *operator.Observable {
	return mustObservable([][]complex128{{1, 0}, {0, -1}}, "Z", "")
}

// Hadamard returns H = (1 1; 1 −1)/√2.
func Hadamard() *operator.Unitary {
	inv := complex(1/math.Sqrt2, 0)

	return mustUnitary([][]complex128{{inv, inv}, {inv, -inv}}, "H")
}

// PhaseS returns the S gate diag(1, i).
func PhaseS() *operator.Unitary {
	return mustUnitary([][]complex128{{1, 0}, {0, 1i}}, "S")
}

// PhaseT returns the T gate diag(1, e^{iπ/4}).
func PhaseT() *operator.Unitary {
	return mustUnitary([][]complex128{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}, "T")
}

// RotationX returns Rx(θ) = exp(−iθX/2).
// Errors: zmat.ErrNaNInf for non-finite θ.
func RotationX(theta float64) (*operator.Unitary, error) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	m, err := zmat.NewDense([][]complex128{{c, s}, {s, c}})
	if err != nil {
		return nil, fmt.Errorf("RotationX: %w", err)
	}

	return operator.NewUnitary(m, fmt.Sprintf("Rx(%.4g)", theta))
}

// RotationY returns Ry(θ) = exp(−iθY/2).
// Errors: zmat.ErrNaNInf for non-finite θ.
func RotationY(theta float64) (*operator.Unitary, error) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	m, err := zmat.NewDense([][]complex128{{c, -s}, {s, c}})
	if err != nil {
		return nil, fmt.Errorf("RotationY: %w", err)
	}

	return operator.NewUnitary(m, fmt.Sprintf("Ry(%.4g)", theta))
}

// RotationZ returns Rz(θ) = diag(e^{−iθ/2}, e^{iθ/2}).
// Errors: zmat.ErrNaNInf for non-finite θ.
func RotationZ(theta float64) (*operator.Unitary, error) {
	m, err := zmat.NewDense([][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
	if err != nil {
		return nil, fmt.Errorf("RotationZ: %w", err)
	}

	return operator.NewUnitary(m, fmt.Sprintf("Rz(%.4g)", theta))
}

// Identity returns the n-dimensional identity operator.
// Errors: zmat.ErrBadShape for n <= 0.
func Identity(n int) (*operator.Unitary, error) {
	id, err := zmat.Identity(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}

	return operator.NewUnitary(id, fmt.Sprintf("I%d", n))
}

// BasisState returns the computational basis vector |k⟩ in dimension dim.
// Errors: zmat.ErrBadShape (dim <= 0), zmat.ErrOutOfRange (k outside [0,dim)).
func BasisState(dim, k int) (zmat.Vector, error) {
	if dim <= 0 {
		return zmat.Vector{}, fmt.Errorf("BasisState: %w", zmat.ErrBadShape)
	}
	if k < 0 || k >= dim {
		return zmat.Vector{}, fmt.Errorf("BasisState(%d,%d): %w", dim, k, zmat.ErrOutOfRange)
	}
	comps := make([]complex128, dim)
	comps[k] = 1

	return zmat.NewVector(comps...)
}

// Superposition returns the normalized state with the given amplitudes.
// Errors: zmat.ErrBadShape (empty), zmat.ErrDegenerate (all ~0).
func Superposition(amps ...complex128) (zmat.Vector, error) {
	v, err := zmat.NewVector(amps...)
	if err != nil {
		return zmat.Vector{}, fmt.Errorf("Superposition: %w", err)
	}

	return v.Normalize()
}

// Plus returns |+⟩ = (|0⟩+|1⟩)/√2.
func Plus() zmat.Vector {
	v, err := Superposition(1, 1)
	if err != nil {
		panic(fmt.Sprintf("gates: Plus: %v", err))
	}

	return v
}

// Minus returns |−⟩ = (|0⟩−|1⟩)/√2.
func Minus() zmat.Vector {
	v, err := Superposition(1, -1)
	if err != nil {
		panic(fmt.Sprintf("gates: Minus: %v", err))
	}

	return v
}
