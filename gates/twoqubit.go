// SPDX-License-Identifier: MIT
// Package gates: two-qubit builders — the tensor product, CNOT, and the
// four maximally entangled Bell states.

package gates

import (
	"fmt"
	"math"

	"github.com/quantara/quanta/operator"
	"github.com/quantara/quanta/zmat"
)

// Kron returns the tensor product A ⊗ B.
// Entry layout: (A⊗B)[i·d_B+k, j·d_B+l] = A[i,j]·B[k,l], so the first
// factor acts on the high-order subsystem.
// Errors: operator.ErrNilOperator.
// Complexity: O((d_A·d_B)²).
func Kron(a, b *operator.Operator) (*operator.Operator, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Kron: %w", operator.ErrNilOperator)
	}
	da, db := a.Dim(), b.Dim()
	dim := da * db
	rows := make([][]complex128, dim)
	var i, j, k, l int
	var av, bv complex128
	for i = 0; i < da; i++ {
		for k = 0; k < db; k++ {
			row := make([]complex128, dim)
			for j = 0; j < da; j++ {
				av, _ = a.Matrix().At(i, j) // in range by construction
				if av == 0 {
					continue
				}
				for l = 0; l < db; l++ {
					bv, _ = b.Matrix().At(k, l)
					row[j*db+l] = av * bv
				}
			}
			rows[i*db+k] = row
		}
	}
	m, err := zmat.NewDense(rows)
	if err != nil {
		return nil, fmt.Errorf("Kron: %w", err)
	}

	return operator.New(m, a.Name()+"⊗"+b.Name())
}

// KronVec returns the tensor product |u⟩ ⊗ |v⟩ with the same layout as
// Kron: component (i·d_v + j) = uᵢ·vⱼ.
// Errors: zmat.ErrBadShape for dimension-0 factors.
func KronVec(u, v zmat.Vector) (zmat.Vector, error) {
	if u.IsZeroDim() || v.IsZeroDim() {
		return zmat.Vector{}, fmt.Errorf("KronVec: %w", zmat.ErrBadShape)
	}
	du, dv := u.Dim(), v.Dim()
	comps := make([]complex128, du*dv)
	var i, j int
	var uv complex128
	for i = 0; i < du; i++ {
		uv, _ = u.At(i)
		for j = 0; j < dv; j++ {
			vv, _ := v.At(j)
			comps[i*dv+j] = uv * vv
		}
	}

	return zmat.NewVector(comps...)
}

// CNOT returns the controlled-NOT on two qubits (first qubit controls).
func CNOT() *operator.Unitary {
	return mustUnitary([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, "CNOT")
}

// bell builds (|a⟩ + sign·|b⟩)/√2 over the two-qubit basis.
func bell(a, b int, sign complex128) zmat.Vector {
	comps := make([]complex128, 4)
	inv := complex(1/math.Sqrt2, 0)
	comps[a] = inv
	comps[b] = sign * inv
	v, err := zmat.NewVector(comps...)
	if err != nil {
		panic(fmt.Sprintf("gates: bell: %v", err))
	}

	return v
}

// BellPhiPlus returns |Φ+⟩ = (|00⟩+|11⟩)/√2.
func BellPhiPlus() zmat.Vector { return bell(0, 3, 1) }

// BellPhiMinus returns |Φ−⟩ = (|00⟩−|11⟩)/√2.
func BellPhiMinus() zmat.Vector { return bell(0, 3, -1) }

// BellPsiPlus returns |Ψ+⟩ = (|01⟩+|10⟩)/√2.
func BellPsiPlus() zmat.Vector { return bell(1, 2, 1) }

// BellPsiMinus returns |Ψ−⟩ = (|01⟩−|10⟩)/√2.
func BellPsiMinus() zmat.Vector { return bell(1, 2, -1) }
