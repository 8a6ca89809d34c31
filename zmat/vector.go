// SPDX-License-Identifier: MIT
// Package zmat: the Vector value type and its kernels.
// Vector is an immutable fixed-dimension sequence of complex amplitudes;
// every operation returns a fresh Vector and never mutates operands.

package zmat

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// DegenerateNorm is the threshold below which a vector norm is treated as
// zero: Normalize fails with ErrDegenerate rather than divide by it.
const DegenerateNorm = 1e-15

// Vector is an immutable ordered sequence of complex128 components.
// The zero value is a dimension-0 vector, useful only as an "absent"
// marker (e.g. POVM outcomes carry no post-measurement state).
type Vector struct {
	data []complex128 // private backing, never exposed or mutated
}

// NewVector constructs a Vector from the given components.
// Stage 1 (Validate): non-empty, all components finite.
// Stage 2 (Prepare): copy components into private backing.
// Errors: ErrBadShape (empty), ErrNaNInf (non-finite component).
// Complexity: O(n).
func NewVector(components ...complex128) (Vector, error) {
	if len(components) == 0 {
		return Vector{}, validatorErrorf("NewVector", ErrBadShape)
	}
	if err := validateFinite(components); err != nil {
		return Vector{}, err
	}
	// Private copy: callers keep ownership of their slice.
	data := make([]complex128, len(components))
	copy(data, components)

	return Vector{data: data}, nil
}

// Dim returns the dimension of the vector. Complexity: O(1).
func (v Vector) Dim() int { return len(v.data) }

// IsZeroDim reports whether v is the dimension-0 "absent" marker.
func (v Vector) IsZeroDim() bool { return len(v.data) == 0 }

// At returns component i.
// Errors: ErrOutOfRange for i < 0 or i >= Dim.
// Complexity: O(1).
func (v Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Components returns a defensive copy of the backing slice.
// Complexity: O(n).
func (v Vector) Components() []complex128 {
	out := make([]complex128, len(v.data))
	copy(out, v.data)

	return out
}

// Add returns u + v componentwise.
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(n).
func (v Vector) Add(u Vector) (Vector, error) {
	if err := validateVecDim(u, len(v.data)); err != nil {
		return Vector{}, fmt.Errorf("Vector.Add: %w", err)
	}
	out := make([]complex128, len(v.data))
	for i := 0; i < len(v.data); i++ { // fixed order
		out[i] = v.data[i] + u.data[i]
	}

	return Vector{data: out}, nil
}

// Sub returns v − u componentwise.
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(n).
func (v Vector) Sub(u Vector) (Vector, error) {
	if err := validateVecDim(u, len(v.data)); err != nil {
		return Vector{}, fmt.Errorf("Vector.Sub: %w", err)
	}
	out := make([]complex128, len(v.data))
	for i := 0; i < len(v.data); i++ {
		out[i] = v.data[i] - u.data[i]
	}

	return Vector{data: out}, nil
}

// Scale returns α·v. Complexity: O(n).
func (v Vector) Scale(alpha complex128) Vector {
	out := make([]complex128, len(v.data))
	for i := 0; i < len(v.data); i++ {
		out[i] = alpha * v.data[i]
	}

	return Vector{data: out}
}

// Conj returns the componentwise complex conjugate. Complexity: O(n).
func (v Vector) Conj() Vector {
	out := make([]complex128, len(v.data))
	for i := 0; i < len(v.data); i++ {
		out[i] = cmplx.Conj(v.data[i])
	}

	return Vector{data: out}
}

// Norm returns the Euclidean norm sqrt(Σ|vᵢ|²).
// The accumulation runs over |vᵢ|² directly to avoid one cmplx.Abs sqrt
// per component. Complexity: O(n).
func (v Vector) Norm() float64 {
	var sum float64
	var re, im float64
	for i := 0; i < len(v.data); i++ { // fixed order for reproducible rounding
		re, im = real(v.data[i]), imag(v.data[i])
		sum += re*re + im*im
	}

	return math.Sqrt(sum)
}

// Normalize returns v / ‖v‖.
// Stage 1 (Validate): norm must exceed DegenerateNorm.
// Stage 2 (Execute): scale by 1/norm.
// Errors: ErrDegenerate when ‖v‖ < DegenerateNorm.
// Complexity: O(n).
func (v Vector) Normalize() (Vector, error) {
	norm := v.Norm()
	if norm < DegenerateNorm {
		return Vector{}, fmt.Errorf("Vector.Normalize: %w", ErrDegenerate)
	}

	return v.Scale(complex(1.0/norm, 0)), nil
}

// Equal reports componentwise equality within absolute tolerance tol.
// Vectors of different dimension are never equal. Complexity: O(n).
func (v Vector) Equal(u Vector, tol float64) bool {
	if len(v.data) != len(u.data) {
		return false
	}
	for i := 0; i < len(v.data); i++ {
		if cmplx.Abs(v.data[i]-u.data[i]) > tol {
			return false
		}
	}

	return true
}

// Inner computes ⟨u|v⟩ = Σ conj(uᵢ)·vᵢ — conjugate-linear in the FIRST
// argument (physicist convention; mind the order).
// Errors: ErrDimensionMismatch when dimensions differ.
// Complexity: O(n).
func Inner(u, v Vector) (complex128, error) {
	if err := validateVecDim(v, len(u.data)); err != nil {
		return 0, fmt.Errorf("Inner: %w", err)
	}
	var sum complex128
	for i := 0; i < len(u.data); i++ {
		sum += cmplx.Conj(u.data[i]) * v.data[i]
	}

	return sum, nil
}

// Outer computes the outer product |u⟩⟨v|: a Dim(u)×Dim(v) matrix with
// entries uᵢ·conj(vⱼ). Dimensions need not match.
// Errors: ErrBadShape when either vector is dimension-0.
// Complexity: O(n·m).
func Outer(u, v Vector) (*Dense, error) {
	if u.IsZeroDim() || v.IsZeroDim() {
		return nil, fmt.Errorf("Outer: %w", ErrBadShape)
	}
	rows, cols := len(u.data), len(v.data)
	out := newZero(rows, cols)
	var i, j int
	var base int
	for i = 0; i < rows; i++ { // fixed i→j order
		base = i * cols
		for j = 0; j < cols; j++ {
			out.data[base+j] = u.data[i] * cmplx.Conj(v.data[j])
		}
	}

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < len(v.data); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%.6g", v.data[i])
	}
	b.WriteString("]")

	return b.String()
}
