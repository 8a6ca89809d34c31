// Package zmat: Dense is a concrete, row-major complex matrix, storing
// elements in a flat slice for performance and cache friendliness. Dense
// values are immutable after construction: there is no public Set, and
// every kernel allocates a fresh result.
package zmat

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense constructs a Dense from row slices.
// Stage 1 (Validate): at least one row, rectangular rows, finite entries.
// Stage 2 (Prepare): copy rows into the flat backing slice.
// Errors: ErrBadShape (empty/ragged), ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func NewDense(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, validatorErrorf("NewDense", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	out := newZero(r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, validatorErrorf("NewDense: ragged rows", ErrBadShape)
		}
		if err := validateFinite(rows[i]); err != nil {
			return nil, err
		}
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// newZero allocates an r×c zero Dense. Internal: callers validated shape.
func newZero(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadShape for n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, validatorErrorf("Identity", ErrBadShape)
	}
	out := newZero(n, n)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
	}

	return out, nil
}

// Zero returns the r×c zero matrix.
// Errors: ErrBadShape for r <= 0 or c <= 0.
// Complexity: O(r*c).
func Zero(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, validatorErrorf("Zero", ErrBadShape)
	}

	return newZero(rows, cols), nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols. Complexity: O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a defensive copy of row i.
// Errors: ErrOutOfRange for invalid i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%.6g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
