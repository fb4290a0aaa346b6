// SPDX-License-Identifier: MIT

package cmat

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("cmat: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("cmat: index out of bounds")

// ErrDimensionMismatch indicates that operand shapes are incompatible.
var ErrDimensionMismatch = errors.New("cmat: operand dimensions do not match")

// ErrNonSquare indicates that an operation requires a square matrix.
var ErrNonSquare = errors.New("cmat: matrix must be square")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Add returns the element-wise sum m + o as a new matrix.
// Returns ErrDimensionMismatch when shapes differ.
// Complexity: O(r*c).
func (m *Dense) Add(o *Dense) (*Dense, error) {
	if m.r != o.r || m.c != o.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}

	return out, nil
}

// Scale returns s·m as a new matrix.
// Complexity: O(r*c).
func (m *Dense) Scale(s complex128) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i := range m.data {
		out.data[i] = s * m.data[i]
	}

	return out
}

// Mul returns the matrix product m·o as a new matrix.
// Returns ErrDimensionMismatch when m.Cols() != o.Rows().
// Loop order is i→k→j for cache-friendly row-major access.
// Complexity: O(r·n·c) time, O(r·c) memory.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if m.c != o.r {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: o.c, data: make([]complex128, m.r*o.c)}

	var (
		i, j, k int
		v       complex128
	)
	for i = 0; i < m.r; i++ {
		for k = 0; k < m.c; k++ {
			v = m.data[i*m.c+k]
			if v == 0 {
				continue
			}
			for j = 0; j < o.c; j++ {
				out.data[i*o.c+j] += v * o.data[k*o.c+j]
			}
		}
	}

	return out, nil
}

// Kron returns the Kronecker product m ⊗ o as a new matrix.
// The result has shape (m.r·o.r) × (m.c·o.c).
// Complexity: O(m.r·m.c·o.r·o.c).
func (m *Dense) Kron(o *Dense) *Dense {
	out := &Dense{
		r:    m.r * o.r,
		c:    m.c * o.c,
		data: make([]complex128, m.r*o.r*m.c*o.c),
	}

	var i, j, p, q int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if v == 0 {
				continue
			}
			for p = 0; p < o.r; p++ {
				for q = 0; q < o.c; q++ {
					out.data[(i*o.r+p)*out.c+(j*o.c+q)] = v * o.data[p*o.c+q]
				}
			}
		}
	}

	return out
}

// AllClose reports whether m and o have the same shape and every pair of
// entries differs by at most eps in modulus.
// Complexity: O(r*c).
func (m *Dense) AllClose(o *Dense, eps float64) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-o.data[i]) > eps {
			return false
		}
	}

	return true
}

// maxAbs returns the largest entry modulus; used by Expm to pick a scaling
// exponent. Zero for the all-zero matrix.
func (m *Dense) maxAbs() float64 {
	var best float64
	for i := range m.data {
		if a := cmplx.Abs(m.data[i]); a > best {
			best = a
		}
	}

	return best
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
