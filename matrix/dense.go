// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order;
// the flat index of (i, j) is i*c + j.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFilled creates an r×c Dense matrix with every element set to fill.
// Complexity: O(r*c).
func NewDenseFilled(rows, cols int, fill float64) (*Dense, error) {
	// Delegate allocation and shape validation to the strict constructor.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Write the fill value over the whole backing slice (fixed order).
	for idx := range m.data {
		m.data[idx] = fill
	}

	return m, nil
}

// NewDenseFromFlat creates an r×c Dense matrix from a row-major flat buffer.
// The buffer is copied; the caller keeps ownership of flat.
// Stage 1 (Validate): shape > 0 and len(flat) == rows*cols.
// Stage 2 (Execute): copy the buffer into fresh storage.
// Complexity: O(r*c).
func NewDenseFromFlat(rows, cols int, flat []float64) (*Dense, error) {
	// Validate dimensions first (ErrBadShape has priority over mismatch).
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Validate buffer length against the requested shape.
	if len(flat) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	// Copy into fresh storage; never alias caller memory.
	data := make([]float64, rows*cols)
	copy(data, flat)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix from nested rows.
// All rows must be non-empty and of equal length; input is copied.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	// Validate the input is rectangular before any allocation.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
	}
	// Copy row by row into a flat buffer.
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(data[i*c:(i+1)*c], rows[i])
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Flat returns a copy of the row-major backing buffer.
// Complexity: O(r*c). Use for interop with flat-buffer kernels (ops3).
func (m *Dense) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')          // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ") // separate values with comma
			}
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}

// denseCopyOf extracts a row-major flat copy of any Matrix together with its
// shape. Dense fast-path copies the backing slice; the generic path reads
// element by element in fixed i→j order.
// Complexity: O(r*c).
func denseCopyOf(m Matrix) (rows, cols int, data []float64, err error) {
	rows, cols = m.Rows(), m.Cols()
	data = make([]float64, rows*cols)

	// Fast-path: concrete *Dense shares the flat layout.
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)

		return rows, cols, data, nil
	}

	// Fallback: interface path via At with deterministic traversal.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			data[i*cols+j] = v
		}
	}

	return rows, cols, data, nil
}
