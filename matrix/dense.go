// SPDX-License-Identifier: MIT
// Dense is a row-major matrix of float64 values stored in a flat slice.

package matrix

import (
	"fmt"
	"strings"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int
	data []float64 // len == r*c
}

// NewDense creates an r×c matrix of zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}
	return row*m.c + col, true
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	i, ok := m.indexOf(row, col)
	if !ok {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	return m.data[i], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	i, ok := m.indexOf(row, col)
	if !ok {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[i] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// String renders one bracketed row per line, for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
