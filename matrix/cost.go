// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// costErrorf wraps an underlying error with CostMatrix method context.
func costErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CostMatrix.%s(%d,%d): %w", method, row, col, err)
}

// CostMatrix is a rows×cols matrix of non-negative int64 costs.
// Every cell starts disallowed; Set makes it usable.
type CostMatrix struct {
	r, c    int
	data    []int64 // row-major, len == r*c
	allowed []bool  // row-major, len == r*c
}

// NewCostMatrix creates an r×c CostMatrix with every cell disallowed.
// A zero dimension is legal and describes an empty bracket side.
//
// Errors: ErrBadShape if rows or cols is negative.
// Complexity: O(r*c) time and memory.
func NewCostMatrix(rows, cols int) (*CostMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &CostMatrix{
		r:       rows,
		c:       cols,
		data:    make([]int64, rows*cols),
		allowed: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *CostMatrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CostMatrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *CostMatrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, costErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// Set stores cost at (row, col) and marks the cell allowed.
// Errors: ErrOutOfRange, ErrNegativeCost.
func (m *CostMatrix) Set(row, col int, cost int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if cost < 0 {
		return costErrorf("Set", row, col, ErrNegativeCost)
	}
	m.data[idx] = cost
	m.allowed[idx] = true

	return nil
}

// Disallow marks (row, col) as unusable and clears its cost.
// Errors: ErrOutOfRange.
func (m *CostMatrix) Disallow(row, col int) error {
	idx, err := m.indexOf("Disallow", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = 0
	m.allowed[idx] = false

	return nil
}

// At returns the cost at (row, col) and whether the cell is allowed.
// Errors: ErrOutOfRange.
func (m *CostMatrix) At(row, col int) (int64, bool, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, false, err
	}

	return m.data[idx], m.allowed[idx], nil
}

// Allowed reports whether (row, col) may be used. Out-of-range cells are
// never allowed.
func (m *CostMatrix) Allowed(row, col int) bool {
	idx, err := m.indexOf("Allowed", row, col)
	if err != nil {
		return false
	}

	return m.allowed[idx]
}

// AllowedInRow counts allowed cells in row; -1 if row is out of range.
func (m *CostMatrix) AllowedInRow(row int) int {
	if m == nil || row < 0 || row >= m.r {
		return -1
	}
	var n, j int
	for j = 0; j < m.c; j++ {
		if m.allowed[row*m.c+j] {
			n++
		}
	}

	return n
}

// String renders the matrix with "x" for disallowed cells.
func (m *CostMatrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if m.allowed[i*m.c+j] {
				sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
			} else {
				sb.WriteByte('x')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
