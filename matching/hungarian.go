// SPDX-License-Identifier: MIT
//
// File: hungarian.go
// Role: rectangular assignment (Kuhn–Munkres with potentials).

package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdraw/matrix"
)

// unreached marks a column not yet reached by the current augmenting search.
const unreached = math.MaxInt64 / 4

// Assign solves the assignment problem on m: each row gets a distinct
// column, disallowed cells are never used, and the total cost is minimal.
//
// Contracts:
//   - m.Rows() ≤ m.Cols(); extra columns stay unassigned.
//   - A row with no allowed cell, or a structure with no complete
//     assignment, yields ErrNoPerfectMatching.
//
// Implementation (1-indexed potentials u, v; p[j] = row holding column j):
//   - For each row i, grow a Dijkstra-like shortest augmenting path over
//     reduced costs c(i,j) − u[i] − v[j] on allowed cells only.
//   - Update potentials by the minimum reduced cost delta each step; a step
//     with no reachable free column proves infeasibility.
//   - Flip the path via way[] once a free column is reached.
//
// Complexity: O(R²·C) time, O(R + C) extra memory.
func Assign(m *matrix.CostMatrix) (Assignment, error) {
	if m == nil {
		return Assignment{}, ErrNilMatrix
	}
	rows, cols := m.Rows(), m.Cols()
	if rows > cols {
		return Assignment{}, fmt.Errorf("%w: %d×%d", ErrDimensionMismatch, rows, cols)
	}
	if rows == 0 {
		return Assignment{Cols: []int{}}, nil
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if m.AllowedInRow(i) == 0 {
			return Assignment{}, fmt.Errorf("%w: row %d has no allowed column", ErrNoPerfectMatching, i)
		}
	}

	var (
		u    = make([]int64, rows+1)
		v    = make([]int64, cols+1)
		p    = make([]int, cols+1)
		way  = make([]int, cols+1)
		minv = make([]int64, cols+1)
		used = make([]bool, cols+1)
	)
	for i = 1; i <= rows; i++ {
		p[0] = i
		j0 := 0
		for j = 0; j <= cols; j++ {
			minv[j] = unreached
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(unreached)
			j1 := -1
			for j = 1; j <= cols; j++ {
				if used[j] {
					continue
				}
				if c, ok, _ := m.At(i0-1, j-1); ok {
					if cur := c - u[i0] - v[j]; cur < minv[j] {
						minv[j] = cur
						way[j] = j0
					}
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == -1 {
				return Assignment{}, fmt.Errorf("%w: row %d cannot be assigned", ErrNoPerfectMatching, i-1)
			}
			for j = 0; j <= cols; j++ {
				switch {
				case used[j]:
					u[p[j]] += delta
					v[j] -= delta
				case minv[j] != unreached:
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	res := Assignment{Cols: make([]int, rows)}
	for j = 1; j <= cols; j++ {
		if p[j] == 0 {
			continue
		}
		res.Cols[p[j]-1] = j - 1
		c, _, _ := m.At(p[j]-1, j-1)
		res.Cost += c
	}

	return res, nil
}
