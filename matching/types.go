// SPDX-License-Identifier: MIT

package matching

import "errors"

// Sentinel errors for matching solvers.
var (
	// ErrNilGraph indicates a nil *core.Graph input.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNilMatrix indicates a nil *matrix.CostMatrix input.
	ErrNilMatrix = errors.New("matching: matrix is nil")

	// ErrDirectedGraph indicates a directed graph was supplied.
	ErrDirectedGraph = errors.New("matching: graph must be undirected")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("matching: negative edge weight")

	// ErrOddVertexCount indicates an odd number of vertices.
	ErrOddVertexCount = errors.New("matching: odd number of vertices")

	// ErrNoPerfectMatching indicates that no perfect matching exists.
	ErrNoPerfectMatching = errors.New("matching: no perfect matching")

	// ErrDimensionMismatch indicates more rows than columns in an assignment.
	ErrDimensionMismatch = errors.New("matching: more rows than columns")
)

// Pair is one matched edge. U sorts before V in the graph's vertex order.
type Pair struct {
	U, V   string
	Weight int64
}

// Result holds the outcome of MinWeightPerfect.
type Result struct {
	// Pairs lists matched edges ordered by U in vertex order.
	Pairs []Pair

	// Cost is the sum of Pair.Weight.
	Cost int64
}

// Assignment holds the outcome of Assign.
type Assignment struct {
	// Cols[i] is the column assigned to row i.
	Cols []int

	// Cost is the sum of the chosen cells.
	Cost int64
}
