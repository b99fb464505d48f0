// Package matching provides exact optimal matching solvers used to build
// debate draws.
//
// Two problems are covered:
//
//   - MinWeightPerfect: minimum-weight perfect matching on a general,
//     undirected, weighted *core.Graph.
//
//   - Method: Edmonds' weighted blossom algorithm (primal-dual, with
//     blossom shrinking/expansion). The minimum-weight perfect matching is
//     obtained as a maximum-cardinality maximum-weight matching over the
//     inverted weights w' = (maxW + 1) - w.
//
//   - Complexity: O(V³) time, O(V + E) memory.
//
//   - Assign: the rectangular assignment problem on a *matrix.CostMatrix
//     with rows ≤ cols: every row receives a distinct column at minimum
//     total cost.
//
//   - Method: Kuhn–Munkres (Hungarian) with row/column potentials and
//     shortest augmenting paths.
//
//   - Complexity: O(R²·C) time, O(C) extra memory.
//
//   - Disallowed cells are skipped, never priced.
//
// Both solvers are deterministic: for a fixed input they always return the
// same solution, including among equal-cost optima. Neither is
// interruptible; callers wanting a latency bound must impose it outside.
//
// Errors:
//
//	ErrNilGraph            - nil *core.Graph.
//	ErrDirectedGraph       - matching requires an undirected graph.
//	ErrNegativeWeight      - an edge weight is below zero.
//	ErrOddVertexCount      - a perfect matching needs an even vertex count.
//	ErrNoPerfectMatching   - the edge structure admits no perfect matching.
//	ErrDimensionMismatch   - assignment with more rows than columns.
package matching
