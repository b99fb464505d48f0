// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/lvdraw/core"
)

// MinWeightPerfect returns a minimum-weight perfect matching of g.
//
// Contracts:
//   - g must be non-nil and undirected; self-loops are ignored.
//   - Edge weights must be non-negative.
//   - Every vertex must be matched; otherwise ErrNoPerfectMatching.
//
// Implementation:
//   - Stage 1: Validate graph shape and index vertices by Vertices() order.
//   - Stage 2: Reject isolated vertices early (cheap, common failure).
//   - Stage 3: Invert weights (w' = maxW + 1 − w) and run the blossom
//     solver in maximum-cardinality mode; among maximum-cardinality
//     matchings this maximizes Σw' and therefore minimizes Σw.
//   - Stage 4: Verify perfection and assemble pairs in vertex order.
//
// An empty graph yields an empty Result.
//
// Complexity: O(V³) time, O(V + E) memory.
func MinWeightPerfect(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Directed() {
		return Result{}, ErrDirectedGraph
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return Result{}, nil
	}
	if n%2 != 0 {
		return Result{}, fmt.Errorf("%w: %d vertices", ErrOddVertexCount, n)
	}
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	all := g.Edges()
	edges := make([]weightedEdge, 0, len(all))
	degree := make([]int, n)
	var maxW int64
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: %s-%s=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		u, v := index[e.From], index[e.To]
		edges = append(edges, weightedEdge{u: u, v: v, w: e.Weight})
		degree[u]++
		degree[v]++
		if e.Weight > maxW {
			maxW = e.Weight
		}
	}
	for i, d := range degree {
		if d == 0 {
			return Result{}, fmt.Errorf("%w: vertex %q has no candidate partner", ErrNoPerfectMatching, ids[i])
		}
	}

	inverted := make([]weightedEdge, len(edges))
	for i, e := range edges {
		inverted[i] = weightedEdge{u: e.u, v: e.v, w: maxW + 1 - e.w}
	}
	mate := newBlossomSolver(n, inverted, true).solve()

	var res Result
	res.Pairs = make([]Pair, 0, n/2)
	for u := 0; u < n; u++ {
		v := mate[u]
		if v < 0 {
			return Result{}, fmt.Errorf("%w: vertex %q left unmatched", ErrNoPerfectMatching, ids[u])
		}
		if v < u {
			continue
		}
		e, err := g.EdgeBetween(ids[u], ids[v])
		if err != nil {
			return Result{}, err
		}
		res.Pairs = append(res.Pairs, Pair{U: ids[u], V: ids[v], Weight: e.Weight})
		res.Cost += e.Weight
	}

	return res, nil
}

// MaxWeight returns a maximum-weight matching of g over index pairs of
// g.Vertices(). When maxCardinality is true only maximum-cardinality
// matchings are considered. Unmatched vertices are absent from the result.
//
// Complexity: O(V³) time.
func MaxWeight(g *core.Graph, maxCardinality bool) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Directed() {
		return Result{}, ErrDirectedGraph
	}
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	var edges []weightedEdge
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: %s-%s=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		edges = append(edges, weightedEdge{u: index[e.From], v: index[e.To], w: e.Weight})
	}
	mate := newBlossomSolver(len(ids), edges, maxCardinality).solve()

	var res Result
	for u, v := range mate {
		if v <= u {
			continue
		}
		e, err := g.EdgeBetween(ids[u], ids[v])
		if err != nil {
			return Result{}, err
		}
		res.Pairs = append(res.Pairs, Pair{U: ids[u], V: ids[v], Weight: e.Weight})
		res.Cost += e.Weight
	}

	return res, nil
}
