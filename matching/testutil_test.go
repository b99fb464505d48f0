package matching_test

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvdraw/core"
)

// noEdge marks an absent edge in test weight tables.
const noEdge = -1

// vid returns the stable vertex ID for index i ("v00", "v01", …) so that
// core.Vertices() order equals index order.
func vid(i int) string {
	if i < 10 {
		return "v0" + strconv.Itoa(i)
	}

	return "v" + strconv.Itoa(i)
}

// graphFromTable builds an undirected weighted graph from a symmetric table.
func graphFromTable(w [][]int64) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	var i, j int
	for i = range w {
		_ = g.AddVertex(vid(i))
	}
	for i = range w {
		for j = i + 1; j < len(w); j++ {
			if w[i][j] != noEdge {
				_, _ = g.AddEdge(vid(i), vid(j), w[i][j])
			}
		}
	}

	return g
}

// randomTable returns a symmetric n×n weight table where each edge exists
// with probability density and carries a weight in [0, maxW].
func randomTable(r *rand.Rand, n int, density float64, maxW int64) [][]int64 {
	w := make([][]int64, n)
	var i, j int
	for i = range w {
		w[i] = make([]int64, n)
		for j = range w[i] {
			w[i][j] = noEdge
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if r.Float64() < density {
				c := r.Int63n(maxW + 1)
				w[i][j], w[j][i] = c, c
			}
		}
	}

	return w
}

// bruteMinPerfect enumerates every perfect matching of w and returns the
// minimum cost, or false when none exists. Exponential; n ≤ 12 only.
func bruteMinPerfect(w [][]int64) (int64, bool) {
	n := len(w)
	matched := make([]bool, n)
	best, found := int64(0), false

	var rec func(acc int64)
	rec = func(acc int64) {
		i := 0
		for i < n && matched[i] {
			i++
		}
		if i == n {
			if !found || acc < best {
				best, found = acc, true
			}
			return
		}
		matched[i] = true
		for j := i + 1; j < n; j++ {
			if matched[j] || w[i][j] == noEdge {
				continue
			}
			matched[j] = true
			rec(acc + w[i][j])
			matched[j] = false
		}
		matched[i] = false
	}
	rec(0)

	return best, found
}

// bruteAssign enumerates all injective row→column maps over allowed cells
// (cost noEdge = disallowed) and returns the minimum total cost.
func bruteAssign(c [][]int64, cols int) (int64, bool) {
	rows := len(c)
	used := make([]bool, cols)
	best, found := int64(0), false

	var rec func(i int, acc int64)
	rec = func(i int, acc int64) {
		if i == rows {
			if !found || acc < best {
				best, found = acc, true
			}
			return
		}
		for j := 0; j < cols; j++ {
			if used[j] || c[i][j] == noEdge {
				continue
			}
			used[j] = true
			rec(i+1, acc+c[i][j])
			used[j] = false
		}
	}
	rec(0, 0)

	return best, found
}
