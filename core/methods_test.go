// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvdraw/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))

	// duplicate insert is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.False(t, g.HasVertex(""))

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "A", v.ID)
	assert.NotNil(t, v.Metadata)

	_, err = g.Vertex("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	tests := []struct {
		name   string
		opts   []core.GraphOption
		from   string
		to     string
		weight int64
		want   error
	}{
		{"empty from", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 3, core.ErrBadWeight},
		{"loop rejected", []core.GraphOption{core.WithWeighted()}, "A", "A", 1, core.ErrLoopNotAllowed},
		{"loop allowed", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 7, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_UndirectedMirrorAndMultiEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	_, err = g.AddEdge("B", "A", 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	e, err := g.EdgeBetween("B", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Weight)

	_, err = g.EdgeBetween("A", "C")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_DirectedNoMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.Directed())
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	ids := []string{"D", "B", "C", "A"}
	var i int
	for i = 1; i < len(ids); i++ {
		_, err := g.AddEdge(ids[0], ids[i], int64(i))
		require.NoError(t, err)
	}
	for i = 0; i < 12; i++ {
		_, err := g.AddEdge("X", string(rune('a'+i)), 1)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices()[:4])

	edges := g.Edges()
	require.Len(t, edges, 15)
	// insertion order survives two-digit IDs ("e10" after "e9")
	for i = range edges {
		assert.Equal(t, "e"+itoa(i+1), edges[i].ID)
	}

	nb, err := g.NeighborIDs("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, nb)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	var wg sync.WaitGroup
	const n = 32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge("hub", "v"+itoa(i), int64(i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, g.EdgeCount())
	assert.Equal(t, n+1, g.VertexCount())
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf []byte
	for ; i > 0; i /= 10 {
		buf = append([]byte{byte('0' + i%10)}, buf...)
	}

	return string(buf)
}
