// Package core provides the small, thread-safe in-memory Graph used by the
// draw generators to describe one bracket's candidate pairings.
//
// A Graph G = (V,E) stores:
//
//   - Vertices keyed by a non-empty string ID (a team ID in practice).
//   - Edges with an int64 Weight (the pairing penalty) and a stable ID
//     ("e1", "e2", …) assigned in insertion order.
//   - Adjacency as nested maps: adjacency[from][to] = edgeID, mirrored for
//     undirected edges.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only “from→to”; undirected graphs mirror.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Parallel edges are never stored: a second AddEdge(from,to) returns
// ErrMultiEdgeNotAllowed. A pairing graph has at most one candidate edge per
// pair of teams.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges in insertion order.
//   - NeighborIDs() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//
// muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
// Lock order is always muVert → muEdgeAdj.
package core
