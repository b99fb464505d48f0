// Package lvdraw generates power-paired debate draws.
//
// What is lvdraw?
//
//	A small, deterministic pairing engine that brings together:
//		• Core primitives: a thread-safe weighted graph of candidate pairings
//		• Cost matrices with an explicit "never use this cell" mask
//		• Matching: Edmonds' weighted blossom (min-weight perfect matching)
//		  and Kuhn–Munkres (rectangular assignment)
//		• Pairing: the rematch / institution / side-balance cost model and
//		  the free-matching and fixed-sides strategies
//
// Packages:
//
//	core/       - Graph, Vertex, Edge types & thread-safe primitives
//	matrix/     - CostMatrix with disallowed cells
//	matching/   - MinWeightPerfect, MaxWeight, Assign
//	pairing/    - AssignmentCost, FreeMatching, FixedSides, Draw
//	config/     - options file loading (viper)
//	cmd/lvdraw  - command-line front end
//
// Quick example (free matching, A has met B before):
//
//	A ─ B   ✗ rematch
//	│ ╲ │
//	C ─ D   → A–C and B–D, or A–D and B–C
//
//	go install github.com/katalvlaran/lvdraw/cmd/lvdraw@latest
package lvdraw
