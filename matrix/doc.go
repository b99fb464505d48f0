// Package matrix provides the row-major cost matrix consumed by the
// assignment solver.
//
// CostMatrix stores int64 costs in a flat slice together with an explicit
// per-cell "allowed" mask. A disallowed cell is not a large number: solvers
// must skip it entirely, so no magnitude convention can leak into an optimal
// solution or overflow during potential updates.
//
// All public indexers return ErrOutOfRange instead of panicking.
package matrix
