// Package pairing builds round draws for power-paired debate tournaments.
//
// A draw is built bracket by bracket. Each Bracket groups teams on equal
// points and every bracket is paired independently of the others:
//
//   - FreeMatching pairs a single pool by minimum-weight perfect matching
//     (sides are decided later, outside this package).
//   - FixedSides pairs a pool of affirmative teams against a pool of negative
//     teams by solving the assignment problem.
//
// Both strategies score candidate pairings with AssignmentCost. The cost sums
// a repeat-meeting penalty, a same-institution penalty and (when sides are
// balanced by the draw) a side-imbalance penalty. A team already over the
// per-side cap makes its pairings forbidden outright.
//
// After all brackets are paired, room ranks are assigned 1..N in bracket order
// then by the best sub-rank of each pairing. Room rank is a display ordering,
// not a venue.
//
// Determinism:
//   - Given identical inputs, a run produces an identical Draw. Team IDs fix
//     vertex order, solver tie-breaks are index based, sorts are stable.
//
// Errors:
//   - Input problems (nil or duplicated teams, odd brackets, unbalanced side
//     pools) and unpairable brackets fail the whole run. Bracket-level
//     failures are returned as *BracketError and match the sentinels below
//     with errors.Is.
//
// Concurrency:
//   - Strategies hold only immutable configuration; Pair may be called from
//     several goroutines if the Recorder and logger are safe for that too.
package pairing
