// SPDX-License-Identifier: MIT

package pairing

import "math"

// assignRoomRanks numbers pairings 1..N in bracket order, keeping the order
// of pairings within each bracket.
func assignRoomRanks(brackets []BracketPairings) {
	rank := 0
	for bi := range brackets {
		for pi := range brackets[bi].Pairings {
			rank++
			brackets[bi].Pairings[pi].RoomRank = rank
		}
	}
}

// subRankKey is the best (lowest) sub-rank of the pairing's teams. Pairings
// with no ranked team get 0, or sort last under UnrankedLast.
func subRankKey(p Pairing, policy UnrankedPolicy) int {
	best, ranked := 0, false
	for _, t := range p.Teams {
		if r, ok := t.SubRank(); ok && (!ranked || r < best) {
			best, ranked = r, true
		}
	}
	if ranked {
		return best
	}
	if policy == UnrankedLast {
		return math.MaxInt
	}

	return 0
}
