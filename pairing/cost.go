// SPDX-License-Identifier: MIT

package pairing

// AssignmentCost scores pairing a against b.
//
// It returns ok=false with empty tags when a and b are the same team (no
// candidate), and ok=false with a side_cap tag when the pairing is forbidden
// because a team already exceeds MaxTimesOnOneSide. Otherwise ok is true and
// penalty is the sum of:
//
//   - history:     Seen(a, b) * HistoryPenalty, if AvoidHistory;
//   - institution: InstitutionPenalty, if AvoidInstitution and both share one;
//   - side:        SidePenalty * magnitude, if SideAllocations is balance,
//     SidePenalty > 0 and both teams lean towards the same side.
//
// magnitude is (|aff_a - neg_a| + |aff_b - neg_b|) / 2, rounded down.
// bracketSize is accepted for cost models that scale with the bracket and is
// unused by this one.
//
// The function is symmetric: swapping a and b yields the same penalty.
func AssignmentCost(a, b Team, bracketSize int, opts Options) (penalty int64, ok bool, tags Tags) {
	_ = bracketSize
	if a == nil || b == nil || a.ID() == b.ID() {
		return 0, false, Tags{}
	}

	if opts.AvoidHistory {
		if seen := a.Seen(b); seen > 0 {
			penalty += int64(seen) * opts.HistoryPenalty
			tags.addEdge(Tag{Kind: TagHistory, Count: seen})
		}
	}

	if opts.AvoidInstitution && a.SameInstitution(b) {
		penalty += opts.InstitutionPenalty
		tags.addEdge(Tag{Kind: TagInstitution})
	}

	if opts.SideAllocations == SidesBalance && opts.SidePenalty > 0 {
		aAff, aNeg := a.SideHistory()
		bAff, bNeg := b.SideHistory()

		if limit := opts.MaxTimesOnOneSide; limit > 0 {
			if worst := max(aAff, aNeg, bAff, bNeg); worst > limit {
				tags.addEdge(Tag{Kind: TagSideCap, Count: worst})
				return 0, false, tags
			}
		}

		aLean, bLean := aAff-aNeg, bAff-bNeg
		magnitude := (abs(aLean) + abs(bLean)) / 2
		if sign(aLean)*sign(bLean) > 0 && magnitude > 0 {
			penalty += int64(magnitude) * opts.SidePenalty
			tags.addEdge(Tag{Kind: TagSideImbalance, Count: magnitude})
			tags.addTeam(a.ID(), Tag{Kind: TagSideImbalance, Count: aLean})
			tags.addTeam(b.ID(), Tag{Kind: TagSideImbalance, Count: bLean})
		}
	}

	return penalty, true, tags
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
