// SPDX-License-Identifier: MIT

package pairing

import "fmt"

// SideAllocations selects how sides are decided for the round. Only Balance
// makes the draw itself weigh side history.
type SideAllocations string

const (
	SidesBalance      SideAllocations = "balance"
	SidesRandom       SideAllocations = "random"
	SidesPreallocated SideAllocations = "preallocated"
	SidesManualBallot SideAllocations = "manual-ballot"
)

// UnrankedPolicy places pairings whose teams have no sub-rank.
type UnrankedPolicy string

const (
	// UnrankedFirst treats a missing sub-rank as 0.
	UnrankedFirst UnrankedPolicy = "first"
	// UnrankedLast sorts unranked pairings after every ranked one.
	UnrankedLast UnrankedPolicy = "last"
)

// Options tunes AssignmentCost and room ranking.
type Options struct {
	AvoidHistory       bool            `yaml:"avoid_history" mapstructure:"avoid_history" json:"avoid_history"`
	HistoryPenalty     int64           `yaml:"history_penalty" mapstructure:"history_penalty" json:"history_penalty"`
	AvoidInstitution   bool            `yaml:"avoid_institution" mapstructure:"avoid_institution" json:"avoid_institution"`
	InstitutionPenalty int64           `yaml:"institution_penalty" mapstructure:"institution_penalty" json:"institution_penalty"`
	SideAllocations    SideAllocations `yaml:"side_allocations" mapstructure:"side_allocations" json:"side_allocations"`
	SidePenalty        int64           `yaml:"side_penalty" mapstructure:"side_penalty" json:"side_penalty"`
	// MaxTimesOnOneSide caps prior appearances on either side; 0 disables the cap.
	MaxTimesOnOneSide int            `yaml:"max_times_on_one_side" mapstructure:"max_times_on_one_side" json:"max_times_on_one_side"`
	UnrankedRoomRank  UnrankedPolicy `yaml:"unranked_room_rank" mapstructure:"unranked_room_rank" json:"unranked_room_rank"`
}

// DefaultOptions returns the tournament defaults: history and institution
// avoidance on, side balancing by the draw off.
func DefaultOptions() Options {
	return Options{
		AvoidHistory:       true,
		HistoryPenalty:     1_000_000,
		AvoidInstitution:   true,
		InstitutionPenalty: 1_000,
		SideAllocations:    SidesBalance,
		UnrankedRoomRank:   UnrankedFirst,
	}
}

// Validate rejects negative penalties and unknown enum values.
func (o Options) Validate() error {
	switch {
	case o.HistoryPenalty < 0:
		return fmt.Errorf("%w: history_penalty %d < 0", ErrInvalidOptions, o.HistoryPenalty)
	case o.InstitutionPenalty < 0:
		return fmt.Errorf("%w: institution_penalty %d < 0", ErrInvalidOptions, o.InstitutionPenalty)
	case o.SidePenalty < 0:
		return fmt.Errorf("%w: side_penalty %d < 0", ErrInvalidOptions, o.SidePenalty)
	case o.MaxTimesOnOneSide < 0:
		return fmt.Errorf("%w: max_times_on_one_side %d < 0", ErrInvalidOptions, o.MaxTimesOnOneSide)
	}
	switch o.SideAllocations {
	case "", SidesBalance, SidesRandom, SidesPreallocated, SidesManualBallot:
	default:
		return fmt.Errorf("%w: side_allocations %q", ErrInvalidOptions, o.SideAllocations)
	}
	switch o.UnrankedRoomRank {
	case "", UnrankedFirst, UnrankedLast:
	default:
		return fmt.Errorf("%w: unranked_room_rank %q", ErrInvalidOptions, o.UnrankedRoomRank)
	}

	return nil
}
