// SPDX-License-Identifier: MIT

package pairing

import (
	"fmt"
	"sort"
)

// Team is the view of a competing team that pairing needs. Implementations
// must be stable for the duration of a run.
type Team interface {
	// ID uniquely identifies the team within a run.
	ID() string
	// Seen returns how many times this team has already met other.
	Seen(other Team) int
	// SameInstitution reports whether both teams share an institution.
	SameInstitution(other Team) bool
	// SideHistory returns prior appearances as affirmative and negative.
	SideHistory() (aff, neg int)
	// SubRank returns the intra-bracket rank, or ok=false when unranked.
	SubRank() (rank int, ok bool)
}

// Bracket is a group of teams on equal points. FreeMatching pairs Teams
// (plus Aff and Neg if given); FixedSides pairs Aff against Neg.
type Bracket struct {
	Points int
	Teams  []Team
	Aff    []Team
	Neg    []Team
}

// pool returns every team of the bracket regardless of side label.
func (b Bracket) pool() []Team {
	out := make([]Team, 0, len(b.Teams)+len(b.Aff)+len(b.Neg))
	out = append(out, b.Teams...)
	out = append(out, b.Aff...)
	out = append(out, b.Neg...)

	return out
}

// TagKind names the reason a cost component was applied.
type TagKind string

const (
	TagHistory       TagKind = "hist"
	TagInstitution   TagKind = "inst"
	TagSideImbalance TagKind = "side_imb"
	TagSideCap       TagKind = "side_cap"
)

// Tag is a diagnostic label attached to a pairing or to one of its teams.
// Count carries the number of prior meetings (history), the imbalance
// magnitude (side_imb, signed on per-team tags) or the offending side count
// (side_cap). It is zero for institution tags.
type Tag struct {
	Kind  TagKind
	Count int
}

// String renders hist_N, inst, side_imb_N or side_cap_N.
func (t Tag) String() string {
	if t.Kind == TagInstitution {
		return string(t.Kind)
	}

	return fmt.Sprintf("%s_%d", t.Kind, t.Count)
}

// Tags collects the diagnostics produced while costing one candidate pairing.
type Tags struct {
	Edge  []Tag
	Teams map[string][]Tag
}

func (t *Tags) addEdge(tag Tag) { t.Edge = append(t.Edge, tag) }

func (t *Tags) addTeam(id string, tag Tag) {
	if t.Teams == nil {
		t.Teams = make(map[string][]Tag, 2)
	}
	t.Teams[id] = append(t.Teams[id], tag)
}

// Forbidden reports whether the tags mark a pairing that must not be made.
func (t Tags) Forbidden() bool {
	for _, tag := range t.Edge {
		if tag.Kind == TagSideCap {
			return true
		}
	}

	return false
}

// Pairing is one debate of the draw. In a fixed-sides draw Teams[0] is the
// affirmative team; in a free draw the order is by team ID.
type Pairing struct {
	Teams     [2]Team
	Bracket   int
	RoomRank  int
	Cost      int64
	Flags     []Tag
	TeamFlags map[string][]Tag
}

// IDs returns the IDs of both teams.
func (p Pairing) IDs() [2]string {
	return [2]string{p.Teams[0].ID(), p.Teams[1].ID()}
}

// BracketPairings holds the pairings of one bracket in room-rank order.
type BracketPairings struct {
	Points   int
	Pairings []Pairing
}

// Draw is the result of one run: brackets in input order.
type Draw struct {
	Brackets []BracketPairings
}

// Pairings returns all pairings ordered by room rank.
func (d Draw) Pairings() []Pairing {
	var out []Pairing
	for _, b := range d.Brackets {
		out = append(out, b.Pairings...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RoomRank < out[j].RoomRank })

	return out
}

// Bracket returns the pairings of the bracket with the given points.
func (d Draw) Bracket(points int) ([]Pairing, bool) {
	for _, b := range d.Brackets {
		if b.Points == points {
			return b.Pairings, true
		}
	}

	return nil, false
}

// TotalCost sums pairing costs over the whole draw.
func (d Draw) TotalCost() int64 {
	var sum int64
	for _, b := range d.Brackets {
		for _, p := range b.Pairings {
			sum += p.Cost
		}
	}

	return sum
}
