package roster

import (
	"fmt"

	"github.com/katalvlaran/lvdraw/pairing"
)

// Team is a pairing.Team backed by roster data.
type Team struct {
	id          string
	institution string
	aff, neg    int
	subrank     int
	ranked      bool
	met         map[string]int
}

var _ pairing.Team = (*Team)(nil)

func newTeam(spec TeamSpec) (*Team, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidTeam)
	}
	t := &Team{id: spec.ID, institution: spec.Institution, met: make(map[string]int)}
	switch len(spec.Sides) {
	case 0:
	case 2:
		t.aff, t.neg = spec.Sides[0], spec.Sides[1]
		if t.aff < 0 || t.neg < 0 {
			return nil, fmt.Errorf("%w: %q has negative side counts %v", ErrInvalidTeam, spec.ID, spec.Sides)
		}
	default:
		return nil, fmt.Errorf("%w: %q sides must be [aff, neg], got %v", ErrInvalidTeam, spec.ID, spec.Sides)
	}
	if _, self := spec.History[spec.ID]; self {
		return nil, fmt.Errorf("%w: %q lists itself in history", ErrInvalidTeam, spec.ID)
	}
	if spec.SubRank != nil {
		t.subrank, t.ranked = *spec.SubRank, true
	}

	return t, nil
}

func (t *Team) ID() string { return t.id }

// Institution returns the team's institution, possibly empty.
func (t *Team) Institution() string { return t.institution }

// Seen returns prior meetings with other.
func (t *Team) Seen(other pairing.Team) int { return t.met[other.ID()] }

// SameInstitution is false when either institution is unknown.
func (t *Team) SameInstitution(other pairing.Team) bool {
	o, ok := other.(*Team)
	return ok && t.institution != "" && t.institution == o.institution
}

func (t *Team) SideHistory() (aff, neg int) { return t.aff, t.neg }

func (t *Team) SubRank() (int, bool) { return t.subrank, t.ranked }
