// Package roster reads teams and brackets for a round from YAML.
//
// Layout:
//
//	teams:
//	  - id: alpha
//	    institution: north
//	    sides: [2, 1]        # prior affirmative, negative appearances
//	    subrank: 1           # optional
//	    history: {beta: 1}   # prior meetings by team id
//	brackets:
//	  - points: 3
//	    teams: [alpha, beta]   # free matching
//	  - points: 2
//	    aff: [gamma]           # fixed sides
//	    neg: [delta]
//
// History is symmetrised: a meeting recorded on either team counts for both,
// taking the larger count when the two disagree.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdraw/pairing"
)

var (
	// ErrMalformed is returned for unreadable or undecodable input.
	ErrMalformed = errors.New("roster: malformed input")
	// ErrInvalidTeam is returned for a team entry that cannot be used.
	ErrInvalidTeam = errors.New("roster: invalid team")
	// ErrUnknownTeam is returned when a bracket or history names an undefined team.
	ErrUnknownTeam = errors.New("roster: unknown team")
)

// TeamSpec is one entry of the teams list.
type TeamSpec struct {
	ID          string         `yaml:"id"`
	Institution string         `yaml:"institution,omitempty"`
	Sides       []int          `yaml:"sides,omitempty"`
	SubRank     *int           `yaml:"subrank,omitempty"`
	History     map[string]int `yaml:"history,omitempty"`
}

// BracketSpec is one entry of the brackets list; teams are referenced by ID.
type BracketSpec struct {
	Points int      `yaml:"points"`
	Teams  []string `yaml:"teams,omitempty"`
	Aff    []string `yaml:"aff,omitempty"`
	Neg    []string `yaml:"neg,omitempty"`
}

// File is the decoded document.
type File struct {
	Teams    []TeamSpec    `yaml:"teams"`
	Brackets []BracketSpec `yaml:"brackets"`
}

// Roster holds resolved teams and the bracket layout of a round.
type Roster struct {
	teams    map[string]*Team
	order    []string
	brackets []BracketSpec
}

// Load reads and parses the file at path.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return Parse(data)
}

// Parse decodes data, rejecting unknown keys, and resolves every reference.
func Parse(data []byte) (*Roster, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return FromFile(f)
}

// FromFile validates f and builds a Roster.
func FromFile(f File) (*Roster, error) {
	r := &Roster{teams: make(map[string]*Team, len(f.Teams))}
	for i, spec := range f.Teams {
		t, err := newTeam(spec)
		if err != nil {
			return nil, fmt.Errorf("teams[%d]: %w", i, err)
		}
		if _, dup := r.teams[t.id]; dup {
			return nil, fmt.Errorf("%w: %q defined twice", ErrInvalidTeam, t.id)
		}
		r.teams[t.id] = t
		r.order = append(r.order, t.id)
	}

	for _, spec := range f.Teams {
		for other, n := range spec.History {
			peer, ok := r.teams[other]
			if !ok {
				return nil, fmt.Errorf("%w: %q in history of %q", ErrUnknownTeam, other, spec.ID)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: %q met %q %d times", ErrInvalidTeam, spec.ID, other, n)
			}
			self := r.teams[spec.ID]
			if n > self.met[other] {
				self.met[other] = n
				peer.met[spec.ID] = n
			}
		}
	}

	for i, b := range f.Brackets {
		for _, group := range [][]string{b.Teams, b.Aff, b.Neg} {
			for _, id := range group {
				if _, ok := r.teams[id]; !ok {
					return nil, fmt.Errorf("brackets[%d]: %w: %q", i, ErrUnknownTeam, id)
				}
			}
		}
	}
	r.brackets = f.Brackets

	return r, nil
}

// Team returns the team with the given ID.
func (r *Roster) Team(id string) (*Team, bool) {
	t, ok := r.teams[id]
	return t, ok
}

// Teams returns all teams in file order.
func (r *Roster) Teams() []*Team {
	out := make([]*Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}

	return out
}

// Brackets returns the brackets in file order with teams resolved.
func (r *Roster) Brackets() []pairing.Bracket {
	out := make([]pairing.Bracket, 0, len(r.brackets))
	for _, b := range r.brackets {
		out = append(out, pairing.Bracket{
			Points: b.Points,
			Teams:  r.resolve(b.Teams),
			Aff:    r.resolve(b.Aff),
			Neg:    r.resolve(b.Neg),
		})
	}

	return out
}

func (r *Roster) resolve(ids []string) []pairing.Team {
	if len(ids) == 0 {
		return nil
	}
	out := make([]pairing.Team, len(ids))
	for i, id := range ids {
		out[i] = r.teams[id]
	}

	return out
}
