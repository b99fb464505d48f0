// SPDX-License-Identifier: MIT

package pairing

import (
	"fmt"

	"github.com/katalvlaran/lvdraw/matching"
	"github.com/katalvlaran/lvdraw/matrix"
)

// FixedSides pairs the affirmative pool of each bracket against its negative
// pool by solving the assignment problem. Forbidden pairings are disallowed
// cells of the cost matrix.
type FixedSides struct {
	runner
}

// NewFixedSides returns a FixedSides strategy. opts is assumed valid;
// see Options.Validate.
func NewFixedSides(opts Options, so ...StrategyOption) *FixedSides {
	return &FixedSides{runner: newRunner("fixed", opts, so)}
}

// Pair implements Strategy. Pairings keep solver order: by affirmative team.
func (s *FixedSides) Pair(brackets []Bracket) (Draw, error) {
	return s.run(brackets, s.pairBracket)
}


func (s *FixedSides) pairBracket(b Bracket) ([]Pairing, error) {
	aff, neg := b.Aff, b.Neg
	size := len(aff) + len(neg)
	if len(b.Teams) > 0 {
		return nil, &BracketError{
			Points: b.Points,
			Teams:  size + len(b.Teams),
			Err:    fmt.Errorf("%w: %d teams without a side", ErrUnbalancedSides, len(b.Teams)),
		}
	}
	if len(aff) != len(neg) {
		return nil, &BracketError{
			Points: b.Points,
			Teams:  size,
			Err:    fmt.Errorf("%w: %d aff, %d neg", ErrUnbalancedSides, len(aff), len(neg)),
		}
	}

	m, err := matrix.NewCostMatrix(len(aff), len(neg))
	if err != nil {
		return nil, &BracketError{Points: b.Points, Teams: size, Err: err}
	}
	tags := make([][]Tags, len(aff))
	for i, a := range aff {
		tags[i] = make([]Tags, len(neg))
		for j, n := range neg {
			penalty, ok, tg := AssignmentCost(a, n, size, s.opts)
			tags[i][j] = tg
			if !ok {
				continue
			}
			if err = m.Set(i, j, penalty); err != nil {
				return nil, &BracketError{Points: b.Points, Teams: size, Err: err}
			}
		}
	}

	asg, err := matching.Assign(m)
	if err != nil {
		return nil, &BracketError{Points: b.Points, Teams: size, Err: fmt.Errorf("%w: %w", ErrUnpairable, err)}
	}

	pairings := make([]Pairing, 0, len(aff))
	for i, j := range asg.Cols {
		cost, _, _ := m.At(i, j)
		pairings = append(pairings, Pairing{
			Teams:     [2]Team{aff[i], neg[j]},
			Cost:      cost,
			Flags:     tags[i][j].Edge,
			TeamFlags: tags[i][j].Teams,
		})
	}

	return pairings, nil
}
