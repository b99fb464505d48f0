// SPDX-License-Identifier: MIT

package pairing

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvdraw/core"
	"github.com/katalvlaran/lvdraw/matching"
)

// FreeMatching pairs each bracket as one pool by minimum-weight perfect
// matching. Side labels on the input are ignored.
type FreeMatching struct {
	runner
}

// NewFreeMatching returns a FreeMatching strategy. opts is assumed valid;
// see Options.Validate.
func NewFreeMatching(opts Options, so ...StrategyOption) *FreeMatching {
	return &FreeMatching{runner: newRunner("free", opts, so)}
}

// Pair implements Strategy.
func (s *FreeMatching) Pair(brackets []Bracket) (Draw, error) {
	return s.run(brackets, s.pairBracket)
}

func (s *FreeMatching) pairBracket(b Bracket) ([]Pairing, error) {
	teams := b.pool()
	n := len(teams)
	if n%2 != 0 {
		return nil, &BracketError{Points: b.Points, Teams: n, Err: ErrOddBracket}
	}

	g := core.NewGraph(core.WithWeighted())
	byID := make(map[string]Team, n)
	for _, t := range teams {
		if err := g.AddVertex(t.ID()); err != nil {
			return nil, &BracketError{Points: b.Points, Teams: n, Err: err}
		}
		byID[t.ID()] = t
	}

	tags := make(map[[2]string]Tags)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			penalty, ok, tg := AssignmentCost(teams[i], teams[j], n, s.opts)
			if !ok {
				continue
			}
			if _, err := g.AddEdge(teams[i].ID(), teams[j].ID(), penalty); err != nil {
				return nil, &BracketError{Points: b.Points, Teams: n, Err: err}
			}
			tags[pairKey(teams[i].ID(), teams[j].ID())] = tg
		}
	}

	res, err := matching.MinWeightPerfect(g)
	if err != nil {
		return nil, &BracketError{Points: b.Points, Teams: n, Err: fmt.Errorf("%w: %w", ErrUnpairable, err)}
	}

	pairings := make([]Pairing, 0, len(res.Pairs))
	for _, p := range res.Pairs {
		tg := tags[pairKey(p.U, p.V)]
		pairings = append(pairings, Pairing{
			Teams:     [2]Team{byID[p.U], byID[p.V]},
			Cost:      p.Weight,
			Flags:     tg.Edge,
			TeamFlags: tg.Teams,
		})
	}

	policy := s.opts.UnrankedRoomRank
	sort.SliceStable(pairings, func(i, j int) bool {
		return subRankKey(pairings[i], policy) < subRankKey(pairings[j], policy)
	})

	return pairings, nil
}

func pairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}
