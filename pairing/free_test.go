package pairing_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdraw/internal/metrics"
	"github.com/katalvlaran/lvdraw/matching"
	"github.com/katalvlaran/lvdraw/pairing"
)

// assertComplete checks every input team appears in exactly one pairing and
// no pairing repeats a team.
func assertComplete(t *testing.T, d pairing.Draw, brackets []pairing.Bracket) {
	t.Helper()
	want := map[string]bool{}
	for _, b := range brackets {
		for _, tm := range b.Teams {
			want[tm.ID()] = true
		}
		for _, tm := range append(append([]pairing.Team{}, b.Aff...), b.Neg...) {
			want[tm.ID()] = true
		}
	}
	got := map[string]int{}
	for _, p := range d.Pairings() {
		ids := p.IDs()
		assert.NotEqual(t, ids[0], ids[1], "self pairing")
		got[ids[0]]++
		got[ids[1]]++
	}
	require.Len(t, got, len(want))
	for id := range want {
		assert.Equal(t, 1, got[id], id)
	}
}

func TestFreeMatching_SimpleBracket(t *testing.T) {
	opts := pairing.Options{
		AvoidHistory:       true,
		HistoryPenalty:     1_000_000,
		AvoidInstitution:   true,
		InstitutionPenalty: 1_000_000,
	}
	brackets := []pairing.Bracket{{Points: 0, Teams: asTeams(teams("A", "B", "C", "D"))}}

	d, err := pairing.NewFreeMatching(opts).Pair(brackets)
	require.NoError(t, err)
	require.Len(t, d.Pairings(), 2)
	assert.Zero(t, d.TotalCost())
	assertComplete(t, d, brackets)
}

func TestFreeMatching_AvoidsRematch(t *testing.T) {
	ts := teams("A", "B", "C", "D")
	meet(ts[0], ts[1], 1)
	opts := pairing.Options{AvoidHistory: true, HistoryPenalty: 1}

	d, err := pairing.NewFreeMatching(opts).Pair([]pairing.Bracket{{Points: 1, Teams: asTeams(ts)}})
	require.NoError(t, err)
	assert.Zero(t, d.TotalCost())
	for _, p := range d.Pairings() {
		ids := p.IDs()
		if ids[0] == "A" {
			assert.Contains(t, []string{"C", "D"}, ids[1])
		}
	}
}

func TestFreeMatching_RematchWhenUnavoidable(t *testing.T) {
	a, b := newTeam("A"), newTeam("B")
	meet(a, b, 3)

	d, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair([]pairing.Bracket{{Points: 2, Teams: asTeams([]*team{a, b})}})
	require.NoError(t, err)
	ps := d.Pairings()
	require.Len(t, ps, 1)
	assert.Equal(t, int64(3_000_000), ps[0].Cost)
	assert.Equal(t, []pairing.Tag{{Kind: pairing.TagHistory, Count: 3}}, ps[0].Flags)
	assert.Equal(t, 2, ps[0].Bracket)
}

func TestFreeMatching_RoomRanksContinueAcrossBrackets(t *testing.T) {
	top := teams("A", "B", "C", "D")
	bottom := teams("E", "F", "G", "H", "I", "J")
	brackets := []pairing.Bracket{
		{Points: 3, Teams: asTeams(top)},
		{Points: 2, Teams: asTeams(bottom)},
	}

	d, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair(brackets)
	require.NoError(t, err)
	require.Len(t, d.Brackets, 2)
	assert.Equal(t, 3, d.Brackets[0].Points)
	assert.Equal(t, 2, d.Brackets[1].Points)

	var ranks []int
	for _, b := range d.Brackets {
		for _, p := range b.Pairings {
			ranks = append(ranks, p.RoomRank)
			assert.Equal(t, b.Points, p.Bracket)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ranks)

	low, ok := d.Bracket(2)
	require.True(t, ok)
	assert.Len(t, low, 3)
	_, ok = d.Bracket(9)
	assert.False(t, ok)
	assertComplete(t, d, brackets)
}

// subRankBracket forces pairings A-B and C-D by history.
func subRankBracket(ts []*team) pairing.Bracket {
	a, b, c, d := ts[0], ts[1], ts[2], ts[3]
	meet(a, c, 1)
	meet(a, d, 1)
	meet(b, c, 1)
	meet(b, d, 1)
	return pairing.Bracket{Points: 1, Teams: asTeams(ts)}
}

func TestFreeMatching_SortsBySubRank(t *testing.T) {
	ts := teams("A", "B", "C", "D")
	ts[0].withRank(4)
	ts[1].withRank(3)
	ts[2].withRank(1)
	ts[3].withRank(2)

	d, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair([]pairing.Bracket{subRankBracket(ts)})
	require.NoError(t, err)
	assert.Equal(t, []string{"C-D", "A-B"}, idsOf(d))
}

func TestFreeMatching_UnrankedPolicy(t *testing.T) {
	cases := []struct {
		policy pairing.UnrankedPolicy
		want   []string
	}{
		{pairing.UnrankedFirst, []string{"A-B", "C-D"}},
		{"", []string{"A-B", "C-D"}},
		{pairing.UnrankedLast, []string{"C-D", "A-B"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.policy), func(t *testing.T) {
			ts := teams("A", "B", "C", "D")
			ts[2].withRank(5)
			opts := pairing.DefaultOptions()
			opts.UnrankedRoomRank = tc.policy

			d, err := pairing.NewFreeMatching(opts).Pair([]pairing.Bracket{subRankBracket(ts)})
			require.NoError(t, err)
			assert.Equal(t, tc.want, idsOf(d))
		})
	}
}

func TestFreeMatching_IgnoresSideLabels(t *testing.T) {
	ts := teams("A", "B", "C", "D")
	meet(ts[0], ts[2], 1)
	meet(ts[1], ts[3], 1)
	br := pairing.Bracket{Points: 0, Aff: asTeams(ts[:2]), Neg: asTeams(ts[2:])}

	d, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair([]pairing.Bracket{br})
	require.NoError(t, err)
	assert.Zero(t, d.TotalCost())
	assertComplete(t, d, []pairing.Bracket{br})
}

func TestFreeMatching_Errors(t *testing.T) {
	dup := newTeam("A")
	capOpts := pairing.DefaultOptions()
	capOpts.SidePenalty = 1
	capOpts.MaxTimesOnOneSide = 3

	cases := []struct {
		name     string
		opts     pairing.Options
		brackets []pairing.Bracket
		want     error
		points   int
		size     int
	}{
		{
			name:     "odd bracket",
			opts:     pairing.DefaultOptions(),
			brackets: []pairing.Bracket{{Points: 4, Teams: asTeams(teams("A", "B", "C"))}},
			want:     pairing.ErrOddBracket,
			points:   4,
			size:     3,
		},
		{
			name: "cap isolates a team",
			opts: capOpts,
			brackets: []pairing.Bracket{{Points: 2, Teams: asTeams([]*team{
				newTeam("A").withSides(4, 0), newTeam("B"), newTeam("C"), newTeam("D"),
			})}},
			want:   matching.ErrNoPerfectMatching,
			points: 2,
			size:   4,
		},
		{
			name:     "nil team",
			opts:     pairing.DefaultOptions(),
			brackets: []pairing.Bracket{{Points: 1, Teams: []pairing.Team{newTeam("A"), nil}}},
			want:     pairing.ErrNilTeam,
			points:   1,
			size:     2,
		},
		{
			name: "team in two brackets",
			opts: pairing.DefaultOptions(),
			brackets: []pairing.Bracket{
				{Points: 1, Teams: []pairing.Team{dup, newTeam("B")}},
				{Points: 0, Teams: []pairing.Team{dup, newTeam("C")}},
			},
			want:   pairing.ErrDuplicateTeam,
			points: 0,
			size:   2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := pairing.NewFreeMatching(tc.opts).Pair(tc.brackets)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, d.Brackets)

			var be *pairing.BracketError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.points, be.Points)
			assert.Equal(t, tc.size, be.Teams)
		})
	}
}

func TestFreeMatching_UnpairableWrapsBothSentinels(t *testing.T) {
	opts := pairing.DefaultOptions()
	opts.SidePenalty = 1
	opts.MaxTimesOnOneSide = 2
	ts := []*team{newTeam("A").withSides(0, 3), newTeam("B")}

	_, err := pairing.NewFreeMatching(opts).Pair([]pairing.Bracket{{Points: 5, Teams: asTeams(ts)}})
	assert.ErrorIs(t, err, pairing.ErrUnpairable)
	assert.ErrorIs(t, err, matching.ErrNoPerfectMatching)
	assert.Contains(t, err.Error(), "bracket 5, 2 teams")
}

func TestFreeMatching_DuplicateBracket(t *testing.T) {
	_, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair([]pairing.Bracket{
		{Points: 1, Teams: asTeams(teams("A", "B"))},
		{Points: 1, Teams: asTeams(teams("C", "D"))},
	})
	assert.ErrorIs(t, err, pairing.ErrDuplicateBracket)
}

func TestFreeMatching_EmptyInput(t *testing.T) {
	d, err := pairing.NewFreeMatching(pairing.DefaultOptions()).Pair(nil)
	require.NoError(t, err)
	assert.Empty(t, d.Brackets)
	assert.Zero(t, d.TotalCost())
}

func TestFreeMatching_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	brackets := []pairing.Bracket{
		{Points: 3, Teams: asTeams(randomTeams(rng, "a", 12))},
		{Points: 2, Teams: asTeams(randomTeams(rng, "b", 10))},
	}
	opts := pairing.DefaultOptions()
	opts.SidePenalty = 5
	s := pairing.NewFreeMatching(opts)

	first, err := s.Pair(brackets)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := s.Pair(brackets)
		require.NoError(t, err)
		assert.Equal(t, idsOf(first), idsOf(again))
		assert.Equal(t, first.TotalCost(), again.TotalCost())
	}
	assertComplete(t, first, brackets)
}

func TestFreeMatching_OptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	opts := pairing.DefaultOptions()
	opts.HistoryPenalty = 50
	opts.InstitutionPenalty = 20
	opts.SidePenalty = 3

	for iter := 0; iter < 40; iter++ {
		n := 2 * (1 + rng.Intn(5))
		ts := asTeams(randomTeams(rng, "t", n))
		want, ok := bruteMinPerfect(ts, opts)
		require.True(t, ok)

		d, err := pairing.NewFreeMatching(opts).Pair([]pairing.Bracket{{Points: 0, Teams: ts}})
		require.NoError(t, err)
		assert.Equal(t, want, d.TotalCost(), "iter %d n=%d", iter, n)

		var sum int64
		for _, p := range d.Pairings() {
			c, ok, _ := pairing.AssignmentCost(p.Teams[0], p.Teams[1], n, opts)
			require.True(t, ok)
			assert.Equal(t, c, p.Cost)
			sum += c
		}
		assert.Equal(t, sum, d.TotalCost())
	}
}

func TestFreeMatching_RecorderAndLogger(t *testing.T) {
	rec := newRecorder()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := pairing.NewFreeMatching(pairing.DefaultOptions(), pairing.WithRecorder(rec), pairing.WithLogger(logger))

	_, err := s.Pair([]pairing.Bracket{
		{Points: 1, Teams: asTeams(teams("A", "B", "C", "D"))},
		{Points: 0, Teams: asTeams(teams("E", "F"))},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, rec.counters[metrics.Runs])
	assert.Equal(t, 2.0, rec.counters[metrics.Brackets])
	assert.Equal(t, 3.0, rec.counters[metrics.Pairings])
	assert.Zero(t, rec.counters[metrics.Failures])
	assert.Equal(t, 2, rec.observed[metrics.BracketCost])

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "draw generated", hook.LastEntry().Message)
	assert.Equal(t, "free", hook.LastEntry().Data["strategy"])
	assert.Len(t, hook.AllEntries(), 3)

	hook.Reset()
	_, err = s.Pair([]pairing.Bracket{{Points: 1, Teams: asTeams(teams("A"))}})
	require.Error(t, err)
	assert.Equal(t, 1.0, rec.counters[metrics.Failures])
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
