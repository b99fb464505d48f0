package pairing_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvdraw/pairing"
)

// team is a minimal in-memory pairing.Team.
type team struct {
	id     string
	inst   string
	aff    int
	neg    int
	rank   int
	ranked bool
	met    map[string]int
}

func newTeam(id string) *team { return &team{id: id, met: map[string]int{}} }

func (t *team) ID() string                  { return t.id }
func (t *team) Seen(o pairing.Team) int     { return t.met[o.ID()] }
func (t *team) SideHistory() (aff, neg int) { return t.aff, t.neg }
func (t *team) SubRank() (int, bool)        { return t.rank, t.ranked }

func (t *team) SameInstitution(o pairing.Team) bool {
	other, ok := o.(*team)
	return ok && t.inst != "" && t.inst == other.inst
}

func (t *team) withSides(aff, neg int) *team { t.aff, t.neg = aff, neg; return t }
func (t *team) withRank(r int) *team         { t.rank, t.ranked = r, true; return t }
func (t *team) withInst(inst string) *team   { t.inst = inst; return t }

// meet records n prior meetings between a and b.
func meet(a, b *team, n int) {
	a.met[b.id] += n
	b.met[a.id] += n
}

func teams(ids ...string) []*team {
	out := make([]*team, len(ids))
	for i, id := range ids {
		out[i] = newTeam(id)
	}
	return out
}

func asTeams(ts []*team) []pairing.Team {
	out := make([]pairing.Team, len(ts))
	for i, t := range ts {
		out[i] = t
	}
	return out
}

// randomTeams builds n teams with random history, institutions and sides.
func randomTeams(rng *rand.Rand, prefix string, n int) []*team {
	ts := make([]*team, n)
	for i := range ts {
		ts[i] = newTeam(fmt.Sprintf("%s%02d", prefix, i)).
			withSides(rng.Intn(4), rng.Intn(4)).
			withInst(fmt.Sprintf("inst%d", rng.Intn(n/2+1)))
		if rng.Intn(3) > 0 {
			ts[i].withRank(rng.Intn(10))
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Intn(4) == 0 {
				meet(ts[i], ts[j], 1+rng.Intn(2))
			}
		}
	}
	return ts
}

// bruteMinPerfect returns the minimum total cost over all perfect matchings
// of ts built from allowed pairs, or ok=false if none exists.
func bruteMinPerfect(ts []pairing.Team, opts pairing.Options) (int64, bool) {
	n := len(ts)
	used := make([]bool, n)
	best, found := int64(0), false
	var rec func(acc int64)
	rec = func(acc int64) {
		i := 0
		for i < n && used[i] {
			i++
		}
		if i == n {
			if !found || acc < best {
				best, found = acc, true
			}
			return
		}
		used[i] = true
		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			c, ok, _ := pairing.AssignmentCost(ts[i], ts[j], n, opts)
			if !ok {
				continue
			}
			used[j] = true
			rec(acc + c)
			used[j] = false
		}
		used[i] = false
	}
	rec(0)
	return best, found
}

// recorder counts observations by metric name.
type recorder struct {
	counters map[string]float64
	observed map[string]int
}

func newRecorder() *recorder {
	return &recorder{counters: map[string]float64{}, observed: map[string]int{}}
}

func (r *recorder) IncCounter(name string, delta float64) { r.counters[name] += delta }
func (r *recorder) Observe(name string, _ float64)        { r.observed[name]++ }

// idsOf flattens a draw into "X-Y" strings in room-rank order.
func idsOf(d pairing.Draw) []string {
	var out []string
	for _, p := range d.Pairings() {
		ids := p.IDs()
		out = append(out, ids[0]+"-"+ids[1])
	}
	return out
}
