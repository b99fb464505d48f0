// SPDX-License-Identifier: MIT

package pairing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvdraw/internal/logging"
	"github.com/katalvlaran/lvdraw/internal/metrics"
)

// Strategy pairs every bracket of a round. Brackets are paired in the given
// order and room ranks continue across them.
type Strategy interface {
	Pair(brackets []Bracket) (Draw, error)
}

// StrategyOption configures a Strategy.
type StrategyOption func(*runner)

// WithLogger sets the logger used for run and bracket diagnostics.
func WithLogger(l logging.Logger) StrategyOption {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRecorder sets the metrics sink. Default discards everything.
func WithRecorder(rec metrics.Recorder) StrategyOption {
	return func(r *runner) {
		if rec != nil {
			r.rec = rec
		}
	}
}

// bracketFunc pairs a single bracket and returns its pairings in
// room-rank order (ranks not yet assigned).
type bracketFunc func(b Bracket) ([]Pairing, error)

// runner holds what both strategies share: options and the run loop.
type runner struct {
	name string
	opts Options
	log  logging.Logger
	rec  metrics.Recorder
}

func newRunner(name string, opts Options, so []StrategyOption) runner {
	r := runner{name: name, opts: opts, log: logging.Discard(), rec: metrics.Noop{}}
	for _, o := range so {
		o(&r)
	}

	return r
}

// run validates the brackets, pairs them in order and assigns room ranks.
// Any failure aborts the run without a partial draw.
func (r runner) run(brackets []Bracket, pair bracketFunc) (Draw, error) {
	log := r.log.WithFields(logrus.Fields{"run": uuid.NewString(), "strategy": r.name})
	r.rec.IncCounter(metrics.Runs, 1)
	started := time.Now()

	fail := func(err error) (Draw, error) {
		r.rec.IncCounter(metrics.Failures, 1)
		log.WithError(err).Warn("draw failed")
		return Draw{}, err
	}

	if err := validateBrackets(brackets); err != nil {
		return fail(err)
	}

	draw := Draw{Brackets: make([]BracketPairings, 0, len(brackets))}
	for _, b := range brackets {
		t0 := time.Now()
		pairings, err := pair(b)
		if err != nil {
			return fail(err)
		}
		var cost int64
		for i := range pairings {
			pairings[i].Bracket = b.Points
			cost += pairings[i].Cost
		}
		draw.Brackets = append(draw.Brackets, BracketPairings{Points: b.Points, Pairings: pairings})

		r.rec.IncCounter(metrics.Brackets, 1)
		r.rec.IncCounter(metrics.Pairings, float64(len(pairings)))
		r.rec.Observe(metrics.BracketCost, float64(cost))
		r.rec.Observe(metrics.SolveMillis, float64(time.Since(t0).Microseconds())/1000)
		log.WithFields(logrus.Fields{
			"points":   b.Points,
			"teams":    2 * len(pairings),
			"pairings": len(pairings),
			"cost":     cost,
		}).Debug("bracket paired")
	}

	assignRoomRanks(draw.Brackets)

	log.WithFields(logrus.Fields{
		"brackets": len(draw.Brackets),
		"cost":     draw.TotalCost(),
		"elapsed":  time.Since(started),
	}).Info("draw generated")

	return draw, nil
}

// validateBrackets rejects nil teams, team IDs repeated anywhere in the run
// and repeated bracket points.
func validateBrackets(brackets []Bracket) error {
	points := make(map[int]struct{}, len(brackets))
	seen := make(map[string]int)
	for _, b := range brackets {
		if _, dup := points[b.Points]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateBracket, b.Points)
		}
		points[b.Points] = struct{}{}

		teams := b.pool()
		for _, t := range teams {
			if t == nil {
				return &BracketError{Points: b.Points, Teams: len(teams), Err: ErrNilTeam}
			}
			if prev, dup := seen[t.ID()]; dup {
				return &BracketError{
					Points: b.Points,
					Teams:  len(teams),
					Err:    fmt.Errorf("%w: %q (also in bracket %d)", ErrDuplicateTeam, t.ID(), prev),
				}
			}
			seen[t.ID()] = b.Points
		}
	}

	return nil
}
