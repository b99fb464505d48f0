// Package metrics exposes pairing-run counters through Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names understood by Recorder implementations.
const (
	Runs        = "pairing_runs_total"
	Brackets    = "pairing_brackets_total"
	Pairings    = "pairing_pairings_total"
	Failures    = "pairing_failures_total"
	BracketCost = "pairing_bracket_cost"
	SolveMillis = "pairing_solve_ms"
)

// Recorder receives pairing-run observations.
type Recorder interface {
	IncCounter(name string, delta float64)
	Observe(name string, value float64)
}

// Noop discards every observation.
type Noop struct{}

func (Noop) IncCounter(string, float64) {}
func (Noop) Observe(string, float64)    {}

// Prom is a Recorder backed by a private Prometheus registry.
type Prom struct {
	reg *prometheus.Registry

	RunsTotal     prometheus.Counter
	BracketsTotal prometheus.Counter
	PairingsTotal prometheus.Counter
	FailuresTotal prometheus.Counter
	Cost          prometheus.Summary
	SolveLatency  prometheus.Summary
}

func NewProm() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg:           reg,
		RunsTotal:     prometheus.NewCounter(prometheus.CounterOpts{Name: Runs, Help: "Total pairing runs started"}),
		BracketsTotal: prometheus.NewCounter(prometheus.CounterOpts{Name: Brackets, Help: "Total brackets paired"}),
		PairingsTotal: prometheus.NewCounter(prometheus.CounterOpts{Name: Pairings, Help: "Total pairings produced"}),
		FailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{Name: Failures, Help: "Total pairing runs that failed"}),
		Cost:          prometheus.NewSummary(prometheus.SummaryOpts{Name: BracketCost, Help: "Total matching cost per bracket"}),
		SolveLatency:  prometheus.NewSummary(prometheus.SummaryOpts{Name: SolveMillis, Help: "Matching solver latency per bracket in ms"}),
	}
	reg.MustRegister(p.RunsTotal, p.BracketsTotal, p.PairingsTotal, p.FailuresTotal, p.Cost, p.SolveLatency)
	return p
}

// Registry returns the underlying registry (for tests and custom exporters).
func (p *Prom) Registry() *prometheus.Registry { return p.reg }

func (p *Prom) Handler() http.Handler { return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{}) }

func (p *Prom) IncCounter(name string, delta float64) {
	switch name {
	case Runs:
		p.RunsTotal.Add(delta)
	case Brackets:
		p.BracketsTotal.Add(delta)
	case Pairings:
		p.PairingsTotal.Add(delta)
	case Failures:
		p.FailuresTotal.Add(delta)
	}
}

// Observe supports the cost and latency summaries
func (p *Prom) Observe(name string, value float64) {
	switch name {
	case BracketCost:
		p.Cost.Observe(value)
	case SolveMillis:
		p.SolveLatency.Observe(value)
	}
}
