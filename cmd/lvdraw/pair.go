package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdraw/config"
	"github.com/katalvlaran/lvdraw/internal/logging"
	"github.com/katalvlaran/lvdraw/internal/metrics"
	"github.com/katalvlaran/lvdraw/internal/roster"
	"github.com/katalvlaran/lvdraw/pairing"
)

type pairFlags struct {
	input       string
	mode        string
	metricsFile string
}

func newPairCmd(g *globalFlags) *cobra.Command {
	f := &pairFlags{}
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Generate a draw for one round",
		Long: `Generate a draw from a roster file.

Mode "free" pairs each bracket as a single pool and leaves sides open.
Mode "fixed" pairs the aff list of each bracket against its neg list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPair(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Roster file (YAML)")
	cmd.Flags().StringVar(&f.mode, "mode", "free", "Pairing mode: free or fixed")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// loadConfig loads options and initialises logging from them.
func loadConfig(g *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	logging.Init(level)

	return cfg, nil
}

func newStrategy(mode string, opts pairing.Options, so ...pairing.StrategyOption) (pairing.Strategy, error) {
	switch mode {
	case "free":
		return pairing.NewFreeMatching(opts, so...), nil
	case "fixed":
		return pairing.NewFixedSides(opts, so...), nil
	}

	return nil, fmt.Errorf("unknown mode %q (want free or fixed)", mode)
}

func runPair(cmd *cobra.Command, g *globalFlags, f *pairFlags) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	r, err := roster.Load(f.input)
	if err != nil {
		return err
	}

	prom := metrics.NewProm()
	strategy, err := newStrategy(f.mode, cfg.Options,
		pairing.WithLogger(logging.NewDefaultLogger()),
		pairing.WithRecorder(prom),
	)
	if err != nil {
		return err
	}

	draw, pairErr := strategy.Pair(r.Brackets())
	if f.metricsFile != "" {
		if err = prometheus.WriteToTextfile(f.metricsFile, prom.Registry()); err != nil {
			logging.L().WithError(err).Warn("writing metrics file")
		}
	}
	if pairErr != nil {
		return pairErr
	}

	resp := newDrawResponse(f.mode, draw)
	if g.human {
		printDrawHuman(cmd.OutOrStdout(), resp)
		return nil
	}

	return outputJSON(cmd.OutOrStdout(), resp)
}
