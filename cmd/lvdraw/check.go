package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdraw/internal/roster"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate options and, optionally, a roster",
		Long:  `Load and validate the options file. With --input, also parse the roster and resolve every bracket.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			res := CheckResult{Status: "ok", Options: cfg.Options}
			if input != "" {
				r, err := roster.Load(input)
				if err != nil {
					return err
				}
				res.Teams = len(r.Teams())
				res.Brackets = len(r.Brackets())
			}

			if g.human {
				fmt.Fprintf(cmd.OutOrStdout(), "options ok (side_allocations=%s, side_penalty=%d)\n",
					cfg.Options.SideAllocations, cfg.Options.SidePenalty)
				if input != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "roster ok (%d teams, %d brackets)\n", res.Teams, res.Brackets)
				}
				return nil
			}

			return outputJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Roster file (YAML)")

	return cmd
}
