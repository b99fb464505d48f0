// Package main provides the lvdraw CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		code := exitCode(err)
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return code
	}

	return ExitSuccess
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	human      bool
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "lvdraw",
		Short: "Power-paired debate draw generator",
		Long: `lvdraw pairs debate teams inside point brackets.

Each bracket is paired so that the total penalty for rematches, same
institution debates and side imbalance is minimal. The draw is printed as
JSON by default.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&g.human, "human", false, "Use human-readable output instead of JSON")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "Options file (YAML); defaults apply when empty")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (overrides log_level from config)")

	root.AddCommand(newPairCmd(g), newCheckCmd(g), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
