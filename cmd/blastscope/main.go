// Package main provides the entry point for the blastscope CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blastscope/blastscope/cmd/blastscope/commands"
	"github.com/blastscope/blastscope/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blastscope",
		Short: "Blastscope - change blast radius and risk estimation",
		Long: `Blastscope estimates the blast radius and risk level of a set of code
changes from AST diffs, a module dependency graph, and a changed-file list.

Commands:
  analyze   Score a change set and print the impact report
  start     Run the idle-detection monitor
  render    Chart a saved impact report as HTML
  config    Manage the heuristics configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewStartCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blastscope %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
