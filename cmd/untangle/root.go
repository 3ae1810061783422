package main

import (
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untangle",
		Short: "Generate and verify untangle puzzle levels",
		Long: `untangle builds levels for the untangle puzzle game: circles joined by
lines, scrambled into a crossing-heavy but always-solvable start state.

The generator lays circles on a ring, assigns degree-constrained
non-crossing lines, captures that arrangement as the solution, then
scrambles positions. Levels can be persisted to a SQLite store and
replayed deterministically.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(
		paramsCmd(),
		generateCmd(),
		verifyCmd(),
	)

	return cmd
}
