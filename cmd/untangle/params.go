package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msarica/untangle-game/generate"
)

func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <level>",
		Short: "Show circle count and degree target for a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			p, err := generate.Params(level)
			if err != nil {
				return err
			}

			uiBrand.Printf("level %d\n", level)
			cmd.Printf("  circles: %d\n", p.Circles)
			cmd.Printf("  degree:  %d\n", p.Degree)

			return nil
		},
	}
}
