package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msarica/untangle-game/generate"
	"github.com/msarica/untangle-game/geom"
	"github.com/msarica/untangle-game/intersect"
	"github.com/msarica/untangle-game/store"
)

func generateCmd() *cobra.Command {
	var (
		width   float64
		height  float64
		seed    int64
		margin  float64
		dbPath  string
		tuning  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "generate <level>",
		Short: "Generate a level and print its summary",
		Long: `Generate builds the level for the given number: circles on a ring,
non-crossing degree-constrained lines, a captured solution, and a
scrambled starting state. With --db the level is persisted, and an
exact repeat of (level, width, height) is answered from the store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			opts, err := buildOptions(seed, margin, tuning, verbose, cmd.Flags().Changed("seed"))
			if err != nil {
				return err
			}

			if dbPath != "" {
				st, err := store.OpenSQLite(dbPath)
				if err != nil {
					return err
				}
				defer st.Close()
				opts = append(opts, generate.WithStore(st))
			}

			extent := geom.Extent{Width: width, Height: height}
			lv, err := generate.Generate(level, extent, opts...)
			if err != nil {
				return err
			}

			uiBrand.Printf("level %d (%gx%g)\n", lv.Number, extent.Width, extent.Height)
			cmd.Printf("  circles:   %d\n", len(lv.Circles))
			cmd.Printf("  lines:     %d\n", len(lv.Lines))
			cmd.Printf("  crossings: %d\n", intersect.Count(lv.Lines))
			printSolutionCheck(lv.Solution != nil && len(lv.Solution.Lines) > 0 &&
				intersect.Solved(lv.Solution.Lines))

			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", 600, "canvas height in pixels")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed the scramble RNG (deterministic output)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "canvas inset in pixels (default 30)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite level store path")
	cmd.Flags().StringVar(&tuning, "tuning", "", "TOML tuning file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generation diagnostics")

	return cmd
}

// buildOptions resolves the flag surface into generator options. Tuning file
// first, explicit flags after, so flags win on overlap.
func buildOptions(seed int64, margin float64, tuning string, verbose, seedSet bool) ([]generate.Option, error) {
	var opts []generate.Option

	if tuning != "" {
		loaded, err := generate.LoadTuning(tuning)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loaded...)
	}
	if seedSet {
		opts = append(opts, generate.WithSeed(seed))
	}
	if margin > 0 {
		opts = append(opts, generate.WithMargin(margin))
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, generate.WithLogger(logger))
	}

	return opts, nil
}

func printSolutionCheck(ok bool) {
	if ok {
		uiGood.Println("  solution:  crossing-free")

		return
	}
	uiBad.Println("  solution:  has crossings")
}
