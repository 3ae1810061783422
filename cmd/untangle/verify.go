package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msarica/untangle-game/core"
	"github.com/msarica/untangle-game/geom"
	"github.com/msarica/untangle-game/intersect"
	"github.com/msarica/untangle-game/store"
)

func verifyCmd() *cobra.Command {
	var (
		width  float64
		height float64
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "verify <level>",
		Short: "Re-check a stored level's solution and topology",
		Long: `Verify loads a stored level and re-runs the intersection engine over
its solution snapshot: the solution must be crossing-free and must
carry the exact same line topology as the scrambled puzzle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			st, err := store.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			lv, ok, err := st.Load(level, geom.Extent{Width: width, Height: height})
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("level %d (%gx%g) not in store %s", level, width, height, dbPath)
			}

			uiBrand.Printf("level %d (%gx%g)\n", level, width, height)

			if lv.Solution == nil {
				uiBad.Println("  no solution snapshot")

				return fmt.Errorf("level %d: missing solution", level)
			}

			// Recompute flags instead of trusting the stored ones.
			if err = intersect.Update(lv.Solution.Circles, lv.Solution.Lines); err != nil {
				return err
			}
			failed := false
			if n := intersect.Count(lv.Solution.Lines); n > 0 {
				uiBad.Printf("  solution:  %d crossings\n", n)
				failed = true
			} else {
				uiGood.Println("  solution:  crossing-free")
			}

			puzzleKey := core.TopologyKey(lv.Lines)
			solutionKey := core.TopologyKey(lv.Solution.Lines)
			if len(puzzleKey) != len(solutionKey) {
				uiBad.Println("  topology:  puzzle and solution differ")
				failed = true
			} else {
				same := true
				for k := range puzzleKey {
					if _, present := solutionKey[k]; !present {
						same = false

						break
					}
				}
				if same {
					uiGood.Println("  topology:  preserved")
				} else {
					uiBad.Println("  topology:  puzzle and solution differ")
					failed = true
				}
			}

			if failed {
				return fmt.Errorf("level %d failed verification", level)
			}
			uiSubtle.Printf("  lines: %d, circles: %d\n", len(lv.Lines), len(lv.Circles))

			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 800, "canvas width in pixels")
	cmd.Flags().Float64Var(&height, "height", 600, "canvas height in pixels")
	cmd.Flags().StringVar(&dbPath, "db", "untangle.db", "SQLite level store path")

	return cmd
}
