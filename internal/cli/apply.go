package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/notation"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		simplify bool
		explain  bool
		view     bool
	)

	cmd := &cobra.Command{
		Use:   "apply <algorithm>...",
		Short: "Apply an algorithm to a solved cube and draw the result",
		Long: `Apply a move sequence to a solved cube and draw the result as a net.
Unrecognized tokens are skipped and reported.

Examples:
  twisty apply "R U R' U'"
  twisty apply -n 4 r U2 "r'" --explain
  twisty apply "R R U U' F2" --simplify`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newCube()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			alg := strings.Join(args, " ")

			if skipped := c.ApplyNotation(alg); len(skipped) > 0 {
				a.logger.Warn("skipped unrecognized tokens", "tokens", strings.Join(skipped, " "))
			}
			moves, _ := twisty.ParseMoves(alg)
			a.logger.Debug("applied", "moves", len(moves), "cube", c.Debug())

			fmt.Fprintf(out, "Moves: %s (%d)\n", twisty.FormatMoves(moves), len(moves))
			if simplify {
				simplified, report := notation.SimplifyReport(moves)
				fmt.Fprintf(out, "Simplified: %s (%d, %d cancellations, %.0f%% of original)\n",
					twisty.FormatMoves(simplified), len(simplified), report.Cancellations,
					100*notation.Efficiency(moves, simplified))
			}
			if explain {
				for i, m := range moves {
					fmt.Fprintf(out, "%3d. %-4s %s\n", i+1, m.Notation(), notation.Describe(m))
				}
			}

			r := a.renderer(out)
			fmt.Fprintln(out)
			if view {
				fmt.Fprint(out, r.View(c))
			} else {
				fmt.Fprint(out, r.Net(c))
			}

			p := c.Progress()
			fmt.Fprintf(out, "\nSolved: %v (%d/6 faces complete)\n", p.Solved, p.SolvedFaces)
			return nil
		},
	}

	cmd.Flags().BoolVar(&simplify, "simplify", false, "Also print the simplified sequence")
	cmd.Flags().BoolVar(&explain, "explain", false, "Describe each move in words")
	cmd.Flags().BoolVar(&view, "view", false, "Draw the Up, Front and Right faces instead of the net")

	return cmd
}
