package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tcg/grid"
)

// demoCmd runs the reference walk-through
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through a sample scenario with a random language",
	Long: `Builds a small scenario by moving and turning a position around the
grid, samples a language and prints every trajectory from the first to
the last position that signals the third.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

// demoPositions walks (0,0)@1 up, right, clockwise twice, right and up.
func demoPositions() ([]grid.Position, error) {
	ps := []grid.Position{grid.At(0, 0, 1)}
	cur := ps[0]
	for _, step := range []any{grid.Up, grid.Right, grid.TurnClock, grid.TurnClock, grid.Right, grid.Up} {
		switch s := step.(type) {
		case grid.Move:
			cur = cur.Move(s)
		case grid.Turn:
			var err error
			if cur, err = cur.Turn(s); err != nil {
				return nil, err
			}
		}
		if !cur.Loc.OnGrid() {
			return nil, fmt.Errorf("demo walk left the grid at %s", cur)
		}
		ps = append(ps, cur)
	}
	return ps, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	ps, err := demoPositions()
	if err != nil {
		return err
	}
	cat, err := catalog()
	if err != nil {
		return err
	}
	lang, err := sampleLanguage(cat)
	if err != nil {
		return err
	}
	start, goal, finish := ps[0], ps[2], ps[len(ps)-1]

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "location operator:    %s\n", lang.Loc)
	fmt.Fprintf(w, "orientation operator: %s\n", lang.Orient)
	fmt.Fprintf(w, "signal order:         %s\n", lang.Order)
	fmt.Fprintf(w, "start %s  goal %s  finish %s\n\n", start, goal, finish)
	return compose(w, lang, start, finish, goal)
}
