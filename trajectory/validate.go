package trajectory

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/lattice"
)

// Validate checks that t runs from start's location to finish's location
// and is walkable on board: every position on the board and every step
// stationary or orthogonal. A nil board means lattice.Standard().
func Validate(t Trajectory, start, finish grid.Position, board *lattice.Lattice) error {
	if len(t) == 0 {
		return fmt.Errorf("Validate: %w", ErrEmptyTrajectory)
	}
	if t[0].Loc != start.Loc || t[len(t)-1].Loc != finish.Loc {
		return fmt.Errorf("Validate: %s…%s, want %s…%s: %w",
			t[0].Loc, t[len(t)-1].Loc, start.Loc, finish.Loc, ErrEndpoints)
	}
	if board == nil {
		board = lattice.Standard()
	}
	if err := board.CheckPath(t); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	return nil
}
