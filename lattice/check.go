package lattice

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
)

// CheckPath verifies that every position lies on the board and that each
// step is stationary or moves to an orthogonal neighbour. Orientation is
// not inspected. An empty path is accepted.
//
// Returns ErrOffLattice or ErrDiscontinuous wrapped with the offending index.
func (l *Lattice) CheckPath(path []grid.Position) error {
	for i, p := range path {
		if !l.Contains(p.Loc) {
			return fmt.Errorf("CheckPath: index %d at %s: %w", i, p.Loc, ErrOffLattice)
		}
		if i > 0 && !l.Adjacent(path[i-1].Loc, p.Loc) {
			return fmt.Errorf("CheckPath: index %d %s→%s: %w", i, path[i-1].Loc, p.Loc, ErrDiscontinuous)
		}
	}
	return nil
}

// IsShortest reports whether path is a shortest walk between its endpoints:
// its step count equals the BFS distance and no step is stationary.
func (l *Lattice) IsShortest(path []grid.Position) (bool, error) {
	if len(path) == 0 {
		return false, nil
	}
	if err := l.CheckPath(path); err != nil {
		return false, err
	}
	d, err := l.Distance(path[0].Loc, path[len(path)-1].Loc)
	if err != nil {
		return false, err
	}
	for i := 1; i < len(path); i++ {
		if path[i].Loc == path[i-1].Loc {
			return false, nil
		}
	}
	return d == len(path)-1, nil
}
