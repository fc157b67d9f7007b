package lattice

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
)

// Lattice is a rectangular board of cells with 4-connectivity. It is
// immutable once built.
type Lattice struct {
	Width, Height   int
	neighborOffsets [][2]int
}

// New builds a Width×Height lattice.
// Returns ErrEmptyLattice if either dimension is below one.
func New(width, height int) (*Lattice, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrEmptyLattice)
	}
	offsets := make([][2]int, 0, len(grid.Moves))
	for _, m := range grid.Moves {
		dx, dy := m.Delta()
		offsets = append(offsets, [2]int{dx, dy})
	}

	return &Lattice{Width: width, Height: height, neighborOffsets: offsets}, nil
}

// Standard returns the 3×3 game board.
func Standard() *Lattice {
	l, _ := New(grid.Size, grid.Size)
	return l
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Contains reports whether loc lies within the board.
func (l *Lattice) Contains(loc grid.Loc) bool {
	return l.InBounds(loc.X, loc.Y)
}

// Len returns the number of cells.
func (l *Lattice) Len() int {
	return l.Width * l.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (l *Lattice) index(x, y int) int {
	return y*l.Width + x
}

// Coordinate converts a row-major index back to a location.
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) grid.Loc {
	return grid.Loc{X: idx % l.Width, Y: idx / l.Width}
}

// Neighbors returns the on-board orthogonal neighbours of loc in
// Up, Right, Down, Left order.
func (l *Lattice) Neighbors(loc grid.Loc) []grid.Loc {
	out := make([]grid.Loc, 0, len(l.neighborOffsets))
	for _, d := range l.neighborOffsets {
		nx, ny := loc.X+d[0], loc.Y+d[1]
		if l.InBounds(nx, ny) {
			out = append(out, grid.Loc{X: nx, Y: ny})
		}
	}
	return out
}

// Adjacent reports whether b is reachable from a in at most one step.
// A location is adjacent to itself.
func (l *Lattice) Adjacent(a, b grid.Loc) bool {
	dx, dy := b.Sub(a)
	if dx == 0 && dy == 0 {
		return true
	}
	for _, d := range l.neighborOffsets {
		if d[0] == dx && d[1] == dy {
			return true
		}
	}
	return false
}
