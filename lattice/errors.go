package lattice

import "errors"

var (
	// ErrEmptyLattice indicates a board with no rows or no columns.
	ErrEmptyLattice = errors.New("lattice: board must have at least one row and one column")
	// ErrOffLattice indicates a location outside the board.
	ErrOffLattice = errors.New("lattice: location outside the board")
	// ErrDiscontinuous indicates consecutive path positions that are not adjacent.
	ErrDiscontinuous = errors.New("lattice: consecutive positions are not adjacent")
)
