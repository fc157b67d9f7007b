package grid

import "fmt"

// Lattice bounds: coordinates on the board lie in [MinCoord, MaxCoord].
const (
	Size     = 3
	MinCoord = 0
	MaxCoord = Size - 1
)

// Loc is a lattice location. It is a plain value; equality is structural.
type Loc struct {
	X, Y int
}

// Add returns the location one step from l in direction m.
// The result is not bounds-checked.
func (l Loc) Add(m Move) Loc {
	dx, dy := m.Delta()
	return Loc{X: l.X + dx, Y: l.Y + dy}
}

// Sub returns the displacement l − o.
func (l Loc) Sub(o Loc) (dx, dy int) {
	return l.X - o.X, l.Y - o.Y
}

// OnGrid reports whether both coordinates lie on the 3×3 board.
func (l Loc) OnGrid() bool {
	return inRange(l.X) && inRange(l.Y)
}

// Keypad returns the keypad number 1..9 of l, or false when l is off the board.
func (l Loc) Keypad() (int, bool) {
	if !l.OnGrid() {
		return 0, false
	}
	return (MaxCoord-l.Y)*Size + l.X + 1, true
}

func (l Loc) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Displacement returns (Δx, Δy) = a − b.
func Displacement(a, b Loc) (dx, dy int) {
	return a.Sub(b)
}

// KeypadLoc returns the location of keypad number n (1..9).
func KeypadLoc(n int) (Loc, error) {
	if n < 1 || n > Size*Size {
		return Loc{}, fmt.Errorf("KeypadLoc(%d): %w", n, ErrInvalidKeypad)
	}
	i := n - 1
	return Loc{X: i % Size, Y: MaxCoord - i/Size}, nil
}

// Cells returns every on-board location in keypad order.
func Cells() []Loc {
	out := make([]Loc, 0, Size*Size)
	for n := 1; n <= Size*Size; n++ {
		l, _ := KeypadLoc(n)
		out = append(out, l)
	}
	return out
}

// OnGrid reports whether v denotes a location on the board. It accepts a
// Loc, a Position (its location), a [2]int, or an []int of length 2.
// Any other shape yields ErrInvalidShape.
func OnGrid(v any) (bool, error) {
	switch loc := v.(type) {
	case Loc:
		return loc.OnGrid(), nil
	case Position:
		return loc.Loc.OnGrid(), nil
	case [2]int:
		return Loc{X: loc[0], Y: loc[1]}.OnGrid(), nil
	case []int:
		if len(loc) != 2 {
			return false, fmt.Errorf("OnGrid: pair of length %d: %w", len(loc), ErrInvalidShape)
		}
		return Loc{X: loc[0], Y: loc[1]}.OnGrid(), nil
	default:
		return false, fmt.Errorf("OnGrid(%T): %w", v, ErrInvalidShape)
	}
}

func inRange(c int) bool {
	return c >= MinCoord && c <= MaxCoord
}
