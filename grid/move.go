package grid

import "fmt"

// Move is a single step in one of the four cardinal directions.
// The zero value is not a valid move.
type Move int

const (
	// Up increments Y.
	Up Move = iota + 1
	// Right increments X.
	Right
	// Down decrements Y.
	Down
	// Left decrements X.
	Left
)

// Moves lists the four directions in code order.
var Moves = [...]Move{Up, Right, Down, Left}

var moveNames = [...]string{Up: "up", Right: "right", Down: "down", Left: "left"}

var moveDeltas = [...][2]int{Up: {0, 1}, Right: {1, 0}, Down: {0, -1}, Left: {-1, 0}}

// Valid reports whether m is one of Up, Right, Down, Left.
func (m Move) Valid() bool {
	return m >= Up && m <= Left
}

// String returns the direction name, e.g. "up".
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Delta returns the unit displacement of m. Invalid moves have a zero delta.
func (m Move) Delta() (dx, dy int) {
	if !m.Valid() {
		return 0, 0
	}
	d := moveDeltas[m]
	return d[0], d[1]
}

// Opposite returns the direction pointing back. Invalid moves map to themselves.
func (m Move) Opposite() Move {
	if !m.Valid() {
		return m
	}
	return Move((int(m)+1)%4 + 1)
}

// ParseMove resolves a direction name ("up", "right", "down", "left").
func ParseMove(s string) (Move, error) {
	for _, m := range Moves {
		if moveNames[m] == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("ParseMove(%q): %w", s, ErrInvalidMove)
}

// MoveFromCode resolves an integer direction code 1..4.
func MoveFromCode(code int) (Move, error) {
	m := Move(code)
	if !m.Valid() {
		return 0, fmt.Errorf("MoveFromCode(%d): %w", code, ErrInvalidMove)
	}
	return m, nil
}

// MoveFromDelta resolves a unit displacement back into its direction.
func MoveFromDelta(dx, dy int) (Move, error) {
	for _, m := range Moves {
		if d := moveDeltas[m]; d[0] == dx && d[1] == dy {
			return m, nil
		}
	}
	return 0, fmt.Errorf("MoveFromDelta(%d,%d): %w", dx, dy, ErrInvalidMove)
}

// ResolveMove accepts a Move, a direction name or an integer code and
// returns the corresponding Move. Both token forms map to the same direction.
func ResolveMove(token any) (Move, error) {
	switch v := token.(type) {
	case Move:
		if !v.Valid() {
			return 0, fmt.Errorf("ResolveMove(%d): %w", int(v), ErrInvalidMove)
		}
		return v, nil
	case string:
		return ParseMove(v)
	case int:
		return MoveFromCode(v)
	default:
		return 0, fmt.Errorf("ResolveMove(%T): %w", token, ErrInvalidMove)
	}
}
