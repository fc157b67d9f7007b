package grid

import "fmt"

// Turn is a rotation instruction for a Position.
type Turn int

const (
	// TurnClock rotates one step clockwise.
	TurnClock Turn = iota + 1
	// TurnCounter rotates one step counter-clockwise.
	TurnCounter
)

// ParseTurn resolves "clock" or "counter".
func ParseTurn(s string) (Turn, error) {
	switch s {
	case "clock":
		return TurnClock, nil
	case "counter":
		return TurnCounter, nil
	}
	return 0, fmt.Errorf("ParseTurn(%q): %w", s, ErrInvalidTurn)
}

func (t Turn) String() string {
	switch t {
	case TurnClock:
		return "clock"
	case TurnCounter:
		return "counter"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// Position is a location together with an orientation.
type Position struct {
	Loc    Loc
	Orient Orient
}

// At is shorthand for Position{Loc{x, y}, o}.
func At(x, y int, o Orient) Position {
	return Position{Loc: Loc{X: x, Y: y}, Orient: o}
}

// Move returns the position one step in direction m with the same orientation.
func (p Position) Move(m Move) Position {
	return Position{Loc: p.Loc.Add(m), Orient: p.Orient}
}

// MoveSeq applies moves one after another and returns the inclusive path,
// starting with p itself. Orientation is constant along the path.
func (p Position) MoveSeq(moves []Move) []Position {
	seq := make([]Position, 1, len(moves)+1)
	seq[0] = p
	for _, m := range moves {
		seq = append(seq, seq[len(seq)-1].Move(m))
	}
	return seq
}

// Turn returns the position rotated one step in direction t.
func (p Position) Turn(t Turn) (Position, error) {
	switch t {
	case TurnClock:
		return Position{Loc: p.Loc, Orient: p.Orient.Add(1)}, nil
	case TurnCounter:
		return Position{Loc: p.Loc, Orient: p.Orient.Sub(1)}, nil
	}
	return p, fmt.Errorf("Turn(%d): %w", int(t), ErrInvalidTurn)
}

// String renders p as "(x,y)@o".
func (p Position) String() string {
	return fmt.Sprintf("%s@%d", p.Loc, int(p.Orient))
}
