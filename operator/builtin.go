package operator

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
)

// Builtin operator names.
const (
	NamePoint  = "point"
	NamePause  = "pause"
	NameWiggle = "wiggle"
)

// Builtin free-variable names.
const (
	VarDuration   = "duration"
	VarWidth      = "width"
	VarRepetition = "repetition"
)

// Builtins returns a fresh catalog holding point, pause and wiggle.
func Builtins() *Catalog {
	c, err := NewCatalog(Point(), Pause(), Wiggle())
	if err != nil {
		panic(err)
	}
	return c
}

// Point stays on the given position for a single step.
func Point() *Operator {
	return MustNew(NamePoint,
		[]string{VarPosition, VarPlaceholder},
		nil,
		func(pos grid.Position, _ grid.Orient, _ ...int) ([]grid.Position, error) {
			return []grid.Position{pos}, nil
		})
}

// Pause stays on the given position for duration extra steps.
func Pause() *Operator {
	return MustNew(NamePause,
		[]string{VarPosition, VarPlaceholder, VarDuration},
		map[string][]int{VarDuration: {1, 2}},
		func(pos grid.Position, _ grid.Orient, args ...int) ([]grid.Position, error) {
			dur := args[0]
			if dur < 0 {
				return nil, fmt.Errorf("%s: duration %d < 0: %w", NamePause, dur, ErrValueOutOfDomain)
			}
			seq := make([]grid.Position, dur+1)
			for i := range seq {
				seq[i] = pos
			}
			return seq, nil
		})
}

// Wiggle moves back and forth between the given position and the location
// width steps away in the direction encoded by the orientation (1 up,
// 2 right, 3 down, 4 left), repetition times. Orientation 0 has no direction.
func Wiggle() *Operator {
	return MustNew(NameWiggle,
		[]string{VarPosition, VarOrientation, VarWidth, VarRepetition},
		map[string][]int{VarWidth: {1, 2}, VarRepetition: {1, 2}},
		func(pos grid.Position, orient grid.Orient, args ...int) ([]grid.Position, error) {
			dir, err := grid.MoveFromCode(int(orient))
			if err != nil {
				return nil, fmt.Errorf("%s: orientation %d: %w", NameWiggle, orient, err)
			}
			width, rep := args[0], args[1]
			if width < 1 || rep < 1 {
				return nil, fmt.Errorf("%s: width=%d repetition=%d: %w", NameWiggle, width, rep, ErrValueOutOfDomain)
			}
			// arm[i] is i steps out from pos.
			arm := make([]grid.Position, width+1)
			arm[0] = pos
			for i := 1; i <= width; i++ {
				arm[i] = arm[i-1].Move(dir)
			}
			seq := make([]grid.Position, 0, 1+2*width*rep)
			seq = append(seq, pos)
			for r := 0; r < rep; r++ {
				seq = append(seq, arm[1:]...)
				for i := width - 1; i >= 0; i-- {
					seq = append(seq, arm[i])
				}
			}
			return seq, nil
		})
}
