package trajectory

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/language"
)

// Segments invokes the language's operators on goal and returns their
// outputs in signal order. Both operators receive the goal position and
// the goal orientation.
func Segments(lang language.Language, goal grid.Position) (first, second []grid.Position, err error) {
	if err := lang.Validate(); err != nil {
		return nil, nil, fmt.Errorf("Segments: %w", err)
	}
	locSeq, err := lang.Loc.Invoke(goal, goal.Orient)
	if err != nil {
		return nil, nil, fmt.Errorf("Segments: location: %w", err)
	}
	orientSeq, err := lang.Orient.Invoke(goal, goal.Orient)
	if err != nil {
		return nil, nil, fmt.Errorf("Segments: orientation: %w", err)
	}
	if lang.Order == language.OrientFirst {
		return orientSeq, locSeq, nil
	}
	return locSeq, orientSeq, nil
}

// Prepare builds the plan for lang, goal and the start/finish pair.
func Prepare(lang language.Language, goal, start, finish grid.Position, opts ...Option) (*Plan, error) {
	first, second, err := Segments(lang, goal)
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}
	return NewPlan(start, finish, [][]grid.Position{first, second}, opts...)
}

// Compose returns every candidate trajectory from start to finish that
// communicates goal with lang. Configuration errors surface here; the
// returned sequence is lazy and recomputes on each pass.
func Compose(lang language.Language, goal, start, finish grid.Position, opts ...Option) (iter.Seq[Trajectory], error) {
	p, err := Prepare(lang, goal, start, finish, opts...)
	if err != nil {
		return nil, fmt.Errorf("Compose: %w", err)
	}
	return p.All(), nil
}

// Count returns how many trajectories Compose would yield.
func Count(lang language.Language, goal, start, finish grid.Position) (int, error) {
	p, err := Prepare(lang, goal, start, finish)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return p.Count(), nil
}
