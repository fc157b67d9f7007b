// SPDX-License-Identifier: MIT
// Package: tcg/route
//
// route.go: Route type and the direct-route enumerator.
//
// Contract:
//   - Every route starts at start, ends at finish's location, has
//     |Δx|+|Δy|+1 positions and start's orientation throughout.
//   - Consecutive positions differ by exactly one grid step.
//   - Routes are yielded in composition order (see compositions.go).
//
// Complexity:
//   - Time:  O(C(|Δx|+|Δy|, |Δy|) · (|Δx|+|Δy|)) for a full pass.
//   - Space: O(|Δx|+|Δy|) per yielded route.

package route

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/tcg/grid"
)

// Route is a sequence of positions, each one grid step from the previous,
// with constant orientation.
type Route []grid.Position

// First returns the first position. The route must be non-empty.
func (r Route) First() grid.Position { return r[0] }

// Last returns the last position. The route must be non-empty.
func (r Route) Last() grid.Position { return r[len(r)-1] }

// Moves reconstructs the move list that produced r.
// Returns grid.ErrInvalidMove if two consecutive positions are not one step apart.
func (r Route) Moves() ([]grid.Move, error) {
	if len(r) == 0 {
		return nil, nil
	}
	out := make([]grid.Move, 0, len(r)-1)
	for i := 1; i < len(r); i++ {
		dx, dy := grid.Displacement(r[i].Loc, r[i-1].Loc)
		m, err := grid.MoveFromDelta(dx, dy)
		if err != nil {
			return nil, fmt.Errorf("Moves: step %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// Displacement sums the consecutive position deltas of r.
func (r Route) Displacement() (dx, dy int) {
	for i := 1; i < len(r); i++ {
		sx, sy := grid.Displacement(r[i].Loc, r[i-1].Loc)
		dx += sx
		dy += sy
	}
	return dx, dy
}

func (r Route) String() string {
	parts := make([]string, len(r))
	for i, p := range r {
		parts[i] = p.String()
	}
	return strings.Join(parts, " → ")
}

// Axes returns the x- and y-direction used by every direct route for the
// displacement (dx, dy).
func Axes(dx, dy int) (xMove, yMove grid.Move) {
	xMove, yMove = grid.Right, grid.Up
	if dx < 0 {
		xMove = grid.Left
	}
	if dy < 0 {
		yMove = grid.Down
	}
	return xMove, yMove
}

// Template expands a composition into a move list: parts[j] x-moves followed
// by one y-move for every part, with the trailing y-move dropped.
func Template(parts []int, xMove, yMove grid.Move) []grid.Move {
	if len(parts) == 0 {
		return nil
	}
	n := len(parts) - 1
	for _, p := range parts {
		n += p
	}
	moves := make([]grid.Move, 0, n)
	for j, p := range parts {
		for i := 0; i < p; i++ {
			moves = append(moves, xMove)
		}
		if j < len(parts)-1 {
			moves = append(moves, yMove)
		}
	}
	return moves
}

// Direct yields every direct route from start to finish's location.
func Direct(start, finish grid.Position) iter.Seq[Route] {
	dx, dy := grid.Displacement(finish.Loc, start.Loc)
	xMove, yMove := Axes(dx, dy)
	return func(yield func(Route) bool) {
		for parts := range Compositions(abs(dy)+1, abs(dx)) {
			if !yield(Route(start.MoveSeq(Template(parts, xMove, yMove)))) {
				return
			}
		}
	}
}

// Count returns the number of direct routes from start to finish without
// enumerating them: C(|Δx|+|Δy|, |Δy|).
func Count(start, finish grid.Position) int {
	dx, dy := grid.Displacement(finish.Loc, start.Loc)
	return Binomial(abs(dx)+abs(dy), abs(dy))
}

// Collect materialises seq for callers that need more than one pass.
func Collect(seq iter.Seq[Route]) []Route {
	return slices.Collect(seq)
}

// All is Collect(Direct(start, finish)).
func All(start, finish grid.Position) []Route {
	return Collect(Direct(start, finish))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
