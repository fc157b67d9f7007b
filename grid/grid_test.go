package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tcg/grid"
)

//----------------------------------------------------------------------------//
// Moves
//----------------------------------------------------------------------------//

// TestMoveTokens verifies that names and codes map to the same unit vectors.
func TestMoveTokens(t *testing.T) {
	cases := []struct {
		name   string
		code   int
		dx, dy int
	}{
		{"up", 1, 0, 1},
		{"right", 2, 1, 0},
		{"down", 3, 0, -1},
		{"left", 4, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			byName, err := grid.ParseMove(tc.name)
			require.NoError(t, err)
			byCode, err := grid.MoveFromCode(tc.code)
			require.NoError(t, err)
			assert.Equal(t, byName, byCode)

			dx, dy := byName.Delta()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
			assert.Equal(t, tc.name, byName.String())

			back, err := grid.MoveFromDelta(dx, dy)
			require.NoError(t, err)
			assert.Equal(t, byName, back)
		})
	}
}

// TestMoveTokens_Invalid checks that unknown tokens are rejected.
func TestMoveTokens_Invalid(t *testing.T) {
	_, err := grid.ParseMove("north")
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
	_, err = grid.MoveFromCode(0)
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
	_, err = grid.MoveFromCode(5)
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
	_, err = grid.MoveFromDelta(1, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
	_, err = grid.ResolveMove(2.5)
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
	_, err = grid.ResolveMove(grid.Move(9))
	assert.ErrorIs(t, err, grid.ErrInvalidMove)
}

func TestResolveMove(t *testing.T) {
	for _, tok := range []any{"left", 4, grid.Left} {
		m, err := grid.ResolveMove(tok)
		require.NoError(t, err)
		assert.Equal(t, grid.Left, m)
	}
}

func TestMoveOpposite(t *testing.T) {
	for _, m := range grid.Moves {
		dx, dy := m.Delta()
		ox, oy := m.Opposite().Delta()
		assert.Equal(t, 0, dx+ox, m.String())
		assert.Equal(t, 0, dy+oy, m.String())
		assert.Equal(t, m, m.Opposite().Opposite())
	}
}

//----------------------------------------------------------------------------//
// Locations
//----------------------------------------------------------------------------//

// TestLocArithmetic covers Add without clamping and Sub as displacement.
func TestLocArithmetic(t *testing.T) {
	l := grid.Loc{X: 0, Y: 0}
	assert.Equal(t, grid.Loc{X: 0, Y: 1}, l.Add(grid.Up))
	assert.Equal(t, grid.Loc{X: -1, Y: 0}, l.Add(grid.Left), "moves are not clamped")
	assert.False(t, l.Add(grid.Left).OnGrid())

	dx, dy := grid.Displacement(grid.Loc{X: 2, Y: 1}, grid.Loc{X: 0, Y: 2})
	assert.Equal(t, 2, dx)
	assert.Equal(t, -1, dy)
}

// TestOnGrid verifies membership and the accepted argument shapes.
func TestOnGrid(t *testing.T) {
	valid := []any{
		grid.Loc{X: 0, Y: 0},
		grid.Loc{X: 2, Y: 2},
		grid.At(1, 2, 3),
		[2]int{1, 1},
		[]int{2, 0},
	}
	for _, v := range valid {
		ok, err := grid.OnGrid(v)
		require.NoError(t, err)
		assert.True(t, ok, "%v", v)
	}

	invalid := []any{
		grid.Loc{X: -1, Y: 0},
		grid.Loc{X: 3, Y: 1},
		[2]int{1, 3},
		[]int{0, -1},
	}
	for _, v := range invalid {
		ok, err := grid.OnGrid(v)
		require.NoError(t, err)
		assert.False(t, ok, "%v", v)
	}

	bad := []any{[]int{1}, []int{1, 2, 3}, "(1,1)", 5, nil}
	for _, v := range bad {
		_, err := grid.OnGrid(v)
		assert.ErrorIs(t, err, grid.ErrInvalidShape, "%v", v)
	}
}

// TestKeypad checks the phone-keypad numbering in both directions.
func TestKeypad(t *testing.T) {
	want := map[int]grid.Loc{
		1: {X: 0, Y: 2}, 2: {X: 1, Y: 2}, 3: {X: 2, Y: 2},
		4: {X: 0, Y: 1}, 5: {X: 1, Y: 1}, 6: {X: 2, Y: 1},
		7: {X: 0, Y: 0}, 8: {X: 1, Y: 0}, 9: {X: 2, Y: 0},
	}
	for n, loc := range want {
		got, err := grid.KeypadLoc(n)
		require.NoError(t, err)
		assert.Equal(t, loc, got)
		k, ok := loc.Keypad()
		require.True(t, ok)
		assert.Equal(t, n, k)
	}
	_, err := grid.KeypadLoc(0)
	assert.ErrorIs(t, err, grid.ErrInvalidKeypad)
	_, err = grid.KeypadLoc(10)
	assert.ErrorIs(t, err, grid.ErrInvalidKeypad)
	_, ok := grid.Loc{X: 3, Y: 0}.Keypad()
	assert.False(t, ok)
	assert.Len(t, grid.Cells(), 9)
}

//----------------------------------------------------------------------------//
// Orientation
//----------------------------------------------------------------------------//

// TestOrientArithmetic covers the fixed point 0 and the modulo-5 rotation.
func TestOrientArithmetic(t *testing.T) {
	for k := -7; k <= 7; k++ {
		assert.Equal(t, grid.NoOrient, grid.NoOrient.Add(k))
		assert.Equal(t, grid.NoOrient, grid.NoOrient.Sub(k))
	}
	for v := 1; v <= 4; v++ {
		for k := 0; k <= 6; k++ {
			assert.Equal(t, grid.Orient((v+k)%5), grid.Orient(v).Add(k))
		}
	}
	assert.Equal(t, grid.Orient(2), grid.Orient(1).Add(1))
	assert.Equal(t, grid.Orient(3), grid.Orient(1).Sub(3), "Euclidean modulo")
	// The one boundary where a non-zero orientation rotates into "no orientation".
	assert.Equal(t, grid.NoOrient, grid.Orient(4).Add(1))
	assert.Equal(t, grid.NoOrient, grid.Orient(1).Sub(1))
}

//----------------------------------------------------------------------------//
// Positions
//----------------------------------------------------------------------------//

func TestPositionMoveAndTurn(t *testing.T) {
	p := grid.At(0, 0, 1)
	up := p.Move(grid.Up)
	assert.Equal(t, grid.At(0, 1, 1), up)
	assert.Equal(t, grid.At(0, 0, 1), p, "receiver unchanged")

	cw, err := up.Turn(grid.TurnClock)
	require.NoError(t, err)
	assert.Equal(t, grid.At(0, 1, 2), cw)

	ccw, err := cw.Turn(grid.TurnCounter)
	require.NoError(t, err)
	assert.Equal(t, up, ccw)

	_, err = p.Turn(grid.Turn(0))
	assert.ErrorIs(t, err, grid.ErrInvalidTurn)

	tr, err := grid.ParseTurn("clock")
	require.NoError(t, err)
	assert.Equal(t, grid.TurnClock, tr)
	_, err = grid.ParseTurn("left")
	assert.ErrorIs(t, err, grid.ErrInvalidTurn)
}

// TestMoveSeq verifies the inclusive path with constant orientation.
func TestMoveSeq(t *testing.T) {
	start := grid.At(0, 0, 3)
	seq := start.MoveSeq([]grid.Move{grid.Right, grid.Up, grid.Right})
	want := []grid.Position{
		grid.At(0, 0, 3), grid.At(1, 0, 3), grid.At(1, 1, 3), grid.At(2, 1, 3),
	}
	assert.Equal(t, want, seq)

	only := start.MoveSeq(nil)
	assert.Equal(t, []grid.Position{start}, only)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(2,1)@4", grid.At(2, 1, 4).String())
	assert.Equal(t, "up", grid.Up.String())
	assert.Equal(t, "Move(0)", grid.Move(0).String())
}
