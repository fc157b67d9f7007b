// Package grid defines the immutable value model of the tcg board: a 3×3
// integer lattice of locations, a five-symbol orientation space, and
// positions combining the two.
//
// What:
//
//   - Loc is a lattice coordinate pair (X, Y), each in {0,1,2} when on the board.
//   - Move is one of the four cardinal directions (Up, Right, Down, Left),
//     addressable by name ("up") or by integer code (1..4).
//   - Orient is a token orientation in {0,1,2,3,4}; 0 means "no orientation"
//     and is a fixed point of every rotation.
//   - Position is a Loc plus an Orient. Moving keeps the orientation, turning
//     keeps the location.
//
// Arithmetic never mutates and never clamps: stepping off the board yields an
// off-board Loc, and callers that need validity ask OnGrid explicitly.
//
// Orientation arithmetic:
//
//	Orient(0).Add(k) == 0                   for every k
//	Orient(v).Add(k) == (v + k) mod 5       for v in 1..4
//	Orient(v).Sub(k) == (v - k) mod 5       Euclidean modulo
//
// Note that Orient(4).Add(1) == Orient(0): a non-zero orientation can rotate
// into the "no orientation" symbol. The arithmetic is kept as observed.
//
// Keypad numbering maps the nine cells to 1..9 as on a phone keypad:
//
//	1 2 3      (0,2) (1,2) (2,2)
//	4 5 6  ->  (0,1) (1,1) (2,1)
//	7 8 9      (0,0) (1,0) (2,0)
//
// Errors:
//
//   - ErrInvalidMove: unknown direction name, code or delta.
//   - ErrInvalidTurn: turn token other than "clock" / "counter".
//   - ErrInvalidShape: OnGrid argument is not a location-shaped value.
//   - ErrInvalidKeypad: keypad number outside 1..9.
package grid
