package grid

import "errors"

var (
	// ErrInvalidMove indicates an unrecognized move token, code or delta.
	ErrInvalidMove = errors.New("grid: invalid move")
	// ErrInvalidTurn indicates a turn token other than clock or counter.
	ErrInvalidTurn = errors.New("grid: invalid turn")
	// ErrInvalidShape indicates a location value of the wrong shape or arity.
	ErrInvalidShape = errors.New("grid: location must be a Loc, Position or coordinate pair")
	// ErrInvalidKeypad indicates a keypad number outside 1..9.
	ErrInvalidKeypad = errors.New("grid: keypad number out of range")
)
