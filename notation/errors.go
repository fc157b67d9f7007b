package notation

import "errors"

var (
	// ErrSyntax indicates text that does not match the grammar.
	ErrSyntax = errors.New("notation: syntax error")
	// ErrInvalidOrient indicates an orientation outside 0..4.
	ErrInvalidOrient = errors.New("notation: orientation out of range")
	// ErrDuplicateArgument indicates a variable assigned twice in one call.
	ErrDuplicateArgument = errors.New("notation: duplicate argument")
)
