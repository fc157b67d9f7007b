package language

import "errors"

var (
	// ErrEmptyPool indicates an operator pool with no candidates.
	ErrEmptyPool = errors.New("language: empty operator pool")
	// ErrNilOperator indicates a nil entry in an operator pool.
	ErrNilOperator = errors.New("language: nil operator in pool")
	// ErrNoDistinctOperator indicates the orientation pool holds only the location operator.
	ErrNoDistinctOperator = errors.New("language: no orientation operator distinct from the location operator")
	// ErrNeedRandSource indicates sampling without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("language: rng is required")
	// ErrInvalidOrder indicates an unknown signal order.
	ErrInvalidOrder = errors.New("language: invalid signal order")
	// ErrIncomplete indicates a language with an unbound operator.
	ErrIncomplete = errors.New("language: operator not bound")
	// ErrSameOperator indicates location and orientation use the same operator.
	ErrSameOperator = errors.New("language: location and orientation operators must differ")
)
