// SPDX-License-Identifier: MIT
// Package: tcg/operator
//
// Package operator defines communicative operators: named, parameterised
// pure functions that turn a goal position into a short sequence of
// positions on the board (an extensional trajectory).
//
// An Operator carries:
//
//   - a name,
//   - an ordered list of formal variables; the first two are reserved for
//     the goal position and its orientation (a placeholder when the operator
//     ignores orientation),
//   - a finite domain of legal values for each remaining (free) variable,
//   - the function itself.
//
// Binding chooses one value per free variable and yields a Bound operator:
// the intensional trajectory. Invoking a Bound operator with a position and
// orientation produces the extensional trajectory. Binding is the only
// configuration step; afterwards a Bound value is immutable and its Invoke
// is deterministic.
//
// Catalogs are explicit registries built from constructor calls; nothing is
// discovered at runtime. Builtins() returns the reference set:
//
//	point   ()                        -> [pos]
//	pause   (duration ∈ {1,2})        -> duration+1 copies of pos
//	wiggle  (width ∈ {1,2},           -> pos, then `repetition` times out
//	         repetition ∈ {1,2})         `width` steps along the orientation
//	                                     direction and back again
//
// Errors:
//
//   - ErrInvalidOperator:   malformed definition passed to New.
//   - ErrUnknownVariable:   binding names a variable the operator lacks.
//   - ErrUnboundVariable:   a free variable has no bound value.
//   - ErrValueOutOfDomain:  a bound value is outside the declared domain.
//   - ErrUnboundOperator:   Invoke on the zero Bound.
//   - ErrEmptyOutput:       the operator function returned no positions.
//   - ErrDuplicateOperator / ErrUnknownOperator: catalog registration / lookup.
package operator
