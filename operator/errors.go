// SPDX-License-Identifier: MIT
// Package: tcg/operator
//
// errors.go: sentinel errors for the operator package.
// Callers branch with errors.Is; context is attached with %w.

package operator

import "errors"

// ErrInvalidOperator indicates a malformed operator definition
// (empty name, fewer than two formal variables, domain for an unknown
// variable, empty domain, nil function).
var ErrInvalidOperator = errors.New("operator: invalid definition")

// ErrUnknownVariable indicates a binding for a variable that is not one of
// the operator's free variables.
var ErrUnknownVariable = errors.New("operator: unknown variable")

// ErrUnboundVariable indicates a free variable left without a value.
var ErrUnboundVariable = errors.New("operator: free variable not bound")

// ErrValueOutOfDomain indicates a bound value outside the variable's domain.
var ErrValueOutOfDomain = errors.New("operator: value outside domain")

// ErrUnboundOperator indicates use of the zero Bound value.
var ErrUnboundOperator = errors.New("operator: operator not bound")

// ErrEmptyOutput indicates an operator function that produced no positions.
var ErrEmptyOutput = errors.New("operator: empty output sequence")

// ErrDuplicateOperator indicates a second registration under the same name.
var ErrDuplicateOperator = errors.New("operator: duplicate operator name")

// ErrUnknownOperator indicates a catalog lookup for an unregistered name.
var ErrUnknownOperator = errors.New("operator: unknown operator")
