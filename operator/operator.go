// SPDX-License-Identifier: MIT
// Package: tcg/operator
//
// operator.go: Operator definition, binding and invocation.
//
// Contract:
//   - vars[0] and vars[1] are reserved (position, orientation/placeholder);
//     vars[2:] are the free variables, in call order.
//   - Domain keys must be free variables; declared domains are non-empty.
//   - Bind requires a value for every free variable, inside its domain when
//     one is declared.
//   - Invoke calls fn(pos, orient, free values in formal order...) and
//     rejects empty results.

package operator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tcg/grid"
)

// Reserved formal variable names.
const (
	VarPosition    = "position"
	VarOrientation = "orientation"
	VarPlaceholder = "placeholder"
)

// reservedVars is the number of leading formal variables fixed at call time.
const reservedVars = 2

// Func maps a position, an orientation value and the bound free-variable
// values (in formal order) to a finite sequence of positions.
type Func func(pos grid.Position, orient grid.Orient, args ...int) ([]grid.Position, error)

// Operator is an immutable operator definition.
type Operator struct {
	name    string
	vars    []string
	domains map[string][]int
	fn      Func
}

// New validates and builds an operator definition. Inputs are copied.
func New(name string, vars []string, domains map[string][]int, fn Func) (*Operator, error) {
	if name == "" {
		return nil, fmt.Errorf("New: empty name: %w", ErrInvalidOperator)
	}
	if len(vars) < reservedVars {
		return nil, fmt.Errorf("New(%s): %d formal variables < %d: %w", name, len(vars), reservedVars, ErrInvalidOperator)
	}
	if fn == nil {
		return nil, fmt.Errorf("New(%s): nil function: %w", name, ErrInvalidOperator)
	}
	free := vars[reservedVars:]
	for i, v := range free {
		if v == "" || slices.Index(free, v) != i {
			return nil, fmt.Errorf("New(%s): free variable %q empty or repeated: %w", name, v, ErrInvalidOperator)
		}
	}
	doms := make(map[string][]int, len(domains))
	for v, vals := range domains {
		if !slices.Contains(free, v) {
			return nil, fmt.Errorf("New(%s): domain for %q: %w", name, v, ErrUnknownVariable)
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("New(%s): empty domain for %q: %w", name, v, ErrInvalidOperator)
		}
		doms[v] = slices.Clone(vals)
	}

	return &Operator{name: name, vars: slices.Clone(vars), domains: doms, fn: fn}, nil
}

// MustNew is New for statically known definitions; it panics on error.
func MustNew(name string, vars []string, domains map[string][]int, fn Func) *Operator {
	op, err := New(name, vars, domains, fn)
	if err != nil {
		panic(err)
	}
	return op
}

// Name returns the operator name.
func (o *Operator) Name() string { return o.name }

// String returns the operator name.
func (o *Operator) String() string { return o.name }

// Vars returns all formal variables, reserved ones first.
func (o *Operator) Vars() []string { return slices.Clone(o.vars) }

// FreeVars returns the variables bound per language, in call order.
func (o *Operator) FreeVars() []string { return slices.Clone(o.vars[reservedVars:]) }

// Domain returns the legal values of v, or nil when none is declared.
func (o *Operator) Domain(v string) []int { return slices.Clone(o.domains[v]) }

// Restrict returns a copy of o whose domain for v is narrowed to values.
// Every value must belong to the current domain, if one is declared.
func (o *Operator) Restrict(v string, values []int) (*Operator, error) {
	if !slices.Contains(o.vars[reservedVars:], v) {
		return nil, fmt.Errorf("Restrict(%s.%s): %w", o.name, v, ErrUnknownVariable)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("Restrict(%s.%s): empty domain: %w", o.name, v, ErrInvalidOperator)
	}
	if cur, ok := o.domains[v]; ok {
		for _, x := range values {
			if !slices.Contains(cur, x) {
				return nil, fmt.Errorf("Restrict(%s.%s=%d): %w", o.name, v, x, ErrValueOutOfDomain)
			}
		}
	}
	doms := make(map[string][]int, len(o.domains))
	for k, vals := range o.domains {
		doms[k] = vals
	}
	doms[v] = slices.Clone(values)

	return &Operator{name: o.name, vars: o.vars, domains: doms, fn: o.fn}, nil
}

// Bind fixes the free variables to vals and returns the bound operator.
func (o *Operator) Bind(vals map[string]int) (Bound, error) {
	free := o.vars[reservedVars:]
	for v := range vals {
		if !slices.Contains(free, v) {
			return Bound{}, fmt.Errorf("Bind(%s.%s): %w", o.name, v, ErrUnknownVariable)
		}
	}
	args := make([]int, len(free))
	for i, v := range free {
		x, ok := vals[v]
		if !ok {
			return Bound{}, fmt.Errorf("Bind(%s.%s): %w", o.name, v, ErrUnboundVariable)
		}
		if dom, ok := o.domains[v]; ok && !slices.Contains(dom, x) {
			return Bound{}, fmt.Errorf("Bind(%s.%s=%d) not in %v: %w", o.name, v, x, dom, ErrValueOutOfDomain)
		}
		args[i] = x
	}

	return Bound{op: o, args: args}, nil
}

// Bound is an operator with its free variables fixed: an intensional
// trajectory. The zero value is unbound.
type Bound struct {
	op   *Operator
	args []int
}

// IsZero reports whether b is the unbound zero value.
func (b Bound) IsZero() bool { return b.op == nil }

// Operator returns the underlying definition.
func (b Bound) Operator() *Operator { return b.op }

// Name returns the operator name, or "" for the zero value.
func (b Bound) Name() string {
	if b.op == nil {
		return ""
	}
	return b.op.name
}

// Values returns the bound free-variable values by name.
func (b Bound) Values() map[string]int {
	if b.op == nil {
		return nil
	}
	out := make(map[string]int, len(b.args))
	for i, v := range b.op.vars[reservedVars:] {
		out[v] = b.args[i]
	}
	return out
}

// Invoke runs the operator for pos and orient and returns the extensional
// trajectory. The result is never empty on success.
func (b Bound) Invoke(pos grid.Position, orient grid.Orient) ([]grid.Position, error) {
	if b.op == nil {
		return nil, fmt.Errorf("Invoke: %w", ErrUnboundOperator)
	}
	seq, err := b.op.fn(pos, orient, b.args...)
	if err != nil {
		return nil, fmt.Errorf("Invoke(%s): %w", b, err)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("Invoke(%s): %w", b, ErrEmptyOutput)
	}
	return seq, nil
}

// String renders b as "name(var=value, ...)", or just "name" when the
// operator has no free variables.
func (b Bound) String() string {
	if b.op == nil {
		return "<unbound>"
	}
	if len(b.args) == 0 {
		return b.op.name
	}
	var sb strings.Builder
	sb.WriteString(b.op.name)
	sb.WriteByte('(')
	for i, v := range b.op.vars[reservedVars:] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%d", v, b.args[i])
	}
	sb.WriteByte(')')
	return sb.String()
}
