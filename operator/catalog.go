package operator

import (
	"fmt"
	"slices"
)

// Catalog is an explicit, ordered registry of operator definitions.
type Catalog struct {
	ops    []*Operator
	byName map[string]*Operator
}

// NewCatalog registers ops in order.
func NewCatalog(ops ...*Operator) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]*Operator, len(ops))}
	for _, op := range ops {
		if err := c.Register(op); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds op. Names are unique within a catalog. The zero Catalog
// is empty and ready to use.
func (c *Catalog) Register(op *Operator) error {
	if op == nil {
		return fmt.Errorf("Register(nil): %w", ErrInvalidOperator)
	}
	if c.byName == nil {
		c.byName = make(map[string]*Operator)
	}
	if _, exists := c.byName[op.name]; exists {
		return fmt.Errorf("Register(%s): %w", op.name, ErrDuplicateOperator)
	}
	c.ops = append(c.ops, op)
	c.byName[op.name] = op
	return nil
}

// Replace swaps the registered definition with the same name as op,
// keeping its position in the catalog.
func (c *Catalog) Replace(op *Operator) error {
	if op == nil {
		return fmt.Errorf("Replace(nil): %w", ErrInvalidOperator)
	}
	if _, ok := c.byName[op.name]; !ok {
		return fmt.Errorf("Replace(%s): %w", op.name, ErrUnknownOperator)
	}
	i := slices.IndexFunc(c.ops, func(o *Operator) bool { return o.name == op.name })
	c.ops[i] = op
	c.byName[op.name] = op
	return nil
}

// Lookup returns the operator registered under name.
func (c *Catalog) Lookup(name string) (*Operator, bool) {
	op, ok := c.byName[name]
	return op, ok
}

// Get is Lookup returning ErrUnknownOperator for missing names.
func (c *Catalog) Get(name string) (*Operator, error) {
	op, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrUnknownOperator)
	}
	return op, nil
}

// Select returns the operators named in names, in that order.
func (c *Catalog) Select(names []string) ([]*Operator, error) {
	out := make([]*Operator, 0, len(names))
	for _, n := range names {
		op, err := c.Get(n)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}

// Names returns operator names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.name
	}
	return out
}

// All returns the registered operators in registration order.
func (c *Catalog) All() []*Operator {
	return slices.Clone(c.ops)
}

// Len returns the number of registered operators.
func (c *Catalog) Len() int { return len(c.ops) }
