package language

import (
	"fmt"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/tcg/operator"
)

// Language is a sender strategy: a bound location operator, a distinct
// bound orientation operator and a signal order.
type Language struct {
	Loc    operator.Bound
	Orient operator.Bound
	Order  SignalOrder
}

// Validate reports whether l is complete and consistent.
func (l Language) Validate() error {
	if l.Loc.IsZero() {
		return fmt.Errorf("Validate: location: %w", ErrIncomplete)
	}
	if l.Orient.IsZero() {
		return fmt.Errorf("Validate: orientation: %w", ErrIncomplete)
	}
	if l.Loc.Name() == l.Orient.Name() {
		return fmt.Errorf("Validate: %s: %w", l.Loc.Name(), ErrSameOperator)
	}
	if !l.Order.Valid() {
		return fmt.Errorf("Validate: %w", ErrInvalidOrder)
	}
	return nil
}

func (l Language) String() string {
	return fmt.Sprintf("loc=%s orient=%s order=%s", l.Loc, l.Orient, l.Order)
}

// New samples a language from the given operator pools.
func New(locPool, orientPool []*operator.Operator, opts ...Option) (Language, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Language{}, fmt.Errorf("New: %w", ErrNeedRandSource)
	}
	if len(locPool) == 0 {
		return Language{}, fmt.Errorf("New: location pool: %w", ErrEmptyPool)
	}
	if len(orientPool) == 0 {
		return Language{}, fmt.Errorf("New: orientation pool: %w", ErrEmptyPool)
	}
	if i := slices.Index(locPool, nil); i >= 0 {
		return Language{}, fmt.Errorf("New: location pool[%d]: %w", i, ErrNilOperator)
	}
	if i := slices.Index(orientPool, nil); i >= 0 {
		return Language{}, fmt.Errorf("New: orientation pool[%d]: %w", i, ErrNilOperator)
	}

	locOp := locPool[cfg.rng.Intn(len(locPool))]
	loc, err := BindRandom(locOp, cfg.rng)
	if err != nil {
		return Language{}, fmt.Errorf("New: %w", err)
	}
	cfg.logger.Debug("selected location operator",
		zap.String("operator", loc.Name()),
		zap.Any("values", loc.Values()))

	remain := make([]*operator.Operator, 0, len(orientPool))
	for _, op := range orientPool {
		if op.Name() != locOp.Name() {
			remain = append(remain, op)
		}
	}
	if len(remain) == 0 {
		return Language{}, fmt.Errorf("New: %s: %w", locOp.Name(), ErrNoDistinctOperator)
	}
	orient, err := BindRandom(remain[cfg.rng.Intn(len(remain))], cfg.rng)
	if err != nil {
		return Language{}, fmt.Errorf("New: %w", err)
	}
	cfg.logger.Debug("selected orientation operator",
		zap.String("operator", orient.Name()),
		zap.Any("values", orient.Values()))

	order := cfg.order
	if order == 0 {
		order = []SignalOrder{LocFirst, OrientFirst}[cfg.rng.Intn(2)]
	}
	cfg.logger.Debug("selected signal order", zap.Stringer("order", order))

	return Language{Loc: loc, Orient: orient, Order: order}, nil
}

// BindRandom binds every free variable of op to a value drawn uniformly
// from its domain. Variables are visited in formal order so that a seeded
// rng gives reproducible bindings.
func BindRandom(op *operator.Operator, rng *rand.Rand) (operator.Bound, error) {
	if op == nil {
		return operator.Bound{}, fmt.Errorf("BindRandom(nil): %w", ErrNilOperator)
	}
	if rng == nil {
		return operator.Bound{}, fmt.Errorf("BindRandom(%s): %w", op.Name(), ErrNeedRandSource)
	}
	vals := make(map[string]int)
	for _, v := range op.FreeVars() {
		dom := op.Domain(v)
		if len(dom) == 0 {
			// Left unbound; Bind reports it.
			continue
		}
		vals[v] = dom[rng.Intn(len(dom))]
	}
	return op.Bind(vals)
}
