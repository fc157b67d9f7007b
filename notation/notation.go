package notation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/language"
	"github.com/katalvlaran/tcg/operator"
)

// ParsePosition parses "(x,y)@o", "(x,y)" or "#k@o".
// Coordinates are not bounds-checked; orientations must lie in 0..4.
func ParsePosition(s string) (grid.Position, error) {
	ast, err := positionParser.ParseString("position", s)
	if err != nil {
		return grid.Position{}, fmt.Errorf("ParsePosition(%q): %w: %w", s, ErrSyntax, err)
	}
	var p grid.Position
	if ast.Keypad != nil {
		loc, err := grid.KeypadLoc(*ast.Keypad)
		if err != nil {
			return grid.Position{}, fmt.Errorf("ParsePosition(%q): %w", s, err)
		}
		p.Loc = loc
	} else {
		p.Loc = grid.Loc{X: ast.Coord.X.value(), Y: ast.Coord.Y.value()}
	}
	if ast.Orient != nil {
		p.Orient = grid.Orient(ast.Orient.value())
		if !p.Orient.Valid() {
			return grid.Position{}, fmt.Errorf("ParsePosition(%q): %d: %w", s, p.Orient, ErrInvalidOrient)
		}
	}
	return p, nil
}

// FormatPosition renders p in the syntax ParsePosition accepts.
func FormatPosition(p grid.Position) string {
	return p.String()
}

// Call is a parsed operator call: a name and its argument bindings.
type Call struct {
	Name string
	Args map[string]int
}

// ParseCall parses "name" or "name(var=value, ...)".
func ParseCall(s string) (Call, error) {
	ast, err := callParser.ParseString("call", s)
	if err != nil {
		return Call{}, fmt.Errorf("ParseCall(%q): %w: %w", s, ErrSyntax, err)
	}
	c, err := ast.toCall()
	if err != nil {
		return Call{}, fmt.Errorf("ParseCall(%q): %w", s, err)
	}
	return c, nil
}

func (a *callAST) toCall() (Call, error) {
	c := Call{Name: a.Name, Args: make(map[string]int, len(a.Args))}
	for _, arg := range a.Args {
		if _, dup := c.Args[arg.Name]; dup {
			return Call{}, fmt.Errorf("%s.%s: %w", a.Name, arg.Name, ErrDuplicateArgument)
		}
		c.Args[arg.Name] = arg.Value.value()
	}
	return c, nil
}

// Bind looks the operator up in cat and binds the call's arguments.
func (c Call) Bind(cat *operator.Catalog) (operator.Bound, error) {
	op, err := cat.Get(c.Name)
	if err != nil {
		return operator.Bound{}, err
	}
	return op.Bind(c.Args)
}

// String renders c as "name(var=value, ...)" with variables sorted by
// name, or just "name" without arguments.
func (c Call) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	names := make([]string, 0, len(c.Args))
	for n := range c.Args {
		names = append(names, n)
	}
	slices.Sort(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%d", n, c.Args[n])
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ParseOrder parses a signal order such as "loc-orient" or "orient,loc".
func ParseOrder(s string) (language.SignalOrder, error) {
	ast, err := orderParser.ParseString("order", s)
	if err != nil {
		return 0, fmt.Errorf("ParseOrder(%q): %w: %w", s, ErrSyntax, err)
	}
	return ast.toOrder()
}

func (a *orderAST) toOrder() (language.SignalOrder, error) {
	return language.ParseSignalOrder(a.First + "-" + a.Second)
}

// LanguageSpec is a parsed language description. Order is zero when the
// text leaves it out.
type LanguageSpec struct {
	Loc    Call
	Orient Call
	Order  language.SignalOrder
}

// ParseLanguage parses "loc=<call> orient=<call> [order=<order>]".
func ParseLanguage(s string) (LanguageSpec, error) {
	ast, err := languageParser.ParseString("language", s)
	if err != nil {
		return LanguageSpec{}, fmt.Errorf("ParseLanguage(%q): %w: %w", s, ErrSyntax, err)
	}
	var spec LanguageSpec
	if spec.Loc, err = ast.Loc.toCall(); err != nil {
		return LanguageSpec{}, fmt.Errorf("ParseLanguage(%q): %w", s, err)
	}
	if spec.Orient, err = ast.Orient.toCall(); err != nil {
		return LanguageSpec{}, fmt.Errorf("ParseLanguage(%q): %w", s, err)
	}
	if ast.Order != nil {
		if spec.Order, err = ast.Order.toOrder(); err != nil {
			return LanguageSpec{}, fmt.Errorf("ParseLanguage(%q): %w", s, err)
		}
	}
	return spec, nil
}

// Build binds both calls against cat. A missing order defaults to
// language.LocFirst. The result is validated.
func (s LanguageSpec) Build(cat *operator.Catalog) (language.Language, error) {
	loc, err := s.Loc.Bind(cat)
	if err != nil {
		return language.Language{}, fmt.Errorf("Build: location: %w", err)
	}
	orient, err := s.Orient.Bind(cat)
	if err != nil {
		return language.Language{}, fmt.Errorf("Build: orientation: %w", err)
	}
	order := s.Order
	if order == 0 {
		order = language.LocFirst
	}
	lang := language.Language{Loc: loc, Orient: orient, Order: order}
	if err := lang.Validate(); err != nil {
		return language.Language{}, fmt.Errorf("Build: %w", err)
	}
	return lang, nil
}

// String renders s in the syntax ParseLanguage accepts.
func (s LanguageSpec) String() string {
	out := fmt.Sprintf("loc=%s orient=%s", s.Loc, s.Orient)
	if s.Order.Valid() {
		out += " order=" + s.Order.String()
	}
	return out
}
