package notation

import "github.com/alecthomas/participle/v2"

type intAST struct {
	Neg bool `parser:"@'-'?"`
	Val int  `parser:"@Int"`
}

func (i intAST) value() int {
	if i.Neg {
		return -i.Val
	}
	return i.Val
}

type coordAST struct {
	X intAST `parser:"'(' @@ ','"`
	Y intAST `parser:"@@ ')'"`
}

type positionAST struct {
	Coord  *coordAST `parser:"( @@"`
	Keypad *int      `parser:"| '#' @Int )"`
	Orient *intAST   `parser:"( '@' @@ )?"`
}

type argAST struct {
	Name  string `parser:"@Ident '='"`
	Value intAST `parser:"@@"`
}

type callAST struct {
	Name string    `parser:"@Ident"`
	Args []*argAST `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

type orderAST struct {
	First  string `parser:"@( 'loc' | 'orient' ) ( '-' | ',' )"`
	Second string `parser:"@( 'loc' | 'orient' )"`
}

type languageAST struct {
	Loc    *callAST  `parser:"'loc' '=' @@ ';'?"`
	Orient *callAST  `parser:"'orient' '=' @@ ';'?"`
	Order  *orderAST `parser:"( 'order' '=' @@ )?"`
}

var (
	positionParser = participle.MustBuild[positionAST]()
	callParser     = participle.MustBuild[callAST]()
	orderParser    = participle.MustBuild[orderAST]()
	languageParser = participle.MustBuild[languageAST]()
)
