package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/language"
	"github.com/katalvlaran/tcg/notation"
	"github.com/katalvlaran/tcg/operator"
)

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Position
	}{
		{"(2,1)@3", grid.At(2, 1, 3)},
		{"( 0 , 0 )", grid.At(0, 0, 0)},
		{"(-1,3)@1", grid.At(-1, 3, 1)},
		{"#1@2", grid.At(0, 2, 2)},
		{"#9", grid.At(2, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := notation.ParsePosition(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			back, err := notation.ParsePosition(notation.FormatPosition(got))
			require.NoError(t, err)
			assert.Equal(t, got, back)
		})
	}
}

// TestParsePosition_Errors covers syntax, keypad range and orientation range.
func TestParsePosition_Errors(t *testing.T) {
	for in, want := range map[string]error{
		"(1,1":     notation.ErrSyntax,
		"1,1":      notation.ErrSyntax,
		"(1,1)@":   notation.ErrSyntax,
		"#0":       grid.ErrInvalidKeypad,
		"(1,1)@5":  notation.ErrInvalidOrient,
		"(1,1)@-1": notation.ErrInvalidOrient,
	} {
		_, err := notation.ParsePosition(in)
		assert.ErrorIs(t, err, want, in)
	}
}

func TestParseCall(t *testing.T) {
	c, err := notation.ParseCall("wiggle(width=2, repetition=1)")
	require.NoError(t, err)
	assert.Equal(t, "wiggle", c.Name)
	assert.Equal(t, map[string]int{"width": 2, "repetition": 1}, c.Args)
	assert.Equal(t, "wiggle(repetition=1, width=2)", c.String())

	bare, err := notation.ParseCall("point")
	require.NoError(t, err)
	assert.Empty(t, bare.Args)
	assert.Equal(t, "point", bare.String())

	empty, err := notation.ParseCall("point()")
	require.NoError(t, err)
	assert.Empty(t, empty.Args)

	_, err = notation.ParseCall("pause(duration=1, duration=2)")
	assert.ErrorIs(t, err, notation.ErrDuplicateArgument)
	_, err = notation.ParseCall("pause(duration)")
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

func TestCall_Bind(t *testing.T) {
	cat := operator.Builtins()
	c, err := notation.ParseCall("pause(duration=2)")
	require.NoError(t, err)
	b, err := c.Bind(cat)
	require.NoError(t, err)
	assert.Equal(t, "pause(duration=2)", b.String())

	_, err = notation.Call{Name: "spin"}.Bind(cat)
	assert.ErrorIs(t, err, operator.ErrUnknownOperator)
	_, err = notation.Call{Name: "pause", Args: map[string]int{"duration": 9}}.Bind(cat)
	assert.ErrorIs(t, err, operator.ErrValueOutOfDomain)
}

func TestParseOrder(t *testing.T) {
	o, err := notation.ParseOrder("orient,loc")
	require.NoError(t, err)
	assert.Equal(t, language.OrientFirst, o)
	o, err = notation.ParseOrder("loc-orient")
	require.NoError(t, err)
	assert.Equal(t, language.LocFirst, o)

	_, err = notation.ParseOrder("loc-loc")
	assert.ErrorIs(t, err, language.ErrInvalidOrder)
	_, err = notation.ParseOrder("up-down")
	assert.ErrorIs(t, err, notation.ErrSyntax)
}

// TestParseLanguage parses, builds and round-trips a language description.
func TestParseLanguage(t *testing.T) {
	spec, err := notation.ParseLanguage("loc=point orient=wiggle(width=1, repetition=2) order=orient-loc")
	require.NoError(t, err)
	assert.Equal(t, "point", spec.Loc.Name)
	assert.Equal(t, language.OrientFirst, spec.Order)

	lang, err := spec.Build(operator.Builtins())
	require.NoError(t, err)
	assert.Equal(t, "wiggle", lang.Orient.Name())
	assert.Equal(t, language.OrientFirst, lang.Order)

	again, err := notation.ParseLanguage(spec.String())
	require.NoError(t, err)
	assert.Equal(t, spec, again)

	noOrder, err := notation.ParseLanguage("loc=pause(duration=1); orient=point")
	require.NoError(t, err)
	assert.Zero(t, noOrder.Order)
	built, err := noOrder.Build(operator.Builtins())
	require.NoError(t, err)
	assert.Equal(t, language.LocFirst, built.Order)
}

func TestParseLanguage_Errors(t *testing.T) {
	_, err := notation.ParseLanguage("orient=point loc=pause(duration=1)")
	assert.ErrorIs(t, err, notation.ErrSyntax)

	spec, err := notation.ParseLanguage("loc=point orient=point")
	require.NoError(t, err)
	_, err = spec.Build(operator.Builtins())
	assert.ErrorIs(t, err, language.ErrSameOperator)

	spec, err = notation.ParseLanguage("loc=point orient=spin")
	require.NoError(t, err)
	_, err = spec.Build(operator.Builtins())
	assert.ErrorIs(t, err, operator.ErrUnknownOperator)
}
