package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/lexer"
)

func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}

	return out
}

func TestTokenizeHeader(t *testing.T) {
	t.Parallel()

	src := "%utlx 1.0\ninput json\noutput json\n---\ninput"

	toks, err := lexer.New(src).Tokenize()
	require.NoError(t, err)

	got := kinds(toks)
	want := []lexer.Kind{
		lexer.Pragma, lexer.Float,
		lexer.KwInput, lexer.Ident,
		lexer.KwOutput, lexer.Ident,
		lexer.HeaderSep,
		lexer.KwInput,
		lexer.EOF,
	}
	assert.Equal(t, want, got)
}

func TestTokenizeOperatorsAndPunctuation(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src  string
		want []lexer.Kind
	}{
		"pipeline":   {"a |> b", []lexer.Kind{lexer.Ident, lexer.PipeGT, lexer.Ident, lexer.EOF}},
		"fat arrow":  {"x => y", []lexer.Kind{lexer.Ident, lexer.FatArrow, lexer.Ident, lexer.EOF}},
		"descendant": {"..name", []lexer.Kind{lexer.DotDot, lexer.Ident, lexer.EOF}},
		"attribute":  {"@id", []lexer.Kind{lexer.At, lexer.Ident, lexer.EOF}},
		"comparisons": {
			"a <= b && c != d || e >= f",
			[]lexer.Kind{
				lexer.Ident, lexer.Lte, lexer.Ident, lexer.AndAnd, lexer.Ident, lexer.NotEq, lexer.Ident,
				lexer.OrOr, lexer.Ident, lexer.Gte, lexer.Ident, lexer.EOF,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			toks, err := lexer.New(tc.src).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, kinds(toks))
		})
	}
}

func TestTokenizeHyphenatedIdentifier(t *testing.T) {
	t.Parallel()

	toks, err := lexer.New("input-foo").Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, lexer.Ident, toks[0].Kind)
	assert.Equal(t, "input-foo", toks[0].Literal)
}

func TestTokenizeStringEscapes(t *testing.T) {
	t.Parallel()

	toks, err := lexer.New(`"a\nb\"c"`).Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb\"c", toks[0].Literal)
}

func TestTokenizeNumbers(t *testing.T) {
	t.Parallel()

	toks, err := lexer.New("42 3.14 2.5e3").Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 4)

	assert.Equal(t, lexer.Int, toks[0].Kind)
	assert.Equal(t, int64(42), toks[0].Int)

	assert.Equal(t, lexer.Float, toks[1].Kind)
	assert.InDelta(t, 3.14, toks[1].Float, 0.0001)

	assert.Equal(t, lexer.Float, toks[2].Kind)
	assert.InDelta(t, 2500.0, toks[2].Float, 0.0001)
}

func TestSkipsComments(t *testing.T) {
	t.Parallel()

	toks, err := lexer.New("a // line comment\n/* block */ b").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, []lexer.Kind{lexer.Ident, lexer.Ident, lexer.EOF}, kinds(toks))
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	t.Parallel()

	_, err := lexer.New(`"abc`).Tokenize()
	require.Error(t, err)

	var lexErr *lexer.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestUnknownCharacterIsLexError(t *testing.T) {
	t.Parallel()

	_, err := lexer.New("a ~ b").Tokenize()
	require.ErrorIs(t, err, lexer.ErrLexical)
}
