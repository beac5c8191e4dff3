package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utlx-lang/utlx/lexer"
	"github.com/utlx-lang/utlx/parser"
)

func TestParseHeader_SingleInputSingleOutput(t *testing.T) {
	t.Parallel()

	header, prog, err := parser.Parse("%utlx 1.0\ninput json\noutput xml\n---\n$input\n")
	require.NoError(t, err)

	assert.Equal(t, "1.0", header.Version)
	require.Len(t, header.Inputs, 1)
	assert.Equal(t, "", header.Inputs[0].Name)
	assert.Equal(t, "json", header.Inputs[0].Format)
	assert.Nil(t, header.Inputs[0].Options)

	require.Len(t, header.Outputs, 1)
	assert.Equal(t, "", header.Outputs[0].Name)
	assert.Equal(t, "xml", header.Outputs[0].Format)
	assert.False(t, header.MultiOutput())

	ident, ok := prog.Body.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "$input", ident.Name)
}

func TestParseHeader_NamedInputsWithOptions(t *testing.T) {
	t.Parallel()

	header, _, err := parser.Parse(`%utlx 1.0
input xsd { arrays: ["xs:element"], strict: true }
input-extra csv { delimiter: ";" }
output json
---
$input
`)
	require.NoError(t, err)

	require.Len(t, header.Inputs, 2)
	assert.Equal(t, "", header.Inputs[0].Name)
	assert.Equal(t, "xsd", header.Inputs[0].Format)
	assert.Equal(t, []any{"xs:element"}, header.Inputs[0].Options["arrays"])
	assert.Equal(t, true, header.Inputs[0].Options["strict"])

	assert.Equal(t, "extra", header.Inputs[1].Name)
	assert.Equal(t, "csv", header.Inputs[1].Format)
	assert.Equal(t, ";", header.Inputs[1].Options["delimiter"])
}

func TestParseHeader_MultiOutputBlock(t *testing.T) {
	t.Parallel()

	header, _, err := parser.Parse(`%utlx 1.0
input json
output { summary: json, detail: xml { pretty: false } }
---
$input
`)
	require.NoError(t, err)

	require.Len(t, header.Outputs, 2)
	assert.Equal(t, "summary", header.Outputs[0].Name)
	assert.Equal(t, "json", header.Outputs[0].Format)
	assert.Equal(t, "detail", header.Outputs[1].Name)
	assert.Equal(t, "xml", header.Outputs[1].Format)
	assert.Equal(t, false, header.Outputs[1].Options["pretty"])
	assert.True(t, header.MultiOutput())
}

func TestParseHeader_MissingInputIsSyntaxError(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("%utlx 1.0\noutput json\n---\n$input\n")
	require.Error(t, err)

	var synErr *parser.SyntaxError

	require.ErrorAs(t, err, &synErr)
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func body(t *testing.T, src string) parser.Expr {
	t.Helper()

	_, prog, err := parser.Parse("%utlx 1.0\ninput json\noutput json\n---\n" + src + "\n")
	require.NoError(t, err)

	return prog.Body
}

func TestParseTemplateDecl_NameAndPredicateForms(t *testing.T) {
	t.Parallel()

	_, prog, err := parser.Parse(`%utlx 1.0
input xml
output json
---
template match="Item" { @ }
template match=(@.kind == "special") { @ }
$input
`)
	require.NoError(t, err)

	require.Len(t, prog.Templates, 2)

	nameTpl := prog.Templates[0]
	assert.Equal(t, "Item", nameTpl.MatchName)
	assert.Nil(t, nameTpl.MatchPred)
	assert.Equal(t, 0, nameTpl.Order)

	predTpl := prog.Templates[1]
	assert.Equal(t, "", predTpl.MatchName)
	require.NotNil(t, predTpl.MatchPred)
	assert.Equal(t, 1, predTpl.Order)

	bin, ok := predTpl.MatchPred.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.EqEq, bin.Op)
}

func TestParseExpr_ScalarLiterals(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		src  string
		kind parser.ScalarLitKind
	}{
		"int":    {"42", parser.LitInt},
		"float":  {"3.5", parser.LitFloat},
		"string": {`"hi"`, parser.LitString},
		"true":   {"true", parser.LitBool},
		"false":  {"false", parser.LitBool},
		"null":   {"null", parser.LitNull},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lit, ok := body(t, tc.src).(*parser.ScalarLit)
			require.True(t, ok)
			assert.Equal(t, tc.kind, lit.Kind)
		})
	}
}

func TestParseExpr_ArrayAndObjectLiterals(t *testing.T) {
	t.Parallel()

	arr, ok := body(t, "[1, 2, 3]").(*parser.ArrayLit)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)

	obj, ok := body(t, `{ name: "Alice", @id: 1, [computedKey()]: 2 }`).(*parser.ObjectLit)
	require.True(t, ok)
	require.Len(t, obj.Entries, 3)

	assert.Equal(t, "name", obj.Entries[0].Key)
	assert.False(t, obj.Entries[0].IsAttribute)

	assert.Equal(t, "id", obj.Entries[1].Key)
	assert.True(t, obj.Entries[1].IsAttribute)

	assert.NotNil(t, obj.Entries[2].KeyExpr)
}

func TestParseExpr_PathOperators(t *testing.T) {
	t.Parallel()

	member, ok := body(t, "$input.Customer").(*parser.MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "Customer", member.Name)

	attr, ok := body(t, "$input.@id").(*parser.AttrAccess)
	require.True(t, ok)
	assert.Equal(t, "id", attr.Name)

	wc, ok := body(t, "$input.*").(*parser.Wildcard)
	require.True(t, ok)
	_, isIdent := wc.Target.(*parser.Ident)
	assert.True(t, isIdent)

	desc, ok := body(t, "$input..Item").(*parser.Descendant)
	require.True(t, ok)
	assert.Equal(t, "Item", desc.Name)
}

func TestParseExpr_BareAttrSelectsOffCurrentContext(t *testing.T) {
	t.Parallel()

	attr, ok := body(t, "@sku").(*parser.AttrAccess)
	require.True(t, ok)
	assert.Equal(t, "sku", attr.Name)

	_, isCurrent := attr.Target.(*parser.CurrentRef)
	assert.True(t, isCurrent)

	// `@` with no trailing identifier stays a bare current reference.
	_, ok = body(t, "@ + 1").(*parser.BinaryExpr)
	assert.True(t, ok)
}

func TestParseExpr_BracketIndexVsPredicate(t *testing.T) {
	t.Parallel()

	idx, ok := body(t, "$input[0]").(*parser.Bracket)
	require.True(t, ok)
	assert.True(t, idx.InnerIsIndex)

	pred, ok := body(t, `$input[@.kind == "x"]`).(*parser.Bracket)
	require.True(t, ok)
	assert.False(t, pred.InnerIsIndex)

	keyish, ok := body(t, "$input[n]").(*parser.Bracket)
	require.True(t, ok)
	assert.False(t, keyish.InnerIsIndex)
}

func TestParseExpr_UnaryAndBinaryPrecedence(t *testing.T) {
	t.Parallel()

	// "1 + 2 * 3" must bind as 1 + (2 * 3), confirming multiplicative
	// binds tighter than additive.
	add, ok := body(t, "1 + 2 * 3").(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, add.Op)

	mul, ok := add.Right.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, mul.Op)

	lit, ok := add.Left.(*parser.ScalarLit)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Int)

	neg, ok := body(t, "-x").(*parser.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Minus, neg.Op)

	not, ok := body(t, "!flag").(*parser.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Not, not.Op)
}

func TestParseExpr_LogicalAndComparisonBindLooserThanArithmetic(t *testing.T) {
	t.Parallel()

	// "a + 1 == b && c" parses as ((a + 1) == b) && c.
	and, ok := body(t, "a + 1 == b && c").(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.AndAnd, and.Op)

	eq, ok := and.Left.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.EqEq, eq.Op)

	_, isAdd := eq.Left.(*parser.BinaryExpr)
	assert.True(t, isAdd)
}

func TestParseExpr_Ternary(t *testing.T) {
	t.Parallel()

	tern, ok := body(t, `if (x > 0) "pos" else "neg"`).(*parser.Ternary)
	require.True(t, ok)

	cond, ok := tern.Cond.(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Gt, cond.Op)
}

func TestParseExpr_Let(t *testing.T) {
	t.Parallel()

	let, ok := body(t, "let a = 1, b = 2; a + b").(*parser.LetExpr)
	require.True(t, ok)
	require.Len(t, let.Bindings, 2)
	assert.Equal(t, "a", let.Bindings[0].Name)
	assert.Equal(t, "b", let.Bindings[1].Name)

	_, isBinary := let.Body.(*parser.BinaryExpr)
	assert.True(t, isBinary)
}

func TestParseExpr_MatchWithWildcardArm(t *testing.T) {
	t.Parallel()

	m, ok := body(t, `match (x) { 1 => "one", _ => "other" }`).(*parser.MatchExpr)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)

	assert.NotNil(t, m.Arms[0].Pattern)
	assert.Nil(t, m.Arms[1].Pattern)
}

func TestParseExpr_LambdaBothForms(t *testing.T) {
	t.Parallel()

	single, ok := body(t, "x => x + 1").(*parser.LambdaLit)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, single.Params)

	multi, ok := body(t, "(a, b) => a + b").(*parser.LambdaLit)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, multi.Params)

	nullary, ok := body(t, "() => 1").(*parser.LambdaLit)
	require.True(t, ok)
	assert.Empty(t, nullary.Params)
}

func TestParseExpr_ParenthesizedExprIsNotMistakenForLambda(t *testing.T) {
	t.Parallel()

	paren, ok := body(t, "(1 + 2)").(*parser.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, paren.Op)
}

func TestParseExpr_PipelineDesugarsToCallWithLhsPrepended(t *testing.T) {
	t.Parallel()

	call, ok := body(t, "$input |> upper() |> trim()").(*parser.CallExpr)
	require.True(t, ok)

	inner, ok := call.Args[0].(*parser.CallExpr)
	require.True(t, ok)

	ident, ok := inner.Args[0].(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "$input", ident.Name)
}

func TestParseExpr_PipelineIntoBareFunctionName(t *testing.T) {
	t.Parallel()

	// rhs with no call parens: "x |> f" becomes a CallExpr{Callee: f, Args: [x]}.
	call, ok := body(t, "x |> f").(*parser.CallExpr)
	require.True(t, ok)

	callee, ok := call.Callee.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "f", callee.Name)
	require.Len(t, call.Args, 1)
}

func TestParseExpr_Apply(t *testing.T) {
	t.Parallel()

	app, ok := body(t, "apply($input.Items)").(*parser.ApplyExpr)
	require.True(t, ok)

	_, isMember := app.Path.(*parser.MemberAccess)
	assert.True(t, isMember)
}

func TestParseExpr_CallWithArgs(t *testing.T) {
	t.Parallel()

	call, ok := body(t, `map($input, e => e.name)`).(*parser.CallExpr)
	require.True(t, ok)

	callee, ok := call.Callee.(*parser.Ident)
	require.True(t, ok)
	assert.Equal(t, "map", callee.Name)
	require.Len(t, call.Args, 2)

	_, isLambda := call.Args[1].(*parser.LambdaLit)
	assert.True(t, isLambda)
}

func TestParseExpr_CurrentRef(t *testing.T) {
	t.Parallel()

	_, ok := body(t, "@").(*parser.CurrentRef)
	assert.True(t, ok)
}

func TestParse_TrailingInputIsSyntaxError(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("%utlx 1.0\ninput json\noutput json\n---\n1 2\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrSyntax)
}

func TestParse_UnterminatedObjectLiteralIsSyntaxError(t *testing.T) {
	t.Parallel()

	_, _, err := parser.Parse("%utlx 1.0\ninput json\noutput json\n---\n{ a: 1\n")

	var synErr *parser.SyntaxError

	require.ErrorAs(t, err, &synErr)
	assert.NotEmpty(t, synErr.Expected)
}
