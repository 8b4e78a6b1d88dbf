/*
File    : gomatch/parser/parser_test.go
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/parser"
)

func parse(t *testing.T, src string) *parser.Program {
	t.Helper()
	lx := lexer.NewFilteredLexer(lexer.NewLexer(lexer.NewTextStream(src)))
	p, err := parser.New(lx)
	require.NoError(t, err)
	prog, err := p.Parse()
	require.NoError(t, err)
	return prog
}

func TestParseAddExpression(t *testing.T) {
	prog := parse(t, `12 + 13;`)
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*parser.Expression)
	require.True(t, ok)
	bin, ok := stmt.Expr.(*parser.Binary)
	require.True(t, ok)
	assert.Equal(t, parser.OpAdd, bin.Op)
	left, ok := bin.Left.(*parser.Literal)
	require.True(t, ok)
	assert.Equal(t, int64(12), left.Value)
}

func TestParsePrecedence(t *testing.T) {
	prog := parse(t, `28 - 13 * 2;`)
	stmt := prog.Statements[0].(*parser.Expression)
	bin := stmt.Expr.(*parser.Binary)
	assert.Equal(t, parser.OpSub, bin.Op)
	_, ok := bin.Left.(*parser.Literal)
	require.True(t, ok)
	mul, ok := bin.Right.(*parser.Binary)
	require.True(t, ok)
	assert.Equal(t, parser.OpMul, mul.Op)
}

func TestParseVarAndConstDeclarations(t *testing.T) {
	prog := parse(t, `var x = 1; const y = 2;`)
	require.Len(t, prog.Statements, 2)

	v, ok := prog.Statements[0].(*parser.Variable)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
	assert.False(t, v.IsConst)

	c, ok := prog.Statements[1].(*parser.Variable)
	require.True(t, ok)
	assert.Equal(t, "y", c.Name)
	assert.True(t, c.IsConst)
}

func TestParseFunctionDeclarationWithConstParam(t *testing.T) {
	prog := parse(t, `fn add(const a, b) { return a+b; }`)
	fn, ok := prog.Statements[0].(*parser.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.True(t, fn.Params[0].IsConst)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.False(t, fn.Params[1].IsConst)
}

func TestParseIfElse(t *testing.T) {
	prog := parse(t, `if (x < 1) { print(1); } else { print(2); }`)
	ifStmt, ok := prog.Statements[0].(*parser.If)
	require.True(t, ok)
	require.NotNil(t, ifStmt.ElseBody)
	_, isBlock := ifStmt.Body.(*parser.Block)
	assert.True(t, isBlock)
}

func TestParseWhile(t *testing.T) {
	prog := parse(t, `while (i < 3) { i = i + 1; }`)
	_, ok := prog.Statements[0].(*parser.While)
	assert.True(t, ok)
}

func TestParseLogicalShortCircuitOperators(t *testing.T) {
	prog := parse(t, `true and false or true;`)
	stmt := prog.Statements[0].(*parser.Expression)
	outer, ok := stmt.Expr.(*parser.Logical)
	require.True(t, ok)
	assert.Equal(t, parser.LogicalOr, outer.Op)
	inner, ok := outer.Left.(*parser.Logical)
	require.True(t, ok)
	assert.Equal(t, parser.LogicalAnd, inner.Op)
}

func TestParseMatchWithTypeComparePatternsAndGuard(t *testing.T) {
	src := `
match (v) {
  (Num and >0): return "positive";
  (Str as s) if (s == "hi"): return "greet";
  (_): return "other";
}
`
	prog := parse(t, src)
	m, ok := prog.Statements[0].(*parser.Match)
	require.True(t, ok)
	require.Len(t, m.Arguments, 1)
	require.Len(t, m.Cases, 3)

	first := m.Cases[0]
	require.Len(t, first.Patterns, 1)
	logical, ok := first.Patterns[0].Pattern.(*parser.Logical)
	require.True(t, ok)
	assert.Equal(t, parser.LogicalAnd, logical.Op)
	_, ok = logical.Left.(*parser.TypePattern)
	assert.True(t, ok)
	cmp, ok := logical.Right.(*parser.ComparePattern)
	require.True(t, ok)
	assert.Equal(t, parser.CompareGt, cmp.Op)

	second := m.Cases[1]
	assert.True(t, second.Patterns[0].HasName)
	assert.Equal(t, "s", second.Patterns[0].Name)
	assert.NotNil(t, second.Guard)

	third := m.Cases[2]
	assert.Nil(t, third.Patterns[0].Pattern)
}

func TestParseMatchRejectsDuplicateAsNamesInOneCase(t *testing.T) {
	lx := lexer.NewFilteredLexer(lexer.NewLexer(lexer.NewTextStream(
		`match (a, b) { (Num as x, Num as x): print(x); }`)))
	p, err := parser.New(lx)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}

func TestParseTwoArgumentMatch(t *testing.T) {
	prog := parse(t, `match (a, b) { (Num as x, Num as y): print(x); (_, _): print("other"); }`)
	m := prog.Statements[0].(*parser.Match)
	assert.Len(t, m.Arguments, 2)
	assert.Len(t, m.Cases[0].Patterns, 2)
}
