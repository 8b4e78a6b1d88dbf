/*
File    : gomatch/eval/eval_test.go
*/

package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomatch-lang/gomatch/eval"
	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/parser"
)

// run lexes, parses, and evaluates src, returning everything print wrote
// and the first error encountered (lexing, parsing, or evaluating).
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.NewFilteredLexer(lexer.NewLexer(lexer.NewTextStream(src)))
	p, err := parser.New(lx)
	require.NoError(t, err)
	prog, err := p.Parse()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	ev := eval.New(&out)
	runErr := ev.Run(prog)
	return out.String(), runErr
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestArithmeticCoercion(t *testing.T) {
	out, err := run(t, `print(1+2); print("5"+3); print(7+"2a"); print("hello"+12); print(7/2);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "8", "72a", "hello12", "3.5"}, lines(out))
}

func TestClosures(t *testing.T) {
	out, err := run(t, `fn make(n){ return fn(){ return n; }; } var f = make(42); print(f());`)
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, lines(out))
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `var i=0; while (i<3) { print(i); i = i+1; }`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestMatchTypeCompareAndWildcard(t *testing.T) {
	src := `
fn classify(v) {
  match (v) {
    (Num and >0): return "positive";
    (Num and 0): return "zero";
    (Str as s) if (s == "hi"): return "greet";
    (_): return "other";
  }
}
print(classify(5));
print(classify(0));
print(classify("hi"));
print(classify(nil));
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"positive", "zero", "greet", "other"}, lines(out))
}

func TestConstReassignmentFails(t *testing.T) {
	_, err := run(t, `const x = 1; x = 2;`)
	require.Error(t, err)
	diag, ok := err.(eval.Error)
	require.True(t, ok)
	assert.Equal(t, "ConstantRedefinition", diag.Kind())
	assert.Equal(t, "Cannot redefine constant 'x'", diag.Error())
}

func TestTwoArgumentMatchWithBinding(t *testing.T) {
	src := `
match (3, 4) {
  (Num as a, Num as b) if (a < b): print("<");
  (Num as a, Num as b) if (a > b): print(">");
  (_, _): print("=");
}
`
	out, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"<"}, lines(out))
}

func TestScopeIsolation(t *testing.T) {
	_, err := run(t, `if (true) { var x = 1; } print(x);`)
	require.Error(t, err)
	var undef *eval.UndefinedVariableError
	require.ErrorAs(t, err, &undef)
}

func TestShortCircuitAndOr(t *testing.T) {
	// A side-effecting right-hand side must not execute when the left
	// side already decides the result.
	out, err := run(t, `fn boom(){ print("boom"); return true; } print(false and boom()); print(true or boom());`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false", "true"}, lines(out))
}

func TestTruthinessLaw(t *testing.T) {
	out, err := run(t, `print(not not 0); print(not not ""); print(not not "x"); print(not not nil);`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false", "false", "true", "false"}, lines(out))
}

func TestUndefinedFunctionCall(t *testing.T) {
	_, err := run(t, `var x = 5; x();`)
	require.Error(t, err)
	var undef *eval.UndefinedFunctionError
	require.ErrorAs(t, err, &undef)
}

func TestInvalidArgumentNumber(t *testing.T) {
	_, err := run(t, `fn add(a, b){ return a+b; } add(1);`)
	require.Error(t, err)
	var bad *eval.InvalidArgumentNumberError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "add", bad.Name)
	assert.Equal(t, 2, bad.Expected)
	assert.Equal(t, 1, bad.Got)
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `print(1/0);`)
	require.Error(t, err)
	var dz *eval.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

func TestFunctionSelfShadowAllowedUnlessConst(t *testing.T) {
	out, err := run(t, `fn f(){ return 1; } fn f(){ return 2; } print(f());`)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, lines(out))

	_, err = run(t, `const g = 1; fn g(){ return 2; }`)
	require.Error(t, err)
	var cre *eval.ConstantRedefinitionError
	require.ErrorAs(t, err, &cre)
}

func TestReturnOutsideFunction(t *testing.T) {
	_, err := run(t, `return 1;`)
	require.Error(t, err)
	var ret *eval.ReturnOutsideFunctionError
	require.ErrorAs(t, err, &ret)
}
