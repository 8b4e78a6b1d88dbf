/*
File    : gomatch/function/function_test.go
*/

package function_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomatch-lang/gomatch/function"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/scope"
)

func TestFunctionStringIsBareName(t *testing.T) {
	def := &parser.Function{Name: "add", Params: []parser.Parameter{{Name: "a"}, {Name: "b", IsConst: true}}}
	fn := function.New(def, scope.New(nil))
	assert.Equal(t, "add", fn.String())
	assert.Equal(t, "add", fn.Name())
}

func TestFunctionArityMatchesParamCount(t *testing.T) {
	def := &parser.Function{Name: "add", Params: []parser.Parameter{{Name: "a"}, {Name: "b"}}}
	fn := function.New(def, scope.New(nil))
	require := 2
	assert.Equal(t, require, *fn.Arity())
}

func TestFunctionInspectMarksConstParams(t *testing.T) {
	def := &parser.Function{Name: "add", Params: []parser.Parameter{{Name: "a", IsConst: true}, {Name: "b"}}}
	fn := function.New(def, scope.New(nil))
	assert.Equal(t, "<func[add(const a, b)]>", fn.Inspect())
}

func TestFunctionClosureCapturedByReference(t *testing.T) {
	closure := scope.New(nil)
	_ = closure.Define("n", nil, false)
	fn := function.New(&parser.Function{Name: "f"}, closure)
	assert.Same(t, closure, fn.Closure)
}
