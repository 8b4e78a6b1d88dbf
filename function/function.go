/*
File    : gomatch/function/function.go
*/

// Package function holds the runtime representation of user-defined
// callables (§4.4.6, §4.4.7).
package function

import (
	"fmt"
	"strings"

	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/scope"
)

// Function is a user-defined callable: its declaration (name, parameters,
// body) plus the scope it closed over at the point of definition.
//
// Def is captured by the parser's AST, and Closure is captured BY
// REFERENCE: Function never copies the defining scope, so later writes to
// variables the closure captured (via assignment, not redeclaration) are
// visible to the function the next time it runs. scope.Scope.Copy exists
// purely for REPL introspection and must never be used here.
type Function struct {
	Def     *parser.Function
	Closure *scope.Scope
}

// New wraps a parsed function declaration together with the scope active
// at the point of definition.
func New(def *parser.Function, closure *scope.Scope) *Function {
	return &Function{Def: def, Closure: closure}
}

func (f *Function) Type() objects.Type { return objects.FunctionType }

// String is the canonical stringification used by print/"+" (§4.4.3): a
// callable stringifies to its bare name.
func (f *Function) String() string {
	return f.Def.Name
}

func (f *Function) Inspect() string {
	names := make([]string, len(f.Def.Params))
	for i, p := range f.Def.Params {
		if p.IsConst {
			names[i] = "const " + p.Name
		} else {
			names[i] = p.Name
		}
	}
	return fmt.Sprintf("<func[%s(%s)]>", f.Def.Name, strings.Join(names, ", "))
}

func (f *Function) Name() string { return f.Def.Name }

// Arity reports the fixed number of parameters this function accepts;
// gomatch has no variadics so it is never nil (§4.4.7).
func (f *Function) Arity() *int {
	n := len(f.Def.Params)
	return &n
}

var (
	_ objects.Value    = (*Function)(nil)
	_ objects.Callable = (*Function)(nil)
)
