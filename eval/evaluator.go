/*
File    : gomatch/eval/evaluator.go
*/

// Package eval walks a *parser.Program and executes it (§4.4). Side
// effects happen only through built-in callables (package std); the
// evaluator itself never touches an io.Writer directly except to satisfy
// std.Runtime.
package eval

import (
	"errors"
	"io"

	"github.com/gomatch-lang/gomatch/function"
	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/scope"
	"github.com/gomatch-lang/gomatch/std"
)

// Evaluator holds the mutable state of one interpreter run: the global
// scope (shared by every closure created during the run) and the scope
// currently in effect.
type Evaluator struct {
	Global *scope.Scope
	Scope  *scope.Scope
	Out    io.Writer
}

// New creates an Evaluator with a fresh global scope seeded with the
// standard builtins (print, ...), writing builtin output to out.
//
// Parameters:
//   - out: the writer builtins write to; a REPL passes os.Stdout, a test
//     passes a bytes.Buffer so output can be asserted on.
//
// Returns:
//   - *Evaluator: ready to run one or more programs against the same
//     global scope, so a REPL session's variables persist across lines.
//
// Example usage:
//
//	var buf bytes.Buffer
//	ev := eval.New(&buf)
//	err := ev.Run(prog)
func New(out io.Writer) *Evaluator {
	global := scope.New(nil)
	for _, b := range std.All {
		_ = global.Define(b.Name(), b, false)
	}
	return &Evaluator{Global: global, Scope: global, Out: out}
}

// Output implements std.Runtime.
func (e *Evaluator) Output() io.Writer { return e.Out }

// Run executes every top-level statement in order.
//
// Parameters:
//   - prog: the parsed program to execute; its statements run against
//     e.Scope (initially e.Global) in source order.
//
// Returns:
//   - error: nil on a clean run; a *ReturnOutsideFunctionError if a
//     "return" statement unwinds all the way to the top level without
//     being caught by a call; any other evaluation Error otherwise.
//
// Example usage:
//
//	p, _ := parser.New(lx)
//	prog, _ := p.Parse()
//	if err := ev.Run(prog); err != nil {
//	    reporter.Report(os.Stderr, err)
//	}
func (e *Evaluator) Run(prog *parser.Program) error {
	for _, stmt := range prog.Statements {
		if err := e.execStmt(stmt); err != nil {
			var rs *ReturnSignal
			if errors.As(err, &rs) {
				return &ReturnOutsideFunctionError{At: rs.At}
			}
			return err
		}
	}
	return nil
}

// execStmt executes one statement, possibly returning a *ReturnSignal as
// its "error" to unwind to the nearest enclosing call (§9 "Exceptions for
// control flow").
func (e *Evaluator) execStmt(s parser.Stmt) error {
	switch st := s.(type) {
	case *parser.Expression:
		_, err := e.evalExpr(st.Expr)
		return err
	case *parser.Variable:
		return e.execVariable(st)
	case *parser.Function:
		return e.execFunctionDecl(st)
	case *parser.If:
		return e.execIf(st)
	case *parser.While:
		return e.execWhile(st)
	case *parser.Return:
		return e.execReturn(st)
	case *parser.Block:
		return e.execBlock(st)
	case *parser.Match:
		return e.execMatch(st)
	}
	return nil
}

func (e *Evaluator) execVariable(st *parser.Variable) error {
	value := objects.Value(objects.NilValue)
	if st.Expr != nil {
		v, err := e.evalExpr(st.Expr)
		if err != nil {
			return err
		}
		value = v
	}
	if err := e.Scope.Define(st.Name, value, st.IsConst); err != nil {
		if errors.Is(err, scope.ErrAlreadyDefined) {
			return &RedefinitionError{Name: st.Name, At: st.Pos()}
		}
		return err
	}
	return nil
}

// execFunctionDecl binds a new closure over the current scope to the
// function's name, honoring the function-specific self-shadow rule
// (§4.4.6): overwrite a non-const binding, fail on a const one.
func (e *Evaluator) execFunctionDecl(st *parser.Function) error {
	fn := function.New(st, e.Scope)
	if err := e.Scope.Redeclare(st.Name, fn); err != nil {
		if errors.Is(err, scope.ErrConstant) {
			return &ConstantRedefinitionError{Name: st.Name, At: st.Pos()}
		}
		return err
	}
	return nil
}

func (e *Evaluator) execIf(st *parser.If) error {
	cond, err := e.evalExpr(st.Condition)
	if err != nil {
		return err
	}
	if truthy(cond) {
		return e.execStmt(st.Body)
	}
	if st.ElseBody != nil {
		return e.execStmt(st.ElseBody)
	}
	return nil
}

func (e *Evaluator) execWhile(st *parser.While) error {
	for {
		cond, err := e.evalExpr(st.Condition)
		if err != nil {
			return err
		}
		if !truthy(cond) {
			return nil
		}
		if err := e.execStmt(st.Body); err != nil {
			return err
		}
	}
}

func (e *Evaluator) execReturn(st *parser.Return) error {
	value := objects.Value(objects.NilValue)
	if st.Expr != nil {
		v, err := e.evalExpr(st.Expr)
		if err != nil {
			return err
		}
		value = v
	}
	return &ReturnSignal{Value: value, At: st.Pos()}
}

// execBlock pushes a child scope, runs every statement, and pops the
// scope on every exit path (§4.4.8).
func (e *Evaluator) execBlock(st *parser.Block) error {
	prev := e.Scope
	e.Scope = scope.New(prev)
	defer func() { e.Scope = prev }()

	for _, inner := range st.Statements {
		if err := e.execStmt(inner); err != nil {
			return err
		}
	}
	return nil
}
