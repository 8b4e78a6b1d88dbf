/*
File    : gomatch/eval/patterns.go
*/

package eval

import (
	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/scope"
)

// execMatch executes a match statement: every argument expression is
// evaluated exactly once, then cases are tried in source order, stopping
// at the first whose patterns all match and whose guard (if any)
// evaluates truthy.
//
// Parameters:
//   - m: the Match node, carrying the argument expressions and the case
//     list in source order.
//
// Returns:
//   - error: *InvalidArgumentNumberError if a case's pattern count
//     doesn't match the argument count, or any error raised evaluating
//     arguments, guards, or the matched case's body. A match with no
//     matching case is not an error: it is a no-op.
func (e *Evaluator) execMatch(m *parser.Match) error {
	args := make([]objects.Value, len(m.Arguments))
	for i, a := range m.Arguments {
		v, err := e.evalExpr(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	for _, c := range m.Cases {
		if len(c.Patterns) != len(args) {
			return &InvalidArgumentNumberError{Name: "match", Expected: len(args), Got: len(c.Patterns), At: c.Pos()}
		}

		caseScope := scope.New(e.Scope)
		matched, err := e.tryCase(c, args, caseScope)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}

		prev := e.Scope
		e.Scope = caseScope
		err = e.execStmt(c.Body)
		e.Scope = prev
		return err
	}
	return nil
}

// tryCase tests every pattern_expr against its corresponding argument,
// binding "as" names into caseScope as it goes, then evaluates the guard
// (if any) with those bindings visible.
func (e *Evaluator) tryCase(c *parser.Case, args []objects.Value, caseScope *scope.Scope) (bool, error) {
	for i, pe := range c.Patterns {
		ok, err := e.patternMatches(pe.Pattern, args[i], caseScope)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if pe.HasName {
			_ = caseScope.Define(pe.Name, args[i], false)
		}
	}
	if c.Guard == nil {
		return true, nil
	}
	g, err := e.evalExprIn(c.Guard, caseScope)
	if err != nil {
		return false, err
	}
	return truthy(g), nil
}

// patternMatches implements §4.4.9's pattern_matches: a nil pattern is
// the "_" wildcard; otherwise dispatch on the pattern node's concrete
// type.
func (e *Evaluator) patternMatches(pattern parser.Expr, v objects.Value, caseScope *scope.Scope) (bool, error) {
	if pattern == nil {
		return true, nil
	}
	switch p := pattern.(type) {
	case *parser.TypePattern:
		return typeMatches(p.Type, v), nil
	case *parser.ComparePattern:
		rhs, err := e.evalExprIn(p.Right, caseScope)
		if err != nil {
			return false, err
		}
		result := evalComparison(compareOpToBinaryOp(p.Op), v, rhs)
		return truthy(result), nil
	case *parser.Logical:
		left, err := e.patternMatches(p.Left, v, caseScope)
		if err != nil {
			return false, err
		}
		if p.Op == parser.LogicalOr {
			if left {
				return true, nil
			}
			return e.patternMatches(p.Right, v, caseScope)
		}
		if !left {
			return false, nil
		}
		return e.patternMatches(p.Right, v, caseScope)
	}
	return false, nil
}

func typeMatches(pt parser.PatternType, v objects.Value) bool {
	switch pt {
	case parser.PatternStr:
		_, ok := v.(*objects.String)
		return ok
	case parser.PatternNum:
		return isNumber(v)
	case parser.PatternBool:
		_, ok := v.(*objects.Boolean)
		return ok
	case parser.PatternNil:
		_, ok := v.(*objects.Nil)
		return ok
	case parser.PatternFunc:
		_, ok := v.(objects.Callable)
		return ok
	}
	return false
}

func compareOpToBinaryOp(op parser.CompareOp) parser.BinaryOp {
	switch op {
	case parser.CompareNeq:
		return parser.OpNeq
	case parser.CompareLt:
		return parser.OpLt
	case parser.CompareLte:
		return parser.OpLte
	case parser.CompareGt:
		return parser.OpGt
	case parser.CompareGte:
		return parser.OpGte
	default: // CompareEq
		return parser.OpEq
	}
}
