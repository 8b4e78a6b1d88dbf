/*
File    : gomatch/eval/expressions.go
*/

package eval

import (
	"errors"
	"strings"

	"github.com/gomatch-lang/gomatch/function"
	"github.com/gomatch-lang/gomatch/objects"
	"github.com/gomatch-lang/gomatch/parser"
	"github.com/gomatch-lang/gomatch/scope"
	"github.com/gomatch-lang/gomatch/std"
)

// evalExpr evaluates an expression node to a runtime Value.
func (e *Evaluator) evalExpr(expr parser.Expr) (objects.Value, error) {
	switch ex := expr.(type) {
	case *parser.Literal:
		return literalValue(ex.Value), nil
	case *parser.Identifier:
		return e.evalIdentifier(ex)
	case *parser.Grouping:
		return e.evalExpr(ex.Inner)
	case *parser.Unary:
		return e.evalUnary(ex)
	case *parser.Binary:
		return e.evalBinary(ex)
	case *parser.Logical:
		return e.evalLogical(ex)
	case *parser.Assignment:
		return e.evalAssignment(ex)
	case *parser.Call:
		return e.evalCall(ex)
	}
	return objects.NilValue, nil
}

// evalExprIn evaluates expr with sc temporarily current, used by pattern
// matching to evaluate a compare_pattern's right-hand side with the
// case's bindings-so-far in scope.
func (e *Evaluator) evalExprIn(expr parser.Expr, sc *scope.Scope) (objects.Value, error) {
	prev := e.Scope
	e.Scope = sc
	v, err := e.evalExpr(expr)
	e.Scope = prev
	return v, err
}

// literalValue converts the lexer-produced Go value carried by a Literal
// node into a runtime Value.
func literalValue(v interface{}) objects.Value {
	switch val := v.(type) {
	case int64:
		return &objects.Integer{Value: val}
	case float64:
		return &objects.Float{Value: val}
	case string:
		return &objects.String{Value: val}
	case bool:
		return &objects.Boolean{Value: val}
	case nil:
		return objects.NilValue
	}
	return objects.NilValue
}

func (e *Evaluator) evalIdentifier(ex *parser.Identifier) (objects.Value, error) {
	v, err := e.Scope.Lookup(ex.Name)
	if err != nil {
		return nil, &UndefinedVariableError{Name: ex.Name, At: ex.Pos()}
	}
	return v, nil
}

func (e *Evaluator) evalAssignment(ex *parser.Assignment) (objects.Value, error) {
	value, err := e.evalExpr(ex.Value)
	if err != nil {
		return nil, err
	}
	if err := e.Scope.Assign(ex.Name, value); err != nil {
		if errors.Is(err, scope.ErrUndefined) {
			return nil, &UndefinedVariableError{Name: ex.Name, At: ex.Pos()}
		}
		if errors.Is(err, scope.ErrConstant) {
			return nil, &ConstantRedefinitionError{Name: ex.Name, At: ex.Pos()}
		}
		return nil, err
	}
	return value, nil
}

func (e *Evaluator) evalLogical(ex *parser.Logical) (objects.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Op == parser.LogicalOr {
		if truthy(left) {
			return left, nil
		}
		return e.evalExpr(ex.Right)
	}
	if !truthy(left) {
		return left, nil
	}
	return e.evalExpr(ex.Right)
}

func (e *Evaluator) evalUnary(ex *parser.Unary) (objects.Value, error) {
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	if ex.Op == parser.UnaryNot {
		return &objects.Boolean{Value: !truthy(right)}, nil
	}
	n, ok := toNumber(right)
	if !ok {
		return nil, &NumberConversionError{Value: right, At: ex.Right.Pos()}
	}
	switch v := n.(type) {
	case *objects.Integer:
		return &objects.Integer{Value: -v.Value}, nil
	case *objects.Float:
		return &objects.Float{Value: -v.Value}, nil
	}
	return objects.NilValue, nil
}

func (e *Evaluator) evalBinary(ex *parser.Binary) (objects.Value, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case parser.OpAdd:
		return e.evalAdd(ex, left, right)
	case parser.OpSub, parser.OpMul, parser.OpDiv:
		return e.evalArithmetic(ex, left, right)
	default:
		return evalComparison(ex.Op, left, right), nil
	}
}

// evalAdd implements §4.4.3's "+": string concatenation, numeric
// addition, or coerce-or-stringify-both when the fast paths don't apply.
func (e *Evaluator) evalAdd(ex *parser.Binary, left, right objects.Value) (objects.Value, error) {
	ls, lIsString := left.(*objects.String)
	rs, rIsString := right.(*objects.String)
	if lIsString && rIsString {
		return &objects.String{Value: ls.Value + rs.Value}, nil
	}
	if isNumber(left) && isNumber(right) {
		return numericCombine(left, right, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	}
	ln, lok := toNumber(left)
	rn, rok := toNumber(right)
	if lok && rok {
		return numericCombine(ln, rn, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b }), nil
	}
	return &objects.String{Value: left.String() + right.String()}, nil
}

func (e *Evaluator) evalArithmetic(ex *parser.Binary, left, right objects.Value) (objects.Value, error) {
	ln, lok := toNumber(left)
	if !lok {
		return nil, &NumberConversionError{Value: left, At: ex.Left.Pos()}
	}
	rn, rok := toNumber(right)
	if !rok {
		return nil, &NumberConversionError{Value: right, At: ex.Right.Pos()}
	}
	if ex.Op == parser.OpDiv {
		if isZero(rn) {
			return nil, &DivisionByZeroError{At: ex.Right.Pos()}
		}
		return &objects.Float{Value: toFloat(ln) / toFloat(rn)}, nil
	}
	if ex.Op == parser.OpSub {
		return numericCombine(ln, rn, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }), nil
	}
	return numericCombine(ln, rn, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }), nil
}

func numericCombine(a, b objects.Value, iop func(int64, int64) int64, fop func(float64, float64) float64) objects.Value {
	ai, aIsInt := a.(*objects.Integer)
	bi, bIsInt := b.(*objects.Integer)
	if aIsInt && bIsInt {
		return &objects.Integer{Value: iop(ai.Value, bi.Value)}
	}
	return &objects.Float{Value: fop(toFloat(a), toFloat(b))}
}

// evalComparison implements §4.4.3's comparison rule: same-type operands
// compare directly; otherwise coerce both to number if possible, else
// stringify both and compare lexicographically. Comparisons never fail.
func evalComparison(op parser.BinaryOp, left, right objects.Value) objects.Value {
	if cmp, ok := directCompare(left, right); ok {
		return cmpToBool(op, cmp)
	}
	ln, lok := toNumber(left)
	rn, rok := toNumber(right)
	if lok && rok {
		return cmpToBool(op, cmpFloat64(toFloat(ln), toFloat(rn)))
	}
	return cmpToBool(op, strings.Compare(left.String(), right.String()))
}

// directCompare handles the "operand types match" fast path for the three
// kinds with a natural total order; everything else (Boolean, Nil,
// Callable, or a cross-type pair) falls through to the caller's
// coerce-or-stringify rule, which already behaves correctly for those
// since to_number never fails on Boolean or Nil.
func directCompare(left, right objects.Value) (int, bool) {
	switch lv := left.(type) {
	case *objects.Integer:
		if rv, ok := right.(*objects.Integer); ok {
			return cmpInt64(lv.Value, rv.Value), true
		}
	case *objects.Float:
		if rv, ok := right.(*objects.Float); ok {
			return cmpFloat64(lv.Value, rv.Value), true
		}
	case *objects.String:
		if rv, ok := right.(*objects.String); ok {
			return strings.Compare(lv.Value, rv.Value), true
		}
	}
	return 0, false
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpToBool(op parser.BinaryOp, cmp int) *objects.Boolean {
	switch op {
	case parser.OpEq:
		return &objects.Boolean{Value: cmp == 0}
	case parser.OpNeq:
		return &objects.Boolean{Value: cmp != 0}
	case parser.OpLt:
		return &objects.Boolean{Value: cmp < 0}
	case parser.OpLte:
		return &objects.Boolean{Value: cmp <= 0}
	case parser.OpGt:
		return &objects.Boolean{Value: cmp > 0}
	default: // OpGte
		return &objects.Boolean{Value: cmp >= 0}
	}
}

// evalCall evaluates a call expression: the callee and every argument are
// evaluated left-to-right, the callee's arity is checked against the
// argument count, and the call is dispatched by the callee's concrete
// type.
//
// Parameters:
//   - ex: the Call node, carrying the callee expression and argument
//     expressions in source order.
//
// Returns:
//   - objects.Value: the callee's result (nil-valued if it never returns
//     explicitly).
//   - error: *UndefinedFunctionError if the callee isn't Callable,
//     *InvalidArgumentNumberError on an arity mismatch, or any error
//     raised while evaluating the callee/arguments.
func (e *Evaluator) evalCall(ex *parser.Call) (objects.Value, error) {
	callee, err := e.evalExpr(ex.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]objects.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, &UndefinedFunctionError{Name: calleeName(ex.Callee), At: ex.Pos()}
	}
	if arity := callable.Arity(); arity != nil && *arity != len(args) {
		return nil, &InvalidArgumentNumberError{Name: callable.Name(), Expected: *arity, Got: len(args), At: ex.Pos()}
	}
	switch fn := callable.(type) {
	case *function.Function:
		return e.callFunction(fn, args)
	case *std.Builtin:
		return fn.Fn(e, args)
	}
	return objects.NilValue, nil
}

func calleeName(expr parser.Expr) string {
	if id, ok := expr.(*parser.Identifier); ok {
		return id.Name
	}
	return expr.String()
}

// callFunction runs a user-defined Function: a new scope is opened
// parented to the function's captured closure (not the caller's scope),
// parameters are bound into it honoring their const-ness, and a
// ReturnSignal unwinding out of the body is caught exactly at this
// boundary rather than propagated further.
//
// Parameters:
//   - fn: the Function being invoked, carrying its declaration and the
//     scope it closed over at definition time.
//   - args: already-evaluated argument values, one per parameter; the
//     caller has already checked len(args) against fn.Arity().
//
// Returns:
//   - objects.Value: the function's return value, or nil if the body
//     fell off the end without a "return".
//   - error: any evaluation Error raised while running the body, other
//     than the ReturnSignal this function exists to catch.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	callScope := scope.New(fn.Closure)
	for i, param := range fn.Def.Params {
		_ = callScope.Define(param.Name, args[i], param.IsConst)
	}

	prev := e.Scope
	e.Scope = callScope
	err := e.execStmt(fn.Def.Body)
	e.Scope = prev

	if err != nil {
		var rs *ReturnSignal
		if errors.As(err, &rs) {
			return rs.Value, nil
		}
		return nil, err
	}
	return objects.NilValue, nil
}
