/*
File    : gomatch/eval/errors.go
*/

package eval

import (
	"fmt"

	"github.com/gomatch-lang/gomatch/lexer"
	"github.com/gomatch-lang/gomatch/objects"
)

// Error is the family every evaluation failure belongs to (§7), wrapping
// the scope package's positionless sentinel errors with the AST position
// at which the failure was observed.
type Error interface {
	error
	Kind() string
	Pos() lexer.Position
}

// UndefinedVariableError is raised by an identifier lookup or an
// assignment to a name bound nowhere in the scope chain.
type UndefinedVariableError struct {
	Name string
	At   lexer.Position
}

func (e *UndefinedVariableError) Error() string       { return fmt.Sprintf("Undefined variable '%s'", e.Name) }
func (e *UndefinedVariableError) Kind() string        { return "UndefinedVariable" }
func (e *UndefinedVariableError) Pos() lexer.Position { return e.At }

// UndefinedFunctionError is raised when a call's callee does not evaluate
// to a Callable.
type UndefinedFunctionError struct {
	Name string
	At   lexer.Position
}

func (e *UndefinedFunctionError) Error() string       { return fmt.Sprintf("Undefined function '%s'", e.Name) }
func (e *UndefinedFunctionError) Kind() string        { return "UndefinedFunction" }
func (e *UndefinedFunctionError) Pos() lexer.Position { return e.At }

// RedefinitionError is raised when var/const redeclares a name already
// bound in the current scope.
type RedefinitionError struct {
	Name string
	At   lexer.Position
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("Cannot redefine '%s' in this scope", e.Name)
}
func (e *RedefinitionError) Kind() string        { return "Redefinition" }
func (e *RedefinitionError) Pos() lexer.Position { return e.At }

// ConstantRedefinitionError is raised when an assignment, or a function
// redeclaration, targets a const-bound name.
type ConstantRedefinitionError struct {
	Name string
	At   lexer.Position
}

func (e *ConstantRedefinitionError) Error() string {
	return fmt.Sprintf("Cannot redefine constant '%s'", e.Name)
}
func (e *ConstantRedefinitionError) Kind() string        { return "ConstantRedefinition" }
func (e *ConstantRedefinitionError) Pos() lexer.Position { return e.At }

// NumberConversionError is raised when an arithmetic or unary-minus
// operand fails numeric coercion.
type NumberConversionError struct {
	Value objects.Value
	At    lexer.Position
}

func (e *NumberConversionError) Error() string {
	return fmt.Sprintf("Cannot convert %s to a number", e.Value.Inspect())
}
func (e *NumberConversionError) Kind() string        { return "NumberConversion" }
func (e *NumberConversionError) Pos() lexer.Position { return e.At }

// DivisionByZeroError is raised when "/"'s right operand coerces to 0.
type DivisionByZeroError struct {
	At lexer.Position
}

func (e *DivisionByZeroError) Error() string       { return "Division by zero" }
func (e *DivisionByZeroError) Kind() string        { return "DivisionByZero" }
func (e *DivisionByZeroError) Pos() lexer.Position { return e.At }

// InvalidArgumentNumberError is raised by a call whose argument count
// doesn't match the callee's fixed arity, or a match case whose pattern
// count doesn't match the number of match arguments.
type InvalidArgumentNumberError struct {
	Name     string
	Expected int
	Got      int
	At       lexer.Position
}

func (e *InvalidArgumentNumberError) Error() string {
	return fmt.Sprintf("Invalid number of arguments for '%s': expected %d, got %d", e.Name, e.Expected, e.Got)
}
func (e *InvalidArgumentNumberError) Kind() string        { return "InvalidArgumentNumber" }
func (e *InvalidArgumentNumberError) Pos() lexer.Position { return e.At }

// ReturnSignal is not a genuine error: it is the control-flow unwind used
// to carry a "return" statement's value back to the nearest enclosing
// call. It is caught only inside callFunction; if it escapes all the way
// to Run, the program used "return" outside of any function.
type ReturnSignal struct {
	Value objects.Value
	At    lexer.Position
}

func (r *ReturnSignal) Error() string       { return "return outside of function" }
func (r *ReturnSignal) Kind() string        { return "Return" }
func (r *ReturnSignal) Pos() lexer.Position { return r.At }

// ReturnOutsideFunctionError is what Run reports when a ReturnSignal
// escapes to the top level (§4.4.8).
type ReturnOutsideFunctionError struct {
	At lexer.Position
}

func (e *ReturnOutsideFunctionError) Error() string       { return "Return outside of function" }
func (e *ReturnOutsideFunctionError) Kind() string        { return "ReturnOutsideFunction" }
func (e *ReturnOutsideFunctionError) Pos() lexer.Position { return e.At }
