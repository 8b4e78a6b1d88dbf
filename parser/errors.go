/*
File    : gomatch/parser/errors.go
*/

package parser

import (
	"fmt"

	"github.com/gomatch-lang/gomatch/lexer"
)

// Error is the family every parser failure belongs to (§7). Each variant
// carries the Position of the offending token; the parser never attempts
// to recover and resume (§1 Non-goals).
type Error interface {
	error
	Kind() string
	Pos() lexer.Position
}

// MissingTokenError is raised for every missing `(`, `)`, `{`, `}`, `;`, or
// `:` (§4.3).
type MissingTokenError struct {
	Expected string
	At       lexer.Position
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("Expected '%s'.", e.Expected)
}
func (e *MissingTokenError) Kind() string         { return "Missing" + tokenKindSuffix(e.Expected) }
func (e *MissingTokenError) Pos() lexer.Position { return e.At }

func tokenKindSuffix(tok string) string {
	names := map[string]string{
		"(": "LeftParen", ")": "RightParen", "{": "LeftBrace", "}": "RightBrace",
		";": "Semicolon", ":": "Colon",
	}
	if n, ok := names[tok]; ok {
		return n
	}
	return "Token"
}

// MissingConstructError is raised whenever a grammar rule needed an
// expression, condition, body, argument, or pattern and none was present.
// What is a human-readable description ("condition for 'if'", "body for
// 'while'"); MachineKind is the taxonomy label used by Kind() (§4.3, §7).
type MissingConstructError struct {
	What        string
	MachineKind string
	At          lexer.Position
}

func (e *MissingConstructError) Error() string {
	return fmt.Sprintf("Missing %s.", e.What)
}
func (e *MissingConstructError) Kind() string         { return e.MachineKind }
func (e *MissingConstructError) Pos() lexer.Position { return e.At }

// missingExpr builds a MissingConstructError for a bare "expression"
// context (used as the default when a more specific construct isn't
// known yet, e.g. deep inside primary()).
func missingExpr(at lexer.Position) error {
	return &MissingConstructError{What: "expression", MachineKind: "MissingExpression", At: at}
}

// retag rewrites a generic MissingConstructError's What/MachineKind to
// describe the enclosing construct, so an error raised deep in primary()
// reads as "Missing condition for 'if'." instead of "Missing expression."
// Non-MissingConstructError errors pass through unchanged.
func retag(err error, what, kind string) error {
	if mc, ok := err.(*MissingConstructError); ok {
		mc.What = what
		mc.MachineKind = kind
		return mc
	}
	return err
}

// MissingIdentifierError is raised when a declaration or an "as"-binding
// requires an identifier that isn't there.
type MissingIdentifierError struct {
	Context string
	At      lexer.Position
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("Expected identifier for %s.", e.Context)
}
func (e *MissingIdentifierError) Kind() string         { return "MissingIdentifier" }
func (e *MissingIdentifierError) Pos() lexer.Position { return e.At }

// DuplicateParametersError is raised when a function's parameter list
// repeats a name.
type DuplicateParametersError struct {
	Name string
	At   lexer.Position
}

func (e *DuplicateParametersError) Error() string {
	return fmt.Sprintf("Duplicate parameter name: '%s'.", e.Name)
}
func (e *DuplicateParametersError) Kind() string         { return "DuplicateParameters" }
func (e *DuplicateParametersError) Pos() lexer.Position { return e.At }

// DuplicatePatternNamesError is raised when a match case's pattern list
// binds the same name twice via "as".
type DuplicatePatternNamesError struct {
	Name string
	At   lexer.Position
}

func (e *DuplicatePatternNamesError) Error() string {
	return fmt.Sprintf("Duplicate pattern binding name: '%s'.", e.Name)
}
func (e *DuplicatePatternNamesError) Kind() string         { return "DuplicatePatternNames" }
func (e *DuplicatePatternNamesError) Pos() lexer.Position { return e.At }

// InvalidSyntaxError is raised for trailing non-EOF tokens after a
// successful parse, or any other malformed construct not covered above.
type InvalidSyntaxError struct {
	Message string
	At      lexer.Position
}

func (e *InvalidSyntaxError) Error() string          { return e.Message }
func (e *InvalidSyntaxError) Kind() string           { return "InvalidSyntax" }
func (e *InvalidSyntaxError) Pos() lexer.Position    { return e.At }
