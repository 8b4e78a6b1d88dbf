/*
File    : gomatch/objects/objects.go
*/

// Package objects defines the runtime value representation for gomatch
// (§3.3): a tagged variant over integer, float, string, boolean, nil, and
// callable values. Every concrete type implements Value.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the tag of a runtime Value.
type Type string

const (
	IntegerType  Type = "integer"
	FloatType    Type = "float"
	StringType   Type = "string"
	BooleanType  Type = "boolean"
	NilType      Type = "nil"
	FunctionType Type = "function"
	BuiltinType  Type = "builtin"
)

// Value is the interface every runtime value implements.
type Value interface {
	// Type reports the value's tag.
	Type() Type
	// String is the canonical stringification (§4.4.3 "+", used by print
	// and by the stringify-both-sides fallback).
	String() string
	// Inspect is a debug representation, used by the REPL's .scope
	// listing and by runtime error messages.
	Inspect() string
}

// Integer wraps a 64-bit two's-complement integer.
type Integer struct {
	Value int64
}

func (i *Integer) Type() Type      { return IntegerType }
func (i *Integer) String() string  { return strconv.FormatInt(i.Value, 10) }
func (i *Integer) Inspect() string { return i.String() }

// Float wraps an IEEE-754 binary64 value.
type Float struct {
	Value float64
}

func (f *Float) Type() Type { return FloatType }

// String formats the float per §4.4.3's stringification: the shortest
// decimal representation that round-trips. A whole-valued float (e.g. the
// 8.0 produced by coercing "5"+3) stringifies the same as its integer
// counterpart ("8"), matching spec.md's worked arithmetic-coercion
// example; use Inspect for a representation that keeps the distinction.
func (f *Float) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// Inspect is the debug rendering: unlike String, it always carries a
// fractional part so a REPL/log viewer can tell a Float apart from an
// Integer of the same magnitude.
func (f *Float) Inspect() string {
	s := f.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// String wraps a UTF-8 string value.
type String struct {
	Value string
}

func (s *String) Type() Type      { return StringType }
func (s *String) String() string  { return s.Value }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }

// Boolean wraps true/false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BooleanType }
func (b *Boolean) String() string  { return strconv.FormatBool(b.Value) }
func (b *Boolean) Inspect() string { return b.String() }

// Nil is the sole nil value; all Nil instances are interchangeable.
type Nil struct{}

func (n *Nil) Type() Type      { return NilType }
func (n *Nil) String() string  { return "nil" }
func (n *Nil) Inspect() string { return "nil" }

// NilValue is the shared Nil instance. The evaluator returns this rather
// than allocating a fresh &Nil{} for every nil-valued expression.
var NilValue = &Nil{}
