/*
File    : gomatch/std/builtins.go
*/

// Package std implements gomatch's built-in callables (§4.4.10) and the
// small Runtime interface the evaluator satisfies so builtins can write
// output without importing eval (which would cycle back to std).
package std

import (
	"fmt"
	"io"

	"github.com/gomatch-lang/gomatch/objects"
)

// Runtime is the slice of eval.Evaluator a builtin needs. It is defined
// here, not in eval, so std never imports eval.
type Runtime interface {
	// Output is the writer builtins send host-visible output to (§4.4.10).
	Output() io.Writer
}

// BuiltinFunc implements one builtin's behavior. Arguments have already
// been arity-checked by the caller when Arity is non-nil.
type BuiltinFunc func(rt Runtime, args []objects.Value) (objects.Value, error)

// Builtin is a host-provided callable (§4.4.10). It implements both
// objects.Value and objects.Callable so the evaluator's call dispatch
// treats it uniformly with function.Function.
type Builtin struct {
	BuiltinName string
	ArityValue  *int // nil means variadic, e.g. print
	Fn          BuiltinFunc
}

func (b *Builtin) Type() objects.Type { return objects.BuiltinType }

// String is the canonical stringification (§4.4.3): a builtin, like any
// callable, stringifies to its bare name.
func (b *Builtin) String() string { return b.BuiltinName }

func (b *Builtin) Inspect() string { return fmt.Sprintf("<builtin %s>", b.BuiltinName) }

func (b *Builtin) Name() string  { return b.BuiltinName }
func (b *Builtin) Arity() *int   { return b.ArityValue }

var (
	_ objects.Value    = (*Builtin)(nil)
	_ objects.Callable = (*Builtin)(nil)
)
