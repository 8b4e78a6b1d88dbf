/*
File    : gomatch/objects/callable.go
*/

package objects

// Callable is implemented by every invocable Value: built-ins (e.g. print)
// and user-defined functions (package function). It deliberately has no
// Call method — invocation dispatch is a type-switch inside eval.Evaluator,
// mirroring how the evaluator already distinguishes concrete Value kinds
// for every other operation instead of routing through virtual calls.
type Callable interface {
	Value
	// Name is the callable's name, used in diagnostics and in the
	// stringify-both-sides fallback of "+" (§4.4.2 to_number on a
	// callable coerces its name).
	Name() string
	// Arity is the required argument count, or nil for variadic.
	Arity() *int
}
