/*
File    : gomatch/scope/scope.go
*/

// Package scope implements the lexically-scoped environment chain (§3.4):
// a linked sequence of binding maps, each entry pairing a value with a
// const flag, searched from the current scope outward to the global scope.
package scope

import (
	"errors"

	"github.com/gomatch-lang/gomatch/objects"
)

// Sentinel errors for the three binding failures the evaluator wraps with
// position information (§7 "wrap-and-rethrow": the Environment raises
// positionless, the evaluator re-raises the same kind with the AST node's
// position attached).
var (
	ErrAlreadyDefined = errors.New("already defined in this scope")
	ErrUndefined      = errors.New("undefined")
	ErrConstant       = errors.New("constant")
)

type binding struct {
	value   objects.Value
	isConst bool
}

// Scope is one link in the environment chain. A nil Parent marks the
// global scope.
type Scope struct {
	bindings map[string]binding
	Parent   *Scope
}

// New creates a scope nested inside parent. Pass nil to create the global
// scope.
func New(parent *Scope) *Scope {
	return &Scope{
		bindings: make(map[string]binding),
		Parent:   parent,
	}
}

// Lookup searches this scope and every ancestor for name.
//
// Parameters:
//   - name: the identifier to resolve.
//
// Returns:
//   - objects.Value: the bound value, found in this scope or an ancestor.
//   - error: ErrUndefined if no scope in the chain binds name.
//
// Example usage:
//
//	v, err := sc.Lookup("x")
func (s *Scope) Lookup(name string) (objects.Value, error) {
	for sc := s; sc != nil; sc = sc.Parent {
		if b, ok := sc.bindings[name]; ok {
			return b.value, nil
		}
	}
	return nil, ErrUndefined
}

// IsConst reports whether name is bound as const anywhere in the chain.
// Only meaningful once Lookup has confirmed the name exists.
func (s *Scope) IsConst(name string) bool {
	for sc := s; sc != nil; sc = sc.Parent {
		if b, ok := sc.bindings[name]; ok {
			return b.isConst
		}
	}
	return false
}

// Define creates a new binding in THIS scope only (§4.4.6 var/const).
// Redefining a name already present in this scope fails with
// ErrAlreadyDefined, regardless of whether the existing binding is const —
// that rule is enforced by the caller for ordinary var/const declarations,
// while function redeclaration (which may overwrite a non-const binding)
// uses Redeclare instead.
//
// Parameters:
//   - name: the identifier to bind.
//   - value: the initial value.
//   - isConst: whether later Assign calls on this binding should fail.
//
// Returns:
//   - error: ErrAlreadyDefined if name is already bound in this scope.
func (s *Scope) Define(name string, value objects.Value, isConst bool) error {
	if _, ok := s.bindings[name]; ok {
		return ErrAlreadyDefined
	}
	s.bindings[name] = binding{value: value, isConst: isConst}
	return nil
}

// Redeclare implements the function-specific reassignment rule of §4.4.6:
// a function may shadow itself when re-declared in the same scope, unless
// the existing binding is const, in which case it fails with ErrConstant.
func (s *Scope) Redeclare(name string, value objects.Value) error {
	if existing, ok := s.bindings[name]; ok && existing.isConst {
		return ErrConstant
	}
	s.bindings[name] = binding{value: value, isConst: false}
	return nil
}

// Assign walks the chain to find name's defining scope and updates its
// binding in place (§4.4.6). Fails with ErrUndefined if no scope in the
// chain binds name, or ErrConstant if the binding is const.
func (s *Scope) Assign(name string, value objects.Value) error {
	for sc := s; sc != nil; sc = sc.Parent {
		if b, ok := sc.bindings[name]; ok {
			if b.isConst {
				return ErrConstant
			}
			sc.bindings[name] = binding{value: value, isConst: false}
			return nil
		}
	}
	return ErrUndefined
}

// Copy produces an independent snapshot of this scope's own bindings,
// sharing the same Parent. It is never used in closure creation — closures
// capture their defining *Scope by reference, not by copy, so that
// mutations made through the closure are visible to the scope that created
// it (see the function package). Copy exists for introspection, e.g. a
// REPL command that wants to print the current bindings without risking
// that the caller mutates the live scope while iterating it.
func (s *Scope) Copy() *Scope {
	cp := &Scope{
		bindings: make(map[string]binding, len(s.bindings)),
		Parent:   s.Parent,
	}
	for k, v := range s.bindings {
		cp.bindings[k] = v
	}
	return cp
}

// Names returns the names bound directly in this scope (not ancestors),
// used by the REPL's .scope introspection command.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		names = append(names, k)
	}
	return names
}
