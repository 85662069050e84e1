// Package dispatch implements the multimethod dispatch table:
// implementations registered under a method name, resolved at a call site
// by exact-match specificity over argument types.
//
// Grounded on funvibe-funxy/internal/analyzer/declarations_instances_methods.go's
// candidate-filtering-by-arity-then-type shape and typesystem/dispatch.go's
// DispatchSource vocabulary, but collapsed to a simpler rule: no subtype
// polymorphism, no trait witnesses — a candidate either matches every
// argument's type exactly or it does not.
package dispatch

import (
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

// Implementation is one registered `impl fn` overload.
type Implementation struct {
	Name        string
	ParamTypes  []types.Type
	ReturnType  types.Type
	Location    token.Position
	MangledName string
}

// Table maps a method name to its list of implementations. The list is
// unordered for resolution but insertion-ordered, so diagnostics that walk
// it (e.g. listing candidates on a no-match error) are stable.
type Table struct {
	impls map[string][]*Implementation
}

// NewTable returns an empty multimethod dispatch table.
func NewTable() *Table {
	return &Table{impls: make(map[string][]*Implementation)}
}

// Register inserts an implementation under name. Fails with a
// *DuplicateImplError if an implementation with a structurally equal
// parameter-type list already exists for this name.
func (t *Table) Register(name string, paramTypes []types.Type, returnType types.Type, loc token.Position) (*Implementation, error) {
	for _, existing := range t.impls[name] {
		if types.EqualAll(existing.ParamTypes, paramTypes) {
			return nil, &DuplicateImplError{Name: name, ParamTypes: paramTypes, FirstLocation: existing.Location, SecondLocation: loc}
		}
	}
	impl := &Implementation{
		Name:        name,
		ParamTypes:  paramTypes,
		ReturnType:  returnType,
		Location:    loc,
		MangledName: types.Mangle(name, paramTypes),
	}
	t.impls[name] = append(t.impls[name], impl)
	return impl, nil
}

// Implementations returns every registered overload of name, in
// registration order.
func (t *Table) Implementations(name string) []*Implementation {
	return t.impls[name]
}

// IsMultimethod reports whether any implementation has been registered
// under name.
func (t *Table) IsMultimethod(name string) bool {
	return len(t.impls[name]) > 0
}

// Resolve performs call-site resolution: filter candidates by arity and
// exact structural-type match, then require exactly one survivor.
func (t *Table) Resolve(name string, argTypes []types.Type) (*Implementation, error) {
	all := t.impls[name]
	var candidates []*Implementation
	for _, impl := range all {
		if len(impl.ParamTypes) != len(argTypes) {
			continue
		}
		if types.EqualAll(impl.ParamTypes, argTypes) {
			candidates = append(candidates, impl)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, &NoMatchingImplError{Name: name, ArgTypes: argTypes, Candidates: all}
	case 1:
		return candidates[0], nil
	default:
		return nil, &AmbiguousCallError{Name: name, ArgTypes: argTypes, Candidates: candidates}
	}
}
