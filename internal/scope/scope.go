// Package scope implements the scope hierarchy: a linked chain of scopes
// (file → module → global, plus function/block nesting for expression
// type-checking) with parent-walking lookup.
//
// Grounded on funvibe-funxy/internal/symbols/symbol_table_core.go and
// symbol_table_operations.go's outer-chain SymbolTable, trimmed to drop
// everything trait/generic/kind related (no trait dictionaries, no
// type-variable substitution, no kind checking).
package scope

import "github.com/somlang/som/internal/types"

//go:generate stringer -type=Kind
type Kind int

const (
	Global Kind = iota
	Module
	File
	Function
	Block
)

// Scope holds two namespaces, types and values, plus a kind and an
// optional parent. Visibility is NOT enforced here — lookup simply walks
// parents with the first match winning and no kind-based shadowing rules.
// Visibility is enforced at the edges between scope kinds by the
// resolver, when a File scope or an import is constructed.
type Scope struct {
	kind   Kind
	parent *Scope
	types  map[string]types.Type
	values map[string]types.Type
}

// New creates the unique root (global) scope.
func New() *Scope {
	return &Scope{kind: Global, types: make(map[string]types.Type), values: make(map[string]types.Type)}
}

// NewChild creates a scope whose parent is the receiver.
func (s *Scope) NewChild(kind Kind) *Scope {
	return &Scope{kind: kind, parent: s, types: make(map[string]types.Type), values: make(map[string]types.Type)}
}

// Kind returns this scope's kind.
func (s *Scope) Kind() Kind { return s.kind }

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope { return s.parent }

// DeclareType binds name in the current scope's type namespace. Fails
// with ErrDuplicate if name is already bound in THIS scope (shadowing an
// ancestor's binding is allowed; redeclaring within one scope is not).
func (s *Scope) DeclareType(name string, t types.Type) error {
	if _, exists := s.types[name]; exists {
		return ErrDuplicate
	}
	s.types[name] = t
	return nil
}

// DeclareValue binds name in the current scope's value namespace.
func (s *Scope) DeclareValue(name string, t types.Type) error {
	if _, exists := s.values[name]; exists {
		return ErrDuplicate
	}
	s.values[name] = t
	return nil
}

// SetType overwrites (rather than declares) a type binding in the current
// scope — used by Pass 2 to replace a Forward with its resolved body in
// the ephemeral scopes rebuilt for that pass.
func (s *Scope) SetType(name string, t types.Type) {
	s.types[name] = t
}

// SetValue overwrites (rather than declares) a value binding in the
// current scope — used by Pass 3 to seed a Module scope from the sealed
// registry and to let a file's private declarations take precedence over
// a same-named import without erroring.
func (s *Scope) SetValue(name string, t types.Type) {
	s.values[name] = t
}

// LookupType walks the parent chain for name, first match wins.
func (s *Scope) LookupType(name string) (types.Type, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.types[name]; ok {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// LookupValue walks the parent chain for name, first match wins.
func (s *Scope) LookupValue(name string) (types.Type, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.values[name]; ok {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// HasTypeLocally reports whether name is bound in this scope specifically
// (not an ancestor) — used by Pass 3 to skip an imported name that the
// file scope already binds.
func (s *Scope) HasTypeLocally(name string) bool {
	_, ok := s.types[name]
	return ok
}

// HasValueLocally reports whether name is bound in this scope specifically.
func (s *Scope) HasValueLocally(name string) bool {
	_, ok := s.values[name]
	return ok
}

// TypeNames returns every type name visible from this scope, walking the
// full parent chain. Used only for "did you mean" suggestions on an
// UnknownType/UndefinedName diagnostic — never for resolution itself.
func (s *Scope) TypeNames() []string {
	seen := make(map[string]bool)
	var out []string
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.types {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// ValueNames returns every value name visible from this scope, walking the
// full parent chain.
func (s *Scope) ValueNames() []string {
	seen := make(map[string]bool)
	var out []string
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.values {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
