// Package types implements the value domain for types: a tagged variant
// over primitives, structs, enums, functions, references, and an
// explicit Forward placeholder, plus the handle-based forward-declaration
// table that lets mutually recursive types be built without a
// chicken-and-egg problem.
//
// Grounded on funvibe-funxy/internal/typesystem/types.go's Type interface
// and variant set, trimmed to a purely structural domain: no type
// variables, no unification, no kind system, no trait dictionaries — just
// annotation-driven typing with no Hindley-Milner-style inference.
package types

import (
	"fmt"
	"strings"
)

// Type is the interface every type-domain variant implements.
type Type interface {
	// String renders the type for diagnostics; mangled names use Flatten.
	String() string
	fmt.Stringer
	isType()
}

// QualifiedName is a module-path-qualified identifier, e.g. the name
// carried by a Forward — every Forward tracks the fully-qualified module
// path of the module that declared it.
type QualifiedName struct {
	Module []string
	Name   string
}

func (q QualifiedName) String() string {
	if len(q.Module) == 0 {
		return q.Name
	}
	return strings.Join(q.Module, ".") + "." + q.Name
}

// Primitive is one of the built-in scalar types.
type Primitive struct {
	Name string // "int", "bool", "string", "unit", "int8", "int16", "int32", "int64", ...
}

func (Primitive) isType() {}
func (p Primitive) String() string { return p.Name }

var (
	Int    = Primitive{Name: "int"}
	Bool   = Primitive{Name: "bool"}
	String = Primitive{Name: "string"}
	Unit   = Primitive{Name: "unit"}
)

// IntN returns the concrete bit-width integer primitive for bits.
func IntN(bits int) Primitive {
	return Primitive{Name: fmt.Sprintf("int%d", bits)}
}
