package types

import (
	"fmt"
	"strings"
)

// Flatten produces a deterministic, injective textual encoding of a
// resolved Type. Each variant is tagged with a constructor prefix so that
// e.g. the struct `{x: int}` and the enum `x<int>` can never collide, and
// every sub-type is recursively flattened and wrapped in delimiters so
// that variable-arity lists (struct fields, function params, enum
// variants) cannot be confused with one another by concatenation alone.
//
// A Forward directly behind a Reference is encoded by its qualified name:
// a Reference to a type declared later in the same module keeps that
// Forward after type bodies are resolved. Flatten panics on a Forward in
// any other position, since that means a type was never resolved.
func Flatten(t Type) string {
	switch tt := t.(type) {
	case Primitive:
		return "P" + tt.Name
	case Reference:
		if fwd, ok := tt.Elem.(Forward); ok {
			return "R<N" + fwd.Name.String() + ">"
		}
		return "R<" + Flatten(tt.Elem) + ">"
	case Function:
		parts := make([]string, len(tt.Params))
		for i, p := range tt.Params {
			parts[i] = Flatten(p)
		}
		return "F(" + strings.Join(parts, ",") + ")->" + Flatten(tt.Return)
	case Struct:
		parts := make([]string, len(tt.Fields))
		for i, f := range tt.Fields {
			parts[i] = f.Name + ":" + Flatten(f.Type)
		}
		return "S{" + strings.Join(parts, ",") + "}"
	case Enum:
		parts := make([]string, len(tt.Variants))
		for i, v := range tt.Variants {
			if v.Payload == nil {
				parts[i] = v.Name
			} else {
				parts[i] = v.Name + "(" + Flatten(v.Payload) + ")"
			}
		}
		return "E[" + tt.Name + ":" + strings.Join(parts, ",") + "]"
	case Forward:
		panic(fmt.Sprintf("types.Flatten: unresolved Forward %s reached mangling", tt.Name))
	default:
		panic(fmt.Sprintf("types.Flatten: unhandled type %T", t))
	}
}

// Mangle builds the mangled name `name_flatten(T1)_..._flatten(Tn)` for a
// multimethod implementation.
func Mangle(name string, params []Type) string {
	var b strings.Builder
	b.WriteString(name)
	for _, p := range params {
		b.WriteString("_")
		b.WriteString(Flatten(p))
	}
	return b.String()
}
