package types

import "strings"

// Field is one (field_name, Type) pair of a Struct, order-preserving.
type Field struct {
	Name string
	Type Type
}

// Struct is an ordered list of fields.
type Struct struct {
	Fields []Field
}

func (Struct) isType() {}

func (s Struct) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FieldType returns the type of a named field and whether it exists.
func (s Struct) FieldType(name string) (Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Variant is one (variant_name, Option<Type>) pair of an Enum. Payload is
// nil for a tag-only variant.
type Variant struct {
	Name    string
	Payload Type // nil if this variant carries no payload
}

// Enum is an ordered list of variants.
type Enum struct {
	Name     string // the enum's own declared name, for diagnostics
	Variants []Variant
}

func (Enum) isType() {}

func (e Enum) String() string {
	parts := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		if v.Payload == nil {
			parts[i] = v.Name
		} else {
			parts[i] = v.Name + "(" + v.Payload.String() + ")"
		}
	}
	return e.Name + "<" + strings.Join(parts, " | ") + ">"
}

// VariantByName finds a variant by name.
func (e Enum) VariantByName(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
