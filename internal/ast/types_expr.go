package ast

import "github.com/somlang/som/internal/token"

// TypeExpr is an unresolved type reference as written in source, before
// the resolver's type-body pass resolves it against the scope chain into
// a types.Type.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr is a bare type name reference, e.g. `Config` or `int`.
// Type-body resolution does not consult imports: inside a type body a
// name resolves via the File→Module scope chain only. Parameter types of
// multimethod implementations are resolved again in the type-checking
// pass, where the file scope also holds imported names.
type NamedTypeExpr struct {
	Tok  token.Position
	Name string
}

func (t *NamedTypeExpr) Pos() token.Position { return t.Tok }
func (*NamedTypeExpr) typeExprNode()         {}

// StructTypeExpr is `{ field: Type, ... }`.
type StructTypeExpr struct {
	Tok    token.Position
	Fields []FieldTypeExpr
}

func (t *StructTypeExpr) Pos() token.Position { return t.Tok }
func (*StructTypeExpr) typeExprNode()         {}

// FieldTypeExpr is one field of a StructTypeExpr.
type FieldTypeExpr struct {
	Name string
	Type TypeExpr
}

// EnumTypeExpr is `variant1 | variant2(Type) | ...`.
type EnumTypeExpr struct {
	Tok      token.Position
	Variants []VariantTypeExpr
}

func (t *EnumTypeExpr) Pos() token.Position { return t.Tok }
func (*EnumTypeExpr) typeExprNode()         {}

// VariantTypeExpr is one variant of an EnumTypeExpr; Payload is nil for a
// tag-only variant.
type VariantTypeExpr struct {
	Name    string
	Payload TypeExpr
}

// FunctionTypeExpr is `(T1, ..., Tn) -> R`.
type FunctionTypeExpr struct {
	Tok    token.Position
	Params []TypeExpr
	Return TypeExpr
}

func (t *FunctionTypeExpr) Pos() token.Position { return t.Tok }
func (*FunctionTypeExpr) typeExprNode()         {}

// ReferenceTypeExpr is `*Type`, a pointer indirection that breaks
// structural recursion.
type ReferenceTypeExpr struct {
	Tok  token.Position
	Elem TypeExpr
}

func (t *ReferenceTypeExpr) Pos() token.Position { return t.Tok }
func (*ReferenceTypeExpr) typeExprNode()         {}
