package ast

import "github.com/somlang/som/internal/token"

// Expr is the closed set of expression shapes the core type-checks. There
// is no inference beyond literal, identifier, call, field-access, and
// binary-operator typing with explicit annotations where needed.
type Expr interface {
	Node
	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	Tok   token.Position
	Value int64
}

func (e *IntLit) Pos() token.Position { return e.Tok }
func (*IntLit) exprNode()             {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Tok   token.Position
	Value bool
}

func (e *BoolLit) Pos() token.Position { return e.Tok }
func (*BoolLit) exprNode()             {}

// StringLit is a string literal.
type StringLit struct {
	Tok   token.Position
	Value string
}

func (e *StringLit) Pos() token.Position { return e.Tok }
func (*StringLit) exprNode()             {}

// UnitLit is the single value of the unit type.
type UnitLit struct {
	Tok token.Position
}

func (e *UnitLit) Pos() token.Position { return e.Tok }
func (*UnitLit) exprNode()             {}

// Ident is a bare name reference, resolved by the ordinary lookup chain
// (File, which also holds imported bindings → Module → Global).
type Ident struct {
	Tok  token.Position
	Name string
}

func (e *Ident) Pos() token.Position { return e.Tok }
func (*Ident) exprNode()             {}

// BinaryExpr is `left Op right`.
type BinaryExpr struct {
	Tok   token.Position
	Op    string
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() token.Position { return e.Tok }
func (*BinaryExpr) exprNode()             {}

// CallExpr is `callee(args...)`. Callee is a bare name: either an
// ordinary value binding of function type, or a multimethod name, decided
// by lookup at the call site.
type CallExpr struct {
	Tok    token.Position
	Callee string
	Args   []Expr
}

func (e *CallExpr) Pos() token.Position { return e.Tok }
func (*CallExpr) exprNode()             {}

// FieldInit is one `name: value` pair of a StructLit.
type FieldInit struct {
	Name  string
	Value Expr
}

// StructLit is `TypeName{ field: value, ... }`.
type StructLit struct {
	Tok      token.Position
	TypeName string
	Fields   []FieldInit
}

func (e *StructLit) Pos() token.Position { return e.Tok }
func (*StructLit) exprNode()             {}

// FieldAccess is `target.field`.
type FieldAccess struct {
	Tok    token.Position
	Target Expr
	Field  string
}

func (e *FieldAccess) Pos() token.Position { return e.Tok }
func (*FieldAccess) exprNode()             {}

// LetBinding is one local binding inside a Block.
type LetBinding struct {
	Tok        token.Position
	Name       string
	Annotation TypeExpr // nil if untyped
	Value      Expr
}

// Block is a sequence of local let-bindings followed by a result
// expression — the language's only statement-sequencing construct,
// checked against a nested Function/Block scope.
type Block struct {
	Tok    token.Position
	Lets   []LetBinding
	Result Expr
}

func (e *Block) Pos() token.Position { return e.Tok }
func (*Block) exprNode()             {}

// FuncLit is `fn(params) [-> T] body`, a first-class function value.
type FuncLit struct {
	Tok    token.Position
	Params []Param
	Return TypeExpr // nil if the return type should be inferred from Body
	Body   Expr
}

func (e *FuncLit) Pos() token.Position { return e.Tok }
func (*FuncLit) exprNode()             {}
