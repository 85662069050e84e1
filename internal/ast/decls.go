package ast

import (
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/token"
)

// ImportDecl is `use <qualified::path>`.
type ImportDecl struct {
	Tok  token.Position
	Path []string // e.g. ["std", "io"]
}

func (d *ImportDecl) Pos() token.Position { return d.Tok }
func (*ImportDecl) declNode()             {}

// TypeDecl is `[pub|pub(mod)] type Name = <body>`.
type TypeDecl struct {
	Tok        token.Position
	Name       string
	Visibility registry.Visibility
	Body       TypeExpr
}

func (d *TypeDecl) Pos() token.Position { return d.Tok }
func (*TypeDecl) declNode()             {}

// ValueDecl is `[pub|pub(mod)] let name [: Type] = <expr>`.
type ValueDecl struct {
	Tok        token.Position
	Name       string
	Visibility registry.Visibility
	Annotation TypeExpr // nil if no `: Type` was given
	Value      Expr
}

func (d *ValueDecl) Pos() token.Position { return d.Tok }
func (*ValueDecl) declNode()             {}

// ExternDecl is `intrinsic fn name(params) -> T`: an externally provided
// function registered with its declared type and trusted without a body
// to check.
type ExternDecl struct {
	Tok        token.Position
	Name       string
	Visibility registry.Visibility
	Params     []Param
	Return     TypeExpr
}

func (d *ExternDecl) Pos() token.Position { return d.Tok }
func (*ExternDecl) declNode()             {}

// MultimethodDecl is the optional `multimethod fn name(params) -> T`
// signature declaration that every impl's return type must structurally
// match.
type MultimethodDecl struct {
	Tok        token.Position
	Name       string
	Visibility registry.Visibility
	Params     []TypeExpr
	Return     TypeExpr
}

func (d *MultimethodDecl) Pos() token.Position { return d.Tok }
func (*MultimethodDecl) declNode()             {}

// MultimethodImpl is `impl fn name(typed_params) -> T { body }`, one
// overload registered into the dispatch table.
type MultimethodImpl struct {
	Tok    token.Position
	Name   string
	Params []Param
	Return TypeExpr
	Body   Expr
}

func (d *MultimethodImpl) Pos() token.Position { return d.Tok }
func (*MultimethodImpl) declNode()             {}

// Param is one function parameter: a name paired with its declared type.
type Param struct {
	Name string
	Type TypeExpr
}
