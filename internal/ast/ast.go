// Package ast defines the untyped module tree that the resolver takes as
// input and the typed module tree it produces as output. Lexing and
// parsing produce these values; the core never reads source text itself.
//
// Grounded on funvibe-funxy/internal/ast's node shapes (Program/File,
// token-carrying nodes, ordered declaration lists) but traversed by type
// switch rather than a Visitor interface: modules/module.go already does
// lightweight structural inspection this way (collectProvides/
// collectTopLevelDeps), and the resolver's three passes only ever need a
// flat switch over a small, closed declaration set — a full Visitor would
// be needless ceremony here.
package ast

import "github.com/somlang/som/internal/token"

// Node is implemented by every AST node; it exposes the position used for
// diagnostics.
type Node interface {
	Pos() token.Position
}

// File is one source file's ordered sequence of declarations. Order
// matters only for diagnostics and emission, never for name resolution.
type File struct {
	Path         string
	Declarations []Decl
}

func (f *File) Pos() token.Position { return token.Position{File: f.Path, Line: 1, Column: 1} }

// ModuleInput is one module folder's ordered sequence of files, the unit
// the module grouper hands to the resolver.
type ModuleInput struct {
	Path  []string
	Files []*File
}

// Decl is the closed set of top-level declaration shapes recognized by
// the language surface.
type Decl interface {
	Node
	declNode()
}
