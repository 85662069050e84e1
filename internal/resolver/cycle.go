package resolver

import (
	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/token"
)

// typeNode identifies one type declaration for cycle detection: owner is
// "" for a module-level (non-Private) declaration, or a file path for a
// Private one, since private names are scoped per file.
type typeNode struct {
	owner string
	name  string
}

// checkInfiniteSize finds every type declaration in m that is part of an
// inline (non-Reference, non-Function) reference cycle. A direct
// self-reference (`type A = {x: A}`) is the simplest case, but an
// indirect one is exactly as unbounded (`type A = {b: B}; type B = {a:
// A}`), so this walks the full reference graph rather than only checking
// for self-loops. It reports one InfiniteSize diagnostic per declaration
// on a cycle and returns the set of declarations to skip resolving this
// pass, so later resolution does not chase an unbounded structure.
func checkInfiniteSize(m *ast.ModuleInput, bag *diagnostics.Bag) map[typeNode]bool {
	moduleDecls := make(map[string]ast.TypeExpr)
	modulePos := make(map[string]token.Position)
	fileDecls := make(map[string]map[string]ast.TypeExpr)
	filePos := make(map[string]map[string]token.Position)

	for _, f := range m.Files {
		fileDecls[f.Path] = make(map[string]ast.TypeExpr)
		filePos[f.Path] = make(map[string]token.Position)
		for _, d := range f.Declarations {
			td, ok := d.(*ast.TypeDecl)
			if !ok {
				continue
			}
			if td.Visibility == registry.Private {
				fileDecls[f.Path][td.Name] = td.Body
				filePos[f.Path][td.Name] = td.Tok
			} else {
				moduleDecls[td.Name] = td.Body
				modulePos[td.Name] = td.Tok
			}
		}
	}

	adj := make(map[typeNode][]typeNode)
	for name, body := range moduleDecls {
		n := typeNode{"", name}
		adj[n] = inlineTargets(body, "", moduleDecls, nil)
	}
	for filePath, decls := range fileDecls {
		for name, body := range decls {
			n := typeNode{filePath, name}
			adj[n] = inlineTargets(body, filePath, moduleDecls, decls)
		}
	}

	flagged := make(map[typeNode]bool)
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[typeNode]int)
	var stack []typeNode

	var visit func(n typeNode)
	visit = func(n typeNode) {
		color[n] = gray
		stack = append(stack, n)
		for _, next := range adj[n] {
			switch color[next] {
			case white:
				visit(next)
			case gray:
				// found a cycle: flag every node from next's first
				// occurrence on the stack to the top.
				start := 0
				for i, s := range stack {
					if s == next {
						start = i
						break
					}
				}
				for _, s := range stack[start:] {
					flagged[s] = true
				}
			}
		}
		stack = stack[:len(stack)-1]
		color[n] = black
	}

	for n := range adj {
		if color[n] == white {
			visit(n)
		}
	}

	for n := range flagged {
		var pos token.Position
		if n.owner == "" {
			pos = modulePos[n.name]
		} else {
			pos = filePos[n.owner][n.name]
		}
		bag.Add(diagnostics.New(diagnostics.InfiniteSize, token.Span{Start: pos, End: pos},
			"type %q has infinite size: inline cycle with no Reference indirection", n.name))
	}
	return flagged
}

// inlineTargets collects the named type references inside te that
// contribute to te's inline (non-indirected) size — descending into
// struct fields and enum variant payloads, but treating Function and
// Reference as opaque boundaries since both are fixed-size at runtime
// regardless of what they point to.
func inlineTargets(te ast.TypeExpr, filePath string, moduleDecls map[string]ast.TypeExpr, fileLocal map[string]ast.TypeExpr) []typeNode {
	switch t := te.(type) {
	case *ast.NamedTypeExpr:
		if fileLocal != nil {
			if _, ok := fileLocal[t.Name]; ok {
				return []typeNode{{filePath, t.Name}}
			}
		}
		if _, ok := moduleDecls[t.Name]; ok {
			return []typeNode{{"", t.Name}}
		}
		return nil
	case *ast.StructTypeExpr:
		var out []typeNode
		for _, f := range t.Fields {
			out = append(out, inlineTargets(f.Type, filePath, moduleDecls, fileLocal)...)
		}
		return out
	case *ast.EnumTypeExpr:
		var out []typeNode
		for _, v := range t.Variants {
			if v.Payload != nil {
				out = append(out, inlineTargets(v.Payload, filePath, moduleDecls, fileLocal)...)
			}
		}
		return out
	default: // *ast.FunctionTypeExpr, *ast.ReferenceTypeExpr: indirection boundary
		return nil
	}
}
