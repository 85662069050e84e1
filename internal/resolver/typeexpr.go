package resolver

import (
	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/scope"
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

func spanOf(n ast.Node) token.Span {
	p := n.Pos()
	return token.Span{Start: p, End: p}
}

// resolveTypeExpr converts a syntactic type expression into a resolved
// types.Type by walking sc's lookup chain for every named reference.
// Cycle detection (InfiniteSize) runs separately, before this is called,
// over the raw syntax tree (see cycle.go); by the time this function
// walks a declaration's body any involved name has either already been
// flagged and skipped, or is safe to resolve in any order.
func resolveTypeExpr(sc *scope.Scope, te ast.TypeExpr) (types.Type, *diagnostics.Diagnostic) {
	switch t := te.(type) {
	case *ast.NamedTypeExpr:
		typ, err := sc.LookupType(t.Name)
		if err != nil {
			return nil, diagnostics.New(diagnostics.UnknownType, spanOf(t), "unknown type %q", t.Name).
				WithHelp(suggestTypeName(sc, t.Name))
		}
		return typ, nil
	case *ast.StructTypeExpr:
		fields := make([]types.Field, len(t.Fields))
		for i, f := range t.Fields {
			ft, d := resolveTypeExpr(sc, f.Type)
			if d != nil {
				return nil, d
			}
			fields[i] = types.Field{Name: f.Name, Type: ft}
		}
		return types.Struct{Fields: fields}, nil
	case *ast.EnumTypeExpr:
		return resolveEnumBody(sc, "", t)
	case *ast.FunctionTypeExpr:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			pt, d := resolveTypeExpr(sc, p)
			if d != nil {
				return nil, d
			}
			params[i] = pt
		}
		ret, d := resolveTypeExpr(sc, t.Return)
		if d != nil {
			return nil, d
		}
		return types.Function{Params: params, Return: ret}, nil
	case *ast.ReferenceTypeExpr:
		elem, d := resolveTypeExpr(sc, t.Elem)
		if d != nil {
			return nil, d
		}
		return types.Reference{Elem: elem}, nil
	default:
		return nil, diagnostics.New(diagnostics.UnknownType, spanOf(te), "unrecognized type expression")
	}
}

func resolveEnumBody(sc *scope.Scope, declName string, t *ast.EnumTypeExpr) (types.Type, *diagnostics.Diagnostic) {
	variants := make([]types.Variant, len(t.Variants))
	for i, v := range t.Variants {
		var payload types.Type
		if v.Payload != nil {
			p, d := resolveTypeExpr(sc, v.Payload)
			if d != nil {
				return nil, d
			}
			payload = p
		}
		variants[i] = types.Variant{Name: v.Name, Payload: payload}
	}
	return types.Enum{Name: declName, Variants: variants}, nil
}

// resolveTypeDeclBody resolves a top-level type declaration's body,
// threading the declaration's own name through so an Enum body carries it
// (types.Enum.Name exists purely for diagnostic rendering).
func resolveTypeDeclBody(sc *scope.Scope, name string, body ast.TypeExpr) (types.Type, *diagnostics.Diagnostic) {
	if enumExpr, ok := body.(*ast.EnumTypeExpr); ok {
		return resolveEnumBody(sc, name, enumExpr)
	}
	return resolveTypeExpr(sc, body)
}
