package resolver

import (
	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/dispatch"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/scope"
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true}
var comparisonOps = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// exprCtx carries the cross-module information a strict lookup failure
// needs. A nil *exprCtx disables the strict check entirely — used by the
// module-local scratch checks in pass3.go's registerModuleValues, which
// have no imports active and whose diagnostics are discarded regardless.
type exprCtx struct {
	reg    *registry.Registry
	from   []string
	strict bool
}

// reportUndefined records an UndefinedName/UnknownType diagnostic and, in
// strict mode, also searches every other module for a declaration under
// the same name. If one exists with Module or Private-equivalent
// visibility, a VisibilityViolation diagnostic is added alongside it —
// without strict mode, a lookup failure against a name that exists but
// isn't visible here looks identical to a genuine typo, and the two
// failure modes stay indistinguishable unless the extra search runs.
func reportUndefined(ctx *exprCtx, bag *diagnostics.Bag, name string, isType bool, pos token.Position) {
	if ctx == nil || !ctx.strict || ctx.reg == nil {
		return
	}
	for _, path := range ctx.reg.Paths() {
		if pathKey(path) == pathKey(ctx.from) {
			continue
		}
		if d := CheckQualifiedAccess(ctx.reg, ctx.from, path, name, isType, pos); d != nil && d.Kind == diagnostics.VisibilityViolation {
			bag.Add(d)
			return
		}
	}
}

// checkExpr type-checks e against sc — literals, identifiers, calls,
// field access, binary operators, struct literals, blocks, and function
// literals. It records e's
// resolved type and, for a multimethod call, the bound implementation
// into typed; it returns nil once it has added a diagnostic to bag.
func checkExpr(sc *scope.Scope, e ast.Expr, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	t := checkExprInner(sc, e, disp, typed, bag, ctx)
	if t != nil {
		typed.ExprTypes[e] = t
	}
	return t
}

func checkExprInner(sc *scope.Scope, e ast.Expr, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	switch ex := e.(type) {
	case *ast.IntLit:
		return types.Int
	case *ast.BoolLit:
		return types.Bool
	case *ast.StringLit:
		return types.String
	case *ast.UnitLit:
		return types.Unit

	case *ast.Ident:
		t, err := sc.LookupValue(ex.Name)
		if err != nil {
			bag.Add(diagnostics.New(diagnostics.UndefinedName, spanOf(ex), "undefined name %q", ex.Name).
				WithHelp(suggestValueName(sc, ex.Name)))
			reportUndefined(ctx, bag, ex.Name, false, ex.Tok)
			return nil
		}
		return t

	case *ast.BinaryExpr:
		lt := checkExpr(sc, ex.Left, disp, typed, bag, ctx)
		rt := checkExpr(sc, ex.Right, disp, typed, bag, ctx)
		if lt == nil || rt == nil {
			return nil
		}
		switch {
		case arithmeticOps[ex.Op]:
			if !types.Equal(lt, rt) || !isNumeric(lt) {
				bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex),
					"operator %s requires matching numeric operands, got %s and %s", ex.Op, lt, rt))
				return nil
			}
			return lt
		case comparisonOps[ex.Op]:
			if !types.Equal(lt, rt) {
				bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex),
					"operator %s requires operands of the same type, got %s and %s", ex.Op, lt, rt))
				return nil
			}
			return types.Bool
		case logicalOps[ex.Op]:
			if !types.Equal(lt, types.Bool) || !types.Equal(rt, types.Bool) {
				bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex),
					"operator %s requires bool operands, got %s and %s", ex.Op, lt, rt))
				return nil
			}
			return types.Bool
		default:
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex), "unknown operator %q", ex.Op))
			return nil
		}

	case *ast.CallExpr:
		return checkCall(sc, ex, disp, typed, bag, ctx)

	case *ast.StructLit:
		return checkStructLit(sc, ex, disp, typed, bag, ctx)

	case *ast.FieldAccess:
		tt := checkExpr(sc, ex.Target, disp, typed, bag, ctx)
		if tt == nil {
			return nil
		}
		st, ok := tt.(types.Struct)
		if !ok {
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex), "%s is not a struct type, has no field %q", tt, ex.Field))
			return nil
		}
		ft, ok := st.FieldType(ex.Field)
		if !ok {
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(ex), "%s has no field %q", tt, ex.Field))
			return nil
		}
		return ft

	case *ast.Block:
		return checkBlock(sc, ex, disp, typed, bag, ctx)

	case *ast.FuncLit:
		return checkFuncLit(sc, ex, disp, typed, bag, ctx)

	default:
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(e), "unrecognized expression"))
		return nil
	}
}

func isNumeric(t types.Type) bool {
	p, ok := t.(types.Primitive)
	if !ok {
		return false
	}
	return len(p.Name) >= 3 && p.Name[:3] == "int"
}

func checkCall(sc *scope.Scope, call *ast.CallExpr, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	argTypes := make([]types.Type, len(call.Args))
	ok := true
	for i, a := range call.Args {
		t := checkExpr(sc, a, disp, typed, bag, ctx)
		if t == nil {
			ok = false
			continue
		}
		argTypes[i] = t
	}
	if !ok {
		return nil
	}

	if disp.IsMultimethod(call.Callee) {
		impl, err := disp.Resolve(call.Callee, argTypes)
		if err != nil {
			switch e := err.(type) {
			case *dispatch.NoMatchingImplError:
				bag.Add(diagnostics.New(diagnostics.NoMatchingImpl, spanOf(call), "%s", e.Error()))
			case *dispatch.AmbiguousCallError:
				bag.Add(diagnostics.New(diagnostics.AmbiguousCall, spanOf(call), "%s", e.Error()))
			default:
				bag.Add(diagnostics.New(diagnostics.NoMatchingImpl, spanOf(call), "%v", err))
			}
			return nil
		}
		typed.CallBindings[call] = impl
		return impl.ReturnType
	}

	callee, err := sc.LookupValue(call.Callee)
	if err != nil {
		bag.Add(diagnostics.New(diagnostics.UndefinedName, spanOf(call), "undefined name %q", call.Callee).
			WithHelp(suggestValueName(sc, call.Callee)))
		reportUndefined(ctx, bag, call.Callee, false, call.Tok)
		return nil
	}
	fn, isFn := callee.(types.Function)
	if !isFn {
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(call), "%s is not callable (has type %s)", call.Callee, callee))
		return nil
	}
	if len(fn.Params) != len(argTypes) {
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(call), "%s expects %d argument(s), got %d", call.Callee, len(fn.Params), len(argTypes)))
		return nil
	}
	if !types.EqualAll(fn.Params, argTypes) {
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(call), "%s: argument types do not match %s", call.Callee, fn))
		return nil
	}
	return fn.Return
}

func checkStructLit(sc *scope.Scope, lit *ast.StructLit, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	typ, err := sc.LookupType(lit.TypeName)
	if err != nil {
		bag.Add(diagnostics.New(diagnostics.UnknownType, spanOf(lit), "unknown type %q", lit.TypeName).
			WithHelp(suggestTypeName(sc, lit.TypeName)))
		reportUndefined(ctx, bag, lit.TypeName, true, lit.Tok)
		return nil
	}
	st, ok := typ.(types.Struct)
	if !ok {
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(lit), "%q is not a struct type", lit.TypeName))
		return nil
	}
	if len(lit.Fields) != len(st.Fields) {
		bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(lit), "%s literal has %d field(s), type declares %d", lit.TypeName, len(lit.Fields), len(st.Fields)))
		return nil
	}
	for _, init := range lit.Fields {
		declared, ok := st.FieldType(init.Name)
		if !ok {
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(lit), "%s has no field %q", lit.TypeName, init.Name))
			return nil
		}
		vt := checkExpr(sc, init.Value, disp, typed, bag, ctx)
		if vt == nil {
			return nil
		}
		if !types.Equal(declared, vt) {
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(lit), "field %q of %s expects %s, got %s", init.Name, lit.TypeName, declared, vt))
			return nil
		}
	}
	return st
}

func checkBlock(sc *scope.Scope, b *ast.Block, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	blockScope := sc.NewChild(scope.Block)
	for _, let := range b.Lets {
		vt := checkExpr(blockScope, let.Value, disp, typed, bag, ctx)
		if vt == nil {
			return nil
		}
		if let.Annotation != nil {
			ant, diag := resolveTypeExpr(blockScope, let.Annotation)
			if diag != nil {
				bag.Add(diag)
				return nil
			}
			if !types.Equal(ant, vt) {
				bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(b), "let %q declares %s, value has type %s", let.Name, ant, vt))
				return nil
			}
			vt = ant
		}
		if err := blockScope.DeclareValue(let.Name, vt); err != nil {
			bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(b), "%q is already bound in this block", let.Name))
			return nil
		}
	}
	return checkExpr(blockScope, b.Result, disp, typed, bag, ctx)
}

func checkFuncLit(sc *scope.Scope, fn *ast.FuncLit, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, ctx *exprCtx) types.Type {
	fnScope := sc.NewChild(scope.Function)
	paramTypes := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		pt, diag := resolveTypeExpr(fnScope, p.Type)
		if diag != nil {
			bag.Add(diag)
			return nil
		}
		paramTypes[i] = pt
		if err := fnScope.DeclareValue(p.Name, pt); err != nil {
			bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(fn), "parameter %q repeated", p.Name))
			return nil
		}
	}
	bodyType := checkExpr(fnScope, fn.Body, disp, typed, bag, ctx)
	if bodyType == nil {
		return nil
	}
	if fn.Return != nil {
		declared, diag := resolveTypeExpr(fnScope, fn.Return)
		if diag != nil {
			bag.Add(diag)
			return nil
		}
		if !types.Equal(declared, bodyType) {
			bag.Add(diagnostics.New(diagnostics.TypeMismatch, spanOf(fn), "function declares return type %s, body has type %s", declared, bodyType))
			return nil
		}
		return types.Function{Params: paramTypes, Return: declared}
	}
	return types.Function{Params: paramTypes, Return: bodyType}
}
