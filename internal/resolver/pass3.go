package resolver

import (
	"strings"

	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/config"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/dispatch"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/scope"
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

// pass3 is the final pass. The registry is sealed and every type is fully
// resolved, but nothing about *values* has been registered yet — unlike
// types, values have no Forward/resolve machinery, so this pass first
// registers every module's top-level values (Tier A, module-local, no
// imports — the value-side analogue of the earlier passes' "intra-module
// forwards suffice"), then rebuilds each file's scope with imports active
// and deep-checks every body (Tier B).
func pass3(inputs []*ast.ModuleInput, states map[string]*moduleState, global *scope.Scope, reg *registry.Registry, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, cfg *config.AnalyzerConfig) {
	for _, m := range inputs {
		registerModuleValues(m, states[pathKey(m.Path)], global, reg, disp, bag)
	}
	if !bag.Empty() {
		return
	}
	for _, m := range inputs {
		checkModule(m, states[pathKey(m.Path)], global, reg, disp, typed, bag, cfg)
	}
}

// registerModuleValues is Tier A: determine every top-level
// ExternDecl/ValueDecl's type, module-locally (no imports), in file order,
// registering non-private ones in the registry and recording private ones
// in the file's state. A `let` without an explicit annotation whose initializer
// cannot be typed from module-local information alone (almost always
// because it needs an import) is rejected here and must be annotated:
// this pass never has imports active, so it cannot do better.
func registerModuleValues(m *ast.ModuleInput, st *moduleState, global *scope.Scope, reg *registry.Registry, disp *dispatch.Table, bag *diagnostics.Bag) {
	entry, _ := reg.Get(m.Path)
	moduleScope := global.NewChild(scope.Module)
	for name, t := range entry.ModuleTypes {
		moduleScope.SetType(name, t)
	}

	for _, f := range m.Files {
		fs := st.files[f]
		localScope := moduleScope.NewChild(scope.File)
		for name, t := range fs.privateTypes {
			localScope.SetType(name, t)
		}
		for name, t := range fs.privateValues {
			localScope.SetValue(name, t)
		}

		for _, d := range f.Declarations {
			switch decl := d.(type) {
			case *ast.ExternDecl:
				fn, diag := buildExternType(localScope, decl)
				if diag != nil {
					bag.Add(diag)
					continue
				}
				storeTopLevelValue(m, f, decl.Name, decl.Visibility, fn, reg, moduleScope, fs, bag, decl)

			case *ast.ValueDecl:
				vt, diag := inferValueDeclType(localScope, decl, disp)
				if diag != nil {
					bag.Add(diag)
					continue
				}
				storeTopLevelValue(m, f, decl.Name, decl.Visibility, vt, reg, moduleScope, fs, bag, decl)
				localScope.SetValue(decl.Name, vt)
			}
		}
	}
}

func storeTopLevelValue(m *ast.ModuleInput, f *ast.File, name string, vis registry.Visibility, t types.Type, reg *registry.Registry, moduleScope *scope.Scope, fs *fileState, bag *diagnostics.Bag, node ast.Node) {
	if vis == registry.Private {
		fs.privateValues[name] = t
		return
	}
	if err := reg.DeclareIn(m.Path, name, vis, false, t, f.Path); err != nil {
		bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(node),
			"value %q is already declared elsewhere in module %s", name, strings.Join(m.Path, ".")))
		return
	}
	moduleScope.SetValue(name, t)
}

func buildExternType(sc *scope.Scope, d *ast.ExternDecl) (types.Type, *diagnostics.Diagnostic) {
	params := make([]types.Type, len(d.Params))
	for i, p := range d.Params {
		pt, diag := resolveTypeExpr(sc, p.Type)
		if diag != nil {
			return nil, diag
		}
		params[i] = pt
	}
	ret, diag := resolveTypeExpr(sc, d.Return)
	if diag != nil {
		return nil, diag
	}
	return types.Function{Params: params, Return: ret}, nil
}

func inferValueDeclType(sc *scope.Scope, d *ast.ValueDecl, disp *dispatch.Table) (types.Type, *diagnostics.Diagnostic) {
	if d.Annotation != nil {
		ant, diag := resolveTypeExpr(sc, d.Annotation)
		if diag != nil {
			return nil, diag
		}
		return ant, nil
	}
	switch v := d.Value.(type) {
	case *ast.IntLit:
		return types.Int, nil
	case *ast.BoolLit:
		return types.Bool, nil
	case *ast.StringLit:
		return types.String, nil
	case *ast.UnitLit:
		return types.Unit, nil
	case *ast.FuncLit:
		params := make([]types.Type, len(v.Params))
		for i, p := range v.Params {
			pt, diag := resolveTypeExpr(sc, p.Type)
			if diag != nil {
				return nil, diag
			}
			params[i] = pt
		}
		if v.Return != nil {
			ret, diag := resolveTypeExpr(sc, v.Return)
			if diag != nil {
				return nil, diag
			}
			return types.Function{Params: params, Return: ret}, nil
		}
		scratch := diagnostics.NewBag()
		fnScope := sc.NewChild(scope.Function)
		for i, p := range v.Params {
			fnScope.DeclareValue(p.Name, params[i])
		}
		bodyType := checkExpr(fnScope, v.Body, disp, newTypedTree(), scratch, nil)
		if bodyType == nil {
			return nil, needsAnnotation(d)
		}
		return types.Function{Params: params, Return: bodyType}, nil
	default:
		scratch := diagnostics.NewBag()
		t := checkExpr(sc, d.Value, disp, newTypedTree(), scratch, nil)
		if t == nil {
			return nil, needsAnnotation(d)
		}
		return t, nil
	}
}

func needsAnnotation(d *ast.ValueDecl) *diagnostics.Diagnostic {
	return diagnostics.New(diagnostics.UndefinedName, spanOf(d),
		"top-level value %q needs an explicit type annotation: its initializer cannot be typed without imports, which are not active yet", d.Name)
}

// checkModule is Tier B: rebuild each file's scope from the now-complete
// sealed registry, process imports, add private declarations, and
// type-check every remaining declaration body.
func checkModule(m *ast.ModuleInput, st *moduleState, global *scope.Scope, reg *registry.Registry, disp *dispatch.Table, typed *TypedTree, bag *diagnostics.Bag, cfg *config.AnalyzerConfig) {
	ctx := &exprCtx{reg: reg, from: m.Path, strict: cfg != nil && cfg.StrictMode}
	entry, _ := reg.Get(m.Path)
	moduleScope := global.NewChild(scope.Module)
	for name, t := range entry.ModuleTypes {
		moduleScope.SetType(name, t)
	}
	for name, t := range entry.ModuleValues {
		moduleScope.SetValue(name, t)
	}

	for _, f := range m.Files {
		fileScope := moduleScope.NewChild(scope.File)

		for _, d := range f.Declarations {
			imp, ok := d.(*ast.ImportDecl)
			if !ok {
				continue
			}
			target, err := reg.Get(imp.Path)
			if err != nil {
				bag.Add(diagnostics.New(diagnostics.UnknownModule, spanOf(imp), "unknown module %q", strings.Join(imp.Path, ".")))
				continue
			}
			for name, t := range target.PublicTypes {
				if !fileScope.HasTypeLocally(name) {
					fileScope.DeclareType(name, t)
				}
			}
			for name, t := range target.PublicValues {
				if !fileScope.HasValueLocally(name) {
					fileScope.DeclareValue(name, t)
				}
			}
		}

		fs := st.files[f]
		for name, t := range fs.privateTypes {
			fileScope.SetType(name, t)
		}
		for name, t := range fs.privateValues {
			fileScope.SetValue(name, t)
		}

		for _, d := range f.Declarations {
			switch decl := d.(type) {
			case *ast.ValueDecl:
				checkExpr(fileScope, decl.Value, disp, typed, bag, ctx)
			case *ast.MultimethodImpl:
				implScope := fileScope.NewChild(scope.Function)
				ok := true
				for _, p := range decl.Params {
					pt, diag := resolveTypeExpr(fileScope, p.Type)
					if diag != nil {
						bag.Add(diag)
						ok = false
						break
					}
					if err := implScope.DeclareValue(p.Name, pt); err != nil {
						bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(decl), "parameter %q repeated", p.Name))
						ok = false
						break
					}
				}
				if ok {
					checkExpr(implScope, decl.Body, disp, typed, bag, ctx)
				}
			}
		}
	}
}

// CheckQualifiedAccess decides whether name is visible in targetModule
// from fromModule: Public is always visible, Module only from within the
// same module, Private never (private names never reach the registry at
// all). The present grammar has no qualified-access expression — every
// CallExpr/Ident/StructLit names a bare, unqualified identifier — so
// ordinary scope lookup already makes a Module/Private name simply absent
// rather than visible-but-forbidden, and an ordinary lookup failure
// surfaces as UndefinedName. In strict mode (AnalyzerConfig.StrictMode),
// reportUndefined calls this across every other registered module after
// such a lookup fails, so a name that exists elsewhere under a visibility
// that forbids this reference also gets a VisibilityViolation diagnostic
// alongside the UndefinedName one.
func CheckQualifiedAccess(reg *registry.Registry, fromModule, targetModule []string, name string, isType bool, pos token.Position) *diagnostics.Diagnostic {
	span := token.Span{Start: pos, End: pos}
	entry, err := reg.Get(targetModule)
	if err != nil {
		return diagnostics.New(diagnostics.UnknownModule, span, "unknown module %q", strings.Join(targetModule, "."))
	}
	var vis registry.Visibility
	var ok bool
	if isType {
		vis, ok = entry.TypeVisibility(name)
	} else {
		vis, ok = entry.ValueVisibility(name)
	}
	if !ok {
		return diagnostics.New(diagnostics.UndefinedName, span, "undefined name %q in module %q", name, strings.Join(targetModule, "."))
	}
	if vis == registry.Public {
		return nil
	}
	if vis == registry.Module && pathKey(fromModule) == pathKey(targetModule) {
		return nil
	}
	return diagnostics.New(diagnostics.VisibilityViolation, span,
		"%q is %s to module %q, not accessible from module %q", name, vis, strings.Join(targetModule, "."), strings.Join(fromModule, "."))
}
