package resolver

import (
	"errors"

	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/dispatch"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/scope"
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

// pass2 resolves every type declaration's body and registers multimethod
// implementations. Registration runs as a second sweep over the module
// once every type in it has a resolved body, so a multimethod's
// parameter types are never still Forward when dispatch computes their
// mangled name.
func pass2(inputs []*ast.ModuleInput, states map[string]*moduleState, global *scope.Scope, reg *registry.Registry, table *types.Table, disp *dispatch.Table, bag *diagnostics.Bag) {
	for _, m := range inputs {
		key := pathKey(m.Path)
		st := states[key]

		skip := checkInfiniteSize(m, bag)

		moduleScope := global.NewChild(scope.Module)
		entry, _ := reg.Get(m.Path)
		for name, t := range entry.ModuleTypes {
			moduleScope.SetType(name, t)
		}

		fileScopes := make(map[*ast.File]*scope.Scope, len(m.Files))

		for _, f := range m.Files {
			fs := st.files[f]
			fileScope := moduleScope.NewChild(scope.File)
			fileScopes[f] = fileScope

			for _, d := range f.Declarations {
				td, ok := d.(*ast.TypeDecl)
				if !ok || td.Visibility != registry.Private {
					continue
				}
				if err := fileScope.DeclareType(td.Name, types.Forward{Name: types.QualifiedName{Module: m.Path, Name: td.Name}}); err != nil {
					bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(td),
						"private type %q is already declared in this file", td.Name))
				}
			}

			for _, d := range f.Declarations {
				td, ok := d.(*ast.TypeDecl)
				if !ok {
					continue
				}
				node := typeNode{name: td.Name}
				if td.Visibility == registry.Private {
					node.owner = f.Path
				}
				if skip[node] {
					continue
				}

				resolved, diag := resolveTypeDeclBody(fileScope, td.Name, td.Body)
				if diag != nil {
					bag.Add(diag)
					continue
				}

				if td.Visibility == registry.Private {
					fileScope.SetType(td.Name, resolved)
					fs.privateTypes[td.Name] = resolved
					continue
				}
				h := table.DeclareForward(m.Path, td.Name)
				if err := table.Resolve(h, resolved); err != nil && !errors.Is(err, types.ErrAlreadyResolved) {
					bag.Add(diagnostics.New(diagnostics.UnknownType, spanOf(td), "internal: %v", err))
					continue
				}
				moduleScope.SetType(td.Name, resolved)
				_ = reg.PropagateResolved(m.Path, td.Name, true, resolved)
			}
		}

		registerMultimethods(m, fileScopes, disp, bag)
	}
}

// registerMultimethods inserts each impl into the dispatch table keyed
// by name, and if a `multimethod fn` signature declaration exists for
// that name, its resolved return type must structurally match the
// impl's, else ReturnTypeMismatch.
func registerMultimethods(m *ast.ModuleInput, fileScopes map[*ast.File]*scope.Scope, disp *dispatch.Table, bag *diagnostics.Bag) {
	declReturns := make(map[string]types.Type)
	for _, f := range m.Files {
		fileScope := fileScopes[f]
		for _, d := range f.Declarations {
			md, ok := d.(*ast.MultimethodDecl)
			if !ok {
				continue
			}
			ret, diag := resolveTypeExpr(fileScope, md.Return)
			if diag != nil {
				bag.Add(diag)
				continue
			}
			declReturns[md.Name] = ret
		}
	}

	for _, f := range m.Files {
		fileScope := fileScopes[f]
		for _, d := range f.Declarations {
			impl, ok := d.(*ast.MultimethodImpl)
			if !ok {
				continue
			}
			paramTypes := make([]types.Type, 0, len(impl.Params))
			failed := false
			for _, p := range impl.Params {
				pt, diag := resolveTypeExpr(fileScope, p.Type)
				if diag != nil {
					bag.Add(diag)
					failed = true
					break
				}
				paramTypes = append(paramTypes, pt)
			}
			if failed {
				continue
			}
			retType, diag := resolveTypeExpr(fileScope, impl.Return)
			if diag != nil {
				bag.Add(diag)
				continue
			}

			registered, err := disp.Register(impl.Name, paramTypes, retType, impl.Tok)
			if err != nil {
				var dup *dispatch.DuplicateImplError
				if errors.As(err, &dup) {
					bag.Add(diagnostics.New(diagnostics.DuplicateImpl, spanOf(impl), "%s", dup.Error()).
						WithRelated(token.Span{Start: dup.FirstLocation, End: dup.FirstLocation}, "first implementation here"))
				}
				continue
			}

			if declRet, hasDecl := declReturns[impl.Name]; hasDecl && !types.Equal(declRet, registered.ReturnType) {
				bag.Add(diagnostics.New(diagnostics.ReturnTypeMismatch, spanOf(impl),
					"implementation of %s returns %s, multimethod declares %s", impl.Name, registered.ReturnType, declRet))
			}
		}
	}
}
