package resolver

import (
	"strings"

	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/types"
)

// pass1 forward-declares every non-private top-level type name across
// every module, so that by pass2 any resolver lookup is decidable
// regardless of declaration order.
func pass1(inputs []*ast.ModuleInput, reg *registry.Registry, table *types.Table, bag *diagnostics.Bag) {
	for _, m := range inputs {
		reg.Ensure(m.Path)
		for _, f := range m.Files {
			reg.Ensure(m.Path).AddFile(f.Path)
			for _, d := range f.Declarations {
				td, ok := d.(*ast.TypeDecl)
				if !ok || td.Visibility == registry.Private {
					continue
				}
				table.DeclareForward(m.Path, td.Name)
				fwd := types.Forward{Name: types.QualifiedName{Module: m.Path, Name: td.Name}}
				if err := reg.DeclareIn(m.Path, td.Name, td.Visibility, true, fwd, f.Path); err != nil {
					bag.Add(diagnostics.New(diagnostics.DuplicateTopLevelName, spanOf(td),
						"type %q is already declared elsewhere in module %s", td.Name, strings.Join(m.Path, ".")))
				}
			}
		}
	}
}
