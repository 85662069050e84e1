// Package registry implements the module registry: process-wide state
// mapping a module path to its public and module-internal symbol tables,
// with a two-phase open→sealed lifecycle.
//
// Grounded on funvibe-funxy/internal/modules/module.go's Module/Exports
// split, generalized from a single exported-or-not flag to three-level
// visibility, and passed explicitly through the resolver as a parameter
// rather than hidden in ambient state — this keeps the three-pass
// ordering auditable and test harnesses trivial to set up.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/somlang/som/internal/types"
)

// Registry is the process-wide module table for one compilation run.
type Registry struct {
	entries map[string]*Entry
	sealed  bool
}

// New returns an empty, open Registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

func pathKey(path []string) string {
	return strings.Join(path, "/")
}

// Ensure registers an (possibly empty) module entry for path if one does
// not already exist, and returns it. This is what makes a module with
// zero files register an empty but present entry — the module grouper
// calls Ensure for every folder it finds, whether or not the folder
// contributed any non-private declarations.
func (r *Registry) Ensure(path []string) *Entry {
	k := pathKey(path)
	if e, ok := r.entries[k]; ok {
		return e
	}
	e := newEntry(path)
	r.entries[k] = e
	return e
}

// Get returns a module's entry. Fails with ErrUnknownModule if path was
// never registered.
func (r *Registry) Get(path []string) (*Entry, error) {
	e, ok := r.entries[pathKey(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, strings.Join(path, "."))
	}
	return e, nil
}

// DeclareIn writes a registration into the public and/or module-internal
// tables per visibility: Public reaches both tables, Module reaches the
// module table only, and Private never reaches the registry at all — it
// stays in the declaring file's scope. Returns ErrCollision if a
// non-private name collides with one already registered in the same
// module and namespace; the caller is expected to emit a duplicate-name
// diagnostic and continue, not abort.
func (r *Registry) DeclareIn(path []string, name string, vis Visibility, isType bool, t types.Type, file string) error {
	if r.sealed {
		return ErrSealed
	}
	if vis == Private {
		// Private declarations never enter the registry (they live only
		// in the declaring file's scope); calling DeclareIn with Private
		// is a caller bug, not a collision.
		return fmt.Errorf("registry: DeclareIn called with Private visibility for %q", name)
	}
	e := r.Ensure(path)

	visMap := e.typeVis
	moduleMap := e.ModuleTypes
	publicMap := e.PublicTypes
	if !isType {
		visMap = e.valueVis
		moduleMap = e.ModuleValues
		publicMap = e.PublicValues
	}

	if _, exists := visMap[name]; exists {
		return ErrCollision
	}

	visMap[name] = vis
	moduleMap[name] = t
	if vis == Public {
		publicMap[name] = t
	}
	return nil
}

// PropagateResolved overwrites a previously-forward-declared name's Type
// once its body has been resolved, writing the resolved type back into
// the registry's public and module tables. It does not perform collision
// detection: the name must already have been registered by DeclareIn.
func (r *Registry) PropagateResolved(path []string, name string, isType bool, resolved types.Type) error {
	e, err := r.Get(path)
	if err != nil {
		return err
	}
	visMap := e.typeVis
	moduleMap := e.ModuleTypes
	publicMap := e.PublicTypes
	if !isType {
		visMap = e.valueVis
		moduleMap = e.ModuleValues
		publicMap = e.PublicValues
	}
	vis, ok := visMap[name]
	if !ok {
		return fmt.Errorf("registry: PropagateResolved called for undeclared name %q", name)
	}
	moduleMap[name] = resolved
	if vis == Public {
		publicMap[name] = resolved
	}
	return nil
}

// Seal freezes the registry: later passes are read-only. It checks that
// no Forward remains at the top level of any registered type, returning
// the qualified names that still violate it. A non-empty return means
// type-body resolution did not actually complete soundly and the caller
// must not proceed to the next pass.
func (r *Registry) Seal() []types.QualifiedName {
	var offenders []types.QualifiedName
	var keys []string
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e := r.entries[k]
		for name, t := range e.ModuleTypes {
			if types.IsForward(t) {
				offenders = append(offenders, types.QualifiedName{Module: e.Path, Name: name})
			}
		}
	}
	r.sealed = true
	return offenders
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Paths returns every registered module path, sorted lexicographically —
// the order diagnostics and other per-module output are walked in.
func (r *Registry) Paths() [][]string {
	var keys []string
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.entries[k].Path)
	}
	return out
}
