package registry

import "github.com/somlang/som/internal/types"

// Entry is one registered module's four symbol tables:
//
//	PublicTypes / PublicValues  — names with visibility Public
//	ModuleTypes / ModuleValues  — names with visibility Public or Module
//
// PublicTypes is always a subset of ModuleTypes with matching bindings
// (likewise for values), maintained structurally: DeclareIn always writes
// Public names into both maps with the same Type value, and propagating a
// resolved body updates both maps together.
type Entry struct {
	Path []string

	PublicTypes  map[string]types.Type
	PublicValues map[string]types.Type
	ModuleTypes  map[string]types.Type
	ModuleValues map[string]types.Type

	// typeVis/valueVis record each name's declared visibility, needed to
	// decide whether a later propagation call must also touch PublicTypes.
	typeVis  map[string]Visibility
	valueVis map[string]Visibility

	// files lists every file path that has contributed to this module, in
	// the order AddFile recorded them; the resolver does not read it back.
	files []string
}

func newEntry(path []string) *Entry {
	return &Entry{
		Path:         append([]string(nil), path...),
		PublicTypes:  make(map[string]types.Type),
		PublicValues: make(map[string]types.Type),
		ModuleTypes:  make(map[string]types.Type),
		ModuleValues: make(map[string]types.Type),
		typeVis:      make(map[string]Visibility),
		valueVis:     make(map[string]Visibility),
	}
}

// TypeVisibility returns the declared visibility of a module-level type
// name, if registered.
func (e *Entry) TypeVisibility(name string) (Visibility, bool) {
	v, ok := e.typeVis[name]
	return v, ok
}

// ValueVisibility returns the declared visibility of a module-level value
// name, if registered.
func (e *Entry) ValueVisibility(name string) (Visibility, bool) {
	v, ok := e.valueVis[name]
	return v, ok
}

// AddFile records that path contributes to this module (boundary
// bookkeeping only; the registry never reads the file's contents).
func (e *Entry) AddFile(path string) {
	e.files = append(e.files, path)
}

// Files returns every file path recorded against this module.
func (e *Entry) Files() []string {
	return e.files
}
