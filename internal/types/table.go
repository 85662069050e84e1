package types

import "strings"

// Handle is a stable, opaque reference to a type's storage cell. An arena
// of integer indices is the cheapest implementation — lighter than
// reference-counted cells or interned symbol IDs for a single-run,
// single-threaded analyzer.
type Handle int

type cell struct {
	name     QualifiedName
	resolved bool
	typ      Type // the Forward itself until Resolve is called
}

// Table is the forward-declaration arena: declare a placeholder, resolve
// it once its body is known, look it up in between.
type Table struct {
	cells []cell
	byKey map[string]Handle
}

// NewTable returns an empty forward table.
func NewTable() *Table {
	return &Table{byKey: make(map[string]Handle)}
}

func key(module []string, name string) string {
	return strings.Join(module, "/") + "#" + name
}

// DeclareForward records a placeholder for (module_path, name) and returns
// a stable handle. Idempotent: calling it again for the same
// (module_path, name) returns the same handle rather than allocating a
// new cell.
func (t *Table) DeclareForward(module []string, name string) Handle {
	k := key(module, name)
	if h, ok := t.byKey[k]; ok {
		return h
	}
	qn := QualifiedName{Module: append([]string(nil), module...), Name: name}
	t.cells = append(t.cells, cell{name: qn, typ: Forward{Name: qn}})
	h := Handle(len(t.cells) - 1)
	t.byKey[k] = h
	return h
}

// Resolve fills in a placeholder's definition. Fails with
// ErrAlreadyResolved if called twice for the same handle.
func (t *Table) Resolve(h Handle, body Type) error {
	if int(h) < 0 || int(h) >= len(t.cells) {
		return ErrUnknownHandle
	}
	c := &t.cells[int(h)]
	if c.resolved {
		return ErrAlreadyResolved
	}
	c.typ = body
	c.resolved = true
	return nil
}

// Lookup returns the current (possibly still-Forward) definition at h.
func (t *Table) Lookup(h Handle) (Type, error) {
	if int(h) < 0 || int(h) >= len(t.cells) {
		return nil, ErrUnknownHandle
	}
	return t.cells[int(h)].typ, nil
}

// IsResolved reports whether h's placeholder has been filled in.
func (t *Table) IsResolved(h Handle) bool {
	if int(h) < 0 || int(h) >= len(t.cells) {
		return false
	}
	return t.cells[int(h)].resolved
}

// Name returns the qualified name a handle was declared under.
func (t *Table) Name(h Handle) (QualifiedName, error) {
	if int(h) < 0 || int(h) >= len(t.cells) {
		return QualifiedName{}, ErrUnknownHandle
	}
	return t.cells[int(h)].name, nil
}

// UnresolvedHandles returns every handle whose Forward has not yet been
// resolved, in declaration order.
func (t *Table) UnresolvedHandles() []Handle {
	var out []Handle
	for i, c := range t.cells {
		if !c.resolved {
			out = append(out, Handle(i))
		}
	}
	return out
}
