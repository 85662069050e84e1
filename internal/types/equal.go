package types

// Equal reports whether a and b are structurally equal: variants and all
// sub-types must match exactly. Forward(n) equals only Forward(n), never a
// resolved type that happens to share name n — a named type is expected
// to already be fully resolved by the time dispatch matching runs, so this
// distinction only matters while type bodies are still being resolved.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case Primitive:
		bt, ok := b.(Primitive)
		return ok && at.Name == bt.Name
	case Forward:
		bt, ok := b.(Forward)
		if !ok || at.Name.Name != bt.Name.Name || len(at.Name.Module) != len(bt.Name.Module) {
			return false
		}
		for i := range at.Name.Module {
			if at.Name.Module[i] != bt.Name.Module[i] {
				return false
			}
		}
		return true
	case Reference:
		bt, ok := b.(Reference)
		return ok && Equal(at.Elem, bt.Elem)
	case Function:
		bt, ok := b.(Function)
		if !ok || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.Return, bt.Return)
	case Struct:
		bt, ok := b.(Struct)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for i := range at.Fields {
			if at.Fields[i].Name != bt.Fields[i].Name || !Equal(at.Fields[i].Type, bt.Fields[i].Type) {
				return false
			}
		}
		return true
	case Enum:
		bt, ok := b.(Enum)
		if !ok || len(at.Variants) != len(bt.Variants) {
			return false
		}
		for i := range at.Variants {
			av, bv := at.Variants[i], bt.Variants[i]
			if av.Name != bv.Name {
				return false
			}
			if (av.Payload == nil) != (bv.Payload == nil) {
				return false
			}
			if av.Payload != nil && !Equal(av.Payload, bv.Payload) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// EqualAll reports whether two equal-length type sequences are pairwise
// structurally equal. Used by multimethod candidate filtering, which
// dispatches on an exact parameter-type match rather than subtyping.
func EqualAll(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
