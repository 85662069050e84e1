package types

// Forward is a placeholder asserting that a type with this name has been
// declared but its body is not yet resolved. It is only ever valid as a
// transient value while type bodies are still being resolved: once that
// work finishes, no Forward may appear at the top level of any registered
// type, though one may still appear transitively through a Reference.
type Forward struct {
	Name QualifiedName
}

func (Forward) isType() {}

func (f Forward) String() string {
	return "Forward(" + f.Name.String() + ")"
}

// IsForward reports whether t is a Forward at its outermost position. Used
// by Registry.Seal: a Reference{Forward{...}} is fine, but a bare Forward
// at top level means a declared type was never resolved.
func IsForward(t Type) bool {
	_, ok := t.(Forward)
	return ok
}
