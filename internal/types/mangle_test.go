package types

import "testing"

func TestFlattenInjective(t *testing.T) {
	cases := []struct {
		name string
		t    Type
	}{
		{"int", Int},
		{"bool", Bool},
		{"struct one field", Struct{Fields: []Field{{Name: "x", Type: Int}}}},
		{"struct two fields", Struct{Fields: []Field{{Name: "x", Type: Int}, {Name: "y", Type: Bool}}}},
		{"enum", Enum{Name: "E", Variants: []Variant{{Name: "A", Payload: Int}}}},
		{"reference", Reference{Elem: Int}},
		{"function", Function{Params: []Type{Int, Bool}, Return: Int}},
	}
	seen := make(map[string]string)
	for _, c := range cases {
		f := Flatten(c.t)
		if prev, ok := seen[f]; ok {
			t.Errorf("Flatten collision: %q and %q both produced %q", prev, c.name, f)
		}
		seen[f] = c.name
	}
}

func TestFlattenPanicsOnForward(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Flatten should panic when a Forward reaches mangling")
		}
	}()
	Flatten(Forward{Name: QualifiedName{Name: "A"}})
}

func TestMangleDistinguishesOverloads(t *testing.T) {
	m1 := Mangle("show", []Type{Int})
	m2 := Mangle("show", []Type{Bool})
	m3 := Mangle("show", []Type{Int, Bool})
	if m1 == m2 {
		t.Errorf("Mangle(show, [int]) and Mangle(show, [bool]) collided: %q", m1)
	}
	if m1 == m3 {
		t.Errorf("Mangle(show, [int]) and Mangle(show, [int,bool]) collided: %q", m1)
	}
}

func TestMangleStable(t *testing.T) {
	params := []Type{Struct{Fields: []Field{{Name: "x", Type: Int}}}}
	a := Mangle("f", params)
	b := Mangle("f", params)
	if a != b {
		t.Errorf("Mangle should be deterministic: %q != %q", a, b)
	}
}
