package types

import "testing"

func TestEqualPrimitives(t *testing.T) {
	if !Equal(Int, Int) {
		t.Errorf("Int should equal Int")
	}
	if Equal(Int, Bool) {
		t.Errorf("Int should not equal Bool")
	}
}

func TestEqualForwardOnlyForward(t *testing.T) {
	name := QualifiedName{Module: []string{"m"}, Name: "A"}
	fwd := Forward{Name: name}
	resolved := Struct{Fields: []Field{{Name: "x", Type: Int}}}
	if !Equal(fwd, Forward{Name: name}) {
		t.Errorf("Forward(n) should equal Forward(n)")
	}
	if Equal(fwd, resolved) {
		t.Errorf("Forward(n) should not equal a resolved type sharing its name")
	}
	other := Forward{Name: QualifiedName{Module: []string{"m"}, Name: "B"}}
	if Equal(fwd, other) {
		t.Errorf("Forward(A) should not equal Forward(B)")
	}
}

func TestEqualStructFieldOrderMatters(t *testing.T) {
	a := Struct{Fields: []Field{{Name: "x", Type: Int}, {Name: "y", Type: Bool}}}
	b := Struct{Fields: []Field{{Name: "y", Type: Bool}, {Name: "x", Type: Int}}}
	if Equal(a, b) {
		t.Errorf("structs with fields in different order should not be structurally equal")
	}
	c := Struct{Fields: []Field{{Name: "x", Type: Int}, {Name: "y", Type: Bool}}}
	if !Equal(a, c) {
		t.Errorf("structs with identical field order should be equal")
	}
}

func TestEqualEnumPayloads(t *testing.T) {
	a := Enum{Name: "Option", Variants: []Variant{{Name: "Some", Payload: Int}, {Name: "None"}}}
	b := Enum{Name: "Option", Variants: []Variant{{Name: "Some", Payload: Int}, {Name: "None"}}}
	c := Enum{Name: "Option", Variants: []Variant{{Name: "Some", Payload: Bool}, {Name: "None"}}}
	if !Equal(a, b) {
		t.Errorf("identical enums should be equal")
	}
	if Equal(a, c) {
		t.Errorf("enums with differing variant payloads should not be equal")
	}
}

func TestEqualReferenceUnwraps(t *testing.T) {
	a := Reference{Elem: Int}
	b := Reference{Elem: Int}
	c := Reference{Elem: Bool}
	if !Equal(a, b) {
		t.Errorf("references to equal element types should be equal")
	}
	if Equal(a, c) {
		t.Errorf("references to different element types should not be equal")
	}
}

func TestEqualAll(t *testing.T) {
	if !EqualAll([]Type{Int, Bool}, []Type{Int, Bool}) {
		t.Errorf("identical sequences should be equal")
	}
	if EqualAll([]Type{Int, Bool}, []Type{Int}) {
		t.Errorf("sequences of different length should not be equal")
	}
	if EqualAll([]Type{Int, Bool}, []Type{Bool, Int}) {
		t.Errorf("sequences should compare positionally, not as sets")
	}
}
