package dispatch

import (
	"testing"

	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

func TestRegisterAndResolveExactMatch(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	if _, err := tbl.Register("show", []types.Type{types.Int}, types.String, loc); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	impl, err := tbl.Resolve("show", []types.Type{types.Int})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !types.Equal(impl.ReturnType, types.String) {
		t.Errorf("resolved implementation's return type = %v, want string", impl.ReturnType)
	}
}

func TestRegisterDuplicateParamList(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	if _, err := tbl.Register("show", []types.Type{types.Int}, types.String, loc); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := tbl.Register("show", []types.Type{types.Int}, types.Bool, loc)
	if _, ok := err.(*DuplicateImplError); !ok {
		t.Errorf("second Register with an identical param list returned %v, want *DuplicateImplError", err)
	}
}

func TestRegisterSameNameDifferentParamsAllowed(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	if _, err := tbl.Register("show", []types.Type{types.Int}, types.String, loc); err != nil {
		t.Fatalf("Register(int) failed: %v", err)
	}
	if _, err := tbl.Register("show", []types.Type{types.Bool}, types.String, loc); err != nil {
		t.Errorf("Register(bool) should succeed alongside Register(int), got %v", err)
	}
}

func TestResolveNoMatch(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	tbl.Register("show", []types.Type{types.Int}, types.String, loc)
	_, err := tbl.Resolve("show", []types.Type{types.Bool})
	if _, ok := err.(*NoMatchingImplError); !ok {
		t.Errorf("Resolve with no matching overload returned %v, want *NoMatchingImplError", err)
	}
}

func TestResolveArityMismatch(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	tbl.Register("show", []types.Type{types.Int}, types.String, loc)
	_, err := tbl.Resolve("show", []types.Type{types.Int, types.Int})
	if _, ok := err.(*NoMatchingImplError); !ok {
		t.Errorf("Resolve with wrong arity returned %v, want *NoMatchingImplError", err)
	}
}

func TestIsMultimethod(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	if tbl.IsMultimethod("show") {
		t.Errorf("IsMultimethod should be false before any Register")
	}
	tbl.Register("show", []types.Type{types.Int}, types.String, loc)
	if !tbl.IsMultimethod("show") {
		t.Errorf("IsMultimethod should be true after a Register")
	}
}

func TestImplementationsRegistrationOrder(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	tbl.Register("show", []types.Type{types.Int}, types.String, loc)
	tbl.Register("show", []types.Type{types.Bool}, types.String, loc)
	impls := tbl.Implementations("show")
	if len(impls) != 2 {
		t.Fatalf("Implementations returned %d entries, want 2", len(impls))
	}
	if !types.Equal(impls[0].ParamTypes[0], types.Int) || !types.Equal(impls[1].ParamTypes[0], types.Bool) {
		t.Errorf("Implementations should preserve registration order")
	}
}

func TestMangledNameStable(t *testing.T) {
	tbl := NewTable()
	loc := token.Position{File: "a.som", Line: 1, Column: 1}
	impl, err := tbl.Register("show", []types.Type{types.Int}, types.String, loc)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	want := types.Mangle("show", []types.Type{types.Int})
	if impl.MangledName != want {
		t.Errorf("MangledName = %q, want %q", impl.MangledName, want)
	}
}
