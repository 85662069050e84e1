package scope

import (
	"testing"

	"github.com/somlang/som/internal/types"
)

func TestDeclareDuplicateFails(t *testing.T) {
	s := New()
	if err := s.DeclareType("Int", types.Int); err != nil {
		t.Fatalf("first DeclareType failed: %v", err)
	}
	if err := s.DeclareType("Int", types.Bool); err != ErrDuplicate {
		t.Errorf("second DeclareType returned %v, want ErrDuplicate", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	s := New()
	if _, err := s.LookupType("Missing"); err != ErrNotFound {
		t.Errorf("LookupType(Missing) = %v, want ErrNotFound", err)
	}
}

func TestParentChainFirstMatchWins(t *testing.T) {
	global := New()
	global.DeclareValue("x", types.Int)
	child := global.NewChild(Module)
	child.DeclareValue("x", types.Bool)

	got, err := child.LookupValue("x")
	if err != nil {
		t.Fatalf("LookupValue failed: %v", err)
	}
	if !types.Equal(got, types.Bool) {
		t.Errorf("child lookup of x = %v, want Bool (shadowing the global binding)", got)
	}

	gotParent, err := global.LookupValue("x")
	if err != nil {
		t.Fatalf("LookupValue on global failed: %v", err)
	}
	if !types.Equal(gotParent, types.Int) {
		t.Errorf("global's own x changed to %v, want Int (child declaration must not leak upward)", gotParent)
	}
}

func TestShadowingAllowedAcrossScopesNotWithinOne(t *testing.T) {
	s := New()
	child := s.NewChild(File)
	if err := s.DeclareType("A", types.Int); err != nil {
		t.Fatalf("DeclareType on parent failed: %v", err)
	}
	if err := child.DeclareType("A", types.Bool); err != nil {
		t.Errorf("shadowing an ancestor binding in a child scope should be allowed, got %v", err)
	}
}

func TestHasLocally(t *testing.T) {
	global := New()
	global.DeclareType("A", types.Int)
	child := global.NewChild(File)
	if child.HasTypeLocally("A") {
		t.Errorf("HasTypeLocally should not see ancestor bindings")
	}
	if !global.HasTypeLocally("A") {
		t.Errorf("HasTypeLocally should see its own binding")
	}
}

func TestSetValueOverwrites(t *testing.T) {
	s := New()
	s.DeclareValue("x", types.Int)
	s.SetValue("x", types.Bool)
	got, err := s.LookupValue("x")
	if err != nil {
		t.Fatalf("LookupValue failed: %v", err)
	}
	if !types.Equal(got, types.Bool) {
		t.Errorf("SetValue should overwrite an existing binding, got %v", got)
	}
}

func TestTypeNamesWalkChain(t *testing.T) {
	global := New()
	global.DeclareType("A", types.Int)
	child := global.NewChild(Module)
	child.DeclareType("B", types.Bool)

	names := child.TypeNames()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["A"] || !found["B"] {
		t.Errorf("TypeNames() = %v, want both A and B visible", names)
	}
}

func TestKindAndParent(t *testing.T) {
	global := New()
	if global.Kind() != Global {
		t.Errorf("root scope Kind() = %v, want Global", global.Kind())
	}
	if global.Parent() != nil {
		t.Errorf("root scope Parent() should be nil")
	}
	child := global.NewChild(Function)
	if child.Kind() != Function {
		t.Errorf("child Kind() = %v, want Function", child.Kind())
	}
	if child.Parent() != global {
		t.Errorf("child Parent() should be the scope it was created from")
	}
}
