package registry

import (
	"errors"
	"testing"

	"github.com/somlang/som/internal/types"
)

func TestEnsureIdempotent(t *testing.T) {
	r := New()
	e1 := r.Ensure([]string{"std", "io"})
	e2 := r.Ensure([]string{"std", "io"})
	if e1 != e2 {
		t.Errorf("Ensure returned different entries for the same path")
	}
}

func TestEnsureRegistersEmptyModule(t *testing.T) {
	r := New()
	r.Ensure([]string{"empty"})
	e, err := r.Get([]string{"empty"})
	if err != nil {
		t.Fatalf("Get failed for a module registered via Ensure alone: %v", err)
	}
	if len(e.PublicTypes) != 0 || len(e.ModuleTypes) != 0 {
		t.Errorf("an empty module should have no symbols, got %+v", e)
	}
}

func TestGetUnknownModule(t *testing.T) {
	r := New()
	if _, err := r.Get([]string{"nope"}); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("Get on an unregistered path returned %v, want ErrUnknownModule", err)
	}
}

func TestDeclareInPublicReachesBothTables(t *testing.T) {
	r := New()
	if err := r.DeclareIn([]string{"m"}, "Config", Public, true, types.Int, "a.som"); err != nil {
		t.Fatalf("DeclareIn failed: %v", err)
	}
	e, _ := r.Get([]string{"m"})
	if _, ok := e.PublicTypes["Config"]; !ok {
		t.Errorf("Public type should appear in PublicTypes")
	}
	if _, ok := e.ModuleTypes["Config"]; !ok {
		t.Errorf("Public type should also appear in ModuleTypes")
	}
}

func TestDeclareInModuleOnlyStaysOutOfPublic(t *testing.T) {
	r := New()
	if err := r.DeclareIn([]string{"m"}, "Helper", Module, true, types.Int, "a.som"); err != nil {
		t.Fatalf("DeclareIn failed: %v", err)
	}
	e, _ := r.Get([]string{"m"})
	if _, ok := e.PublicTypes["Helper"]; ok {
		t.Errorf("a Module-visibility type must not appear in PublicTypes")
	}
	if _, ok := e.ModuleTypes["Helper"]; !ok {
		t.Errorf("a Module-visibility type must appear in ModuleTypes")
	}
}

func TestDeclareInPrivateIsCallerBug(t *testing.T) {
	r := New()
	if err := r.DeclareIn([]string{"m"}, "secret", Private, false, types.Int, "a.som"); err == nil {
		t.Errorf("DeclareIn with Private visibility should fail, not silently register")
	}
}

func TestDeclareInCollision(t *testing.T) {
	r := New()
	r.DeclareIn([]string{"m"}, "Config", Public, true, types.Int, "a.som")
	if err := r.DeclareIn([]string{"m"}, "Config", Module, true, types.Bool, "b.som"); err != ErrCollision {
		t.Errorf("second DeclareIn of the same name returned %v, want ErrCollision", err)
	}
}

func TestDeclareInSealedFails(t *testing.T) {
	r := New()
	r.DeclareIn([]string{"m"}, "Config", Public, true, types.Int, "a.som")
	r.Seal()
	if err := r.DeclareIn([]string{"m"}, "Other", Public, true, types.Int, "a.som"); err != ErrSealed {
		t.Errorf("DeclareIn after Seal returned %v, want ErrSealed", err)
	}
}

func TestPropagateResolvedUpdatesBothTables(t *testing.T) {
	r := New()
	h := types.Forward{Name: types.QualifiedName{Module: []string{"m"}, Name: "Config"}}
	r.DeclareIn([]string{"m"}, "Config", Public, true, h, "a.som")
	if err := r.PropagateResolved([]string{"m"}, "Config", true, types.Int); err != nil {
		t.Fatalf("PropagateResolved failed: %v", err)
	}
	e, _ := r.Get([]string{"m"})
	if !types.Equal(e.PublicTypes["Config"], types.Int) || !types.Equal(e.ModuleTypes["Config"], types.Int) {
		t.Errorf("PropagateResolved should update both PublicTypes and ModuleTypes")
	}
}

func TestSealDetectsUnresolvedForwards(t *testing.T) {
	r := New()
	fwd := types.Forward{Name: types.QualifiedName{Module: []string{"m"}, Name: "A"}}
	r.DeclareIn([]string{"m"}, "A", Public, true, fwd, "a.som")
	offenders := r.Seal()
	if len(offenders) != 1 || offenders[0].Name != "A" {
		t.Errorf("Seal() = %v, want exactly one offender named A", offenders)
	}
	if !r.Sealed() {
		t.Errorf("Sealed() should be true after Seal()")
	}
}

func TestSealCleanRegistry(t *testing.T) {
	r := New()
	r.DeclareIn([]string{"m"}, "A", Public, true, types.Int, "a.som")
	if offenders := r.Seal(); len(offenders) != 0 {
		t.Errorf("Seal() = %v, want no offenders when every type is resolved", offenders)
	}
}

func TestPathsSortedLexicographically(t *testing.T) {
	r := New()
	r.Ensure([]string{"zed"})
	r.Ensure([]string{"alpha"})
	r.Ensure([]string{"mid"})
	paths := r.Paths()
	if len(paths) != 3 || paths[0][0] != "alpha" || paths[1][0] != "mid" || paths[2][0] != "zed" {
		t.Errorf("Paths() = %v, want lexicographic order", paths)
	}
}

func TestTypeVisibilityLookup(t *testing.T) {
	r := New()
	r.DeclareIn([]string{"m"}, "A", Module, true, types.Int, "a.som")
	e, _ := r.Get([]string{"m"})
	vis, ok := e.TypeVisibility("A")
	if !ok || vis != Module {
		t.Errorf("TypeVisibility(A) = (%v, %v), want (Module, true)", vis, ok)
	}
	if _, ok := e.TypeVisibility("Missing"); ok {
		t.Errorf("TypeVisibility(Missing) should report false")
	}
}
