// Package resolver runs a three-pass resolver over a set of module
// inputs: forward-declare every non-private type name, resolve every
// type body, then type-check everything else and bind multimethod call
// sites to a concrete implementation. It orchestrates the type table,
// the scope chain, the module registry, and the multimethod dispatch
// table across those three global passes, logging a structured line
// per pass via log/slog.
package resolver

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/somlang/som/internal/ast"
	"github.com/somlang/som/internal/config"
	"github.com/somlang/som/internal/diagnostics"
	"github.com/somlang/som/internal/dispatch"
	"github.com/somlang/som/internal/registry"
	"github.com/somlang/som/internal/scope"
	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

// Resolver runs one compilation unit's three passes.
type Resolver struct {
	cfg *config.AnalyzerConfig
	log *slog.Logger
}

// New returns a Resolver. A nil logger falls back to slog.Default(); a
// nil config falls back to config.Default().
func New(cfg *config.AnalyzerConfig, log *slog.Logger) *Resolver {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{cfg: cfg, log: log}
}

// TypedTree is the typed output of a run: every expression's resolved
// Type and every multimethod call site's binding to a concrete,
// mangled-name implementation.
type TypedTree struct {
	ExprTypes    map[ast.Expr]types.Type
	CallBindings map[*ast.CallExpr]*dispatch.Implementation
}

func newTypedTree() *TypedTree {
	return &TypedTree{
		ExprTypes:    make(map[ast.Expr]types.Type),
		CallBindings: make(map[*ast.CallExpr]*dispatch.Implementation),
	}
}

// Result is everything a backend needs: the sealed registry, the
// dispatch table, the typed tree, and the run's diagnostics (empty on
// success).
type Result struct {
	RunID       uuid.UUID
	Registry    *registry.Registry
	Dispatch    *dispatch.Table
	Typed       *TypedTree
	Diagnostics []*diagnostics.Diagnostic
}

// Ok reports whether the run produced no diagnostics.
func (r *Result) Ok() bool {
	return len(r.Diagnostics) == 0
}

func pathKey(path []string) string {
	return strings.Join(path, "/")
}

// newGlobalScope builds the unique root scope, seeded with the
// primitive type names every module sees regardless of import: int,
// bool, string, unit, and the concrete bit-width integers.
func newGlobalScope() *scope.Scope {
	g := scope.New()
	g.DeclareType("int", types.Int)
	g.DeclareType("bool", types.Bool)
	g.DeclareType("string", types.String)
	g.DeclareType("unit", types.Unit)
	for _, bits := range []int{8, 16, 32, 64} {
		g.DeclareType(types.IntN(bits).Name, types.IntN(bits))
	}
	return g
}

// Run executes all three passes over inputs and returns the result. A
// pass that ends with a non-empty diagnostic buffer halts the run before
// the next pass starts: later passes assume the invariants earlier ones
// establish and are not safe to run against a half-resolved module set.
func (r *Resolver) Run(inputs []*ast.ModuleInput) *Result {
	runID := uuid.New()
	log := r.log.With("run_id", runID.String())

	reg := registry.New()
	table := types.NewTable()
	disp := dispatch.NewTable()
	global := newGlobalScope()

	states := make(map[string]*moduleState, len(inputs))
	for _, m := range inputs {
		states[pathKey(m.Path)] = newModuleState(m)
	}

	log.Debug("pass 1 starting: forward-declaring non-private type names", "modules", len(inputs))
	bag1 := diagnostics.NewBag()
	bag1.SetLimit(r.cfg.MaxDiagnosticsPerPass)
	pass1(inputs, reg, table, bag1)
	if !bag1.Empty() {
		log.Warn("pass 1 halted the run", "diagnostics", bag1.Len())
		return &Result{RunID: runID, Registry: reg, Dispatch: disp, Typed: newTypedTree(), Diagnostics: bag1.Sorted()}
	}

	log.Debug("pass 2 starting: resolving type bodies and registering multimethods")
	bag2 := diagnostics.NewBag()
	bag2.SetLimit(r.cfg.MaxDiagnosticsPerPass)
	pass2(inputs, states, global, reg, table, disp, bag2)
	if !bag2.Empty() {
		log.Warn("pass 2 halted the run", "diagnostics", bag2.Len())
		return &Result{RunID: runID, Registry: reg, Dispatch: disp, Typed: newTypedTree(), Diagnostics: bag2.Sorted()}
	}

	if offenders := reg.Seal(); len(offenders) > 0 {
		// Pass 2 completing with an empty bag should make this
		// unreachable; surfaced as a diagnostic rather than a panic so a
		// resolver bug never crashes the host process.
		bag2b := diagnostics.NewBag()
		for _, o := range offenders {
			bag2b.Add(diagnostics.New(diagnostics.UnknownType, token.Span{}, "internal: %s left unresolved after Pass 2", o))
		}
		return &Result{RunID: runID, Registry: reg, Dispatch: disp, Typed: newTypedTree(), Diagnostics: bag2b.Sorted()}
	}

	log.Debug("pass 3 starting: type-checking declarations and binding calls")
	bag3 := diagnostics.NewBag()
	bag3.SetLimit(r.cfg.MaxDiagnosticsPerPass)
	typed := newTypedTree()
	pass3(inputs, states, global, reg, disp, typed, bag3, r.cfg)
	if !bag3.Empty() {
		log.Warn("pass 3 halted the run", "diagnostics", bag3.Len())
	} else {
		log.Debug("resolution succeeded")
	}
	return &Result{RunID: runID, Registry: reg, Dispatch: disp, Typed: typed, Diagnostics: bag3.Sorted()}
}
