package dispatch

import (
	"fmt"
	"strings"

	"github.com/somlang/som/internal/token"
	"github.com/somlang/som/internal/types"
)

func typeList(ts []types.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// DuplicateImplError is raised when two implementations of one method
// name share a structurally equal parameter-type list.
type DuplicateImplError struct {
	Name                         string
	ParamTypes                   []types.Type
	FirstLocation, SecondLocation token.Position
}

func (e *DuplicateImplError) Error() string {
	return fmt.Sprintf("duplicate implementation of %s(%s): already declared at %s", e.Name, typeList(e.ParamTypes), e.FirstLocation)
}

// NoMatchingImplError is raised when no registered implementation's
// parameter types exactly match the call site's argument types.
type NoMatchingImplError struct {
	Name       string
	ArgTypes   []types.Type
	Candidates []*Implementation
}

func (e *NoMatchingImplError) Error() string {
	return fmt.Sprintf("no implementation of %s matches argument types (%s)", e.Name, typeList(e.ArgTypes))
}

// AmbiguousCallError is raised when more than one implementation exactly
// matches the call site's argument types. With exact-match-only
// specificity this can only happen if duplicate registration was somehow
// allowed through.
type AmbiguousCallError struct {
	Name       string
	ArgTypes   []types.Type
	Candidates []*Implementation
}

func (e *AmbiguousCallError) Error() string {
	return fmt.Sprintf("ambiguous call to %s(%s): %d implementations match exactly", e.Name, typeList(e.ArgTypes), len(e.Candidates))
}
