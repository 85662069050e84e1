// Package diagnostics implements the structured error records the
// resolver produces. The core never renders diagnostics to text for a
// human; it only produces this structured form and leaves rendering to an
// external collaborator.
package diagnostics

import (
	"fmt"

	"github.com/somlang/som/internal/token"
)

// Kind enumerates the resolver's error taxonomy.
type Kind string

const (
	DuplicateTopLevelName Kind = "DuplicateTopLevelName"
	UnknownType           Kind = "UnknownType"
	InfiniteSize          Kind = "InfiniteSize"
	UnknownModule         Kind = "UnknownModule"
	UndefinedName         Kind = "UndefinedName"
	TypeMismatch          Kind = "TypeMismatch"
	VisibilityViolation   Kind = "VisibilityViolation"
	DuplicateImpl         Kind = "DuplicateImpl"
	NoMatchingImpl        Kind = "NoMatchingImpl"
	AmbiguousCall         Kind = "AmbiguousCall"
	ReturnTypeMismatch    Kind = "ReturnTypeMismatch"
)

// Related is a secondary span attached to a diagnostic, with a short
// caption explaining its relevance (e.g. "first declared here").
type Related struct {
	Span    token.Span
	Caption string
}

// Diagnostic is one structured error record.
type Diagnostic struct {
	Kind    Kind
	Message string
	Primary token.Span
	Related []Related
	Help    string // optional suggestion, e.g. a "did you mean" hint
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s [%s]", d.Primary.Start, d.Message, d.Kind)
}

// New builds a Diagnostic with no related spans or help text.
func New(kind Kind, primary token.Span, message string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(message, args...),
		Primary: primary,
	}
}

// WithRelated appends a related span to d in place and returns d.
func (d *Diagnostic) WithRelated(span token.Span, caption string) *Diagnostic {
	d.Related = append(d.Related, Related{Span: span, Caption: caption})
	return d
}

// WithHelp attaches a suggestion string to the diagnostic.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
