package diagnostics

import (
	"fmt"
	"sort"
)

// Bag accumulates diagnostics for a single pass, deduplicating by primary
// position and kind — a name that fails to resolve at the same site from
// several AST visits should surface once, not once per visit.
type Bag struct {
	byKey map[string]*Diagnostic
	order []string
	limit int
}

// NewBag returns an empty diagnostic buffer with no limit.
func NewBag() *Bag {
	return &Bag{byKey: make(map[string]*Diagnostic)}
}

// SetLimit bounds how many distinct diagnostics the bag will accumulate;
// n <= 0 means unbounded. Once the limit is reached, Add still overwrites
// an already-tracked position/kind pair but silently drops any new one,
// so a pass that is producing an unbounded stream of errors (e.g. every
// line of a file with the wrong encoding) doesn't also exhaust memory.
func (b *Bag) SetLimit(n int) {
	b.limit = n
}

// Add records a diagnostic, overwriting any earlier one at the same
// position and kind (last write wins). Once the bag's limit (if any) is
// reached, a diagnostic at a new position/kind is dropped rather than
// recorded.
func (b *Bag) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	key := fmt.Sprintf("%s:%d:%d:%s", d.Primary.Start.File, d.Primary.Start.Line, d.Primary.Start.Column, d.Kind)
	if _, exists := b.byKey[key]; !exists {
		if b.limit > 0 && len(b.order) >= b.limit {
			return
		}
		b.order = append(b.order, key)
	}
	b.byKey[key] = d
}

// Empty reports whether no diagnostics were recorded.
func (b *Bag) Empty() bool {
	return len(b.byKey) == 0
}

// Len returns the number of distinct diagnostics recorded.
func (b *Bag) Len() int {
	return len(b.byKey)
}

// Sorted returns every recorded diagnostic in deterministic order: by
// file name, then line, then column; diagnostics at an identical position
// keep the order in which they were first added. A Bag has no notion of
// module structure, so the order does not group diagnostics by module
// path.
func (b *Bag) Sorted() []*Diagnostic {
	out := make([]*Diagnostic, 0, len(b.byKey))
	for _, k := range b.order {
		out = append(out, b.byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, c := out[i].Primary.Start, out[j].Primary.Start
		if a.File != c.File {
			return a.File < c.File
		}
		if a.Line != c.Line {
			return a.Line < c.Line
		}
		return a.Column < c.Column
	})
	return out
}

// Merge copies every diagnostic from other into b.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		if _, exists := b.byKey[k]; !exists {
			b.order = append(b.order, k)
		}
		b.byKey[k] = other.byKey[k]
	}
}
