package resolver

import (
	"sort"

	"github.com/somlang/som/internal/scope"
)

// levenshtein1 reports whether a and b differ by exactly one single-character
// edit (insertion, deletion, or substitution) — cheap enough to run over
// every visible name without a general-purpose edit-distance table.
func levenshtein1(a, b string) bool {
	la, lb := len(a), len(b)
	if la == lb {
		diff := 0
		for i := 0; i < la; i++ {
			if a[i] != b[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}
		return diff == 1
	}
	if la+1 != lb && lb+1 != la {
		return false
	}
	longer, shorter := a, b
	if lb > la {
		longer, shorter = b, a
	}
	i, j, skipped := 0, 0, false
	for i < len(longer) && j < len(shorter) {
		if longer[i] == shorter[j] {
			i++
			j++
			continue
		}
		if skipped {
			return false
		}
		skipped = true
		i++
	}
	return true
}

// suggestTypeName returns a "did you mean" hint against every type name
// visible in sc, or "" if nothing is within edit distance 1 of name.
func suggestTypeName(sc *scope.Scope, name string) string {
	return suggestAmong(sc.TypeNames(), name)
}

// suggestValueName returns a "did you mean" hint against every value name
// visible in sc.
func suggestValueName(sc *scope.Scope, name string) string {
	return suggestAmong(sc.ValueNames(), name)
}

func suggestAmong(candidates []string, name string) string {
	sort.Strings(candidates)
	for _, c := range candidates {
		if c != name && levenshtein1(c, name) {
			return "did you mean " + c + "?"
		}
	}
	return ""
}
