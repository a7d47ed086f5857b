package search

import (
	"cmp"
	"slices"
	"strings"
)

// Rank orders results by tiered priority and truncates to limit.
// The order is fully deterministic: paths are unique, so the final
// lexicographic tie-break leaves no equal pairs.
func Rank(results []Result, limit int) []Result {
	slices.SortStableFunc(results, compareResults)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// compareResults implements the ranking order. Earlier criteria dominate:
// active document, then open documents, then path matches over content
// matches, then shorter paths, then lexicographic path order.
func compareResults(a, b Result) int {
	if c := compareBool(a.IsActive, b.IsActive); c != 0 {
		return c
	}
	if c := compareBool(a.IsOpen, b.IsOpen); c != 0 {
		return c
	}
	if c := compareBool(a.Kind == MatchPath, b.Kind == MatchPath); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Doc.Path), len(b.Doc.Path)); c != 0 {
		return c
	}
	return strings.Compare(a.Doc.Path, b.Doc.Path)
}

// compareBool sorts true before false.
func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
