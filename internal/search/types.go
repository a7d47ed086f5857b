// Package search turns raw user queries into ranked result lists over the
// document catalog and the content index. Matching is plain substring
// matching: path matches first, content matches for queries long enough to
// be selective.
package search

import (
	"github.com/notedeck/quickfind/internal/index"
	"github.com/notedeck/quickfind/internal/vault"
)

// MatchKind classifies how a result matched the query.
type MatchKind int

const (
	// MatchPath means the query was found in the document path.
	// Path matches always win classification: a document matching both by
	// path and by content is a path match.
	MatchPath MatchKind = iota

	// MatchContent means the query was found in the indexed text only.
	MatchContent
)

// String returns a human-readable representation of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchPath:
		return "path"
	case MatchContent:
		return "content"
	default:
		return "unknown"
	}
}

// Result is a single query hit. Produced fresh per query, never stored.
type Result struct {
	// Doc identifies the matched document.
	Doc vault.DocumentRef

	// IsOpen reports whether the host has a pane open for this document.
	IsOpen bool

	// IsActive reports whether this is the host's focused document.
	IsActive bool

	// Kind is how the document matched.
	Kind MatchKind

	// Snippet is a preview of the first content match. Nil for path
	// matches.
	Snippet *index.Snippet
}
