package index

import "strings"

// Snippet window around the first match: characters of context kept before
// and after the matched query.
const (
	snippetBefore = 40
	snippetAfter  = 60
)

const ellipsis = "…"

// Snippet is a bounded, whitespace-normalized excerpt of indexed text
// surrounding the first occurrence of a query.
type Snippet struct {
	// Text is the cleaned excerpt, with ellipsis markers where it was
	// truncated.
	Text string

	// Offset is the byte offset of the match in the indexed text.
	Offset int
}

// ExtractSnippet locates the first occurrence of query in text and returns
// a preview of the surrounding context. Whitespace runs are collapsed to
// single spaces. Returns false if text does not contain query.
func ExtractSnippet(text, query string) (Snippet, bool) {
	i := strings.Index(text, query)
	if i < 0 {
		return Snippet{}, false
	}

	start := max(0, i-snippetBefore)
	end := min(len(text), i+len(query)+snippetAfter)

	clean := strings.Join(strings.Fields(text[start:end]), " ")
	if start > 0 {
		clean = ellipsis + clean
	}
	if end < len(text) {
		clean += ellipsis
	}

	return Snippet{Text: clean, Offset: i}, true
}
