package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedeck/quickfind/internal/index"
	"github.com/notedeck/quickfind/internal/search"
	"github.com/notedeck/quickfind/internal/vault"
)

// fakeSearcher returns canned results for any non-empty query.
type fakeSearcher struct {
	results []search.Result
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]search.Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	return f.results, nil
}

func (f *fakeSearcher) Building() bool    { return false }
func (f *fakeSearcher) IndexedCount() int { return len(f.results) }

func cannedResults(paths ...string) []search.Result {
	out := make([]search.Result, len(paths))
	for i, p := range paths {
		out[i] = search.Result{
			Doc:  vault.DocumentRef{Path: p, Extension: vault.ExtensionOf(p)},
			Kind: search.MatchPath,
		}
	}
	return out
}

func typeRune(m Model, r rune) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func TestModel_TypingRefreshesResults(t *testing.T) {
	fs := &fakeSearcher{results: cannedResults("a.md", "b.md")}
	m := NewModel(context.Background(), fs)

	m = typeRune(m, 'a')

	assert.Len(t, m.results, 2)
	view := m.View()
	assert.Contains(t, view, "a.md")
	assert.Contains(t, view, "b.md")
}

func TestModel_EnterSelectsCursorResult(t *testing.T) {
	fs := &fakeSearcher{results: cannedResults("first.md", "second.md")}
	m := NewModel(context.Background(), fs)

	m = typeRune(m, 'x')

	// Move to the second result and select it.
	down, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = down.(Model)
	m, cmd := press(m, tea.KeyEnter)

	assert.Equal(t, "second.md", m.Selected())
	require.NotNil(t, cmd, "enter should quit")
}

func TestModel_EscSelectsNothing(t *testing.T) {
	fs := &fakeSearcher{results: cannedResults("a.md")}
	m := NewModel(context.Background(), fs)

	m = typeRune(m, 'a')
	m, cmd := press(m, tea.KeyEsc)

	assert.Equal(t, "", m.Selected())
	require.NotNil(t, cmd, "esc should quit")
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	fs := &fakeSearcher{results: cannedResults("only.md")}
	m := NewModel(context.Background(), fs)

	m = typeRune(m, 'o')

	up, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = up.(Model)
	assert.Equal(t, 0, m.cursor)

	down, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = down.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ViewShowsSnippetForContentMatch(t *testing.T) {
	fs := &fakeSearcher{results: []search.Result{{
		Doc:     vault.DocumentRef{Path: "note.md", Extension: "md"},
		Kind:    search.MatchContent,
		Snippet: &index.Snippet{Text: "…the matched context…", Offset: 12},
	}}}
	m := NewModel(context.Background(), fs)
	m.width = 120

	m = typeRune(m, 'm')

	view := m.View()
	assert.Contains(t, view, "note.md")
	assert.Contains(t, view, "the matched context")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
}
