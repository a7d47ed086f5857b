// Package ui provides the interactive quickfind picker: a prompt that
// re-queries the search engine on every keystroke and prints the chosen
// document path on exit. The engine itself has no dependency on this
// package; editor hosts render results their own way.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notedeck/quickfind/internal/search"
)

// Searcher answers picker queries. Satisfied by *app.App.
type Searcher interface {
	Search(ctx context.Context, query string) ([]search.Result, error)
	Building() bool
	IndexedCount() int
}

// visibleResults caps how many ranked results the picker renders.
const visibleResults = 15

// Model is the bubbletea model for the picker.
type Model struct {
	ctx      context.Context
	searcher Searcher
	input    textinput.Model
	styles   Styles

	results  []search.Result
	cursor   int
	selected string
	err      error
	width    int
	height   int
}

// NewModel creates a picker model querying searcher.
func NewModel(ctx context.Context, searcher Searcher) Model {
	input := textinput.New()
	input.Placeholder = "Search notes..."
	input.Prompt = "> "
	input.Focus()

	return Model{
		ctx:      ctx,
		searcher: searcher,
		input:    input,
		styles:   DefaultStyles(),
	}
}

// Selected returns the path chosen with Enter, or "" if the picker was
// dismissed.
func (m Model) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.selected = ""
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.results) {
				m.selected = m.results[m.cursor].Doc.Path
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 && m.cursor < visibleResults-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// refresh re-runs the query for the current input value.
func (m *Model) refresh() {
	results, err := m.searcher.Search(m.ctx, m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.results = results
	if m.cursor >= len(results) {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Prompt.Render("quickfind"))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.styles.Status.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	shown := min(len(m.results), visibleResults)
	for i := 0; i < shown; i++ {
		b.WriteString(m.renderResult(i))
		b.WriteString("\n")
	}

	if len(m.results) > shown {
		b.WriteString(m.styles.Status.Render(
			fmt.Sprintf("… and %d more", len(m.results)-shown)))
		b.WriteString("\n")
	}

	return b.String()
}

// statusLine summarizes index state and result count.
func (m Model) statusLine() string {
	var parts []string
	if m.searcher.Building() {
		parts = append(parts, "indexing…")
	}
	parts = append(parts, fmt.Sprintf("%d indexed", m.searcher.IndexedCount()))
	if m.input.Value() != "" {
		parts = append(parts, fmt.Sprintf("%d results", len(m.results)))
	}
	return m.styles.Status.Render(strings.Join(parts, " · "))
}

// renderResult renders one result row, with snippet for content matches.
func (m Model) renderResult(i int) string {
	r := m.results[i]

	cursor := "  "
	pathStyle := m.styles.Path
	if i == m.cursor {
		cursor = m.styles.Cursor.Render("▸ ")
		pathStyle = m.styles.Selected
	}

	line := cursor + pathStyle.Render(r.Doc.Path)
	switch {
	case r.IsActive:
		line += " " + m.styles.Badge.Render("[active]")
	case r.IsOpen:
		line += " " + m.styles.Badge.Render("[open]")
	}

	if r.Kind == search.MatchContent && r.Snippet != nil {
		line += "\n    " + m.styles.Snippet.Render(truncate(r.Snippet.Text, max(m.width-6, 20)))
	}
	return line
}

// truncate shortens s to at most n characters, rune-safe.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// Run runs the picker and returns the chosen path ("" if dismissed).
func Run(ctx context.Context, searcher Searcher) (string, error) {
	p := tea.NewProgram(NewModel(ctx, searcher), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected picker model type %T", final)
	}
	return model.Selected(), nil
}
