package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedeck/quickfind/internal/config"
	"github.com/notedeck/quickfind/internal/search"
	"github.com/notedeck/quickfind/internal/vault"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestApp(t *testing.T, root string) *App {
	t.Helper()
	a, err := New(config.DefaultConfig(), root, vault.EmptyWorkspace{}, nil)
	require.NoError(t, err)
	return a
}

func searchPaths(t *testing.T, a *App, query string) []string {
	t.Helper()
	results, err := a.Search(context.Background(), query)
	require.NoError(t, err)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Doc.Path
	}
	return out
}

func TestApp_SearchAfterBuild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes/project.md", "the launch checklist lives here")
	writeFile(t, root, "scratch.txt", "unrelated")

	a := newTestApp(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	defer a.Stop()

	require.Eventually(t, func() bool {
		return !a.Building() && a.IndexedCount() == 2
	}, 3*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{"notes/project.md"}, searchPaths(t, a, "launch checklist"))
	assert.Equal(t, []string{"scratch.txt"}, searchPaths(t, a, "scratch"))
}

func TestApp_PicksUpCreatedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "existing.md", "already here")

	a := newTestApp(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	defer a.Stop()

	require.Eventually(t, func() bool { return !a.Building() }, 3*time.Second, 10*time.Millisecond)

	writeFile(t, root, "fresh.md", "a brand new discovery")

	require.Eventually(t, func() bool {
		return len(searchPaths(t, a, "brand new discovery")) == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestApp_PicksUpDeletedFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doomed.md", "ephemeral content")

	a := newTestApp(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	defer a.Stop()

	require.Eventually(t, func() bool {
		return len(searchPaths(t, a, "ephemeral content")) == 1
	}, 3*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(filepath.Join(root, "doomed.md")))

	require.Eventually(t, func() bool {
		return len(searchPaths(t, a, "ephemeral content")) == 0
	}, 3*time.Second, 20*time.Millisecond)
}

func TestApp_ResultsCarrySnippets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "note.md", "some context before the magic phrase and after")

	a := newTestApp(t, root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.Start(ctx)
	defer a.Stop()

	require.Eventually(t, func() bool { return !a.Building() && a.IndexedCount() == 1 },
		3*time.Second, 10*time.Millisecond)

	results, err := a.Search(context.Background(), "magic phrase")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, search.MatchContent, results[0].Kind)
	require.NotNil(t, results[0].Snippet)
	assert.Contains(t, results[0].Snippet.Text, "magic phrase")
}
