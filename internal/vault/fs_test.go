package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFS_ListAll_ReturnsRegularFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "daily/today.md", "# Today")
	writeFile(t, root, "todo.txt", "milk")
	writeFile(t, root, ".obsidian/workspace.json", "{}")
	writeFile(t, root, ".quickfind.yaml", "log:\n  level: info\n")

	v, err := NewFS(root, nil)
	require.NoError(t, err)

	docs, err := v.ListAll(context.Background())
	require.NoError(t, err)

	paths := make(map[string]DocumentRef, len(docs))
	for _, d := range docs {
		paths[d.Path] = d
	}

	require.Len(t, docs, 2)
	assert.Contains(t, paths, "daily/today.md")
	assert.Contains(t, paths, "todo.txt")
	assert.NotContains(t, paths, ".obsidian/workspace.json")
	assert.NotContains(t, paths, ".quickfind.yaml")

	assert.Equal(t, "md", paths["daily/today.md"].Extension)
	assert.Equal(t, int64(len("# Today")), paths["daily/today.md"].Size)
}

func TestFS_ReadText(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "note.md", "Hello Vault")

	v, err := NewFS(root, nil)
	require.NoError(t, err)

	text, err := v.ReadText(context.Background(), "note.md")
	require.NoError(t, err)
	assert.Equal(t, "Hello Vault", text)

	_, err = v.ReadText(context.Background(), "missing.md")
	assert.Error(t, err)
}

func TestFS_NewFS_RejectsNonDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.md", "x")

	_, err := NewFS(filepath.Join(root, "file.md"), nil)
	assert.Error(t, err)

	_, err = NewFS(filepath.Join(root, "nope"), nil)
	assert.Error(t, err)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"note.md", "md"},
		{"dir/note.TXT", "txt"},
		{"drawing.canvas", "canvas"},
		{"Makefile", ""},
		{"archive.tar.gz", "gz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionOf(tt.path), tt.path)
	}
}
