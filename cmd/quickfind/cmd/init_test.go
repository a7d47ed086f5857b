package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notedeck/quickfind/internal/config"
)

func TestInitCmd_WritesConfig(t *testing.T) {
	// Given: a vault without a config file
	root := t.TempDir()

	// When: running init
	output, err := runRoot(t, "init", "--vault", root)

	// Then: a valid config file exists at the vault root
	require.NoError(t, err)
	path := filepath.Join(root, config.DefaultConfigName)
	assert.Contains(t, output, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg, "Generated config should match defaults")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	// Given: a vault that already has a config file
	root := t.TempDir()
	path := filepath.Join(root, config.DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	// When: running init without --force
	_, err := runRoot(t, "init", "--vault", root)

	// Then: the existing file is preserved
	require.Error(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "level: debug")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	// Given: a vault with a stale config file
	root := t.TempDir()
	path := filepath.Join(root, config.DefaultConfigName)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	// When: running init with --force
	_, err := runRoot(t, "init", "--vault", root, "--force")

	// Then: the file is replaced with the template
	require.NoError(t, err)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "extensions")
}
