package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingWriter_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	w, err := NewRotatingWriter(path, 1, 3)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	n, err := w.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	require.NoError(t, w.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestRotatingWriter_RotatesWhenFull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	// 1MB max; write two chunks that together exceed it.
	w, err := NewRotatingWriter(path, 1, 3)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	chunk := strings.Repeat("x", 600*1024)
	_, err = w.Write([]byte(chunk))
	require.NoError(t, err)
	_, err = w.Write([]byte(chunk))
	require.NoError(t, err)

	// First chunk rotated to .1, second chunk in the fresh file.
	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "rotated file should exist")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(600*1024), info.Size())
}

func TestSetup_ReturnsWorkingLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, cleanup, err := Setup(Config{Level: "debug", FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	require.NoError(t, err)

	logger.Info("started", "component", "test")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
	assert.Contains(t, string(data), `"component":"test"`)
}
