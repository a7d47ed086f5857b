package vault

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FS is a Catalog backed by a directory tree on disk.
// Paths handed out and accepted are relative to the root, with forward
// slashes regardless of platform.
type FS struct {
	root   string
	logger *slog.Logger
}

// NewFS creates a filesystem catalog rooted at dir.
func NewFS(dir string, logger *slog.Logger) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat vault root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root is not a directory: %s", abs)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FS{root: abs, logger: logger}, nil
}

// Root returns the absolute vault root directory.
func (v *FS) Root() string {
	return v.root
}

// ListAll walks the vault and returns every regular file as a DocumentRef.
// Dot-directories (.git, .obsidian, ...) and dot-files are skipped.
// Unreadable entries are logged and skipped; the walk itself never fails on
// a single entry.
func (v *FS) ListAll(ctx context.Context) ([]DocumentRef, error) {
	var docs []DocumentRef
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			v.logger.Warn("skipping unreadable entry",
				slog.String("path", path),
				slog.String("error", err.Error()))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			v.logger.Warn("skipping unstattable file",
				slog.String("path", rel),
				slog.String("error", err.Error()))
			return nil
		}

		docs = append(docs, DocumentRef{
			Path:      rel,
			Extension: ExtensionOf(rel),
			Size:      info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk vault: %w", err)
	}
	return docs, nil
}

// ReadText reads the full content of the document at the given relative path.
func (v *FS) ReadText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(v.root, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// Stat returns a DocumentRef for the file at the given relative path.
func (v *FS) Stat(path string) (DocumentRef, error) {
	info, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(path)))
	if err != nil {
		return DocumentRef{}, fmt.Errorf("stat document: %w", err)
	}
	return DocumentRef{
		Path:      path,
		Extension: ExtensionOf(path),
		Size:      info.Size(),
	}, nil
}
