// Package vault defines the document collection interfaces the index and
// query engine depend on, plus a filesystem-backed implementation for
// standalone use. Editor hosts supply their own Catalog and Workspace.
package vault

import (
	"context"
	"path/filepath"
	"strings"
)

// DocumentRef identifies a document in the collection.
// The catalog owns these; the index only reads them.
type DocumentRef struct {
	// Path is the unique vault-relative path (forward slashes).
	Path string

	// Extension is the file extension without the leading dot, lowercased.
	Extension string

	// Size is the document size in bytes.
	Size int64
}

// Catalog supplies the document listing and document content.
type Catalog interface {
	// ListAll returns a snapshot of every document in the collection.
	ListAll(ctx context.Context) ([]DocumentRef, error)

	// ReadText returns the full text content of the document at path.
	ReadText(ctx context.Context, path string) (string, error)
}

// Workspace reports which documents the host currently has open.
// Hosts without pane state can use EmptyWorkspace.
type Workspace interface {
	// ActivePath returns the path of the focused document, if any.
	ActivePath() (string, bool)

	// OpenPaths returns the set of paths with an open pane.
	OpenPaths() map[string]struct{}
}

// EmptyWorkspace is a Workspace with no open or active documents.
type EmptyWorkspace struct{}

// ActivePath implements Workspace.
func (EmptyWorkspace) ActivePath() (string, bool) { return "", false }

// OpenPaths implements Workspace.
func (EmptyWorkspace) OpenPaths() map[string]struct{} { return nil }

// ExtensionOf returns the lowercased extension of path without the dot.
// Returns "" for paths with no extension.
func ExtensionOf(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
