// Package watcher observes a vault directory for document mutations and
// emits file events for the index dispatcher. Events are emitted one at a
// time, unbatched: the dispatcher applies each independently and replaying
// an event is safe.
package watcher

import (
	"context"
	"time"
)

// Operation represents a file system operation type.
type Operation int

const (
	// OpCreate indicates a new file was created.
	OpCreate Operation = iota
	// OpModify indicates an existing file was modified.
	OpModify
	// OpDelete indicates a file was deleted.
	OpDelete
	// OpRename indicates a file was renamed away from its old path.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// FileEvent represents a file system event.
type FileEvent struct {
	// Path is the vault-relative path to the file, forward slashes.
	Path string

	// Operation is the type of file system operation.
	Operation Operation

	// IsDir indicates if the event is for a directory.
	IsDir bool

	// Timestamp is when the event was detected.
	Timestamp time.Time
}

// Watcher defines the interface for file system watching.
type Watcher interface {
	// Start begins watching the given directory recursively. It blocks
	// until Stop is called or the context is cancelled.
	Start(ctx context.Context, path string) error

	// Stop stops the watcher and releases resources.
	// Safe to call multiple times.
	Stop() error

	// Events returns a channel of file events.
	// The channel is closed when the watcher stops.
	Events() <-chan FileEvent

	// Errors returns a channel of watcher errors. Non-fatal errors are
	// sent here; the watcher continues running. Closed on stop.
	Errors() <-chan error
}

// Options configures the watcher behavior.
type Options struct {
	// EventBufferSize is the size of the event channel buffer.
	// Default: 1000
	EventBufferSize int
}

// WithDefaults returns options with defaults applied for zero values.
func (o Options) WithDefaults() Options {
	if o.EventBufferSize == 0 {
		o.EventBufferSize = 1000
	}
	return o
}
