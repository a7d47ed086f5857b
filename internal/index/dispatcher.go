package index

import (
	"context"
	"log/slog"

	"github.com/notedeck/quickfind/internal/vault"
)

// EventKind tags a document mutation event.
type EventKind int

const (
	// EventCreate indicates a new document appeared in the collection.
	EventCreate EventKind = iota
	// EventModify indicates an existing document's content changed.
	EventModify
	// EventDelete indicates a document was removed.
	EventDelete
	// EventRename indicates a document moved from OldPath to Doc.Path
	// without a content change.
	EventRename
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "CREATE"
	case EventModify:
		return "MODIFY"
	case EventDelete:
		return "DELETE"
	case EventRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Event is a document mutation command consumed by the Dispatcher.
// OldPath is set for rename events only.
type Event struct {
	Kind    EventKind
	Doc     vault.DocumentRef
	OldPath string
}

// Dispatcher translates mutation events into index store operations.
// Events are processed independently and idempotently: re-applying the
// same event twice leaves the store in the same state.
type Dispatcher struct {
	store  *Store
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher that mutates store.
func NewDispatcher(store *Store, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{store: store, logger: logger}
}

// Apply applies a single mutation event to the index store.
func (d *Dispatcher) Apply(ctx context.Context, ev Event) {
	d.logger.Debug("applying index event",
		slog.String("kind", ev.Kind.String()),
		slog.String("path", ev.Doc.Path))

	switch ev.Kind {
	case EventCreate, EventModify:
		d.store.UpsertIfEligible(ctx, ev.Doc)
	case EventDelete:
		d.store.Remove(ev.Doc.Path)
	case EventRename:
		d.store.Rename(ev.OldPath, ev.Doc)
	default:
		d.logger.Warn("ignoring unknown event kind",
			slog.Int("kind", int(ev.Kind)),
			slog.String("path", ev.Doc.Path))
	}
}
