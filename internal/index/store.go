// Package index maintains an in-memory content index over a mutable
// document collection. The store owns a lowercased copy of each eligible
// document's text, keyed by path, and keeps it consistent under
// create/modify/delete/rename events. Nothing is persisted; the index is
// rebuilt on every process start.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/notedeck/quickfind/internal/vault"
)

// batchReadConcurrency bounds concurrent document reads within one build batch.
const batchReadConcurrency = 4

// TextReader supplies document content during (re)indexing.
// Queries never read from the source; they only see the store's copy.
type TextReader interface {
	ReadText(ctx context.Context, path string) (string, error)
}

// Lister enumerates the document catalog for the full build.
type Lister interface {
	ListAll(ctx context.Context) ([]vault.DocumentRef, error)
}

// StoreConfig configures the index store.
type StoreConfig struct {
	// Policy decides which documents get indexed.
	Policy Policy

	// BuildBatchSize is how many documents BuildAll processes between
	// hand-off points (default: 30).
	BuildBatchSize int

	// Logger receives build and mutation diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Store maps document paths to their lowercased text content.
// All methods are safe for concurrent use.
type Store struct {
	policy    Policy
	reader    TextReader
	batchSize int
	logger    *slog.Logger

	mu   sync.RWMutex
	docs map[string]string

	// building is the single-flight guard for BuildAll: a second build
	// request while one is in flight is dropped, not queued.
	building   atomic.Bool
	generation atomic.Uint64
}

// NewStore creates an empty index store that reads document content
// through reader.
func NewStore(cfg StoreConfig, reader TextReader) *Store {
	if cfg.BuildBatchSize <= 0 {
		cfg.BuildBatchSize = 30
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Store{
		policy:    cfg.Policy,
		reader:    reader,
		batchSize: cfg.BuildBatchSize,
		logger:    cfg.Logger,
		docs:      make(map[string]string),
	}
}

// BuildAll indexes the full catalog in batches, yielding between batches so
// interactive work is not starved. Only one build runs at a time; a request
// made while one is in flight is a no-op. A failed read of any single
// document never aborts the build; that document is simply left unindexed.
func (s *Store) BuildAll(ctx context.Context, catalog Lister) error {
	if !s.building.CompareAndSwap(false, true) {
		s.logger.Debug("index build already in flight, dropping request")
		return nil
	}
	defer s.building.Store(false)

	docs, err := catalog.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	start := time.Now()
	indexed := 0
	for begin := 0; begin < len(docs); begin += s.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(begin+s.batchSize, len(docs))
		indexed += s.buildBatch(ctx, docs[begin:end])

		// Hand-off point between batches.
		runtime.Gosched()
	}

	s.logger.Info("index build complete",
		slog.Int("documents", len(docs)),
		slog.Int("indexed", indexed),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// buildBatch reads one batch concurrently and applies it under a single
// lock acquisition. Returns the number of documents indexed.
func (s *Store) buildBatch(ctx context.Context, batch []vault.DocumentRef) int {
	texts := make([]string, len(batch))
	indexed := make([]bool, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchReadConcurrency)
	for j, doc := range batch {
		if !s.policy.Allows(doc.Extension, doc.Size) {
			continue
		}
		j, doc := j, doc
		g.Go(func() error {
			text, err := s.reader.ReadText(gctx, doc.Path)
			if err != nil {
				s.logger.Debug("skipping unreadable document",
					slog.String("path", doc.Path),
					slog.String("error", err.Error()))
				return nil
			}
			texts[j] = strings.ToLower(text)
			indexed[j] = true
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for j, doc := range batch {
		if indexed[j] {
			s.docs[doc.Path] = texts[j]
			count++
		} else {
			// Ineligible or unreadable: fail open, drop any stale entry.
			delete(s.docs, doc.Path)
		}
	}
	s.generation.Add(1)
	return count
}

// Building reports whether a full build is currently in flight.
func (s *Store) Building() bool {
	return s.building.Load()
}

// UpsertIfEligible (re)indexes doc if the policy allows it. Ineligible or
// unreadable documents have any existing entry removed instead, so the
// store never keeps stale text for a document it could not read.
func (s *Store) UpsertIfEligible(ctx context.Context, doc vault.DocumentRef) {
	if !s.policy.Allows(doc.Extension, doc.Size) {
		s.Remove(doc.Path)
		return
	}

	text, err := s.reader.ReadText(ctx, doc.Path)
	if err != nil {
		s.logger.Debug("dropping unreadable document from index",
			slog.String("path", doc.Path),
			slog.String("error", err.Error()))
		s.Remove(doc.Path)
		return
	}

	s.mu.Lock()
	s.docs[doc.Path] = strings.ToLower(text)
	s.mu.Unlock()
	s.generation.Add(1)
}

// Remove deletes the entry for path, if present. Idempotent.
func (s *Store) Remove(path string) {
	s.mu.Lock()
	_, existed := s.docs[path]
	delete(s.docs, path)
	s.mu.Unlock()
	if existed {
		s.generation.Add(1)
	}
}

// Rename moves the entry at oldPath to newDoc's path without re-reading
// content, since a rename does not change the document text. No-op if
// oldPath was not indexed.
func (s *Store) Rename(oldPath string, newDoc vault.DocumentRef) {
	s.mu.Lock()
	text, ok := s.docs[oldPath]
	if ok {
		delete(s.docs, oldPath)
		s.docs[newDoc.Path] = text
	}
	s.mu.Unlock()
	if ok {
		s.generation.Add(1)
	}
}

// FindSnippet returns a preview of the first occurrence of query in the
// indexed text for path. Returns false if the path is not indexed or the
// text does not contain query. The query must already be lowercased.
func (s *Store) FindSnippet(path, query string) (Snippet, bool) {
	s.mu.RLock()
	text, ok := s.docs[path]
	s.mu.RUnlock()
	if !ok {
		return Snippet{}, false
	}
	return ExtractSnippet(text, query)
}

// Contains reports whether path is indexed and its text contains query as
// a substring. The query must already be lowercased.
func (s *Store) Contains(path, query string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[path]
	return ok && strings.Contains(text, query)
}

// Len returns the number of indexed documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Generation returns a counter that increases on every index mutation.
// Callers can use it to invalidate derived caches.
func (s *Store) Generation() uint64 {
	return s.generation.Load()
}
