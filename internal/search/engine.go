package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/notedeck/quickfind/internal/index"
	"github.com/notedeck/quickfind/internal/vault"
)

// Config configures the query engine.
type Config struct {
	// MaxResults caps the ranked result list (default: 200).
	MaxResults int

	// MinContentQueryLength is the shortest normalized query that
	// triggers content matching (default: 3). Shorter queries match
	// paths only, to avoid noisy full-index scans.
	MinContentQueryLength int

	// PathCacheSize sizes the lowercased-path cache (default: 4096).
	PathCacheSize int

	// Logger receives query diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// withDefaults fills zero values with defaults.
func (c Config) withDefaults() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = 200
	}
	if c.MinContentQueryLength <= 0 {
		c.MinContentQueryLength = 3
	}
	if c.PathCacheSize <= 0 {
		c.PathCacheSize = 4096
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Engine answers free-text queries against the catalog and the index store.
type Engine struct {
	cfg       Config
	store     *index.Store
	catalog   index.Lister
	workspace vault.Workspace

	// pathCache memoizes lowercased paths so large catalogs don't
	// re-lowercase every path on every keystroke.
	pathCache *lru.Cache[string, string]
}

// NewEngine creates a query engine over the given store and catalog.
// The workspace supplies open/active document context for ranking; pass
// vault.EmptyWorkspace{} for hosts without pane state.
func NewEngine(cfg Config, store *index.Store, catalog index.Lister, workspace vault.Workspace) (*Engine, error) {
	cfg = cfg.withDefaults()
	cache, err := lru.New[string, string](cfg.PathCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create path cache: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		store:     store,
		catalog:   catalog,
		workspace: workspace,
		pathCache: cache,
	}, nil
}

// Search enumerates path and content matches for rawQuery and returns them
// ranked and capped. An empty or whitespace-only query yields no results.
// Queries issued while the index is still building see partial content
// coverage; path matching is unaffected since it works off the catalog.
func (e *Engine) Search(ctx context.Context, rawQuery string) ([]Result, error) {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" {
		return nil, nil
	}

	docs, err := e.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	activePath, hasActive := e.workspace.ActivePath()
	openPaths := e.workspace.OpenPaths()
	matchContent := len(query) >= e.cfg.MinContentQueryLength

	start := time.Now()
	var results []Result
	for _, doc := range docs {
		pathHit := strings.Contains(e.lowerPath(doc.Path), query)

		var snippet *index.Snippet
		contentHit := false
		if !pathHit && matchContent {
			if snip, ok := e.store.FindSnippet(doc.Path, query); ok {
				contentHit = true
				snippet = &snip
			}
		}
		if !pathHit && !contentHit {
			continue
		}

		kind := MatchContent
		if pathHit {
			kind = MatchPath
		}
		_, isOpen := openPaths[doc.Path]
		results = append(results, Result{
			Doc:      doc,
			IsOpen:   isOpen,
			IsActive: hasActive && doc.Path == activePath,
			Kind:     kind,
			Snippet:  snippet,
		})
	}

	ranked := Rank(results, e.cfg.MaxResults)

	e.cfg.Logger.Debug("search complete",
		slog.String("query", query),
		slog.Int("candidates", len(docs)),
		slog.Int("results", len(ranked)),
		slog.Duration("elapsed", time.Since(start)))
	return ranked, nil
}

// lowerPath returns the lowercased form of path, memoized.
func (e *Engine) lowerPath(path string) string {
	if lowered, ok := e.pathCache.Get(path); ok {
		return lowered
	}
	lowered := strings.ToLower(path)
	e.pathCache.Add(path, lowered)
	return lowered
}
