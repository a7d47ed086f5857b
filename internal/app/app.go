// Package app wires the vault catalog, index store, query engine, update
// dispatcher, and file watcher into a running quickfind instance.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/notedeck/quickfind/internal/config"
	"github.com/notedeck/quickfind/internal/index"
	"github.com/notedeck/quickfind/internal/search"
	"github.com/notedeck/quickfind/internal/vault"
	"github.com/notedeck/quickfind/internal/watcher"
)

// App is a fully wired quickfind instance over one vault directory.
type App struct {
	cfg        config.Config
	vault      *vault.FS
	store      *index.Store
	engine     *search.Engine
	dispatcher *index.Dispatcher
	watcher    *watcher.FSWatcher
	logger     *slog.Logger
}

// New constructs an App for the vault rooted at dir. The workspace supplies
// open/active document context; CLI hosts pass vault.EmptyWorkspace{}.
func New(cfg config.Config, dir string, workspace vault.Workspace, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsVault, err := vault.NewFS(dir, logger)
	if err != nil {
		return nil, err
	}

	store := index.NewStore(index.StoreConfig{
		Policy:         index.NewPolicy(cfg.Index.Extensions, cfg.Index.MaxFileSize),
		BuildBatchSize: cfg.Index.BuildBatchSize,
		Logger:         logger,
	}, fsVault)

	engine, err := search.NewEngine(search.Config{
		MaxResults:            cfg.Search.MaxResults,
		MinContentQueryLength: cfg.Search.MinContentQueryLength,
		PathCacheSize:         cfg.Search.PathCacheSize,
		Logger:                logger,
	}, store, fsVault, workspace)
	if err != nil {
		return nil, err
	}

	fsw, err := watcher.NewFSWatcher(watcher.Options{
		EventBufferSize: cfg.Watch.EventBufferSize,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &App{
		cfg:        cfg,
		vault:      fsVault,
		store:      store,
		engine:     engine,
		dispatcher: index.NewDispatcher(store, logger),
		watcher:    fsw,
		logger:     logger,
	}, nil
}

// Start launches the background index build and the file watcher. It
// returns immediately; queries issued before the build finishes see
// partial content coverage.
func (a *App) Start(ctx context.Context) {
	go func() {
		if err := a.store.BuildAll(ctx, a.vault); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("index build failed", slog.String("error", err.Error()))
		}
	}()

	go func() {
		if err := a.watcher.Start(ctx, a.vault.Root()); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("watcher stopped", slog.String("error", err.Error()))
		}
	}()

	go a.consumeEvents(ctx)
}

// BuildIndex runs the full index build synchronously. One-shot hosts use
// this instead of Start when no live updates are needed.
func (a *App) BuildIndex(ctx context.Context) error {
	return a.store.BuildAll(ctx, a.vault)
}

// Stop shuts down the watcher.
func (a *App) Stop() {
	_ = a.watcher.Stop()
}

// Search answers a raw user query with a ranked, capped result list.
func (a *App) Search(ctx context.Context, query string) ([]search.Result, error) {
	return a.engine.Search(ctx, query)
}

// IndexedCount returns the number of documents with indexed content.
func (a *App) IndexedCount() int {
	return a.store.Len()
}

// Building reports whether the initial index build is still running.
func (a *App) Building() bool {
	return a.store.Building()
}

// consumeEvents feeds watcher events to the dispatcher until ctx ends.
func (a *App) consumeEvents(ctx context.Context) {
	events := a.watcher.Events()
	errs := a.watcher.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.handleFileEvent(ctx, ev)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			a.logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

// handleFileEvent translates a file event into an index mutation.
func (a *App) handleFileEvent(ctx context.Context, ev watcher.FileEvent) {
	if ev.IsDir {
		return
	}

	switch ev.Operation {
	case watcher.OpCreate, watcher.OpModify:
		doc, err := a.vault.Stat(ev.Path)
		if err != nil {
			// File vanished between the event and the stat.
			a.dispatcher.Apply(ctx, index.Event{
				Kind: index.EventDelete,
				Doc:  vault.DocumentRef{Path: ev.Path},
			})
			return
		}
		kind := index.EventCreate
		if ev.Operation == watcher.OpModify {
			kind = index.EventModify
		}
		a.dispatcher.Apply(ctx, index.Event{Kind: kind, Doc: doc})

	case watcher.OpDelete, watcher.OpRename:
		// fsnotify reports renames as an event for the old path plus a
		// separate create for the new path, so both map to a removal
		// here. Hosts with true rename notifications use
		// Dispatcher.Apply with EventRename to keep the no-re-read move.
		a.dispatcher.Apply(ctx, index.Event{
			Kind: index.EventDelete,
			Doc:  vault.DocumentRef{Path: ev.Path},
		})
	}
}
