package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSWatcher implements Watcher on top of fsnotify with recursive directory
// registration. fsnotify reports a rename as a Rename event for the old
// path followed by a Create for the new one; consumers treat the Rename as
// a removal and let the Create re-index the file under its new path.
type FSWatcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan FileEvent
	errors    chan error
	stopCh    chan struct{}
	rootPath  string
	logger    *slog.Logger

	mu      sync.RWMutex
	stopped bool
	dropped atomic.Uint64
}

var _ Watcher = (*FSWatcher)(nil)

// NewFSWatcher creates a new filesystem watcher with the given options.
func NewFSWatcher(opts Options, logger *slog.Logger) (*FSWatcher, error) {
	opts = opts.WithDefaults()
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &FSWatcher{
		fsWatcher: fsw,
		events:    make(chan FileEvent, opts.EventBufferSize),
		errors:    make(chan error, 10),
		stopCh:    make(chan struct{}),
		logger:    logger,
	}, nil
}

// Start begins watching the given directory.
func (w *FSWatcher) Start(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve absolute path: %w", err)
	}
	w.rootPath = absPath

	if err := w.addRecursive(absPath); err != nil {
		return fmt.Errorf("add directories to watcher: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.emitError(err)
		}
	}
}

// handleEvent converts and filters a single fsnotify event.
func (w *FSWatcher) handleEvent(event fsnotify.Event) {
	relPath, err := filepath.Rel(w.rootPath, event.Name)
	if err != nil {
		relPath = event.Name
	}
	relPath = filepath.ToSlash(relPath)

	isDir := false
	if info, err := os.Stat(event.Name); err == nil {
		isDir = info.IsDir()
	}

	if w.shouldIgnore(relPath) {
		return
	}

	var op Operation
	switch {
	case event.Op&fsnotify.Create != 0:
		op = OpCreate
		// Watch newly created directories too.
		if isDir {
			if err := w.fsWatcher.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory",
					slog.String("path", relPath),
					slog.String("error", err.Error()))
			}
			return
		}
	case event.Op&fsnotify.Write != 0:
		op = OpModify
	case event.Op&fsnotify.Remove != 0:
		op = OpDelete
	case event.Op&fsnotify.Rename != 0:
		op = OpRename
	default:
		// Chmod and unknown ops don't affect the index.
		return
	}

	w.emit(FileEvent{
		Path:      relPath,
		Operation: op,
		IsDir:     isDir,
		Timestamp: time.Now(),
	})
}

// addRecursive adds all directories under root to the fsnotify watcher.
func (w *FSWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries we can't access
		}
		if !d.IsDir() {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		if relPath == "." {
			return w.fsWatcher.Add(path)
		}
		if strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

// shouldIgnore returns true if the path should not produce events.
func (w *FSWatcher) shouldIgnore(relPath string) bool {
	if relPath == "." || relPath == "" {
		return true
	}
	// Dot-directories and dot-files (.git, .obsidian, .quickfind.yaml
	// swap files, ...) never reach the index.
	for _, part := range strings.Split(relPath, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// emit sends an event to the output channel, dropping on overflow. The
// read lock is held across the send so Stop cannot close the channel
// mid-send; the send never blocks, so this cannot deadlock against Stop.
func (w *FSWatcher) emit(event FileEvent) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return
	}

	select {
	case w.events <- event:
	default:
		count := w.dropped.Add(1)
		w.logger.Warn("event buffer full, dropping event",
			slog.String("path", event.Path),
			slog.Uint64("total_dropped", count))
	}
}

// emitError sends an error to the error channel.
func (w *FSWatcher) emitError(err error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		return
	}

	select {
	case w.errors <- err:
	default:
	}
}

// Stop stops the watcher and releases resources.
func (w *FSWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	_ = w.fsWatcher.Close()
	close(w.events)
	close(w.errors)
	return nil
}

// Events returns the channel of file events.
func (w *FSWatcher) Events() <-chan FileEvent {
	return w.events
}

// Errors returns the channel of errors.
func (w *FSWatcher) Errors() <-chan error {
	return w.errors
}

// Dropped returns the number of events dropped due to buffer overflow.
func (w *FSWatcher) Dropped() uint64 {
	return w.dropped.Load()
}
