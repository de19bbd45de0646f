// Package watch provides a drop-directory watcher that feeds new PDF
// files into the extraction pipeline automatically.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/veridoc-labs/veridoc-cli/internal/core/ports/driving"
	"github.com/veridoc-labs/veridoc-cli/internal/logger"
)

// DefaultDebounce coalesces rapid create/write bursts for one file.
const DefaultDebounce = 2 * time.Second

// ErrMissingDirectory is returned when no watch directory is configured.
var ErrMissingDirectory = errors.New("watch: directory is required")

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("watch: session service is required")

// Config holds the watcher configuration.
type Config struct {
	// Directory is the drop directory to watch. Not recursive.
	Directory string

	// Debounce is how long to wait after the last event for a file
	// before processing it. Defaults to DefaultDebounce.
	Debounce time.Duration
}

// Watcher watches a drop directory and processes each new PDF as a
// single-file batch.
type Watcher struct {
	session  driving.SessionService
	dir      string
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer

	// processed is called after each file is handled. Used by tests.
	processed func(path string, err error)
}

// NewWatcher creates a new drop-directory watcher.
func NewWatcher(cfg Config, session driving.SessionService) (*Watcher, error) {
	if cfg.Directory == "" {
		return nil, ErrMissingDirectory
	}
	if session == nil {
		return nil, ErrMissingSessionService
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	return &Watcher{
		session:  session,
		dir:      cfg.Directory,
		debounce: cfg.Debounce,
		pending:  map[string]*time.Timer{},
	}, nil
}

// Run watches the directory until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close() //nolint:errcheck

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	logger.Info("Watching %s for new PDF files", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// handleEvent schedules processing for relevant PDF events.
func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !isPDF(event.Name) {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	path := event.Name

	w.mu.Lock()
	defer w.mu.Unlock()

	// Restart the debounce window on every event for the file, so a
	// slow copy is only processed once it has settled.
	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		w.process(ctx, path)
	})
}

// process sends one settled file through the extraction pipeline.
func (w *Watcher) process(ctx context.Context, path string) {
	logger.Info("Processing %s", filepath.Base(path))

	batch, docs, err := w.session.Process(ctx, []string{path})
	if err != nil {
		logger.Warn("Failed to process %s: %v", filepath.Base(path), err)
	} else if len(docs) > 0 {
		logger.Info("Registered %s as %s", batch.Label, docs[0].Name)
	}

	if w.processed != nil {
		w.processed(path, err)
	}
}

// cancelPending stops all outstanding debounce timers.
func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// isPDF reports whether the path looks like a PDF file.
func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}
