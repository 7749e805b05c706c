package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ufccards/ufccards/internal/roster"
)

// DefaultWatchDebounce coalesces bursts of file events into one reload.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher reloads a Store whenever its source file changes.
type Watcher struct {
	mu       sync.Mutex
	store    *Store
	path     string
	debounce time.Duration
	onReload func(*roster.Roster, error)
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
	timer    *time.Timer
	wg       sync.WaitGroup
}

// NewWatcher creates a Watcher for a store backed by a FileSource.
// onReload, if non-nil, receives the outcome of every reload.
func NewWatcher(store *Store, debounce time.Duration, onReload func(*roster.Roster, error)) (*Watcher, error) {
	src, ok := store.Source().(FileSource)
	if !ok {
		return nil, fmt.Errorf("cannot watch non-file source %s", store.Source())
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	path, err := filepath.Abs(src.Path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", src.Path, err)
	}

	// Watch the directory so editors that replace the file are seen.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		store:    store,
		path:     path,
		debounce: debounce,
		onReload: onReload,
		logger:   store.logger,
		watcher:  fw,
	}, nil
}

// Run processes file events until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("Source changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				w.schedule(ctx)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		if ctx.Err() != nil {
			return
		}
		r, err := w.store.Load(ctx)
		if errors.Is(err, ErrSuperseded) {
			return
		}
		if w.onReload != nil {
			w.onReload(r, err)
		}
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.mu.Unlock()

	w.wg.Wait()
	w.watcher.Close()
}
