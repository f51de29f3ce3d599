package payload

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"cardpanel/internal/card"
	"cardpanel/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a payload file for changes and hands freshly loaded
// results to a callback. Rapid saves are debounced so editors that write in
// multiple events trigger a single reload.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	onReload    func(*card.Result)
	debounceDur time.Duration
	pendingAt   time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a Watcher for the given payload file. onReload is
// invoked from the watcher goroutine with each successfully reloaded payload.
func NewWatcher(path string, onReload func(*card.Result)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:     fsw,
		path:        filepath.Clean(path),
		onReload:    onReload,
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching the payload file's directory. Non-blocking; the
// watcher runs in its own goroutine until Stop or context cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: editors replace files on save and
	// a direct file watch would be lost on the first rename.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Payload("watching %s", w.path)

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.PayloadError("close watcher: %v", err)
	}
	logging.Payload("watcher stopped")
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.PayloadError("watch error: %v", err)

		case <-debounceTicker.C:
			w.reloadIfSettled()
		}
	}
}

// handleEvent records a write/create event for the payload file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	logging.PayloadDebug("change event %s for %s", event.Op, event.Name)

	w.mu.Lock()
	w.pendingAt = time.Now()
	w.mu.Unlock()
}

// reloadIfSettled reloads the payload once events have settled past the
// debounce window. Load failures are logged and the previous payload stays
// on screen.
func (w *Watcher) reloadIfSettled() {
	w.mu.Lock()
	if w.pendingAt.IsZero() || time.Since(w.pendingAt) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pendingAt = time.Time{}
	w.mu.Unlock()

	res, err := Load(w.path)
	if err != nil {
		logging.PayloadError("reload: %v", err)
		return
	}

	logging.Payload("reloaded %s", w.path)
	w.onReload(res)
}

// IsWatching returns true if the watcher is currently running.
func (w *Watcher) IsWatching() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
