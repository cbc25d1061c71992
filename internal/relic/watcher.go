package relic

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SourceWatcher monitors one import source file and emits a debounced
// notification whenever it is written or replaced. Editors and exporters
// often rewrite files with a remove-then-create, so the watch is placed on
// the parent directory and filtered to the file's name.
type SourceWatcher struct {
	Path    string
	Changes <-chan struct{} // Read-only external channel

	changes  chan struct{}
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewSourceWatcher creates a watcher for the file at path. A debounce of
// zero falls back to 200ms.
func NewSourceWatcher(path string, debounce time.Duration) (*SourceWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	ch := make(chan struct{}, 1)
	w := &SourceWatcher{
		Path:     path,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}
	return w, nil
}

// Start begins watching the source file's directory.
func (w *SourceWatcher) Start() error {
	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and its channels.
func (w *SourceWatcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *SourceWatcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.Path) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; keep going.
		}
	}
}

// emit signals a change without blocking; a signal already queued covers
// any number of coalesced writes.
func (w *SourceWatcher) emit() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
