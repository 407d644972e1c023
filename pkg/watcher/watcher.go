package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the lanes file and fires a callback after changes
// settle. The parent directory is watched rather than the file itself,
// because editors and generators typically replace the file atomically
// and the original inode stops receiving events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	path     string
	base     string
	onChange func()
	done     chan struct{}
}

// New creates a watcher for the given lanes file path. onChange runs on
// the watcher's goroutine after events settle; callers that feed a UI
// should forward into their event loop (tea.Program.Send).
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher callback cannot be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	return &Watcher{
		fsw:      fsw,
		debounce: NewDebouncer(debounce),
		path:     path,
		base:     filepath.Base(path),
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It returns once the watch is registered.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.debounce.Trigger(w.onChange)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to the UI; the next successful
			// event still triggers a reload.
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and drops any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fsw.Close()
}
