// Package watch reports debounced changes to a fixed set of files.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay quiet before its change is reported.
const Debounce = 100 * time.Millisecond

// Watcher watches the directories holding its files and emits the path of
// each watched file that was written, created or replaced.
type Watcher struct {
	Changes <-chan string // cleaned absolute paths

	changes chan string
	files   map[string]bool
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New watches files through their parent directories, so a file replaced by
// rename is still seen.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		files:   make(map[string]bool),
		done:    make(chan struct{}),
		watcher: fw,
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	ch := make(chan string, 16)
	w.Changes, w.changes = ch, ch
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes Changes.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	close(w.changes)
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(Debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) >= Debounce {
					w.emit(name)
					delete(pending, name)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// emit drops the change if the reader is behind; it will see an earlier one.
func (w *Watcher) emit(name string) {
	select {
	case w.changes <- name:
	default:
	}
}
