// Package watch reports changes to a single scene file.
package watch

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 350 * time.Millisecond

// Watcher coalesces bursts of filesystem events on one file into single
// notifications on C.
type Watcher struct {
	C <-chan struct{}

	path     string
	fsw      *fsnotify.Watcher
	debounce *debouncer
	notify   chan struct{}
	done     chan struct{}
	log      *slog.Logger
}

// New watches path. The parent directory is watched rather than the file so
// atomic saves (write temp + rename) are seen.
func New(path string, delay time.Duration, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	dir := filepath.Dir(abs)
	logger.Debug("adding path to FS watcher", slog.String("path", dir))
	if err := fsw.Add(dir); err != nil {
		err := errors.Join(err, fsw.Close())
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	notify := make(chan struct{}, 1)
	w := &Watcher{
		C:      notify,
		path:   abs,
		fsw:    fsw,
		notify: notify,
		done:   make(chan struct{}),
		log:    logger,
	}
	w.debounce = newDebouncer(delay, w.post)
	go w.loop()
	return w, nil
}

func (w *Watcher) post() {
	select {
	case w.notify <- struct{}{}:
	default:
		// A notification is already pending.
	}
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(ev.Name) {
				continue
			}
			w.log.Debug("fsnotify event",
				slog.String("op", ev.Op.String()),
				slog.String("path", ev.Name),
			)
			w.debounce.trigger()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("fsnotify error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path
}

func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	w.debounce.stop()
	return w.fsw.Close()
}
