// Package watch reloads an overlay file when it changes on disk.
//
// Reloads are debounced against partial writes, skipped when the file
// content is unchanged, and validated before delivery; a bad overlay is
// logged and the previous one stays effective.
package watch

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"loopsmith/pkg/logx"
	"loopsmith/pkg/overlay"
)

const debounceDelay = 250 * time.Millisecond

// Watcher watches one overlay file. Delivery happens on the watcher's
// timer goroutine; the caller serializes what it does with the overlay.
type Watcher struct {
	path     string
	log      logx.Logger
	deliver  func(*overlay.Overlay)
	validate func(*overlay.Overlay) error

	mu       sync.Mutex
	timer    *time.Timer
	lastHash uint64
}

func New(path string, log logx.Logger, deliver func(*overlay.Overlay)) *Watcher {
	return &Watcher{path: path, log: log, deliver: deliver}
}

// SetValidator installs a validation hook run on every parsed overlay
// before delivery.
func (w *Watcher) SetValidator(fn func(*overlay.Overlay) error) {
	w.validate = fn
}

// Run watches the overlay's directory until ctx is done. The directory,
// not the file, is watched: editors replace files by rename, and the
// inode under a file watch silently goes stale.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	file := filepath.Base(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Debug("overlay watcher started", logx.String("dir", dir), logx.String("file", file))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("watch %s: event stream closed", dir)
			}
			// Compare by basename (robust across absolute/relative paths and OS quirks).
			if strings.EqualFold(filepath.Base(ev.Name), file) {
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
					w.debounce()
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("watch %s: error stream closed", dir)
			}
			if err == nil {
				continue
			}
			// Overflow means we may have missed events; reload once and keep going.
			if strings.Contains(strings.ToLower(err.Error()), "overflow") {
				w.log.Warn("overlay watch overflow; forcing reload", logx.Err(err))
				w.debounce()
				continue
			}
			w.log.Warn("overlay watch error", logx.Err(err))
		}
	}
}

// debounce coalesces the event bursts editors produce into one reload.
func (w *Watcher) debounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.log.Debug("overlay change detected; scheduling reload", logx.String("path", w.path))
	w.timer = time.AfterFunc(debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.log.Warn("overlay read failed", logx.String("path", w.path), logx.Err(err))
		return
	}

	// Skip redundant reloads when the content is unchanged.
	h := hashBytes(data)
	w.mu.Lock()
	unchanged := h != 0 && h == w.lastHash
	w.mu.Unlock()
	if unchanged {
		w.log.Debug("overlay unchanged; skipping reload", logx.String("path", w.path))
		return
	}

	o, err := overlay.Parse(data)
	if err != nil {
		w.log.Warn("overlay rejected", logx.String("path", w.path), logx.Err(err))
		return
	}
	if w.validate != nil {
		if err := w.validate(o); err != nil {
			w.log.Warn("overlay rejected", logx.String("path", w.path), logx.Err(err))
			return
		}
	}

	w.mu.Lock()
	w.lastHash = h
	w.mu.Unlock()
	w.deliver(o)
	w.log.Info("overlay reloaded", logx.String("path", w.path))
}

func hashBytes(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	h := fnv.New64a()
	_, _ = h.Write(b)
	return h.Sum64()
}
