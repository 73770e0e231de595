// Package watch re-runs a callback when files under a workspace change.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ethanolivertroy/depaudit/internal/workspace"
)

// DefaultDebounce is the quiet period before a burst of events triggers a run
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a workspace tree, skipping ignored directories
type Watcher struct {
	root     string
	ignore   *workspace.Matcher
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	skip     map[string]bool
}

// New creates a watcher on every non-ignored directory under root
func New(root string, ignore *workspace.Matcher, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{root: root, ignore: ignore, debounce: debounce, logger: logger, fsw: fsw, skip: make(map[string]bool)}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Skip ignores changes to the given files, such as a report the callback
// writes inside the watched tree. Call before Run.
func (w *Watcher) Skip(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		w.skip[filepath.Clean(p)] = true
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Watched returns the directories currently being watched
func (w *Watcher) Watched() []string {
	return w.fsw.WatchList()
}

// Run calls fn after each debounced burst of changes until ctx is done
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.ignored(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(ev.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			w.logger.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			fn()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) ignored(path string) bool {
	if len(w.skip) > 0 {
		abs := path
		if a, err := filepath.Abs(path); err == nil {
			abs = a
		}
		if w.skip[filepath.Clean(abs)] {
			return true
		}
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil || rel == "." {
		return false
	}
	return w.ignore.Match(filepath.ToSlash(rel), false)
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if rel, err := filepath.Rel(w.root, path); err == nil && rel != "." {
			if w.ignore.Match(filepath.ToSlash(rel), true) {
				return filepath.SkipDir
			}
		}
		return w.fsw.Add(path)
	})
}
