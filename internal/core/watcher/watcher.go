// # internal/core/watcher/watcher.go
package watcher

import (
	"clangq/internal/shared/observability"
	"clangq/internal/shared/util"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// DefaultExtensions are the C family source and header suffixes.
var DefaultExtensions = []string{".c", ".h", ".cc", ".cpp", ".cxx", ".hh", ".hpp", ".hxx", ".inc", ".m", ".mm"}

// Watcher reports batches of changed C family sources. Batches are
// debounced and then throttled by the limiter, so onChange runs at most at
// the limiter's rate.
type Watcher struct {
	fsWatcher   *fsnotify.Watcher
	debounce    time.Duration
	limiter     *util.Limiter
	excludeDirs []glob.Glob
	extFilters  map[string]bool
	tracked     map[string]bool
	onChange    func([]string)
	callbackMu  sync.Mutex

	pending   map[string]time.Time
	pendingMu sync.Mutex
	timer     *time.Timer
	closed    bool
	// readyAt is when the limiter token held for the next flush becomes
	// usable. Zero when no token is held.
	readyAt time.Time
}

func NewWatcher(debounce time.Duration, excludeDirs []string, limiter *util.Limiter, onChange func([]string)) (*Watcher, error) {
	if onChange == nil {
		return nil, os.ErrInvalid
	}

	compiledDirs := make([]glob.Glob, 0, len(excludeDirs))
	for _, pattern := range excludeDirs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		compiledDirs = append(compiledDirs, g)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if limiter == nil {
		limiter = util.NewLimiter(0, 1)
	}

	w := &Watcher{
		fsWatcher:   fsw,
		debounce:    debounce,
		limiter:     limiter,
		excludeDirs: compiledDirs,
		tracked:     make(map[string]bool),
		onChange:    onChange,
		pending:     make(map[string]time.Time),
	}
	w.SetExtensions(DefaultExtensions)
	return w, nil
}

// SetExtensions replaces the suffixes that count as sources in watched
// directories. Explicitly watched files are reported regardless.
func (w *Watcher) SetExtensions(extensions []string) {
	extFilter := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		extFilter[normalized] = true
	}
	w.pendingMu.Lock()
	w.extFilters = extFilter
	w.pendingMu.Unlock()
}

// Watch starts watching paths. A file path watches its directory and
// tracks the file; a directory is watched recursively.
func (w *Watcher) Watch(paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := w.watchRecursive(path); err != nil {
				return err
			}
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		w.pendingMu.Lock()
		w.tracked[filepath.Clean(abs)] = true
		w.pendingMu.Unlock()
		if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	go w.run()
	return nil
}

func (w *Watcher) watchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && w.shouldExcludeDir(path) {
				return filepath.SkipDir
			}
			return w.fsWatcher.Add(path)
		}

		return nil
	})
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			observability.WatcherEventsTotal.Inc()

			if event.Op&fsnotify.Create == fsnotify.Create {
				info, err := os.Stat(event.Name)
				if err == nil && info.IsDir() {
					if !w.shouldExcludeDir(event.Name) {
						if err := w.watchRecursive(event.Name); err != nil {
							slog.Warn("failed to watch new directory", "path", event.Name, "error", err)
						}
					}
					continue
				}
			}

			if !w.isSource(event.Name) {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename {
				w.scheduleChange(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) scheduleChange(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	if w.closed {
		return
	}

	w.pending[path] = time.Now()
	d := w.debounce
	if wait := time.Until(w.readyAt); wait > d {
		d = wait
	}
	w.resetTimerLocked(d)
}

func (w *Watcher) resetTimerLocked(d time.Duration) {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(d, w.flushChanges)
}

func (w *Watcher) flushChanges() {
	w.pendingMu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	if w.readyAt.IsZero() {
		if delay := w.limiter.Delay(); delay > 0 {
			// The token is ours once the delay passes; keep accumulating
			// paths until then.
			observability.WatcherThrottledTotal.Inc()
			slog.Debug("reparse throttled", "delay", delay, "pending", len(w.pending))
			w.readyAt = time.Now().Add(delay)
			w.resetTimerLocked(delay)
			w.pendingMu.Unlock()
			return
		}
	} else if wait := time.Until(w.readyAt); wait > 0 {
		w.resetTimerLocked(wait)
		w.pendingMu.Unlock()
		return
	}
	w.readyAt = time.Time{}
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]time.Time)
	w.pendingMu.Unlock()

	sort.Strings(paths)
	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()
	w.onChange(paths)
}

func (w *Watcher) shouldExcludeDir(path string) bool {
	normalized := util.NormalizePatternPath(path)
	base := filepath.Base(path)
	for _, g := range w.excludeDirs {
		if g.Match(normalized) || g.Match(base) {
			return true
		}
	}
	return false
}

func (w *Watcher) isSource(path string) bool {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	if w.tracked[filepath.Clean(path)] {
		return true
	}
	return w.extFilters[strings.ToLower(filepath.Ext(path))]
}

func (w *Watcher) Close() error {
	w.pendingMu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()
	return w.fsWatcher.Close()
}
