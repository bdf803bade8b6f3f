package preview

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sissigen/internal/config"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/metrics"
	"git.home.luguber.info/inful/sissigen/internal/site"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 300 * time.Millisecond

// SiteBuilder runs one full build.
type SiteBuilder interface {
	Build(ctx context.Context) (*site.BuildReport, error)
}

// Watcher rebuilds the site whenever a build input changes. Every rebuild is
// a full build; at most one runs at a time and bursts coalesce into one.
type Watcher struct {
	layout   config.Layout
	builder  SiteBuilder
	recorder metrics.Recorder
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	lastErr error
	builds  int
}

// NewWatcher returns a Watcher for layout that calls builder on changes.
func NewWatcher(layout config.Layout, builder SiteBuilder) *Watcher {
	return &Watcher{
		layout:   layout,
		builder:  builder,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		debounce: DefaultDebounce,
	}
}

// WithRecorder sets the metrics recorder for rebuild triggers.
func (w *Watcher) WithRecorder(r metrics.Recorder) *Watcher {
	if r != nil {
		w.recorder = r
	}
	return w
}

// WithLogger sets the logger.
func (w *Watcher) WithLogger(l *slog.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// WithDebounce overrides DefaultDebounce.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Status reports the number of rebuilds run and the last rebuild error.
func (w *Watcher) Status() (builds int, lastErr error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.builds, w.lastErr
}

// Run watches the build inputs until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.RuntimeError("failed to create file watcher").WithCause(err).Build()
	}
	defer func() { _ = fw.Close() }()

	for _, dir := range []string{w.layout.PostsDir(), w.layout.TemplatesDir(), w.layout.StaticDir()} {
		w.addDirsRecursive(fw, dir)
	}
	// index.md is watched through its parent so editors that replace the
	// file on save keep triggering; other root entries are filtered out.
	if err := fw.Add(w.layout.Root); err != nil {
		w.logger.Warn("watch add failed", logfields.Path(w.layout.Root), logfields.Error(err))
	}

	rebuildReq := make(chan string, 1)
	trigger := w.debouncer(ctx, rebuildReq)
	done := w.startRebuildWorker(ctx, rebuildReq)

	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, ev, trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

// debouncer returns a trigger that requests a rebuild once events have been
// quiet for the debounce interval. The most recent reason wins.
func (w *Watcher) debouncer(ctx context.Context, rebuildReq chan string) func(reason string) {
	var mu sync.Mutex
	var timer *time.Timer
	return func(reason string) {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			if ctx.Err() != nil {
				return
			}
			select {
			case rebuildReq <- reason:
			default:
			}
		})
	}
}

// startRebuildWorker runs rebuilds sequentially. A request arriving while a
// build runs sits in the buffered channel and runs next.
func (w *Watcher) startRebuildWorker(ctx context.Context, rebuildReq chan string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case reason := <-rebuildReq:
				w.rebuild(ctx, reason)
			}
		}
	}()
	return done
}

func (w *Watcher) rebuild(ctx context.Context, reason string) {
	w.recorder.IncRebuildTrigger(reason)
	w.logger.Info("Change detected; rebuilding site", slog.String("reason", reason))
	_, err := w.builder.Build(ctx)

	w.mu.Lock()
	w.builds++
	w.lastErr = err
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("rebuild failed", logfields.Error(err))
	}
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event, trigger func(string)) {
	reason, ok := w.classify(ev.Name)
	if !ok || shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			w.addDirsRecursive(fw, ev.Name)
		}
	}
	w.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger(reason)
}

// classify maps a changed path to the input it belongs to. Paths outside
// the build inputs (including the generated output) are rejected.
func (w *Watcher) classify(path string) (string, bool) {
	clean := filepath.Clean(path)
	if clean == filepath.Clean(w.layout.IndexSource()) {
		return config.IndexSourceName, true
	}
	inputs := map[string]string{
		w.layout.PostsDir():     config.PostsDirName,
		w.layout.TemplatesDir(): config.TemplatesDirName,
		w.layout.StaticDir():    config.StaticDirName,
	}
	for dir, name := range inputs {
		dir = filepath.Clean(dir)
		if clean == dir || strings.HasPrefix(clean, dir+string(filepath.Separator)) {
			return name, true
		}
	}
	return "", false
}

func (w *Watcher) addDirsRecursive(fw *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				w.logger.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// hidden files, including .gitkeep and emacs lock files (.#name)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")) {
		return true
	}
	return base == "Thumbs.db"
}
