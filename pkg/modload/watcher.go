package modload

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/implement/pkg/log"
)

// DefaultDebounceDelay is how long the watcher waits after the last change
// before reporting.
const DefaultDebounceDelay = 100 * time.Millisecond

// WatcherConfig holds configuration options for a Watcher.
type WatcherConfig struct {
	// DebounceDelay coalesces bursts of file events (editors often write,
	// rename and chmod in quick succession).
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Logger receives watcher diagnostics. Default: no-op.
	Logger log.Logger
}

// Watcher invalidates cached modules when their files change and reports
// the changed paths once events settle.
type Watcher struct {
	mu sync.Mutex

	loader        *Loader
	debounceDelay time.Duration
	onChange      func(paths []string)
	logger        log.Logger

	fsw      *fsnotify.Watcher
	tracked  map[string]bool
	dirs     map[string]bool
	pending  map[string]bool
	debounce *time.Timer
	stopped  bool

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	flushes sync.WaitGroup
}

// NewWatcher creates a watcher over the modules cached by loader. onChange
// runs on a timer goroutine after the affected entries were invalidated.
func NewWatcher(loader *Loader, cfg WatcherConfig, onChange func(paths []string)) *Watcher {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	if onChange == nil {
		onChange = func([]string) {}
	}
	return &Watcher{
		loader:        loader,
		debounceDelay: cfg.DebounceDelay,
		onChange:      onChange,
		logger:        cfg.Logger,
		tracked:       make(map[string]bool),
		dirs:          make(map[string]bool),
		pending:       make(map[string]bool),
	}
}

// Start begins watching the directories of every currently cached module.
// Modules cached later are picked up after each change notification.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("modload: create watcher: %w", err)
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	if err := w.sync(); err != nil {
		fsw.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.watchLoop(watchCtx)

	w.logger.Info("module watcher started", log.Strings("files", w.Tracked()))
	return nil
}

// Stop ends the watch loop and releases the underlying watcher. A pending
// notification is dropped and one already running completes before Stop
// returns, so onChange never runs after Stop.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	w.stopped = true
	w.stopDebounce()
	w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.flushes.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// Tracked returns the files currently being watched, sorted.
func (w *Watcher) Tracked() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return sortedKeys(w.tracked)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	w.mu.Lock()
	events, errs := w.fsw.Events, w.fsw.Errors
	w.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.handle(filepath.Clean(event.Name))

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.logger.Warn("module watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) handle(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || !w.tracked[file] {
		return
	}
	w.loader.Invalidate(file)
	w.pending[file] = true
	w.logger.Debug("module changed", log.Path(file))

	w.stopDebounce()
	w.flushes.Add(1)
	w.debounce = time.AfterFunc(w.debounceDelay, w.flush)
}

// stopDebounce cancels a scheduled flush. Callers hold w.mu.
func (w *Watcher) stopDebounce() {
	if w.debounce != nil && w.debounce.Stop() {
		w.flushes.Done()
	}
	w.debounce = nil
}

func (w *Watcher) flush() {
	defer w.flushes.Done()

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	paths := sortedKeys(w.pending)
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	w.onChange(paths)

	if err := w.sync(); err != nil {
		w.logger.Warn("module watcher resync failed", log.Err(err))
	}
}

// sync tracks every cached module and watches its directory.
func (w *Watcher) sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsw == nil {
		return nil
	}
	for _, file := range w.loader.Cached() {
		w.tracked[file] = true
		dir := filepath.Dir(file)
		if w.dirs[dir] {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("modload: watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
