// Package watcher re-runs the renamer whenever new videos or thumbnails land
// in the watched directory.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// WatchConfig contains watcher settings.
type WatchConfig struct {
	DebounceSeconds   int      // Quiet period before a run (default: 2)
	StableThresholdMs int      // File size stability threshold in milliseconds (default: 1000)
	IgnorePatterns    []string // Glob patterns to ignore (e.g., "*.tmp", "*.part", "*.download")
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		DebounceSeconds:   2,
		StableThresholdMs: 1000,
		IgnorePatterns:    DefaultIgnorePatterns(),
	}
}

// WatchSummary contains stats from the watch session.
type WatchSummary struct {
	Runs     int
	Renames  int
	Failures int
	Duration time.Duration
}

// RunHandler performs one complete pass over the directory and returns the
// number of files it renamed.
type RunHandler func(ctx context.Context) (renamed int, err error)

// Watcher monitors a single directory and triggers serialized runs.
type Watcher struct {
	config     *WatchConfig
	fs         afero.Fs
	handler    RunHandler
	fileFilter *FileFilter
	stability  *StabilityChecker
	debouncer  *Debouncer
	logger     zerolog.Logger

	fsWatcher *fsnotify.Watcher
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	wg        sync.WaitGroup
	startTime time.Time

	runMu sync.Mutex // one run at a time

	mu       sync.Mutex
	runs     int
	renames  int
	failures int
}

// New creates a Watcher. If config is nil, default configuration is used.
// Events are only considered for files ending in one of extensions.
func New(config *WatchConfig, fs afero.Fs, extensions []string, handler RunHandler) *Watcher {
	if config == nil {
		config = DefaultWatchConfig()
	}
	w := &Watcher{
		config:     config,
		fs:         fs,
		handler:    handler,
		fileFilter: NewFileFilter(config.IgnorePatterns, extensions),
		stability:  NewStabilityChecker(fs, time.Duration(config.StableThresholdMs)*time.Millisecond),
		logger:     zerolog.Nop(),
		done:       make(chan struct{}),
	}
	w.debouncer = NewDebouncer(time.Duration(config.DebounceSeconds)*time.Second, w.trigger)
	return w
}

// WithLogger sets the logger used for watch diagnostics.
func (w *Watcher) WithLogger(logger zerolog.Logger) *Watcher {
	w.logger = logger
	return w
}

// Start begins watching dir. The watcher runs until Stop is called or ctx
// is cancelled; an in-flight stability wait is aborted either way.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(absDir); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.ctx, w.cancel = context.WithCancel(ctx)
	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	w.logger.Info().Str("dir", absDir).Msg("watching")
	return nil
}

// Stop shuts down the watcher, waits for any running pass to finish and
// returns a summary of the session.
func (w *Watcher) Stop() *WatchSummary {
	if n := w.debouncer.PendingCount(); n > 0 {
		w.logger.Debug().Int("pending", n).Msg("dropping pending runs")
	}
	w.debouncer.CancelAll()
	if w.cancel != nil {
		w.cancel()
	}
	close(w.done)
	w.wg.Wait()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	// A debounced run may have started just before CancelAll.
	w.runMu.Lock()
	defer w.runMu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	return &WatchSummary{
		Runs:     w.runs,
		Renames:  w.renames,
		Failures: w.failures,
		Duration: time.Since(w.startTime),
	}
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// A rename into the directory arrives as Create for the new name.
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				w.handleFileEvent(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleFileEvent(path string) {
	if w.fileFilter.ShouldIgnore(path) {
		w.logger.Debug().Str("file", path).Msg("ignored")
		return
	}
	w.debouncer.Add(filepath.Dir(path), path)
}

// trigger is the debouncer callback: it waits for the last file that
// arrived in dir to settle and then performs one complete run.
func (w *Watcher) trigger(dir, path string) {
	ctx := w.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		return
	}

	if err := w.stability.WaitForStable(ctx, path); err != nil {
		if errors.Is(err, ErrFileNotFound) {
			// Renamed away by an earlier run or removed; the directory
			// may still need a pass.
			w.logger.Debug().Str("file", path).Msg("trigger file gone")
		} else {
			w.logger.Warn().Err(err).Str("file", path).Msg("file not stable, skipping run")
			return
		}
	}

	w.runMu.Lock()
	defer w.runMu.Unlock()

	if ctx.Err() != nil || w.handler == nil {
		return
	}

	renamed, err := w.handler(ctx)

	w.mu.Lock()
	w.runs++
	w.renames += renamed
	if err != nil {
		w.failures++
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("run failed")
		return
	}
	w.logger.Info().Str("dir", dir).Int("renamed", renamed).Msg("run complete")
}
