package watcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var mediaExtensions = []string{".mp4", ".png", ".jpg", ".jpeg"}

func immediateConfig() *WatchConfig {
	return &WatchConfig{
		DebounceSeconds:   0,
		StableThresholdMs: 0,
		IgnorePatterns:    DefaultIgnorePatterns(),
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_NewVideo_TriggersRun(t *testing.T) {
	tmpDir := t.TempDir()

	var runs atomic.Int32
	handler := func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 1, nil
	}

	w := New(immediateConfig(), afero.NewOsFs(), mediaExtensions, handler)
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "VID_20230101.mp4"), []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	if !waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 1 }) {
		t.Fatal("expected a run after a new video appeared")
	}

	summary := w.Stop()
	if summary.Runs < 1 || summary.Renames != summary.Runs {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Failures != 0 {
		t.Errorf("expected no failures, got %d", summary.Failures)
	}
}

func TestWatcher_IgnoredFilesDoNotTriggerRuns(t *testing.T) {
	tmpDir := t.TempDir()

	var runs atomic.Int32
	w := New(immediateConfig(), afero.NewOsFs(), mediaExtensions, func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, nil
	})
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer w.Stop()

	for _, name := range []string{"VID_20230101.mp4.part", "VID_20230101.mp4.tmp", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	time.Sleep(200 * time.Millisecond)
	if runs.Load() != 0 {
		t.Errorf("expected no runs for ignored files, got %d", runs.Load())
	}
}

func TestWatcher_HandlerError_CountsAsFailure(t *testing.T) {
	tmpDir := t.TempDir()

	var runs atomic.Int32
	w := New(immediateConfig(), afero.NewOsFs(), mediaExtensions, func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, errors.New("boom")
	})
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "cover.png"), []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 1 }) {
		t.Fatal("expected a run after a new thumbnail appeared")
	}

	summary := w.Stop()
	if summary.Failures != summary.Runs || summary.Failures < 1 {
		t.Errorf("expected every run to fail, got %+v", summary)
	}
}

func TestWatcher_DebounceCoalescesBurst(t *testing.T) {
	tmpDir := t.TempDir()

	var runs atomic.Int32
	cfg := &WatchConfig{DebounceSeconds: 1, StableThresholdMs: 0}
	w := New(cfg, afero.NewOsFs(), mediaExtensions, func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, nil
	})
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer w.Stop()

	for _, name := range []string{"a_20230101.mp4", "b_20230101.mp4", "c_20230101.mp4"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if !waitFor(t, 3*time.Second, func() bool { return runs.Load() >= 1 }) {
		t.Fatal("expected a run after the debounce delay")
	}
	time.Sleep(200 * time.Millisecond)
	if runs.Load() != 1 {
		t.Errorf("expected burst to coalesce into 1 run, got %d", runs.Load())
	}
}

func TestWatcher_StartStop(t *testing.T) {
	tmpDir := t.TempDir()

	w := New(nil, afero.NewOsFs(), mediaExtensions, nil)
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	summary := w.Stop()
	if summary.Runs != 0 {
		t.Errorf("expected no runs, got %d", summary.Runs)
	}
	if summary.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", summary.Duration)
	}
}

func TestWatcher_StartWithInvalidDirectory(t *testing.T) {
	w := New(nil, afero.NewOsFs(), mediaExtensions, nil)
	if err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWatcher_NilConfigUsesDefaults(t *testing.T) {
	w := New(nil, afero.NewMemMapFs(), mediaExtensions, nil)
	if w.config.DebounceSeconds != 2 || w.config.StableThresholdMs != 1000 {
		t.Errorf("expected default config, got %+v", w.config)
	}
	if w.debouncer.delay != 2*time.Second {
		t.Errorf("expected 2s debounce, got %v", w.debouncer.delay)
	}
}

func TestWatcher_StopDropsPendingRuns(t *testing.T) {
	tmpDir := t.TempDir()

	var runs atomic.Int32
	var logBuf bytes.Buffer
	cfg := &WatchConfig{DebounceSeconds: 5, StableThresholdMs: 0}
	w := New(cfg, afero.NewOsFs(), mediaExtensions, func(ctx context.Context) (int, error) {
		runs.Add(1)
		return 0, nil
	}).WithLogger(zerolog.New(&logBuf))
	if err := w.Start(context.Background(), tmpDir); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "VID_20230101.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !waitFor(t, 2*time.Second, func() bool { return w.debouncer.PendingCount() == 1 }) {
		t.Fatal("expected a pending run")
	}

	summary := w.Stop()
	if summary.Runs != 0 || runs.Load() != 0 {
		t.Errorf("pending run must not execute after Stop, got %+v", summary)
	}
	if !strings.Contains(logBuf.String(), "dropping pending runs") {
		t.Errorf("expected pending runs to be logged, got %q", logBuf.String())
	}
}
