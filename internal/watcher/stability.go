package watcher

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/afero"
)

// ErrFileNotFound is returned when the file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileUnstable is returned when the file does not stabilize within the timeout.
var ErrFileUnstable = errors.New("file did not stabilize within timeout")

// StabilityChecker waits for a file's size to stop changing, so a video
// that is still being copied in is not picked up half-written.
type StabilityChecker struct {
	fs        afero.Fs
	threshold time.Duration // Time the file size must remain unchanged
	timeout   time.Duration // Maximum time to wait for stability
	interval  time.Duration // How often to check file size
}

// NewStabilityChecker creates a StabilityChecker with a 30 second timeout
// and a polling interval of a quarter of the threshold (at least 50ms).
func NewStabilityChecker(fs afero.Fs, threshold time.Duration) *StabilityChecker {
	interval := threshold / 4
	if interval < 50*time.Millisecond {
		interval = 50 * time.Millisecond
	}
	return NewStabilityCheckerWithOptions(fs, threshold, 30*time.Second, interval)
}

// NewStabilityCheckerWithOptions creates a StabilityChecker with custom timeout and interval.
func NewStabilityCheckerWithOptions(fs afero.Fs, threshold, timeout, interval time.Duration) *StabilityChecker {
	return &StabilityChecker{
		fs:        fs,
		threshold: threshold,
		timeout:   timeout,
		interval:  interval,
	}
}

// WaitForStable blocks until the size of path has not changed for the
// threshold duration. It returns ErrFileNotFound if the file disappears,
// ErrFileUnstable on timeout, or the context's error if ctx is cancelled.
func (s *StabilityChecker) WaitForStable(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	lastSize, err := s.fileSize(path)
	if err != nil {
		return err
	}
	lastChange := time.Now()

	if s.threshold <= 0 {
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return ErrFileUnstable
			}
			return ctx.Err()
		case <-ticker.C:
			size, err := s.fileSize(path)
			if err != nil {
				return err
			}
			if size != lastSize {
				lastSize = size
				lastChange = time.Now()
			} else if time.Since(lastChange) >= s.threshold {
				return nil
			}
		}
	}
}

func (s *StabilityChecker) fileSize(path string) (int64, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
