package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the default patterns for temporary files to ignore.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.download",
		"*.crdownload", // Chrome partial downloads
		"*.partial",
		".~*", // e.g. .~lock files
	}
}

// FileFilter decides which filesystem events can affect a run.
type FileFilter struct {
	patterns   []string
	extensions []string // lower-cased; empty means every extension
}

// NewFileFilter creates a FileFilter. If patterns is empty the default
// ignore patterns are used. Only files ending in one of extensions are
// let through; an empty list lets every file through.
func NewFileFilter(patterns []string, extensions []string) *FileFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	lowered := make([]string, len(extensions))
	for i, ext := range extensions {
		lowered[i] = strings.ToLower(ext)
	}
	return &FileFilter{
		patterns:   patterns,
		extensions: lowered,
	}
}

// ShouldIgnore reports whether an event for path can be dropped.
// Matching is on the base name only.
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
	}

	if len(f.extensions) == 0 {
		return false
	}
	lower := strings.ToLower(filename)
	for _, ext := range f.extensions {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}
	return true
}
