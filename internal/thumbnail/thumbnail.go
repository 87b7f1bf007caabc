// Package thumbnail detects video files that already have a sibling image for dayslot.
package thumbnail

import (
	"path/filepath"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/afero"
)

// DefaultExtensions returns the image extensions that count as thumbnails.
func DefaultExtensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}

// Detector answers whether a base name has a thumbnail in a directory.
// Answers are memoized for the lifetime of the Detector, so one Detector
// should be used per run.
type Detector struct {
	fs         afero.Fs
	directory  string
	extensions []string
	memo       *cache.Cache
}

// NewDetector creates a Detector for directory. If extensions is empty,
// DefaultExtensions is used.
func NewDetector(fs afero.Fs, directory string, extensions []string) *Detector {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}
	return &Detector{
		fs:         fs,
		directory:  directory,
		extensions: extensions,
		memo:       cache.New(cache.NoExpiration, 0),
	}
}

// HasThumbnail reports whether any file in the directory starts with base
// and ends with one of the thumbnail extensions. The extension match is
// case-sensitive.
func (d *Detector) HasThumbnail(base string) bool {
	if v, found := d.memo.Get(base); found {
		return v.(bool)
	}
	found := d.lookup(base)
	d.memo.Set(base, found, cache.NoExpiration)
	return found
}

func (d *Detector) lookup(base string) bool {
	prefix := filepath.Join(escapeGlob(d.directory), escapeGlob(base))
	for _, ext := range d.extensions {
		matches, err := afero.Glob(d.fs, prefix+"*"+escapeGlob(ext))
		if err != nil {
			continue
		}
		if len(matches) > 0 {
			return true
		}
	}
	return false
}

// escapeGlob quotes the filepath.Match metacharacters in s.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
