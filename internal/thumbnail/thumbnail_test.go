package thumbnail

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func newTestFs(t *testing.T, dir string, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	for _, f := range files {
		if err := afero.WriteFile(fs, filepath.Join(dir, f), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", f, err)
		}
	}
	return fs
}

func TestHasThumbnail(t *testing.T) {
	dir := "/videos"
	fs := newTestFs(t, dir,
		"clip.mp4", "clip.png",
		"trip.mp4", "trip-cover.jpg",
		"party.mp4", "party.jpeg",
		"upper.mp4", "upper.PNG",
		"other.mp4", "xother.png",
		"plain.mp4",
	)
	d := NewDetector(fs, dir, nil)

	tests := []struct {
		base string
		want bool
	}{
		{"clip", true},
		{"trip", true},  // prefix match, any suffix before the extension
		{"party", true}, // .jpeg
		{"upper", false},
		{"other", false}, // must start with the base name
		{"plain", false},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := d.HasThumbnail(tt.base); got != tt.want {
				t.Errorf("HasThumbnail(%q) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestHasThumbnail_GlobMetacharactersAreLiteral(t *testing.T) {
	dir := "/videos"
	fs := newTestFs(t, dir,
		"[draft] clip.mp4", "[draft] clip.png",
		"d clip.png",
		"what?.mp4",
		"whatX.png",
	)
	d := NewDetector(fs, dir, nil)

	if !d.HasThumbnail("[draft] clip") {
		t.Error("expected bracketed base name to find its thumbnail")
	}
	if d.HasThumbnail("what?") {
		t.Error("expected '?' to match only itself")
	}
}

func TestHasThumbnail_Memoized(t *testing.T) {
	dir := "/videos"
	fs := newTestFs(t, dir, "clip.mp4")
	d := NewDetector(fs, dir, nil)

	if d.HasThumbnail("clip") {
		t.Fatal("expected no thumbnail yet")
	}

	if err := afero.WriteFile(fs, filepath.Join(dir, "clip.png"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create thumbnail: %v", err)
	}

	// A Detector answers consistently for the whole run.
	if d.HasThumbnail("clip") {
		t.Error("expected memoized answer to persist within a Detector")
	}
	if !NewDetector(fs, dir, nil).HasThumbnail("clip") {
		t.Error("expected a fresh Detector to see the new thumbnail")
	}
}

func TestHasThumbnail_CustomExtensions(t *testing.T) {
	dir := "/videos"
	fs := newTestFs(t, dir, "clip.mp4", "clip.webp", "clip.png")
	d := NewDetector(fs, dir, []string{".webp"})

	if !d.HasThumbnail("clip") {
		t.Error("expected .webp thumbnail to be detected")
	}

	d = NewDetector(fs, dir, []string{".gif"})
	if d.HasThumbnail("clip") {
		t.Error("expected .png to be ignored when not configured")
	}
}
