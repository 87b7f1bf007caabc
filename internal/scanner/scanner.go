// Package scanner handles directory listing for dayslot.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// NotADirectory indicates the path exists but is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FileEntry represents a file found during scanning.
type FileEntry struct {
	Name     string // Filename only
	FullPath string // Path joined with the scanned directory
}

// Scan lists the regular files directly inside directory, sorted by name
// in ascending byte order. Subdirectories are not descended into.
func Scan(fs afero.Fs, directory string) ([]FileEntry, error) {
	info, err := fs.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type: NotADirectory,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	infos, err := afero.ReadDir(fs, directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	files := make([]FileEntry, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		files = append(files, FileEntry{
			Name:     fi.Name(),
			FullPath: filepath.Join(directory, fi.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// FilterByExtension keeps the entries whose extension equals ext,
// compared case-insensitively. Order is preserved.
func FilterByExtension(entries []FileEntry, ext string) []FileEntry {
	want := strings.ToLower(ext)
	out := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(strings.ToLower(e.Name), want) {
			out = append(out, e)
		}
	}
	return out
}

// Names returns the filenames of entries in order.
func Names(entries []FileEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// ListMedia scans directory and returns the names of files carrying the
// media extension, in processing order.
func ListMedia(fs afero.Fs, directory, ext string) ([]string, error) {
	entries, err := Scan(fs, directory)
	if err != nil {
		return nil, err
	}
	return Names(FilterByExtension(entries, ext)), nil
}
