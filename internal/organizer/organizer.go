// Package organizer applies rename requests for dayslot.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// MoveErrorType represents the type of move error.
type MoveErrorType string

const (
	// SourceNotFound indicates the source file does not exist.
	SourceNotFound MoveErrorType = "SOURCE_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied MoveErrorType = "PERMISSION_DENIED"
	// RenameFailed covers any other rename failure.
	RenameFailed MoveErrorType = "RENAME_FAILED"
)

// MoveError represents an error that occurred while renaming a file.
type MoveError struct {
	Type MoveErrorType
	Path string
	Err  error
}

func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Move is a single rename request, by filename within the directory.
type Move struct {
	OldName string
	NewName string
}

// FsRenamer renames files inside one directory of an afero filesystem.
// The destination is not checked beforehand; an existing file at the new
// name is handled however the underlying filesystem handles it.
type FsRenamer struct {
	fs        afero.Fs
	directory string
	applied   []Move
}

// NewFsRenamer creates a renamer for directory.
func NewFsRenamer(fs afero.Fs, directory string) *FsRenamer {
	return &FsRenamer{fs: fs, directory: directory}
}

// Rename renames oldName to newName inside the directory.
func (r *FsRenamer) Rename(oldName, newName string) error {
	src := filepath.Join(r.directory, oldName)
	dst := filepath.Join(r.directory, newName)

	if err := r.fs.Rename(src, dst); err != nil {
		switch {
		case os.IsNotExist(err):
			return &MoveError{Type: SourceNotFound, Path: src, Err: err}
		case os.IsPermission(err):
			return &MoveError{Type: PermissionDenied, Path: src, Err: err}
		default:
			return &MoveError{Type: RenameFailed, Path: src, Err: err}
		}
	}

	r.applied = append(r.applied, Move{OldName: oldName, NewName: newName})
	return nil
}

// Applied returns the renames performed so far, in order.
func (r *FsRenamer) Applied() []Move {
	out := make([]Move, len(r.applied))
	copy(out, r.applied)
	return out
}

// Recorder collects rename requests without touching any filesystem.
type Recorder struct {
	Moves []Move
}

// Rename records the request and always succeeds.
func (r *Recorder) Rename(oldName, newName string) error {
	r.Moves = append(r.Moves, Move{OldName: oldName, NewName: newName})
	return nil
}
