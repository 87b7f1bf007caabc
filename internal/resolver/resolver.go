// Package resolver reassigns colliding month-day keys in video filenames for dayslot.
//
// A run makes two passes over the same sorted file list. The first pass
// counts how many eligible files carry each MMDD key. The second pass keeps
// every unique key and the first file of every duplicated key, and moves
// each later duplicate to the nearest day that nobody holds yet.
package resolver

import (
	"fmt"

	"dayslot/internal/classifier"
	"dayslot/internal/dateparser"
	"dayslot/internal/normalizer"
)

// ThumbnailChecker reports whether a base name has a thumbnail beside it.
type ThumbnailChecker interface {
	HasThumbnail(base string) bool
}

// Renamer renames a file within the working directory.
type Renamer interface {
	Rename(oldName, newName string) error
}

// Reporter receives one decision per processed file.
type Reporter interface {
	Report(d Decision)
}

// Action is the classification of a file in the resolving pass.
type Action string

const (
	SkipThumbnail Action = "SKIP_THUMBNAIL"
	SkipNoDate    Action = "SKIP_NO_DATE"
	KeepUnique    Action = "KEEP_UNIQUE"
	KeepFirst     Action = "KEEP_FIRST"
	Offset        Action = "OFFSET"
)

// Decision records what happened to a single file.
type Decision struct {
	Action  Action
	Name    string
	Key     dateparser.DateKey // zero for skipped files
	NewName string             // OFFSET only
	NewMMDD string             // OFFSET only
}

// IsRename returns true if the decision renamed the file.
func (d Decision) IsRename() bool {
	return d.Action == Offset
}

// ResolveErrorType represents the type of fatal resolving error.
type ResolveErrorType string

const (
	InvalidDate  ResolveErrorType = "INVALID_DATE"
	NoFreeSlot   ResolveErrorType = "NO_FREE_SLOT"
	RenameFailed ResolveErrorType = "RENAME_FAILED"
)

// ResolveError aborts a run. File names the file being processed.
type ResolveError struct {
	Type ResolveErrorType
	File string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Type, e.File, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// State is the accumulator of the resolving pass. It depends on iteration
// order and must not be shared between runs.
type State struct {
	Seen map[string]int // MMDD -> files visited so far with that key
	Used KeySet         // keys claimed by earlier files, kept or assigned
}

// NewState creates an empty accumulator.
func NewState() *State {
	return &State{
		Seen: make(map[string]int),
		Used: make(KeySet),
	}
}

// Result is the outcome of a run.
type Result struct {
	Tally     *Tally
	Decisions []Decision
}

// Count returns how many decisions carry action.
func (r *Result) Count(action Action) int {
	n := 0
	for _, d := range r.Decisions {
		if d.Action == action {
			n++
		}
	}
	return n
}

type nopReporter struct{}

func (nopReporter) Report(Decision) {}

// Resolver runs both passes against its collaborators.
type Resolver struct {
	thumbs   ThumbnailChecker
	renamer  Renamer
	reporter Reporter
}

// New creates a Resolver. A nil reporter discards decisions.
func New(thumbs ThumbnailChecker, renamer Renamer, reporter Reporter) *Resolver {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Resolver{
		thumbs:   thumbs,
		renamer:  renamer,
		reporter: reporter,
	}
}

// Resolve processes files, which must already be in canonical order.
// It stops at the first fatal error; decisions made and renames applied
// before that point are kept in the returned Result.
func (r *Resolver) Resolve(files []string) (*Result, error) {
	tally := Count(files, r.thumbs)
	forbidden := tally.Forbidden()
	state := NewState()

	result := &Result{
		Tally:     tally,
		Decisions: make([]Decision, 0, len(files)),
	}

	for _, name := range files {
		d, err := r.Step(state, tally, forbidden, name)
		if err != nil {
			return result, err
		}
		result.Decisions = append(result.Decisions, d)
		r.reporter.Report(d)
	}

	return result, nil
}

// Step classifies one file and applies its rename, if any.
func (r *Resolver) Step(state *State, tally *Tally, forbidden KeySet, name string) (Decision, error) {
	record := classifier.NewRecord(name)

	if r.thumbs.HasThumbnail(record.Base) {
		return Decision{Action: SkipThumbnail, Name: name}, nil
	}

	key, ok := tally.Dates[name]
	if !ok {
		return Decision{Action: SkipNoDate, Name: name}, nil
	}

	state.Seen[key.MMDD]++

	if tally.Counts[key.MMDD] == 1 {
		state.Used.Add(key.MMDD)
		return Decision{Action: KeepUnique, Name: name, Key: key}, nil
	}

	if state.Seen[key.MMDD] == 1 {
		state.Used.Add(key.MMDD)
		return Decision{Action: KeepFirst, Name: name, Key: key}, nil
	}

	origin, err := key.Date()
	if err != nil {
		return Decision{}, &ResolveError{Type: InvalidDate, File: name, Err: err}
	}

	month, day, err := FindFreeSlot(origin, forbidden.Union(state.Used))
	if err != nil {
		return Decision{}, &ResolveError{Type: NoFreeSlot, File: name, Err: err}
	}

	newName := normalizer.EpisodeName(key.Year, month, day, normalizer.Title(name), record.Ext)
	if err := r.renamer.Rename(name, newName); err != nil {
		return Decision{}, &ResolveError{Type: RenameFailed, File: name, Err: err}
	}

	state.Used.Add(month + day)

	return Decision{
		Action:  Offset,
		Name:    name,
		Key:     key,
		NewName: newName,
		NewMMDD: month + day,
	}, nil
}
