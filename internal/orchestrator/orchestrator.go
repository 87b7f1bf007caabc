// Package orchestrator wires scanning, thumbnail detection and the two-pass
// resolver into a single run over one directory.
package orchestrator

import (
	"fmt"
	"time"

	"github.com/spf13/afero"

	"dayslot/internal/config"
	"dayslot/internal/organizer"
	"dayslot/internal/output"
	"dayslot/internal/resolver"
	"dayslot/internal/scanner"
	"dayslot/internal/thumbnail"
)

// Orchestrator runs the renamer for one configuration.
type Orchestrator struct {
	fs     afero.Fs
	config *config.Configuration
	out    *output.Output
}

// New creates an Orchestrator. out may be nil, in which case nothing is printed.
func New(fs afero.Fs, cfg *config.Configuration, out *output.Output) *Orchestrator {
	return &Orchestrator{
		fs:     fs,
		config: cfg,
		out:    out,
	}
}

// Run lists the candidate files, resolves collisions and renames files on
// disk. When a fatal error stops the run, the returned Summary still
// describes the decisions made up to that point.
func (o *Orchestrator) Run() (*Summary, error) {
	renamer := organizer.NewFsRenamer(o.fs, o.config.Directory)
	summary, err := o.execute(renamer, o.reporter())
	if summary != nil {
		summary.Renames = renamer.Applied()
	}
	return summary, err
}

func (o *Orchestrator) execute(renamer resolver.Renamer, reporter resolver.Reporter) (*Summary, error) {
	start := time.Now()

	files, err := scanner.ListMedia(o.fs, o.config.Directory, o.config.MediaExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", o.config.Directory, err)
	}

	detector := thumbnail.NewDetector(o.fs, o.config.Directory, o.config.ThumbnailExtensions)
	r := resolver.New(detector, renamer, reporter)

	if o.out != nil {
		o.out.StartProgress(len(files))
		defer o.out.EndProgress()
	}

	result, err := r.Resolve(files)
	return GenerateSummary(len(files), result, time.Since(start)), err
}

// reporter avoids handing the resolver a typed nil.
func (o *Orchestrator) reporter() resolver.Reporter {
	if o.out == nil {
		return nil
	}
	return o.out
}
