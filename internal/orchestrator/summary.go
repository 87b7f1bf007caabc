package orchestrator

import (
	"fmt"
	"time"

	"dayslot/internal/organizer"
	"dayslot/internal/resolver"
)

// Summary contains statistics from one pass over a directory.
type Summary struct {
	Total            int             // Candidate media files listed
	Processed        int             // Files a decision was reached for
	Kept             int             // Unique dates plus first duplicates
	Renamed          int             // Files given a new MMDD
	SkippedThumbnail int             // Files with a thumbnail next to them
	SkippedNoDate    int             // Files with no recognizable date
	Renames          []organizer.Move
	Duration         time.Duration
}

// GenerateSummary builds a Summary from a resolver result, which may be
// partial or nil if the run failed.
func GenerateSummary(total int, result *resolver.Result, duration time.Duration) *Summary {
	summary := &Summary{
		Total:    total,
		Duration: duration,
	}
	if result == nil {
		return summary
	}

	summary.Processed = len(result.Decisions)
	summary.Kept = result.Count(resolver.KeepUnique) + result.Count(resolver.KeepFirst)
	summary.Renamed = result.Count(resolver.Offset)
	summary.SkippedThumbnail = result.Count(resolver.SkipThumbnail)
	summary.SkippedNoDate = result.Count(resolver.SkipNoDate)
	return summary
}

// Skipped returns the number of files left alone without a date decision.
func (s *Summary) Skipped() int {
	return s.SkippedThumbnail + s.SkippedNoDate
}

// Incomplete returns true if the run stopped before deciding every file.
func (s *Summary) Incomplete() bool {
	return s.Processed < s.Total
}

// PrintSummary returns a formatted summary string.
func (s *Summary) PrintSummary() string {
	return fmt.Sprintf("Processed %d of %d files: %d kept, %d renamed, %d skipped (%d thumbnail, %d no date) in %s",
		s.Processed, s.Total, s.Kept, s.Renamed, s.Skipped(),
		s.SkippedThumbnail, s.SkippedNoDate, s.Duration.Round(time.Millisecond))
}
