package output

import (
	"dayslot/internal/resolver"
)

// Report prints the outcome for one file. Renames and skips are always
// shown; kept files only in verbose mode. Each call advances the progress
// indicator.
func (o *Output) Report(d resolver.Decision) {
	switch d.Action {
	case resolver.SkipThumbnail:
		o.Info("Skipping %s (thumbnail detected)", d.Name)
	case resolver.SkipNoDate:
		o.Info("No date found in %s, skipping", d.Name)
	case resolver.KeepUnique:
		o.Verbose("Processing: %s", d.Name)
		o.Verbose("  Found date MMDD=%s YEAR=%s", d.Key.MMDD, d.Key.Year)
		o.Verbose("  Unique MMDD, keeping original")
	case resolver.KeepFirst:
		o.Verbose("Processing: %s", d.Name)
		o.Verbose("  Found date MMDD=%s YEAR=%s", d.Key.MMDD, d.Key.Year)
		o.Verbose("  First duplicate instance, keeping original")
	case resolver.Offset:
		o.Verbose("Processing: %s", d.Name)
		o.Verbose("  Found date MMDD=%s YEAR=%s", d.Key.MMDD, d.Key.Year)
		o.Verbose("  Duplicate instance, assigned new MMDD=%s", d.NewMMDD)
		o.Info("Renamed: %s -> %s", d.Name, d.NewName)
	}
	o.Advance()
}
