// Package matcher locates embedded calendar dates in filenames for dayslot.
package matcher

import "regexp"

// PatternName identifies one of the date pattern families.
type PatternName string

const (
	EpisodeTag     PatternName = "EPISODE_TAG"
	UnderscoreDash PatternName = "UNDERSCORE_DASH"
	Separated      PatternName = "SEPARATED"
	Compact        PatternName = "COMPACT"
)

// Pattern is a single date-matching strategy. Each pattern captures
// year, month and day in that order.
type Pattern struct {
	Name PatternName
	re   *regexp.Regexp
}

// NewPattern compiles a pattern. The expression must contain exactly
// three capture groups: year, month, day.
func NewPattern(name PatternName, expr string) Pattern {
	return Pattern{Name: name, re: regexp.MustCompile(expr)}
}

// Find searches s for the pattern anywhere in the string.
func (p Pattern) Find(s string) (year, month, day string, ok bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// DefaultPatterns returns the pattern families in priority order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		NewPattern(EpisodeTag, `S(\d{4})E(\d{2})(\d{2})`),
		NewPattern(UnderscoreDash, `(\d{4})_(\d{2})-(\d{2})`),
		NewPattern(Separated, `(\d{4})[-_](\d{2})[-_](\d{2})`),
		NewPattern(Compact, `(\d{4})(\d{2})(\d{2})`),
	}
}

var defaultPatterns = DefaultPatterns()

// MatchResult represents the result of matching a string against the date patterns.
type MatchResult struct {
	Matched bool
	Pattern PatternName
	Year    string
	Month   string
	Day     string
}

// Match evaluates s against the default patterns and returns the first
// family that matches. No calendar validation is done here: "20231399"
// is returned as-is.
func Match(s string) *MatchResult {
	return MatchPatterns(s, defaultPatterns)
}

// MatchPatterns is Match with an explicit, ordered pattern list.
func MatchPatterns(s string, patterns []Pattern) *MatchResult {
	for _, p := range patterns {
		if y, m, d, ok := p.Find(s); ok {
			return &MatchResult{
				Matched: true,
				Pattern: p.Name,
				Year:    y,
				Month:   m,
				Day:     d,
			}
		}
	}
	return &MatchResult{Matched: false}
}
