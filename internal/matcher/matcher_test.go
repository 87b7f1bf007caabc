package matcher

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMatch_PatternFamilies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		matched bool
		pattern PatternName
		digits  string
	}{
		{"episode tag", "S2023E0101 - Intro", true, EpisodeTag, "20230101"},
		{"episode tag mid-string", "show S2021E1231 final", true, EpisodeTag, "20211231"},
		{"underscore dash", "VID_2022_07-04 fireworks", true, UnderscoreDash, "20220704"},
		{"separated dashes", "clip 2020-02-29", true, Separated, "20200229"},
		{"separated underscores", "clip_2020_03_01", true, Separated, "20200301"},
		{"separated mixed", "2019-11_05 trip", true, Separated, "20191105"},
		{"compact", "PXL_20240115_093000", true, Compact, "20240115"},
		{"no date", "randomclip", false, "", ""},
		{"too few digits", "clip 2023-1-1", false, "", ""},
		{"invalid month still matched", "20231399", true, Compact, "20231399"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Match(tt.input)
			if result.Matched != tt.matched {
				t.Fatalf("Match(%q).Matched = %v, want %v", tt.input, result.Matched, tt.matched)
			}
			if result.Pattern != tt.pattern {
				t.Errorf("Match(%q).Pattern = %q, want %q", tt.input, result.Pattern, tt.pattern)
			}
			if got := digits(result); got != tt.digits {
				t.Errorf("Match(%q) date = %q, want %q", tt.input, got, tt.digits)
			}
		})
	}
}

// digits joins the captured groups as YYYYMMDD.
func digits(r *MatchResult) string {
	return r.Year + r.Month + r.Day
}

func TestMatch_PriorityOrder(t *testing.T) {
	// The episode tag wins even when a separated date appears earlier.
	result := Match("2019-05-05 S2023E0101")
	if result.Pattern != EpisodeTag {
		t.Fatalf("expected EPISODE_TAG to win, got %q", result.Pattern)
	}
	if digits(result) != "20230101" {
		t.Errorf("expected 20230101, got %q", digits(result))
	}

	// Underscore-dash is tried before the generic separated form.
	result = Match("2018-01-01 and 2019_02-03")
	if result.Pattern != UnderscoreDash {
		t.Fatalf("expected UNDERSCORE_DASH to win, got %q", result.Pattern)
	}
	if digits(result) != "20190203" {
		t.Errorf("expected 20190203, got %q", digits(result))
	}
}

func TestMatchPatterns_CustomOrder(t *testing.T) {
	patterns := []Pattern{
		NewPattern(Compact, `(\d{4})(\d{2})(\d{2})`),
	}
	result := MatchPatterns("S2023E0101", patterns)
	if !result.Matched || result.Pattern != Compact {
		t.Fatalf("expected compact match, got %+v", result)
	}

	result = MatchPatterns("S2023E0101", nil)
	if result.Matched {
		t.Errorf("expected no match with empty pattern list, got %+v", result)
	}
}

func TestEpisodeTagRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("S<year>E<mmdd> tags are extracted verbatim", prop.ForAll(
		func(year, month, day int, title string) bool {
			name := fmt.Sprintf("S%04dE%02d%02d - %s", year, month, day, title)
			result := Match(name)
			want := fmt.Sprintf("%04d%02d%02d", year, month, day)
			if !result.Matched || digits(result) != want {
				t.Logf("Match(%q) = %+v, want %s", name, result, want)
				return false
			}
			return true
		},
		gen.IntRange(1000, 9999),
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
