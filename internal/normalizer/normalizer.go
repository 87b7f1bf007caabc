// Package normalizer builds the renamed filenames for dayslot.
package normalizer

import (
	"path/filepath"
	"strings"
)

// TitleSeparator divides the episode tag from the title in a renamed file.
const TitleSeparator = " - "

// Title returns the descriptive part of a filename.
// For names like "S2023E0101 - Intro.mp4" it returns "Intro"; any other name
// returns its base name (extension removed) unchanged.
func Title(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if strings.HasPrefix(base, "S") {
		if _, after, found := strings.Cut(base, TitleSeparator); found {
			return after
		}
	}
	return base
}

// EpisodeName assembles "S<year>E<month><day> - <title><ext>".
// ext is appended verbatim and should include its leading dot.
func EpisodeName(year, month, day, title, ext string) string {
	return "S" + year + "E" + month + day + TitleSeparator + title + ext
}
