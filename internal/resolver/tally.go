package resolver

import (
	"dayslot/internal/classifier"
	"dayslot/internal/dateparser"
)

// KeySet is a set of MMDD keys.
type KeySet map[string]struct{}

// NewKeySet creates a set holding keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Union returns a new set holding the keys of s and other.
func (s KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(s)+len(other))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Tally is the outcome of the counting pass.
type Tally struct {
	Dates  map[string]dateparser.DateKey // filename -> extracted key, eligible files only
	Counts map[string]int                // MMDD -> number of eligible files carrying it
}

// Count walks files in order and tallies how many eligible files carry
// each MMDD key. Files without a date or with a thumbnail are left out.
func Count(files []string, thumbs ThumbnailChecker) *Tally {
	t := &Tally{
		Dates:  make(map[string]dateparser.DateKey),
		Counts: make(map[string]int),
	}

	for _, name := range files {
		c := classifier.Classify(name)
		if c.IsUndated() {
			continue
		}
		if thumbs.HasThumbnail(c.Record.Base) {
			continue
		}
		t.Dates[name] = c.Key
		t.Counts[c.Key.MMDD]++
	}

	return t
}

// Forbidden returns the keys present in the directory before any rename.
func (t *Tally) Forbidden() KeySet {
	s := make(KeySet, len(t.Counts))
	for k := range t.Counts {
		s.Add(k)
	}
	return s
}
