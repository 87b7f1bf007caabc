// Package classifier splits filenames into records and attaches their embedded date for dayslot.
package classifier

import (
	"path/filepath"
	"strings"

	"dayslot/internal/dateparser"
)

// UndatedReason represents why a file carries no usable date.
type UndatedReason string

const (
	NoDateFound UndatedReason = "NO_DATE_FOUND"
)

// Classification types.
const (
	Dated   = "DATED"
	Undated = "UNDATED"
)

// Record is a directory entry split into base name and extension.
type Record struct {
	Name string // Full filename
	Base string // Filename without extension
	Ext  string // Extension including the leading dot, original casing
}

// NewRecord splits a filename at its last extension.
func NewRecord(name string) Record {
	ext := filepath.Ext(name)
	return Record{
		Name: name,
		Base: strings.TrimSuffix(name, ext),
		Ext:  ext,
	}
}

// Classification represents the result of classifying a file.
// It is either DATED (with a DateKey) or UNDATED (with a reason).
type Classification struct {
	Type   string
	Record Record
	Key    dateparser.DateKey
	Reason UndatedReason
}

// Classify extracts the date embedded in the file's base name.
// The date is matched but not validated; an impossible month or day only
// surfaces when the key is converted to a calendar date.
func Classify(name string) *Classification {
	record := NewRecord(name)

	key, ok := dateparser.Extract(record.Base)
	if !ok {
		return &Classification{
			Type:   Undated,
			Record: record,
			Reason: NoDateFound,
		}
	}

	return &Classification{
		Type:   Dated,
		Record: record,
		Key:    key,
	}
}

// IsDated returns true if the classification is DATED.
func (c *Classification) IsDated() bool {
	return c.Type == Dated
}

// IsUndated returns true if the classification is UNDATED.
func (c *Classification) IsUndated() bool {
	return c.Type == Undated
}
