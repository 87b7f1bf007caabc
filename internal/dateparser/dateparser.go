// Package dateparser turns filename dates into year/month-day keys for dayslot.
package dateparser

import (
	"fmt"
	"strconv"
	"time"

	"dayslot/internal/matcher"
)

// DateParseErrorType represents the type of date parsing error.
type DateParseErrorType string

const (
	InvalidFormat DateParseErrorType = "INVALID_FORMAT"
	InvalidDate   DateParseErrorType = "INVALID_DATE"
)

// DateParseError represents an error that occurred during date parsing.
type DateParseError struct {
	Type   DateParseErrorType
	Reason string
}

func (e *DateParseError) Error() string {
	switch e.Type {
	case InvalidFormat:
		return fmt.Sprintf("invalid date format: %s", e.Reason)
	case InvalidDate:
		return fmt.Sprintf("invalid date: %s", e.Reason)
	default:
		return fmt.Sprintf("date parse error: %s", e.Reason)
	}
}

// KeyLayout is the time layout of an MMDD key.
const KeyLayout = "0102"

// DateKey is the date extracted from a filename: a 4-digit year and the
// 4-digit month-day key used for collision detection.
type DateKey struct {
	Year string
	MMDD string
}

// Month returns the two-digit month of the key.
func (k DateKey) Month() string { return k.MMDD[:2] }

// Day returns the two-digit day of the key.
func (k DateKey) Day() string { return k.MMDD[2:4] }

func (k DateKey) String() string { return k.Year + k.MMDD }

// Extract finds the first date pattern in s and splits it into a DateKey.
// It reports false when no pattern matches. The result is not validated.
func Extract(s string) (DateKey, bool) {
	result := matcher.Match(s)
	if !result.Matched {
		return DateKey{}, false
	}
	return DateKey{Year: result.Year, MMDD: result.Month + result.Day}, true
}

// Date converts the key into a calendar date in its own year.
// It fails with an INVALID_DATE error when the month is outside 01-12 or
// the day does not exist in that month.
func (k DateKey) Date() (time.Time, error) {
	if len(k.Year) != 4 || len(k.MMDD) != 4 {
		return time.Time{}, &DateParseError{
			Type:   InvalidFormat,
			Reason: fmt.Sprintf("expected YYYY and MMDD, got %q and %q", k.Year, k.MMDD),
		}
	}

	year, errY := strconv.Atoi(k.Year)
	month, errM := strconv.Atoi(k.Month())
	day, errD := strconv.Atoi(k.Day())
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, &DateParseError{
			Type:   InvalidFormat,
			Reason: fmt.Sprintf("non-numeric date %q", k.String()),
		}
	}

	if year < 1 {
		return time.Time{}, &DateParseError{
			Type:   InvalidDate,
			Reason: fmt.Sprintf("year %04d is out of range", year),
		}
	}

	if month < 1 || month > 12 {
		return time.Time{}, &DateParseError{
			Type:   InvalidDate,
			Reason: fmt.Sprintf("month %02d is out of range (01-12)", month),
		}
	}

	maxDay := daysInMonth(year, month)
	if day < 1 || day > maxDay {
		return time.Time{}, &DateParseError{
			Type:   InvalidDate,
			Reason: fmt.Sprintf("day %02d is out of range for month %02d (01-%02d)", day, month, maxDay),
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// KeyOf projects a calendar date onto its MMDD key.
func KeyOf(t time.Time) string {
	return t.Format(KeyLayout)
}

// daysInMonth returns the number of days in the given month for the given year.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// isLeapYear returns true if the given year is a leap year.
func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || (year%400 == 0)
}
