package resolver

import (
	"errors"
	"time"

	"dayslot/internal/dateparser"
)

// MaxSpread bounds the free-slot search: offsets 1..MaxSpread-1 are tried
// in each direction.
const MaxSpread = 400

// ErrNoFreeSlot is returned when every probed day is already taken.
var ErrNoFreeSlot = errors.New("no free MMDD found within search radius")

// FindFreeSlot returns the month and day of the nearest date after origin
// whose MMDD key is not forbidden. Later dates are tried first, one day at
// a time; only when all of them are taken are earlier dates tried.
func FindFreeSlot(origin time.Time, forbidden KeySet) (month, day string, err error) {
	for offset := 1; offset < MaxSpread; offset++ {
		probe := origin.AddDate(0, 0, offset)
		if !forbidden.Has(dateparser.KeyOf(probe)) {
			return probe.Format("01"), probe.Format("02"), nil
		}
	}

	for offset := 1; offset < MaxSpread; offset++ {
		probe := origin.AddDate(0, 0, -offset)
		if !forbidden.Has(dateparser.KeyOf(probe)) {
			return probe.Format("01"), probe.Format("02"), nil
		}
	}

	return "", "", ErrNoFreeSlot
}
