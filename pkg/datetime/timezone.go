package datetime

import (
	"errors"
	"sync"
	"time"
)

var (
	locationCache = make(map[string]*time.Location)
	locationMu    sync.RWMutex
)

// Location loads an IANA timezone by name, caching every successful lookup.
// An empty name is UTC.
func Location(name string) (*time.Location, error) {
	locationMu.RLock()
	loc, ok := locationCache[name]
	locationMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrUnknownTimezone, err)
	}

	locationMu.Lock()
	locationCache[name] = loc
	locationMu.Unlock()

	return loc, nil
}

// ConvertTimezone returns the same instant as t expressed in timezone tz.
func ConvertTimezone(t time.Time, tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ConvertBetween reads the wall clock of t as a time in fromTZ, ignoring the
// location t carries, and returns that instant expressed in toTZ.
//
//	// 09:00 in New York is 15:00 in Berlin during summer time.
//	ConvertBetween(nineAM, "America/New_York", "Europe/Berlin")
func ConvertBetween(t time.Time, fromTZ, toTZ string) (time.Time, error) {
	from, err := Location(fromTZ)
	if err != nil {
		return time.Time{}, err
	}

	to, err := Location(toTZ)
	if err != nil {
		return time.Time{}, err
	}

	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), from)
	return wall.In(to), nil
}
