package datetime

import (
	"math"
	"time"
)

// ShortDateLayout is the layout used by ShortDate.
const ShortDateLayout = "2006-01-02"

// IsBetween reports whether t falls inside [start, end], bounds included.
func IsBetween(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Age returns the number of whole years between birth and now. The year is
// not counted until the birthday has been reached.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()

	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}

	return age
}

// ShortDate formats t as yyyy-mm-dd.
func ShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

// FromUnix converts fractional Unix seconds to a time in loc, or in the local
// zone when loc is nil. The fraction is rounded to the nearest nanosecond.
func FromUnix(sec float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	whole, frac := math.Modf(sec)
	nanos := int64(math.Round(frac * float64(time.Second)))

	return time.Unix(int64(whole), nanos).In(loc)
}
