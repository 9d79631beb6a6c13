package datetime

import (
	"strconv"
	"time"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 12 * month
)

// Humanize describes how long before now t happened, in the style of
// "3 minutes ago" or "yesterday".
//
// The buckets are: under a minute in seconds, under two minutes "a minute
// ago", under 45 minutes in minutes, under 90 minutes "an hour ago", under a
// day in hours, under two days "yesterday", under 30 days in days, under 360
// days in 30-day months and anything older in 365-day years. Times after now
// count as zero seconds ago.
func Humanize(t, now time.Time) string {
	delta := max(now.Sub(t), 0)

	switch {
	case delta < time.Minute:
		if n := int(delta / time.Second); n != 1 {
			return ago(n, "seconds")
		}
		return "one second ago"
	case delta < 2*time.Minute:
		return "a minute ago"
	case delta < 45*time.Minute:
		return ago(int(delta/time.Minute), "minutes")
	case delta < 90*time.Minute:
		return "an hour ago"
	case delta < day:
		return ago(int(delta/time.Hour), "hours")
	case delta < 2*day:
		return "yesterday"
	case delta < month:
		return ago(int(delta/day), "days")
	case delta < year:
		if n := int(delta/day) / 30; n > 1 {
			return ago(n, "months")
		}
		return "one month ago"
	default:
		if n := int(delta/day) / 365; n > 1 {
			return ago(n, "years")
		}
		return "one year ago"
	}
}

// HumanizeSince is Humanize measured against the current time.
func HumanizeSince(t time.Time) string {
	return Humanize(t, time.Now())
}

func ago(n int, unit string) string {
	return strconv.Itoa(n) + " " + unit + " ago"
}
