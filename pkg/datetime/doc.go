// Package datetime holds small date and time helpers: relative "time ago"
// phrases, age calculation, range checks, Unix conversion and timezone
// conversion with a cached location lookup.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/datetime"
//
//	datetime.Humanize(posted, time.Now()) // "3 hours ago"
//	datetime.Age(birthday, time.Now())    // 34
//
//	berlin, err := datetime.ConvertTimezone(t, "Europe/Berlin")
//	if errors.Is(err, datetime.ErrUnknownTimezone) {
//		// handle typo in timezone name
//	}
//
// Functions that take a now argument are deterministic; the Since variants
// read the wall clock.
package datetime
