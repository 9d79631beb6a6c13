package datetime

import "errors"

var (
	// ErrUnknownTimezone is returned when a timezone name is not in the IANA database
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrUnparsableTime is returned when a string matches none of the supported layouts
	ErrUnparsableTime = errors.New("unable to parse time")
)
