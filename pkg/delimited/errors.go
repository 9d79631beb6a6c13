package delimited

import "errors"

var (
	// ErrEmptyInput is returned by ToCSV when the source string is empty
	ErrEmptyInput = errors.New("empty input: nothing to convert")

	// ErrUnknownQuotePolicy is returned when a policy name is not auto, always or never
	ErrUnknownQuotePolicy = errors.New("unknown quote policy")
)
