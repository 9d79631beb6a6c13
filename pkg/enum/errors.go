package enum

import "errors"

var (
	// ErrDuplicateValue is returned when two entries share a value
	ErrDuplicateValue = errors.New("duplicate enum value")

	// ErrDuplicateName is returned when two entries share a name
	ErrDuplicateName = errors.New("duplicate enum name")

	// ErrEmptyName is returned when an entry has no name
	ErrEmptyName = errors.New("enum entry has an empty name")

	// ErrUnknownValue is returned when a lookup matches no entry
	ErrUnknownValue = errors.New("unknown enum value")
)
