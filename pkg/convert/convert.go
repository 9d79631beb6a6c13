package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/ajtatum/BabouExtensions/pkg/datetime"
)

// Scalar lists the types Try can produce.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Time
}

// Try parses s into a T. Surrounding whitespace is ignored. On failure the
// zero value and false are returned.
//
// Booleans accept "true" and "false" in any case, integers are base 10 and
// must fit T, and times are read with datetime.Parse.
func Try[T Scalar](s string) (T, bool) {
	var v T

	s = strings.TrimSpace(s)
	if s == "" {
		return v, false
	}

	var ok bool
	switch p := any(&v).(type) {
	case *bool:
		ok = parseBool(s, p)
	case *int:
		ok = parseSigned(s, strconv.IntSize, p)
	case *int8:
		ok = parseSigned(s, 8, p)
	case *int16:
		ok = parseSigned(s, 16, p)
	case *int32:
		ok = parseSigned(s, 32, p)
	case *int64:
		ok = parseSigned(s, 64, p)
	case *uint:
		ok = parseUnsigned(s, strconv.IntSize, p)
	case *uint8:
		ok = parseUnsigned(s, 8, p)
	case *uint16:
		ok = parseUnsigned(s, 16, p)
	case *uint32:
		ok = parseUnsigned(s, 32, p)
	case *uint64:
		ok = parseUnsigned(s, 64, p)
	case *float32:
		ok = parseFloat(s, 32, p)
	case *float64:
		ok = parseFloat(s, 64, p)
	case *time.Time:
		t, err := datetime.Parse(s)
		if err == nil {
			*p, ok = t, true
		}
	}

	return v, ok
}

// TryPtr is Try for optional values: blank or unparsable input yields nil.
func TryPtr[T Scalar](s string) (*T, bool) {
	v, ok := Try[T](s)
	if !ok {
		return nil, false
	}
	return &v, true
}

// OrDefault returns the parsed value of s, or def when parsing fails.
func OrDefault[T Scalar](s string, def T) T {
	if v, ok := Try[T](s); ok {
		return v
	}
	return def
}

func parseBool(s string, dst *bool) bool {
	switch {
	case strings.EqualFold(s, "true"):
		*dst = true
	case strings.EqualFold(s, "false"):
		*dst = false
	default:
		return false
	}
	return true
}

func parseSigned[I int | int8 | int16 | int32 | int64](s string, bits int, dst *I) bool {
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return false
	}
	*dst = I(n)
	return true
}

func parseUnsigned[U uint | uint8 | uint16 | uint32 | uint64](s string, bits int, dst *U) bool {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return false
	}
	*dst = U(n)
	return true
}

func parseFloat[F float32 | float64](s string, bits int, dst *F) bool {
	n, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return false
	}
	*dst = F(n)
	return true
}
