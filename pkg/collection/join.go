package collection

import (
	"fmt"
	"strings"
)

// JoinWithFinal joins items into an English list, putting finalWord before
// the last one:
//
//	JoinWithFinal([]string{"a"}, "and")           // "a"
//	JoinWithFinal([]string{"a", "b"}, "and")      // "a and b"
//	JoinWithFinal([]string{"a", "b", "c"}, "or")  // "a, b, or c"
func JoinWithFinal[T any](items []T, finalWord string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(items[0])
	case 2:
		return fmt.Sprint(items[0]) + " " + finalWord + " " + fmt.Sprint(items[1])
	}

	last := len(items) - 1
	return Join(items[:last], ", ") + ", " + finalWord + " " + fmt.Sprint(items[last])
}

// Join formats every item with fmt.Sprint and joins them with sep.
func Join[T any](items []T, sep string) string {
	return strings.Join(Map(items, func(item T) string {
		return fmt.Sprint(item)
	}), sep)
}

// Format concatenates fn(item) for every item. A nil fn yields "".
func Format[T any](items []T, fn func(T) string) string {
	if fn == nil {
		return ""
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(fn(item))
	}
	return b.String()
}
