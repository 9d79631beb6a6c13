package collection

import (
	"cmp"
	"slices"
)

// IsEmpty reports whether s has no elements. Nil counts as empty.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Matches reports whether a and b hold equal elements in the same order.
// A nil slice matches an empty one.
func Matches[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// Where returns the elements of s for which pred is true.
func Where[T any](s []T, pred func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// WhereIf filters s with pred only when cond is true; otherwise s is
// returned untouched. It keeps optional filters inline:
//
//	users = collection.WhereIf(users, onlyActive, User.IsActive)
func WhereIf[T any](s []T, cond bool, pred func(T) bool) []T {
	if !cond || pred == nil {
		return s
	}
	return Where(s, pred)
}

// Between keeps the items whose key lies in [low, high], bounds included.
// A nil key function yields nil.
func Between[T any, K cmp.Ordered](items []T, key func(T) K, low, high K) []T {
	if key == nil {
		return nil
	}
	return Where(items, func(item T) bool {
		k := key(item)
		return k >= low && k <= high
	})
}

// ForEach calls fn for every element of s in order. A nil fn does nothing.
func ForEach[T any](s []T, fn func(T)) {
	if fn == nil {
		return
	}
	for _, v := range s {
		fn(v)
	}
}
