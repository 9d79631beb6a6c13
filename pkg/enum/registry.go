package enum

import (
	"fmt"
	"strings"
)

// Entry describes one member of an enumeration.
type Entry[T comparable] struct {
	Value T
	// Name is the identifier form used by Parse, e.g. "InProgress".
	Name string
	// Display is the human label. Empty falls back to Name.
	Display string
	// Description is longer help text. Empty falls back to Name.
	Description string
}

func (e Entry[T]) display() string {
	if e.Display != "" {
		return e.Display
	}
	return e.Name
}

func (e Entry[T]) description() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Name
}

// Registry maps enumeration values to their names, display labels and
// descriptions and back. It is read-only after construction and safe for
// concurrent use.
type Registry[T comparable] struct {
	entries []Entry[T]
	byValue map[T]int
}

// New builds a registry from entries, kept in the given order. Values and
// names must be unique and names must not be empty.
func New[T comparable](entries ...Entry[T]) (*Registry[T], error) {
	r := &Registry[T]{
		entries: make([]Entry[T], 0, len(entries)),
		byValue: make(map[T]int, len(entries)),
	}
	names := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: value %#v", ErrEmptyName, e.Value)
		}
		if _, ok := r.byValue[e.Value]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateValue, e.Name)
		}
		if _, ok := names[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}

		names[e.Name] = struct{}{}
		r.byValue[e.Value] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	return r, nil
}

// MustNew is like New but panics on error. Use it for package-level tables.
func MustNew[T comparable](entries ...Entry[T]) *Registry[T] {
	r, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry[T]) lookup(v T) (Entry[T], bool) {
	i, ok := r.byValue[v]
	if !ok {
		return Entry[T]{}, false
	}
	return r.entries[i], true
}

// Contains reports whether v is a registered value.
func (r *Registry[T]) Contains(v T) bool {
	_, ok := r.byValue[v]
	return ok
}

// Name returns the identifier of v, or "" when v is not registered.
func (r *Registry[T]) Name(v T) string {
	e, _ := r.lookup(v)
	return e.Name
}

// DisplayName returns the display label of v, falling back to its name.
// Unregistered values yield "".
func (r *Registry[T]) DisplayName(v T) string {
	e, ok := r.lookup(v)
	if !ok {
		return ""
	}
	return e.display()
}

// Description returns the description of v, falling back to its name.
// Unregistered values yield "".
func (r *Registry[T]) Description(v T) string {
	e, ok := r.lookup(v)
	if !ok {
		return ""
	}
	return e.description()
}

// FromDisplayName finds the value whose display label equals s exactly.
func (r *Registry[T]) FromDisplayName(s string) (T, error) {
	for _, e := range r.entries {
		if e.display() == s {
			return e.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknownValue, s)
}

// FromDescription finds the value whose description equals s exactly.
// Entries without a description match on their name.
func (r *Registry[T]) FromDescription(s string) (T, error) {
	for _, e := range r.entries {
		if e.description() == s {
			return e.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknownValue, s)
}

// Parse finds the value whose name matches s after trimming whitespace.
func (r *Registry[T]) Parse(s string, ignoreCase bool) (T, error) {
	s = strings.TrimSpace(s)
	for _, e := range r.entries {
		if e.Name == s || (ignoreCase && strings.EqualFold(e.Name, s)) {
			return e.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrUnknownValue, s)
}

// ParseOr parses s ignoring case and returns def when s is blank or unknown.
func (r *Registry[T]) ParseOr(s string, def T) T {
	if strings.TrimSpace(s) == "" {
		return def
	}
	v, err := r.Parse(s, true)
	if err != nil {
		return def
	}
	return v
}

// Values returns every registered value in declaration order.
func (r *Registry[T]) Values() []T {
	values := make([]T, len(r.entries))
	for i, e := range r.entries {
		values[i] = e.Value
	}
	return values
}

// Names returns every name in declaration order.
func (r *Registry[T]) Names() []string {
	return r.collect(func(e Entry[T]) string { return e.Name })
}

// DisplayNames returns every display label in declaration order.
func (r *Registry[T]) DisplayNames() []string {
	return r.collect(func(e Entry[T]) string { return e.display() })
}

// Descriptions returns every description in declaration order.
func (r *Registry[T]) Descriptions() []string {
	return r.collect(func(e Entry[T]) string { return e.description() })
}

func (r *Registry[T]) collect(fn func(Entry[T]) string) []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = fn(e)
	}
	return out
}
