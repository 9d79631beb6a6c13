// Package babou is the root of BabouExtensions, a set of small, dependency-light
// helpers for everyday string, list, URL and time chores.
//
// The root package holds no code. The helpers live in focused packages under
// pkg/:
//
//   - slug – URL-friendly slugs with a Latin fold table and optional suffixes
//   - delimited – splitting delimited text into clean tokens and re-joining it as CSV
//   - urlclean – URL validation and removal of tracking parameters
//   - sanitizer – text clean-up: casing, HTML stripping, whitespace and punctuation
//   - datetime – humanized durations, time zone conversion and lenient parsing
//   - collection – generic slice helpers with an injectable random source
//   - enum – registries mapping enum values to names, labels and descriptions
//   - convert – "try parse" helpers for scalar types
//   - secrets – passphrase and key based AES-GCM encryption of strings
//
// Supporting packages provide configuration (config), the runtime environment
// (environment) and structured logging (logger). The babou command in
// cmd/babou exposes the helpers on the command line.
//
// Basic Usage:
//
//	import (
//		"github.com/ajtatum/BabouExtensions/pkg/delimited"
//		"github.com/ajtatum/BabouExtensions/pkg/slug"
//		"github.com/ajtatum/BabouExtensions/pkg/urlclean"
//	)
//
//	s := slug.URLFriendly("Müller & Co.", slug.DefaultMaxLength) // "muller-co"
//	tokens := delimited.Parse("a, b\nc,,a", ',')                 // ["a" "b" "c"]
//	clean, _ := urlclean.Clean("https://example.com/?utm_source=x&id=5")
//	// "https://example.com/?id=5"
package babou
