// Package sanitizer provides small, stateless helpers for cleaning up text
// and string slices.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings: title casing, first-letter capitalization, truncation with a
//     suffix, digit extraction, word splitting and the trimmed case
//     conversions that fall back to a default on empty input.
//
//   - Markup: tag stripping, HTML to plain text (via bluemonday), entity
//     encoding and the CleanString flattener for line breaks, <br> and <p>.
//
//   - Typography: CleanWordFormatting replaces smart quotes, long dashes and
//     ellipses pasted from word processors with their ASCII counterparts.
//
//   - Collections: FilterEmpty, Deduplicate, TrimStringSlice and the
//     CleanStringSlice pipeline built from them.
//
// The higher-order Apply and Compose helpers chain transforms into a
// pipeline:
//
//	clean := sanitizer.Compose(
//	    strings.TrimSpace,
//	    sanitizer.CleanWordFormatting,
//	    sanitizer.RemoveLineEndings,
//	)
//
//	clean("  “Quoted”\r\n text ") // `"Quoted" text`
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/sanitizer"
//
//	sanitizer.TitleCase("THE LORD OF THE RINGS", "of", "the")
//	// "the Lord of the Rings"
//
//	sanitizer.PlainText("<p>Fish &amp; <b>Chips</b></p>")
//	// "Fish & Chips"
//
// # Error handling
//
// None of the helpers returns an error. Every function is total and returns
// a usable value, usually the input or an empty string, for any input.
//
// All helpers are safe for concurrent use.
package sanitizer
