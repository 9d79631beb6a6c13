// Package delimited splits free-form delimited text into clean token lists
// and re-joins them as quoted CSV lines.
//
// Parsing runs a fixed pipeline: line breaks and tabs are normalized to the
// delimiter, the text is split, tokens are trimmed, empty tokens are dropped
// and duplicates are removed with first-occurrence order preserved. Each step
// after the split can be tuned through options.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/delimited"
//
//	tags := delimited.Parse("go, rust\npython, go", ',')
//	// ["go", "rust", "python"]
//
//	line, err := delimited.ToCSV("Hello,true,1,there", ',', ',', delimited.QuoteAuto)
//	// line == "'Hello',true,1,'there'"
//
// # Options
//
//   - KeepLineBreaks: skip line break and tab normalization
//   - ReplaceLineBreaksWith: normalize line breaks to a custom string
//   - AllowDuplicates: keep repeated tokens
//
// # Quote policies
//
// QuoteAuto leaves ASCII digit strings and the exact literals "true" and
// "false" bare and wraps everything else in single quotes. QuoteAlways wraps
// every field and QuoteNever wraps none.
//
// # Error Handling
//
// Parse and TryParse never fail. ToCSV returns ErrEmptyInput for an empty
// source string.
package delimited
