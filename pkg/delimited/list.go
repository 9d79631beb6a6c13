package delimited

import (
	"strings"

	"github.com/ajtatum/BabouExtensions/pkg/sanitizer"
)

var lineBreakNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse splits source on delimiter and returns the cleaned tokens.
//
// Line breaks (CRLF, CR, LF) and tabs are first replaced with the delimiter,
// or with the string given to ReplaceLineBreaksWith. Every token is trimmed,
// empty tokens are dropped and duplicates are removed keeping the first
// occurrence. Parse never fails; empty source yields an empty list.
//
//	Parse("a,,b, a ,b", ',') // ["a", "b"]
func Parse(source string, delimiter rune, opts ...Option) []string {
	list, _ := TryParse(source, delimiter, opts...)
	return list
}

// TryParse is Parse with a success flag that is false exactly when source is
// empty.
func TryParse(source string, delimiter rune, opts ...Option) ([]string, bool) {
	if source == "" {
		return []string{}, false
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sep := string(delimiter)

	if cfg.normalizeLineBreaks {
		replacement := sep
		if cfg.hasReplacement {
			replacement = cfg.replacement
		}
		source = lineBreakNormalizer.Replace(source)
		source = strings.NewReplacer("\n", replacement, "\t", replacement).Replace(source)
	}

	tokens := sanitizer.Apply(strings.Split(source, sep),
		sanitizer.TrimStringSlice,
		sanitizer.FilterEmpty,
	)

	if cfg.distinct {
		tokens = sanitizer.Deduplicate(tokens)
	}

	return tokens, true
}
