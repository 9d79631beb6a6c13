package slug

import (
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the input length most callers pass to URLFriendly.
const DefaultMaxLength = 250

const (
	separator      = '-'
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	customReplace map[string]string
	transliterate bool
	suffixLength  int
}

func defaultConfig() *config {
	return &config{
		maxLength: 0, // no limit
	}
}

// MaxLength limits how many input runes are examined. Values <= 0 disable
// the limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// CustomReplace sets string replacements applied before slugification.
// For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// Transliterate enables a fallback for letters missing from the fold table:
// the rune is decomposed (NFD), combining marks are dropped, and the result
// is kept when it is plain ASCII alphanumeric. "ā" or "ḿ" survive this way,
// while CJK and other scripts are still removed.
func Transliterate() Option {
	return func(c *config) {
		c.transliterate = true
	}
}

// WithSuffix appends a random lowercase alphanumeric suffix of the given
// length, separated by a dash: "hello-world-x7g3k2".
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// URLFriendly produces a lowercase, dash-delimited, ASCII-only slug from
// source, examining at most maxLength input runes.
//
//	URLFriendly("Müller & Co.", 250) // "muller-co"
func URLFriendly(source string, maxLength int) string {
	return Make(source, MaxLength(maxLength))
}

// Make creates a URL-safe slug from the input string.
//
// ASCII letters and digits are kept (lowercased), the separators
// space , . / \ - _ = collapse into a single dash, runes >= 128 go through
// Fold, and every other character is dropped. Leading dashes are never
// written and a trailing dash is removed.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	result := build(s, cfg)

	if cfg.suffixLength > 0 {
		suffix := generateSuffix(cfg.suffixLength)
		if result == "" {
			return suffix
		}
		return result + string(separator) + suffix
	}

	return result
}

func build(s string, cfg *config) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	prevDash := false
	examined := 0

	for _, r := range s {
		if cfg.maxLength > 0 && examined >= cfg.maxLength {
			break
		}
		examined++

		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r | 0x20)
			prevDash = false
		case isSeparator(r):
			if !prevDash && b.Len() > 0 {
				b.WriteRune(separator)
				prevDash = true
			}
		case r >= 0x80:
			folded := Fold(r)
			if folded == "" && cfg.transliterate {
				folded = decompose(r)
			}
			if folded != "" {
				b.WriteString(folded)
				prevDash = false
			}
		}
	}

	out := b.String()
	if prevDash {
		out = out[:len(out)-1]
	}
	return out
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', ',', '.', '/', '\\', '-', '_', '=':
		return true
	}
	return false
}

// decompose strips combining marks from r and returns the lowercase result
// when it consists only of ASCII letters and digits.
func decompose(r rune) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, string(r))
	if err != nil || out == "" {
		return ""
	}

	out = strings.ToLower(out)
	for _, c := range out {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return out
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int) string {
	id, err := gonanoid.Generate(suffixAlphabet, length)
	if err != nil {
		// Fallback to deterministic suffix on entropy failure
		b := make([]byte, length)
		for i := range b {
			b[i] = suffixAlphabet[i%len(suffixAlphabet)]
		}
		return string(b)
	}
	return id
}
