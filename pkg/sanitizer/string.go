package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase capitalizes the first letter of every word and lowercases the
// rest. Whole words listed in lowerWords are forced back to lowercase,
// matched case-insensitively:
//
//	TitleCase("THE LORD OF THE RINGS", "of", "the")
//	// "the Lord of the Rings"
func TitleCase(s string, lowerWords ...string) string {
	if s == "" {
		return ""
	}

	// Casers carry state and are not safe to share between goroutines.
	result := cases.Title(language.Und).String(strings.ToLower(s))

	words := make([]string, 0, len(lowerWords))
	for _, w := range lowerWords {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, regexp.QuoteMeta(w))
		}
	}
	if len(words) == 0 {
		return result
	}

	re := regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
	return re.ReplaceAllStringFunc(result, strings.ToLower)
}

// UppercaseFirst upper-cases the first rune of s and leaves the rest as is.
func UppercaseFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// WithMaxLength cuts s down to maxLength runes and appends suffix when a cut
// happened. A non-positive maxLength yields an empty string.
func WithMaxLength(s string, maxLength int, suffix string) string {
	if maxLength <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength]) + suffix
}

// AddSpacesToSentence inserts a space before every upper-case letter that
// does not already follow a space: "HelloBigWorld" becomes "Hello Big World".
// Blank input returns "".
func AddSpacesToSentence(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 2)

	prev := rune(-1)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && prev != ' ' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	return b.String()
}

// Digits keeps only the decimal digits of s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// StripNonAlphanumeric removes everything except ASCII letters and digits,
// spaces included.
func StripNonAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// IsDigitsOnly reports whether s is non-empty and made of ASCII digits 0-9
// only. Signs, decimal points and whitespace all make it false.
func IsDigitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// RemoveLineEndings deletes CR, LF and the Unicode line (U+2028) and
// paragraph (U+2029) separators.
func RemoveLineEndings(s string) string {
	return lineEndingReplacer.Replace(s)
}

var lineEndingReplacer = strings.NewReplacer(
	"\r\n", "",
	"\n", "",
	"\r", "",
	"\u2028", "",
	"\u2029", "",
)

// CleanWordFormatting swaps the typographic punctuation word processors
// produce (smart quotes, long dashes, ellipsis, primes) for plain ASCII.
func CleanWordFormatting(s string) string {
	return wordFormattingReplacer.Replace(s)
}

var wordFormattingReplacer = strings.NewReplacer(
	"\u2013", "-",
	"\u2014", "-",
	"\u2015", "-",
	"\u2017", "_",
	"\u2018", "'",
	"\u2019", "'",
	"\u201a", ",",
	"\u201b", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u201e", `"`,
	"\u2026", "...",
	"\u2032", "'",
	"\u2033", `"`,
)

// Words splits s into words and returns at most count of them. Without
// delimiters s is split on whitespace. Empty words are never returned and a
// negative count returns every word.
func Words(s string, count int, delimiters ...string) []string {
	if s == "" || count == 0 {
		return []string{}
	}

	var words []string
	if len(delimiters) == 0 {
		words = strings.Fields(s)
	} else {
		words = splitAny(s, delimiters)
	}

	if count > 0 && len(words) > count {
		words = words[:count]
	}
	return words
}

func splitAny(s string, delimiters []string) []string {
	words := make([]string, 0)
	start := 0

	for i := 0; i < len(s); {
		matched := 0
		for _, d := range delimiters {
			if d != "" && strings.HasPrefix(s[i:], d) && len(d) > matched {
				matched = len(d)
			}
		}

		if matched == 0 {
			i++
			continue
		}

		if i > start {
			words = append(words, s[start:i])
		}
		i += matched
		start = i
	}

	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// TrimmedUpper trims s and upper-cases it, or returns def when s is empty.
func TrimmedUpper(s, def string) string {
	if s == "" {
		return def
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// TrimmedLower trims s and lower-cases it, or returns def when s is empty.
func TrimmedLower(s, def string) string {
	if s == "" {
		return def
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// TrimOr strips the runes in cutset from both ends of s, or whitespace when
// cutset is empty. Empty input returns def.
func TrimOr(s, def, cutset string) string {
	if s == "" {
		return def
	}
	if cutset == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, cutset)
}
