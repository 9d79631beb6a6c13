package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var plainTextPolicy = bluemonday.StrictPolicy()

// StripHTML replaces every tag in s with replacement. Entities are left
// untouched; use PlainText for readable output.
func StripHTML(s, replacement string) string {
	return htmlTagRegex.ReplaceAllLiteralString(s, replacement)
}

// PlainText removes all markup from s, including the contents of script and
// style elements, and decodes HTML entities in what remains.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(plainTextPolicy.Sanitize(s))
}

// HTMLEncode escapes <, >, &, ' and ".
func HTMLEncode(s string) string {
	return html.EscapeString(s)
}

// HTMLDecode turns HTML entities back into the characters they stand for.
func HTMLDecode(s string) string {
	return html.UnescapeString(s)
}

// CleanString flattens a fragment of text or light HTML onto one line. Line
// breaks, tabs, <br> and <p> tags and runs of spaces are each replaced with
// replaceWith, then every string in extra is removed and the result is
// trimmed.
//
//	CleanString("Hello\r\nWorld<br />  Again", " ")
//	// "Hello World Again"
func CleanString(s, replaceWith string, extra ...string) string {
	if s == "" {
		return ""
	}

	s = lineBreakTabRegex.ReplaceAllLiteralString(s, replaceWith)
	s = breakTagRegex.ReplaceAllLiteralString(s, replaceWith)
	s = paragraphTagRegex.ReplaceAllLiteralString(s, replaceWith)
	s = repeatedSpaceRegex.ReplaceAllLiteralString(s, replaceWith)

	for _, e := range extra {
		if e != "" {
			s = strings.ReplaceAll(s, e, "")
		}
	}

	if replaceWith == " " {
		s = repeatedSpaceRegex.ReplaceAllLiteralString(s, " ")
	}

	return strings.TrimSpace(s)
}
