package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^A-Za-z0-9]+`)

	// HTML stripping
	htmlTagRegex       = regexp.MustCompile(`<[^>]*>`)
	breakTagRegex      = regexp.MustCompile(`(?i)<br ?/?>|</ ?br>`)
	paragraphTagRegex  = regexp.MustCompile(`(?i)</?p>`)
	lineBreakTabRegex  = regexp.MustCompile(`\r\n?|\n|\t`)
	repeatedSpaceRegex = regexp.MustCompile(`[ ]{2,}`)
)
