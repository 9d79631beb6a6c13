package delimited

// Option configures how a source string is turned into a list.
type Option func(*config)

type config struct {
	normalizeLineBreaks bool
	replacement         string
	hasReplacement      bool
	distinct            bool
}

func defaultConfig() *config {
	return &config{
		normalizeLineBreaks: true,
		distinct:            true,
	}
}

// KeepLineBreaks disables the line break and tab normalization step, so
// CR, LF and tab characters stay inside tokens unless trimmed away.
func KeepLineBreaks() Option {
	return func(c *config) {
		c.normalizeLineBreaks = false
	}
}

// ReplaceLineBreaksWith sets the string that line breaks and tabs become
// before splitting. By default they become the delimiter itself, which makes
// every line its own token.
func ReplaceLineBreaksWith(s string) Option {
	return func(c *config) {
		c.replacement = s
		c.hasReplacement = true
	}
}

// AllowDuplicates keeps repeated tokens instead of removing them.
func AllowDuplicates() Option {
	return func(c *config) {
		c.distinct = false
	}
}
