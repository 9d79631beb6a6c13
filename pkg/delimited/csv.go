package delimited

import (
	"fmt"
	"strings"

	"github.com/ajtatum/BabouExtensions/pkg/collection"
	"github.com/ajtatum/BabouExtensions/pkg/enum"
	"github.com/ajtatum/BabouExtensions/pkg/sanitizer"
)

// QuotePolicy decides which CSV fields are wrapped in single quotes.
type QuotePolicy int

const (
	// QuoteAuto quotes every field except ASCII digit strings and the exact
	// literals "true" and "false".
	QuoteAuto QuotePolicy = iota
	// QuoteAlways quotes every field.
	QuoteAlways
	// QuoteNever joins fields as they are.
	QuoteNever
)

const quote = "'"

var quotePolicies = enum.MustNew(
	enum.Entry[QuotePolicy]{Value: QuoteAuto, Name: "auto", Description: "quote all but digits and true/false"},
	enum.Entry[QuotePolicy]{Value: QuoteAlways, Name: "always", Description: "quote every field"},
	enum.Entry[QuotePolicy]{Value: QuoteNever, Name: "never", Description: "never quote"},
)

func (p QuotePolicy) String() string {
	if name := quotePolicies.Name(p); name != "" {
		return name
	}
	return "unknown"
}

// ParseQuotePolicy maps "auto", "always" or "never" (any case) to a policy.
// Blank input is QuoteAuto.
func ParseQuotePolicy(s string) (QuotePolicy, error) {
	if strings.TrimSpace(s) == "" {
		return QuoteAuto, nil
	}

	p, err := quotePolicies.Parse(s, true)
	if err != nil {
		return QuoteAuto, fmt.Errorf("%w: %q", ErrUnknownQuotePolicy, s)
	}
	return p, nil
}

// QuotePolicyNames lists the accepted policy names with their descriptions,
// formatted as "name (description)".
func QuotePolicyNames() []string {
	return collection.Map(quotePolicies.Values(), func(p QuotePolicy) string {
		return p.String() + " (" + quotePolicies.Description(p) + ")"
	})
}

// ToCSV parses source on split with the same rules and options as Parse, then
// joins the tokens with join, quoting them according to policy.
//
//	ToCSV("Hello,true,1,there,here", ',', ',', QuoteAuto)
//	// 'Hello',true,1,'there','here'
//
// Empty source fails with ErrEmptyInput. Source that parses to no tokens, for
// example only delimiters and whitespace, returns "" without error. Quote
// characters inside tokens are not escaped.
func ToCSV(source string, split, join rune, policy QuotePolicy, opts ...Option) (string, error) {
	tokens, ok := TryParse(source, split, opts...)
	if !ok {
		return "", ErrEmptyInput
	}

	if policy == QuoteNever {
		return strings.Join(tokens, string(join)), nil
	}

	var b strings.Builder
	for i, token := range tokens {
		if i > 0 {
			b.WriteRune(join)
		}
		if policy == QuoteAuto && isBare(token) {
			b.WriteString(token)
			continue
		}
		b.WriteString(quote)
		b.WriteString(token)
		b.WriteString(quote)
	}

	return b.String(), nil
}

func isBare(token string) bool {
	return token == "true" || token == "false" || sanitizer.IsDigitsOnly(token)
}
