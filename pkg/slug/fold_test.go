package slug_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/ajtatum/BabouExtensions/pkg/slug"
)

func TestFold(t *testing.T) {
	t.Parallel()

	groups := map[string]string{
		"àåáâäãą":  "a",
		"èéêëę":    "e",
		"ìíîïı":    "i",
		"òóôõöøőð": "o",
		"ùúûüŭů":   "u",
		"çćčĉ":     "c",
		"żźž":      "z",
		"śşšŝ":     "s",
		"ñń":       "n",
		"ýÿ":       "y",
		"ğĝ":       "g",
		"ř":        "r",
		"ł":        "l",
		"đ":        "d",
		"ß":        "ss",
		"þÞ":       "th",
		"ĥ":        "h",
		"ĵ":        "j",
	}

	for chars, expected := range groups {
		for _, r := range chars {
			assert.Equal(t, expected, slug.Fold(r), "fold %q", r)
		}
	}

	upper := map[rune]string{
		'À': "a", 'É': "e", 'Î': "i", 'Õ': "o", 'Ü': "u", 'Ç': "c", 'Ž': "z",
		'Š': "s", 'Ñ': "n", 'Ý': "y", 'Ğ': "g", 'Ř': "r", 'Ł': "l", 'Đ': "d",
	}
	for r, expected := range upper {
		assert.Equal(t, expected, slug.Fold(r), "fold %q", r)
	}
}

func TestFoldUnmapped(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'a', 'Z', '0', '-', 'ā', 'Ω', 'ж', '日', '€', '😀', 0} {
		assert.Empty(t, slug.Fold(r), "fold %q", r)
	}
}

func TestFoldIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	// ı is left out: its upper-case partner is ASCII 'I', which has no mapping.
	mapped := "àåáâäãąèéêëęìíîïòóôõöøőðùúûüŭůçćčĉżźžśşšŝñńýÿğĝřłđßþĥĵ"

	for _, r := range mapped {
		want := slug.Fold(r)
		assert.NotEmpty(t, want, "fold %q", r)
		assert.Equal(t, want, slug.Fold(unicode.ToUpper(r)), "upper %q", r)
		assert.Equal(t, want, slug.Fold(unicode.ToLower(r)), "lower %q", r)
	}
}
