package slug

import "unicode"

// foldTable maps lower-case Latin letters outside ASCII to their closest
// ASCII spelling. Upper-case input is lowered before lookup.
var foldTable = map[rune]string{
	// a
	'à': "a", 'å': "a", 'á': "a", 'â': "a", 'ä': "a", 'ã': "a", 'ą': "a",
	// e
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e", 'ę': "e",
	// i
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ı': "i",
	// o
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o", 'ø': "o", 'ő': "o", 'ð': "o",
	// u
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ŭ': "u", 'ů': "u",
	// c
	'ç': "c", 'ć': "c", 'č': "c", 'ĉ': "c",
	// z
	'ż': "z", 'ź': "z", 'ž': "z",
	// s
	'ś': "s", 'ş': "s", 'š': "s", 'ŝ': "s",
	// n
	'ñ': "n", 'ń': "n",
	// y
	'ý': "y", 'ÿ': "y",
	// g
	'ğ': "g", 'ĝ': "g",
	// single letters
	'ř': "r",
	'ł': "l",
	'đ': "d",
	'ß': "ss",
	'þ': "th",
	'ĥ': "h",
	'ĵ': "j",
}

// Fold returns the ASCII replacement for a single accented or extended Latin
// letter, or an empty string when the rune has no mapping. The lookup is
// case-insensitive: 'Ü' and 'ü' both fold to "u".
//
// Fold never fails. Runes from non-Latin scripts, symbols and ASCII input all
// fold to "".
func Fold(r rune) string {
	if s, ok := foldTable[r]; ok {
		return s
	}
	return foldTable[unicode.ToLower(r)]
}
