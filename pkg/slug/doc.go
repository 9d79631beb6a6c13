// Package slug turns arbitrary text into URL-safe slugs.
//
// The output contains only lowercase ASCII letters, digits and single dashes.
// Accented and extended Latin letters are folded to ASCII through a fixed
// table (see Fold), separators collapse into one dash, and any other
// character is dropped without leaving a gap.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/slug"
//
//	slug.URLFriendly("Müller & Co.", 250)
//	// Result: "muller-co"
//
//	slug.Make("Fish & Chips",
//		slug.CustomReplace(map[string]string{"&": "and"}),
//		slug.WithSuffix(6),
//	)
//	// Result: "fish-and-chips-k3x9q1"
//
// # Configuration Options
//
//   - MaxLength: limit the number of input runes examined (not output length)
//   - CustomReplace: apply string replacements before processing
//   - Transliterate: fall back to Unicode decomposition for letters missing
//     from the fold table
//   - WithSuffix: append a random alphanumeric suffix to reduce collisions
//
// # Thread Safety
//
// All functions are safe for concurrent use. The fold table is read-only and
// suffixes are drawn from crypto/rand through go-nanoid.
package slug
