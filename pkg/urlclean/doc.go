// Package urlclean removes tracking parameters from URLs.
//
// Clean filters a query string against a built-in list of more than 400
// parameter names used by analytics, advertising and mailing tools
// (utm_*, fbclid, gclid, mc_eid and friends). Everything else in the URL is
// preserved, including the order and encoding of the parameters that stay.
// StripQuery is the blunt alternative: it drops the whole query and fragment
// and normalizes the path to end in a slash.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/urlclean"
//
//	clean, err := urlclean.Clean("https://example.com/page?utm_source=x&id=5")
//	// clean == "https://example.com/page?id=5"
//
//	// "ref" is on the tracking list; keep it anyway.
//	clean, err = urlclean.Clean("https://example.com/?ref=home&fbclid=abc", "ref")
//	// clean == "https://example.com/?ref=home"
//
//	u, _ := url.Parse("https://example.com/blog?page=2#top")
//	urlclean.StripQuery(u)
//	// "https://example.com/blog/"
//
// Parameter names are matched exactly and case-sensitively after percent
// decoding, so "utm_source" is removed while "UTM_SOURCE" is not. The name
// "id" is never on the list.
//
// # Validation
//
// Clean accepts only absolute http, https, ftp and mailto URLs. IsValid and
// TryGet expose the same check.
//
// # Error Handling
//
//   - ErrInvalidInput: the URL is empty
//   - ErrInvalidURL: the URL does not parse or has the wrong shape
//
// Use errors.Is to test for them.
package urlclean
