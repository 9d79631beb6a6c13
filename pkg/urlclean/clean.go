package urlclean

import (
	"net/url"
	"path"
	"slices"
	"strings"
)

var trackingSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(trackingParameters))
	for _, name := range trackingParameters {
		set[name] = struct{}{}
	}
	return set
}()

// IsTrackingParameter reports whether name is on the built-in tracking
// parameter list. The comparison is exact and case-sensitive.
func IsTrackingParameter(name string) bool {
	_, ok := trackingSet[name]
	return ok
}

// TrackingParameters returns a sorted copy of the built-in tracking
// parameter list.
func TrackingParameters() []string {
	names := slices.Clone(trackingParameters)
	slices.Sort(names)
	return names
}

// Clean removes tracking parameters from the query string of rawURL. Names
// listed in keep survive even when they are on the tracking list.
//
// The remaining parameters keep their original order, encoding and
// multiplicity. When none remain the "?" is dropped too. The scheme, host,
// path and fragment are copied from rawURL as written, without
// re-encoding. A URL without a query is returned unchanged.
//
//	Clean("https://example.com/page?utm_source=x&id=5")
//	// "https://example.com/page?id=5"
func Clean(rawURL string, keep ...string) (string, error) {
	u, err := parse(rawURL)
	if err != nil {
		return "", err
	}

	if u.RawQuery == "" {
		return rawURL, nil
	}

	return spliceQuery(rawURL, filterQuery(u.RawQuery, keep)), nil
}

// spliceQuery swaps the query of rawURL for query. Everything outside the
// query is copied byte for byte. The fragment starts at the first "#" and
// the query at the first "?" before it, the same split url.Parse makes.
func spliceQuery(rawURL, query string) string {
	rest, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, _, _ := strings.Cut(rest, "?")

	var b strings.Builder
	b.Grow(len(rawURL))
	b.WriteString(base)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if hasFragment {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}

// CleanURL is Clean for an already parsed URL. The input is not modified.
func CleanURL(u *url.URL, keep ...string) (*url.URL, error) {
	if u == nil {
		return nil, ErrInvalidInput
	}

	cleaned, err := Clean(u.String(), keep...)
	if err != nil {
		return nil, err
	}

	return url.Parse(cleaned)
}

func filterQuery(rawQuery string, keep []string) string {
	segments := strings.Split(rawQuery, "&")
	kept := make([]string, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		name, _, _ := strings.Cut(segment, "=")
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}

		if IsTrackingParameter(name) && !slices.Contains(keep, name) {
			continue
		}
		kept = append(kept, segment)
	}

	return strings.Join(kept, "&")
}

// StripQuery drops the whole query string and fragment from an absolute URL
// and ends the path with a slash unless its last segment has a file
// extension:
//
//	https://example.com/blog?page=2   -> https://example.com/blog/
//	https://example.com/report.pdf?x  -> https://example.com/report.pdf
//
// Relative URLs are returned as they are. A nil URL yields "".
func StripQuery(u *url.URL) string {
	if u == nil {
		return ""
	}
	if !u.IsAbs() {
		return u.String()
	}

	stripped := *u
	stripped.RawQuery = ""
	stripped.ForceQuery = false
	stripped.Fragment = ""
	stripped.RawFragment = ""

	if stripped.Opaque == "" && path.Ext(stripped.Path) == "" && !strings.HasSuffix(stripped.Path, "/") {
		stripped.Path += "/"
		if stripped.RawPath != "" {
			stripped.RawPath += "/"
		}
	}

	return stripped.String()
}
