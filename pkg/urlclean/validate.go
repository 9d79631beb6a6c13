package urlclean

import (
	"errors"
	"net/url"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"ftp":    true,
	"mailto": true,
}

// parse accepts only absolute URLs with an allowed scheme. Hierarchical
// schemes must also carry a host.
func parse(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, ErrInvalidInput
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}

	if !u.IsAbs() || !allowedSchemes[u.Scheme] {
		return nil, ErrInvalidURL
	}

	if u.Scheme == "mailto" {
		if u.Opaque == "" && u.Path == "" {
			return nil, ErrInvalidURL
		}
		return u, nil
	}

	if u.Host == "" || u.Opaque != "" {
		return nil, ErrInvalidURL
	}

	return u, nil
}

// IsValid reports whether rawURL is an absolute http, https, ftp or mailto
// URL.
func IsValid(rawURL string) bool {
	_, err := parse(rawURL)
	return err == nil
}

// TryGet parses rawURL with the same rules as IsValid.
func TryGet(rawURL string) (*url.URL, bool) {
	u, err := parse(rawURL)
	if err != nil {
		return nil, false
	}
	return u, true
}

// HostURL returns the scheme and host of u followed by a slash, dropping
// port, path, query and fragment: "https://example.com/".
func HostURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	host := u.Hostname()
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return u.Scheme + "://" + host + "/"
}
