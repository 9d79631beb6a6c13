package urlclean

import "errors"

var (
	// ErrInvalidInput is returned when the URL is empty or nil
	ErrInvalidInput = errors.New("url is empty")

	// ErrInvalidURL is returned when the input is not an absolute http, https, ftp or mailto URL
	ErrInvalidURL = errors.New("invalid url: must be an absolute http, https, ftp or mailto url")
)
