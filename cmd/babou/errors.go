package main

import "errors"

var (
	errInvalidDelimiter = errors.New("delimiter must be a single character")
	errUnknownOutput    = errors.New("unknown output format")
	errInvalidTime      = errors.New("input is neither a timestamp nor unix seconds")
)
