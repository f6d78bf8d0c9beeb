package dataprocessing

import "errors"

var (
	// ErrSourceNotFound means no candidate path exists and no upload
	// stream was supplied. Recoverable: the caller can prompt for an
	// upload or a different path.
	ErrSourceNotFound = errors.New("dataset source not found")

	// ErrParseFailure means a resolved source could not be read as
	// tabular data. The wrapped message carries the cause.
	ErrParseFailure = errors.New("dataset parse failure")
)
