package analytics

import "errors"

var (
	// ErrColumnUnavailable means the requested view depends on a column
	// the dataset's source never declared. This is a per-view condition,
	// not a load error: other views over the same dataset still work.
	ErrColumnUnavailable = errors.New("required column unavailable in dataset")

	// ErrInsufficientData means a statistical result is undefined for
	// the filtered sample (fewer than two points, or zero variance). It
	// is never coerced to a default numeric value.
	ErrInsufficientData = errors.New("insufficient data for statistical computation")
)
