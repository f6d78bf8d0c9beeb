// Package analytics computes derived views over a normalized investment
// dataset.
//
// Every operation is a pure function: it takes a *domain.Dataset plus
// parameters and returns a result structure without mutating the
// dataset, so repeated calls are deterministic and safe under
// concurrent readers of a shared cached dataset.
//
// Two per-view conditions are reported as sentinel errors rather than
// zero-valued results: ErrColumnUnavailable when a view depends on a
// column the source never declared, and ErrInsufficientData when a
// statistical computation has too few points to be defined. Neither
// affects other views computed from the same dataset.
package analytics
