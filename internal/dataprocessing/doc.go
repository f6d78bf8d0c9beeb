// Package dataprocessing ingests startup investment datasets.
//
// The package has three pieces that mirror the load path:
//
//   - parser: reads delimited text (or an Excel workbook) with a header
//     row, maps recognized columns by name, and produces a
//     domain.Dataset whose column set reflects what the source actually
//     declared.
//   - normalizer: per-cell numeric coercion with a zero-value fallback.
//     Malformed cells never fail a load and never drop a row.
//   - loader: resolves a dataset from an ordered list of candidate
//     paths or an uploaded byte stream, and caches the immutable result
//     keyed by source identity.
//
// Load failures are reported through two sentinel errors:
// ErrSourceNotFound when no candidate resolves, and ErrParseFailure
// when a resolved source is not valid tabular data.
package dataprocessing
