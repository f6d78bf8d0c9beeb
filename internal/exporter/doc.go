// Package exporter writes computed analytic views to report files.
//
// CSVWriter provides the core CSV writing with UTF-8 BOM support for
// Excel compatibility. ViewExporter flattens each view result into a
// tabular layout and writes one CSV file per view, plus an optional
// JSON dump of the raw view payload.
package exporter
