// Package http implements the HTTP request handlers for the investment
// analytics service. Handlers are a thin layer between transport and the
// service layer: they parse and validate requests, delegate to services,
// and transform service errors into RFC 7807 problem responses.
package http
