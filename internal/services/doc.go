// Package services contains the application service layer. It sits
// between the HTTP transport and the dataprocessing/analytics packages:
// handlers translate requests into service calls, services resolve
// datasets and compute views, and the results flow back out as plain
// data structures.
package services
