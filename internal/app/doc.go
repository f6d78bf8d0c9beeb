// Package app provides application initialization and lifecycle
// management. It wires configuration, logging, metrics, the dataset
// loader, and the HTTP transport together at startup and handles
// graceful shutdown.
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize logging and metrics
//	3. Initialize the dataset loader and view service
//	4. Set up HTTP handlers and middleware
//	5. Configure and start the HTTP server
//	6. Set up graceful shutdown handlers
package app
