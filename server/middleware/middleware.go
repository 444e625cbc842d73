// Package middleware provides the standard Gin middleware stack for the
// skillgraph HTTP server: panic recovery, request ids, CORS, body size
// limiting, and status-leveled request logging.
package middleware
