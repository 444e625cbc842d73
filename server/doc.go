// Package server provides the HTTP server for the skillgraph service,
// backed by Gin with graceful shutdown and a standard middleware stack.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - RequestID: Request ID generation and propagation
//   - CORS: Cross-origin resource sharing configuration
//   - BodySize: Request body size limits
//   - Logging: Request logging with duration tracking
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Service health check
//   - /version: Build version information
package server
