// Package middleware holds the echo middleware chain: request ids, request
// logging, CORS, rate limiting, tracing and panic recovery, plus the global
// error handler.
package middleware
