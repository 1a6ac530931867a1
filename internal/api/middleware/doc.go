// Package middleware provides the HTTP middleware placed in front of the
// movie routes: request tracing and logging, per-client rate limiting, and
// Prometheus instrumentation.
package middleware
