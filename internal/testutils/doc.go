// Package testutils provides testing utilities shared by the API and server
// tests: movie fixtures, JSON request helpers, response assertions and an
// in-memory slog handler for asserting on log output.
package testutils
