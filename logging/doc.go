// Package logging provides slog-based tracing for configuration resolution.
package logging
