// Package logging assembles structured slog loggers for the syslang CLI and
// RPC server.
//
// It owns the console and JSON handlers, level parsing, optional daily log
// files with retention, and helpers that keep field names consistent
// (component, event_type, error_hint, correlation_id). A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
