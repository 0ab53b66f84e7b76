// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package to emit JSON records with
// a configurable level, either to stdout or to a size-rotated file, and carries
// request-scoped loggers through context.Context.
package logger
