// Package logger provides structured logging for confmerge.
//
// Loggers are plain *slog.Logger values so they can be handed to library
// packages such as aggregate without adapters:
//
//   - logger.go: handler construction, level control, default logger
//   - context.go: logger propagation through context.Context
//   - redact.go: masking of secrets found in configuration values
//
// Every handler built by New redacts attributes whose key looks sensitive
// ("password", "token", ...) and strips credentials from URL values.
package logger
