// Package logging builds the structured loggers used across the module on top of
// Go's standard library log/slog. Records are JSON by default, text on request,
// and the root App installs the logger as the slog default and the Fx event logger.
package logging
